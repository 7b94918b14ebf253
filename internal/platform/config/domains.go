package config

import "time"

// DatabaseConfig holds database connection settings.
type DatabaseConfig struct {
	PostgresDSN       string
	MaxConnections    int32
	MinConnections    int32
	MaxConnIdleTime   time.Duration
	MaxConnLifetime   time.Duration
	HealthCheckPeriod time.Duration
}

// APIConfig holds HTTP API settings.
type APIConfig struct {
	Port           int
	RateLimitRPS   float64
	RateLimitBurst int
}

// DatabaseCfg returns the database configuration extracted from Config.
func (c *Config) DatabaseCfg() DatabaseConfig {
	return DatabaseConfig{
		PostgresDSN:       c.PostgresDSN,
		MaxConnections:    c.DBMaxConnections,
		MinConnections:    c.DBMinConnections,
		MaxConnIdleTime:   c.DBMaxConnIdleTime,
		MaxConnLifetime:   c.DBMaxConnLifetime,
		HealthCheckPeriod: c.DBHealthCheckPeriod,
	}
}

// APICfg returns the HTTP API configuration.
func (c *Config) APICfg() APIConfig {
	return APIConfig{
		Port:           c.HTTPPort,
		RateLimitRPS:   c.APIRateLimitRPS,
		RateLimitBurst: c.APIRateLimitBurst,
	}
}

// IsLocal reports whether the process runs in the local development environment.
func (c *Config) IsLocal() bool {
	return c.AppEnv == "local"
}
