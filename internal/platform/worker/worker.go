// Package worker runs periodic background tasks next to the HTTP server.
// Loops stop when their context is canceled and survive panics in a single tick.
package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

const (
	logFieldWorker = "worker"
	logFieldPanic  = "panic"
)

// PeriodicConfig configures a periodic loop.
type PeriodicConfig struct {
	// Name identifies the worker for logging.
	Name string

	// Interval is the time between ticks.
	Interval time.Duration

	// OnTick is called each time the ticker fires.
	OnTick func(ctx context.Context)

	// RunOnStart runs OnTick immediately when starting.
	RunOnStart bool

	// Logger for the worker.
	Logger *zerolog.Logger
}

// Periodic runs cfg.OnTick every cfg.Interval until ctx is canceled.
// Returns a wrapped context error when the context is canceled.
func Periodic(ctx context.Context, cfg PeriodicConfig) error {
	if cfg.Interval <= 0 {
		return fmt.Errorf("periodic loop %s: interval must be positive", cfg.Name)
	}

	logger := getLogger(cfg.Logger)
	logger.Info().Str(logFieldWorker, cfg.Name).Dur("interval", cfg.Interval).Msg("starting periodic loop")

	defer func() {
		logger.Info().Str(logFieldWorker, cfg.Name).Msg("periodic loop stopped")
	}()

	if cfg.RunOnStart {
		runTick(ctx, cfg, logger)
	}

	ticker := time.NewTicker(cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("periodic loop %s: %w", cfg.Name, ctx.Err())
		case <-ticker.C:
			runTick(ctx, cfg, logger)
		}
	}
}

func runTick(ctx context.Context, cfg PeriodicConfig, logger *zerolog.Logger) {
	if cfg.OnTick == nil {
		return
	}

	defer RecoverPanic(logger, cfg.Name)

	cfg.OnTick(ctx)
}

// Wait blocks for d or until ctx is canceled.
func Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	select {
	case <-ctx.Done():
		return fmt.Errorf("wait interrupted: %w", ctx.Err())
	case <-time.After(d):
		return nil
	}
}

// RecoverPanic recovers from panics and logs them.
// Use as: defer worker.RecoverPanic(logger, "operation name")
func RecoverPanic(logger *zerolog.Logger, operation string) {
	if r := recover(); r != nil {
		getLogger(logger).Error().Interface(logFieldPanic, r).Str(logFieldWorker, operation).Msg("recovered from panic")
	}
}

// getLogger returns the provided logger or a nop logger if nil.
func getLogger(logger *zerolog.Logger) *zerolog.Logger {
	if logger == nil {
		nop := zerolog.Nop()

		return &nop
	}

	return logger
}
