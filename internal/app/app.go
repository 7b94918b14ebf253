// Package app provides the main application bootstrap and runtime orchestration.
//
// The App type wires together all dependencies and exposes methods to run
// different operational modes:
//
//   - Serve mode: JSON API, health checks and metrics on one HTTP port,
//     plus a periodic record stats refresher
//   - Recommend mode: print the current recommendations and exit
//   - Preferences mode: print the current preference profile and exit
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lueurxax/tastelog/internal/api"
	"github.com/lueurxax/tastelog/internal/core/ports"
	"github.com/lueurxax/tastelog/internal/platform/config"
	"github.com/lueurxax/tastelog/internal/platform/observability"
	"github.com/lueurxax/tastelog/internal/platform/worker"
	"github.com/lueurxax/tastelog/internal/recommend"
)

// Store is the record store plus a connectivity check for readiness.
type Store interface {
	ports.RecordStore
	observability.Pinger
}

// App holds the application dependencies and provides methods to run different modes.
type App struct {
	cfg    *config.Config
	store  Store
	engine *recommend.Engine
	logger *zerolog.Logger
}

// New creates a new App instance with the given dependencies.
func New(cfg *config.Config, store Store, logger *zerolog.Logger) (*App, error) {
	engine, err := recommend.NewEngine(recommendConfig(cfg), store, logger)
	if err != nil {
		return nil, fmt.Errorf("recommend engine init: %w", err)
	}

	return &App{
		cfg:    cfg,
		store:  store,
		engine: engine,
		logger: logger,
	}, nil
}

func recommendConfig(cfg *config.Config) *recommend.Config {
	rc := recommend.DefaultConfig()
	rc.Deduplicate = cfg.RecommendDeduplicate

	return rc
}

// Server builds the HTTP server serving the API next to health and metrics.
func (a *App) Server() *observability.Server {
	apiCfg := a.cfg.APICfg()

	handler := api.NewHandler(a.engine, a.store, api.Options{
		RateLimitRPS:   apiCfg.RateLimitRPS,
		RateLimitBurst: apiCfg.RateLimitBurst,
	}, a.logger)

	return observability.NewServerWithAPI(a.store, apiCfg.Port, handler.Routes(), a.logger)
}

// RunServe serves HTTP and refreshes collection stats until ctx is cancelled.
func (a *App) RunServe(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := a.Server().Start(gctx); err != nil {
			return fmt.Errorf("serve: %w", err)
		}

		return nil
	})

	if a.cfg.StatsInterval > 0 {
		g.Go(func() error {
			return worker.Periodic(gctx, worker.PeriodicConfig{
				Name:       statsWorkerName,
				Interval:   a.cfg.StatsInterval,
				OnTick:     a.collectRecordStats,
				RunOnStart: true,
				Logger:     a.logger,
			})
		})
	}

	return g.Wait() //nolint:wrapcheck // both goroutines wrap their errors
}

// RunRecommend writes the current recommendation list to w as JSON.
func (a *App) RunRecommend(ctx context.Context, w io.Writer) error {
	recs := a.engine.Generate(ctx)

	a.logger.Info().Int(logFieldCount, len(recs)).Msg("recommendations generated")

	return writeJSON(w, map[string]interface{}{"recommendations": recs})
}

// RunPreferences writes the current preference profile to w as JSON.
func (a *App) RunPreferences(ctx context.Context, w io.Writer) error {
	profile, err := a.engine.Preferences(ctx)
	if err != nil {
		return fmt.Errorf("build preferences: %w", err)
	}

	return writeJSON(w, profile)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}

	return nil
}

const logFieldCount = "count"
