package recommend

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lueurxax/tastelog/internal/core/domain"
	"github.com/lueurxax/tastelog/internal/core/errors"
	"github.com/lueurxax/tastelog/internal/core/ports"
	"github.com/lueurxax/tastelog/internal/platform/observability"
)

// Engine generates recommendations from the current record store snapshot.
// It holds no state between calls other than the id generator and is safe
// for concurrent use.
type Engine struct {
	cfg    *Config
	store  ports.SnapshotReader
	newID  IDGenerator
	logger zerolog.Logger
}

// Option customizes an Engine.
type Option func(*Engine)

// WithIDGenerator replaces the default counter-based id generator.
func WithIDGenerator(gen IDGenerator) Option {
	return func(e *Engine) {
		e.newID = gen
	}
}

// NewEngine creates a recommendation engine reading from store.
// A nil cfg uses DefaultConfig; a nil logger disables logging.
func NewEngine(cfg *Config, store ports.SnapshotReader, logger *zerolog.Logger, opts ...Option) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate recommend config: %w", err)
	}

	if store == nil {
		return nil, fmt.Errorf("%w: record store is required", errors.ErrInvalidInput)
	}

	base := zerolog.Nop()
	if logger != nil {
		base = *logger
	}

	e := &Engine{
		cfg:    cfg,
		store:  store,
		newID:  CounterIDGenerator(time.Now),
		logger: base.With().Str(logFieldComponent, componentName).Logger(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() *Config {
	return e.cfg
}

// Generate returns up to MaxRecommendations recommendations sorted by
// similarity descending. It never fails: store errors and panics during
// scoring are logged and yield an empty list.
func (e *Engine) Generate(ctx context.Context) (recs []domain.Recommendation) {
	start := time.Now()
	status := observability.GenerationStatusOK

	defer func() {
		if r := recover(); r != nil {
			e.logger.Error().Interface(logFieldPanic, r).Msg("recommendation generation panicked")

			recs = []domain.Recommendation{}
			status = observability.GenerationStatusError
		}

		observability.RecommendationGenerations.WithLabelValues(status).Inc()
		observability.RecommendationDuration.Observe(time.Since(start).Seconds())
		observability.RecommendationsReturned.Observe(float64(len(recs)))
	}()

	wines, sakes, err := e.fetchSnapshot(ctx)
	if err != nil {
		e.logger.Error().Err(err).Msg("failed to fetch records for recommendations")

		status = observability.GenerationStatusError

		return []domain.Recommendation{}
	}

	if len(wines)+len(sakes) < e.cfg.MinRecords {
		e.logger.Debug().
			Int(logFieldWines, len(wines)).
			Int(logFieldSakes, len(sakes)).
			Msg("not enough records to recommend")

		status = observability.GenerationStatusBelowThreshold

		return []domain.Recommendation{}
	}

	recs, candidates := e.cfg.recommend(wines, sakes, e.newID)

	for _, c := range candidates {
		observability.RecommendationCandidates.WithLabelValues(string(c.category), c.source).Inc()
	}

	if len(recs) == 0 {
		status = observability.GenerationStatusEmpty
	}

	e.logger.Debug().
		Int(logFieldWines, len(wines)).
		Int(logFieldSakes, len(sakes)).
		Int(logFieldCandidate, len(candidates)).
		Int(logFieldReturned, len(recs)).
		Msg("recommendations generated")

	return recs
}

// Preferences builds the preference profile from a fresh snapshot.
// Unlike Generate it reports store failures to the caller.
func (e *Engine) Preferences(ctx context.Context) (*domain.PreferenceProfile, error) {
	wines, sakes, err := e.fetchSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	return BuildProfile(wines, sakes, e.cfg.HighRatingThreshold), nil
}

// fetchSnapshot lists wines and sakes concurrently. A failure on either side
// aborts the whole fetch.
func (e *Engine) fetchSnapshot(ctx context.Context) ([]domain.Wine, []domain.Sake, error) {
	var (
		wines []domain.Wine
		sakes []domain.Sake
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		defer recoverFetch("list wines", &err)

		list, err := e.store.ListWines(gctx)
		if err != nil {
			return fmt.Errorf("list wines: %w", err)
		}

		wines = list

		return nil
	})

	g.Go(func() (err error) {
		defer recoverFetch("list sakes", &err)

		list, err := e.store.ListSakes(gctx)
		if err != nil {
			return fmt.Errorf("list sakes: %w", err)
		}

		sakes = list

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", errors.ErrStoreUnavailable, err)
	}

	return wines, sakes, nil
}

// recoverFetch turns a panic in a fetch goroutine into an error, since the
// recover in Generate does not reach errgroup goroutines.
func recoverFetch(op string, err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%s: panic: %v", op, r)
	}
}
