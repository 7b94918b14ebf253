// Package api exposes the tasting log and its recommendations over HTTP.
//
// Routes live under /api/v1 and are served by a chi router. Every request
// passes through request id, panic recovery and a per-client token bucket.
package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/lueurxax/tastelog/internal/core/domain"
	"github.com/lueurxax/tastelog/internal/core/ports"
)

// Recommender is the part of the recommendation engine the API serves.
type Recommender interface {
	Generate(ctx context.Context) []domain.Recommendation
	Preferences(ctx context.Context) (*domain.PreferenceProfile, error)
}

// Options tune the HTTP surface.
type Options struct {
	RateLimitRPS   float64
	RateLimitBurst int
}

// Handler serves the JSON API.
type Handler struct {
	engine  Recommender
	store   ports.RecordStore
	logger  *zerolog.Logger
	limiter *clientLimiter
}

// NewHandler creates an API handler over the engine and the record store.
func NewHandler(engine Recommender, store ports.RecordStore, opts Options, logger *zerolog.Logger) *Handler {
	return &Handler{
		engine:  engine,
		store:   store,
		logger:  logger,
		limiter: newClientLimiter(opts.RateLimitRPS, opts.RateLimitBurst),
	}
}

// Routes builds the chi router.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(h.requestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(h.rateLimit)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/recommendations", h.getRecommendations)
		r.Get("/preferences", h.getPreferences)

		r.Route("/wines", func(r chi.Router) {
			r.Get("/", h.listWines)
			r.Post("/", h.createWine)
			r.Get("/{id}", h.getWine)
			r.Put("/{id}", h.updateWine)
			r.Delete("/{id}", h.deleteWine)
		})

		r.Route("/sakes", func(r chi.Router) {
			r.Get("/", h.listSakes)
			r.Post("/", h.createSake)
			r.Get("/{id}", h.getSake)
			r.Put("/{id}", h.updateSake)
			r.Delete("/{id}", h.deleteSake)
		})
	})

	return r
}
