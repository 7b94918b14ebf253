package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Generation outcome labels.
const (
	GenerationStatusOK             = "ok"
	GenerationStatusEmpty          = "empty"
	GenerationStatusBelowThreshold = "below_threshold"
	GenerationStatusError          = "error"
)

var (
	RecommendationGenerations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tastelog_recommendation_generations_total",
		Help: "The total number of recommendation generations by outcome",
	}, []string{"status"})

	RecommendationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "tastelog_recommendation_duration_seconds",
		Help:    "Duration of a recommendation generation including store fetches",
		Buckets: prometheus.DefBuckets,
	})

	RecommendationsReturned = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "tastelog_recommendations_returned",
		Help:    "Number of recommendations returned per generation",
		Buckets: []float64{0, 1, 2, 3, 4, 5},
	})

	RecommendationCandidates = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tastelog_recommendation_candidates_total",
		Help: "Candidates produced before ranking, by category and source",
	}, []string{"category", "source"})

	RecordsWritten = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tastelog_records_written_total",
		Help: "Record store writes by category and operation",
	}, []string{"category", "op"})
)

var APIRateLimited = promauto.NewCounter(prometheus.CounterOpts{
	Name: "tastelog_api_rate_limited_total",
	Help: "API requests rejected by the per-client rate limiter",
})

var (
	RecordsStored = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "tastelog_records_stored",
		Help: "Records in the tasting log by category",
	}, []string{"category"})

	HighRatedRecords = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "tastelog_high_rated_records",
		Help: "Records at or above the high rating threshold by category",
	}, []string{"category"})
)
