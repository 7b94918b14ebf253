package recommend

import (
	"fmt"
	"math"

	"github.com/lueurxax/tastelog/internal/core/errors"
)

const weightSumTolerance = 1e-6

// WineWeights are the per-dimension weights for wine comparison and scoring.
type WineWeights struct {
	Region  float64 `json:"region"`
	Grape   float64 `json:"grape"`
	Vintage float64 `json:"vintage"`
}

func (w WineWeights) sum() float64 {
	return w.Region + w.Grape + w.Vintage
}

// SakeWeights are the per-dimension weights for sake comparison and scoring.
type SakeWeights struct {
	Brewery float64 `json:"brewery"`
	Type    float64 `json:"type"`
	Region  float64 `json:"region"`
}

func (w SakeWeights) sum() float64 {
	return w.Brewery + w.Type + w.Region
}

// Config contains the tunables of the recommendation engine.
type Config struct {
	// HighRatingThreshold is the minimum rating for a record to feed the profile
	// and to act as a seed.
	HighRatingThreshold int `json:"high_rating_threshold"`

	// SimilarityThreshold is the pairwise similarity a record must exceed to be
	// suggested as similar to a seed.
	SimilarityThreshold float64 `json:"similarity_threshold"`

	// MinRecords is the total record count below which nothing is recommended.
	MinRecords int `json:"min_records"`

	// MaxRecommendations bounds the final list.
	MaxRecommendations int `json:"max_recommendations"`

	// MaxSeeds is how many high-rated records per category seed similarity search.
	MaxSeeds int `json:"max_seeds"`

	// MaxSimilarPerSeed is how many similar records each seed may contribute.
	MaxSimilarPerSeed int `json:"max_similar_per_seed"`

	// MaxPreferencePicks is how many preference-based records each category may contribute.
	MaxPreferencePicks int `json:"max_preference_picks"`

	// SimilarityBonusDivisor scales the preference score added to pairwise similarity.
	SimilarityBonusDivisor float64 `json:"similarity_bonus_divisor"`

	// PreferenceScoreDivisor scales the preference score of preference-based picks.
	PreferenceScoreDivisor float64 `json:"preference_score_divisor"`

	// VintageDecayYears is the vintage gap at which vintage similarity reaches zero.
	VintageDecayYears float64 `json:"vintage_decay_years"`

	// Wine and Sake weights must each sum to 1.0.
	Wine WineWeights `json:"wine"`
	Sake SakeWeights `json:"sake"`

	// Deduplicate collapses repeated suggestions of one record to its best-ranked entry.
	Deduplicate bool `json:"deduplicate"`
}

// DefaultConfig returns the standard engine configuration.
func DefaultConfig() *Config {
	return &Config{
		HighRatingThreshold:    4,
		SimilarityThreshold:    0.3,
		MinRecords:             3,
		MaxRecommendations:     5,
		MaxSeeds:               3,
		MaxSimilarPerSeed:      2,
		MaxPreferencePicks:     2,
		SimilarityBonusDivisor: 10,
		PreferenceScoreDivisor: 5,
		VintageDecayYears:      10,
		Wine:                   WineWeights{Region: 0.4, Grape: 0.4, Vintage: 0.2},
		Sake:                   SakeWeights{Brewery: 0.3, Type: 0.4, Region: 0.3},
		Deduplicate:            true,
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.HighRatingThreshold < 1 {
		return fmt.Errorf("%w: high_rating_threshold must be >= 1, got %d", errors.ErrInvalidConfig, c.HighRatingThreshold)
	}

	if c.SimilarityThreshold < 0 || c.SimilarityThreshold > 1 {
		return fmt.Errorf("%w: similarity_threshold must be in [0,1], got %.3f", errors.ErrInvalidConfig, c.SimilarityThreshold)
	}

	if c.MaxRecommendations < 1 {
		return fmt.Errorf("%w: max_recommendations must be >= 1, got %d", errors.ErrInvalidConfig, c.MaxRecommendations)
	}

	if c.MaxSeeds < 0 || c.MaxSimilarPerSeed < 0 || c.MaxPreferencePicks < 0 {
		return fmt.Errorf("%w: selection limits must be non-negative", errors.ErrInvalidConfig)
	}

	if c.SimilarityBonusDivisor <= 0 || c.PreferenceScoreDivisor <= 0 {
		return fmt.Errorf("%w: score divisors must be positive", errors.ErrInvalidConfig)
	}

	if c.VintageDecayYears <= 0 {
		return fmt.Errorf("%w: vintage_decay_years must be positive, got %.1f", errors.ErrInvalidConfig, c.VintageDecayYears)
	}

	if c.Wine.Region < 0 || c.Wine.Grape < 0 || c.Wine.Vintage < 0 {
		return fmt.Errorf("%w: wine weights must be non-negative", errors.ErrInvalidConfig)
	}

	if c.Sake.Brewery < 0 || c.Sake.Type < 0 || c.Sake.Region < 0 {
		return fmt.Errorf("%w: sake weights must be non-negative", errors.ErrInvalidConfig)
	}

	if math.Abs(c.Wine.sum()-1) > weightSumTolerance {
		return fmt.Errorf("%w: wine weights must sum to 1.0, got %.3f", errors.ErrInvalidConfig, c.Wine.sum())
	}

	if math.Abs(c.Sake.sum()-1) > weightSumTolerance {
		return fmt.Errorf("%w: sake weights must sum to 1.0, got %.3f", errors.ErrInvalidConfig, c.Sake.sum())
	}

	return nil
}
