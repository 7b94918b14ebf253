package recommend

import (
	"sort"

	"github.com/lueurxax/tastelog/internal/core/domain"
)

// BuildProfile derives the preference profile from full wine and sake snapshots.
// Only records rated at or above highRating feed the attribute weights; the
// average rating covers every record of the category.
func BuildProfile(wines []domain.Wine, sakes []domain.Sake, highRating int) *domain.PreferenceProfile {
	return &domain.PreferenceProfile{
		Wine: buildWineProfile(wines, highRating),
		Sake: buildSakeProfile(sakes, highRating),
	}
}

func buildWineProfile(wines []domain.Wine, highRating int) domain.WineProfile {
	p := domain.WineProfile{
		PreferredRegions: domain.AttributeWeights{},
		PreferredGrapes:  domain.AttributeWeights{},
		AverageRating:    averageRating(wines),
	}

	var vintages []int

	for _, w := range wines {
		if !domain.IsHighRated(w, highRating) {
			continue
		}

		rating := float64(w.Rating)
		accumulate(p.PreferredRegions, w.Region, rating)
		accumulate(p.PreferredGrapes, w.Grape, rating)

		if w.HasVintage() {
			vintages = append(vintages, w.Vintage)
		}
	}

	if len(vintages) > 0 {
		sort.Ints(vintages)
		p.PreferredVintages = &domain.VintageRange{Min: vintages[0], Max: vintages[len(vintages)-1]}
	}

	return p
}

func buildSakeProfile(sakes []domain.Sake, highRating int) domain.SakeProfile {
	p := domain.SakeProfile{
		PreferredBreweries: domain.AttributeWeights{},
		PreferredTypes:     domain.AttributeWeights{},
		PreferredRegions:   domain.AttributeWeights{},
		AverageRating:      averageRating(sakes),
	}

	for _, s := range sakes {
		if !domain.IsHighRated(s, highRating) {
			continue
		}

		rating := float64(s.Rating)
		accumulate(p.PreferredBreweries, s.Brewery, rating)
		accumulate(p.PreferredTypes, string(s.Type), rating)
		accumulate(p.PreferredRegions, s.Region, rating)
	}

	return p
}

// accumulate adds rating to the weight of value. Values match exactly, with no
// case or whitespace folding.
func accumulate(weights domain.AttributeWeights, value string, rating float64) {
	if value == "" {
		return
	}

	weights[value] += rating
}

func averageRating[T domain.RatedItem](items []T) float64 {
	if len(items) == 0 {
		return 0
	}

	total := 0

	for _, item := range items {
		total += item.GetRating()
	}

	return float64(total) / float64(len(items))
}
