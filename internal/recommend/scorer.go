package recommend

import "github.com/lueurxax/tastelog/internal/core/domain"

// ScoreWine returns the non-negative affinity of a wine to the wine profile.
// A wine sharing nothing with the profile scores exactly 0.
func (c *Config) ScoreWine(w domain.Wine, p domain.WineProfile) float64 {
	score := p.PreferredRegions.Weight(w.Region)*c.Wine.Region +
		p.PreferredGrapes.Weight(w.Grape)*c.Wine.Grape

	if w.HasVintage() && p.PreferredVintages != nil && p.PreferredVintages.Contains(w.Vintage) {
		score += p.AverageRating * c.Wine.Vintage
	}

	return score
}

// ScoreSake returns the non-negative affinity of a sake to the sake profile.
func (c *Config) ScoreSake(s domain.Sake, p domain.SakeProfile) float64 {
	return p.PreferredBreweries.Weight(s.Brewery)*c.Sake.Brewery +
		p.PreferredTypes.Weight(string(s.Type))*c.Sake.Type +
		p.PreferredRegions.Weight(s.Region)*c.Sake.Region
}
