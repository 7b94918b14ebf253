package recommend

import (
	"fmt"
	"math"
	"strings"

	"github.com/lueurxax/tastelog/internal/core/domain"
)

const (
	reasonSeparator    = ", "
	reasonClosing      = ": recommended based on your tasting history"
	reasonNewDiscovery = "Recommended as a new discovery"
)

// WineReason explains a wine suggestion. A similarity at or below the
// similarity threshold (including 0) adds no similarity fragment.
func (c *Config) WineReason(w domain.Wine, p domain.WineProfile, similarity float64) string {
	var parts []string

	if p.PreferredRegions.Has(w.Region) {
		parts = append(parts, "preferred region "+w.Region)
	}

	if p.PreferredGrapes.Has(w.Grape) {
		parts = append(parts, "preferred grape "+w.Grape)
	}

	if w.HasVintage() && p.PreferredVintages != nil && p.PreferredVintages.Contains(w.Vintage) {
		parts = append(parts, fmt.Sprintf("preferred vintage range %d-%d", p.PreferredVintages.Min, p.PreferredVintages.Max))
	}

	return c.joinReason(parts, similarity)
}

// SakeReason explains a sake suggestion.
func (c *Config) SakeReason(s domain.Sake, p domain.SakeProfile, similarity float64) string {
	var parts []string

	if p.PreferredBreweries.Has(s.Brewery) {
		parts = append(parts, "preferred brewery "+s.Brewery)
	}

	if p.PreferredTypes.Has(string(s.Type)) {
		parts = append(parts, "preferred type "+string(s.Type))
	}

	if p.PreferredRegions.Has(s.Region) {
		parts = append(parts, "preferred region "+s.Region)
	}

	return c.joinReason(parts, similarity)
}

func (c *Config) joinReason(parts []string, similarity float64) string {
	if similarity > c.SimilarityThreshold {
		parts = append(parts, fmt.Sprintf("similarity %d%%", int(math.Round(similarity*100))))
	}

	if len(parts) == 0 {
		return reasonNewDiscovery
	}

	return strings.Join(parts, reasonSeparator) + reasonClosing
}
