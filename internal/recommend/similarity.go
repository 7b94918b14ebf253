package recommend

import (
	"math"

	"github.com/lueurxax/tastelog/internal/core/domain"
)

// weightedMatch accumulates per-dimension scores over the dimensions both
// records define. Dimensions missing on either side add nothing to either sum.
type weightedMatch struct {
	score  float64
	weight float64
}

func (m *weightedMatch) exact(a, b string, weight float64) {
	if a == "" || b == "" {
		return
	}

	m.weight += weight

	if a == b {
		m.score += weight
	}
}

func (m *weightedMatch) graded(score, weight float64) {
	m.weight += weight
	m.score += score * weight
}

func (m *weightedMatch) value() float64 {
	if m.weight == 0 {
		return 0
	}

	return m.score / m.weight
}

// WineSimilarity returns the weighted similarity of two wines in [0,1].
func (c *Config) WineSimilarity(a, b domain.Wine) float64 {
	var m weightedMatch

	m.exact(a.Region, b.Region, c.Wine.Region)
	m.exact(a.Grape, b.Grape, c.Wine.Grape)

	if a.HasVintage() && b.HasVintage() {
		m.graded(c.vintageSimilarity(a.Vintage, b.Vintage), c.Wine.Vintage)
	}

	return m.value()
}

// SakeSimilarity returns the weighted similarity of two sakes in [0,1].
func (c *Config) SakeSimilarity(a, b domain.Sake) float64 {
	var m weightedMatch

	m.exact(a.Brewery, b.Brewery, c.Sake.Brewery)
	m.exact(string(a.Type), string(b.Type), c.Sake.Type)
	m.exact(a.Region, b.Region, c.Sake.Region)

	return m.value()
}

// vintageSimilarity decays linearly from 1 at equal years to 0 at VintageDecayYears apart.
func (c *Config) vintageSimilarity(y1, y2 int) float64 {
	gap := math.Abs(float64(y1 - y2))

	return math.Max(0, 1-gap/c.VintageDecayYears)
}
