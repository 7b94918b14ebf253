package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lueurxax/tastelog/internal/core/domain"
)

func TestWineSimilarity(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name string
		a, b domain.Wine
		want float64
	}{
		{"all match, two year gap", wine("a", "France", "Merlot", 2018, 5), wine("b", "France", "Merlot", 2020, 4), 0.96},
		{"vintage only", wine("a", "", "", 2018, 5), wine("b", "", "", 2020, 4), 0.8},
		{"vintage gap beyond decay", wine("a", "", "", 2000, 5), wine("b", "", "", 2015, 4), 0},
		{"region mismatch", wine("a", "France", "", 0, 5), wine("b", "Italy", "", 0, 4), 0},
		{"missing dimension skipped", wine("a", "France", "Merlot", 0, 5), wine("b", "France", "", 0, 4), 1},
		{"region match grape mismatch", wine("a", "France", "Merlot", 0, 5), wine("b", "France", "Syrah", 0, 4), 0.5},
		{"nothing comparable", wine("a", "France", "", 0, 5), wine("b", "", "Syrah", 2001, 4), 0},
		{"case sensitive", wine("a", "France", "", 0, 5), wine("b", "france", "", 0, 4), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, cfg.WineSimilarity(tt.a, tt.b), testFloatDelta)
		})
	}
}

func TestSakeSimilarity(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name string
		a, b domain.Sake
		want float64
	}{
		{"all match", sake("a", testBrewery, testSakeJunmai, testNiigata, 5), sake("b", testBrewery, testSakeJunmai, testNiigata, 4), 1},
		{"type differs", sake("a", testBrewery, testSakeJunmai, testNiigata, 5), sake("b", testBrewery, domain.SakeTypeGinjo, testNiigata, 4), 0.6},
		{"type and region only", sake("a", "", testSakeJunmai, testNiigata, 5), sake("b", "", testSakeJunmai, testYamagata, 4), 0.4 / 0.7},
		{"nothing comparable", sake("a", testBrewery, "", "", 5), sake("b", "", testSakeJunmai, "", 4), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, cfg.SakeSimilarity(tt.a, tt.b), testFloatDelta)
		})
	}
}

func TestSimilaritySymmetricAndBounded(t *testing.T) {
	cfg := DefaultConfig()

	wines := []domain.Wine{
		wine("1", "France", "Merlot", 2018, 5),
		wine("2", "France", "Syrah", 2011, 3),
		wine("3", "", "Merlot", 2024, 4),
		wine("4", "Italy", "", 0, 2),
		wine("5", "", "", 0, 1),
		wine("6", "France", "Merlot", 2018, 4),
	}

	for _, a := range wines {
		for _, b := range wines {
			ab := cfg.WineSimilarity(a, b)
			ba := cfg.WineSimilarity(b, a)

			assert.InDelta(t, ab, ba, testFloatDelta, "wine %s/%s", a.ID, b.ID)
			assert.GreaterOrEqual(t, ab, 0.0)
			assert.LessOrEqual(t, ab, 1.0)
		}
	}

	sakes := []domain.Sake{
		sake("1", testBrewery, testSakeJunmai, testNiigata, 5),
		sake("2", "", testSakeJunmai, testYamagata, 3),
		sake("3", testBrewery, "", "", 4),
		sake("4", "", "", "", 2),
	}

	for _, a := range sakes {
		for _, b := range sakes {
			ab := cfg.SakeSimilarity(a, b)

			assert.InDelta(t, ab, cfg.SakeSimilarity(b, a), testFloatDelta, "sake %s/%s", a.ID, b.ID)
			assert.GreaterOrEqual(t, ab, 0.0)
			assert.LessOrEqual(t, ab, 1.0)
		}
	}
}
