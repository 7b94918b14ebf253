package recommend

import (
	"sort"

	"github.com/lueurxax/tastelog/internal/core/domain"
)

// Candidate sources.
const (
	SourceSimilar    = "similar"
	SourcePreference = "preference"
)

const (
	similarNameSuffix    = " (similar recommendation)"
	preferenceNameSuffix = " (preference recommendation)"
)

// candidate is a ranked suggestion before it receives an id.
type candidate struct {
	category domain.Category
	source   string
	item     domain.RatedItem
	name     string
	reason   string
	rank     float64
}

// categoryModel binds the category-specific similarity, scoring and reason
// functions so that selection runs identically for wines and sakes.
type categoryModel[T domain.RatedItem] struct {
	category      domain.Category
	averageRating float64
	similarity    func(a, b T) float64
	score         func(item T) float64
	reason        func(item T, similarity float64) string
}

// Recommend produces the ranked, bounded recommendation list for the given
// snapshots. It returns an empty list when fewer than MinRecords records exist.
// With Deduplicate set, repeated suggestions of one record are collapsed before
// the MaxRecommendations cap, so the list can be shorter than a plain
// sort-and-truncate would give.
func (c *Config) Recommend(wines []domain.Wine, sakes []domain.Sake, newID IDGenerator) []domain.Recommendation {
	recs, _ := c.recommend(wines, sakes, newID)

	return recs
}

func (c *Config) recommend(wines []domain.Wine, sakes []domain.Sake, newID IDGenerator) ([]domain.Recommendation, []candidate) {
	if len(wines)+len(sakes) < c.MinRecords {
		return []domain.Recommendation{}, nil
	}

	profile := BuildProfile(wines, sakes, c.HighRatingThreshold)

	var candidates []candidate

	if len(wines) > 0 {
		candidates = append(candidates, collectCandidates(c, wines, c.wineModel(profile.Wine))...)
	}

	if len(sakes) > 0 {
		candidates = append(candidates, collectCandidates(c, sakes, c.sakeModel(profile.Sake))...)
	}

	ranked := c.rankCandidates(candidates)

	recs := make([]domain.Recommendation, 0, len(ranked))
	for _, cand := range ranked {
		recs = append(recs, domain.Recommendation{
			ID:            newID(),
			Type:          cand.category,
			Name:          cand.name,
			Reason:        cand.reason,
			Similarity:    cand.rank,
			SuggestedItem: cand.item,
		})
	}

	return recs, candidates
}

func (c *Config) wineModel(p domain.WineProfile) categoryModel[domain.Wine] {
	return categoryModel[domain.Wine]{
		category:      domain.CategoryWine,
		averageRating: p.AverageRating,
		similarity:    c.WineSimilarity,
		score:         func(w domain.Wine) float64 { return c.ScoreWine(w, p) },
		reason:        func(w domain.Wine, sim float64) string { return c.WineReason(w, p, sim) },
	}
}

func (c *Config) sakeModel(p domain.SakeProfile) categoryModel[domain.Sake] {
	return categoryModel[domain.Sake]{
		category:      domain.CategorySake,
		averageRating: p.AverageRating,
		similarity:    c.SakeSimilarity,
		score:         func(s domain.Sake) float64 { return c.ScoreSake(s, p) },
		reason:        func(s domain.Sake, sim float64) string { return c.SakeReason(s, p, sim) },
	}
}

// collectCandidates walks items in store order. Seeds are the first MaxSeeds
// high-rated items, not the highest rated ones.
func collectCandidates[T domain.RatedItem](c *Config, items []T, m categoryModel[T]) []candidate {
	seeds := make([]T, 0, c.MaxSeeds)
	seedIDs := make(map[string]struct{}, c.MaxSeeds)

	for _, item := range items {
		if len(seeds) >= c.MaxSeeds {
			break
		}

		if domain.IsHighRated(item, c.HighRatingThreshold) {
			seeds = append(seeds, item)
			seedIDs[item.GetID()] = struct{}{}
		}
	}

	var out []candidate

	for _, seed := range seeds {
		out = append(out, similarCandidates(c, seed, items, m)...)
	}

	picked := 0

	for _, item := range items {
		if picked >= c.MaxPreferencePicks {
			break
		}

		if _, isSeed := seedIDs[item.GetID()]; isSeed {
			continue
		}

		score := m.score(item)
		if score <= m.averageRating {
			continue
		}

		picked++

		out = append(out, candidate{
			category: m.category,
			source:   SourcePreference,
			item:     item,
			name:     item.GetName() + preferenceNameSuffix,
			reason:   m.reason(item, 0),
			rank:     score / c.PreferenceScoreDivisor,
		})
	}

	return out
}

// similarCandidates takes the first MaxSimilarPerSeed items whose similarity to
// seed exceeds the threshold; matches with a zero preference score are dropped
// but still count toward the limit.
func similarCandidates[T domain.RatedItem](c *Config, seed T, items []T, m categoryModel[T]) []candidate {
	var out []candidate

	matches := 0

	for _, other := range items {
		if matches >= c.MaxSimilarPerSeed {
			break
		}

		if other.GetID() == seed.GetID() {
			continue
		}

		sim := m.similarity(seed, other)
		if sim <= c.SimilarityThreshold {
			continue
		}

		matches++

		score := m.score(other)
		if score <= 0 {
			continue
		}

		out = append(out, candidate{
			category: m.category,
			source:   SourceSimilar,
			item:     other,
			name:     other.GetName() + similarNameSuffix,
			reason:   m.reason(other, sim),
			rank:     sim + score/c.SimilarityBonusDivisor,
		})
	}

	return out
}

// rankCandidates sorts by rank descending, keeping generation order on ties,
// optionally collapses repeated records, and truncates to MaxRecommendations.
func (c *Config) rankCandidates(candidates []candidate) []candidate {
	ranked := make([]candidate, len(candidates))
	copy(ranked, candidates)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].rank > ranked[j].rank
	})

	if c.Deduplicate {
		ranked = dedupeCandidates(ranked)
	}

	if len(ranked) > c.MaxRecommendations {
		ranked = ranked[:c.MaxRecommendations]
	}

	return ranked
}

func dedupeCandidates(ranked []candidate) []candidate {
	type key struct {
		category domain.Category
		id       string
	}

	seen := make(map[key]struct{}, len(ranked))
	out := ranked[:0]

	for _, cand := range ranked {
		k := key{category: cand.category, id: cand.item.GetID()}
		if _, dup := seen[k]; dup {
			continue
		}

		seen[k] = struct{}{}
		out = append(out, cand)
	}

	return out
}
