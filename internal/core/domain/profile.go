package domain

// VintageRange is the inclusive span of vintages among high-rated wines.
type VintageRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Contains reports whether year lies within the range, bounds included.
func (r VintageRange) Contains(year int) bool {
	return year >= r.Min && year <= r.Max
}

// AttributeWeights maps an attribute value to the accumulated rating of
// high-rated records carrying it. Lookups are by key only; iteration order
// carries no meaning.
type AttributeWeights map[string]float64

// Weight returns the accumulated weight for value, or 0 when absent or empty.
func (w AttributeWeights) Weight(value string) float64 {
	if value == "" {
		return 0
	}

	return w[value]
}

// Has reports whether value is a non-empty key of the mapping.
func (w AttributeWeights) Has(value string) bool {
	if value == "" {
		return false
	}

	_, ok := w[value]

	return ok
}

// WineProfile holds the wine side of a PreferenceProfile.
type WineProfile struct {
	PreferredRegions  AttributeWeights `json:"preferredRegions"`
	PreferredGrapes   AttributeWeights `json:"preferredGrapes"`
	PreferredVintages *VintageRange    `json:"preferredVintages"`
	AverageRating     float64          `json:"averageRating"`
}

// SakeProfile holds the sake side of a PreferenceProfile.
type SakeProfile struct {
	PreferredBreweries AttributeWeights `json:"preferredBreweries"`
	PreferredTypes     AttributeWeights `json:"preferredTypes"`
	PreferredRegions   AttributeWeights `json:"preferredRegions"`
	AverageRating      float64          `json:"averageRating"`
}

// PreferenceProfile is derived from a full snapshot of rated records on every
// request and is never persisted.
type PreferenceProfile struct {
	Wine WineProfile `json:"wine"`
	Sake SakeProfile `json:"sake"`
}

// Recommendation is a single ranked suggestion drawn from the user's own records.
type Recommendation struct {
	ID            string    `json:"id"`
	Type          Category  `json:"type"`
	Name          string    `json:"name"`
	Reason        string    `json:"reason"`
	Similarity    float64   `json:"similarity"`
	SuggestedItem RatedItem `json:"suggestedItem"`
}
