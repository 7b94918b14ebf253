package domain

// RatedItem is the common view over wine and sake records used by the
// recommendation pipeline.
type RatedItem interface {
	// GetID returns the record identifier assigned by the record store.
	GetID() string

	// GetName returns the display name.
	GetName() string

	// GetRating returns the 1..5 rating.
	GetRating() int

	// Category returns which collection the record belongs to.
	Category() Category
}

// IsHighRated reports whether the item's rating reaches the threshold.
func IsHighRated(item RatedItem, threshold int) bool {
	return item.GetRating() >= threshold
}
