package domain

import "time"

// Category identifies which collection a rated record belongs to.
type Category string

const (
	CategoryWine Category = "wine"
	CategorySake Category = "sake"
)

// Rating bounds. Records outside this range are rejected before they reach storage.
const (
	MinRating = 1
	MaxRating = 5
)

// Wine represents a rated wine record.
type Wine struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Region    string    `json:"region,omitempty"`
	Grape     string    `json:"grape,omitempty"`
	Vintage   int       `json:"vintage,omitempty"`
	Rating    int       `json:"rating"`
	PhotoURI  string    `json:"photoUri,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasVintage reports whether the vintage year is set. Zero means absent.
func (w Wine) HasVintage() bool {
	return w.Vintage != 0
}

// Sake represents a rated sake record.
type Sake struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Brewery   string    `json:"brewery,omitempty"`
	Type      SakeType  `json:"type,omitempty"`
	Region    string    `json:"region,omitempty"`
	Rating    int       `json:"rating"`
	PhotoURI  string    `json:"photoUri,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// GetID returns the wine ID.
func (w Wine) GetID() string { return w.ID }

// GetName returns the wine name.
func (w Wine) GetName() string { return w.Name }

// GetRating returns the wine rating.
func (w Wine) GetRating() int { return w.Rating }

// Category returns CategoryWine.
func (w Wine) Category() Category { return CategoryWine }

// GetID returns the sake ID.
func (s Sake) GetID() string { return s.ID }

// GetName returns the sake name.
func (s Sake) GetName() string { return s.Name }

// GetRating returns the sake rating.
func (s Sake) GetRating() int { return s.Rating }

// Category returns CategorySake.
func (s Sake) Category() Category { return CategorySake }

// Ensure both record types implement RatedItem.
var (
	_ RatedItem = Wine{}
	_ RatedItem = Sake{}
)
