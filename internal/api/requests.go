package api

import "github.com/lueurxax/tastelog/internal/core/domain"

// WineRequest is the create/update payload for a wine.
type WineRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Region   string `json:"region" validate:"max=200"`
	Grape    string `json:"grape" validate:"max=200"`
	Vintage  int    `json:"vintage" validate:"omitempty,min=1,max=9999"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	PhotoURI string `json:"photoUri" validate:"max=2048"`
	Notes    string `json:"notes" validate:"max=4000"`
}

func (r WineRequest) toDomain(id string) domain.Wine {
	return domain.Wine{
		ID:       id,
		Name:     r.Name,
		Region:   r.Region,
		Grape:    r.Grape,
		Vintage:  r.Vintage,
		Rating:   r.Rating,
		PhotoURI: r.PhotoURI,
		Notes:    r.Notes,
	}
}

// SakeRequest is the create/update payload for a sake.
type SakeRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Brewery  string `json:"brewery" validate:"max=200"`
	Type     string `json:"type" validate:"omitempty,saketype"`
	Region   string `json:"region" validate:"max=200"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	PhotoURI string `json:"photoUri" validate:"max=2048"`
	Notes    string `json:"notes" validate:"max=4000"`
}

func (r SakeRequest) toDomain(id string) domain.Sake {
	return domain.Sake{
		ID:       id,
		Name:     r.Name,
		Brewery:  r.Brewery,
		Type:     domain.SakeType(r.Type),
		Region:   r.Region,
		Rating:   r.Rating,
		PhotoURI: r.PhotoURI,
		Notes:    r.Notes,
	}
}
