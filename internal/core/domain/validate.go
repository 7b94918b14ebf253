package domain

import (
	"fmt"
	"strings"

	"github.com/lueurxax/tastelog/internal/core/errors"
)

// Validate checks the invariants a wine must hold before it is stored.
func (w Wine) Validate() error {
	if strings.TrimSpace(w.Name) == "" {
		return fmt.Errorf("%w: wine name is required", errors.ErrInvalidInput)
	}

	if err := validateRating(w.Rating); err != nil {
		return err
	}

	if w.Vintage < 0 {
		return fmt.Errorf("%w: vintage must be a year, got %d", errors.ErrInvalidInput, w.Vintage)
	}

	return nil
}

// Validate checks the invariants a sake must hold before it is stored.
func (s Sake) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("%w: sake name is required", errors.ErrInvalidInput)
	}

	if err := validateRating(s.Rating); err != nil {
		return err
	}

	if !s.Type.Valid() {
		return fmt.Errorf("%w: %q", errors.ErrUnknownSakeType, s.Type)
	}

	return nil
}

func validateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return fmt.Errorf("%w: %d not in [%d,%d]", errors.ErrInvalidRating, rating, MinRating, MaxRating)
	}

	return nil
}
