package domain

import (
	"fmt"

	"github.com/lueurxax/tastelog/internal/core/errors"
)

// SakeType is a sake classification. The empty value means unclassified.
type SakeType string

// Sake classifications.
const (
	SakeTypeJunmaiDaiginjo   SakeType = "純米大吟醸"
	SakeTypeJunmaiGinjo      SakeType = "純米吟醸"
	SakeTypeTokubetsuJunmai  SakeType = "特別純米酒"
	SakeTypeJunmai           SakeType = "純米酒"
	SakeTypeDaiginjo         SakeType = "大吟醸"
	SakeTypeGinjo            SakeType = "吟醸"
	SakeTypeTokubetsuHonjozo SakeType = "特別本醸造"
	SakeTypeHonjozo          SakeType = "本醸造"
	SakeTypeFutsushu         SakeType = "普通酒"
)

var sakeTypes = []SakeType{
	SakeTypeJunmaiDaiginjo,
	SakeTypeJunmaiGinjo,
	SakeTypeTokubetsuJunmai,
	SakeTypeJunmai,
	SakeTypeDaiginjo,
	SakeTypeGinjo,
	SakeTypeTokubetsuHonjozo,
	SakeTypeHonjozo,
	SakeTypeFutsushu,
}

// SakeTypes returns the known classifications in display order.
func SakeTypes() []SakeType {
	out := make([]SakeType, len(sakeTypes))
	copy(out, sakeTypes)

	return out
}

// Valid reports whether t is empty or a known classification.
func (t SakeType) Valid() bool {
	if t == "" {
		return true
	}

	for _, known := range sakeTypes {
		if t == known {
			return true
		}
	}

	return false
}

// ParseSakeType converts s into a SakeType. An empty string yields the empty type.
func ParseSakeType(s string) (SakeType, error) {
	t := SakeType(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", errors.ErrUnknownSakeType, s)
	}

	return t, nil
}
