package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lueurxax/tastelog/internal/core/errors"
)

func TestParseSakeType(t *testing.T) {
	tests := []struct {
		input   string
		want    SakeType
		wantErr bool
	}{
		{"", "", false},
		{"純米酒", SakeTypeJunmai, false},
		{"純米大吟醸", SakeTypeJunmaiDaiginjo, false},
		{"本醸造", SakeTypeHonjozo, false},
		{"junmai", "", true},
		{"純米", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSakeType(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, errors.ErrUnknownSakeType))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSakeTypesReturnsCopy(t *testing.T) {
	types := SakeTypes()
	require.NotEmpty(t, types)

	types[0] = "mutated"

	assert.Equal(t, SakeTypeJunmaiDaiginjo, SakeTypes()[0])
}

func TestVintageRangeContains(t *testing.T) {
	r := VintageRange{Min: 2015, Max: 2018}

	assert.True(t, r.Contains(2015))
	assert.True(t, r.Contains(2018))
	assert.True(t, r.Contains(2016))
	assert.False(t, r.Contains(2014))
	assert.False(t, r.Contains(2019))
}

func TestAttributeWeights(t *testing.T) {
	w := AttributeWeights{"France": 13}

	assert.InDelta(t, 13.0, w.Weight("France"), 1e-9)
	assert.Zero(t, w.Weight("Italy"))
	assert.Zero(t, w.Weight(""))
	assert.True(t, w.Has("France"))
	assert.False(t, w.Has(""))
	assert.False(t, AttributeWeights(nil).Has("France"))
}
