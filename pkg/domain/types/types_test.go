package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/treeboard/pkg/domain/types"
)

func TestBoroughValidation(t *testing.T) {
	tests := []struct {
		name     string
		borough  types.Borough
		expected bool
	}{
		{"Valid Bronx", types.BoroughBronx, true},
		{"Valid Staten Island", types.BoroughStatenIsland, true},
		{"Valid literal", types.Borough("Queens"), true},
		{"Invalid lowercase", types.Borough("queens"), false},
		{"Invalid empty", types.Borough(""), false},
		{"Invalid unknown", types.Borough("Jersey City"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Equal(t, tt.borough.IsValid(), tt.expected)
			if tt.expected {
				gt.NoError(t, tt.borough.Validate())
			} else {
				gt.Error(t, tt.borough.Validate())
			}
		})
	}
}

func TestBoroughs(t *testing.T) {
	list := types.Boroughs()
	gt.A(t, list).Length(5)
	gt.Equal(t, list[0], types.BoroughBronx)
	gt.Equal(t, list[4], types.BoroughStatenIsland)

	// Callers must not be able to change the fixed list
	list[0] = "Hoboken"
	gt.Equal(t, types.Boroughs()[0], types.BoroughBronx)
}

func TestSpeciesValidate(t *testing.T) {
	gt.NoError(t, types.Species("American beech").Validate())
	gt.Error(t, types.Species("").Validate())
	gt.Error(t, types.Species("   ").Validate())
}
