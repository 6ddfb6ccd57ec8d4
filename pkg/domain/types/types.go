package types

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Borough represents one of the five NYC boroughs as spelled in the census `boroname` column
type Borough string

const (
	BoroughBronx        Borough = "Bronx"
	BoroughBrooklyn     Borough = "Brooklyn"
	BoroughManhattan    Borough = "Manhattan"
	BoroughQueens       Borough = "Queens"
	BoroughStatenIsland Borough = "Staten Island"
)

var boroughs = []Borough{
	BoroughBronx,
	BoroughBrooklyn,
	BoroughManhattan,
	BoroughQueens,
	BoroughStatenIsland,
}

// Boroughs returns all boroughs in display order
func Boroughs() []Borough {
	result := make([]Borough, len(boroughs))
	copy(result, boroughs)
	return result
}

// String returns the string representation
func (b Borough) String() string {
	return string(b)
}

// IsValid checks if the borough is one of the five boroughs
func (b Borough) IsValid() bool {
	for _, known := range boroughs {
		if b == known {
			return true
		}
	}
	return false
}

// Validate returns an error if the borough is unknown
func (b Borough) Validate() error {
	if !b.IsValid() {
		return goerr.New("unknown borough", goerr.V("borough", b))
	}
	return nil
}

// Species represents a common species name (`spc_common`), e.g. "American beech"
type Species string

// String returns the string representation
func (s Species) String() string {
	return string(s)
}

// Validate checks that the species name is not blank
func (s Species) Validate() error {
	if strings.TrimSpace(string(s)) == "" {
		return goerr.New("species is required")
	}
	return nil
}
