package model

import "sort"

// Steward is the census indicator of stewardship activity around a tree
// ("None", "1or2", "3or4", "4orMore").
type Steward string

const (
	// StewardNone is the value the census uses for trees without stewardship
	StewardNone Steward = "None"
	// StewardNoneLabel replaces StewardNone so that it sorts before the numeric buckets
	StewardNoneLabel Steward = "0-None"
)

// String returns the string representation
func (s Steward) String() string {
	return string(s)
}

// Label returns the sortable label for the steward category
func (s Steward) Label() Steward {
	if s == StewardNone {
		return StewardNoneLabel
	}
	return s
}

func sortStewards(stewards []Steward) {
	sort.Slice(stewards, func(i, j int) bool { return stewards[i] < stewards[j] })
}
