package model

// TreeRecord is one grouped row of the health-by-steward query
type TreeRecord struct {
	Health  Health
	Steward Steward
	Count   int64
}
