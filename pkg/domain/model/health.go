package model

// Health is the census rating of a tree's condition
type Health string

const (
	HealthGood Health = "Good"
	HealthFair Health = "Fair"
	HealthPoor Health = "Poor"
)

// healthRanking fixes the display order of health categories
var healthRanking = []Health{HealthGood, HealthFair, HealthPoor}

var healthColors = map[Health]string{
	HealthGood: "#588c7e",
	HealthFair: "#f2e394",
	HealthPoor: "#d96459",
}

// HealthLevels returns the health categories in display order
func HealthLevels() []Health {
	result := make([]Health, len(healthRanking))
	copy(result, healthRanking)
	return result
}

// String returns the string representation
func (h Health) String() string {
	return string(h)
}

// Rank returns the display position of the health category, or -1 if it is not ranked
func (h Health) Rank() int {
	for i, ranked := range healthRanking {
		if h == ranked {
			return i
		}
	}
	return -1
}

// IsValid checks if the health category is one of Good, Fair or Poor
func (h Health) IsValid() bool {
	return h.Rank() >= 0
}

// Color returns the bar colour used for the health category
func (h Health) Color() string {
	return healthColors[h]
}
