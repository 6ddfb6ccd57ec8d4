package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/treeboard/pkg/domain/types"
)

// DashboardConfig represents the dashboard configuration file
type DashboardConfig struct {
	Title          string          `yaml:"title"`
	Boroughs       []types.Borough `yaml:"boroughs"`
	DefaultBorough types.Borough   `yaml:"default_borough"`
	DefaultSpecies types.Species   `yaml:"default_species"`
	Chart          ChartSize       `yaml:"chart"`
}

// ChartSize is the pixel size of a rendered chart
type ChartSize struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Validate validates the dashboard configuration
func (c *DashboardConfig) Validate() error {
	if c.Title == "" {
		return goerr.New("dashboard title is required")
	}
	if len(c.Boroughs) == 0 {
		return goerr.New("at least one borough is required")
	}

	seen := make(map[types.Borough]bool)
	for i, borough := range c.Boroughs {
		if err := borough.Validate(); err != nil {
			return goerr.Wrap(err, "invalid borough at index", goerr.V("index", i))
		}
		if seen[borough] {
			return goerr.New("duplicate borough", goerr.V("borough", borough))
		}
		seen[borough] = true
	}

	if !c.HasBorough(c.DefaultBorough) {
		return goerr.New("default borough is not listed in boroughs",
			goerr.V("default_borough", c.DefaultBorough))
	}
	if err := c.DefaultSpecies.Validate(); err != nil {
		return goerr.Wrap(err, "invalid default species")
	}

	if c.Chart.Width <= 0 || c.Chart.Height <= 0 {
		return goerr.New("chart size must be positive",
			goerr.V("width", c.Chart.Width),
			goerr.V("height", c.Chart.Height))
	}

	return nil
}

// HasBorough checks if the borough is offered by the dashboard
func (c *DashboardConfig) HasBorough(borough types.Borough) bool {
	for _, b := range c.Boroughs {
		if b == borough {
			return true
		}
	}
	return false
}
