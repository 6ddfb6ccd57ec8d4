package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/treeboard/pkg/cli/config"
	"github.com/secmon-lab/treeboard/pkg/domain/types"
)

func TestDashboard_ConfigureDefault(t *testing.T) {
	var d config.Dashboard
	cfg, err := d.Configure()
	gt.NoError(t, err).Required()

	gt.Equal(t, cfg.Title, "New York Tree Health by Stewardship")
	gt.Equal(t, cfg.Boroughs, types.Boroughs())
	gt.Equal(t, cfg.DefaultBorough, types.BoroughBronx)
	gt.Equal(t, cfg.DefaultSpecies, types.Species("American beech"))
	gt.Equal(t, cfg.Chart.Width, 640)
	gt.Equal(t, cfg.Chart.Height, 480)
}

func TestDashboard_ConfigureFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.yaml")
	data := []byte(`
boroughs:
  - Queens
  - Brooklyn
default_borough: Queens
chart:
  width: 800
`)
	gt.NoError(t, os.WriteFile(path, data, 0600)).Required()

	d := config.Dashboard{Path: path}
	cfg, err := d.Configure()
	gt.NoError(t, err).Required()

	gt.Equal(t, cfg.Boroughs, []types.Borough{types.BoroughQueens, types.BoroughBrooklyn})
	gt.Equal(t, cfg.DefaultBorough, types.BoroughQueens)
	gt.Equal(t, cfg.Chart.Width, 800)
	// Keys not in the file keep their built-in values
	gt.Equal(t, cfg.Chart.Height, 480)
	gt.Equal(t, cfg.DefaultSpecies, types.Species("American beech"))
	gt.Equal(t, cfg.Title, "New York Tree Health by Stewardship")
}

func TestParseDashboardConfig_Invalid(t *testing.T) {
	testCases := map[string]string{
		"broken yaml":         "boroughs: [",
		"unknown borough":     "boroughs: [Hoboken]\ndefault_borough: Hoboken",
		"default not offered": "boroughs: [Queens]\ndefault_borough: Bronx",
		"blank species":       "default_species: \"  \"",
		"zero width":          "chart:\n  width: 0",
		"empty title":         "title: \"\"",
	}

	for name, data := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := config.ParseDashboardConfig([]byte(data))
			gt.Error(t, err)
		})
	}
}

func TestLoadDashboardConfigFromFile_NotFound(t *testing.T) {
	_, err := config.LoadDashboardConfigFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	gt.Error(t, err)

	_, err = config.LoadDashboardConfigFromFile("")
	gt.Error(t, err)
}
