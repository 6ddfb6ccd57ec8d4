package config

import (
	_ "embed"
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/treeboard/pkg/domain/model"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

//go:embed dashboard.yaml
var defaultDashboardYAML []byte

// Dashboard holds the dashboard configuration file location
type Dashboard struct {
	Path string
}

// Flags returns CLI flags for Dashboard configuration
func (d *Dashboard) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "dashboard-config",
			Usage:       "Path to a YAML file overriding the built-in dashboard configuration",
			Category:    "Dashboard",
			Sources:     cli.EnvVars("TREEBOARD_DASHBOARD_CONFIG"),
			Destination: &d.Path,
		},
	}
}

// Configure loads the dashboard configuration from Path, or the built-in default if Path is empty
func (d *Dashboard) Configure() (*model.DashboardConfig, error) {
	if d.Path == "" {
		cfg, err := ParseDashboardConfig(defaultDashboardYAML)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid built-in dashboard configuration")
		}
		return cfg, nil
	}
	return LoadDashboardConfigFromFile(d.Path)
}

// LogValue returns structured log value
func (d Dashboard) LogValue() slog.Value {
	path := d.Path
	if path == "" {
		path = "(built-in)"
	}
	return slog.GroupValue(
		slog.String("path", path),
	)
}

// LoadDashboardConfigFromFile loads the dashboard configuration from a YAML file
func LoadDashboardConfigFromFile(path string) (*model.DashboardConfig, error) {
	if path == "" {
		return nil, goerr.New("configuration file path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "configuration file not found",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read configuration file",
			goerr.V("path", path))
	}

	cfg, err := ParseDashboardConfig(data)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid configuration file",
			goerr.V("path", path))
	}
	return cfg, nil
}

// ParseDashboardConfig parses and validates a YAML dashboard configuration.
// Keys missing from data keep their built-in values.
func ParseDashboardConfig(data []byte) (*model.DashboardConfig, error) {
	var cfg model.DashboardConfig
	if err := yaml.Unmarshal(defaultDashboardYAML, &cfg); err != nil {
		return nil, goerr.Wrap(err, "failed to parse built-in dashboard configuration")
	}

	// Lists in data replace the built-in ones
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, goerr.Wrap(err, "failed to parse YAML configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid dashboard configuration")
	}
	return &cfg, nil
}
