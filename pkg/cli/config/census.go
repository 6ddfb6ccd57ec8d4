package config

import (
	"log/slog"
	"time"

	"github.com/secmon-lab/treeboard/pkg/service/socrata"
	"github.com/urfave/cli/v3"
)

// Census holds the street tree census API configuration
type Census struct {
	Endpoint string
	AppToken string
	Timeout  time.Duration
}

// Flags returns CLI flags for Census configuration
func (c *Census) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "census-endpoint",
			Usage:       "Socrata resource URL of the street tree census",
			Category:    "Census",
			Value:       socrata.DefaultEndpoint,
			Sources:     cli.EnvVars("TREEBOARD_CENSUS_ENDPOINT"),
			Destination: &c.Endpoint,
		},
		&cli.StringFlag{
			Name:        "census-app-token",
			Usage:       "Socrata application token (optional, raises rate limits)",
			Category:    "Census",
			Sources:     cli.EnvVars("TREEBOARD_CENSUS_APP_TOKEN"),
			Destination: &c.AppToken,
		},
		&cli.DurationFlag{
			Name:        "census-timeout",
			Usage:       "Timeout of a census request (0 means no timeout)",
			Category:    "Census",
			Sources:     cli.EnvVars("TREEBOARD_CENSUS_TIMEOUT"),
			Destination: &c.Timeout,
		},
	}
}

// Configure creates the census client
func (c *Census) Configure() *socrata.Client {
	opts := []socrata.Option{
		socrata.WithEndpoint(c.Endpoint),
	}
	if c.Endpoint == "" {
		opts[0] = socrata.WithEndpoint(socrata.DefaultEndpoint)
	}
	if c.AppToken != "" {
		opts = append(opts, socrata.WithAppToken(c.AppToken))
	}
	if c.Timeout > 0 {
		opts = append(opts, socrata.WithTimeout(c.Timeout))
	}
	return socrata.New(opts...)
}

// LogValue returns structured log value
func (c Census) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("endpoint", c.Endpoint),
		slog.Bool("has_app_token", c.AppToken != ""),
		slog.Duration("timeout", c.Timeout),
	)
}
