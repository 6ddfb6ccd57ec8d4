package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"
)

// DefaultAddr is the address the dashboard listens on when none is given
const DefaultAddr = "localhost:8050"

// Server holds server configuration
type Server struct {
	Addr string
}

// Flags returns CLI flags for Server configuration
func (s *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Server address",
			Value:       DefaultAddr,
			Sources:     cli.EnvVars("TREEBOARD_ADDR"),
			Destination: &s.Addr,
		},
	}
}

// LogValue returns structured log value
func (s Server) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("addr", s.Addr),
	)
}
