package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/secmon-lab/treeboard/frontend"
	"github.com/secmon-lab/treeboard/pkg/domain/interfaces"
	"github.com/secmon-lab/treeboard/pkg/domain/model"
	"github.com/secmon-lab/treeboard/pkg/utils/apperr"
)

// Config holds the HTTP server configuration
type Config struct {
	Addr      string
	Dashboard *model.DashboardConfig
}

// NewConfig creates a new server configuration
func NewConfig(addr string, dashboard *model.DashboardConfig) *Config {
	return &Config{
		Addr:      addr,
		Dashboard: dashboard,
	}
}

// Server represents the HTTP server
type Server struct {
	*http.Server
	router chi.Router
}

// NewServer creates a new HTTP server
func NewServer(ctx context.Context, config *Config, dashboard interfaces.Dashboard) (*Server, error) {
	if config == nil || config.Dashboard == nil {
		return nil, goerr.New("dashboard configuration is required")
	}

	dashboardHandler, err := NewDashboardHandler(config.Dashboard, dashboard)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create dashboard handler")
	}

	assets, err := frontend.GetHTTPFS()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get embedded assets")
	}

	router := chi.NewRouter()

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	// Health check and metrics
	router.Get("/health", handleHealth)
	router.Handle("/metrics", promhttp.Handler())

	// Dashboard page and rendered charts
	router.Get("/", dashboardHandler.HandlePage)
	router.Get("/charts/{view}.svg", dashboardHandler.HandleChartSVG)

	// API routes
	router.Route("/api", func(r chi.Router) {
		r.Get("/boroughs", dashboardHandler.HandleBoroughs)
		r.Get("/species", dashboardHandler.HandleSpecies)
		r.Get("/figures/{view}", dashboardHandler.HandleFigure)
	})

	router.Handle("/static/*", http.StripPrefix("/static", NewStaticHandler(assets)))

	ctxlog.From(ctx).Info("Dashboard routes registered",
		"boroughs", len(config.Dashboard.Boroughs),
		"species", len(dashboard.Species()),
	)

	return &Server{
		Server: &http.Server{
			Addr:              config.Addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router: router,
	}, nil
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "treeboard",
	})
}

// writeJSON writes v as a JSON response
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode response", "error", err)
	}
}

// writeError logs err and writes it as a JSON error response
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	apperr.Handle(r.Context(), err)

	var message string
	if goErr := goerr.Unwrap(err); goErr != nil {
		message = goErr.Error()
	} else {
		message = err.Error()
	}

	writeJSON(w, r, apperr.StatusCode(err), map[string]string{
		"error": message,
	})
}
