package socrata

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	querySpecies         = "species"
	queryHealthBySteward = "health_by_steward"
)

var (
	censusRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "treeboard_census_requests_total",
		Help: "Total tree census API requests by query and result",
	}, []string{"query", "result"})

	censusRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "treeboard_census_request_duration_seconds",
		Help:    "Tree census API request duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.05, 2, 10), // 50ms to ~25s
	}, []string{"query"})
)
