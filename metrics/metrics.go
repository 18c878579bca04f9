// Package metrics exposes Prometheus counters for outbound recipe searches.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rohanthewiz/logger"
)

// Search outcomes
const (
	OutcomeOK    = "ok"
	OutcomeEmpty = "empty"
	OutcomeError = "error"
)

var (
	searchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipesearch_searches_total",
			Help: "Total number of outbound recipe searches by outcome",
		},
		[]string{"outcome"},
	)

	searchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recipesearch_search_duration_seconds",
			Help:    "Duration of outbound recipe searches in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// ObserveSearch records one settled search
func ObserveSearch(outcome string, elapsed time.Duration) {
	searchesTotal.WithLabelValues(outcome).Inc()
	searchDuration.Observe(elapsed.Seconds())
}

// Serve runs a dedicated metrics listener. It blocks until the listener fails.
func Serve(address string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	logger.Info("Metrics listener starting", "address", address)
	return http.ListenAndServe(address, mux)
}
