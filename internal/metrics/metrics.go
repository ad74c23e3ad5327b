package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Seed run outcomes.
const (
	SeedOutcomeCompleted = "completed"
	SeedOutcomeSkipped   = "skipped"
	SeedOutcomeFailed    = "failed"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	seedRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_seed_runs_total",
			Help: "Total number of seed runs by outcome",
		},
		[]string{"outcome"},
	)

	storeFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_store_failures_total",
			Help: "Total number of document store failures by catalog operation",
		},
		[]string{"operation"},
	)
)

// Middleware collects Prometheus metrics for each request.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		httpRequestsInFlight.Inc()

		// Route pattern, so /mesociclos/1 and /mesociclos/2 share a series.
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unknown"
		}

		c.Next()

		httpRequestsInFlight.Dec()
		status := strconv.Itoa(c.Writer.Status())
		httpRequestsTotal.WithLabelValues(c.Request.Method, endpoint, status).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, endpoint).Observe(time.Since(start).Seconds())
	}
}

// RecordSeedRun counts one seed run with the given outcome.
func RecordSeedRun(outcome string) {
	seedRunsTotal.WithLabelValues(outcome).Inc()
}

// RecordStoreFailure counts one store failure seen by operation.
func RecordStoreFailure(operation string) {
	storeFailuresTotal.WithLabelValues(operation).Inc()
}
