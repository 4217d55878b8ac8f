package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "saas_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "saas_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	registrationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "saas_registrations_total",
		Help: "Completed registrations by assigned role",
	}, []string{"role"})
)

// ObserveHTTPRequest records an HTTP request metric. path should be the route
// template, not the raw URL, to keep label cardinality bounded.
func ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// ObserveRegistration counts a completed registration
func ObserveRegistration(role string) {
	registrationsTotal.WithLabelValues(role).Inc()
}
