package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var _ HTTP = (*httpMetrics)(nil)

type httpMetrics struct {
	requestCounter    *prometheus.CounterVec
	durationHistogram *prometheus.HistogramVec
}

func newHTTPMetrics(registry *prometheus.Registry) *httpMetrics {
	counter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)

	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		},
		[]string{"method", "route", "status"},
	)

	registry.MustRegister(counter, duration)

	return &httpMetrics{
		requestCounter:    counter,
		durationHistogram: duration,
	}
}

// Request records one request. route is the matched route pattern, not
// the raw path, to keep label cardinality bounded.
func (m *httpMetrics) Request(method, route string, status int, duration time.Duration) {
	code := strconv.Itoa(status)
	m.requestCounter.WithLabelValues(method, route, code).Inc()
	m.durationHistogram.WithLabelValues(method, route, code).Observe(duration.Seconds())
}
