package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var _ Validation = (*validationMetrics)(nil)

type validationMetrics struct {
	failures *prometheus.CounterVec
}

func newValidationMetrics(registry *prometheus.Registry) *validationMetrics {
	failures := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_failures_total",
			Help:      "Requests rejected by validation, by failure kind",
		},
		[]string{"kind"},
	)

	registry.MustRegister(failures)

	return &validationMetrics{failures: failures}
}

func (m *validationMetrics) Failure(kind string) {
	m.failures.WithLabelValues(kind).Inc()
}
