package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var _ Orders = (*orderMetrics)(nil)

type orderMetrics struct {
	byStatus *prometheus.GaugeVec
	backlog  prometheus.Gauge
}

func newOrderMetrics(registry *prometheus.Registry) *orderMetrics {
	byStatus := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "orders",
			Help:      "Stored orders by status, as of the last backlog report",
		},
		[]string{"status"},
	)

	backlog := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "orders_backlog",
			Help:      "Orders not yet delivered, as of the last backlog report",
		},
	)

	registry.MustRegister(byStatus, backlog)

	return &orderMetrics{
		byStatus: byStatus,
		backlog:  backlog,
	}
}

func (m *orderMetrics) SetStatusCount(status string, count int) {
	m.byStatus.WithLabelValues(status).Set(float64(count))
}

func (m *orderMetrics) SetBacklog(count int) {
	m.backlog.Set(float64(count))
}
