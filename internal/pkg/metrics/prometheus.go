package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "grubdash"

var _ Factory = (*prometheusFactory)(nil)

type prometheusFactory struct {
	registry   *prometheus.Registry
	http       *httpMetrics
	validation *validationMetrics
	orders     *orderMetrics
}

// NewFactory registers every collector on a fresh registry, so factories
// never collide with each other or with the global registry.
func NewFactory() Factory {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &prometheusFactory{
		registry:   registry,
		http:       newHTTPMetrics(registry),
		validation: newValidationMetrics(registry),
		orders:     newOrderMetrics(registry),
	}
}

func (f *prometheusFactory) HTTP() HTTP {
	return f.http
}

func (f *prometheusFactory) Validation() Validation {
	return f.validation
}

func (f *prometheusFactory) Orders() Orders {
	return f.orders
}

func (f *prometheusFactory) Handler() http.Handler {
	return promhttp.HandlerFor(f.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}
