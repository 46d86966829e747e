package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Resultados posibles de una operación
const (
	ResultSuccess  = "success"
	ResultInvalid  = "invalid"
	ResultNotFound = "not_found"
	ResultFailure  = "failure"
)

// Metrics agrupa los contadores del catálogo
type Metrics struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	products   prometheus.Gauge
	cached     prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "catalog_product_operations_total",
			Help: "Product operations by kind and result",
		}, []string{"operation", "result"}),
		products: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "catalog_products",
			Help: "Products currently in the catalog",
		}),
		cached: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "catalog_cached_pages",
			Help: "Product list pages held in the response cache",
		}),
	}
	m.registry.MustRegister(m.operations, m.products, m.cached)
	return m
}

// Observe cuenta una operación (add, update, delete, list)
func (m *Metrics) Observe(operation, result string) {
	m.operations.WithLabelValues(operation, result).Inc()
}

func (m *Metrics) SetProducts(n int) {
	m.products.Set(float64(n))
}

func (m *Metrics) SetCachedPages(n int) {
	m.cached.Set(float64(n))
}

// Handler expone el registro en formato Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
