package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the lookup instruments for one registry
type Metrics struct {
	lookups      *prometheus.CounterVec
	catalogItems prometheus.Gauge
}

// New creates the instruments and registers them with reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "substrate_lookups_total",
			Help: "Total lookups by endpoint and outcome",
		}, []string{"endpoint", "outcome"}),
		catalogItems: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "substrate_catalog_items",
			Help: "Number of items in the loaded catalog",
		}),
	}
	reg.MustRegister(m.lookups, m.catalogItems)
	return m
}

// RecordLookup counts one lookup outcome
func (m *Metrics) RecordLookup(endpoint, outcome string) {
	m.lookups.WithLabelValues(endpoint, outcome).Inc()
}

// SetCatalogItems reports the size of the loaded catalog
func (m *Metrics) SetCatalogItems(n int) {
	m.catalogItems.Set(float64(n))
}
