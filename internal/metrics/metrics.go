// Package metrics exposes Prometheus collectors for the dashboard.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the dashboard collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	Events   *prometheus.CounterVec
	Renders  *prometheus.CounterVec
	Sessions prometheus.Gauge
}

// New registers the dashboard collectors plus Go runtime and process
// collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		Events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "osiris",
			Name:      "ui_events_total",
			Help:      "UI events dispatched, by event name.",
		}, []string{"event"}),
		Renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "osiris",
			Name:      "page_renders_total",
			Help:      "Screens rendered, by mounted page and format.",
		}, []string{"page", "format"}),
		Sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "osiris",
			Name:      "ui_sessions",
			Help:      "Live browser UI sessions.",
		}),
	}
	reg.MustRegister(
		m.Events,
		m.Renders,
		m.Sessions,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
