// Package metrics exposes the server's Prometheus collectors.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "faves"

// Reload results.
const (
	ReloadOK     = "ok"
	ReloadFailed = "failed"
)

// Metrics holds the collectors on a private registry. A nil *Metrics is a
// valid no-op.
type Metrics struct {
	registry *prometheus.Registry

	requests    *prometheus.CounterVec
	renders     *prometheus.CounterVec
	entryErrors *prometheus.CounterVec
	reloads     *prometheus.CounterVec
	categories  prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route pattern, method and status.",
		}, []string{"route", "method", "status"}),
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "category_renders_total",
			Help:      "Category pages rendered.",
		}, []string{"category"}),
		entryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entry_errors_total",
			Help:      "Entries skipped during rendering because they failed validation.",
		}, []string{"category"}),
		reloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_reloads_total",
			Help:      "Catalog reload attempts by result.",
		}, []string{"result"}),
		categories: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "categories",
			Help:      "Categories in the current catalog.",
		}),
	}

	m.registry.MustRegister(
		m.requests,
		m.renders,
		m.entryErrors,
		m.reloads,
		m.categories,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveRequest counts one finished HTTP request.
func (m *Metrics) ObserveRequest(route, method string, status int) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
}

// ObserveRender counts one category render and its invalid entries.
func (m *Metrics) ObserveRender(category string, invalid int) {
	if m == nil {
		return
	}
	m.renders.WithLabelValues(category).Inc()
	if invalid > 0 {
		m.entryErrors.WithLabelValues(category).Add(float64(invalid))
	}
}

// ObserveReload counts one reload attempt; categories is only recorded on
// success.
func (m *Metrics) ObserveReload(err error, categories int) {
	if m == nil {
		return
	}
	if err != nil {
		m.reloads.WithLabelValues(ReloadFailed).Inc()
		return
	}
	m.reloads.WithLabelValues(ReloadOK).Inc()
	m.categories.Set(float64(categories))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry is exposed for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
