// Package metrics provides Prometheus metrics for the studio service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Generation outcome labels.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Metrics holds all Prometheus metrics of the service.
type Metrics struct {
	// Generation metrics
	GenerationRequestsTotal *prometheus.CounterVec
	GenerationDuration      *prometheus.HistogramVec

	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Collection sizes
	HistoryItems prometheus.Gauge
	Clients      prometheus.Gauge

	gatherer prometheus.Gatherer
}

// New creates the metrics and registers them on reg.
func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)
	m := &Metrics{gatherer: reg}

	m.GenerationRequestsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studio_generation_requests_total",
			Help: "Total number of generation calls by content type and outcome",
		},
		[]string{"content_type", "status"},
	)

	m.GenerationDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "studio_generation_duration_seconds",
			Help:    "Duration of generation calls in seconds",
			Buckets: []float64{.25, .5, 1, 2.5, 5, 10, 20, 40, 80},
		},
		[]string{"content_type"},
	)

	m.HTTPRequestsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studio_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	m.HTTPRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "studio_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	m.HistoryItems = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "studio_history_items",
			Help: "Number of items in the generation history",
		},
	)

	m.Clients = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "studio_clients",
			Help: "Number of records in the client registry",
		},
	)

	return m
}

// ObserveGeneration records one generation call.
func (m *Metrics) ObserveGeneration(contentType, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.GenerationRequestsTotal.WithLabelValues(contentType, status).Inc()
	m.GenerationDuration.WithLabelValues(contentType).Observe(d.Seconds())
}

// ObserveHTTP records one served HTTP request.
func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, statusClass(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// SetHistoryItems updates the history size gauge.
func (m *Metrics) SetHistoryItems(n int) {
	if m == nil {
		return
	}
	m.HistoryItems.Set(float64(n))
}

// SetClients updates the client registry size gauge.
func (m *Metrics) SetClients(n int) {
	if m == nil {
		return
	}
	m.Clients.Set(float64(n))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
