// Package metrics provides Prometheus collectors for the sitter discovery service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/labstack/echo/v4"
)

const namespace = "sandy"

// Metrics holds all collectors registered by the service.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	discoveryRequests  prometheus.Counter
	discoveryFailures  prometheus.Counter
	geocoderLookups    prometheus.Counter
	geocoderFailures   prometheus.Counter
	availabilityWrites prometheus.Counter
	rollbacks          prometheus.Counter
}

// New creates a Metrics instance with its own registry, keeping the default
// Go collectors out of the exposition.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by endpoint, method and status code.",
		}, []string{"endpoint", "method", "status"}),
		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by endpoint and method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint", "method"}),
		discoveryRequests: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "discovery",
			Name:      "requests_total",
			Help:      "Sitter discovery aggregations attempted.",
		}),
		discoveryFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "discovery",
			Name:      "failures_total",
			Help:      "Sitter discovery aggregations aborted by a hard failure.",
		}),
		geocoderLookups: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "geocoder",
			Name:      "lookups_total",
			Help:      "Outbound address lookups issued.",
		}),
		geocoderFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "geocoder",
			Name:      "failures_total",
			Help:      "Outbound address lookups that failed or found nothing.",
		}),
		availabilityWrites: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "availability",
			Name:      "writes_total",
			Help:      "Availability replace transactions committed.",
		}),
		rollbacks: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "availability",
			Name:      "rollbacks_total",
			Help:      "Availability replace transactions rolled back.",
		}),
	}
}

// Handler returns the Prometheus exposition handler for this registry.
func (m *Metrics) Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

// RecordHTTPRequest records one handled HTTP request.
func (m *Metrics) RecordHTTPRequest(endpoint, method, status string, durationSeconds float64) {
	m.httpRequests.WithLabelValues(endpoint, method, status).Inc()
	m.httpRequestDuration.WithLabelValues(endpoint, method).Observe(durationSeconds)
}

// RecordDiscovery records one aggregation attempt and whether it failed.
func (m *Metrics) RecordDiscovery(failed bool) {
	m.discoveryRequests.Inc()
	if failed {
		m.discoveryFailures.Inc()
	}
}

// RecordGeocoderLookup records one outbound lookup and whether it failed.
func (m *Metrics) RecordGeocoderLookup(failed bool) {
	m.geocoderLookups.Inc()
	if failed {
		m.geocoderFailures.Inc()
	}
}

// RecordAvailabilityWrite records a committed replace transaction.
func (m *Metrics) RecordAvailabilityWrite() {
	m.availabilityWrites.Inc()
}

// RecordAvailabilityRollback records a rolled-back replace transaction.
func (m *Metrics) RecordAvailabilityRollback() {
	m.rollbacks.Inc()
}
