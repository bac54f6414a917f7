// Package metrics provides Prometheus metrics for applications built
// on the TETRA CHANNEL client. The client itself stays pass-through;
// wire Observer into it to start recording.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager owns the request metrics for one client.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestFailures *prometheus.CounterVec
}

// Custom registry so the default Go runtime collectors stay out of
// the scrape.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // singleton metrics registry

var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "tetra",
		subsystem:        "client",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}

	auto := promauto.With(m.registry)
	m.requests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "requests_total",
			Help:      "Total number of API requests by endpoint and HTTP status",
		},
		[]string{"endpoint", "status"},
	)
	m.requestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "request_duration_seconds",
			Help:      "API request round-trip duration in seconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint"},
	)
	m.requestFailures = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "request_failures_total",
			Help:      "Total number of API requests that never produced a response",
		},
		[]string{"endpoint"},
	)

	return m
}

// Record counts one round trip. A status of 0 means the request never
// produced a response.
func (m *Manager) Record(endpoint string, status int, elapsed time.Duration) {
	if status == 0 {
		m.requestFailures.WithLabelValues(endpoint).Inc()
	} else {
		m.requests.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
	}
	m.requestDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

// RecordRequest records one round trip on the global manager.
func RecordRequest(endpoint string, status int, elapsed time.Duration) {
	globalManager.Record(endpoint, status, elapsed)
}

// Observer returns a hook recording every round trip on the global
// manager. Pass it to the client's WithObserver option.
func Observer() func(endpoint string, status int, elapsed time.Duration) {
	return RecordRequest
}

// Handler returns an HTTP handler exposing the global registry in
// Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(customRegistry, promhttp.HandlerOpts{})
}

// GetRegistry returns the custom Prometheus registry backing the
// global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
