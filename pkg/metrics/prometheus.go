// Package metrics provides Prometheus metrics for the LastTimeI button recorder.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Press outcomes used as the "outcome" label.
const (
	OutcomeRecorded     = "recorded"
	OutcomeUnregistered = "unregistered"
	OutcomeStoreError   = "store_error"
	OutcomeFailed       = "failed"
)

// Manager owns every collector registered by the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	constLabels      prometheus.Labels
	registry         prometheus.Registerer

	pressesTotal      *prometheus.CounterVec
	storeWriteLatency prometheus.Histogram
	storeErrors       *prometheus.CounterVec
	registryEntries   prometheus.Gauge

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

var globalManager *Manager //nolint:gochecknoglobals // singleton used by the package-level helpers

var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // keeps default Go collectors out of /metrics

func init() { //nolint:gochecknoinits // global collectors must exist before any handler runs
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a Manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "lasttimei",
		subsystem:        "button",
		histogramBuckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500},
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.pressesTotal = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "presses_total",
		Help:        "Button presses handled, by outcome",
		ConstLabels: m.constLabels,
	}, []string{"outcome"})

	m.storeWriteLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "store_write_latency_milliseconds",
		Help:        "Latency of the single insert issued per press",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.constLabels,
	})

	m.storeErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "store_errors_total",
		Help:        "Failed inserts, by store backend",
		ConstLabels: m.constLabels,
	}, []string{"backend"})

	m.registryEntries = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "registry_entries",
		Help:        "Number of serial numbers mapped to an action",
		ConstLabels: m.constLabels,
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "http_requests_total",
		Help:        "HTTP requests by endpoint, method and status",
		ConstLabels: m.constLabels,
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "http_request_duration_milliseconds",
		Help:        "HTTP request duration in milliseconds",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.constLabels,
	}, []string{"endpoint", "method", "status_code"})
}

// RecordPress counts one handled press with the given outcome.
func RecordPress(outcome string) {
	globalManager.pressesTotal.WithLabelValues(outcome).Inc()
}

// RecordStoreWriteLatency observes one insert latency in milliseconds.
func RecordStoreWriteLatency(latencyMs float64) {
	globalManager.storeWriteLatency.Observe(latencyMs)
}

// RecordStoreError counts a failed insert against a backend.
func RecordStoreError(backend string) {
	globalManager.storeErrors.WithLabelValues(backend).Inc()
}

// UpdateRegistryEntries sets the registry size gauge.
func UpdateRegistryEntries(n int) {
	globalManager.registryEntries.Set(float64(n))
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// GetRegistry returns the registry served on /metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
