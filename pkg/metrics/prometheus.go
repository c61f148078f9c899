// Package metrics provides Prometheus metrics for the district
// opportunity scoring service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Scoring run metrics
	districtsScored   prometheus.Counter
	districtsExcluded *prometheus.CounterVec
	runDuration       prometheus.Histogram
	lastRunUnix       prometheus.Gauge
	districtsByTier   *prometheus.GaugeVec
	totalDistricts    prometheus.Gauge

	// Pipeline plumbing metrics
	queueDepth        prometheus.Gauge
	workerCount       prometheus.Gauge
	boardQueryLatency prometheus.Histogram

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global manager on a custom registry, keeping default Go collector
// noise out of /healthz.
var (
	customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // singleton metrics registry
	globalManager  *Manager                   //nolint:gochecknoglobals // singleton metrics manager
)

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "blueintel",
		subsystem:        "opportunity",
		histogramBuckets: prometheus.DefBuckets,
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

	m.districtsScored = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "districts_scored_total",
		Help:      "Total number of districts scored across all runs",
	})

	m.districtsExcluded = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "districts_excluded_total",
		Help:      "Total number of districts excluded from scoring runs, by reason",
	}, []string{"reason"})

	m.runDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "run_duration_milliseconds",
		Help:      "Histogram of full scoring run duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.lastRunUnix = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "last_run_timestamp_seconds",
		Help:      "Unix timestamp of the last completed scoring run",
	})

	m.districtsByTier = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "districts_by_tier",
		Help:      "Number of districts per strategic tier in the current snapshot",
	}, []string{"chamber", "tier"})

	m.totalDistricts = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "total_districts",
		Help:      "Total number of districts in the current snapshot",
	})

	m.queueDepth = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "queue_depth",
		Help:      "Current number of queued score jobs",
	})

	m.workerCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "worker_count",
		Help:      "Number of scoring workers in the pool",
	})

	m.boardQueryLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "board_query_latency_milliseconds",
		Help:      "Histogram of district board query latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests by endpoint, method, and status",
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_milliseconds",
		Help:      "Histogram of HTTP request duration by endpoint and method",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method"})
}

// GetRegistry returns the registry backing the global manager, for
// serving via promhttp.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// Package-level helpers against the global manager.

// RecordDistrictScored counts one successfully scored district.
func RecordDistrictScored() {
	globalManager.districtsScored.Inc()
}

// RecordDistrictExcluded counts a district excluded from a run.
func RecordDistrictExcluded(reason string) {
	globalManager.districtsExcluded.WithLabelValues(reason).Inc()
}

// ObserveRunDuration records the duration of a full scoring run.
func ObserveRunDuration(ms float64) {
	globalManager.runDuration.Observe(ms)
}

// SetLastRunUnix records when the last run completed.
func SetLastRunUnix(ts float64) {
	globalManager.lastRunUnix.Set(ts)
}

// SetTierCount publishes the per-tier district count for a chamber.
func SetTierCount(chamber, tier string, count int) {
	globalManager.districtsByTier.WithLabelValues(chamber, tier).Set(float64(count))
}

// SetTotalDistricts publishes the snapshot's district count.
func SetTotalDistricts(count int) {
	globalManager.totalDistricts.Set(float64(count))
}

// SetQueueDepth publishes the current score job backlog.
func SetQueueDepth(depth int) {
	globalManager.queueDepth.Set(float64(depth))
}

// SetWorkerCount publishes the scoring worker pool size.
func SetWorkerCount(count int) {
	globalManager.workerCount.Set(float64(count))
}

// ObserveBoardQueryLatency records a district board query duration.
func ObserveBoardQueryLatency(ms float64) {
	globalManager.boardQueryLatency.Observe(ms)
}

// RecordHTTPRequest counts an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// ObserveHTTPRequestDuration records an HTTP request duration.
func ObserveHTTPRequestDuration(endpoint, method string, ms float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method).Observe(ms)
}
