// Package metrics provides disk space query metrics for observability
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// DiskUtilsMetrics contains Prometheus metrics for disk space queries
type DiskUtilsMetrics struct {
	registry *prometheus.Registry

	// Volume figures from the last Usage snapshot
	totalMegabytes     *prometheus.GaugeVec
	availableMegabytes *prometheus.GaugeVec
	busyMegabytes      *prometheus.GaugeVec

	// Query operation metrics
	queriesTotal         *prometheus.CounterVec
	queryDurationSeconds *prometheus.HistogramVec

	// Errors observed through the error hook
	errorsTotal *prometheus.CounterVec
}

// NewDiskUtilsMetrics creates and registers new disk space query metrics
func NewDiskUtilsMetrics(registry *prometheus.Registry) (*DiskUtilsMetrics, error) {
	m := &DiskUtilsMetrics{registry: registry}
	m.initMetrics()
	if err := registry.Register(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *DiskUtilsMetrics) initMetrics() {
	m.totalMegabytes = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "diskutils_total_megabytes",
			Help: "Total size of the volume in megabytes",
		},
		[]string{LabelVolume, LabelPath},
	)

	m.availableMegabytes = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "diskutils_available_megabytes",
			Help: "Space available to unprivileged users in megabytes",
		},
		[]string{LabelVolume, LabelPath},
	)

	m.busyMegabytes = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "diskutils_busy_megabytes",
			Help: "Used space in megabytes, reserved blocks counted as free",
		},
		[]string{LabelVolume, LabelPath},
	)

	m.queriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "diskutils_queries_total",
			Help: "Total number of block statistics queries",
		},
		[]string{LabelOperation, LabelStatus}, // status: success, error
	)

	m.queryDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "diskutils_query_duration_seconds",
			Help:    "Time taken to read block statistics",
			Buckets: prometheus.ExponentialBuckets(BucketStart10us, BucketFactor4, BucketCount10), // 10us to ~2.6s
		},
		[]string{LabelOperation},
	)

	m.errorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "diskutils_errors_total",
			Help: "Total number of errors by component and category",
		},
		[]string{LabelComponent, LabelCategory},
	)
}

// Describe implements the Collector interface
func (m *DiskUtilsMetrics) Describe(ch chan<- *prometheus.Desc) {
	m.totalMegabytes.Describe(ch)
	m.availableMegabytes.Describe(ch)
	m.busyMegabytes.Describe(ch)
	m.queriesTotal.Describe(ch)
	m.queryDurationSeconds.Describe(ch)
	m.errorsTotal.Describe(ch)
}

// Collect implements the Collector interface
func (m *DiskUtilsMetrics) Collect(ch chan<- prometheus.Metric) {
	m.totalMegabytes.Collect(ch)
	m.availableMegabytes.Collect(ch)
	m.busyMegabytes.Collect(ch)
	m.queriesTotal.Collect(ch)
	m.queryDurationSeconds.Collect(ch)
	m.errorsTotal.Collect(ch)
}

// RecordQuery records one statistics read
func (m *DiskUtilsMetrics) RecordQuery(operation, status string, duration time.Duration) {
	m.queriesTotal.WithLabelValues(operation, status).Inc()
	m.queryDurationSeconds.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordUsage sets the volume gauges from a usage snapshot. Each queried
// path gets its own series.
func (m *DiskUtilsMetrics) RecordUsage(volume, path string, totalMB, availableMB, busyMB int64) {
	m.totalMegabytes.WithLabelValues(volume, path).Set(float64(totalMB))
	m.availableMegabytes.WithLabelValues(volume, path).Set(float64(availableMB))
	m.busyMegabytes.WithLabelValues(volume, path).Set(float64(busyMB))
}

// RecordError counts an error by component and category
func (m *DiskUtilsMetrics) RecordError(component, category string) {
	m.errorsTotal.WithLabelValues(component, category).Inc()
}
