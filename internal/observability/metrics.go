// Package observability provides Prometheus metrics for disk space queries.
//
// diskutils is a short-lived command, so metrics are exported through the
// node_exporter textfile collector rather than an HTTP endpoint.
package observability

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/tphakala/diskutils/internal/errors"
	"github.com/tphakala/diskutils/internal/logger"
	"github.com/tphakala/diskutils/internal/observability/metrics"
)

// Metrics holds all the metric collectors for the application.
type Metrics struct {
	registry  *prometheus.Registry
	DiskUtils *metrics.DiskUtilsMetrics
}

// NewMetrics creates a new instance of Metrics on a private registry.
func NewMetrics() (*Metrics, error) {
	registry := prometheus.NewRegistry()

	diskUtilsMetrics, err := metrics.NewDiskUtilsMetrics(registry)
	if err != nil {
		return nil, fmt.Errorf("failed to create DiskUtils metrics: %w", err)
	}

	return &Metrics{
		registry:  registry,
		DiskUtils: diskUtilsMetrics,
	}, nil
}

// Registry returns the registry all collectors are registered with.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// CountErrors registers an error hook that counts every built error by
// component and category.
func (m *Metrics) CountErrors() {
	errors.AddErrorHook(func(ee *errors.EnhancedError) {
		m.DiskUtils.RecordError(ee.GetComponent(), ee.GetCategory())
	})
}

// WriteTextfile writes all metrics to path in the Prometheus text format.
// The file is replaced atomically, as the textfile collector expects.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return errors.New(err).
			Component("observability").
			Category(errors.CategoryMetrics).
			Context("path", path).
			Context("operation", "write_textfile").
			Build()
	}

	GetLogger().Debug("Metrics textfile written", logger.String("path", path))
	return nil
}
