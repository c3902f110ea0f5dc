package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/diskutils/internal/diskutils"
)

var _ diskutils.Recorder = (*DiskUtilsMetrics)(nil)

func newTestMetrics(t *testing.T) (*DiskUtilsMetrics, *prometheus.Registry) {
	t.Helper()
	registry := prometheus.NewRegistry()
	m, err := NewDiskUtilsMetrics(registry)
	require.NoError(t, err)
	return m, registry
}

func TestNewDiskUtilsMetrics_DuplicateRegistration(t *testing.T) {
	t.Parallel()

	_, registry := newTestMetrics(t)
	_, err := NewDiskUtilsMetrics(registry)
	require.Error(t, err)
}

func TestRecordUsage(t *testing.T) {
	t.Parallel()

	m, _ := newTestMetrics(t)

	m.RecordUsage("internal", "/data", 10240, 5120, 2048)
	m.RecordUsage("external", "/sdcard", 29296, 8789, 19531)
	m.RecordUsage("internal", "/data", 10240, 5000, 2100)

	assert.InDelta(t, 10240, testutil.ToFloat64(m.totalMegabytes.WithLabelValues("internal", "/data")), 0)
	assert.InDelta(t, 5000, testutil.ToFloat64(m.availableMegabytes.WithLabelValues("internal", "/data")), 0)
	assert.InDelta(t, 2100, testutil.ToFloat64(m.busyMegabytes.WithLabelValues("internal", "/data")), 0)
	assert.InDelta(t, 19531, testutil.ToFloat64(m.busyMegabytes.WithLabelValues("external", "/sdcard")), 0)
	assert.Equal(t, 2, testutil.CollectAndCount(m.totalMegabytes))
}

func TestRecordUsage_DistinctPaths(t *testing.T) {
	t.Parallel()

	m, _ := newTestMetrics(t)

	m.RecordUsage("path", "/mnt/a", 100, 50, 40)
	m.RecordUsage("path", "/mnt/b", 200, 150, 30)

	assert.Equal(t, 2, testutil.CollectAndCount(m, "diskutils_total_megabytes"))
	assert.InDelta(t, 100, testutil.ToFloat64(m.totalMegabytes.WithLabelValues("path", "/mnt/a")), 0)
	assert.InDelta(t, 200, testutil.ToFloat64(m.totalMegabytes.WithLabelValues("path", "/mnt/b")), 0)
}

func TestRecordQuery(t *testing.T) {
	t.Parallel()

	m, registry := newTestMetrics(t)

	m.RecordQuery("total", "success", 50*time.Microsecond)
	m.RecordQuery("total", "success", 3*time.Millisecond)
	m.RecordQuery("total", "error", time.Millisecond)

	assert.InDelta(t, 2, testutil.ToFloat64(m.queriesTotal.WithLabelValues("total", "success")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.queriesTotal.WithLabelValues("total", "error")), 0)

	expected := `
# HELP diskutils_queries_total Total number of block statistics queries
# TYPE diskutils_queries_total counter
diskutils_queries_total{operation="total",status="error"} 1
diskutils_queries_total{operation="total",status="success"} 2
`
	require.NoError(t, testutil.GatherAndCompare(registry, strings.NewReader(expected), "diskutils_queries_total"))

	families, err := registry.Gather()
	require.NoError(t, err)
	var hist *dto.Histogram
	for _, mf := range families {
		if mf.GetName() == "diskutils_query_duration_seconds" {
			hist = mf.GetMetric()[0].GetHistogram()
		}
	}
	require.NotNil(t, hist)
	assert.Equal(t, uint64(3), hist.GetSampleCount())
	assert.InDelta(t, 0.00405, hist.GetSampleSum(), 1e-9)
}

func TestRecordError(t *testing.T) {
	t.Parallel()

	m, _ := newTestMetrics(t)
	m.RecordError("diskutils", "disk-usage")
	m.RecordError("conf", "validation")
	m.RecordError("diskutils", "disk-usage")

	assert.InDelta(t, 2, testutil.ToFloat64(m.errorsTotal.WithLabelValues("diskutils", "disk-usage")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.errorsTotal.WithLabelValues("conf", "validation")), 0)
}
