// Package metrics provides constants used across metric definitions.
package metrics

// Label names shared by the disk space query metrics.
const (
	LabelVolume    = "volume"
	LabelPath      = "path"
	LabelOperation = "operation"
	LabelStatus    = "status"
	LabelComponent = "component"
	LabelCategory  = "category"
)

// Histogram bucket configuration.
// statfs normally answers in microseconds but can block for seconds on a
// stale network mount, so buckets span that whole range.
const (
	// BucketStart10us is the starting bucket for 10us histograms.
	BucketStart10us = 0.00001
	// BucketFactor4 multiplies each bucket boundary by 4.
	BucketFactor4 = 4
	// BucketCount10 creates 10 histogram buckets.
	BucketCount10 = 10
)
