// Package diskutils reports total, available and busy space of a storage volume in
// megabytes (1 MB = 1,048,576 bytes, rounded down).
//
// A Query resolves a Volume or an explicit path, reads one BlockStats snapshot
// from its StatsSource and converts block counts with 128-bit arithmetic, so
// no combination of block count and block size can overflow. Queries are
// synchronous, hold no mutable state and are safe for concurrent use.
package diskutils

import (
	"time"

	"github.com/tphakala/diskutils/internal/errors"
	"github.com/tphakala/diskutils/internal/logger"
)

// Operation names used in logs, error context and metrics.
const (
	OpTotal     = "total"
	OpAvailable = "available"
	OpBusy      = "busy"
	OpUsage     = "usage"
)

// Query status labels passed to a Recorder.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// LabelPath is the Usage.Volume label for an explicit, non-empty path.
const LabelPath = "path"

// Recorder receives query observations. The metrics package implements it.
type Recorder interface {
	RecordQuery(operation, status string, duration time.Duration)
	RecordUsage(volume, path string, totalMB, availableMB, busyMB int64)
}

// Usage holds every figure computed from a single snapshot, so
// BusyMB == TotalMB - FreeMB always holds.
type Usage struct {
	Volume      string `json:"volume" yaml:"volume"`
	Path        string `json:"path" yaml:"path"`
	TotalMB     int64  `json:"total_mb" yaml:"total_mb"`
	AvailableMB int64  `json:"available_mb" yaml:"available_mb"`
	FreeMB      int64  `json:"free_mb" yaml:"free_mb"`
	BusyMB      int64  `json:"busy_mb" yaml:"busy_mb"`
}

// Query is the disk space query service.
type Query struct {
	source   StatsSource
	resolver Resolver
	log      logger.Logger
	recorder Recorder
}

// Option configures a Query.
type Option func(*Query)

// WithSource replaces the operating system statistics source.
func WithSource(src StatsSource) Option {
	return func(q *Query) {
		if src != nil {
			q.source = src
		}
	}
}

// WithResolver sets the volume roots.
func WithResolver(r Resolver) Option {
	return func(q *Query) {
		q.resolver = r
	}
}

// WithLogger sets the logger; the diskutils module logger is used otherwise.
func WithLogger(l logger.Logger) Option {
	return func(q *Query) {
		if l != nil {
			q.log = l
		}
	}
}

// WithRecorder enables metrics recording.
func WithRecorder(r Recorder) Option {
	return func(q *Query) {
		q.recorder = r
	}
}

// New creates a Query. Without options it reads OS statistics and resolves
// volumes from the environment.
func New(opts ...Option) *Query {
	q := &Query{
		source:   OSStats(),
		resolver: DefaultResolver(),
	}
	for _, opt := range opts {
		opt(q)
	}
	if q.log == nil {
		q.log = GetLogger()
	}
	return q
}

// Resolver returns the roots the query resolves volumes against.
func (q *Query) Resolver() Resolver {
	return q.resolver
}

// Path returns the filesystem path queried for v.
func (q *Query) Path(v Volume) string {
	return q.resolver.Path(v)
}

// TotalMB returns the size of the volume in megabytes.
func (q *Query) TotalMB(v Volume) (int64, error) {
	st, err := q.snapshot(OpTotal, q.Path(v))
	if err != nil {
		return 0, err
	}
	return TotalMB(st), nil
}

// AvailableMB returns the space available to unprivileged callers on the volume.
func (q *Query) AvailableMB(v Volume) (int64, error) {
	return q.AvailableMBAt(q.Path(v))
}

// AvailableMBAt returns the available space of the filesystem containing path.
// An empty path means the internal volume.
func (q *Query) AvailableMBAt(path string) (int64, error) {
	st, err := q.snapshot(OpAvailable, q.resolver.PathOrInternal(path))
	if err != nil {
		return 0, err
	}
	return AvailableMB(st), nil
}

// BusyMB returns the used space of the volume, counting reserved blocks as free.
func (q *Query) BusyMB(v Volume) (int64, error) {
	st, err := q.snapshot(OpBusy, q.Path(v))
	if err != nil {
		return 0, err
	}
	return BusyMB(st), nil
}

// Usage returns all figures for v from one snapshot.
func (q *Query) Usage(v Volume) (Usage, error) {
	return q.usage(v.String(), q.Path(v))
}

// UsageAt returns all figures for the filesystem containing path.
// An empty path means the internal volume.
func (q *Query) UsageAt(path string) (Usage, error) {
	if path == "" {
		return q.Usage(Internal)
	}
	return q.usage(LabelPath, path)
}

func (q *Query) usage(label, path string) (Usage, error) {
	st, err := q.snapshot(OpUsage, path)
	if err != nil {
		return Usage{}, err
	}

	u := Usage{
		Volume:      label,
		Path:        path,
		TotalMB:     TotalMB(st),
		AvailableMB: AvailableMB(st),
		FreeMB:      FreeMB(st),
		BusyMB:      BusyMB(st),
	}
	if q.recorder != nil {
		q.recorder.RecordUsage(label, path, u.TotalMB, u.AvailableMB, u.BusyMB)
	}
	return u, nil
}

// snapshot reads statistics for path. OS errors are wrapped with context but keep
// their message and remain reachable through errors.Is.
func (q *Query) snapshot(op, path string) (BlockStats, error) {
	start := time.Now()
	st, err := q.source.Statfs(path)
	elapsed := time.Since(start)

	if err != nil {
		q.record(op, StatusError, elapsed)
		q.log.Debug("statfs failed",
			logger.String("operation", op),
			logger.String("path", path),
			logger.Duration("elapsed", elapsed),
			logger.Error(err))
		return BlockStats{}, errors.New(err).
			Component("diskutils").
			Category(errors.CategoryDiskUsage).
			Context("path", path).
			Timing(op, elapsed).
			Build()
	}

	q.record(op, StatusSuccess, elapsed)
	q.log.Trace("statfs completed",
		logger.String("operation", op),
		logger.String("path", path),
		logger.Uint64("total_blocks", st.TotalBlocks),
		logger.Uint64("free_blocks", st.FreeBlocks),
		logger.Uint64("available_blocks", st.AvailableBlocks),
		logger.Uint64("block_size", st.BlockSize),
		logger.Duration("elapsed", elapsed))
	return st, nil
}

func (q *Query) record(op, status string, d time.Duration) {
	if q.recorder != nil {
		q.recorder.RecordQuery(op, status, d)
	}
}
