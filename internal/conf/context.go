package conf

import (
	"context"
	"io/fs"
	"sync"

	"github.com/google/uuid"

	"github.com/tphakala/diskutils/internal/buildinfo"
	"github.com/tphakala/diskutils/internal/diskutils"
	"github.com/tphakala/diskutils/internal/errors"
	"github.com/tphakala/diskutils/internal/logger"
	"github.com/tphakala/diskutils/internal/observability"
)

// Context carries what every command of one invocation shares. Each
// invocation gets a random run ID, attached to its logs as trace_id.
type Context struct {
	Settings  *Settings
	BuildInfo *buildinfo.Context
	RunID     string
	Metrics   *observability.Metrics

	mu       sync.Mutex
	logger   *logger.CentralLogger
	query    *diskutils.Query
	traceCtx context.Context
}

// NewContext creates a context for one invocation.
func NewContext(build *buildinfo.Context) *Context {
	runID := uuid.NewString()
	return &Context{
		BuildInfo: build,
		RunID:     runID,
		traceCtx:  logger.WithTraceID(context.Background(), runID),
	}
}

// Setup loads settings and prepares logging, metrics and the query service.
func (c *Context) Setup(configFile string) error {
	settings, err := Load(configFile)
	if err != nil {
		return err
	}

	cl, err := logger.NewCentralLogger(&settings.Logging)
	if err != nil {
		category := errors.CategoryConfiguration
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			category = errors.CategoryFileIO
		}
		return errors.New(err).
			Component("conf").
			Category(category).
			Context("operation", "init_logger").
			Build()
	}
	logger.SetGlobal(cl)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.Settings = settings
	c.logger = cl

	opts := []diskutils.Option{
		diskutils.WithResolver(settings.Resolver()),
		diskutils.WithLogger(diskutils.GetLogger().WithContext(c.traceCtx)),
	}

	if settings.Metrics.Textfile != "" {
		m, err := observability.NewMetrics()
		if err != nil {
			return errors.New(err).
				Component("conf").
				Category(errors.CategoryMetrics).
				Context("operation", "init_metrics").
				Build()
		}
		m.CountErrors()
		c.Metrics = m
		opts = append(opts, diskutils.WithRecorder(m.DiskUtils))
	}

	c.query = diskutils.New(opts...)

	GetLogger().WithContext(c.traceCtx).Debug("Invocation configured",
		logger.String("internal_root", c.query.Path(diskutils.Internal)),
		logger.String("external_root", c.query.Path(diskutils.External)),
		logger.Bool("metrics", c.Metrics != nil))
	return nil
}

// TraceContext returns a context carrying the run ID for loggers.
func (c *Context) TraceContext() context.Context {
	if c.traceCtx == nil {
		return context.Background()
	}
	return c.traceCtx
}

// Query returns the query service, creating a default one if Setup was not run.
func (c *Context) Query() *diskutils.Query {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.query == nil {
		c.query = diskutils.New()
	}
	return c.query
}

// SetQuery replaces the query service.
func (c *Context) SetQuery(q *diskutils.Query) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query = q
}

// Close writes the metrics textfile, if enabled, and closes log files.
func (c *Context) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var errs []error
	if c.Metrics != nil && c.Settings != nil && c.Settings.Metrics.Textfile != "" {
		if err := c.Metrics.WriteTextfile(c.Settings.Metrics.Textfile); err != nil {
			errs = append(errs, err)
		}
	}
	if c.logger != nil {
		if err := c.logger.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
