package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/diskutils/internal/buildinfo"
	"github.com/tphakala/diskutils/internal/conf"
	"github.com/tphakala/diskutils/internal/errors"
)

// run executes the root command in an isolated environment. Not parallel:
// viper, the global logger and error hooks are process-wide.
func run(t *testing.T, args ...string) (string, *conf.Context, error) {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("HOME", filepath.Join(dir, "home"))
	for _, env := range []string{"DISKUTILS_INTERNAL_ROOT", "DISKUTILS_EXTERNAL_ROOT", "DISKUTILS_OUTPUT", "DISKUTILS_DEBUG", "DISKUTILS_LOG_LEVEL", "DISKUTILS_METRICS_TEXTFILE"} {
		t.Setenv(env, "")
	}
	t.Chdir(dir)

	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Cleanup(errors.ClearErrorHooks)

	ctx := conf.NewContext(buildinfo.NewContext("v0.0.0-test", "2026-10-17"))
	root := RootCommand(ctx)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)

	err := root.Execute()
	require.NoError(t, ctx.Close())
	return out.String(), ctx, err
}

func parseMB(t *testing.T, out string) int64 {
	t.Helper()
	mb, err := strconv.ParseInt(strings.TrimSpace(out), 10, 64)
	require.NoError(t, err, "output %q", out)
	return mb
}

func TestTotalAndBusy(t *testing.T) {
	dir := t.TempDir()

	out, _, err := run(t, "total", "--internal-root", dir)
	require.NoError(t, err)
	total := parseMB(t, out)
	assert.Positive(t, total)

	out, _, err = run(t, "total", "--external", "--external-root", dir)
	require.NoError(t, err)
	assert.Equal(t, total, parseMB(t, out))

	out, _, err = run(t, "busy", "--internal-root", dir)
	require.NoError(t, err)
	busy := parseMB(t, out)
	assert.GreaterOrEqual(t, busy, int64(0))
	assert.LessOrEqual(t, busy, total)
}

func TestAvailable(t *testing.T) {
	dir := t.TempDir()

	out, _, err := run(t, "available", "--path", dir)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, parseMB(t, out), int64(0))

	_, _, err = run(t, "available", "--path", dir, "--external")
	require.Error(t, err, "--path and --external are mutually exclusive")
}

func TestMissingRoot(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")

	_, _, err := run(t, "total", "--internal-root", missing)
	require.Error(t, err)
	assert.True(t, errors.IsCategory(err, errors.CategoryDiskUsage))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestRelativeRootRejected(t *testing.T) {
	_, _, err := run(t, "total", "--internal-root", "data")
	require.Error(t, err)
	assert.True(t, errors.IsCategory(err, errors.CategoryValidation))
	assert.Contains(t, err.Error(), "storage.internal_root")
}

func TestReportWritesMetrics(t *testing.T) {
	dir := t.TempDir()
	promFile := filepath.Join(dir, "diskutils.prom")

	out, ctx, err := run(t, "report", "--volume", "internal", "--internal-root", dir,
		"--no-mount", "--output", "yaml", "--metrics-textfile", promFile)
	require.NoError(t, err)
	assert.Contains(t, out, "run_id: "+ctx.RunID)
	assert.Contains(t, out, "path: "+dir)

	data, err := os.ReadFile(promFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `diskutils_total_megabytes{path="`+dir+`",volume="internal"}`)
	assert.Contains(t, string(data), `diskutils_queries_total{operation="usage",status="success"} 1`)
}

func TestConfigCommand(t *testing.T) {
	out, _, err := run(t, "config", "--internal-root", "/data", "--external-root", "/sdcard")
	require.NoError(t, err)

	assert.Contains(t, out, "internal: /data")
	assert.Contains(t, out, "external: /sdcard")
	assert.Contains(t, out, "internal_root: /data")
	assert.Contains(t, out, "format: text")
}

func TestVersionCommand(t *testing.T) {
	out, ctx, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "diskutils v0.0.0-test")
	assert.Nil(t, ctx.Settings, "version does not load settings")
}
