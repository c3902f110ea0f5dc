package conf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/diskutils/internal/diskutils"
	"github.com/tphakala/diskutils/internal/errors"
)

// isolate resets viper and points every config search path at empty temp dirs.
// Tests using it cannot run in parallel: viper state is global.
func isolate(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("HOME", filepath.Join(dir, "home"))
	t.Setenv("APPDATA", filepath.Join(dir, "appdata"))
	t.Chdir(dir)

	for _, b := range getEnvBindings() {
		t.Setenv(b.EnvVar, "")
	}

	viper.Reset()
	t.Cleanup(viper.Reset)
	return dir
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	settings, err := Load("")
	require.NoError(t, err)

	assert.False(t, settings.Debug)
	assert.Equal(t, FormatText, settings.Output.Format)
	assert.Empty(t, settings.Storage.InternalRoot)
	assert.Empty(t, settings.Storage.ExternalRoot)
	assert.Empty(t, settings.Metrics.Textfile)
	assert.Equal(t, "warn", settings.Logging.DefaultLevel)
	require.NotNil(t, settings.Logging.Console)
	assert.True(t, settings.Logging.Console.Enabled)
	require.NotNil(t, settings.Logging.FileOutput)
	assert.False(t, settings.Logging.FileOutput.Enabled)
	assert.Empty(t, ConfigFileUsed())
	assert.Same(t, settings, GetSettings())
}

func TestLoad_ExplicitFile(t *testing.T) {
	dir := isolate(t)

	path := filepath.Join(dir, "custom.yaml")
	writeConfig(t, path, `
storage:
  internal_root: /data
  external_root: /sdcard
output:
  format: json
metrics:
  textfile: /var/lib/node_exporter/diskutils.prom
logging:
  default_level: info
  module_levels:
    diskutils: debug
`)

	settings, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/data", settings.Storage.InternalRoot)
	assert.Equal(t, "/sdcard", settings.Storage.ExternalRoot)
	assert.Equal(t, FormatJSON, settings.Output.Format)
	assert.Equal(t, "/var/lib/node_exporter/diskutils.prom", settings.Metrics.Textfile)
	assert.Equal(t, "info", settings.Logging.DefaultLevel)
	assert.Equal(t, "debug", settings.Logging.ModuleLevels["diskutils"])
	assert.Equal(t, path, ConfigFileUsed())

	r := settings.Resolver()
	assert.Equal(t, "/data", r.Path(diskutils.Internal))
	assert.Equal(t, "/sdcard", r.Path(diskutils.External))
}

func TestLoad_SearchPath(t *testing.T) {
	dir := isolate(t)

	writeConfig(t, filepath.Join(dir, "config.yaml"), "output:\n  format: yaml\n")

	settings, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, settings.Output.Format)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	dir := isolate(t)

	_, err := Load(filepath.Join(dir, "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsCategory(err, errors.CategoryConfiguration))
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, filepath.Join(dir, "config.yaml"), "output:\n  format: yaml\nstorage:\n  internal_root: /from-file\n")

	t.Setenv("DISKUTILS_OUTPUT", "json")
	t.Setenv("DISKUTILS_INTERNAL_ROOT", "/from-env")
	t.Setenv("DISKUTILS_DEBUG", "true")

	settings, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, FormatJSON, settings.Output.Format)
	assert.Equal(t, "/from-env", settings.Storage.InternalRoot)
	assert.True(t, settings.Debug)
	assert.Equal(t, "debug", settings.Logging.DefaultLevel)
	assert.Equal(t, "debug", settings.Logging.Console.Level)
}

func TestLoad_InvalidEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("DISKUTILS_OUTPUT", "xml")
	t.Setenv("DISKUTILS_EXTERNAL_ROOT", "relative/dir")

	_, err := Load("")
	require.Error(t, err)
	assert.True(t, errors.IsCategory(err, errors.CategoryConfiguration))
	assert.Contains(t, err.Error(), "DISKUTILS_OUTPUT")
	assert.Contains(t, err.Error(), "DISKUTILS_EXTERNAL_ROOT")
}

func TestLoad_InvalidFileValues(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.yaml")
	writeConfig(t, path, "output:\n  format: csv\nlogging:\n  default_level: loud\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsCategory(err, errors.CategoryValidation))

	var ve ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Len(t, ve.Errors, 2)
}

func TestLoad_RelativeRootInFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.yaml")
	writeConfig(t, path, "storage:\n  external_root: sdcard\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsCategory(err, errors.CategoryValidation))
	assert.Contains(t, err.Error(), "storage.external_root")
}

func TestSetup_LogFileError(t *testing.T) {
	dir := isolate(t)

	// A regular file where the log directory should be
	blocker := filepath.Join(dir, "blocker")
	writeConfig(t, blocker, "")
	path := filepath.Join(dir, "config.yaml")
	writeConfig(t, path, "logging:\n  file_output:\n    enabled: true\n    path: "+
		filepath.ToSlash(filepath.Join(blocker, "logs", "diskutils.log"))+"\n")

	ctx := NewContext(nil)
	err := ctx.Setup(path)
	require.Error(t, err)
	assert.True(t, errors.IsCategory(err, errors.CategoryFileIO))
	require.NoError(t, ctx.Close())
}

func TestGetDefaultConfigPaths(t *testing.T) {
	dir := isolate(t)

	paths := GetDefaultConfigPaths()
	require.NotEmpty(t, paths)
	assert.Equal(t, ".", paths[len(paths)-1])
	assert.Contains(t, paths, filepath.Join(dir, "home", ".config", AppName))
}
