package conf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/diskutils/internal/logger"
)

func validSettings() *Settings {
	return &Settings{
		Output: OutputSettings{Format: FormatText},
		Logging: logger.LoggingConfig{
			DefaultLevel: "warn",
			Console:      &logger.ConsoleOutput{Enabled: true},
			FileOutput:   &logger.FileOutput{Path: logger.DefaultLogPath},
		},
	}
}

func TestValidateSettings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr string
	}{
		{"valid", func(*Settings) {}, ""},
		{"yaml output", func(s *Settings) { s.Output.Format = FormatYAML }, ""},
		{"unknown output", func(s *Settings) { s.Output.Format = "csv" }, "output.format"},
		{"textfile extension", func(s *Settings) { s.Metrics.Textfile = "/tmp/diskutils.txt" }, "metrics.textfile"},
		{"textfile ok", func(s *Settings) { s.Metrics.Textfile = "/tmp/diskutils.prom" }, ""},
		{"absolute root", func(s *Settings) { s.Storage.InternalRoot = "/data" }, ""},
		{"relative root", func(s *Settings) { s.Storage.InternalRoot = "." }, "storage.internal_root"},
		{"relative external root", func(s *Settings) { s.Storage.ExternalRoot = "sdcard" }, "storage.external_root"},
		{"NUL in root", func(s *Settings) { s.Storage.ExternalRoot = "/mnt/\x00sd" }, "storage.external_root"},
		{"bad default level", func(s *Settings) { s.Logging.DefaultLevel = "verbose" }, "logging.default_level"},
		{"bad module level", func(s *Settings) { s.Logging.ModuleLevels = map[string]string{"diskutils": "loud"} }, "logging.module_levels.diskutils"},
		{"bad timezone", func(s *Settings) { s.Logging.Timezone = "Mars/Olympus" }, "logging.timezone"},
		{"file output without path", func(s *Settings) {
			s.Logging.FileOutput = &logger.FileOutput{Enabled: true}
		}, "file_output.path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := validSettings()
			tt.mutate(s)
			err := ValidateSettings(s)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateEnvBool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value   string
		wantErr bool
	}{
		{"true", false},
		{"0", false},
		{" TRUE ", false},
		{"yes", true},
		{"", true},
		{"1.0", true},
	}

	for _, tt := range tests {
		err := validateEnvBool(tt.value)
		if tt.wantErr {
			require.Error(t, err, tt.value)
			assert.Contains(t, err.Error(), "invalid boolean value")
		} else {
			assert.NoError(t, err, tt.value)
		}
	}
}

func TestValidateEnvValues(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validateEnvOutputFormat("json"))
	assert.Error(t, validateEnvOutputFormat("JSON"))

	assert.NoError(t, validateEnvLogLevel("trace"))
	assert.Error(t, validateEnvLogLevel("fatal"))

	assert.NoError(t, validateEnvTextfile("/var/lib/node_exporter/diskutils.prom"))
	assert.Error(t, validateEnvTextfile("/var/lib/node_exporter/diskutils"))

	assert.Error(t, validateEnvPath("data"))
	assert.NoError(t, validateEnvPath("/data"))
}
