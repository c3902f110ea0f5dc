// Package conf provides configuration management for diskutils.
//
// Settings are read with viper from, in increasing precedence: built-in
// defaults, an optional config.yaml, DISKUTILS_* environment variables and
// command line flags.
package conf

import (
	"sync"

	"github.com/spf13/viper"

	"github.com/tphakala/diskutils/internal/diskutils"
	"github.com/tphakala/diskutils/internal/errors"
	"github.com/tphakala/diskutils/internal/logger"
)

// Output formats accepted by output.format
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ConfigFileName is the base name viper searches for, without extension
const ConfigFileName = "config"

// Settings contains all configuration options for diskutils.
type Settings struct {
	Debug bool `yaml:"debug" json:"debug" mapstructure:"debug"` // true to enable debug logging

	Storage StorageSettings      `yaml:"storage" json:"storage" mapstructure:"storage"`
	Output  OutputSettings       `yaml:"output" json:"output" mapstructure:"output"`
	Metrics MetricsSettings      `yaml:"metrics" json:"metrics" mapstructure:"metrics"`
	Logging logger.LoggingConfig `yaml:"logging" json:"logging" mapstructure:"logging"`
}

// StorageSettings overrides the volume roots. Empty values keep the
// environment and platform defaults.
type StorageSettings struct {
	InternalRoot string `yaml:"internal_root" json:"internal_root" mapstructure:"internal_root"`
	ExternalRoot string `yaml:"external_root" json:"external_root" mapstructure:"external_root"`
}

// OutputSettings controls how the report command prints results.
type OutputSettings struct {
	Format string `yaml:"format" json:"format" mapstructure:"format"` // text, json or yaml
}

// MetricsSettings controls Prometheus textfile export.
type MetricsSettings struct {
	Textfile string `yaml:"textfile" json:"textfile" mapstructure:"textfile"` // *.prom file for node_exporter, empty to disable
}

// Resolver returns the volume resolver with configured roots applied.
func (s *Settings) Resolver() diskutils.Resolver {
	return diskutils.DefaultResolver().WithOverrides(s.Storage.InternalRoot, s.Storage.ExternalRoot)
}

// settingsInstance is the current settings instance
var (
	settingsInstance *Settings
	settingsMutex    sync.RWMutex
)

// Load reads defaults, the config file, environment variables and bound flags.
// configFile may be empty, in which case the default search paths are used
// and a missing file is not an error.
func Load(configFile string) (*Settings, error) {
	settingsMutex.Lock()
	defer settingsMutex.Unlock()

	settings := &Settings{}

	if err := initViper(configFile); err != nil {
		return nil, err
	}

	if err := viper.Unmarshal(settings); err != nil {
		return nil, errors.New(err).
			Component("conf").
			Category(errors.CategoryConfiguration).
			Context("operation", "unmarshal").
			Build()
	}

	applyDebug(settings)

	if err := ValidateSettings(settings); err != nil {
		return nil, err
	}

	settingsInstance = settings
	return settingsInstance, nil
}

// initViper registers defaults and environment bindings, then reads the config file.
func initViper(configFile string) error {
	setDefaultConfig()

	if err := bindEnvVars(); err != nil {
		return err
	}

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(ConfigFileName)
		viper.SetConfigType("yaml")
		for _, path := range GetDefaultConfigPaths() {
			viper.AddConfigPath(path)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile == "" && errors.As(err, &notFound) {
			GetLogger().Debug("No config file found, using defaults and environment")
			return nil
		}
		return errors.New(err).
			Component("conf").
			Category(errors.CategoryConfiguration).
			Context("config_file", configFile).
			Context("operation", "read_config").
			Build()
	}

	GetLogger().Debug("Config file loaded", logger.String("path", viper.ConfigFileUsed()))
	return nil
}

// applyDebug raises every log output to debug when debug is set.
func applyDebug(settings *Settings) {
	if !settings.Debug {
		return
	}
	settings.Logging.DefaultLevel = string(logger.LogLevelDebug)
	if settings.Logging.Console != nil {
		settings.Logging.Console.Level = string(logger.LogLevelDebug)
	}
}

// GetSettings returns the current settings instance, or nil before Load.
func GetSettings() *Settings {
	settingsMutex.RLock()
	defer settingsMutex.RUnlock()
	return settingsInstance
}

// ConfigFileUsed returns the config file that was read, if any.
func ConfigFileUsed() string {
	return viper.ConfigFileUsed()
}
