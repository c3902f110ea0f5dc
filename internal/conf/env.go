// env.go - Environment variable configuration and validation for diskutils
package conf

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/tphakala/diskutils/internal/errors"
	"github.com/tphakala/diskutils/internal/logger"
)

// envBinding holds metadata for environment variable bindings (internal use)
type envBinding struct {
	ConfigKey string             // Viper config key
	EnvVar    string             // Environment variable name
	Validate  func(string) error // Optional validation function
}

// getEnvBindings returns all environment variable bindings with validation
func getEnvBindings() []envBinding {
	return []envBinding{
		// Volume roots
		{"storage.internal_root", "DISKUTILS_INTERNAL_ROOT", validateEnvPath},
		{"storage.external_root", "DISKUTILS_EXTERNAL_ROOT", validateEnvPath},

		// Output and metrics
		{"output.format", "DISKUTILS_OUTPUT", validateEnvOutputFormat},
		{"metrics.textfile", "DISKUTILS_METRICS_TEXTFILE", validateEnvTextfile},

		// Logging
		{"debug", "DISKUTILS_DEBUG", validateEnvBool},
		{"logging.default_level", "DISKUTILS_LOG_LEVEL", validateEnvLogLevel},
	}
}

// bindEnvVars sets up environment variable bindings with validation (internal)
func bindEnvVars() error {
	var problems []string

	for _, binding := range getEnvBindings() {
		if err := viper.BindEnv(binding.ConfigKey, binding.EnvVar); err != nil {
			problems = append(problems, fmt.Sprintf("failed to bind %s: %v", binding.EnvVar, err))
			continue
		}

		if binding.Validate == nil {
			continue
		}
		if envValue := os.Getenv(binding.EnvVar); envValue != "" {
			if err := binding.Validate(envValue); err != nil {
				problems = append(problems, fmt.Sprintf("invalid %s value '%s': %v", binding.EnvVar, envValue, err))
			}
		}
	}

	if len(problems) > 0 {
		return errors.Newf("environment variable issues:\n  - %s", strings.Join(problems, "\n  - ")).
			Component("conf").
			Category(errors.CategoryConfiguration).
			Context("operation", "bind_env").
			Build()
	}

	return nil
}

// Environment variable validation functions

// validateEnvBool validates boolean environment variables
func validateEnvBool(value string) error {
	if _, err := strconv.ParseBool(strings.TrimSpace(value)); err != nil {
		return fmt.Errorf("invalid boolean value '%s': must be true/false, 1/0, t/f, TRUE/FALSE, T/F", value)
	}
	return nil
}

func validateEnvOutputFormat(value string) error {
	if !slices.Contains(outputFormats, value) {
		return fmt.Errorf("must be one of: %s", strings.Join(outputFormats, ", "))
	}
	return nil
}

func validateEnvLogLevel(value string) error {
	if !logger.ValidLevel(value) {
		return fmt.Errorf("must be one of: trace, debug, info, warn, error")
	}
	return nil
}

func validateEnvTextfile(value string) error {
	if filepath.Ext(value) != ".prom" {
		return fmt.Errorf("textfile collector only reads *.prom files, got: %s", value)
	}
	return nil
}

func validateEnvPath(value string) error {
	return validateRootPath(value)
}
