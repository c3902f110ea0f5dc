// conf/validate.go

package conf

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/tphakala/diskutils/internal/errors"
	"github.com/tphakala/diskutils/internal/logger"
)

var outputFormats = []string{FormatText, FormatJSON, FormatYAML}

// ValidationError represents a collection of validation errors
type ValidationError struct {
	Errors []string
}

// Error returns a string representation of the validation errors
func (ve ValidationError) Error() string {
	return fmt.Sprintf("validation errors: %s", strings.Join(ve.Errors, "; "))
}

// ValidateSettings validates the entire Settings struct
func ValidateSettings(settings *Settings) error {
	ve := ValidationError{}

	if err := validateStorageSettings(&settings.Storage); err != nil {
		ve.Errors = append(ve.Errors, err.Error())
	}

	if err := validateOutputSettings(&settings.Output); err != nil {
		ve.Errors = append(ve.Errors, err.Error())
	}

	if err := validateMetricsSettings(&settings.Metrics); err != nil {
		ve.Errors = append(ve.Errors, err.Error())
	}

	if err := validateLoggingSettings(&settings.Logging); err != nil {
		ve.Errors = append(ve.Errors, err.Error())
	}

	if len(ve.Errors) > 0 {
		return errors.New(ve).
			Component("conf").
			Category(errors.CategoryValidation).
			Context("error_count", len(ve.Errors)).
			Build()
	}
	return nil
}

// validateStorageSettings checks configured roots. Config file, environment
// and flag values all end up here. Existence is not checked; a missing root
// surfaces as the OS error of the query itself.
func validateStorageSettings(settings *StorageSettings) error {
	if settings.InternalRoot != "" {
		if err := validateRootPath(settings.InternalRoot); err != nil {
			return fmt.Errorf("storage.internal_root: %w", err)
		}
	}
	if settings.ExternalRoot != "" {
		if err := validateRootPath(settings.ExternalRoot); err != nil {
			return fmt.Errorf("storage.external_root: %w", err)
		}
	}
	return nil
}

// validateRootPath requires an absolute path without NUL bytes.
func validateRootPath(value string) error {
	if strings.ContainsRune(value, 0) {
		return fmt.Errorf("path contains a NUL byte")
	}
	if cleaned := filepath.Clean(value); !filepath.IsAbs(cleaned) {
		return fmt.Errorf("path must be absolute, got relative path: %s", cleaned)
	}
	return nil
}

func validateOutputSettings(settings *OutputSettings) error {
	if !slices.Contains(outputFormats, settings.Format) {
		return fmt.Errorf("output.format must be one of %s, got %q", strings.Join(outputFormats, ", "), settings.Format)
	}
	return nil
}

func validateMetricsSettings(settings *MetricsSettings) error {
	if settings.Textfile == "" {
		return nil
	}
	if err := validateEnvTextfile(settings.Textfile); err != nil {
		return fmt.Errorf("metrics.textfile: %w", err)
	}
	return nil
}

func validateLoggingSettings(settings *logger.LoggingConfig) error {
	var problems []string

	checkLevel := func(key, level string) {
		if level != "" && !logger.ValidLevel(level) {
			problems = append(problems, fmt.Sprintf("%s: unknown log level %q", key, level))
		}
	}

	checkLevel("logging.default_level", settings.DefaultLevel)
	if settings.Console != nil {
		checkLevel("logging.console.level", settings.Console.Level)
	}
	if settings.FileOutput != nil {
		checkLevel("logging.file_output.level", settings.FileOutput.Level)
		if settings.FileOutput.Enabled && settings.FileOutput.Path == "" {
			problems = append(problems, "logging.file_output.path is required when file output is enabled")
		}
	}
	for module, level := range settings.ModuleLevels {
		checkLevel("logging.module_levels."+module, level)
	}

	if settings.Timezone != "" && settings.Timezone != "Local" {
		if _, err := time.LoadLocation(settings.Timezone); err != nil {
			problems = append(problems, fmt.Sprintf("logging.timezone: %v", err))
		}
	}

	if len(problems) > 0 {
		slices.Sort(problems)
		return fmt.Errorf("%s", strings.Join(problems, "; "))
	}
	return nil
}
