package report

import "github.com/tphakala/diskutils/internal/logger"

// GetLogger returns the report module logger.
func GetLogger() logger.Logger {
	return logger.Global().Module("report")
}
