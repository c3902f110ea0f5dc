package diskutils

import "github.com/tphakala/diskutils/internal/logger"

// GetLogger returns the diskutils module logger.
func GetLogger() logger.Logger {
	return logger.Global().Module("diskutils")
}
