package conf

import "github.com/tphakala/diskutils/internal/logger"

// GetLogger returns the config package logger scoped to the config module.
// The logger is fetched from the global logger each time so that it follows
// SetGlobal, which runs after configuration is loaded.
func GetLogger() logger.Logger {
	return logger.Global().Module("config")
}
