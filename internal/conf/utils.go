// conf/utils.go util functions for configuration package
package conf

import (
	"os"
	"path/filepath"
	"slices"
)

// AppName names the per-user config directory.
const AppName = "diskutils"

// GetDefaultConfigPaths returns the directories searched for config.yaml, in order:
// the user config directory ($XDG_CONFIG_HOME or its platform equivalent),
// ~/.config/diskutils and the working directory.
func GetDefaultConfigPaths() []string {
	var paths []string

	if dir, err := os.UserConfigDir(); err == nil && dir != "" {
		paths = append(paths, filepath.Join(dir, AppName))
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		dotConfig := filepath.Join(home, ".config", AppName)
		if !slices.Contains(paths, dotConfig) {
			paths = append(paths, dotConfig)
		}
	}

	return append(paths, ".")
}
