//go:build windows

package diskutils

import (
	"os"
	"strings"
)

func platformRoot() string {
	drive := os.Getenv("SystemDrive")
	if drive == "" {
		drive = "C:"
	}
	if !strings.HasSuffix(drive, `\`) {
		drive += `\`
	}
	return drive
}
