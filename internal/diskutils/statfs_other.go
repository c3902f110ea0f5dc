//go:build !linux && !darwin && !freebsd && !windows

package diskutils

import (
	"runtime"

	"github.com/tphakala/diskutils/internal/errors"
)

func statfs(path string) (BlockStats, error) {
	return BlockStats{}, errors.Newf("block statistics are not supported on %s", runtime.GOOS).
		Component("diskutils").
		Category(errors.CategorySystem).
		Context("path", path).
		Context("goos", runtime.GOOS).
		Build()
}
