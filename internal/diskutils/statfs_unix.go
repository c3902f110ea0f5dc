//go:build linux || darwin || freebsd

package diskutils

import (
	"golang.org/x/sys/unix"
)

func statfs(path string) (BlockStats, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return BlockStats{}, err
	}

	return BlockStats{
		TotalBlocks:     uint64(st.Blocks), //nolint:unconvert // field width differs per platform
		FreeBlocks:      uint64(st.Bfree),  //nolint:unconvert // field width differs per platform
		AvailableBlocks: uint64(st.Bavail), //nolint:unconvert,gosec // negative on some BSDs only with corrupt stats
		BlockSize:       blockSize(&st),
	}, nil
}
