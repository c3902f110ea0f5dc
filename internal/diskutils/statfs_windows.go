//go:build windows

package diskutils

import (
	"golang.org/x/sys/windows"
)

// statfs reports byte counts as blocks of size 1.
func statfs(path string) (BlockStats, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return BlockStats{}, err
	}

	var freeToCaller, total, totalFree uint64
	if err := windows.GetDiskFreeSpaceEx(p, &freeToCaller, &total, &totalFree); err != nil {
		return BlockStats{}, err
	}

	return BlockStats{
		TotalBlocks:     total,
		FreeBlocks:      totalFree,
		AvailableBlocks: freeToCaller,
		BlockSize:       1,
	}, nil
}
