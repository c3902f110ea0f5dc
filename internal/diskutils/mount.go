package diskutils

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/v3/disk"

	"github.com/tphakala/diskutils/internal/errors"
)

// MountInfo describes the filesystem a path lives on.
type MountInfo struct {
	MountPoint string `json:"mount_point" yaml:"mount_point"`
	Device     string `json:"device" yaml:"device"`
	Fstype     string `json:"fstype" yaml:"fstype"`
}

// LookupMount finds the mounted filesystem containing path. It is informational
// only; statistics never depend on it.
func LookupMount(path string) (MountInfo, error) {
	partitions, err := disk.Partitions(false)
	if err != nil {
		return MountInfo{}, errors.New(err).
			Component("diskutils").
			Category(errors.CategoryMountLookup).
			Context("operation", "list_partitions").
			Build()
	}

	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		// Fall back to the literal path only if it exists at all
		if _, statErr := os.Stat(path); statErr != nil {
			return MountInfo{}, errors.New(statErr).
				Component("diskutils").
				Category(errors.CategoryPathResolve).
				Context("path", path).
				Context("operation", "resolve_path").
				Build()
		}
		resolved = path
	}

	return mountFromPartitions(resolved, partitions)
}

// mountFromPartitions picks the longest mount point that contains path.
func mountFromPartitions(path string, partitions []disk.PartitionStat) (MountInfo, error) {
	var best disk.PartitionStat
	bestLen := 0

	for _, p := range partitions {
		if !containsPath(p.Mountpoint, path) {
			continue
		}
		if len(p.Mountpoint) > bestLen {
			best = p
			bestLen = len(p.Mountpoint)
		}
	}

	if bestLen == 0 {
		return MountInfo{}, errors.Newf("no mount point found for path: %s", path).
			Component("diskutils").
			Category(errors.CategoryNotFound).
			Context("path", path).
			Build()
	}

	return MountInfo{MountPoint: best.Mountpoint, Device: best.Device, Fstype: best.Fstype}, nil
}

func containsPath(mountPoint, path string) bool {
	if mountPoint == "" || !strings.HasPrefix(path, mountPoint) {
		return false
	}
	if path == mountPoint || strings.HasSuffix(mountPoint, string(filepath.Separator)) {
		return true
	}
	return strings.HasPrefix(path, mountPoint+string(filepath.Separator))
}
