//go:build linux

package diskutils

import "golang.org/x/sys/unix"

// blockSize prefers the fragment size, the unit Linux counts blocks in.
func blockSize(st *unix.Statfs_t) uint64 {
	if st.Frsize > 0 {
		return uint64(st.Frsize) //nolint:gosec // checked positive
	}
	return uint64(st.Bsize) //nolint:gosec // kernel never reports a negative size
}
