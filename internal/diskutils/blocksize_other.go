//go:build darwin || freebsd

package diskutils

import "golang.org/x/sys/unix"

func blockSize(st *unix.Statfs_t) uint64 {
	return uint64(st.Bsize) //nolint:gosec,unconvert // width and signedness differ per platform
}
