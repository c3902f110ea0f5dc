//go:build ruleguard

// Package gorules contains custom linting rules for golangci-lint via ruleguard.
// The rules keep disk space arithmetic overflow-safe and OS errors matchable.
package gorules

import "github.com/quasilyte/go-ruleguard/dsl"

// BlockProductOverflow detects block count times block size computed in 64 bits.
//
// A 64-bit product wraps once a filesystem exceeds 16 EiB, and much sooner when
// either factor is a signed or 32-bit field widened after the multiplication.
//
// Old pattern:
//
//	totalBytes := stat.Blocks * uint64(stat.Bsize)
//	mb := int64(st.TotalBlocks*st.BlockSize) / (1 << 20)
//
// New pattern:
//
//	mb := diskutils.BlocksToMB(st.TotalBlocks, st.BlockSize)
func BlockProductOverflow(m dsl.Matcher) {
	m.Match(
		`$s.Blocks * $_`,
		`$s.Bfree * $_`,
		`$s.Bavail * $_`,
		`$_ * $s.Blocks`,
		`$_ * $s.Bfree`,
		`$_ * $s.Bavail`,
	).
		Where(m["s"].Type.Is("unix.Statfs_t") || m["s"].Type.Is("*unix.Statfs_t") ||
			m["s"].Type.Is("syscall.Statfs_t") || m["s"].Type.Is("*syscall.Statfs_t")).
		Report("statfs block counts multiplied in 64 bits can overflow; convert to BlockStats and use diskutils.BlocksToMB")

	m.Match(
		`$s.TotalBlocks * $s.BlockSize`,
		`$s.FreeBlocks * $s.BlockSize`,
		`$s.AvailableBlocks * $s.BlockSize`,
	).
		Where(m["s"].Type.Is("diskutils.BlockStats") || m["s"].Type.Is("*diskutils.BlockStats")).
		Report("64-bit block product can overflow; use diskutils.BlocksToMB($s...) or the TotalMB/AvailableMB/FreeMB/BusyMB helpers")
}

// SyscallStatfs detects the frozen syscall package for filesystem statistics.
//
// Old pattern:
//
//	var st syscall.Statfs_t
//	err := syscall.Statfs(path, &st)
//
// New pattern:
//
//	st, err := diskutils.OSStats().Statfs(path)
func SyscallStatfs(m dsl.Matcher) {
	m.Match(`syscall.Statfs($path, $st)`).
		Report("use diskutils.OSStats().Statfs($path), which widens every field and is portable to Windows")

	m.Match(`syscall.NewLazyDLL("kernel32.dll").NewProc("GetDiskFreeSpaceExW")`).
		Report("use windows.GetDiskFreeSpaceEx from golang.org/x/sys/windows")
}

// FloatMegabytes detects megabyte conversions through float64, which lose
// precision above 2^53 bytes and round instead of truncating.
//
// Old pattern:
//
//	mb := int64(float64(blocks) * float64(size) / 1048576)
//
// New pattern:
//
//	mb := diskutils.BlocksToMB(blocks, size)
func FloatMegabytes(m dsl.Matcher) {
	m.Match(
		`int64(float64($b) * float64($s) / $d)`,
		`uint64(float64($b) * float64($s) / $d)`,
	).
		Where(m["d"].Const && (m["d"].Value.Int() == 1048576 || m["d"].Text == "(1 << 20)" || m["d"].Text == "(1024 * 1024)")).
		Report("float conversion loses precision; use diskutils.BlocksToMB($b, $s)").
		Suggest("diskutils.BlocksToMB($b, $s)")
}
