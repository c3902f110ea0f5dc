package diskutils

import (
	"math"

	"lukechampine.com/uint128"
)

// BytesPerMB is the binary megabyte used for every figure in this package.
const BytesPerMB = 1 << 20

var maxInt64 = uint128.From64(math.MaxInt64)

// BlocksToMB returns floor(blocks*size / BytesPerMB). The product is formed in
// 128 bits so it cannot wrap; quotients beyond int64 saturate at math.MaxInt64.
func BlocksToMB(blocks, size uint64) int64 {
	return toInt64(bytesOf(blocks, size).Div64(BytesPerMB))
}

// TotalMB is the filesystem size in megabytes.
func TotalMB(s BlockStats) int64 {
	return BlocksToMB(s.TotalBlocks, s.BlockSize)
}

// AvailableMB is the space usable by unprivileged callers, in megabytes.
func AvailableMB(s BlockStats) int64 {
	return BlocksToMB(s.AvailableBlocks, s.BlockSize)
}

// FreeMB is the free space including reserved blocks, in megabytes.
func FreeMB(s BlockStats) int64 {
	return BlocksToMB(s.FreeBlocks, s.BlockSize)
}

// BusyMB is floor((total-free) bytes / BytesPerMB). It is computed from free
// blocks, not available blocks, so reserved space never counts as busy.
//
// A snapshot with more free than total blocks yields a negative figure,
// truncated toward zero.
func BusyMB(s BlockStats) int64 {
	total := bytesOf(s.TotalBlocks, s.BlockSize)
	free := bytesOf(s.FreeBlocks, s.BlockSize)
	if total.Cmp(free) >= 0 {
		return toInt64(total.Sub(free).Div64(BytesPerMB))
	}
	return -toInt64(free.Sub(total).Div64(BytesPerMB))
}

func bytesOf(blocks, size uint64) uint128.Uint128 {
	return uint128.From64(blocks).Mul64(size)
}

func toInt64(v uint128.Uint128) int64 {
	if v.Cmp(maxInt64) > 0 {
		return math.MaxInt64
	}
	return int64(v.Lo) //nolint:gosec // bounded by the comparison above
}
