package diskutils

// BlockStats is a snapshot of filesystem block statistics for one path.
// All fields are widened to uint64 regardless of the platform's native width.
type BlockStats struct {
	TotalBlocks     uint64 // blocks in the filesystem
	FreeBlocks      uint64 // free blocks, including those reserved for the superuser
	AvailableBlocks uint64 // free blocks available to unprivileged callers
	BlockSize       uint64 // bytes per block
}

// StatsSource reads block statistics for the filesystem containing path.
type StatsSource interface {
	Statfs(path string) (BlockStats, error)
}

// StatsFunc adapts a plain function to StatsSource.
type StatsFunc func(path string) (BlockStats, error)

// Statfs calls f(path).
func (f StatsFunc) Statfs(path string) (BlockStats, error) {
	return f(path)
}

// OSStats returns the statistics source backed by the operating system.
func OSStats() StatsSource {
	return StatsFunc(statfs)
}
