//go:build unix

package idx

import (
	"os"

	"golang.org/x/sys/unix"
)

// mmapFile maps a file read-only into memory.
func mmapFile(f *os.File, size int64) ([]byte, error) {
	return unix.Mmap(
		int(f.Fd()), //nolint:gosec // G115: file descriptor fits in int
		0,
		int(size), //nolint:gosec // G115: size comes from Stat
		unix.PROT_READ,
		unix.MAP_SHARED,
	)
}

// munmapFile unmaps a region returned by mmapFile.
func munmapFile(data []byte) error {
	return unix.Munmap(data)
}
