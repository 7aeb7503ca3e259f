//go:build darwin

package fileio

import (
	"os"

	"golang.org/x/sys/unix"
)

// datasync flushes file data to disk.
//
// macOS has no fdatasync; F_FULLFSYNC also flushes the drive cache.
func datasync(f *os.File) error {
	_, err := unix.FcntlInt(f.Fd(), unix.F_FULLFSYNC, 0)
	return err
}
