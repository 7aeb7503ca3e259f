// Package fileio provides the platform-specific file helpers used to load and
// save tables: read-only memory mapping and atomic, synced replacement.
package fileio

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteAtomic replaces the file at path with data. The bytes are written to a
// temporary file in the same directory, flushed to stable storage and renamed
// over the target, so readers see either the old or the new contents.
func WriteAtomic(path string, data []byte, perm os.FileMode) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("fileio: create temp: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("fileio: write %s: %w", tmpName, err)
	}
	if err = datasync(tmp); err != nil {
		return fmt.Errorf("fileio: sync %s: %w", tmpName, err)
	}
	if err = tmp.Chmod(perm); err != nil {
		return fmt.Errorf("fileio: chmod %s: %w", tmpName, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("fileio: close %s: %w", tmpName, err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("fileio: rename to %s: %w", path, err)
	}
	return nil
}
