package main

import (
	"fmt"
	"os"

	"github.com/joshuapare/wtcsvkit/internal/fileio"
	"github.com/joshuapare/wtcsvkit/pkg/wtfile"
)

// Shared by edit, set and delete.
var (
	mutOutput string
	mutDryRun bool
	mutBackup bool
)

// readText loads the decoded text of path with the merged options.
func readText(path string) (string, string, error) {
	text, enc, err := wtfile.ReadText(path, fileOptions())
	if err != nil {
		return "", "", err
	}
	return text, enc.String(), nil
}

// commit finishes a mutating command: nothing on --dry-run, otherwise an
// optional backup of the original followed by the write.
func commit(f *wtfile.File, action string) error {
	if mutDryRun {
		printInfo("Dry run: would %s in %s\n", action, f.Path)
		return nil
	}

	if mutBackup && (mutOutput == "" || mutOutput == f.Path) {
		if err := backupFile(f.Path); err != nil {
			return err
		}
	}

	if err := saveFile(f, mutOutput); err != nil {
		return fmt.Errorf("failed to save: %w", err)
	}
	if mutOutput != "-" {
		printInfo("✓ %s\n", action)
	}
	return nil
}

// backupFile copies path to path.bak.
func backupFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("backup: %w", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("backup: %w", err)
	}
	backup := path + ".bak"
	if err := fileio.WriteAtomic(backup, data, info.Mode().Perm()); err != nil {
		return fmt.Errorf("backup: %w", err)
	}
	printVerbose("Backup written to %s\n", backup)
	return nil
}
