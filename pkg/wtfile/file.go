package wtfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joshuapare/wtcsvkit/internal/fileio"
	"github.com/joshuapare/wtcsvkit/internal/textenc"
	"github.com/joshuapare/wtcsvkit/pkg/wtcsv"
)

// File is a table together with where and how it is stored.
type File struct {
	Path     string
	Encoding textenc.Encoding
	Table    *wtcsv.Table
}

// Load reads and parses the table at path. The table is named after the
// file's base name.
func Load(path string, opts Options) (*File, error) {
	data, cleanup, err := fileio.Map(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = cleanup() }()

	enc, err := resolveEncoding(data, opts.Encoding)
	if err != nil {
		return nil, err
	}

	// Decode copies out of the mapping, so the table outlives cleanup.
	text, err := textenc.Decode(data, enc)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	t, err := wtcsv.ParseWithOptions(text, filepath.Base(path), opts.Parse)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return &File{Path: path, Encoding: enc, Table: t}, nil
}

// ReadText returns the decoded contents of path without parsing them, for
// callers that want to diagnose a file that does not parse.
func ReadText(path string, opts Options) (string, textenc.Encoding, error) {
	data, cleanup, err := fileio.Map(path)
	if err != nil {
		return "", 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = cleanup() }()

	enc, err := resolveEncoding(data, opts.Encoding)
	if err != nil {
		return "", 0, err
	}
	text, err := textenc.Decode(data, enc)
	if err != nil {
		return "", 0, fmt.Errorf("decode %s: %w", path, err)
	}
	return text, enc, nil
}

// Save writes the table back to the path it was loaded from.
func (f *File) Save() error {
	return f.SaveAs(f.Path)
}

// SaveAs writes the table to path in the file's encoding. An existing file
// keeps its permissions.
func (f *File) SaveAs(path string) error {
	data, err := textenc.Encode(f.Table.Export(), f.Encoding)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	perm := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	return fileio.WriteAtomic(path, data, perm)
}

func resolveEncoding(data []byte, name string) (textenc.Encoding, error) {
	enc, forced, err := textenc.Parse(name)
	if err != nil {
		return 0, err
	}
	if !forced {
		enc = textenc.Detect(data)
	}
	return enc, nil
}
