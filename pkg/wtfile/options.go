package wtfile

import "github.com/joshuapare/wtcsvkit/pkg/wtcsv"

// Options controls loading and directory comparison.
type Options struct {
	// Encoding forces the on-disk encoding ("utf-8", "utf-8-bom", "utf-16le",
	// "utf-16be", "windows-1252"). Empty or "auto" detects it from the bytes.
	Encoding string

	// Parse is passed through to wtcsv.ParseWithOptions.
	Parse wtcsv.ParseOptions

	// Diff is passed through to wtcsv.DiffTables by CompareDirs.
	Diff wtcsv.DiffOptions

	// Workers bounds how many file pairs CompareDirs loads at once.
	// Zero selects DefaultWorkers.
	Workers int
}

// DefaultWorkers is the CompareDirs concurrency used when Options.Workers is 0.
const DefaultWorkers = 4

// Extension is the file suffix CompareDirs considers.
const Extension = ".csv"
