package wtcsv

// ParseOptions controls how text is turned into a Table.
type ParseOptions struct {
	// Strict requires every non-empty field to be exactly one quoted token
	// and fails with types.MalformedFieldError otherwise. The default mirrors
	// the game's own reader: the first and last byte of each non-empty field
	// are dropped without being checked.
	Strict bool
}

// DiffOptions controls row comparison.
type DiffOptions struct {
	// AllColumns reports every differing column of a record. By default only
	// the first differing column of each record is reported.
	AllColumns bool
}
