/*
Package wtcsv reads, edits, queries and writes the semicolon-delimited CSV
dialect the game uses for localization and unit tables.

# Format

	"<ID|readonly|noverify>";"<English>";"<French>";"<Comments>"
	"country_germany";"Germany";"Allemagne";
	"country_china";"China";"Chine";

Every non-empty field is wrapped in double quotes, empty fields are bare,
fields are separated by ';' and lines end in "\n" or "\r\n" (one style per
file). Header columns may carry a "<Name|type>" annotation; only Name is used
for lookups and comparison, the raw form is kept for export.

Record boundaries are found by counting delimiters, not by a general CSV
state machine: a record ends at the first line feed seen after exactly
Header.Len-1 delimiters. Delimiters, quotes and line feeds inside field values
are not supported.

# Quick Start

	t, err := wtcsv.Parse(text, "units.csv")
	if err != nil {
	    return err
	}
	if err := t.EditByID("country_china", "west-taiwan"); err != nil {
	    return err
	}
	out := t.Export() // byte-identical to text except for the edited record

Lookups accept a caller-owned cache for repeated queries:

	var idx wtcsv.IDIndex
	for _, id := range ids {
	    rec, err := t.LookupByIDCached(id, &idx)
	    ...
	}
	idx.Reset() // after any structural change to t

# Error Handling

Every failure is one of the typed errors in package types. Parsing is
all-or-nothing: one malformed record fails the whole table.

	var hl *types.HeaderLenError
	if errors.As(err, &hl) {
	    fmt.Printf("record has %d fields, header has %d\n", hl.Actual, hl.Expected)
	}

# Concurrency

A Table is not safe for concurrent mutation. Caches are owned by the caller
and go stale silently after the table changes.
*/
package wtcsv
