package wtcsv

import (
	"strings"

	"github.com/joshuapare/wtcsvkit/internal/format"
	"github.com/joshuapare/wtcsvkit/internal/scan"
	"github.com/joshuapare/wtcsvkit/pkg/types"
)

// Table is a parsed file: one header and its records in file order.
type Table struct {
	Name    string // label used in error messages
	Header  *Header
	Records []Record
	CRLF    bool // every record is written with "\r\n" instead of "\n"

	strict bool
}

// Parse builds a Table from text using the lenient field rules.
func Parse(text, name string) (*Table, error) {
	return ParseWithOptions(text, name, ParseOptions{})
}

// ParseWithOptions builds a Table from text. The whole parse fails on the
// first malformed record; no partial table is returned.
func ParseWithOptions(text, name string, opts ParseOptions) (*Table, error) {
	header, err := ParseHeader(text)
	if err != nil {
		return nil, err
	}

	t := &Table{
		Name:   name,
		Header: header,
		CRLF:   strings.Contains(text, format.CRLF),
		strict: opts.Strict,
	}

	res := scan.Split(text, header.Len, t.CRLF)
	if len(res.Lines) == 0 {
		// Not even the header line was terminated.
		return nil, &types.UnterminatedError{Remainder: res.Remainder}
	}

	// Lines[0] is the header rediscovered by the scan. Its width equals
	// header.Len by construction, so it is skipped rather than inserted.
	t.Records = make([]Record, 0, len(res.Lines)-1)
	for _, line := range res.Lines[1:] {
		if err := t.InsertRecord(line.Text); err != nil {
			return nil, err
		}
	}

	if res.Remainder != "" {
		if width := res.Delims + 1; width != header.Len {
			return nil, &types.HeaderLenError{Expected: header.Len, Actual: width}
		}
		return nil, &types.UnterminatedError{Remainder: res.Remainder}
	}

	return t, nil
}

// InsertRecord parses one line (without terminator) and appends it. A line
// whose width differs from the header is rejected with types.HeaderLenError.
func (t *Table) InsertRecord(line string) error {
	var rec Record
	if t.strict {
		var err error
		if rec, err = ParseRecordStrict(line); err != nil {
			return err
		}
	} else {
		rec = ParseRecord(line)
	}
	return t.insert(rec)
}

// Append adds a record built from already-unquoted field values.
func (t *Table) Append(items ...string) error {
	rec := Record{Items: make([]string, len(items))}
	copy(rec.Items, items)
	return t.insert(rec)
}

func (t *Table) insert(rec Record) error {
	if len(rec.Items) != t.Header.Len {
		return &types.HeaderLenError{Expected: t.Header.Len, Actual: len(rec.Items)}
	}
	t.Records = append(t.Records, rec)
	return nil
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.Records)
}

// Clone returns a deep copy of t. The header is shared since it never changes.
func (t *Table) Clone() *Table {
	c := *t
	c.Records = make([]Record, len(t.Records))
	for i, r := range t.Records {
		c.Records[i] = r.Clone()
	}
	return &c
}
