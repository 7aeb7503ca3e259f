package wtcsv

import (
	"strings"

	"github.com/joshuapare/wtcsvkit/internal/format"
	"github.com/joshuapare/wtcsvkit/pkg/types"
)

// Record is one row. Items[0] is the record identifier.
type Record struct {
	Items []string
}

// ParseRecord splits a line into unquoted fields. Empty fields stay empty;
// every other field loses its first and last character, which are assumed to be
// quotes. It never fails; width checks happen when the record is inserted.
func ParseRecord(line string) Record {
	items := strings.Split(line, format.DelimiterStr)
	for i, f := range items {
		if f != "" {
			items[i] = format.Unquote(f)
		}
	}
	return Record{Items: items}
}

// ParseRecordStrict is ParseRecord with shape validation: each non-empty
// field must be a single quoted token.
func ParseRecordStrict(line string) (Record, error) {
	items := strings.Split(line, format.DelimiterStr)
	for i, f := range items {
		if f == "" {
			continue
		}
		if !format.IsQuoted(f) {
			return Record{}, &types.MalformedFieldError{Field: f, Column: i}
		}
		items[i] = format.Unquote(f)
	}
	return Record{Items: items}, nil
}

// ID returns the identifier field, or "" for a record without fields.
func (r Record) ID() string {
	if len(r.Items) == 0 {
		return ""
	}
	return r.Items[0]
}

// Clone returns a record that shares no memory with r.
func (r Record) Clone() Record {
	items := make([]string, len(r.Items))
	copy(items, r.Items)
	return Record{Items: items}
}

// contains reports whether any field equals value.
func (r Record) contains(value string) bool {
	for _, f := range r.Items {
		if f == value {
			return true
		}
	}
	return false
}

// appendTo writes the record in file form, without terminator.
func (r Record) appendTo(b *strings.Builder) {
	for i, f := range r.Items {
		if i > 0 {
			b.WriteByte(format.Delimiter)
		}
		if f != "" {
			b.WriteByte(format.Quote)
			b.WriteString(f)
			b.WriteByte(format.Quote)
		}
	}
}
