package wtcsv

import (
	"strings"

	"github.com/joshuapare/wtcsvkit/internal/format"
	"github.com/joshuapare/wtcsvkit/pkg/types"
)

// Header describes the columns of a table. It is immutable once parsed.
type Header struct {
	Len       int      // number of columns, at least 2
	Params    []string // sanitized column names; duplicates are legal
	RawParams []string // columns exactly as they appear in the file
	RawHeader string   // header line including its line feed, for export
}

// ParseHeader reads the header from the first line of text.
func ParseHeader(text string) (*Header, error) {
	line := text
	if i := strings.IndexByte(text, format.RecordSep); i >= 0 {
		line = text[:i]
	}

	raw := strings.Split(line, format.DelimiterStr)
	if len(raw) <= 1 {
		return nil, &types.HeaderTooShortError{Found: len(raw)}
	}

	params := make([]string, len(raw))
	for i, p := range raw {
		params[i] = format.SanitizeHeader(p)
	}

	return &Header{
		Len:       len(raw),
		Params:    params,
		RawParams: raw,
		// The split consumed the line feed; put it back so export is byte-exact.
		RawHeader: line + format.LF,
	}, nil
}

// Index returns the position of the first column with the given sanitized
// name, or -1.
func (h *Header) Index(name string) int {
	for i, p := range h.Params {
		if p == name {
			return i
		}
	}
	return -1
}
