package wtcsv

import (
	"io"
	"strings"

	"github.com/joshuapare/wtcsvkit/internal/format"
)

// Export serializes the table. For any text that parsed successfully,
// Export(Parse(text)) == text.
func (t *Table) Export() string {
	var b strings.Builder
	b.Grow(t.sizeHint())
	t.build(&b)
	return b.String()
}

// WriteTo writes the exported table to w.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, t.Export())
	return int64(n), err
}

func (t *Table) build(b *strings.Builder) {
	term := format.Terminator(t.CRLF)

	// The raw header keeps annotations and quoting exactly as read.
	b.WriteString(t.Header.RawHeader)
	for _, r := range t.Records {
		r.appendTo(b)
		b.WriteString(term)
	}
}

func (t *Table) sizeHint() int {
	n := len(t.Header.RawHeader)
	perRecord := t.Header.Len*3 + format.TerminatorLen(t.CRLF)
	for _, r := range t.Records {
		n += perRecord
		for _, f := range r.Items {
			n += len(f)
		}
	}
	return n
}
