// Package scan finds record boundaries in WT CSV text.
//
// The format never escapes the delimiter or the line terminator inside a
// field, so a record ends at the first line feed seen after exactly width-1
// delimiters. Fields are not inspected here; the scan only counts.
package scan

import "github.com/joshuapare/wtcsvkit/internal/format"

// Line is one candidate record line with its terminator removed.
type Line struct {
	Text   string // line content, sliced from the source text
	Offset int    // byte offset of the line start in the source text
}

// Result holds the output of a full scan.
type Result struct {
	// Lines are the candidate lines in file order. The first one is the
	// header line, rediscovered by the same rule as every record.
	Lines []Line

	// Remainder is the text after the last boundary. It is empty for a
	// well-formed file.
	Remainder string

	// RemainderOffset is the byte offset at which Remainder starts.
	RemainderOffset int

	// Delims is the delimiter count accumulated in Remainder.
	Delims int
}

// State is the fold state carried between bytes.
type State struct {
	Start  int // offset where the current line began
	Delims int // delimiters seen since Start
}

// Step advances the fold by the byte at offset i. It reports the end offset
// (exclusive, terminator trimmed) of a completed line when a boundary is hit.
func Step(st State, text string, i, width, termLen int) (State, int, bool) {
	c := text[i]
	if c == format.RecordSep && st.Delims == width-1 {
		end := i + 1 - termLen
		if end < st.Start {
			end = st.Start
		}
		return State{Start: i + 1}, end, true
	}
	if c == format.Delimiter {
		st.Delims++
	}
	return st, 0, false
}

// Split runs Step over the whole text. width is the header column count and
// crlf selects how many terminator bytes are trimmed from each line.
func Split(text string, width int, crlf bool) Result {
	termLen := format.TerminatorLen(crlf)

	var (
		st    State
		lines []Line
	)
	for i := 0; i < len(text); i++ {
		next, end, done := Step(st, text, i, width, termLen)
		if done {
			lines = append(lines, Line{Text: text[st.Start:end], Offset: st.Start})
		}
		st = next
	}

	return Result{
		Lines:           lines,
		Remainder:       text[st.Start:],
		RemainderOffset: st.Start,
		Delims:          st.Delims,
	}
}
