// Package format holds the lexical constants of the WT CSV text format and the
// small helpers that operate on single tokens. Higher-level packages build the
// table model on top of these without repeating the byte values.
package format

const (
	// Delimiter separates fields within a line.
	Delimiter = ';'

	// RecordSep terminates every line. CRLF files carry an extra '\r' in front.
	RecordSep = '\n'

	// CarriageReturn precedes RecordSep in CRLF files.
	CarriageReturn = '\r'

	// Quote wraps every non-empty field.
	Quote = '"'

	// AnnotationSep splits a header column into its name and type annotation
	// (e.g. "<ID|readonly|noverify>").
	AnnotationSep = '|'
)

const (
	// DelimiterStr is Delimiter as a string, for strings.Split/Join.
	DelimiterStr = ";"

	// LF is the single-character line terminator.
	LF = "\n"

	// CRLF is the two-character line terminator.
	CRLF = "\r\n"
)

// Terminator returns the line terminator for a file with the given CRLF flag.
func Terminator(crlf bool) string {
	if crlf {
		return CRLF
	}
	return LF
}

// TerminatorLen returns the number of bytes a terminator occupies.
func TerminatorLen(crlf bool) int {
	if crlf {
		return len(CRLF)
	}
	return len(LF)
}
