package format

import (
	"strings"
	"unicode/utf8"
)

// headerStrip removes the characters that never survive header sanitization.
var headerStrip = strings.NewReplacer(`"`, "", "<", "", ">", "", "\r", "")

// SanitizeHeader reduces a raw header column such as `"<ID|readonly>"` to its
// bare name ("ID"). Quotes, angle brackets and carriage returns are removed and
// everything from the first '|' on is dropped.
func SanitizeHeader(raw string) string {
	s := headerStrip.Replace(raw)
	if i := strings.IndexByte(s, AnnotationSep); i >= 0 {
		return s[:i]
	}
	return s
}

// Unquote drops the first and last character of a token without checking
// what they are. Tokens of fewer than two characters yield "".
func Unquote(token string) string {
	_, head := utf8.DecodeRuneInString(token)
	_, tail := utf8.DecodeLastRuneInString(token)
	if head+tail > len(token) {
		return ""
	}
	return token[head : len(token)-tail]
}

// IsQuoted reports whether token is a well-formed quoted field: at least two
// bytes, a quote at each end and none in between. The empty quoted field `""`
// is rejected because it cannot survive a round trip.
func IsQuoted(token string) bool {
	if len(token) <= 2 {
		return false
	}
	if token[0] != Quote || token[len(token)-1] != Quote {
		return false
	}
	return strings.IndexByte(token[1:len(token)-1], Quote) < 0 &&
		strings.IndexByte(token, RecordSep) < 0
}
