package types

import (
	"errors"
	"fmt"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindHeaderTooShort   ErrKind = iota // header line has fewer than two columns
	ErrKindHeaderLen                       // column counts disagree (record vs header, or two headers)
	ErrKindHeaderContent                   // two headers name a column differently
	ErrKindRecordLength                    // two tables hold a different number of records
	ErrKindRecordIDNotFound                // no record carries the requested identifier
	ErrKindMalformedField                  // a field is not wrapped in quotes (strict parsing only)
	ErrKindColumnNotFound                  // no header column has the requested name
	ErrKindUnterminated                    // text ends without a line terminator
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindHeaderTooShort:
		return "header too short"
	case ErrKindHeaderLen:
		return "header length mismatch"
	case ErrKindHeaderContent:
		return "header content mismatch"
	case ErrKindRecordLength:
		return "record count mismatch"
	case ErrKindRecordIDNotFound:
		return "record id not found"
	case ErrKindMalformedField:
		return "malformed field"
	case ErrKindColumnNotFound:
		return "column not found"
	case ErrKindUnterminated:
		return "unterminated line"
	default:
		return fmt.Sprintf("unknown error kind %d", int(k))
	}
}

// Error is implemented by every error the codec returns. The set is closed:
// only the types in this file satisfy it.
type Error interface {
	error
	Kind() ErrKind
	sealed()
}

// kindSentinel is the comparable value behind the Err* sentinels.
type kindSentinel ErrKind

func (k kindSentinel) Error() string { return ErrKind(k).String() }

// Sentinels for errors.Is. Every concrete error matches the sentinel of its kind.
var (
	ErrHeaderTooShort   error = kindSentinel(ErrKindHeaderTooShort)
	ErrHeaderLen        error = kindSentinel(ErrKindHeaderLen)
	ErrHeaderContent    error = kindSentinel(ErrKindHeaderContent)
	ErrRecordLength     error = kindSentinel(ErrKindRecordLength)
	ErrRecordIDNotFound error = kindSentinel(ErrKindRecordIDNotFound)
	ErrMalformedField   error = kindSentinel(ErrKindMalformedField)
	ErrColumnNotFound   error = kindSentinel(ErrKindColumnNotFound)
	ErrUnterminated     error = kindSentinel(ErrKindUnterminated)
)

func matchKind(k ErrKind, target error) bool {
	s, ok := target.(kindSentinel)
	return ok && ErrKind(s) == k
}

// KindOf returns the kind of err if it is (or wraps) one of the codec errors.
func KindOf(err error) (ErrKind, bool) {
	var e Error
	if errors.As(err, &e) {
		return e.Kind(), true
	}
	return 0, false
}

// HeaderTooShortError reports a header line that splits into fewer than two columns.
type HeaderTooShortError struct {
	Found int
}

func (e *HeaderTooShortError) Error() string {
	return fmt.Sprintf("Header too short, expected at least 2 but found %d", e.Found)
}
func (e *HeaderTooShortError) Kind() ErrKind        { return ErrKindHeaderTooShort }
func (e *HeaderTooShortError) Is(target error) bool { return matchKind(e.Kind(), target) }
func (*HeaderTooShortError) sealed()                {}

// HeaderLenError reports a column count mismatch. During parsing Expected is the
// header width and Actual the record width; during comparison they are the
// widths of the left and right headers.
type HeaderLenError struct {
	Expected int
	Actual   int
}

func (e *HeaderLenError) Error() string {
	return fmt.Sprintf("Header Length mismatch, expected %d but found %d", e.Expected, e.Actual)
}
func (e *HeaderLenError) Kind() ErrKind        { return ErrKindHeaderLen }
func (e *HeaderLenError) Is(target error) bool { return matchKind(e.Kind(), target) }
func (*HeaderLenError) sealed()                {}

// HeaderContentError reports the first column whose sanitized name differs.
type HeaderContentError struct {
	Expected string
	Actual   string
}

func (e *HeaderContentError) Error() string {
	return fmt.Sprintf("Header content mismatch, expected %s but found %s", e.Expected, e.Actual)
}
func (e *HeaderContentError) Kind() ErrKind        { return ErrKindHeaderContent }
func (e *HeaderContentError) Is(target error) bool { return matchKind(e.Kind(), target) }
func (*HeaderContentError) sealed()                {}

// RecordLengthError reports tables holding different numbers of records.
type RecordLengthError struct {
	Expected int
	Actual   int
}

func (e *RecordLengthError) Error() string {
	return fmt.Sprintf("Record count mismatch, expected %d but found %d", e.Expected, e.Actual)
}
func (e *RecordLengthError) Kind() ErrKind        { return ErrKindRecordLength }
func (e *RecordLengthError) Is(target error) bool { return matchKind(e.Kind(), target) }
func (*RecordLengthError) sealed()                {}

// RecordIDNotFoundError reports an identifier absent from a table.
type RecordIDNotFoundError struct {
	ID    string
	Table string
}

func (e *RecordIDNotFoundError) Error() string {
	return fmt.Sprintf("File %s does not contain record with id %s", e.Table, e.ID)
}
func (e *RecordIDNotFoundError) Kind() ErrKind        { return ErrKindRecordIDNotFound }
func (e *RecordIDNotFoundError) Is(target error) bool { return matchKind(e.Kind(), target) }
func (*RecordIDNotFoundError) sealed()                {}

// MalformedFieldError reports a non-empty field that is not a single quoted token.
type MalformedFieldError struct {
	Field  string
	Column int
}

func (e *MalformedFieldError) Error() string {
	return fmt.Sprintf("Malformed field in column %d: %q", e.Column, e.Field)
}
func (e *MalformedFieldError) Kind() ErrKind        { return ErrKindMalformedField }
func (e *MalformedFieldError) Is(target error) bool { return matchKind(e.Kind(), target) }
func (*MalformedFieldError) sealed()                {}

// ColumnNotFoundError reports a column name absent from a table's header.
type ColumnNotFoundError struct {
	Column string
	Table  string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("File %s does not contain column %s", e.Table, e.Column)
}
func (e *ColumnNotFoundError) Kind() ErrKind        { return ErrKindColumnNotFound }
func (e *ColumnNotFoundError) Is(target error) bool { return matchKind(e.Kind(), target) }
func (*ColumnNotFoundError) sealed()                {}

// UnterminatedError reports text left over after the last record boundary.
// Such text would not survive a round trip, so parsing rejects it.
type UnterminatedError struct {
	Remainder string
}

func (e *UnterminatedError) Error() string {
	const maxShown = 40
	r := e.Remainder
	if len(r) > maxShown {
		r = r[:maxShown] + "..."
	}
	return fmt.Sprintf("Unterminated line at end of file: %q", r)
}
func (e *UnterminatedError) Kind() ErrKind        { return ErrKindUnterminated }
func (e *UnterminatedError) Is(target error) bool { return matchKind(e.Kind(), target) }
func (*UnterminatedError) sealed()                {}
