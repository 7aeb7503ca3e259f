package types

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// -----------------------------------------------------------------------------
// Diagnostic System
// -----------------------------------------------------------------------------
//
// Parsing stops at the first problem. Validation instead walks the whole file
// and collects every issue it can find, so a broken localization file can be
// fixed in one pass:
//   - Collects ALL issues, not just first error
//   - Reports line numbers, record ids and column names
//   - Supports text, compact and JSON output

// Severity classifies how serious a diagnostic issue is.
type Severity int

const (
	SevInfo     Severity = iota // Informational (unusual but valid)
	SevWarning                  // Parses, but will not round-trip or looks wrong
	SevError                    // Parsing the file fails
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	default:
		return fmt.Sprintf("SEVERITY_%d", int(s))
	}
}

// MarshalText renders the severity by name in JSON output.
func (s Severity) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// DiagCategory classifies the type of issue found.
type DiagCategory int

const (
	DiagHeader     DiagCategory = iota // header line problems
	DiagStructure                      // record boundaries and field counts
	DiagField                          // individual field shape
	DiagIdentifier                     // duplicate or empty identifiers
	DiagLineEnding                     // mixed or missing terminators
)

func (c DiagCategory) String() string {
	switch c {
	case DiagHeader:
		return "header"
	case DiagStructure:
		return "structure"
	case DiagField:
		return "field"
	case DiagIdentifier:
		return "identifier"
	case DiagLineEnding:
		return "line-ending"
	default:
		return fmt.Sprintf("category_%d", int(c))
	}
}

// MarshalText renders the category by name in JSON output.
func (c DiagCategory) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// Diagnostic is a single issue found in a file.
type Diagnostic struct {
	Severity Severity     `json:"severity"`
	Category DiagCategory `json:"category"`
	Line     int          `json:"line"`             // 1-based physical line, 0 when not tied to a line
	RecordID string       `json:"record_id,omitempty"`
	Column   string       `json:"column,omitempty"` // sanitized header name
	Issue    string       `json:"issue"`
}

// DiagnosticReport collects all diagnostics found during a scan.
type DiagnosticReport struct {
	Table   string       `json:"table,omitempty"`
	Lines   int          `json:"lines"`
	Records int          `json:"records"`
	CRLF    bool         `json:"crlf"`
	Issues  []Diagnostic `json:"diagnostics"`
	Summary DiagSummary  `json:"summary"`

	bySeverity map[Severity][]Diagnostic
}

// DiagSummary provides quick statistics.
type DiagSummary struct {
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Info     int `json:"info"`
}

// NewDiagnosticReport creates an empty report for the named table.
func NewDiagnosticReport(table string) *DiagnosticReport {
	return &DiagnosticReport{
		Table:      table,
		bySeverity: make(map[Severity][]Diagnostic),
	}
}

// Add adds a diagnostic to the report and updates the summary.
func (r *DiagnosticReport) Add(d Diagnostic) {
	r.Issues = append(r.Issues, d)

	switch d.Severity {
	case SevError:
		r.Summary.Errors++
	case SevWarning:
		r.Summary.Warnings++
	case SevInfo:
		r.Summary.Info++
	}

	r.bySeverity[d.Severity] = append(r.bySeverity[d.Severity], d)
}

// Finalize orders diagnostics by line for sequential reading.
func (r *DiagnosticReport) Finalize() {
	sort.SliceStable(r.Issues, func(i, j int) bool {
		return r.Issues[i].Line < r.Issues[j].Line
	})
}

// HasErrors returns true if any error-level issue was found.
func (r *DiagnosticReport) HasErrors() bool {
	return r.Summary.Errors > 0
}

// HasAnyIssues returns true if any issues were found (including warnings and info).
func (r *DiagnosticReport) HasAnyIssues() bool {
	return len(r.Issues) > 0
}

// BySeverity returns the diagnostics of one severity in insertion order.
func (r *DiagnosticReport) BySeverity(s Severity) []Diagnostic {
	return r.bySeverity[s]
}

// -----------------------------------------------------------------------------
// Output Formatters
// -----------------------------------------------------------------------------

// FormatJSON returns the report as formatted JSON (2-space indentation).
func (r *DiagnosticReport) FormatJSON() (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FormatText returns a human-readable text report.
func (r *DiagnosticReport) FormatText() string {
	var b strings.Builder

	b.WriteString(strings.Repeat("=", 79) + "\n")
	b.WriteString("WT CSV Diagnostic Report\n")
	b.WriteString(strings.Repeat("=", 79) + "\n\n")

	if r.Table != "" {
		fmt.Fprintf(&b, "Table:     %s\n", r.Table)
	}
	fmt.Fprintf(&b, "Lines:     %d\n", r.Lines)
	fmt.Fprintf(&b, "Records:   %d\n", r.Records)
	fmt.Fprintf(&b, "CRLF:      %t\n\n", r.CRLF)

	b.WriteString("SUMMARY\n")
	b.WriteString(strings.Repeat("-", 79) + "\n")
	fmt.Fprintf(&b, "  Errors:   %d\n", r.Summary.Errors)
	fmt.Fprintf(&b, "  Warnings: %d\n", r.Summary.Warnings)
	fmt.Fprintf(&b, "  Info:     %d\n\n", r.Summary.Info)

	if len(r.Issues) == 0 {
		b.WriteString("No issues found.\n")
		return b.String()
	}

	b.WriteString("DIAGNOSTICS\n")
	b.WriteString(strings.Repeat("-", 79) + "\n\n")

	for _, severity := range []Severity{SevError, SevWarning, SevInfo} {
		diags := r.bySeverity[severity]
		if len(diags) == 0 {
			continue
		}

		fmt.Fprintf(&b, "%s (%d)\n", severity, len(diags))
		b.WriteString(strings.Repeat("~", 79) + "\n")

		for i, d := range diags {
			fmt.Fprintf(&b, "\n%d. [%s] line %d\n", i+1, d.Category, d.Line)
			fmt.Fprintf(&b, "   %s\n", d.Issue)
			if d.RecordID != "" {
				fmt.Fprintf(&b, "   Record:   %s\n", d.RecordID)
			}
			if d.Column != "" {
				fmt.Fprintf(&b, "   Column:   %s\n", d.Column)
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

// FormatTextCompact returns a compact one-line-per-issue text format.
func (r *DiagnosticReport) FormatTextCompact() string {
	var b strings.Builder

	for _, d := range r.Issues {
		fmt.Fprintf(&b, "%6d [%s/%s] %s\n", d.Line, d.Severity, d.Category, d.Issue)
	}

	if len(r.Issues) == 0 {
		b.WriteString("No issues found.\n")
	}

	return b.String()
}
