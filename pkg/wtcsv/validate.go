package wtcsv

import (
	"fmt"
	"strings"

	"github.com/joshuapare/wtcsvkit/internal/format"
	"github.com/joshuapare/wtcsvkit/internal/scan"
	"github.com/joshuapare/wtcsvkit/pkg/types"
)

// Diagnose scans text and reports every problem it finds instead of stopping
// at the first one. A report without errors means Parse will succeed; a
// report without warnings also means the text round-trips through Export.
func Diagnose(text, name string) *types.DiagnosticReport {
	report := types.NewDiagnosticReport(name)
	report.Lines = strings.Count(text, format.LF)
	report.CRLF = strings.Contains(text, format.CRLF)
	defer report.Finalize()

	header, err := ParseHeader(text)
	if err != nil {
		report.Add(types.Diagnostic{
			Severity: types.SevError,
			Category: types.DiagHeader,
			Line:     1,
			Issue:    err.Error(),
		})
		return report
	}

	diagnoseHeader(report, header)
	diagnoseLineEndings(report, text)

	res := scan.Split(text, header.Len, report.CRLF)
	lines := newLineCounter(text)
	seen := make(map[string]int)

	for n, l := range res.Lines {
		if n == 0 {
			continue
		}
		lineNo := lines.at(l.Offset)
		if strings.IndexByte(l.Text, format.RecordSep) >= 0 {
			report.Add(types.Diagnostic{
				Severity: types.SevWarning,
				Category: types.DiagStructure,
				Line:     lineNo,
				Issue:    "record spans several physical lines",
			})
		}

		// Scanned lines always hold header.Len-1 delimiters.
		fields := strings.Split(l.Text, format.DelimiterStr)
		report.Records++

		id := format.Unquote(fields[0])
		diagnoseFields(report, header, fields, id, lineNo)

		switch {
		case fields[0] == "":
			report.Add(types.Diagnostic{
				Severity: types.SevWarning,
				Category: types.DiagIdentifier,
				Line:     lineNo,
				Issue:    "record has an empty identifier",
			})
		case seen[id] > 0:
			report.Add(types.Diagnostic{
				Severity: types.SevWarning,
				Category: types.DiagIdentifier,
				Line:     lineNo,
				RecordID: id,
				Issue:    fmt.Sprintf("duplicate identifier, first seen on line %d", seen[id]),
			})
		default:
			seen[id] = lineNo
		}
	}

	if len(res.Lines) == 0 {
		report.Add(types.Diagnostic{
			Severity: types.SevError,
			Category: types.DiagLineEnding,
			Line:     1,
			Issue:    "header line is not terminated",
		})
	} else if res.Remainder != "" {
		report.Add(types.Diagnostic{
			Severity: types.SevError,
			Category: types.DiagStructure,
			Line:     lines.at(res.RemainderOffset),
			Issue: fmt.Sprintf("%d trailing bytes do not form a terminated record of %d fields",
				len(res.Remainder), header.Len),
		})
	}

	return report
}

func diagnoseHeader(report *types.DiagnosticReport, header *Header) {
	first := make(map[string]int, header.Len)
	for i, p := range header.Params {
		if j, dup := first[p]; dup {
			report.Add(types.Diagnostic{
				Severity: types.SevInfo,
				Category: types.DiagHeader,
				Line:     1,
				Column:   p,
				Issue:    fmt.Sprintf("column %d repeats the name of column %d", i, j),
			})
			continue
		}
		first[p] = i
	}
}

func diagnoseFields(report *types.DiagnosticReport, header *Header, fields []string, id string, lineNo int) {
	for i, f := range fields {
		if f == "" || format.IsQuoted(f) {
			continue
		}
		issue := "field is not wrapped in quotes and will be truncated"
		if f == `""` {
			issue = "quoted empty field will be written back unquoted"
		}
		report.Add(types.Diagnostic{
			Severity: types.SevWarning,
			Category: types.DiagField,
			Line:     lineNo,
			RecordID: id,
			Column:   header.Params[i],
			Issue:    issue,
		})
	}
}

func diagnoseLineEndings(report *types.DiagnosticReport, text string) {
	crlf := strings.Contains(text, format.CRLF)
	line := 1
	for i := 0; i < len(text); i++ {
		if text[i] != format.RecordSep {
			continue
		}
		hasCR := i > 0 && text[i-1] == format.CarriageReturn
		if crlf && !hasCR {
			report.Add(types.Diagnostic{
				Severity: types.SevWarning,
				Category: types.DiagLineEnding,
				Line:     line,
				Issue:    "LF line ending in a CRLF file",
			})
		}
		line++
	}
}

// lineCounter maps increasing byte offsets to 1-based line numbers.
type lineCounter struct {
	text   string
	offset int
	line   int
}

func newLineCounter(text string) *lineCounter {
	return &lineCounter{text: text, line: 1}
}

func (c *lineCounter) at(offset int) int {
	if offset < c.offset {
		c.offset, c.line = 0, 1
	}
	c.line += strings.Count(c.text[c.offset:offset], format.LF)
	c.offset = offset
	return c.line
}
