package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/joshuapare/wtcsvkit/pkg/types"
	"github.com/joshuapare/wtcsvkit/pkg/wtcsv"
)

var (
	diagFormat      string
	diagOutputFile  string
	diagShowSummary bool
)

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose <file>",
	Short: "Run a diagnostic scan on a table",
	Long: `Scans a table without stopping at the first problem, checking for:
  - Header problems (too few columns, duplicate column names)
  - Records that span several physical lines
  - Fields that are not wrapped in quotes or are quoted but empty
  - Empty or duplicate identifiers
  - Mixed line terminators and unterminated trailing text

Each issue is reported with its line number and record identifier.`,
	Example: `  # Scan a table and show text report
  wtcsvctl diagnose lang/units.csv

  # Output JSON for programmatic analysis
  wtcsvctl diagnose --format json lang/units.csv

  # Compact format for grep
  wtcsvctl diagnose --format compact lang/units.csv

  # Save report to file
  wtcsvctl diagnose --output report.txt lang/units.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runDiagnose,
}

func init() {
	diagnoseCmd.Flags().StringVarP(&diagFormat, "format", "f", "text",
		"Output format: text, json, compact (text=human-readable, json=structured, compact=one-line-per-issue)")
	diagnoseCmd.Flags().StringVarP(&diagOutputFile, "output", "o", "",
		"Write report to file instead of stdout")
	diagnoseCmd.Flags().BoolVarP(&diagShowSummary, "summary", "s", false,
		"Show only summary (no detailed diagnostics)")

	rootCmd.AddCommand(diagnoseCmd)
}

func runDiagnose(cmd *cobra.Command, args []string) error {
	path := args[0]

	text, enc, err := readText(path)
	if err != nil {
		return err
	}
	printVerbose("Scanning %s (%s)\n\n", path, enc)

	report := wtcsv.Diagnose(text, filepath.Base(path))

	var output string
	switch diagFormat {
	case "json":
		jsonStr, err := report.FormatJSON()
		if err != nil {
			return fmt.Errorf("failed to format JSON: %w", err)
		}
		output = jsonStr + "\n"

	case "compact":
		output = report.FormatTextCompact()

	case "text":
		if diagShowSummary {
			output = formatSummaryOnly(report)
		} else {
			output = report.FormatText()
		}

	default:
		return fmt.Errorf("unknown format: %s (use: text, json, compact)", diagFormat)
	}

	if diagOutputFile != "" {
		if err := os.WriteFile(diagOutputFile, []byte(output), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		printInfo("Report written to: %s\n", diagOutputFile)
	} else {
		fmt.Fprint(os.Stdout, output)
	}

	// Exit code based on severity
	switch {
	case report.HasErrors():
		return &exitError{code: 1, msg: fmt.Sprintf("%d errors found in %s", report.Summary.Errors, path)}
	case report.Summary.Warnings > 0:
		printInfo("\n✓ Warnings found (non-critical)\n")
	default:
		printInfo("\n✓ No issues found\n")
	}
	return nil
}

func formatSummaryOnly(report *types.DiagnosticReport) string {
	output := fmt.Sprintf("Diagnostic Summary for %s\n", report.Table)
	output += fmt.Sprintf("Lines:     %d\n", report.Lines)
	output += fmt.Sprintf("Records:   %d\n\n", report.Records)
	output += fmt.Sprintf("Errors:    %d\n", report.Summary.Errors)
	output += fmt.Sprintf("Warnings:  %d\n", report.Summary.Warnings)
	output += fmt.Sprintf("Info:      %d\n", report.Summary.Info)
	return output
}
