package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/joshuapare/wtcsvkit/pkg/types"
	"github.com/joshuapare/wtcsvkit/pkg/wtcsv"
)

var (
	diffAllColumns bool
	diffOutput     string
	diffExitCode   bool
)

func init() {
	cmd := newDiffCmd()
	cmd.Flags().BoolVar(&diffAllColumns, "all-columns", false, "Report every differing column instead of the first per record")
	cmd.Flags().StringVar(&diffOutput, "output", "", "Save diff to file")
	cmd.Flags().BoolVar(&diffExitCode, "exit-code", false, "Exit with status 1 when the tables differ")
	rootCmd.AddCommand(cmd)
}

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <file1> <file2>",
		Short: "Compare two tables record by record",
		Long: `The diff command pairs the records of two compatible tables by position
and reports the first column that differs in each pair. Use --all-columns to
see every differing column.

Example:
  wtcsvctl diff old/units.csv new/units.csv
  wtcsvctl diff old/units.csv new/units.csv --all-columns
  wtcsvctl diff old/units.csv new/units.csv --json --output changes.json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(args)
		},
	}
	return cmd
}

func runDiff(args []string) error {
	printVerbose("Comparing %s and %s...\n", args[0], args[1])

	left, err := loadFile(args[0])
	if err != nil {
		return err
	}
	right, err := loadFile(args[1])
	if err != nil {
		return err
	}

	opts := fileOptions().Diff
	opts.AllColumns = opts.AllColumns || diffAllColumns
	diffs, err := wtcsv.DiffTables(left.Table, right.Table, opts)
	if err != nil {
		return err
	}

	if diffOutput != "" {
		if err := writeDiffFile(diffOutput, diffs); err != nil {
			return err
		}
		printInfo("Diff written to: %s\n", diffOutput)
	} else if err := writeDiffs(os.Stdout, diffs); err != nil {
		return err
	}

	if diffExitCode && len(diffs) > 0 {
		return &exitError{code: 1, msg: fmt.Sprintf("%d differences", len(diffs))}
	}
	return nil
}

func writeDiffFile(path string, diffs []types.Diff) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()
	return writeDiffs(f, diffs)
}

func writeDiffs(w io.Writer, diffs []types.Diff) error {
	if jsonOut {
		if diffs == nil {
			diffs = []types.Diff{}
		}
		return encodeJSON(w, diffs)
	}

	if len(diffs) == 0 {
		if !quiet {
			fmt.Fprintln(w, "No differences")
		}
		return nil
	}

	idColor := color.New(color.Bold).SprintFunc()
	for _, d := range diffs {
		fmt.Fprintf(w, "%s [%s]\n", idColor(d.ID), d.Field)
		fmt.Fprintf(w, "  %s\n", color.RedString("- %s", quoteForDiff(d.Old)))
		fmt.Fprintf(w, "  %s\n", color.GreenString("+ %s", quoteForDiff(d.New)))
	}
	if !quiet {
		fmt.Fprintf(w, "\n%d differences\n", len(diffs))
	}
	return nil
}

// quoteForDiff makes empty and whitespace-only values visible.
func quoteForDiff(s string) string {
	if strings.TrimSpace(s) == s && s != "" {
		return s
	}
	return fmt.Sprintf("%q", s)
}
