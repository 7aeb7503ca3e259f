package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/joshuapare/wtcsvkit/pkg/types"
	"github.com/joshuapare/wtcsvkit/pkg/wtcsv"
)

func init() {
	rootCmd.AddCommand(newCheckCmd())
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <file1> <file2>",
		Short: "Check whether two tables can be diffed",
		Long: `The check command verifies two tables have the same number of columns,
the same number of records and the same column names, in that order, and
reports the first mismatch. It exits non-zero when the tables differ in shape.

Example:
  wtcsvctl check old/units.csv new/units.csv
  wtcsvctl check old/units.csv new/units.csv --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(args)
		},
	}
	return cmd
}

type checkResult struct {
	Left       string `json:"left"`
	Right      string `json:"right"`
	Compatible bool   `json:"compatible"`
	Kind       string `json:"kind,omitempty"`
	Error      string `json:"error,omitempty"`
}

func runCheck(args []string) error {
	left, err := loadFile(args[0])
	if err != nil {
		return err
	}
	right, err := loadFile(args[1])
	if err != nil {
		return err
	}

	result := checkResult{Left: args[0], Right: args[1], Compatible: true}
	cerr := wtcsv.Compatible(left.Table, right.Table)
	if cerr != nil {
		result.Compatible = false
		if kind, ok := types.KindOf(cerr); ok {
			result.Kind = kind.String()
		}
		result.Error = cerr.Error()
	}

	if jsonOut {
		if err := printJSON(result); err != nil {
			return err
		}
	} else if result.Compatible {
		printInfo("%s %s and %s are compatible\n", color.GreenString("✓"), args[0], args[1])
	} else {
		printInfo("%s %s\n", color.RedString("✗"), result.Error)
	}

	if cerr != nil {
		return &exitError{code: 1, msg: cerr.Error()}
	}
	return nil
}
