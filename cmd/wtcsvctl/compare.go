package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/joshuapare/wtcsvkit/pkg/types"
	"github.com/joshuapare/wtcsvkit/pkg/wtfile"
)

var (
	compareWorkers    int
	compareAllColumns bool
	compareExitCode   bool
)

func init() {
	cmd := newCompareCmd()
	cmd.Flags().IntVarP(&compareWorkers, "workers", "w", 0, "Number of file pairs to load at once (default from config, else 4)")
	cmd.Flags().BoolVar(&compareAllColumns, "all-columns", false, "Report every differing column instead of the first per record")
	cmd.Flags().BoolVar(&compareExitCode, "exit-code", false, "Exit with status 1 when the directories differ")
	rootCmd.AddCommand(cmd)
}

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare-dirs <dir1> <dir2>",
		Short: "Diff every table present in two directories",
		Long: `The compare-dirs command diffs each .csv file that exists under the same
name in both directories and lists files that exist on one side only.
File pairs are loaded concurrently.

Example:
  wtcsvctl compare-dirs old/lang new/lang
  wtcsvctl compare-dirs old/lang new/lang --workers 8 --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(args)
		},
	}
	return cmd
}

type fileResult struct {
	Name  string       `json:"name"`
	Diffs []types.Diff `json:"diffs,omitempty"`
	Error string       `json:"error,omitempty"`
}

type compareResult struct {
	Left      string       `json:"left"`
	Right     string       `json:"right"`
	OnlyLeft  []string     `json:"only_left,omitempty"`
	OnlyRight []string     `json:"only_right,omitempty"`
	Files     []fileResult `json:"files"`
}

func runCompare(args []string) error {
	opts := fileOptions()
	opts.Diff.AllColumns = opts.Diff.AllColumns || compareAllColumns
	if compareWorkers > 0 {
		opts.Workers = compareWorkers
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	printVerbose("Comparing %s and %s...\n", args[0], args[1])
	report, err := wtfile.CompareDirs(ctx, args[0], args[1], opts)
	if err != nil {
		return err
	}
	logger.Debug("directories compared", "files", len(report.Files),
		"only_left", len(report.OnlyLeft), "only_right", len(report.OnlyRight))

	if jsonOut {
		if err := printJSON(toCompareResult(report)); err != nil {
			return err
		}
	} else {
		printCompareText(report)
	}

	if compareExitCode && report.Changed() {
		return &exitError{code: 1, msg: "directories differ"}
	}
	return nil
}

func toCompareResult(report *wtfile.DirReport) compareResult {
	res := compareResult{
		Left:      report.Left,
		Right:     report.Right,
		OnlyLeft:  report.OnlyLeft,
		OnlyRight: report.OnlyRight,
		Files:     make([]fileResult, 0, len(report.Files)),
	}
	for _, f := range report.Files {
		fr := fileResult{Name: f.Name, Diffs: f.Diffs}
		if f.Err != nil {
			fr.Error = f.Err.Error()
		}
		res.Files = append(res.Files, fr)
	}
	return res
}

func printCompareText(report *wtfile.DirReport) {
	for _, name := range report.OnlyLeft {
		printInfo("%s %s\n", color.RedString("only in %s:", report.Left), name)
	}
	for _, name := range report.OnlyRight {
		printInfo("%s %s\n", color.GreenString("only in %s:", report.Right), name)
	}

	changed := 0
	for _, f := range report.Files {
		switch {
		case f.Err != nil:
			changed++
			printInfo("%s %s: %v\n", color.RedString("✗"), f.Name, f.Err)
		case len(f.Diffs) > 0:
			changed++
			printInfo("%s %s: %d differences\n", color.YellowString("~"), f.Name, len(f.Diffs))
			if verbose {
				for _, d := range f.Diffs {
					printInfo("    %s [%s] %s -> %s\n", d.ID, d.Field, quoteForDiff(d.Old), quoteForDiff(d.New))
				}
			}
		default:
			printVerbose("%s %s\n", color.GreenString("="), f.Name)
		}
	}

	printInfo("\n%d of %d shared files differ, %d only in %s, %d only in %s\n",
		changed, len(report.Files), len(report.OnlyLeft), report.Left, len(report.OnlyRight), report.Right)
}
