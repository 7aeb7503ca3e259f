package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Display table information",
		Long: `The info command displays the table name, its columns, the number of
records and the line terminator the file uses.

Example:
  wtcsvctl info lang/units.csv
  wtcsvctl info lang/units.csv --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

type tableInfo struct {
	Table      string   `json:"table"`
	Columns    []string `json:"columns"`
	Records    int      `json:"records"`
	Terminator string   `json:"terminator"`
	Encoding   string   `json:"encoding"`
}

func runInfo(args []string) error {
	f, err := loadFile(args[0])
	if err != nil {
		return err
	}

	info := tableInfo{
		Table:      f.Table.Name,
		Columns:    f.Table.Header.Params,
		Records:    f.Table.Len(),
		Terminator: "LF",
		Encoding:   f.Encoding.String(),
	}
	if f.Table.CRLF {
		info.Terminator = "CRLF"
	}

	if jsonOut {
		return printJSON(info)
	}

	printInfo("\nTable: %s\n", info.Table)
	printInfo("═══════════════════════════════════════════════\n")
	printInfo("  Records:     %d\n", info.Records)
	printInfo("  Terminator:  %s\n", info.Terminator)
	printInfo("  Encoding:    %s\n", info.Encoding)
	printInfo("  Columns:     %d\n", len(info.Columns))
	for i, name := range info.Columns {
		if verbose {
			printInfo("    %2d  %-20s %s\n", i, name, f.Table.Header.RawParams[i])
			continue
		}
		printInfo("    %2d  %s\n", i, name)
	}
	return nil
}
