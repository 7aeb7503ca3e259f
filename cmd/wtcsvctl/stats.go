package main

import (
	"os"
	"unicode/utf8"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newStatsCmd())
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <file>",
		Short: "Show per-column statistics",
		Long: `The stats command shows, for every column, how many records fill it, how
many distinct values it holds and the length of its longest value. Useful for
spotting untranslated columns.

Example:
  wtcsvctl stats lang/units.csv
  wtcsvctl stats lang/units.csv --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(args)
		},
	}
	return cmd
}

type ColumnStats struct {
	Name     string `json:"name"`
	Filled   int    `json:"filled"`
	Empty    int    `json:"empty"`
	Distinct int    `json:"distinct"`
	MaxChars int    `json:"max_chars"`
}

type TableStats struct {
	Table    string        `json:"table"`
	FileSize int64         `json:"file_size"`
	Records  int           `json:"records"`
	Columns  []ColumnStats `json:"columns"`
}

func runStats(args []string) error {
	path := args[0]

	f, err := loadFile(path)
	if err != nil {
		return err
	}
	fileInfo, err := os.Stat(path)
	if err != nil {
		return err
	}

	stats := TableStats{
		Table:    f.Table.Name,
		FileSize: fileInfo.Size(),
		Records:  f.Table.Len(),
		Columns:  make([]ColumnStats, f.Table.Header.Len),
	}

	for col, name := range f.Table.Header.Params {
		cs := &stats.Columns[col]
		cs.Name = name
		seen := make(map[string]struct{})
		for _, rec := range f.Table.Records {
			v := rec.Items[col]
			if v == "" {
				cs.Empty++
				continue
			}
			cs.Filled++
			seen[v] = struct{}{}
			cs.MaxChars = max(cs.MaxChars, utf8.RuneCountInString(v))
		}
		cs.Distinct = len(seen)
	}

	if jsonOut {
		return printJSON(stats)
	}

	printInfo("\nStatistics for %s\n", stats.Table)
	printInfo("═══════════════════════════════════════════════\n")
	printInfo("  File size: %d bytes\n", stats.FileSize)
	printInfo("  Records:   %d\n\n", stats.Records)
	printInfo("  %-20s %8s %8s %8s %8s\n", "Column", "Filled", "Empty", "Distinct", "Longest")
	for _, cs := range stats.Columns {
		printInfo("  %-20s %8d %8d %8d %8d\n", cs.Name, cs.Filled, cs.Empty, cs.Distinct, cs.MaxChars)
	}
	return nil
}
