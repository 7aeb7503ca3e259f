package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/wtcsvkit/pkg/wtcsv"
)

func init() {
	rootCmd.AddCommand(newSearchCmd())
}

func newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <file> <value>...",
		Short: "Find record identifiers by field value",
		Long: `The search command prints, in ascending order, the identifiers of every
record that has a field exactly equal to value. Several values can be
searched at once; the table is indexed a single time.

Example:
  wtcsvctl search lang/units.csv "Flusi 1"
  wtcsvctl search lang/units.csv "Flusi 1" "light tank" --json`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(args)
		},
	}
	return cmd
}

type searchResult struct {
	Value string   `json:"value"`
	IDs   []string `json:"ids"`
}

func runSearch(args []string) error {
	f, err := loadFile(args[0])
	if err != nil {
		return err
	}

	values := args[1:]
	if len(values) == 1 {
		ids := f.Table.IDsByValue(values[0])
		if jsonOut {
			return printJSON(searchResult{Value: values[0], IDs: nonNil(ids)})
		}
		for _, id := range ids {
			printInfo("%s\n", id)
		}
		printVerbose("%d matches\n", len(ids))
		return nil
	}

	var index wtcsv.ValueIndex
	results := make([]searchResult, 0, len(values))
	for _, v := range values {
		results = append(results, searchResult{Value: v, IDs: nonNil(f.Table.IDsByValueCached(v, &index))})
	}
	logger.Debug("value index built", "values", index.Len())

	if jsonOut {
		return printJSON(results)
	}
	for _, r := range results {
		printInfo("%s:\n", r.Value)
		for _, id := range r.IDs {
			printInfo("  %s\n", id)
		}
	}
	return nil
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
