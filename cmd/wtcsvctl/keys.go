package main

import (
	"github.com/spf13/cobra"
)

var keysDuplicates bool

func init() {
	cmd := newKeysCmd()
	cmd.Flags().BoolVarP(&keysDuplicates, "duplicates", "d", false, "List only identifiers that occur more than once")
	rootCmd.AddCommand(cmd)
}

func newKeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys <file>",
		Short: "List record identifiers",
		Long: `The keys command lists the identifier of every record in file order.

Example:
  wtcsvctl keys lang/units.csv
  wtcsvctl keys lang/units.csv --duplicates
  wtcsvctl keys lang/units.csv --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeys(args)
		},
	}
	return cmd
}

func runKeys(args []string) error {
	f, err := loadFile(args[0])
	if err != nil {
		return err
	}

	counts := make(map[string]int, f.Table.Len())
	for _, rec := range f.Table.Records {
		counts[rec.ID()]++
	}

	// Duplicates are listed once, at their first occurrence.
	ids := make([]string, 0, len(counts))
	for _, rec := range f.Table.Records {
		id := rec.ID()
		switch {
		case !keysDuplicates:
			ids = append(ids, id)
		case counts[id] > 1:
			ids = append(ids, id)
			counts[id] = 0
		}
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"table": f.Table.Name,
			"keys":  ids,
		})
	}

	for _, id := range ids {
		printInfo("%s\n", id)
	}
	return nil
}
