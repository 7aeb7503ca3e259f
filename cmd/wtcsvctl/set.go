package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := newSetCmd()
	addMutationFlags(cmd)
	rootCmd.AddCommand(cmd)
}

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <file> <id> <column> <value>",
		Short: "Set a single field of a record",
		Long: `The set command changes one column of the record with the given identifier.
The column is matched against the header names with their <|type>
annotations removed.

Example:
  wtcsvctl set lang/units.csv us_m2a4_shop English "M2A4"
  wtcsvctl set lang/units.csv us_m2a4_shop Comments "" --dry-run`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args)
		},
	}
	return cmd
}

func runSet(args []string) error {
	path, id, column, value := args[0], args[1], args[2], args[3]

	f, err := loadFile(path)
	if err != nil {
		return err
	}
	if err := f.Table.SetField(id, column, value); err != nil {
		return err
	}

	return commit(f, fmt.Sprintf("Set %s.%s", id, column))
}
