package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := newDeleteCmd()
	addMutationFlags(cmd)
	rootCmd.AddCommand(cmd)
}

func newDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <file> <id>",
		Short: "Remove a record",
		Long: `The delete command removes the first record with the given identifier.

Example:
  wtcsvctl delete lang/units.csv us_m2a4_shop
  wtcsvctl delete lang/units.csv us_m2a4_shop --backup`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(args)
		},
	}
	return cmd
}

func runDelete(args []string) error {
	path, id := args[0], args[1]

	f, err := loadFile(path)
	if err != nil {
		return err
	}
	if err := f.Table.RemoveByID(id); err != nil {
		return err
	}

	return commit(f, fmt.Sprintf("Deleted %s", id))
}
