package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := newEditCmd()
	addMutationFlags(cmd)
	rootCmd.AddCommand(cmd)
}

func newEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <file> <id> [value]",
		Short: "Overwrite every field of a record",
		Long: `The edit command replaces every field of the record except its identifier
with value. When value is omitted the placeholder from the config file is
used.

Example:
  wtcsvctl edit lang/units.csv us_m2a4_shop "M2A4"
  wtcsvctl edit lang/units.csv us_m2a4_shop --config wtcsvctl.toml
  wtcsvctl edit lang/units.csv us_m2a4_shop "M2A4" -o patched.csv`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(args)
		},
	}
	return cmd
}

// addMutationFlags registers the output flags shared by edit, set and delete.
func addMutationFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&mutOutput, "output", "o", "", "Write to this file instead of in place (- for stdout)")
	cmd.Flags().BoolVarP(&mutDryRun, "dry-run", "n", false, "Show what would change without writing")
	cmd.Flags().BoolVar(&mutBackup, "backup", false, "Keep a .bak copy of the original")
}

func runEdit(args []string) error {
	path, id := args[0], args[1]

	value := cfg.Placeholder
	if len(args) > 2 {
		value = args[2]
	} else if value == "" {
		return fmt.Errorf("no value given and no placeholder configured")
	}

	f, err := loadFile(path)
	if err != nil {
		return err
	}
	if err := f.Table.EditByID(id, value); err != nil {
		return err
	}
	logger.Debug("record edited", "id", id, "columns", f.Table.Header.Len-1)

	return commit(f, fmt.Sprintf("Edited %s", id))
}
