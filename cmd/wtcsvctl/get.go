package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/wtcsvkit/pkg/types"
)

var getColumn string

func init() {
	cmd := newGetCmd()
	cmd.Flags().StringVar(&getColumn, "column", "", "Print only this column's value")
	rootCmd.AddCommand(cmd)
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <file> <id>",
		Short: "Get a record by identifier",
		Long: `The get command prints the record whose first field equals id, one
column=value line per field.

Example:
  wtcsvctl get lang/units.csv us_m2a4_shop
  wtcsvctl get lang/units.csv us_m2a4_shop --column English
  wtcsvctl get lang/units.csv us_m2a4_shop --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

type recordField struct {
	Column string `json:"column"`
	Value  string `json:"value"`
}

func runGet(args []string) error {
	f, err := loadFile(args[0])
	if err != nil {
		return err
	}

	rec, err := f.Table.LookupByID(args[1])
	if err != nil {
		return err
	}

	header := f.Table.Header
	if getColumn != "" {
		col := header.Index(getColumn)
		if col < 0 {
			return &types.ColumnNotFoundError{Column: getColumn, Table: f.Table.Name}
		}
		if jsonOut {
			return printJSON(recordField{Column: header.Params[col], Value: rec.Items[col]})
		}
		printInfo("%s\n", rec.Items[col])
		return nil
	}

	if jsonOut {
		fields := make([]recordField, 0, len(rec.Items))
		for i, item := range rec.Items {
			fields = append(fields, recordField{Column: header.Params[i], Value: item})
		}
		return printJSON(fields)
	}

	for i, item := range rec.Items {
		printInfo("%s=%s\n", header.Params[i], item)
	}
	return nil
}
