package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/joshuapare/wtcsvkit/pkg/types"
	"github.com/joshuapare/wtcsvkit/pkg/wtcsv"
)

func init() {
	cmd := newMergeCmd()
	addMutationFlags(cmd)
	rootCmd.AddCommand(cmd)
}

func newMergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge <file> <patch.csv>...",
		Short: "Merge records from one or more tables into a table",
		Long: `The merge command applies the records of each patch table to the target.
A record whose identifier already exists replaces the existing fields; any
other record is appended. Patches must have the same columns as the target
and are applied in order.

Example:
  wtcsvctl merge lang/units.csv patch.csv
  wtcsvctl merge lang/units.csv base.csv patch1.csv patch2.csv --backup
  wtcsvctl merge lang/units.csv patch.csv --dry-run`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMerge(args)
		},
	}
	return cmd
}

type mergeStats struct {
	added, updated, unchanged int
}

func runMerge(args []string) error {
	target, err := loadFile(args[0])
	if err != nil {
		return err
	}

	var total mergeStats
	for _, path := range args[1:] {
		patch, err := loadFile(path)
		if err != nil {
			return err
		}
		st, err := mergeTable(target.Table, patch.Table)
		if err != nil {
			return fmt.Errorf("merge %s: %w", path, err)
		}
		printVerbose("%s: %d added, %d updated, %d unchanged\n", path, st.added, st.updated, st.unchanged)
		total.added += st.added
		total.updated += st.updated
		total.unchanged += st.unchanged
	}

	return commit(target, fmt.Sprintf("Merged %d files: %d added, %d updated, %d unchanged",
		len(args)-1, total.added, total.updated, total.unchanged))
}

// mergeTable upserts every record of patch into dst.
func mergeTable(dst, patch *wtcsv.Table) (mergeStats, error) {
	var st mergeStats
	if err := sameColumns(dst.Header, patch.Header); err != nil {
		return st, err
	}

	var index wtcsv.IDIndex
	for _, rec := range patch.Records {
		if cur, err := dst.LookupByIDCached(rec.ID(), &index); err == nil && slices.Equal(cur.Items, rec.Items) {
			st.unchanged++
			continue
		}
		added, err := dst.Upsert(rec.Items...)
		if err != nil {
			return st, err
		}
		if added {
			st.added++
			// The index does not know about appended records.
			index.Reset()
		} else {
			st.updated++
		}
	}
	return st, nil
}

func sameColumns(want, got *wtcsv.Header) error {
	if want.Len != got.Len {
		return &types.HeaderLenError{Expected: want.Len, Actual: got.Len}
	}
	for i := range want.Params {
		if want.Params[i] != got.Params[i] {
			return &types.HeaderContentError{Expected: want.Params[i], Actual: got.Params[i]}
		}
	}
	return nil
}
