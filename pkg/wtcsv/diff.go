package wtcsv

import "github.com/joshuapare/wtcsvkit/pkg/types"

// Diff compares two compatible tables record by record and reports the first
// differing column of each record that changed.
func Diff(left, right *Table) ([]types.Diff, error) {
	return DiffTables(left, right, DiffOptions{})
}

// DiffTables compares two compatible tables record by record. Record i of
// left is compared with record i of right; identifiers are not matched.
func DiffTables(left, right *Table, opts DiffOptions) ([]types.Diff, error) {
	if err := Compatible(left, right); err != nil {
		return nil, err
	}

	var diffs []types.Diff
	for i, l := range left.Records {
		r := right.Records[i]
		for j, old := range l.Items {
			if r.Items[j] == old {
				continue
			}
			diffs = append(diffs, types.Diff{
				ID:     l.Items[0],
				Old:    old,
				New:    r.Items[j],
				Column: j,
				Field:  left.Header.Params[j],
			})
			if !opts.AllColumns {
				break
			}
		}
	}

	return diffs, nil
}
