package wtcsv

import "github.com/joshuapare/wtcsvkit/pkg/types"

// Compatible reports whether two tables can be compared position by position.
// Checks run in a fixed order and the first failure is returned: column
// count, then record count, then column names.
func Compatible(left, right *Table) error {
	if l, r := len(left.Header.Params), len(right.Header.Params); l != r {
		return &types.HeaderLenError{Expected: l, Actual: r}
	}

	if l, r := len(left.Records), len(right.Records); l != r {
		return &types.RecordLengthError{Expected: l, Actual: r}
	}

	for i, p := range left.Header.Params {
		if right.Header.Params[i] != p {
			return &types.HeaderContentError{Expected: p, Actual: right.Header.Params[i]}
		}
	}

	return nil
}
