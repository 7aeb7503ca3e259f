package types

// Diff is one reported discrepancy between two positionally matched records.
type Diff struct {
	ID     string `json:"id"`     // identifier (field 0) of the left record
	Old    string `json:"old"`    // value in the left table
	New    string `json:"new"`    // value in the right table
	Column int    `json:"column"` // index of the differing field
	Field  string `json:"field"`  // sanitized header name of that column
}
