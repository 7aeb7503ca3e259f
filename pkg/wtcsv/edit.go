package wtcsv

import "github.com/joshuapare/wtcsvkit/pkg/types"

// EditByID overwrites every field except the identifier of the record whose
// identifier is id. This is a bulk operation: all language columns collapse
// to value. If several records share id, the last one is edited.
func (t *Table) EditByID(id, value string) error {
	// One-shot index, rebuilt per call.
	index := make(map[string]int, len(t.Records))
	for i, r := range t.Records {
		index[r.Items[0]] = i
	}

	target, ok := index[id]
	if !ok {
		return &types.RecordIDNotFoundError{ID: id, Table: t.Name}
	}

	items := t.Records[target].Items
	for i := 1; i < len(items); i++ {
		items[i] = value
	}
	return nil
}

// SetField overwrites a single column, addressed by sanitized header name, of
// the first record whose identifier is id.
func (t *Table) SetField(id, column, value string) error {
	col := t.Header.Index(column)
	if col < 0 {
		return &types.ColumnNotFoundError{Column: column, Table: t.Name}
	}

	i := t.indexOf(id)
	if i < 0 {
		return &types.RecordIDNotFoundError{ID: id, Table: t.Name}
	}

	t.Records[i].Items[col] = value
	return nil
}

// RemoveByID deletes the first record whose identifier is id. Caller-owned
// caches built before the call are stale afterwards.
func (t *Table) RemoveByID(id string) error {
	i := t.indexOf(id)
	if i < 0 {
		return &types.RecordIDNotFoundError{ID: id, Table: t.Name}
	}
	t.Records = append(t.Records[:i], t.Records[i+1:]...)
	return nil
}

// Upsert replaces the fields of the first record whose identifier is items[0],
// or appends items as a new record when there is none. It reports whether a
// record was added.
func (t *Table) Upsert(items ...string) (added bool, err error) {
	if len(items) != t.Header.Len {
		return false, &types.HeaderLenError{Expected: t.Header.Len, Actual: len(items)}
	}
	if i := t.indexOf(items[0]); i >= 0 {
		copy(t.Records[i].Items, items)
		return false, nil
	}
	return true, t.Append(items...)
}

func (t *Table) indexOf(id string) int {
	for i, r := range t.Records {
		if r.Items[0] == id {
			return i
		}
	}
	return -1
}
