package wtcsv

import (
	"slices"

	"github.com/joshuapare/wtcsvkit/pkg/types"
)

// LookupByID returns the first record whose identifier is id. The returned
// record shares its Items with the table; use Clone to detach it.
func (t *Table) LookupByID(id string) (Record, error) {
	if i := t.indexOf(id); i >= 0 {
		return t.Records[i], nil
	}
	return Record{}, &types.RecordIDNotFoundError{ID: id, Table: t.Name}
}

// IDIndex is a caller-owned id → record cache for LookupByIDCached.
// The zero value is an empty index ready for use. The table never
// invalidates it; call Reset after adding, removing or re-identifying records.
type IDIndex struct {
	records map[string]Record
}

// Len returns the number of cached identifiers.
func (x *IDIndex) Len() int { return len(x.records) }

// Reset empties the index so the next lookup rebuilds it.
func (x *IDIndex) Reset() { x.records = nil }

func (x *IDIndex) build(t *Table) {
	x.records = make(map[string]Record, len(t.Records))
	for _, r := range t.Records {
		// First occurrence wins, matching LookupByID.
		if _, dup := x.records[r.Items[0]]; !dup {
			x.records[r.Items[0]] = r
		}
	}
}

// LookupByIDCached answers like LookupByID from cache, building it from the
// table on first use. A nil cache falls back to the linear scan.
func (t *Table) LookupByIDCached(id string, cache *IDIndex) (Record, error) {
	if cache == nil {
		return t.LookupByID(id)
	}
	if len(cache.records) == 0 {
		cache.build(t)
	}
	if r, ok := cache.records[id]; ok {
		return r, nil
	}
	return Record{}, &types.RecordIDNotFoundError{ID: id, Table: t.Name}
}

// IDsByValue returns, in ascending order and without duplicates, the
// identifiers of every record holding value in any field.
func (t *Table) IDsByValue(value string) []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, r := range t.Records {
		if !r.contains(value) {
			continue
		}
		if _, dup := seen[r.Items[0]]; dup {
			continue
		}
		seen[r.Items[0]] = struct{}{}
		ids = append(ids, r.Items[0])
	}
	slices.Sort(ids)
	return ids
}

// ValueIndex is a caller-owned value → ids cache for IDsByValueCached,
// with the same invalidation contract as IDIndex. It must also be reset
// after field edits.
type ValueIndex struct {
	ids map[string][]string
}

// Len returns the number of distinct cached values.
func (x *ValueIndex) Len() int { return len(x.ids) }

// Reset empties the index so the next query rebuilds it.
func (x *ValueIndex) Reset() { x.ids = nil }

func (x *ValueIndex) build(t *Table) {
	x.ids = make(map[string][]string)
	for _, r := range t.Records {
		id := r.Items[0]
		for _, f := range r.Items {
			x.ids[f] = append(x.ids[f], id)
		}
	}
	for v, ids := range x.ids {
		slices.Sort(ids)
		x.ids[v] = slices.Compact(ids)
	}
}

// IDsByValueCached answers like IDsByValue from cache, building it from the
// table on first use. A nil cache falls back to the full scan. The returned
// slice is a copy and may be modified.
func (t *Table) IDsByValueCached(value string, cache *ValueIndex) []string {
	if cache == nil {
		return t.IDsByValue(value)
	}
	if len(cache.ids) == 0 {
		cache.build(t)
	}
	ids := cache.ids[value]
	if len(ids) == 0 {
		return nil
	}
	return slices.Clone(ids)
}
