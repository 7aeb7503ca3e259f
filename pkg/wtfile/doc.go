// Package wtfile loads and saves WT CSV tables on disk and compares whole
// directories of them. It wraps package wtcsv, which only deals in text:
// this package owns file reading (memory-mapped where available), encoding
// detection, and atomic writes.
//
// Typical use:
//
//	f, err := wtfile.Load("lang/units.csv", wtfile.Options{})
//	if err != nil {
//	    return err
//	}
//	if err := f.Table.EditByID("germ_rdm242_1", "Flusi"); err != nil {
//	    return err
//	}
//	return f.Save()
package wtfile
