package wtcsv_test

import (
	"errors"
	"fmt"

	"github.com/joshuapare/wtcsvkit/pkg/types"
	"github.com/joshuapare/wtcsvkit/pkg/wtcsv"
)

const exampleText = "\"<ID|readonly|noverify>\";\"<English>\";\"<French>\";\"<Comments>\"\r\n" +
	"\"country_germany\";\"Germany\";\"Allemagne\";\r\n" +
	"\"country_china\";\"China\";\"Chine\";\r\n"

// Example shows a parse, edit and export cycle.
func Example() {
	t, err := wtcsv.Parse(exampleText, "_common_languages.csv")
	if err != nil {
		fmt.Println(err)
		return
	}

	if err := t.EditByID("country_china", "west-taiwan"); err != nil {
		fmt.Println(err)
		return
	}

	rec, _ := t.LookupByID("country_china")
	fmt.Println(rec.Items)
	fmt.Println(t.Header.Params)
	// Output:
	// [country_china west-taiwan west-taiwan west-taiwan]
	// [ID English French Comments]
}

// ExampleDiff compares a table against an edited copy.
func ExampleDiff() {
	before, _ := wtcsv.Parse(exampleText, "before")
	after := before.Clone()
	_ = after.SetField("country_germany", "French", "Allemagne (RFA)")

	diffs, err := wtcsv.Diff(before, after)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, d := range diffs {
		fmt.Printf("%s.%s: %q -> %q\n", d.ID, d.Field, d.Old, d.New)
	}
	// Output:
	// country_germany.French: "Allemagne" -> "Allemagne (RFA)"
}

// ExampleTable_LookupByID shows how a missing identifier is reported.
func ExampleTable_LookupByID() {
	t, _ := wtcsv.Parse(exampleText, "_common_languages.csv")

	_, err := t.LookupByID("country_fake")
	fmt.Println(errors.Is(err, types.ErrRecordIDNotFound))
	fmt.Println(err)
	// Output:
	// true
	// File _common_languages.csv does not contain record with id country_fake
}
