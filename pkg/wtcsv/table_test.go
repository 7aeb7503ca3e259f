package wtcsv

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/wtcsvkit/pkg/types"
)

func TestParse_CommonLanguages(t *testing.T) {
	text := readTestdata(t, "_common_languages.csv")
	tbl := mustParse(t, text, "_common_languages.csv")

	assert.True(t, tbl.CRLF)
	assert.Equal(t, 10, tbl.Len())
	assert.Equal(t, "country_germany", tbl.Records[0].ID())
	assert.Equal(t, "country_israel", tbl.Records[9].ID())
	assert.Equal(t, "20", tbl.Records[9].Items[10])
	for _, r := range tbl.Records {
		assert.Len(t, r.Items, tbl.Header.Len)
	}
}

func TestParse_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"crlf fixture", readTestdata(t, "_common_languages.csv")},
		{"lf fixture", readTestdata(t, "units.csv")},
		{"header only lf", "\"<ID|readonly>\";\"<English>\"\n"},
		{"header only crlf", "\"<ID|readonly>\";\"<English>\"\r\n"},
		{"empty fields", "\"ID\";\"A\";\"B\"\n\"x\";;\n;;\n\"y\";\"1\";\"2\"\n"},
		{"unicode", "\"ID\";\"Chinese\"\r\n\"k\";\"德\\t国\"\r\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := mustParse(t, tt.text, tt.name)
			assert.Equal(t, tt.text, tbl.Export())

			var buf bytes.Buffer
			n, err := tbl.WriteTo(&buf)
			require.NoError(t, err)
			assert.Equal(t, int64(len(tt.text)), n)
			assert.Equal(t, tt.text, buf.String())
		})
	}
}

func TestParse_LFDetection(t *testing.T) {
	tbl := mustParse(t, readTestdata(t, "units.csv"), "units.csv")
	assert.False(t, tbl.CRLF)
	assert.Equal(t, 7, tbl.Len())
}

func TestParse_HeaderTooShort(t *testing.T) {
	_, err := Parse("\"ID\"\n\"a\"\n", "x.csv")
	assert.True(t, errors.Is(err, types.ErrHeaderTooShort))
}

func TestParse_WrongWidthFailsWholeTable(t *testing.T) {
	// The second line has too many delimiters, so no boundary is ever found
	// again and the rest of the file is reported with its full width.
	text := "\"ID\";\"A\"\n\"a\";\"1\"\n\"b\";\"2\";\"3\"\n\"c\";\"4\"\n"

	tbl, err := Parse(text, "x.csv")
	require.Error(t, err)
	assert.Nil(t, tbl)

	var hl *types.HeaderLenError
	require.True(t, errors.As(err, &hl))
	assert.Equal(t, 2, hl.Expected)
	assert.Equal(t, 4, hl.Actual)
}

func TestParse_UnterminatedLastRecord(t *testing.T) {
	_, err := Parse("\"ID\";\"A\"\n\"a\";\"1\"", "x.csv")
	assert.True(t, errors.Is(err, types.ErrUnterminated))

	_, err = Parse("\"ID\";\"A\"", "x.csv")
	assert.True(t, errors.Is(err, types.ErrUnterminated))
}

func TestParse_Strict(t *testing.T) {
	text := "\"ID\";\"A\"\n\"a\";bad\n"

	_, err := Parse(text, "x.csv")
	require.NoError(t, err, "lenient parse accepts unquoted fields")

	_, err = ParseWithOptions(text, "x.csv", ParseOptions{Strict: true})
	var mf *types.MalformedFieldError
	require.True(t, errors.As(err, &mf))
	assert.Equal(t, "bad", mf.Field)

	_, err = ParseWithOptions(readTestdata(t, "units.csv"), "units.csv", ParseOptions{Strict: true})
	assert.NoError(t, err)
}

func TestInsertRecord_RejectsWrongWidth(t *testing.T) {
	tbl := mustParse(t, "\"ID\";\"A\";\"B\"\n", "x.csv")

	err := tbl.InsertRecord(`"a";"1"`)
	var hl *types.HeaderLenError
	require.True(t, errors.As(err, &hl))
	assert.Equal(t, 3, hl.Expected)
	assert.Equal(t, 2, hl.Actual)
	assert.Zero(t, tbl.Len(), "nothing stored on failure")

	require.NoError(t, tbl.InsertRecord(`"a";"1";`))
	assert.Equal(t, []string{"a", "1", ""}, tbl.Records[0].Items)
}

func TestAppend(t *testing.T) {
	tbl := mustParse(t, "\"ID\";\"A\"\r\n", "x.csv")

	require.NoError(t, tbl.Append("k", "v"))
	require.NoError(t, tbl.Append("e", ""))
	assert.True(t, errors.Is(tbl.Append("only-id"), types.ErrHeaderLen))

	assert.Equal(t, "\"ID\";\"A\"\r\n\"k\";\"v\"\r\n\"e\";\r\n", tbl.Export())
}

func TestClone(t *testing.T) {
	tbl := mustParse(t, readTestdata(t, "units.csv"), "units.csv")
	c := tbl.Clone()
	require.NoError(t, c.EditByID("us_m2a4_1", "x"))
	assert.NotEqual(t, tbl.Export(), c.Export())
	assert.Same(t, tbl.Header, c.Header)
}

func TestExport_LargeTable(t *testing.T) {
	var b strings.Builder
	b.WriteString("\"<ID|readonly|noverify>\";\"<English>\";\"<Comments>\"\r\n")
	for i := 0; i < 5000; i++ {
		b.WriteString("\"id_")
		b.WriteString(strings.Repeat("x", i%7))
		b.WriteString("\";\"value\";\r\n")
	}
	text := b.String()
	tbl := mustParse(t, text, "big.csv")
	assert.Equal(t, 5000, tbl.Len())
	assert.Equal(t, text, tbl.Export())
}
