package wtcsv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/wtcsvkit/pkg/types"
)

func TestDiagnose_CleanFile(t *testing.T) {
	r := Diagnose(readTestdata(t, "_common_languages.csv"), "_common_languages.csv")

	assert.False(t, r.HasAnyIssues(), r.FormatTextCompact())
	assert.Equal(t, 10, r.Records)
	assert.Equal(t, 11, r.Lines)
	assert.True(t, r.CRLF)
}

func TestDiagnose_CollectsAllIssues(t *testing.T) {
	text := "\"ID\";\"A\";\"A\"\r\n" + // duplicate column name
		"\"a\";\"1\";\"2\"\r\n" +
		"\"a\";\"1\";\"2\"\r\n" + // duplicate id
		"\"b\";raw;\"\"\r\n" + // unquoted field and quoted empty field
		";\"x\";\"y\"\n" + // LF in CRLF file, empty id
		"\"c\";\"1\"\r\n" // trailing text with wrong width

	r := Diagnose(text, "broken.csv")

	require.True(t, r.HasErrors())
	var categories []types.DiagCategory
	for _, d := range r.Issues {
		categories = append(categories, d.Category)
	}
	assert.Contains(t, categories, types.DiagHeader)
	assert.Contains(t, categories, types.DiagIdentifier)
	assert.Contains(t, categories, types.DiagField)
	assert.Contains(t, categories, types.DiagLineEnding)
	assert.Contains(t, categories, types.DiagStructure)

	var dupLine int
	for _, d := range r.Issues {
		if d.Category == types.DiagIdentifier && d.RecordID == "a" {
			dupLine = d.Line
		}
	}
	assert.Equal(t, 3, dupLine)
}

func TestDiagnose_AgreesWithParse(t *testing.T) {
	inputs := []string{
		readTestdata(t, "units.csv"),
		"\"ID\";\"A\"\n\"a\";\"1\"",
		"\"ID\"\n",
		"\"ID\";\"A\"\n\"a\";\"1\";\"2\"\n",
	}
	for _, text := range inputs {
		_, err := Parse(text, "x.csv")
		r := Diagnose(text, "x.csv")
		assert.Equal(t, err != nil, r.HasErrors(), "text=%q\n%s", text, r.FormatTextCompact())
	}
}
