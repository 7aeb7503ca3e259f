package wtcsv

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/wtcsvkit/pkg/types"
)

func TestParseHeader_Annotated(t *testing.T) {
	h, err := ParseHeader("\"<ID|readonly|noverify>\";\"<English>\";\"<Comments>\"\r\n\"a\";\"b\";\r\n")
	require.NoError(t, err)

	assert.Equal(t, 3, h.Len)
	assert.Equal(t, []string{"ID", "English", "Comments"}, h.Params)
	assert.Equal(t, []string{`"<ID|readonly|noverify>"`, `"<English>"`, "\"<Comments>\"\r"}, h.RawParams)
	assert.Equal(t, "\"<ID|readonly|noverify>\";\"<English>\";\"<Comments>\"\r\n", h.RawHeader)
}

func TestParseHeader_DuplicatesAllowed(t *testing.T) {
	h, err := ParseHeader("\"ID\";\"x\";\"x\"\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"ID", "x", "x"}, h.Params)
	assert.Equal(t, 1, h.Index("x"))
	assert.Equal(t, -1, h.Index("y"))
}

func TestParseHeader_TooShort(t *testing.T) {
	for _, text := range []string{"", "\"ID\"\n", "\"ID\""} {
		_, err := ParseHeader(text)
		require.Error(t, err, "text=%q", text)
		assert.True(t, errors.Is(err, types.ErrHeaderTooShort))

		var short *types.HeaderTooShortError
		require.True(t, errors.As(err, &short))
		assert.Equal(t, 1, short.Found)
	}
}

func TestParseHeader_LengthMatchesRaw(t *testing.T) {
	text := readTestdata(t, "_common_languages.csv")
	h, err := ParseHeader(text)
	require.NoError(t, err)
	assert.Len(t, h.Params, h.Len)
	assert.Len(t, h.RawParams, h.Len)
	assert.Equal(t, "ID", h.Params[0])
	assert.Equal(t, "max_chars", h.Params[h.Len-1])
}
