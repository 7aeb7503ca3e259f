package scan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func texts(lines []Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text
	}
	return out
}

func TestSplitLF(t *testing.T) {
	text := "\"<ID|readonly>\";\"<English>\";\"<French>\"\n" +
		"\"a\";\"A\";\"Á\"\n" +
		"\"b\";;\n"

	res := Split(text, 3, false)

	assert.Equal(t, []string{
		`"<ID|readonly>";"<English>";"<French>"`,
		`"a";"A";"Á"`,
		`"b";;`,
	}, texts(res.Lines))
	assert.Empty(t, res.Remainder)
	assert.Zero(t, res.Delims)
}

func TestSplitCRLF(t *testing.T) {
	text := "\"ID\";\"English\"\r\n\"a\";\"A\"\r\n"

	res := Split(text, 2, true)

	require.Len(t, res.Lines, 2)
	assert.Equal(t, `"ID";"English"`, res.Lines[0].Text)
	assert.Equal(t, `"a";"A"`, res.Lines[1].Text)
	assert.Equal(t, len("\"ID\";\"English\"\r\n"), res.Lines[1].Offset)
}

func TestSplitKeepsRemainder(t *testing.T) {
	text := "\"ID\";\"English\"\n\"a\";\"A\"\n\"b\";\"B\""

	res := Split(text, 2, false)

	assert.Len(t, res.Lines, 2)
	assert.Equal(t, `"b";"B"`, res.Remainder)
	assert.Equal(t, 1, res.Delims)
	assert.Equal(t, strings.Index(text, `"b"`), res.RemainderOffset)
}

func TestSplitNewlineBeforeWidthIsNotABoundary(t *testing.T) {
	// A line feed seen with too few delimiters is absorbed into the next line.
	text := "\"ID\";\"A\";\"B\"\n\"x\"\n;\"y\";\"z\"\n"

	res := Split(text, 3, false)

	require.Len(t, res.Lines, 2)
	assert.Equal(t, "\"x\"\n;\"y\";\"z\"", res.Lines[1].Text)
	assert.Empty(t, res.Remainder)
}

func TestSplitTooManyDelimitersNeverCloses(t *testing.T) {
	text := "\"ID\";\"A\"\n\"x\";\"y\";\"z\"\n\"b\";\"B\"\n"

	res := Split(text, 2, false)

	require.Len(t, res.Lines, 1)
	assert.Equal(t, "\"x\";\"y\";\"z\"\n\"b\";\"B\"\n", res.Remainder)
	assert.Equal(t, 3, res.Delims)
}

func TestSplitNoTerminator(t *testing.T) {
	res := Split(`"ID";"English"`, 2, false)
	assert.Empty(t, res.Lines)
	assert.Equal(t, `"ID";"English"`, res.Remainder)
}

func TestStepIsPure(t *testing.T) {
	text := ";\n"
	st := State{}
	st1, _, done := Step(st, text, 0, 2, 1)
	assert.False(t, done)
	assert.Equal(t, 1, st1.Delims)
	assert.Equal(t, State{}, st, "input state untouched")

	st2, end, done := Step(st1, text, 1, 2, 1)
	assert.True(t, done)
	assert.Equal(t, 1, end)
	assert.Equal(t, State{Start: 2}, st2)
}
