package wtfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/wtcsvkit/internal/textenc"
	"github.com/joshuapare/wtcsvkit/pkg/types"
	"github.com/joshuapare/wtcsvkit/pkg/wtcsv"
)

// copyFixture copies a repo-level testdata file into dir and returns its path.
func copyFixture(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "..", "testdata", name))
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := copyFixture(t, t.TempDir(), "units.csv")

	f, err := Load(path, Options{})
	require.NoError(t, err)

	assert.Equal(t, "units.csv", f.Table.Name)
	assert.Equal(t, textenc.UTF8, f.Encoding)
	assert.Equal(t, 7, f.Table.Len())
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := copyFixture(t, t.TempDir(), "_common_languages.csv")
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	f, err := Load(path, Options{})
	require.NoError(t, err)
	require.NoError(t, f.Save())

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestLoadUTF16KeepsEncoding(t *testing.T) {
	dir := t.TempDir()
	text := "\"<ID|readonly>\";\"<Russian>\"\r\n\"country_ussr\";\"СССР\"\r\n"
	raw, err := textenc.Encode(text, textenc.UTF16LE)
	require.NoError(t, err)
	path := filepath.Join(dir, "lang.csv")
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	f, err := Load(path, Options{})
	require.NoError(t, err)
	assert.Equal(t, textenc.UTF16LE, f.Encoding)

	require.NoError(t, f.Table.EditByID("country_ussr", "Союз"))
	require.NoError(t, f.Save())

	saved, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, textenc.UTF16LE, textenc.Detect(saved))
	decoded, err := textenc.Decode(saved, textenc.UTF16LE)
	require.NoError(t, err)
	assert.Equal(t, "\"<ID|readonly>\";\"<Russian>\"\r\n\"country_ussr\";\"Союз\"\r\n", decoded)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm(), "permissions preserved")
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.csv"), Options{})
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(bad, []byte("\"ID\"\n"), 0o644))
	_, err = Load(bad, Options{})
	assert.True(t, errors.Is(err, types.ErrHeaderTooShort))

	_, err = Load(bad, Options{Encoding: "ebcdic"})
	assert.Error(t, err)
}

func TestLoadStrict(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loose.csv")
	require.NoError(t, os.WriteFile(path, []byte("\"ID\";\"A\"\na;\"1\"\n"), 0o644))

	_, err := Load(path, Options{})
	require.NoError(t, err)

	_, err = Load(path, Options{Parse: wtcsv.ParseOptions{Strict: true}})
	assert.True(t, errors.Is(err, types.ErrMalformedField))
}

func TestReadText(t *testing.T) {
	path := copyFixture(t, t.TempDir(), "units.csv")
	text, enc, err := ReadText(path, Options{Encoding: "utf-8"})
	require.NoError(t, err)
	assert.Equal(t, textenc.UTF8, enc)
	assert.Contains(t, text, "germ_rdm242_shop")
}

func TestSaveAs(t *testing.T) {
	dir := t.TempDir()
	path := copyFixture(t, dir, "units.csv")
	f, err := Load(path, Options{})
	require.NoError(t, err)

	out := filepath.Join(dir, "units_out.csv")
	require.NoError(t, f.SaveAs(out))

	a, _ := os.ReadFile(path)
	b, _ := os.ReadFile(out)
	assert.Equal(t, a, b)
}
