package wtcsv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// readTestdata returns the contents of a fixture in the repo-level testdata dir.
func readTestdata(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "..", "testdata", name))
	require.NoError(t, err, "fixture %s", name)
	return string(data)
}

func mustParse(t *testing.T, text, name string) *Table {
	t.Helper()
	tbl, err := Parse(text, name)
	require.NoError(t, err)
	return tbl
}
