package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
)

// testTablePath returns the path to a table under the repo's testdata
func testTablePath(t *testing.T, name string) string {
	t.Helper()
	// Go up two directories from cmd/wtcsvctl to repo root
	root := filepath.Join("..", "..")
	path := filepath.Join(root, "testdata", name)
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("test file not found: %s", path)
	}
	return path
}

// copyTestTable copies a testdata table into a temp dir so commands can
// modify it, and returns the copy's path
func copyTestTable(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(testTablePath(t, name))
	if err != nil {
		t.Fatalf("failed to read %s: %v", name, err)
	}
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to copy %s: %v", name, err)
	}
	return path
}

// readFile returns the contents of path as a string
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

// writeTable writes text to path
func writeTable(t *testing.T, path, text string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// resetFlags restores every global flag and the config to their defaults
func resetFlags() {
	quiet = false
	verbose = false
	jsonOut = false
	noColor = true
	strict = false
	encoding = ""
	configPath = ""
	cfg = defaultConfig()
	color.NoColor = true

	getColumn = ""
	exportStdout = false
	exportVerify = false
	mutOutput = ""
	mutDryRun = false
	mutBackup = false
	diffAllColumns = false
	diffOutput = ""
	diffExitCode = false
	compareWorkers = 0
	compareAllColumns = false
	compareExitCode = false
	keysDuplicates = false
	diagFormat = "text"
	diagOutputFile = ""
	diagShowSummary = false
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	// Save original stdout
	origStdout := os.Stdout

	// Create a pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	// Redirect stdout to pipe
	os.Stdout = w

	// Run function
	fnErr := fn()

	// Close write end and restore stdout
	w.Close()
	os.Stdout = origStdout

	// Read captured output
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	return buf.String(), fnErr
}

// assertJSON checks that output is valid JSON
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var result interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
	}
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}

// assertNotContains checks that output doesn't contain unwanted strings
func assertNotContains(t *testing.T, output string, unwanted []string) {
	t.Helper()
	for _, dont := range unwanted {
		if strings.Contains(output, dont) {
			t.Errorf("output contains unwanted string %q\nGot: %s", dont, output)
		}
	}
}
