package main

import (
	"path/filepath"
	"testing"
)

func TestExportCommand(t *testing.T) {
	tests := []struct {
		name  string
		table string
	}{
		{name: "LF table", table: "units.csv"},
		{name: "CRLF table", table: "_common_languages.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			exportStdout = true // Use stdout to avoid creating files

			path := testTablePath(t, tt.table)
			output, err := captureOutput(t, func() error {
				return runExport([]string{path})
			})
			if err != nil {
				t.Fatalf("runExport() error = %v", err)
			}

			if output != readFile(t, path) {
				t.Errorf("export is not byte-identical to %s", tt.table)
			}
		})
	}
}

func TestExportCommand_ToFile(t *testing.T) {
	resetFlags()
	out := filepath.Join(t.TempDir(), "copy.csv")
	path := testTablePath(t, "_common_languages.csv")

	output, err := captureOutput(t, func() error {
		return runExport([]string{path, out})
	})
	if err != nil {
		t.Fatalf("runExport() error = %v", err)
	}

	assertContains(t, output, []string{"Exported 10 records"})
	if readFile(t, out) != readFile(t, path) {
		t.Errorf("exported file differs from input")
	}
}

func TestExportCommand_Verify(t *testing.T) {
	resetFlags()
	exportVerify = true

	output, err := captureOutput(t, func() error {
		return runExport([]string{testTablePath(t, "units.csv")})
	})
	if err != nil {
		t.Fatalf("runExport() error = %v", err)
	}
	assertContains(t, output, []string{"OK"})
}

func TestExportCommand_ArgErrors(t *testing.T) {
	resetFlags()
	path := testTablePath(t, "units.csv")

	if err := runExport([]string{path}); err == nil {
		t.Error("expected error without output, --stdout or --verify")
	}

	exportStdout = true
	if err := runExport([]string{path, "out.csv"}); err == nil {
		t.Error("expected error for output file together with --stdout")
	}
}

func TestFirstMismatch(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"abc", "abc", 3},
		{"abc", "abd", 2},
		{"ab", "abc", 2},
		{"", "x", 0},
	}
	for _, tt := range tests {
		if got := firstMismatch(tt.a, tt.b); got != tt.want {
			t.Errorf("firstMismatch(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestExportCommand_VerifyMismatch(t *testing.T) {
	resetFlags()
	exportVerify = true
	path := filepath.Join(t.TempDir(), "loose.csv")
	writeTable(t, path, "\"ID\";\"A\"\n\"k\";abc\n")

	_, err := captureOutput(t, func() error {
		return runExport([]string{path})
	})
	if err == nil {
		t.Fatal("expected a round-trip mismatch")
	}
	assertContains(t, err.Error(), []string{"differs from input at byte 13"})
}
