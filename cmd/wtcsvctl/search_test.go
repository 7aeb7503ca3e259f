package main

import (
	"strings"
	"testing"
)

func TestSearchCommand(t *testing.T) {
	tests := []struct {
		name        string
		values      []string
		wantJSON    bool
		wantLines   []string
		wantContain []string
	}{
		{
			name:      "single value sorted",
			values:    []string{"Flusi 1"},
			wantLines: []string{"germ_rdm242_1", "germ_rdm242_shop"},
		},
		{
			name:      "no match",
			values:    []string{"Tiger"},
			wantLines: nil,
		},
		{
			name:        "several values",
			values:      []string{"M2A4", "light tank"},
			wantContain: []string{"M2A4:\n  us_m2a4_1\n  us_m2a4_shop\n", "light tank:\n  us_m2a4_shop\n"},
		},
		{
			name:        "JSON",
			values:      []string{"Tiger"},
			wantJSON:    true,
			wantContain: []string{`"ids": []`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			jsonOut = tt.wantJSON

			args := append([]string{testTablePath(t, "units.csv")}, tt.values...)
			output, err := captureOutput(t, func() error {
				return runSearch(args)
			})
			if err != nil {
				t.Fatalf("runSearch() error = %v", err)
			}

			if tt.wantJSON {
				assertJSON(t, output)
			}
			if len(tt.values) == 1 && !tt.wantJSON {
				got := strings.Fields(output)
				if strings.Join(got, ",") != strings.Join(tt.wantLines, ",") {
					t.Errorf("ids = %v, want %v", got, tt.wantLines)
				}
			}
			assertContains(t, output, tt.wantContain)
		})
	}
}
