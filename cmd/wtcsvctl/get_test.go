package main

import (
	"testing"
)

func TestGetCommand(t *testing.T) {
	tests := []struct {
		name           string
		table          string
		id             string
		column         string
		wantErr        bool
		wantContain    []string
		wantNotContain []string
		wantJSON       bool
	}{
		{
			name:        "get record",
			table:       "units.csv",
			id:          "us_m2a4_shop",
			wantContain: []string{"ID=us_m2a4_shop", "English=M2A4", "Comments=light tank"},
		},
		{
			name:           "get single column",
			table:          "units.csv",
			id:             "ussr_t_26_1",
			column:         "Russian",
			wantContain:    []string{"Т-26"},
			wantNotContain: []string{"Russian=", "English"},
		},
		{
			name:        "get record as JSON",
			table:       "_common_languages.csv",
			id:          "country_usa",
			wantJSON:    true,
			wantContain: []string{`"column": "French"`, `"value": "États-Unis"`},
		},
		{
			name:    "unknown id",
			table:   "units.csv",
			id:      "us_m4_1",
			wantErr: true,
		},
		{
			name:    "unknown column",
			table:   "units.csv",
			id:      "us_m2a4_1",
			column:  "Klingon",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			jsonOut = tt.wantJSON
			getColumn = tt.column

			args := []string{testTablePath(t, tt.table), tt.id}

			output, err := captureOutput(t, func() error {
				return runGet(args)
			})

			if (err != nil) != tt.wantErr {
				t.Errorf("runGet() error = %v, wantErr %v\nOutput: %s", err, tt.wantErr, output)
				return
			}

			if tt.wantJSON && !tt.wantErr {
				assertJSON(t, output)
			}

			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
}
