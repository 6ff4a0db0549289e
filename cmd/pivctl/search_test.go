package main

import "testing"

func TestSearchCommand(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		setup       func()
		wantErr     bool
		wantContain []string
	}{
		{
			name:        "range hundred",
			args:        []string{"57"},
			setup:       func() { searchRange = 100 },
			wantContain: []string{"linear: index 56 (value 57)", "insertion point: 57", "found: true"},
		},
		{
			name:        "odd range",
			args:        []string{"56"},
			setup:       func() { searchRange = 99; searchOdd = true },
			wantContain: []string{"linear: index 27 (value 55)", "found: false"},
		},
		{
			name:        "listed values are sorted",
			args:        []string{"7", "12", "3", "9", "1"},
			wantContain: []string{"window: [0,4) [1 3 9 12]", "linear: index 1 (value 3)", "insertion point: 2"},
		},
		{
			name:        "key below everything",
			args:        []string{"-5", "1", "2"},
			wantContain: []string{"linear: -1", "insertion point: 0"},
		},
		{
			name:        "forward direction",
			args:        []string{"10"},
			setup:       func() { searchRange = 20; dirFlag = "forward" },
			wantContain: []string{"found: true"},
		},
		{
			name:    "bad key",
			args:    []string{"ten"},
			wantErr: true,
		},
		{
			name:    "bad value",
			args:    []string{"1", "x"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t)
			if tt.setup != nil {
				tt.setup()
			}

			output, err := captureOutput(t, func() error {
				return runSearch(tt.args)
			})

			if (err != nil) != tt.wantErr {
				t.Errorf("runSearch() error = %v, wantErr %v\nOutput: %s", err, tt.wantErr, output)
				return
			}
			assertContains(t, output, tt.wantContain)
		})
	}
}

func TestSearchCommand_JSON(t *testing.T) {
	resetFlags(t)
	jsonOut = true
	searchRange = 100

	output, err := captureOutput(t, func() error {
		return runSearch([]string{"57"})
	})
	if err != nil {
		t.Fatalf("runSearch() error = %v", err)
	}

	var res searchResult
	decodeJSON(t, output, &res)
	if n := res.WindowHi - res.WindowLo; n > 4 {
		t.Errorf("window has %d elements, want at most 4", n)
	}
	if res.WindowLo > 56 || res.WindowHi <= 56 {
		t.Errorf("window [%d,%d) misses index 56", res.WindowLo, res.WindowHi)
	}
	if !res.Found || res.Linear != 56 {
		t.Errorf("unexpected result: %+v", res)
	}
}
