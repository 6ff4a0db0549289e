package main

import "testing"

func TestVersionCommand(t *testing.T) {
	resetFlags(t)

	output, err := captureOutput(t, runVersion)
	if err != nil {
		t.Fatalf("runVersion() error = %v", err)
	}
	assertContains(t, output, []string{"pivctl dev", "commit: none", "go: go"})
}

func TestVersionCommand_JSON(t *testing.T) {
	resetFlags(t)
	jsonOut = true

	output, err := captureOutput(t, runVersion)
	if err != nil {
		t.Fatalf("runVersion() error = %v", err)
	}

	var info versionInfo
	decodeJSON(t, output, &info)
	if info.Version != version || info.Go == "" {
		t.Errorf("unexpected version info: %+v", info)
	}
}
