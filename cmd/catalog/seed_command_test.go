package main

import (
	"strings"
	"testing"
)

func TestSeedCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"seed"}, env.configPath)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	requireContains(t, out, "Inserted 15 tracks")
	requireContains(t, out, "  - Drift Phonk: 4 tracks")

	_, _, err = runCLI(t, []string{"seed"}, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "--yes") {
		t.Fatalf("expected non-interactive seed to require --yes, got %v", err)
	}

	out, _, err = runCLI(t, []string{"seed", "--yes"}, env.configPath)
	if err != nil {
		t.Fatalf("seed --yes: %v", err)
	}
	requireContains(t, out, "Inserted 0 tracks (15 already present)")
}

func TestReadYes(t *testing.T) {
	cases := map[string]bool{
		"y\n":   true,
		"YES\n": true,
		"n\n":   false,
		"":      false,
		"maybe": false,
	}
	for input, want := range cases {
		got, err := readYes(strings.NewReader(input))
		if err != nil {
			t.Fatalf("readYes(%q): %v", input, err)
		}
		if got != want {
			t.Fatalf("readYes(%q) = %v, want %v", input, got, want)
		}
	}
}
