package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("DEBUG", "")
	var out bytes.Buffer
	cmd := newRootCmd(strings.NewReader(input), &out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPlay_DefaultMansion(t *testing.T) {
	out, err := runCLI(t, "l\nr\nx\nProf. Plum\n")
	require.NoError(t, err)

	assert.Contains(t, out, "Welcome to Detective Quest!")
	assert.Contains(t, out, "You are in: Entrance Hall")
	assert.Contains(t, out, "You found a clue: Candlestick")
	assert.Contains(t, out, "You found a clue: Dagger")
	assert.Contains(t, out, "--- COLLECTED CLUES ---\n- Candlestick\n- Dagger")
	assert.Contains(t, out, "You accused Prof. Plum, but found only 1 clue(s) against them.")
	assert.Contains(t, out, "--- GAME OVER ---")
}

func TestPlay_ScenarioAndThreshold(t *testing.T) {
	dir := t.TempDir()
	scenarioPath := filepath.Join(dir, "case.yaml")
	require.NoError(t, os.WriteFile(scenarioPath, []byte(`title: Small Case
map:
  name: Hall
  left:
    name: Study
    clue: Candlestick
  right:
    name: Library
    clue: Rope
evidence:
  - clue: Candlestick
    suspect: Col. Mustard
  - clue: Rope
    suspect: Mrs. White
`), 0644))
	configPath := filepath.Join(dir, "quest.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("evidence_threshold: 1\n"), 0644))

	out, err := runCLI(t, "l\nx\nCol. Mustard\n", "--config", configPath, "--scenario", scenarioPath, "--plain")
	require.NoError(t, err)

	assert.Contains(t, out, "Welcome to Small Case!")
	assert.Contains(t, out, "Accusation confirmed!")
}

func TestPlay_MissingScenario(t *testing.T) {
	_, err := runCLI(t, "", "--scenario", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPlay_RejectsArguments(t *testing.T) {
	_, err := runCLI(t, "", "mansion")
	assert.Error(t, err)
}

func TestSuspects(t *testing.T) {
	out, err := runCLI(t, "", "suspects", "--plain")
	require.NoError(t, err)

	assert.Equal(t, strings.Join([]string{
		"Candlestick  Col. Mustard",
		"Dagger       Prof. Plum",
		"Poison       Col. Mustard",
		"Rope         Mrs. White",
		"Wrench       Mrs. White",
	}, "\n")+"\n", out)
}
