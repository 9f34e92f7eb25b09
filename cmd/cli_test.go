package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	rootCmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeResultsFixture(home string) error {
	dir := filepath.Join(home, ".whittle")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	fixture := `version = 1

[[results]]
session_id = "game-1"
outcome = "won"
exclusions_used = 3
hint = "nocturnal"
finished_at = "2026-08-29T10:00:00Z"
`
	return os.WriteFile(filepath.Join(dir, "results.toml"), []byte(fixture), 0o600)
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "dev")
}

func TestResultsCommandRendersHistory(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeResultsFixture(home))

	stdout, _, err := executeCLI(t, home, "results")
	require.NoError(t, err)
	assert.Contains(t, stdout, "games: 1, won: 1")
	assert.Contains(t, stdout, "3 exclusions, hint: nocturnal")
}

func TestResultsCommandWithEmptyHistory(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "results")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No finished games yet.")
}
