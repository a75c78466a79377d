package main

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDemoPlainUnderNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(buf)

	require.NoError(t, runDemo(cmd))

	out := buf.String()
	assert.Contains(t, out, "Basic colors:")
	assert.Contains(t, out, "Red text")
	assert.Contains(t, out, "Chained styles:")
	// Suppressed output carries no escape sequences except none at all.
	assert.NotContains(t, out, "\x1b[31m")
	assert.NotContains(t, out, "\x1b[38;2;")
}

func TestThemeCommand(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"theme"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "success")
	assert.Contains(t, out, "error_badge")
	assert.Contains(t, out, "The quick brown fox")
}

func TestThemeCommandMissingFile(t *testing.T) {
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"theme", "does-not-exist.yaml"})
	defer rootCmd.SetArgs(nil)

	assert.Error(t, rootCmd.Execute())
}
