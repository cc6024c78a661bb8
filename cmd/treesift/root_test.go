package treesift

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/treesift/pkg/paths"
)

// isolateEnv points every environment-sensitive path at throwaway
// directories so tests never touch the user's config or state.
func isolateEnv(t *testing.T) {
	t.Helper()

	dir := t.TempDir()
	t.Setenv(paths.EnvConfigDir, filepath.Join(dir, "config"))
	t.Setenv(paths.EnvStateDir, filepath.Join(dir, "state"))

	for _, key := range []string{"TREESIFT_WALK_MARKER", "TREESIFT_OUTPUT_FORMAT"} {
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}
}

// runCommand executes the CLI with the given args, returning everything
// written to the command's out and err streams.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// captureOutput captures what f writes to os.Stdout. The help topic
// machinery prints there directly, bypassing the command's out stream.
func captureOutput(f func()) (string, error) {
	// Create a pipe to capture stdout
	r, w, err := os.Pipe()
	if err != nil {
		return "", err
	}

	// Save the original stdout
	oldStdout := os.Stdout
	os.Stdout = w

	// Create a channel to capture the output
	outputChan := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(r)
		outputChan <- buf.String()
	}()

	// Execute the function
	f()

	// Restore stdout and close the writer
	os.Stdout = oldStdout
	_ = w.Close()

	// Get the captured output
	output := <-outputChan
	return output, nil
}

func TestRootCmdNoArgs(t *testing.T) {
	isolateEnv(t)

	_, err := runCommand(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}

func TestRootCmdUnknownCommand(t *testing.T) {
	isolateEnv(t)

	_, err := runCommand(t, "frobnicate")
	require.Error(t, err)
}

func TestRootCmdHelp(t *testing.T) {
	isolateEnv(t)

	out, err := runCommand(t, "--help")
	require.NoError(t, err)

	// Non-terminal output leaves the boldUpper headers plain
	assert.Contains(t, out, "USAGE:")
	assert.Contains(t, out, "COMMANDS:")
	assert.Contains(t, out, "MISC:")
	assert.Contains(t, out, "list")
	assert.Contains(t, out, "check")
}

func TestVersionCommand(t *testing.T) {
	isolateEnv(t)

	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "treesift version")
	assert.Contains(t, out, "commit:")
	assert.Contains(t, out, "built:")
}

func TestHelpTopicsListing(t *testing.T) {
	isolateEnv(t)

	var cmdErr error
	out, err := captureOutput(func() {
		cmd := NewRootCmd()
		cmd.SetArgs([]string{"help", "topics"})
		cmdErr = cmd.Execute()
	})
	require.NoError(t, err)
	require.NoError(t, cmdErr)

	assert.Contains(t, out, "Available help topics:")
	assert.Contains(t, out, "pattern-syntax")
	assert.Contains(t, out, "configuration")
	assert.Contains(t, out, "--marker-file")
}

func TestHelpTopicContent(t *testing.T) {
	isolateEnv(t)

	var cmdErr error
	out, err := captureOutput(func() {
		cmd := NewRootCmd()
		cmd.SetArgs([]string{"help", "pattern-syntax"})
		cmdErr = cmd.Execute()
	})
	require.NoError(t, err)
	require.NoError(t, cmdErr)

	assert.Contains(t, out, "Pattern Syntax")
	assert.Contains(t, out, "gitignore")
}

func TestHelpTopicByFlagName(t *testing.T) {
	isolateEnv(t)

	// Option topics are looked up by their bare flag name
	var cmdErr error
	out, err := captureOutput(func() {
		cmd := NewRootCmd()
		cmd.SetArgs([]string{"help", "marker-file"})
		cmdErr = cmd.Execute()
	})
	require.NoError(t, err)
	require.NoError(t, cmdErr)

	// Single words survive glamour's word wrapping
	assert.Contains(t, out, "verbatim")
}

func TestTopicsCommand(t *testing.T) {
	isolateEnv(t)

	var cmdErr error
	out, err := captureOutput(func() {
		cmd := NewRootCmd()
		cmd.SetArgs([]string{"topics"})
		cmdErr = cmd.Execute()
	})
	require.NoError(t, err)
	require.NoError(t, cmdErr)

	assert.Contains(t, out, "Available help topics:")
}

func TestCompletionCommand(t *testing.T) {
	isolateEnv(t)

	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			out, err := runCommand(t, "completion", shell)
			require.NoError(t, err)
			assert.NotEmpty(t, out)
		})
	}
}

func TestCompletionCommandRejectsUnknownShell(t *testing.T) {
	isolateEnv(t)

	_, err := runCommand(t, "completion", "tcsh")
	require.Error(t, err)
}
