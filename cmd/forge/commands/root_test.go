package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dyluth/forge/internal/config"
	"github.com/dyluth/forge/internal/printer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRootCommand_ShowsHelpWhenNoSubcommand tests that the root command
// shows help instead of silently succeeding when invoked without a subcommand
func TestRootCommand_ShowsHelpWhenNoSubcommand(t *testing.T) {
	res := execute(t, newTestConsole(t))

	assert.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Usage:", "Help should be displayed")
	assert.Contains(t, res.stdout, "forge", "Help should show command name")
	assert.Contains(t, res.stdout, "board")
	assert.Contains(t, res.stdout, "shell")
}

// TestRootCommand_RejectsUnknownFlags tests that unknown flags
// passed to the root command cause an error instead of being silently ignored
func TestRootCommand_RejectsUnknownFlags(t *testing.T) {
	res := execute(t, newTestConsole(t), "--unknown-flag", "value")

	require.Error(t, res.err, "Unknown flag should cause an error")
	assert.Contains(t, res.err.Error(), "unknown flag")
	assert.False(t, printer.IsReported(res.err))
	// Cobra errors are silenced, so run prints them itself
	assert.Contains(t, res.stderr, "Error: unknown flag")
}

// TestRootCommand_RejectsSubcommandFlags tests that flags meant for
// subcommands are rejected when passed to the root command
func TestRootCommand_RejectsSubcommandFlags(t *testing.T) {
	res := execute(t, newTestConsole(t), "--priority", "CRIT")

	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "unknown flag: --priority")
}

func TestRootCommand_UnknownCommand(t *testing.T) {
	res := execute(t, newTestConsole(t), "deploy")

	require.Error(t, res.err)
	assert.Contains(t, res.stderr, "unknown command")
}

func TestRootCommand_Version(t *testing.T) {
	SetVersionInfo("1.2.3", "abc123", "2025-01-01")
	t.Cleanup(func() { SetVersionInfo("", "", "") })

	res := execute(t, newTestConsole(t), "--version")

	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "1.2.3 (commit: abc123, built: 2025-01-01)")
}

func TestRootCommand_LoadsConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cell.yml")
	content := `version: "1.0"
calibration:
  refreshRate: 120
tasks:
  - id: "W-001"
    title: "Weld bracket"
    status: FABRICATION
    priority: HIGH
    assignee: "K. REESE"
    progress: 1
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	c := &console{}
	res := execute(t, c, "--config", path, "tasks")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "W-001")
	assert.Contains(t, res.stdout, "1 task found")
	assert.NotContains(t, res.stdout, "A-242", "configured tasks replace the demo board")

	// The session is kept for later commands on the same console
	res = execute(t, c, "calibrate", "get", "refreshRate")
	require.NoError(t, res.err)
	assert.Equal(t, "120\n", res.stdout)
}

func TestRootCommand_LoadsConfigFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.yml")
	require.NoError(t, os.WriteFile(path, []byte("version: \"1.0\"\nseed: false\n"), 0644))
	t.Setenv(config.EnvConfigPath, path)

	res := execute(t, &console{}, "tasks")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "No tasks found")
}

func TestRootCommand_ConfigErrors(t *testing.T) {
	t.Run("missing explicit file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing.yml")

		res := execute(t, &console{}, "--config", path, "board")
		require.Error(t, res.err)
		assert.True(t, printer.IsReported(res.err))
		assert.Contains(t, res.stderr, "failed to load configuration")
		assert.Contains(t, res.stderr, "Config: "+path)
		assert.Contains(t, res.stderr, "forge init --force")
	})

	t.Run("unsupported version", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "forge.yml")
		require.NoError(t, os.WriteFile(path, []byte("version: \"2.0\"\n"), 0644))

		res := execute(t, &console{}, "--config", path, "board")
		require.Error(t, res.err)
		assert.Contains(t, res.stderr, "unsupported version")
	})
}
