package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dyluth/forge/internal/config"
	"github.com/dyluth/forge/internal/dashboard"
	"github.com/dyluth/forge/internal/printer"
	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

// result holds everything one command wrote.
type result struct {
	stdout string
	stderr string
	err    error
}

// newTestConsole returns a console over a fresh demo board.
func newTestConsole(t *testing.T) *console {
	t.Helper()
	d, err := dashboard.New(config.Default())
	require.NoError(t, err)
	return &console{dash: d}
}

// execute runs one command line against c, capturing cobra and printer output.
func execute(t *testing.T, c *console, args ...string) result {
	t.Helper()
	return executeWithInput(t, c, "", args...)
}

func executeWithInput(t *testing.T, c *console, input string, args ...string) result {
	t.Helper()

	var stdout, stderr bytes.Buffer
	printer.SetOutput(&stdout, &stderr)
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() {
		printer.SetOutput(nil, nil)
		color.NoColor = noColor
	})

	if args == nil {
		args = []string{}
	}

	cmd := newRootCmd(c)
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := run(cmd, args)

	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}
