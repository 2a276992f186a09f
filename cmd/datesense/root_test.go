// Test Type: Integration Test
// Description: Exercises the CLI commands end to end through cobra

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/datesense/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	rootCmd := NewRootCmd()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestDetectCmd(t *testing.T) {
	t.Run("dates as arguments", func(t *testing.T) {
		out, err := runCommand(t, "", "detect", "15 Dec 2014", "9 Jan 2015")
		require.NoError(t, err)
		assert.Equal(t, "%d %b %Y\n", out)
	})

	t.Run("dates from stdin", func(t *testing.T) {
		out, err := runCommand(t, "2015-01-09\n2015-12-15\n", "detect")
		require.NoError(t, err)
		assert.Equal(t, "%Y-%m-%d\n", out)
	})

	t.Run("day first preference", func(t *testing.T) {
		out, err := runCommand(t, "", "detect", "--day-first", "01/05/2015")
		require.NoError(t, err)
		assert.Equal(t, "%d/%m/%Y\n", out)
	})

	t.Run("inconsistent inputs fail", func(t *testing.T) {
		_, err := runCommand(t, "", "detect", "15 Dec 2014", "2015-01-09")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInconsistentFormat))
	})

	t.Run("empty stdin fails", func(t *testing.T) {
		_, err := runCommand(t, "", "detect")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})
}

func TestDetectCmdCustomRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.toml")
	content := `
[[rules]]
kind = "pattern"
priority = 90
score = 4
pattern = ["%Y", "-", "%m|%d", "-", "%m|%d"]

[[rules]]
kind = "delimiter"
priority = 0
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	out, err := runCommand(t, "", "detect", "--rules", path, "2015-01-09")
	require.NoError(t, err)
	assert.Equal(t, "%Y-%m-%d\n", out)
}

func TestDetectCmdMissingRulesFile(t *testing.T) {
	_, err := runCommand(t, "", "detect", "--rules", "/nonexistent/rules.toml", "2015-01-09")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestRulesCmd(t *testing.T) {
	out, err := runCommand(t, "", "rules")
	require.NoError(t, err)
	assert.Contains(t, out, "built-in catalogue")
	assert.Contains(t, out, "pattern")
	assert.Contains(t, out, "delimiter")
	assert.Contains(t, out, "%Y")
}

func TestTopicsCmd(t *testing.T) {
	// Topic listing and rendering print straight to stdout through the
	// help system, so only check the command wiring succeeds
	rootCmd := NewRootCmd()
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"topics"})
	require.NoError(t, rootCmd.Execute())
}

func TestVersionCmd(t *testing.T) {
	out, err := runCommand(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "datesense version")
}

func TestRootCmdNoArgs(t *testing.T) {
	_, err := runCommand(t, "", "")
	require.Error(t, err)
}

func TestUsageTemplate(t *testing.T) {
	// Section headers come from the custom usage template. Outside a
	// terminal the template funcs degrade to plain uppercase text.
	out, err := runCommand(t, "", "detect", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "USAGE:")
	assert.Contains(t, out, "EXAMPLES:")
	assert.Contains(t, out, "FLAGS:")
	assert.Contains(t, out, "GLOBAL FLAGS:")
}
