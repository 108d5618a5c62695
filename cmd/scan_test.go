package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScanCmd(t *testing.T) {
	cmd := newScanCmd()

	assert.Equal(t, "scan [paths...]", cmd.Use)
	assert.Equal(t, scanLongDescription, cmd.Long)

	require.NotNil(t, cmd.Flags().Lookup(saveFlagName))
	require.NotNil(t, cmd.Flags().Lookup(failFlagName))
}

func TestScanCommandEndToEnd(t *testing.T) {
	t.Setenv("LOGGUARD_LOG_FILENAME", filepath.Join(t.TempDir(), "test.log"))

	root := t.TempDir()
	source := `console.log("boot");
if (DEBUG_CONFIG.enabled) {
  console.log("debug");
}
`
	require.NoError(t, os.WriteFile(filepath.Join(root, "app.ts"), []byte(source), 0o600))

	output := &bytes.Buffer{}
	rootCmd.SetOut(output)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"scan", root})

	require.NoError(t, rootCmd.Execute())

	report := output.String()
	assert.Contains(t, report, "Total console.log statements: 2")
	assert.Contains(t, report, "Behind DEBUG_CONFIG: 1")
	assert.Contains(t, report, "NOT behind DEBUG_CONFIG: 1")
	assert.Contains(t, report, `Line 1: console.log("boot");...`)
}

func TestNewListCmd(t *testing.T) {
	cmd := newListCmd()

	assert.Equal(t, "list [paths...]", cmd.Use)
	assert.Equal(t, listLongDescription, cmd.Long)
}

func TestNewViewCmd(t *testing.T) {
	cmd := newViewCmd()

	assert.Equal(t, "view", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
}
