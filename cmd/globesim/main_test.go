package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestMoveCommand(t *testing.T) {
	out := execute(t, "move", "--x", "0", "--y", "0", "--z", "2")

	assert.Contains(t, out, "Hub: (0.000000, 0.000000, 2.000000)")
	assert.Contains(t, out, "E1")
	assert.Contains(t, out, "E8")
	assert.Contains(t, out, "Electrodes in contact: 8/8")
}

func TestProbeCommand(t *testing.T) {
	out := execute(t, "probe", "0", "0", "2")

	assert.Contains(t, out, "Distance to surface: 0.000000 units")
	assert.Contains(t, out, "Signal strength: 1.000000 (100%)")
}

func TestProbeCommandRejectsBadCoordinate(t *testing.T) {
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"probe", "0", "north", "2"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid coordinate")
}

func TestExportAndInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catheter.stl")

	out := execute(t, "export", path, "--format", "ascii", "--x", "0", "--y", "0", "--z", "3")
	assert.Contains(t, out, "Wrote 96 triangles")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("solid")))

	out = execute(t, "info", path)
	assert.Contains(t, out, "Triangles: 96")
	assert.Contains(t, out, "Bounding Box:")
}

func TestAutomapCommand(t *testing.T) {
	dir := t.TempDir()
	metricsPath := filepath.Join(dir, "globesim.prom")

	out := execute(t, "automap", "--steps", "4", "--delay", "0", "--metrics", metricsPath)

	assert.Contains(t, out, "[01/04]")
	assert.Contains(t, out, "[04/04]")

	data, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "globesim_catheter_moves_total")
}

func TestCompletionCommand(t *testing.T) {
	out := execute(t, "completion", "bash")
	assert.Contains(t, out, "globesim")
}
