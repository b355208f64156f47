package action

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/expert-spoon/internal/config"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("uses a POSIX shell")
	}
}

func TestFromConfigOpen(t *testing.T) {
	act, err := FromConfig(config.ActionConfig{Type: config.ActionOpen, Command: "echo", Args: []string{"hi"}})
	require.NoError(t, err)
	assert.Equal(t, Open{Command: "echo", Args: []string{"hi"}}, act)
	assert.Equal(t, "open echo hi", act.String())
}

func TestFromConfigRejectsUnknownType(t *testing.T) {
	_, err := FromConfig(config.ActionConfig{Type: "launch", Command: "echo"})
	assert.Error(t, err)
}

func TestToConfigRoundTrip(t *testing.T) {
	cfg := config.ActionConfig{Type: config.ActionOpen, Command: "echo", Args: []string{"hi"}}
	act, err := FromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, cfg, ToConfig(act))
}

func TestOpenExecuteWaitsForCommand(t *testing.T) {
	skipOnWindows(t)
	marker := filepath.Join(t.TempDir(), "ran")

	err := Open{Command: "sh", Args: []string{"-c", "echo done > " + marker}}.Execute(context.Background())
	require.NoError(t, err)

	data, err := os.ReadFile(marker)
	require.NoError(t, err)
	assert.Equal(t, "done\n", string(data))
}

func TestOpenExecuteIgnoresNonZeroExit(t *testing.T) {
	skipOnWindows(t)
	err := Open{Command: "sh", Args: []string{"-c", "exit 3"}}.Execute(context.Background())
	assert.NoError(t, err)
}

func TestOpenExecuteFailsWhenCommandMissing(t *testing.T) {
	err := Open{Command: filepath.Join(t.TempDir(), "does-not-exist")}.Execute(context.Background())
	assert.Error(t, err)
}
