package menu

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/example/expert-spoon/internal/action"
	"github.com/example/expert-spoon/internal/config"
)

func requireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("uses a POSIX shell")
	}
}

// appendLine returns an action that appends line to path.
func appendLine(path, line string) action.Action {
	return action.Open{Command: "sh", Args: []string{"-c", "echo " + line + " >> " + path}}
}

func appendLineConfig(path, line string) config.ActionConfig {
	return config.ActionConfig{Type: config.ActionOpen, Command: "sh", Args: []string{"-c", "echo " + line + " >> " + path}}
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	lines, err := loadLines(path)
	require.NoError(t, err)
	return lines
}

// loadLines is safe to call from any goroutine, e.g. an Eventually condition.
func loadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return strings.Fields(string(data)), nil
}

// lineCountIs reports whether path holds exactly n lines; read errors count as false.
func lineCountIs(path string, n int) func() bool {
	return func() bool {
		lines, err := loadLines(path)
		return err == nil && len(lines) == n
	}
}

func logPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "actions.log")
}
