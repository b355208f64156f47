// Package action models the effects a hotkey or tray entry can trigger.
package action

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/example/expert-spoon/internal/config"
	"github.com/example/expert-spoon/internal/logging"
)

// Action is a closed set of variants. Only types in this package implement it.
type Action interface {
	// Execute performs the action and blocks until it completes.
	Execute(ctx context.Context) error
	String() string
	sealed()
}

// Open spawns Command with Args and waits for it to exit. Output is discarded.
type Open struct {
	Command string
	Args    []string
}

func (Open) sealed() {}

func (o Open) String() string {
	if len(o.Args) == 0 {
		return fmt.Sprintf("open %s", o.Command)
	}
	return fmt.Sprintf("open %s %s", o.Command, strings.Join(o.Args, " "))
}

// Execute runs the command. Launch failures are returned; a non-zero exit
// status is not an error.
func (o Open) Execute(ctx context.Context) error {
	if o.Command == "" {
		return errors.New("open action has no command")
	}

	cmd := exec.CommandContext(ctx, o.Command, o.Args...)
	err := cmd.Run()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		logging.Debugf("%s exited with status %d", o, exitErr.ExitCode())
		return nil
	}
	if err != nil {
		return fmt.Errorf("run command %q: %w", o.Command, err)
	}
	return nil
}

// FromConfig builds the Action variant described by cfg.
func FromConfig(cfg config.ActionConfig) (Action, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Type {
	case config.ActionOpen:
		args := make([]string, len(cfg.Args))
		copy(args, cfg.Args)
		return Open{Command: cfg.Command, Args: args}, nil
	default:
		return nil, fmt.Errorf("unknown action type %q", cfg.Type)
	}
}

// ToConfig returns the YAML form of a.
func ToConfig(a Action) config.ActionConfig {
	switch v := a.(type) {
	case Open:
		return config.ActionConfig{Type: config.ActionOpen, Command: v.Command, Args: v.Args}
	default:
		return config.ActionConfig{}
	}
}
