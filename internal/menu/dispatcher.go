package menu

import (
	"context"
	"fmt"

	"github.com/example/expert-spoon/internal/logging"
)

// EventKind distinguishes action triggers from the quit request.
type EventKind int

const (
	EventTrigger EventKind = iota
	EventQuit
)

// Source records where an event came from.
type Source int

const (
	SourceMenu Source = iota
	SourceHotkey
)

func (s Source) String() string {
	switch s {
	case SourceMenu:
		return "menu"
	case SourceHotkey:
		return "hotkey"
	default:
		return fmt.Sprintf("Source(%d)", int(s))
	}
}

// Event is the single message type fed to the dispatcher by the tray and
// the hotkey forwarders.
type Event struct {
	Kind      EventKind
	Source    Source
	BindingID string
}

// Dispatcher executes the action of each triggered binding, one at a time.
type Dispatcher struct {
	bindings map[string]Binding
}

func NewDispatcher(bindings []Binding) *Dispatcher {
	byID := make(map[string]Binding, len(bindings))
	for _, b := range bindings {
		byID[b.ID] = b
	}
	return &Dispatcher{bindings: byID}
}

// Run blocks until Quit arrives, ctx is canceled or an action fails to launch.
func (d *Dispatcher) Run(ctx context.Context, events <-chan Event) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if ev.Kind == EventQuit {
				logging.Infof("quit requested from %s", ev.Source)
				return nil
			}

			b, ok := d.bindings[ev.BindingID]
			if !ok {
				logging.Debugf("ignoring %s event for unknown entry %s", ev.Source, ev.BindingID)
				continue
			}
			logging.Debugf("%s fired %s: %s", ev.Source, b.Label(), b.Action)
			if err := b.Action.Execute(ctx); err != nil {
				return fmt.Errorf("execute %q: %w", b.Name, err)
			}
		}
	}
}
