package menu

import (
	"context"
	"errors"

	"github.com/example/expert-spoon/internal/config"
	"github.com/example/expert-spoon/internal/hotkey"
	"github.com/example/expert-spoon/internal/logging"
)

const defaultTooltip = "expert-spoon global hotkeys"

// TraySpec is everything the tray needs to render itself.
type TraySpec struct {
	Icon    []byte
	Tooltip string
	Entries []Entry
}

// trayController owns the OS tray. Run blocks on the calling goroutine until
// the tray exits; ready is invoked once the tray event loop is live.
type trayController interface {
	Run(ctx context.Context, spec TraySpec, events chan<- Event, ready func()) error
	Quit()
}

// Runner wires configuration, hotkeys, the tray and the dispatcher together.
type Runner struct {
	config    *config.Config
	newHotkey hotkey.Factory
	tray      trayController
}

// NewRunner constructs a Runner with the given configuration.
func NewRunner(cfg *config.Config) *Runner {
	return &Runner{
		config:    cfg,
		newHotkey: hotkey.New,
		tray:      newTrayController(),
	}
}

// Start shows the tray and dispatches events until Quit is selected, ctx is
// canceled or an action cannot be launched. It must be called from the main
// goroutine.
func (r *Runner) Start(ctx context.Context) error {
	if r.config == nil {
		return errors.New("nil configuration")
	}

	bindings, err := Prepare(r.config.Hotkeys)
	if err != nil {
		return err
	}
	icon, err := r.icon()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan Event)
	started := make(chan struct{})
	done := make(chan error, 1)
	ready := func() {
		close(started)
		go func() {
			err := r.serve(ctx, bindings, events)
			r.tray.Quit()
			done <- err
		}()
	}

	spec := TraySpec{Icon: icon, Tooltip: defaultTooltip, Entries: Layout(bindings)}
	trayErr := r.tray.Run(ctx, spec, events, ready)
	cancel()

	var serveErr error
	select {
	case <-started:
		serveErr = <-done
	default:
	}
	if trayErr != nil {
		return trayErr
	}
	return serveErr
}

// serve registers the hotkeys, forwards their presses and runs the dispatcher.
// Hotkeys are released before it returns.
func (r *Runner) serve(ctx context.Context, bindings []Binding, events chan Event) error {
	if err := Register(bindings, r.newHotkey); err != nil {
		return err
	}
	defer Release(bindings)
	logging.Infof("registered %d hotkeys", len(bindings))

	for _, b := range bindings {
		go forwardHotkey(ctx, b, events)
	}
	return NewDispatcher(bindings).Run(ctx, events)
}

func (r *Runner) icon() ([]byte, error) {
	if r.config.Icon == "" {
		return normalizedIcon(DefaultIcon())
	}
	data, err := LoadIcon(r.config.Icon)
	if err != nil {
		return nil, err
	}
	return normalizedIcon(data)
}

func forwardHotkey(ctx context.Context, b Binding, events chan<- Event) {
	forward(ctx, b.Hotkey.Keydown(), Event{Kind: EventTrigger, Source: SourceHotkey, BindingID: b.ID}, events)
}

// forward relays every value received on ch to events as ev.
func forward(ctx context.Context, ch <-chan struct{}, ev Event, events chan<- Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-ch:
			if !ok {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}
}
