//go:build cgo || windows
// +build cgo windows

package menu

import (
	"context"
	"sync"

	"github.com/getlantern/systray"
)

type systrayController struct {
	mu            sync.Mutex
	running       bool
	quitRequested bool
	quitOnce      sync.Once
}

func newTrayController() trayController {
	return &systrayController{}
}

func (c *systrayController) Run(ctx context.Context, spec TraySpec, events chan<- Event, ready func()) error {
	systray.Run(func() {
		if len(spec.Icon) > 0 {
			systray.SetIcon(spec.Icon)
			setTemplateIcon(spec.Icon)
		}
		systray.SetTooltip(spec.Tooltip)

		for _, entry := range spec.Entries {
			c.addMenuItem(ctx, entry, events)
		}

		go func() {
			<-ctx.Done()
			c.Quit()
		}()

		c.mu.Lock()
		c.running = true
		pending := c.quitRequested
		c.mu.Unlock()

		if ready != nil {
			ready()
		}
		if pending {
			c.Quit()
		}
	}, func() {
		c.mu.Lock()
		c.running = false
		c.mu.Unlock()
	})
	return nil
}

func (c *systrayController) addMenuItem(ctx context.Context, entry Entry, events chan<- Event) {
	if entry.ID == QuitID {
		systray.AddSeparator()
		mi := systray.AddMenuItem(entry.Title, entry.Tooltip)
		go forward(ctx, mi.ClickedCh, Event{Kind: EventQuit, Source: SourceMenu}, events)
		return
	}

	mi := systray.AddMenuItem(entry.Title, entry.Tooltip)
	go forward(ctx, mi.ClickedCh, Event{Kind: EventTrigger, Source: SourceMenu, BindingID: entry.ID}, events)
}

// Quit stops the tray loop. A request made before the loop is live is
// honoured as soon as it starts.
func (c *systrayController) Quit() {
	c.mu.Lock()
	running := c.running
	if !running {
		c.quitRequested = true
	}
	c.mu.Unlock()

	if running {
		c.quitOnce.Do(systray.Quit)
	}
}
