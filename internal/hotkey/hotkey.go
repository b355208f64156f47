// Package hotkey registers global key combinations with the operating system.
package hotkey

import (
	"errors"

	"github.com/example/expert-spoon/internal/keymap"
)

// ErrUnsupported is returned when the build has no global hotkey backend.
var ErrUnsupported = errors.New("global hotkeys are unavailable without cgo support")

// Hotkey is a single OS-level registration.
type Hotkey interface {
	Register() error
	Unregister() error
	Keydown() <-chan struct{}
}

// Factory creates an unregistered Hotkey for a combination.
type Factory func(keymap.Combo) (Hotkey, error)
