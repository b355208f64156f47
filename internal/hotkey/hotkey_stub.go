//go:build !((darwin && cgo) || (linux && cgo) || windows)

package hotkey

import "github.com/example/expert-spoon/internal/keymap"

// New always fails on builds without a hotkey backend.
func New(keymap.Combo) (Hotkey, error) {
	return nil, ErrUnsupported
}
