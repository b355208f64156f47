//go:build (darwin && cgo) || (linux && cgo) || windows

package hotkey

import (
	"fmt"
	"sync"

	"golang.design/x/hotkey"

	"github.com/example/expert-spoon/internal/keymap"
)

type osHotkey struct {
	hk      *hotkey.Hotkey
	keydown chan struct{}
	stop    chan struct{}
	once    sync.Once
}

// New maps combo onto the platform's hotkey codes. The returned Hotkey is not
// yet registered.
func New(combo keymap.Combo) (Hotkey, error) {
	mods := make([]hotkey.Modifier, 0, len(combo.Modifiers))
	for _, m := range combo.Modifiers {
		mod, ok := modifierMap[m]
		if !ok {
			return nil, fmt.Errorf("modifier %s is not supported on this platform", m)
		}
		mods = append(mods, mod)
	}
	key, ok := keyMap[combo.Key]
	if !ok {
		return nil, fmt.Errorf("key %s is not supported on this platform", combo.Key)
	}

	return &osHotkey{
		hk:      hotkey.New(mods, key),
		keydown: make(chan struct{}, 1),
		stop:    make(chan struct{}),
	}, nil
}

func (h *osHotkey) Register() error {
	if err := h.hk.Register(); err != nil {
		return err
	}
	go func() {
		for {
			select {
			case <-h.stop:
				return
			case <-h.hk.Keydown():
				select {
				case h.keydown <- struct{}{}:
				case <-h.stop:
					return
				}
			}
		}
	}()
	return nil
}

func (h *osHotkey) Unregister() error {
	var err error
	h.once.Do(func() {
		close(h.stop)
		err = h.hk.Unregister()
	})
	return err
}

func (h *osHotkey) Keydown() <-chan struct{} {
	return h.keydown
}

var keyMap = map[keymap.Key]hotkey.Key{
	"A": hotkey.KeyA, "B": hotkey.KeyB, "C": hotkey.KeyC, "D": hotkey.KeyD,
	"E": hotkey.KeyE, "F": hotkey.KeyF, "G": hotkey.KeyG, "H": hotkey.KeyH,
	"I": hotkey.KeyI, "J": hotkey.KeyJ, "K": hotkey.KeyK, "L": hotkey.KeyL,
	"M": hotkey.KeyM, "N": hotkey.KeyN, "O": hotkey.KeyO, "P": hotkey.KeyP,
	"Q": hotkey.KeyQ, "R": hotkey.KeyR, "S": hotkey.KeyS, "T": hotkey.KeyT,
	"U": hotkey.KeyU, "V": hotkey.KeyV, "W": hotkey.KeyW, "X": hotkey.KeyX,
	"Y": hotkey.KeyY, "Z": hotkey.KeyZ,

	"0": hotkey.Key0, "1": hotkey.Key1, "2": hotkey.Key2, "3": hotkey.Key3,
	"4": hotkey.Key4, "5": hotkey.Key5, "6": hotkey.Key6, "7": hotkey.Key7,
	"8": hotkey.Key8, "9": hotkey.Key9,

	"F1": hotkey.KeyF1, "F2": hotkey.KeyF2, "F3": hotkey.KeyF3, "F4": hotkey.KeyF4,
	"F5": hotkey.KeyF5, "F6": hotkey.KeyF6, "F7": hotkey.KeyF7, "F8": hotkey.KeyF8,
	"F9": hotkey.KeyF9, "F10": hotkey.KeyF10, "F11": hotkey.KeyF11, "F12": hotkey.KeyF12,
	"F13": hotkey.KeyF13, "F14": hotkey.KeyF14, "F15": hotkey.KeyF15, "F16": hotkey.KeyF16,
	"F17": hotkey.KeyF17, "F18": hotkey.KeyF18, "F19": hotkey.KeyF19, "F20": hotkey.KeyF20,

	keymap.KeySpace:  hotkey.KeySpace,
	keymap.KeyReturn: hotkey.KeyReturn,
	keymap.KeyEscape: hotkey.KeyEscape,
	keymap.KeyTab:    hotkey.KeyTab,
	keymap.KeyDelete: hotkey.KeyDelete,
	keymap.KeyUp:     hotkey.KeyUp,
	keymap.KeyDown:   hotkey.KeyDown,
	keymap.KeyLeft:   hotkey.KeyLeft,
	keymap.KeyRight:  hotkey.KeyRight,
}
