//go:build windows

package hotkey

import (
	"golang.design/x/hotkey"

	"github.com/example/expert-spoon/internal/keymap"
)

var modifierMap = map[keymap.Modifier]hotkey.Modifier{
	keymap.ModCtrl:  hotkey.ModCtrl,
	keymap.ModShift: hotkey.ModShift,
	keymap.ModAlt:   hotkey.ModAlt,
	keymap.ModSuper: hotkey.ModWin,
}
