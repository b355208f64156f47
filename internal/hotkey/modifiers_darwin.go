//go:build darwin && cgo

package hotkey

import (
	"golang.design/x/hotkey"

	"github.com/example/expert-spoon/internal/keymap"
)

var modifierMap = map[keymap.Modifier]hotkey.Modifier{
	keymap.ModCtrl:  hotkey.ModCtrl,
	keymap.ModShift: hotkey.ModShift,
	keymap.ModAlt:   hotkey.ModOption,
	keymap.ModSuper: hotkey.ModCmd,
}
