//go:build linux && cgo

package hotkey

import (
	"golang.design/x/hotkey"

	"github.com/example/expert-spoon/internal/keymap"
)

// X11 maps Alt to Mod1 and Super to Mod4.
var modifierMap = map[keymap.Modifier]hotkey.Modifier{
	keymap.ModCtrl:  hotkey.ModCtrl,
	keymap.ModShift: hotkey.ModShift,
	keymap.ModAlt:   hotkey.Mod1,
	keymap.ModSuper: hotkey.Mod4,
}
