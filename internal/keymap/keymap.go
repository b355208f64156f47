// Package keymap parses accelerator strings such as "CmdOrCtrl+Shift+O" into
// platform-neutral key combinations.
package keymap

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// Modifier is a platform-neutral modifier key.
type Modifier int

const (
	ModCtrl Modifier = iota + 1
	ModShift
	ModAlt
	ModSuper
)

func (m Modifier) String() string {
	switch m {
	case ModCtrl:
		return "Ctrl"
	case ModShift:
		return "Shift"
	case ModAlt:
		return "Alt"
	case ModSuper:
		return "Super"
	default:
		return fmt.Sprintf("Modifier(%d)", int(m))
	}
}

// Key is the canonical name of a non-modifier key, e.g. "A", "7", "F5", "Space".
type Key string

const (
	KeySpace  Key = "Space"
	KeyReturn Key = "Return"
	KeyEscape Key = "Escape"
	KeyTab    Key = "Tab"
	KeyDelete Key = "Delete"
	KeyUp     Key = "Up"
	KeyDown   Key = "Down"
	KeyLeft   Key = "Left"
	KeyRight  Key = "Right"
)

// Combo is a parsed key combination. Modifiers are kept in canonical order.
type Combo struct {
	Modifiers []Modifier
	Key       Key
}

func (c Combo) String() string {
	parts := make([]string, 0, len(c.Modifiers)+1)
	for _, m := range c.Modifiers {
		parts = append(parts, m.String())
	}
	parts = append(parts, string(c.Key))
	return strings.Join(parts, "+")
}

// Has reports whether m is part of the combination.
func (c Combo) Has(m Modifier) bool {
	for _, have := range c.Modifiers {
		if have == m {
			return true
		}
	}
	return false
}

var ErrEmpty = errors.New("empty hotkey")

// cmdOrCtrl resolves to Super (Cmd) on macOS and Ctrl elsewhere.
const cmdOrCtrl Modifier = -1

var modifierNames = map[string]Modifier{
	"CMDORCTRL":        cmdOrCtrl,
	"CMDORCONTROL":     cmdOrCtrl,
	"COMMANDORCTRL":    cmdOrCtrl,
	"COMMANDORCONTROL": cmdOrCtrl,
	"CTRL":             ModCtrl,
	"CONTROL":          ModCtrl,
	"SHIFT":            ModShift,
	"ALT":              ModAlt,
	"OPTION":           ModAlt,
	"SUPER":            ModSuper,
	"CMD":              ModSuper,
	"COMMAND":          ModSuper,
	"META":             ModSuper,
	"WIN":              ModSuper,
}

var namedKeys = map[string]Key{
	"SPACE":      KeySpace,
	"ENTER":      KeyReturn,
	"RETURN":     KeyReturn,
	"ESC":        KeyEscape,
	"ESCAPE":     KeyEscape,
	"TAB":        KeyTab,
	"DELETE":     KeyDelete,
	"DEL":        KeyDelete,
	"BACKSPACE":  KeyDelete,
	"UP":         KeyUp,
	"ARROWUP":    KeyUp,
	"DOWN":       KeyDown,
	"ARROWDOWN":  KeyDown,
	"LEFT":       KeyLeft,
	"ARROWLEFT":  KeyLeft,
	"RIGHT":      KeyRight,
	"ARROWRIGHT": KeyRight,
}

// Parse parses s for the current platform.
func Parse(s string) (Combo, error) {
	return parse(s, runtime.GOOS == "darwin")
}

func parse(s string, darwin bool) (Combo, error) {
	if strings.TrimSpace(s) == "" {
		return Combo{}, ErrEmpty
	}

	var (
		mods  = make(map[Modifier]bool)
		key   Key
		found bool
	)
	for _, raw := range strings.Split(s, "+") {
		token := strings.ToUpper(strings.TrimSpace(raw))
		if token == "" {
			return Combo{}, fmt.Errorf("hotkey %q: empty token", s)
		}

		if mod, ok := modifierNames[token]; ok {
			if mod == cmdOrCtrl {
				mod = ModCtrl
				if darwin {
					mod = ModSuper
				}
			}
			if mods[mod] {
				return Combo{}, fmt.Errorf("hotkey %q: modifier %s repeated", s, mod)
			}
			mods[mod] = true
			continue
		}

		k, ok := parseKey(token)
		if !ok {
			return Combo{}, fmt.Errorf("hotkey %q: unknown key %q", s, strings.TrimSpace(raw))
		}
		if found {
			return Combo{}, fmt.Errorf("hotkey %q: more than one key", s)
		}
		key, found = k, true
	}
	if !found {
		return Combo{}, fmt.Errorf("hotkey %q: no key, only modifiers", s)
	}

	combo := Combo{Key: key}
	for _, m := range []Modifier{ModCtrl, ModShift, ModAlt, ModSuper} {
		if mods[m] {
			combo.Modifiers = append(combo.Modifiers, m)
		}
	}
	return combo, nil
}

func parseKey(token string) (Key, bool) {
	if k, ok := namedKeys[token]; ok {
		return k, true
	}

	token = strings.TrimPrefix(token, "KEY")
	token = strings.TrimPrefix(token, "DIGIT")
	if len(token) == 1 {
		c := token[0]
		if (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			return Key(token), true
		}
		return "", false
	}

	if strings.HasPrefix(token, "F") {
		var n int
		if _, err := fmt.Sscanf(token, "F%d", &n); err == nil && n >= 1 && n <= 20 && fmt.Sprintf("F%d", n) == token {
			return Key(token), true
		}
	}
	return "", false
}
