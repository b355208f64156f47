package menu

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/example/expert-spoon/internal/action"
	"github.com/example/expert-spoon/internal/config"
	"github.com/example/expert-spoon/internal/hotkey"
	"github.com/example/expert-spoon/internal/keymap"
	"github.com/example/expert-spoon/internal/logging"
)

// QuitID identifies the Quit entry appended to every menu.
const QuitID = "quit"

var bindingNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/example/expert-spoon/bindings"))

// Binding ties a configured hotkey to its action and tray entry. Hotkey is
// nil until Register succeeds.
type Binding struct {
	ID     string
	Name   string
	Key    string
	Combo  keymap.Combo
	Action action.Action
	Hotkey hotkey.Hotkey
}

// Label is the tray title for the binding.
func (b Binding) Label() string {
	return Label(b.Name, b.Key)
}

// Label formats a tray title as "<name> (<key>)".
func Label(name, key string) string {
	return fmt.Sprintf("%s (%s)", name, key)
}

func bindingID(index int, name string) string {
	return uuid.NewSHA1(bindingNamespace, []byte(fmt.Sprintf("%d:%s", index, name))).String()
}

// Prepare parses every entry's key and action without touching the OS.
func Prepare(entries []config.Hotkey) ([]Binding, error) {
	bindings := make([]Binding, 0, len(entries))
	for i, entry := range entries {
		combo, err := keymap.Parse(entry.Key)
		if err != nil {
			return nil, fmt.Errorf("cannot parse hotkey for %q: %w", entry.Name, err)
		}
		act, err := action.FromConfig(entry.Action)
		if err != nil {
			return nil, fmt.Errorf("invalid action for %q: %w", entry.Name, err)
		}
		bindings = append(bindings, Binding{
			ID:     bindingID(i, entry.Name),
			Name:   entry.Name,
			Key:    entry.Key,
			Combo:  combo,
			Action: act,
		})
	}
	return bindings, nil
}

// Register creates and registers a hotkey for every binding. On failure the
// hotkeys registered so far are released.
func Register(bindings []Binding, newHotkey hotkey.Factory) error {
	for i := range bindings {
		hk, err := newHotkey(bindings[i].Combo)
		if err == nil {
			err = hk.Register()
		}
		if err != nil {
			Release(bindings[:i])
			return fmt.Errorf("register hotkey %s for %q: %w", bindings[i].Key, bindings[i].Name, err)
		}
		bindings[i].Hotkey = hk
		logging.Debugf("registered %s as %s", bindings[i].Key, bindings[i].Combo)
	}
	return nil
}

// Release unregisters every registered hotkey.
func Release(bindings []Binding) {
	for i := range bindings {
		if bindings[i].Hotkey == nil {
			continue
		}
		if err := bindings[i].Hotkey.Unregister(); err != nil {
			logging.Warnf("unregister hotkey %s: %v", bindings[i].Key, err)
		}
		bindings[i].Hotkey = nil
	}
}

// Entry is one tray menu item.
type Entry struct {
	ID      string
	Title   string
	Tooltip string
}

// Layout returns the tray entries in display order followed by Quit.
func Layout(bindings []Binding) []Entry {
	entries := make([]Entry, 0, len(bindings)+1)
	for _, b := range bindings {
		entries = append(entries, Entry{ID: b.ID, Title: b.Label(), Tooltip: b.Action.String()})
	}
	return append(entries, Entry{ID: QuitID, Title: "Quit", Tooltip: "Exit expert-spoon"})
}
