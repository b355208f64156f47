package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/expert-spoon/internal/config"
	"github.com/example/expert-spoon/internal/hotkey"
	"github.com/example/expert-spoon/internal/keymap"
)

func twoEntries() []config.Hotkey {
	return []config.Hotkey{
		{Key: "Ctrl+1", Name: "A", Action: config.ActionConfig{Type: config.ActionOpen, Command: "echo", Args: []string{"a"}}},
		{Key: "Ctrl+2", Name: "B", Action: config.ActionConfig{Type: config.ActionOpen, Command: "echo", Args: []string{"b"}}},
	}
}

func TestLayoutHasOneEntryPerHotkeyPlusQuit(t *testing.T) {
	bindings, err := Prepare(twoEntries())
	require.NoError(t, err)

	entries := Layout(bindings)
	require.Len(t, entries, 3)

	var titles []string
	quits := 0
	for _, e := range entries {
		if e.ID == QuitID {
			quits++
			assert.Equal(t, "Quit", e.Title)
			continue
		}
		titles = append(titles, e.Title)
	}
	assert.Equal(t, []string{"A (Ctrl+1)", "B (Ctrl+2)"}, titles)
	assert.Equal(t, 1, quits)
	assert.Equal(t, QuitID, entries[len(entries)-1].ID)
}

func TestPrepareAssignsStableDistinctIDs(t *testing.T) {
	first, err := Prepare(twoEntries())
	require.NoError(t, err)
	second, err := Prepare(twoEntries())
	require.NoError(t, err)

	assert.Equal(t, first[0].ID, second[0].ID)
	assert.NotEqual(t, first[0].ID, first[1].ID)
	assert.NotEqual(t, QuitID, first[0].ID)
}

func TestPrepareRejectsUnparseableKey(t *testing.T) {
	entries := twoEntries()
	entries[1].Key = "Ctrl+Nope"

	_, err := Prepare(entries)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"B"`)
}

func TestRegisterAll(t *testing.T) {
	bindings, err := Prepare(twoEntries())
	require.NoError(t, err)

	set := hotkey.NewFakeSet()
	require.NoError(t, Register(bindings, set.New))
	require.Len(t, set.Fakes(), 2)
	for i, b := range bindings {
		assert.NotNil(t, b.Hotkey)
		assert.True(t, set.Fakes()[i].Registered())
	}

	Release(bindings)
	for _, f := range set.Fakes() {
		assert.False(t, f.Registered())
	}
	assert.Nil(t, bindings[0].Hotkey)
}

func TestRegisterDuplicateReleasesEarlierHotkeys(t *testing.T) {
	entries := twoEntries()
	entries = append(entries, config.Hotkey{
		Key:    "control+1",
		Name:   "C",
		Action: config.ActionConfig{Type: config.ActionOpen, Command: "echo"},
	})
	bindings, err := Prepare(entries)
	require.NoError(t, err)

	set := hotkey.NewFakeSet()
	err = Register(bindings, set.New)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"C"`)

	for _, f := range set.Fakes() {
		assert.False(t, f.Registered())
	}
	for _, b := range bindings {
		assert.Nil(t, b.Hotkey)
	}
}

func TestRegisterUnsupportedBackend(t *testing.T) {
	bindings, err := Prepare(twoEntries())
	require.NoError(t, err)

	failing := func(keymap.Combo) (hotkey.Hotkey, error) { return nil, hotkey.ErrUnsupported }
	err = Register(bindings, failing)
	assert.ErrorIs(t, err, hotkey.ErrUnsupported)
}
