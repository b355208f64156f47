package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValid(t *testing.T) {
	cases := []struct {
		in   string
		want Combo
	}{
		{"Ctrl+1", Combo{Modifiers: []Modifier{ModCtrl}, Key: "1"}},
		{"ctrl + shift + o", Combo{Modifiers: []Modifier{ModCtrl, ModShift}, Key: "O"}},
		{"Shift+Alt+KeyQ", Combo{Modifiers: []Modifier{ModShift, ModAlt}, Key: "Q"}},
		{"Super+Digit7", Combo{Modifiers: []Modifier{ModSuper}, Key: "7"}},
		{"Alt+F12", Combo{Modifiers: []Modifier{ModAlt}, Key: "F12"}},
		{"Ctrl+Space", Combo{Modifiers: []Modifier{ModCtrl}, Key: KeySpace}},
		{"Ctrl+ArrowLeft", Combo{Modifiers: []Modifier{ModCtrl}, Key: KeyLeft}},
		{"Option+Enter", Combo{Modifiers: []Modifier{ModAlt}, Key: KeyReturn}},
		{"F5", Combo{Key: "F5"}},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parse(tc.in, false)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseCmdOrCtrlPerPlatform(t *testing.T) {
	got, err := parse("CmdOrCtrl+Shift+O", false)
	require.NoError(t, err)
	assert.Equal(t, "Ctrl+Shift+O", got.String())

	got, err = parse("CommandOrControl+Shift+O", true)
	require.NoError(t, err)
	assert.Equal(t, "Shift+Super+O", got.String())
	assert.True(t, got.Has(ModSuper))
	assert.False(t, got.Has(ModCtrl))
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{
		"Ctrl+",
		"Ctrl++A",
		"Ctrl+Shift",
		"Ctrl+A+B",
		"Ctrl+Ctrl+A",
		"Ctrl+Hyper+A",
		"Ctrl+F21",
		"Ctrl+F0",
		"Ctrl+F05",
		"Ctrl+!",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := parse(in, false)
			assert.Error(t, err)
		})
	}
}

func TestParseEmpty(t *testing.T) {
	_, err := Parse("   ")
	assert.ErrorIs(t, err, ErrEmpty)
}
