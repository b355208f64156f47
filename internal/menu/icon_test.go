package menu

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIconIsPNG(t *testing.T) {
	img, err := png.Decode(bytes.NewReader(DefaultIcon()))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, defaultIconSize, defaultIconSize), img.Bounds())
}

func TestLoadIcon(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.png")
	require.NoError(t, os.WriteFile(good, DefaultIcon(), 0o600))

	data, err := LoadIcon(good)
	require.NoError(t, err)
	assert.Equal(t, DefaultIcon(), data)

	bad := filepath.Join(dir, "bad.png")
	require.NoError(t, os.WriteFile(bad, []byte("nope"), 0o600))
	_, err = LoadIcon(bad)
	assert.Error(t, err)

	_, err = LoadIcon(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)
}

func TestNormalizedIconFallsBackToDefault(t *testing.T) {
	data, err := normalizedIcon(nil)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
