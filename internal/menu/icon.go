package menu

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"math"
	"os"
)

const defaultIconSize = 32

// DefaultIcon renders the built-in tray icon: a filled disc with a ring.
func DefaultIcon() []byte {
	fg := color.RGBA{R: 0x2f, G: 0x6f, B: 0xeb, A: 0xff}
	return encodePNG(renderIcon(defaultIconSize, fg))
}

func renderIcon(size int, fg color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	c := float64(size) / 2
	outer := c - 1
	ring := outer * 0.55
	dot := outer * 0.35

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)+0.5-c, float64(y)+0.5-c)
			switch {
			case d <= dot:
				img.SetRGBA(x, y, fg)
			case d > ring && d <= outer:
				img.SetRGBA(x, y, fg)
			}
		}
	}
	return img
}

func encodePNG(img image.Image) []byte {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic("encodePNG: " + err.Error())
	}
	return buf.Bytes()
}

// LoadIcon reads a PNG, JPEG or GIF tray icon and checks that it decodes.
func LoadIcon(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read icon: %w", err)
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode icon %s: %w", path, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("decode icon %s: invalid size %dx%d", path, cfg.Width, cfg.Height)
	}
	return data, nil
}
