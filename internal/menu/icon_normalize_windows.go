//go:build windows

package menu

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"

	"github.com/example/expert-spoon/internal/logging"
)

func platformNormalizeIcon(data []byte) ([]byte, error) {
	if len(data) < 4 {
		return nil, errors.New("tray icon is too short")
	}

	if isICO(data) {
		return data, nil
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode tray icon: %w", err)
	}

	pngData := data
	if format != "png" {
		buf := new(bytes.Buffer)
		if err := png.Encode(buf, img); err != nil {
			return nil, fmt.Errorf("convert tray icon to png: %w", err)
		}
		pngData = buf.Bytes()
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("tray icon has invalid bounds: %dx%d", width, height)
	}

	icoData, err := wrapPNGAsICO(pngData, width, height)
	if err != nil {
		return nil, fmt.Errorf("wrap tray icon as ico: %w", err)
	}

	logging.Debugf("normalized tray icon (%dx%d) from %s to ico container", width, height, format)
	return icoData, nil
}

// wrapPNGAsICO embeds a PNG as the single image of an ICO container, which
// Windows accepts since Vista.
func wrapPNGAsICO(pngData []byte, width, height int) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := binary.Write(buf, binary.LittleEndian, uint16(0)); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.LittleEndian, uint16(1)); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.LittleEndian, uint16(1)); err != nil {
		return nil, err
	}

	writeDimension := func(value int) error {
		size := byte(value)
		if value <= 0 || value >= 256 {
			size = 0
		}
		return buf.WriteByte(size)
	}

	if err := writeDimension(width); err != nil {
		return nil, err
	}
	if err := writeDimension(height); err != nil {
		return nil, err
	}

	if err := buf.WriteByte(0); err != nil {
		return nil, err
	}
	if err := buf.WriteByte(0); err != nil {
		return nil, err
	}

	if err := binary.Write(buf, binary.LittleEndian, uint16(1)); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.LittleEndian, uint16(32)); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.LittleEndian, uint32(len(pngData))); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.LittleEndian, uint32(6+16)); err != nil {
		return nil, err
	}

	if _, err := buf.Write(pngData); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func isICO(data []byte) bool {
	if len(data) < 4 {
		return false
	}
	return data[0] == 0x00 && data[1] == 0x00 && data[2] == 0x01 && data[3] == 0x00
}
