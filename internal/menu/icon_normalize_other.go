//go:build !windows

package menu

func platformNormalizeIcon(data []byte) ([]byte, error) {
	return data, nil
}
