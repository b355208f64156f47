package menu

func cloneIcon(data []byte) []byte {
	if len(data) == 0 {
		return nil
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp
}

// normalizedIcon converts data into the container the platform tray expects.
func normalizedIcon(data []byte) ([]byte, error) {
	if len(data) == 0 {
		data = DefaultIcon()
	}
	normalized, err := platformNormalizeIcon(data)
	if err != nil {
		return nil, err
	}
	return cloneIcon(normalized), nil
}
