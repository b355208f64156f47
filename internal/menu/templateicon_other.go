//go:build !darwin && (cgo || windows)
// +build !darwin
// +build cgo windows

package menu

func setTemplateIcon([]byte) {}
