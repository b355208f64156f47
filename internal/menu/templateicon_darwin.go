//go:build darwin && cgo
// +build darwin,cgo

package menu

import "github.com/getlantern/systray"

// setTemplateIcon lets the macOS menu bar recolour the icon for dark mode.
func setTemplateIcon(icon []byte) {
	systray.SetTemplateIcon(icon, icon)
}
