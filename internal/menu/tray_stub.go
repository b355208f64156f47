//go:build !cgo && !windows
// +build !cgo,!windows

package menu

import (
	"context"
	"errors"
)

type stubController struct{}

func newTrayController() trayController {
	return stubController{}
}

// Run returns an error indicating tray functionality is unavailable without cgo.
func (stubController) Run(context.Context, TraySpec, chan<- Event, func()) error {
	return errors.New("system tray is unavailable without cgo support")
}

func (stubController) Quit() {}
