//go:build cgo || windows
// +build cgo windows

package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuitBeforeTrayStartsIsDeferred(t *testing.T) {
	c := &systrayController{}
	c.Quit()

	c.mu.Lock()
	defer c.mu.Unlock()
	assert.True(t, c.quitRequested)
	assert.False(t, c.running)
}
