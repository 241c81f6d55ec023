//go:build gl

package window

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/vovakirdan/chad-snake/internal/core"
)

// mapKey translates a GLFW key to a game key.
func mapKey(k glfw.Key) core.Key {
	switch k {
	case glfw.KeyUp:
		return core.KeyUp
	case glfw.KeyDown:
		return core.KeyDown
	case glfw.KeyLeft:
		return core.KeyLeft
	case glfw.KeyRight:
		return core.KeyRight
	case glfw.KeyR:
		return core.KeyRestart
	}
	return core.KeyOther
}

// mapAction translates a GLFW action. Auto-repeat is dropped.
func mapAction(a glfw.Action) (core.KeyAction, bool) {
	switch a {
	case glfw.Press:
		return core.Press, true
	case glfw.Release:
		return core.Release, true
	}
	return 0, false
}
