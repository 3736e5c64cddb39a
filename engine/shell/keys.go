package shell

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/hollowforge/inputbridge/engine/input"
)

// translateKey maps a glfw key event to an input event via the bindings.
// Repeats and keys without a binding are dropped.
func translateKey(bindings input.Bindings, key glfw.Key, action glfw.Action) (input.Event, bool) {
	if action != glfw.Press && action != glfw.Release {
		return input.Event{}, false
	}
	name := keyName(key)
	if name == "" {
		return input.Event{}, false
	}
	dir, ok := bindings.Lookup(name)
	if !ok {
		return input.Event{}, false
	}
	return input.Event{Dir: dir, Pressed: action == glfw.Press}, true
}

// keyName returns the binding name for a key: "up" etc. for the arrows,
// the lower case letter for A-Z, "" for everything else.
func keyName(key glfw.Key) string {
	switch key {
	case glfw.KeyUp:
		return "up"
	case glfw.KeyDown:
		return "down"
	case glfw.KeyLeft:
		return "left"
	case glfw.KeyRight:
		return "right"
	}
	if key >= glfw.KeyA && key <= glfw.KeyZ {
		return string(rune('a' + (key - glfw.KeyA)))
	}
	return ""
}
