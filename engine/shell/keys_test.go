package shell

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/hollowforge/inputbridge/engine/input"
)

func TestTranslateKey(t *testing.T) {
	bindings := input.DefaultBindings()
	tests := []struct {
		name   string
		key    glfw.Key
		action glfw.Action
		want   input.Event
		wantOK bool
	}{
		{"arrow up press", glfw.KeyUp, glfw.Press, input.Event{Dir: input.DirUp, Pressed: true}, true},
		{"arrow down press", glfw.KeyDown, glfw.Press, input.Event{Dir: input.DirDown, Pressed: true}, true},
		{"arrow left release", glfw.KeyLeft, glfw.Release, input.Event{Dir: input.DirLeft, Pressed: false}, true},
		{"arrow right press", glfw.KeyRight, glfw.Press, input.Event{Dir: input.DirRight, Pressed: true}, true},
		{"wasd alias", glfw.KeyW, glfw.Press, input.Event{Dir: input.DirUp, Pressed: true}, true},
		{"repeat dropped", glfw.KeyUp, glfw.Repeat, input.Event{}, false},
		{"unbound letter", glfw.KeyP, glfw.Press, input.Event{}, false},
		{"unbound key", glfw.KeySpace, glfw.Press, input.Event{}, false},
		{"function key", glfw.KeyF1, glfw.Press, input.Event{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := translateKey(bindings, tt.key, tt.action)
			if ok != tt.wantOK || ev != tt.want {
				t.Errorf("translateKey(%v, %v) = %+v, %v; want %+v, %v",
					tt.key, tt.action, ev, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestKeyNameLetters(t *testing.T) {
	if got := keyName(glfw.KeyA); got != "a" {
		t.Errorf("keyName(KeyA) = %q, want a", got)
	}
	if got := keyName(glfw.KeyZ); got != "z" {
		t.Errorf("keyName(KeyZ) = %q, want z", got)
	}
	if got := keyName(glfw.KeyEnter); got != "" {
		t.Errorf("keyName(KeyEnter) = %q, want empty", got)
	}
}
