package shell

import (
	"github.com/hollowforge/inputbridge/engine/gui"
	"github.com/hollowforge/inputbridge/engine/input"
	"github.com/hollowforge/inputbridge/game"
)

// Status text the loop writes every frame. The game result is opaque,
// nil is the only failure signal.
const (
	StatusOK     = "All is well."
	StatusFailed = "Failed to draw!"
)

// Loop owns the input state and the game handle and performs the
// per-frame step. It carries no GL state, so the window shell, the
// headless runner and the tests can all drive it.
type Loop struct {
	State  *input.State
	Game   game.Handle
	Status gui.StatusDisplay

	frames   uint64
	failures uint64
}

func NewLoop(h game.Handle, status gui.StatusDisplay) *Loop {
	return &Loop{
		State:  &input.State{},
		Game:   h,
		Status: status,
	}
}

// Apply forwards a key event to the input state. Must be called from the
// same thread that calls Frame.
func (l *Loop) Apply(ev input.Event) {
	l.State.Apply(ev)
}

// Frame runs one iteration: draw with the currently held directions and
// report the outcome. A failed draw is not fatal, the caller re-arms the
// loop either way.
func (l *Loop) Frame() bool {
	s := l.State
	result := l.Game.Draw(s.Up, s.Down, s.Left, s.Right)
	l.frames++
	if result == nil {
		l.failures++
		l.Status.Set(StatusFailed)
		return false
	}
	l.Status.Set(StatusOK)
	return true
}

// Frames returns the number of completed iterations.
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Failures returns the number of iterations where the draw returned nil.
func (l *Loop) Failures() uint64 {
	return l.failures
}
