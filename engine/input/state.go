package input

// Dir names one of the four directional flags.
type Dir int

const (
	DirNone Dir = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

func (d Dir) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "none"
}

// Event is a single key press or release, already translated from the
// backend's native key code.
type Event struct {
	Dir     Dir
	Pressed bool
}

// State tracks which directions are currently held. The zero value means
// nothing is held. The render loop owns it and only touches it from the
// thread that polls events, so there is no locking.
type State struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
}

// Apply mutates the state for a single key event. Events that don't map
// to a direction are ignored.
func (s *State) Apply(ev Event) {
	switch ev.Dir {
	case DirUp:
		s.Up = ev.Pressed
	case DirDown:
		s.Down = ev.Pressed
	case DirLeft:
		s.Left = ev.Pressed
	case DirRight:
		s.Right = ev.Pressed
	}
}

// Held reports whether any direction is currently held.
func (s *State) Held() bool {
	return s.Up || s.Down || s.Left || s.Right
}
