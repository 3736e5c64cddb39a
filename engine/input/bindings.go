package input

import "strings"

// Bindings maps key names to directions. Key names are lower case: "up",
// "down", "left", "right" for the arrow keys and single letters for the
// rest of the keyboard.
type Bindings map[string]Dir

// DefaultBindings binds the arrow keys plus the usual WASD aliases.
func DefaultBindings() Bindings {
	return Bindings{
		"up":    DirUp,
		"down":  DirDown,
		"left":  DirLeft,
		"right": DirRight,
		"w":     DirUp,
		"s":     DirDown,
		"a":     DirLeft,
		"d":     DirRight,
	}
}

// Lookup resolves a key name case-insensitively.
func (b Bindings) Lookup(name string) (Dir, bool) {
	dir, ok := b[strings.ToLower(name)]
	return dir, ok
}
