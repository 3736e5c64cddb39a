package game

// Result is whatever a game's Draw call hands back. The shell never looks
// inside it, a nil Result is the only failure signal.
type Result interface{}

// Handle is the contract between the shell and an externally supplied
// game. Draw is called once per frame with the currently held directions
// and returns nil when the frame could not be drawn.
type Handle interface {
	Draw(up, down, left, right bool) Result
}

// Factory constructs the single Handle the shell owns for the lifetime of
// the process.
type Factory func() (Handle, error)

var defaultFactory Factory = func() (Handle, error) { return Noop(), nil }

// Register installs the factory for the real game. Call it from an init
// function in the package that links the game in. The last registration
// wins, there is no un-register.
func Register(f Factory) {
	defaultFactory = f
}

// Make runs the registered factory, falling back to the Noop handle when
// no game was linked in.
func Make() (Handle, error) {
	return defaultFactory()
}
