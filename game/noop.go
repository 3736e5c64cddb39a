package game

type noopResult struct{}

type noopHandle struct {
	frames uint64
}

// Noop returns a handle whose Draw always succeeds. It stands in when no
// real game is registered, so the shell can run end to end without one.
func Noop() Handle {
	return &noopHandle{}
}

func (h *noopHandle) Draw(up, down, left, right bool) Result {
	h.frames++
	return noopResult{}
}
