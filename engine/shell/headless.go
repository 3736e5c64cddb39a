package shell

import (
	"time"

	"github.com/hollowforge/inputbridge/engine/config"
	"github.com/hollowforge/inputbridge/engine/gui"
	"github.com/hollowforge/inputbridge/engine/input"
	"github.com/hollowforge/inputbridge/engine/util"
	"github.com/hollowforge/inputbridge/game"
)

// RunHeadless drives the loop without a window: arrow keys come from the
// raw terminal, status goes to the log and a fixed-rate ticker stands in
// for the display refresh. Returns when the user quits (q or ctrl-c).
func RunHeadless(cfg *config.Config, handle game.Handle) error {
	src, err := input.OpenTerminal(time.Duration(cfg.Input.HoldMillis) * time.Millisecond)
	if err != nil {
		return err
	}
	defer src.Close()

	loop := NewLoop(handle, gui.NewLogStatus())
	ticker := time.NewTicker(time.Second / time.Duration(cfg.Input.TickRate))
	defer ticker.Stop()

	util.LogShellInfo("running headless, q or ctrl-c quits")

	// Events and ticks are serialized here, so the input state is never
	// touched while a frame runs.
	for {
		select {
		case <-src.Done():
			util.LogShellInfo("input closed, shutting down")
			return nil
		case ev := <-src.Events():
			loop.Apply(ev)
		case <-ticker.C:
			loop.Frame()
		}
	}
}
