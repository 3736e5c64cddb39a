// Package shell is the bridge between the keyboard and an external game:
// it owns the window, the directional input state and the render loop
// that calls the game's Draw once per frame.
package shell

import (
	"github.com/faiface/mainthread"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/hollowforge/inputbridge/engine/config"
	"github.com/hollowforge/inputbridge/engine/gui"
	"github.com/hollowforge/inputbridge/engine/input"
	"github.com/hollowforge/inputbridge/engine/util"
	"github.com/hollowforge/inputbridge/game"
)

// Shell drives the window render loop: poll events, clear the canvas,
// run one loop frame, swap. Closing the window is the only way out, a
// failed draw just changes the status line.
type Shell struct {
	Window       *glfw.Window
	Loop         *Loop
	WindowWidth  int
	WindowHeight int

	overlay   *gui.Overlay
	bindings  input.Bindings
	timer     *util.FrameTimer
	terminate func()
}

// NewShell opens the window and wires the key callback, the status sink
// and the game handle together.
func NewShell(cfg *config.Config, handle game.Handle) (*Shell, error) {
	bindings, err := cfg.DirBindings()
	if err != nil {
		return nil, err
	}

	win, terminate, err := initWindow(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height, cfg.Window.VSync)
	if err != nil {
		return nil, err
	}

	s := &Shell{
		Window:       win,
		WindowWidth:  cfg.Window.Width,
		WindowHeight: cfg.Window.Height,
		bindings:     bindings,
		timer:        util.NewFrameTimer(),
		terminate:    terminate,
	}

	var status gui.StatusDisplay
	switch cfg.Status.Sink {
	case "overlay":
		var overlayErr error
		mainthread.Call(func() {
			s.overlay, overlayErr = gui.NewOverlay(cfg.Window.Width, cfg.Window.Height)
		})
		if overlayErr != nil {
			terminate()
			return nil, overlayErr
		}
		status = s.overlay
	case "log":
		status = gui.NewLogStatus()
	default:
		status = gui.NewTitleStatus(win)
	}

	s.Loop = NewLoop(handle, status)

	mainthread.Call(func() {
		win.SetKeyCallback(s.keyCallback)
	})
	return s, nil
}

// keyCallback runs during event polling on the main thread, never
// concurrently with a frame.
func (s *Shell) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		w.SetShouldClose(true)
		return
	}
	if ev, ok := translateKey(s.bindings, key, action); ok {
		s.Loop.Apply(ev)
	}
}

// Run blocks until the window is closed. Every iteration clears the
// canvas, steps the loop once and re-arms by looping again, whatever the
// draw returned.
func (s *Shell) Run() {
	defer s.terminate()
	for {
		var done bool
		mainthread.Call(func() {
			if s.Window.ShouldClose() {
				done = true
				return
			}
			gl.ClearColor(0, 0, 0, 1)
			gl.Clear(gl.COLOR_BUFFER_BIT)

			s.Loop.Frame()
			if s.overlay != nil {
				s.overlay.Draw()
			}

			s.Window.SwapBuffers()
			glfw.PollEvents()
		})
		if done {
			return
		}
		if _, report := s.timer.Tick(); report != "" {
			util.LogShellDebug(report)
		}
	}
}
