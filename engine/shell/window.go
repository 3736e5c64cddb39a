package shell

import (
	"github.com/faiface/mainthread"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"

	"github.com/hollowforge/inputbridge/engine/gfx"
	"github.com/hollowforge/inputbridge/engine/util"
)

// initWindow creates the canvas: a glfw window with a core 3.3 context.
// It returns the window and a terminate func to run on the way out.
func initWindow(title string, width, height int, vsync bool) (*glfw.Window, func(), error) {
	var win *glfw.Window
	var initErr error

	mainthread.Call(func() {
		if err := glfw.Init(); err != nil {
			initErr = errors.Wrap(err, "glfw init")
			return
		}
		glfw.WindowHint(glfw.ContextVersionMajor, 3)
		glfw.WindowHint(glfw.ContextVersionMinor, 3)
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
		glfw.WindowHint(glfw.Resizable, glfw.False)

		var err error
		win, err = glfw.CreateWindow(width, height, title, nil, nil)
		if err != nil {
			glfw.Terminate()
			initErr = errors.Wrap(err, "creating window")
			return
		}
		win.MakeContextCurrent()
		if vsync {
			glfw.SwapInterval(1)
		} else {
			glfw.SwapInterval(0)
		}

		if err := gfx.Init(); err != nil {
			glfw.Terminate()
			initErr = err
			return
		}
		util.LogGlInfo("OpenGL version " + gl.GoStr(gl.GetString(gl.VERSION)))

		gl.Disable(gl.DEPTH_TEST)
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	})
	if initErr != nil {
		return nil, nil, initErr
	}

	return win, func() {
		mainthread.Call(func() {
			glfw.Terminate()
		})
	}, nil
}
