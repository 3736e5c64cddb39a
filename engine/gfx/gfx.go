// Package gfx wraps the small slice of OpenGL the shell needs: a shader,
// a texture and a triangle mesh. Everything here must run on the main
// thread with a current GL context.
package gfx

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/pkg/errors"
)

// Init loads the OpenGL function pointers. Call once after the context
// was made current.
func Init() error {
	if err := gl.Init(); err != nil {
		return errors.Wrap(err, "loading OpenGL functions")
	}
	return nil
}
