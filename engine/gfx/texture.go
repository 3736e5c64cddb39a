package gfx

import (
	"runtime"

	"github.com/faiface/mainthread"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// Texture is a 2D RGBA texture.
type Texture struct {
	tex           binder
	width, height int
}

// NewTexture creates a texture from RGBA pixel data, one byte per
// channel. Must run on the main thread with a current context.
func NewTexture(width, height int, smooth bool, pixels []uint8) *Texture {
	tex := &Texture{
		tex: binder{
			restoreLoc: gl.TEXTURE_BINDING_2D,
			bindFunc: func(obj uint32) {
				gl.BindTexture(gl.TEXTURE_2D, obj)
			},
		},
		width:  width,
		height: height,
	}

	gl.GenTextures(1, &tex.tex.obj)

	tex.Begin()
	defer tex.End()

	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(width),
		int32(height),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(pixels),
	)

	filter := int32(gl.NEAREST)
	if smooth {
		filter = gl.LINEAR
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	runtime.SetFinalizer(tex, (*Texture).delete)
	return tex
}

func (t *Texture) delete() {
	mainthread.CallNonBlock(func() {
		gl.DeleteTextures(1, &t.tex.obj)
	})
}

// ID returns the OpenGL name of this texture.
func (t *Texture) ID() uint32 {
	return t.tex.obj
}

// Width returns the width of the texture in pixels.
func (t *Texture) Width() int {
	return t.width
}

// Height returns the height of the texture in pixels.
func (t *Texture) Height() int {
	return t.height
}

// Begin binds the texture. Call End when done.
func (t *Texture) Begin() {
	t.tex.bind()
}

// End unbinds the texture.
func (t *Texture) End() {
	t.tex.restore()
}
