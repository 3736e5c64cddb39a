package gui

import (
	_ "embed"

	"github.com/pkg/errors"

	"github.com/hollowforge/inputbridge/engine/gfx"
	"github.com/hollowforge/inputbridge/engine/util"
)

var (
	//go:embed shader/gui.vert
	guiVertexShaderSource string

	//go:embed shader/gui.frag
	guiFragmentShaderSource string
)

const (
	overlayMargin = 8
	overlayScale  = 2
)

// Overlay draws the status line into the top left corner of the canvas.
// It implements StatusDisplay; the texture is only rebuilt when the text
// changes.
type Overlay struct {
	shader  *gfx.Shader
	mesh    *gfx.Mesh
	texture *gfx.Texture
	text    string
	dirty   bool
}

// NewOverlay compiles the gui shader for a canvas of the given pixel
// size. Must run on the main thread with a current context.
func NewOverlay(windowWidth, windowHeight int) (*Overlay, error) {
	vertexFormat := gfx.AttrFormat{
		{Name: "position", Type: gfx.Vec2},
		{Name: "texCoord", Type: gfx.Vec2},
	}
	uniformFormat := gfx.AttrFormat{
		{Name: "projection", Type: gfx.Mat4},
	}
	shader, err := gfx.NewShader(vertexFormat, uniformFormat, guiVertexShaderSource, guiFragmentShaderSource)
	if err != nil {
		return nil, errors.Wrap(err, "gui shader")
	}
	shader.Begin()
	shader.SetUniformAttr(0, util.PixelProjection(windowWidth, windowHeight))
	shader.End()

	return &Overlay{shader: shader}, nil
}

func (o *Overlay) Set(text string) {
	if text == o.text && o.texture != nil {
		return
	}
	o.text = text
	o.dirty = true
}

// Draw renders the status quad. Called once per frame from the render
// loop, on the main thread.
func (o *Overlay) Draw() {
	if o.dirty {
		o.rebuild()
		o.dirty = false
	}
	if o.texture == nil {
		return
	}
	o.shader.Begin()
	o.texture.Begin()
	o.mesh.Begin()
	o.mesh.Draw()
	o.mesh.End()
	o.texture.End()
	o.shader.End()
}

func (o *Overlay) rebuild() {
	img := RenderText(o.text)
	bounds := img.Bounds()
	if bounds.Dx() == 0 {
		o.texture = nil
		return
	}
	o.texture = gfx.NewTexture(bounds.Dx(), bounds.Dy(), false, img.Pix)

	data := quadVertices(
		overlayMargin, overlayMargin,
		float32(bounds.Dx()*overlayScale), float32(bounds.Dy()*overlayScale),
	)
	if o.mesh == nil {
		o.mesh = gfx.NewMesh(o.shader, data)
	} else {
		o.mesh.SetVertexData(data)
	}
}

// quadVertices builds two triangles in pixel coordinates with full
// texture coverage, interleaved as x, y, u, v.
func quadVertices(x, y, w, h float32) []gfx.GlFloat {
	x0, y0 := gfx.GlFloat(x), gfx.GlFloat(y)
	x1, y1 := gfx.GlFloat(x+w), gfx.GlFloat(y+h)
	return []gfx.GlFloat{
		x0, y0, 0, 0,
		x1, y0, 1, 0,
		x1, y1, 1, 1,

		x0, y0, 0, 0,
		x1, y1, 1, 1,
		x0, y1, 0, 1,
	}
}
