package gui

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// RenderText rasterizes one line of text with the builtin 7x13 face into
// a tightly sized NRGBA image, white on transparent. The overlay scales
// it up when drawing, the face has no larger sizes.
func RenderText(text string) *image.NRGBA {
	face := basicfont.Face7x13
	drawer := &font.Drawer{Face: face}

	width := drawer.MeasureString(text).Ceil()
	height := face.Ascent + face.Descent
	img := image.NewNRGBA(image.Rect(0, 0, width, height))

	drawer.Dst = img
	drawer.Src = image.NewUniform(color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	drawer.Dot = fixed.P(0, face.Ascent)
	drawer.DrawString(text)
	return img
}
