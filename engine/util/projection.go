package util

import "github.com/go-gl/mathgl/mgl32"

// PixelProjection maps pixel coordinates with the origin at the top left
// of the canvas onto clip space.
func PixelProjection(width, height int) mgl32.Mat4 {
	return mgl32.Ortho2D(0, float32(width), float32(height), 0)
}
