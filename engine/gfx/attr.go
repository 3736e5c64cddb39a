package gfx

// GlFloat is the element type of vertex data.
type GlFloat float32

const SizeOfFloat32 = 4

// Attr is a single named attribute or uniform of a shader.
type Attr struct {
	Name string
	Type AttrType
}

// AttrFormat describes the layout of a shader's attributes or uniforms.
type AttrFormat []Attr

// Size returns the byte size of one vertex in this format.
func (af AttrFormat) Size() int {
	total := 0
	for _, attr := range af {
		total += attr.Type.Size()
	}
	return total
}

type AttrType int

const (
	Int AttrType = iota
	Float
	Vec2
	Vec3
	Vec4
	Mat4
)

// Size returns the byte size of one value of this type.
func (at AttrType) Size() int {
	switch at {
	case Int, Float:
		return 4
	case Vec2:
		return 8
	case Vec3:
		return 12
	case Vec4:
		return 16
	case Mat4:
		return 64
	}
	panic("invalid attribute type")
}
