package gfx

import (
	"runtime"

	"github.com/faiface/mainthread"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// Mesh is a float vertex buffer bound to one shader, always drawn as
// triangles. The buffer grows as needed when the data is replaced.
type Mesh struct {
	vao, vbo binder
	format   AttrFormat
	stride   int
	offset   []int
	shader   *Shader
	count    int
	cap      int
}

// NewMesh allocates a vertex array for the shader's vertex format and
// uploads the initial data. Must run on the main thread with a current
// context.
func NewMesh(shader *Shader, data []GlFloat) *Mesh {
	m := &Mesh{
		vao: binder{
			restoreLoc: gl.VERTEX_ARRAY_BINDING,
			bindFunc: func(obj uint32) {
				gl.BindVertexArray(obj)
			},
		},
		vbo: binder{
			restoreLoc: gl.ARRAY_BUFFER_BINDING,
			bindFunc: func(obj uint32) {
				gl.BindBuffer(gl.ARRAY_BUFFER, obj)
			},
		},
		format: shader.VertexFormat(),
		stride: shader.VertexFormat().Size(),
		offset: make([]int, len(shader.VertexFormat())),
		shader: shader,
	}

	offset := 0
	for i, attr := range m.format {
		m.offset[i] = offset
		offset += attr.Type.Size()
	}

	gl.GenVertexArrays(1, &m.vao.obj)
	m.vao.bind()

	gl.GenBuffers(1, &m.vbo.obj)
	m.vbo.bind()

	m.cap = len(data)
	if m.cap > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*SizeOfFloat32, gl.Ptr(data), gl.DYNAMIC_DRAW)
	}
	m.count = len(data) * SizeOfFloat32 / m.stride
	m.setAttributes()

	m.vbo.restore()
	m.vao.restore()

	runtime.SetFinalizer(m, (*Mesh).delete)
	return m
}

func (m *Mesh) setAttributes() {
	for i, attr := range m.format {
		loc := gl.GetAttribLocation(m.shader.program.obj, gl.Str(attr.Name+"\x00"))

		var size int32
		switch attr.Type {
		case Float:
			size = 1
		case Vec2:
			size = 2
		case Vec3:
			size = 3
		case Vec4:
			size = 4
		default:
			panic("invalid vertex attribute type")
		}

		gl.VertexAttribPointerWithOffset(
			uint32(loc),
			size,
			gl.FLOAT,
			false,
			int32(m.stride),
			uintptr(m.offset[i]),
		)
		gl.EnableVertexAttribArray(uint32(loc))
	}
}

func (m *Mesh) delete() {
	mainthread.CallNonBlock(func() {
		gl.DeleteVertexArrays(1, &m.vao.obj)
		gl.DeleteBuffers(1, &m.vbo.obj)
	})
}

// SetVertexData replaces the mesh contents, reallocating the buffer when
// the new data is larger.
func (m *Mesh) SetVertexData(data []GlFloat) {
	m.vbo.bind()
	if len(data) > m.cap {
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*SizeOfFloat32, gl.Ptr(data), gl.DYNAMIC_DRAW)
		m.cap = len(data)
	} else if len(data) > 0 {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(data)*SizeOfFloat32, gl.Ptr(data))
	}
	m.count = len(data) * SizeOfFloat32 / m.stride
	m.vbo.restore()
}

// Len returns the number of vertices.
func (m *Mesh) Len() int {
	return m.count
}

// Begin binds the vertex array. Call End when done.
func (m *Mesh) Begin() {
	m.vao.bind()
}

// End unbinds the vertex array.
func (m *Mesh) End() {
	m.vao.restore()
}

// Draw renders the mesh as triangles. The mesh and its shader must be
// bound.
func (m *Mesh) Draw() {
	gl.DrawArrays(gl.TRIANGLES, 0, int32(m.count))
}
