package gfx

import (
	"runtime"
	"strings"

	"github.com/faiface/mainthread"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// Shader is a compiled and linked GL program with typed uniforms.
type Shader struct {
	program       binder
	vertexFormat  AttrFormat
	uniformFormat AttrFormat
	uniformLoc    []int32
}

// NewShader compiles and links a vertex/fragment shader pair. Must run on
// the main thread with a current context.
func NewShader(vertexFmt, uniformFmt AttrFormat, vertexSrc, fragmentSrc string) (*Shader, error) {
	s := &Shader{
		program: binder{
			restoreLoc: gl.CURRENT_PROGRAM,
			bindFunc: func(obj uint32) {
				gl.UseProgram(obj)
			},
		},
		vertexFormat:  vertexFmt,
		uniformFormat: uniformFmt,
		uniformLoc:    make([]int32, len(uniformFmt)),
	}

	vertex, err := compileShader(gl.VERTEX_SHADER, vertexSrc)
	if err != nil {
		return nil, errors.Wrap(err, "vertex shader")
	}
	defer gl.DeleteShader(vertex)

	fragment, err := compileShader(gl.FRAGMENT_SHADER, fragmentSrc)
	if err != nil {
		return nil, errors.Wrap(err, "fragment shader")
	}
	defer gl.DeleteShader(fragment)

	s.program.obj = gl.CreateProgram()
	gl.AttachShader(s.program.obj, vertex)
	gl.AttachShader(s.program.obj, fragment)
	gl.LinkProgram(s.program.obj)

	var success int32
	gl.GetProgramiv(s.program.obj, gl.LINK_STATUS, &success)
	if success == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(s.program.obj, gl.INFO_LOG_LENGTH, &logLen)
		infoLog := make([]byte, logLen+1)
		gl.GetProgramInfoLog(s.program.obj, logLen, nil, &infoLog[0])
		return nil, errors.Errorf("link program: %s", strings.TrimRight(string(infoLog), "\x00"))
	}

	for i, uniform := range uniformFmt {
		s.uniformLoc[i] = gl.GetUniformLocation(s.program.obj, gl.Str(uniform.Name+"\x00"))
	}

	runtime.SetFinalizer(s, (*Shader).delete)
	return s, nil
}

func compileShader(shaderType uint32, src string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(src + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var success int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &success)
	if success == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		infoLog := make([]byte, logLen+1)
		gl.GetShaderInfoLog(shader, logLen, nil, &infoLog[0])
		gl.DeleteShader(shader)
		return 0, errors.Errorf("compile: %s", strings.TrimRight(string(infoLog), "\x00"))
	}
	return shader, nil
}

func (s *Shader) delete() {
	mainthread.CallNonBlock(func() {
		gl.DeleteProgram(s.program.obj)
	})
}

// VertexFormat returns the vertex attribute format of this shader.
func (s *Shader) VertexFormat() AttrFormat {
	return s.vertexFormat
}

// Begin binds the program. Call End when done.
func (s *Shader) Begin() {
	s.program.bind()
}

// End unbinds the program.
func (s *Shader) End() {
	s.program.restore()
}

// SetUniformAttr sets the uniform with the given index in the uniform
// format. The value's Go type must match the attribute type. The shader
// must be bound.
func (s *Shader) SetUniformAttr(uniform int, value interface{}) bool {
	if s.uniformLoc[uniform] < 0 {
		return false
	}
	switch s.uniformFormat[uniform].Type {
	case Int:
		value := value.(int32)
		gl.Uniform1iv(s.uniformLoc[uniform], 1, &value)
	case Float:
		value := value.(float32)
		gl.Uniform1fv(s.uniformLoc[uniform], 1, &value)
	case Vec2:
		value := value.(mgl32.Vec2)
		gl.Uniform2fv(s.uniformLoc[uniform], 1, &value[0])
	case Vec3:
		value := value.(mgl32.Vec3)
		gl.Uniform3fv(s.uniformLoc[uniform], 1, &value[0])
	case Vec4:
		value := value.(mgl32.Vec4)
		gl.Uniform4fv(s.uniformLoc[uniform], 1, &value[0])
	case Mat4:
		value := value.(mgl32.Mat4)
		gl.UniformMatrix4fv(s.uniformLoc[uniform], 1, false, &value[0])
	default:
		panic("invalid uniform attribute type")
	}
	return true
}
