package shader

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/deskscene/pkg/math"
)

// Uniforms is a named-value sink for shader parameters. Every value is
// addressed by its uniform name; uploads take effect for the next draw call.
type Uniforms interface {
	SetMat4Value(name string, m math.Mat4)
	SetVec2Value(name string, x, y float32)
	SetVec3Value(name string, x, y, z float32)
	SetVec4Value(name string, x, y, z, w float32)
	SetFloatValue(name string, v float32)
	SetIntValue(name string, v int32)
	SetBoolValue(name string, v bool)
}

// Manager uploads uniforms to a linked GL program, caching locations by name.
type Manager struct {
	program   uint32
	locations map[string]int32
}

var _ Uniforms = (*Manager)(nil)

// NewManager wraps a linked shader program.
func NewManager(program uint32) *Manager {
	return &Manager{
		program:   program,
		locations: make(map[string]int32),
	}
}

// Program returns the underlying GL program ID.
func (m *Manager) Program() uint32 {
	return m.program
}

// Use makes the program current.
func (m *Manager) Use() {
	gl.UseProgram(m.program)
}

// Delete frees the GL program.
func (m *Manager) Delete() {
	if m.program != 0 {
		gl.DeleteProgram(m.program)
		m.program = 0
	}
}

// location resolves and caches a uniform location. Unknown names resolve
// to -1, which GL silently ignores on upload.
func (m *Manager) location(name string) int32 {
	if loc, ok := m.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(m.program, gl.Str(name+"\x00"))
	m.locations[name] = loc
	return loc
}

// SetMat4Value uploads a 4x4 matrix.
func (m *Manager) SetMat4Value(name string, mat math.Mat4) {
	gl.UniformMatrix4fv(m.location(name), 1, false, mat.Ptr())
}

// SetVec2Value uploads a 2-component vector.
func (m *Manager) SetVec2Value(name string, x, y float32) {
	gl.Uniform2f(m.location(name), x, y)
}

// SetVec3Value uploads a 3-component vector.
func (m *Manager) SetVec3Value(name string, x, y, z float32) {
	gl.Uniform3f(m.location(name), x, y, z)
}

// SetVec4Value uploads a 4-component vector.
func (m *Manager) SetVec4Value(name string, x, y, z, w float32) {
	gl.Uniform4f(m.location(name), x, y, z, w)
}

// SetFloatValue uploads a scalar float.
func (m *Manager) SetFloatValue(name string, v float32) {
	gl.Uniform1f(m.location(name), v)
}

// SetIntValue uploads a scalar int.
func (m *Manager) SetIntValue(name string, v int32) {
	gl.Uniform1i(m.location(name), v)
}

// SetBoolValue uploads a boolean as an int uniform.
func (m *Manager) SetBoolValue(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	gl.Uniform1i(m.location(name), i)
}
