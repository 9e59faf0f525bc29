package mesh

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// glMesh is one uploaded primitive: a VAO with interleaved
// position/normal/texcoord vertices and an index buffer.
type glMesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// GLLibrary is the OpenGL implementation of Library.
// Requires a current GL context.
type GLLibrary struct {
	plane   *glMesh
	box     *glMesh
	sphere  *glMesh
	cyl     *glMesh
	tapered *glMesh
	torus   *glMesh

	boxRanges     [boxSideCount]indexRange
	cylRanges     cylinderRanges
	taperedRanges cylinderRanges
}

var _ Library = (*GLLibrary)(nil)

// NewGLLibrary creates an empty library; call the Load methods during
// scene preparation.
func NewGLLibrary() *GLLibrary {
	return &GLLibrary{}
}

// upload creates the VAO/VBO/EBO for a built primitive.
func upload(d meshData) *glMesh {
	m := &glMesh{indexCount: int32(len(d.indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(d.vertices)*4, gl.Ptr(d.vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(d.indices)*4, gl.Ptr(d.indices), gl.STATIC_DRAW)

	stride := int32(floatsPerVertex * 4)
	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	// Normal
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)
	// Texture coordinate
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
	return m
}

func drawRange(m *glMesh, r indexRange) {
	if m == nil || r.count == 0 {
		return
	}
	gl.BindVertexArray(m.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, r.count, gl.UNSIGNED_INT, uintptr(r.first)*4)
	gl.BindVertexArray(0)
}

func drawAll(m *glMesh) {
	if m == nil {
		return
	}
	drawRange(m, indexRange{first: 0, count: m.indexCount})
}

// LoadPlane uploads the plane primitive.
func (l *GLLibrary) LoadPlane() {
	if l.plane == nil {
		l.plane = upload(buildPlane())
	}
}

// LoadBox uploads the box primitive.
func (l *GLLibrary) LoadBox() {
	if l.box == nil {
		d, ranges := buildBox()
		l.box = upload(d)
		l.boxRanges = ranges
	}
}

// LoadSphere uploads the sphere primitive.
func (l *GLLibrary) LoadSphere() {
	if l.sphere == nil {
		l.sphere = upload(buildSphere())
	}
}

// LoadCylinder uploads the cylinder primitive.
func (l *GLLibrary) LoadCylinder() {
	if l.cyl == nil {
		d, ranges := buildCylinder(1, 1)
		l.cyl = upload(d)
		l.cylRanges = ranges
	}
}

// LoadTaperedCylinder uploads the tapered cylinder primitive
// (a frustum narrowing to half the base radius).
func (l *GLLibrary) LoadTaperedCylinder() {
	if l.tapered == nil {
		d, ranges := buildCylinder(1, 0.5)
		l.tapered = upload(d)
		l.taperedRanges = ranges
	}
}

// LoadTorus uploads the torus primitive.
func (l *GLLibrary) LoadTorus() {
	if l.torus == nil {
		l.torus = upload(buildTorus())
	}
}

// DrawPlane draws the plane.
func (l *GLLibrary) DrawPlane() { drawAll(l.plane) }

// DrawBox draws all six box faces.
func (l *GLLibrary) DrawBox() { drawAll(l.box) }

// DrawBoxSide draws a single box face.
func (l *GLLibrary) DrawBoxSide(side BoxSide) {
	if side < 0 || side >= boxSideCount {
		return
	}
	drawRange(l.box, l.boxRanges[side])
}

// DrawSphere draws the sphere.
func (l *GLLibrary) DrawSphere() { drawAll(l.sphere) }

// DrawCylinder draws the selected cylinder parts.
func (l *GLLibrary) DrawCylinder(top, bottom, sides bool) {
	if top {
		drawRange(l.cyl, l.cylRanges.top)
	}
	if bottom {
		drawRange(l.cyl, l.cylRanges.bottom)
	}
	if sides {
		drawRange(l.cyl, l.cylRanges.sides)
	}
}

// DrawTaperedCylinder draws the full tapered cylinder.
func (l *GLLibrary) DrawTaperedCylinder() { drawAll(l.tapered) }

// DrawTorus draws the torus.
func (l *GLLibrary) DrawTorus() { drawAll(l.torus) }

// Destroy frees all GPU buffers.
func (l *GLLibrary) Destroy() {
	for _, m := range []*glMesh{l.plane, l.box, l.sphere, l.cyl, l.tapered, l.torus} {
		if m == nil {
			continue
		}
		gl.DeleteBuffers(1, &m.vbo)
		gl.DeleteBuffers(1, &m.ebo)
		gl.DeleteVertexArrays(1, &m.vao)
	}
	l.plane, l.box, l.sphere, l.cyl, l.tapered, l.torus = nil, nil, nil, nil, nil, nil
}
