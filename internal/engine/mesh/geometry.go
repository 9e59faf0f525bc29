package mesh

import (
	"github.com/chewxy/math32"
)

// Vertex layout: position (3), normal (3), texcoord (2).
const floatsPerVertex = 8

// Tessellation levels for the curved primitives.
const (
	sphereRings    = 16
	sphereSectors  = 32
	cylinderSlices = 36
	torusRings     = 32
	torusSides     = 16
	torusTubeR     = 0.25
)

// indexRange addresses a contiguous run of indices inside a mesh, so a
// single VAO can expose selectable sub-faces (box sides, cylinder caps).
type indexRange struct {
	first int32
	count int32
}

// meshData is a built primitive ready for GPU upload.
type meshData struct {
	vertices []float32
	indices  []uint32
}

func (m *meshData) addVertex(px, py, pz, nx, ny, nz, u, v float32) {
	m.vertices = append(m.vertices, px, py, pz, nx, ny, nz, u, v)
}

func (m *meshData) vertexCount() uint32 {
	return uint32(len(m.vertices) / floatsPerVertex)
}

// buildPlane is a 2x2 unit quad on the XZ plane at y=0, facing +Y.
func buildPlane() meshData {
	var d meshData
	d.addVertex(-1, 0, -1, 0, 1, 0, 0, 1)
	d.addVertex(1, 0, -1, 0, 1, 0, 1, 1)
	d.addVertex(1, 0, 1, 0, 1, 0, 1, 0)
	d.addVertex(-1, 0, 1, 0, 1, 0, 0, 0)
	d.indices = []uint32{0, 2, 1, 0, 3, 2}
	return d
}

// BoxSide selects one face of the box mesh.
type BoxSide int

const (
	BoxFront BoxSide = iota
	BoxBack
	BoxLeft
	BoxRight
	BoxTop
	BoxBottom
	boxSideCount
)

// buildBox is a unit cube centered at the origin. Each side is four
// vertices and its own index range so sides can be drawn individually.
func buildBox() (meshData, [boxSideCount]indexRange) {
	var d meshData
	var ranges [boxSideCount]indexRange

	const h = 0.5
	type face struct {
		side    BoxSide
		corners [4][3]float32 // CCW seen from outside
		normal  [3]float32
	}
	faces := []face{
		{BoxFront, [4][3]float32{{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}}, [3]float32{0, 0, 1}},
		{BoxBack, [4][3]float32{{h, -h, -h}, {-h, -h, -h}, {-h, h, -h}, {h, h, -h}}, [3]float32{0, 0, -1}},
		{BoxLeft, [4][3]float32{{-h, -h, -h}, {-h, -h, h}, {-h, h, h}, {-h, h, -h}}, [3]float32{-1, 0, 0}},
		{BoxRight, [4][3]float32{{h, -h, h}, {h, -h, -h}, {h, h, -h}, {h, h, h}}, [3]float32{1, 0, 0}},
		{BoxTop, [4][3]float32{{-h, h, h}, {h, h, h}, {h, h, -h}, {-h, h, -h}}, [3]float32{0, 1, 0}},
		{BoxBottom, [4][3]float32{{-h, -h, -h}, {h, -h, -h}, {h, -h, h}, {-h, -h, h}}, [3]float32{0, -1, 0}},
	}
	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	for _, f := range faces {
		base := d.vertexCount()
		for i, c := range f.corners {
			d.addVertex(c[0], c[1], c[2], f.normal[0], f.normal[1], f.normal[2], uvs[i][0], uvs[i][1])
		}
		ranges[f.side] = indexRange{first: int32(len(d.indices)), count: 6}
		d.indices = append(d.indices, base, base+1, base+2, base, base+2, base+3)
	}
	return d, ranges
}

// buildSphere is a unit-radius UV sphere centered at the origin.
func buildSphere() meshData {
	var d meshData

	for ring := 0; ring <= sphereRings; ring++ {
		phi := math32.Pi * float32(ring) / sphereRings // 0 at north pole
		y := math32.Cos(phi)
		r := math32.Sin(phi)
		for sector := 0; sector <= sphereSectors; sector++ {
			theta := 2 * math32.Pi * float32(sector) / sphereSectors
			x := r * math32.Cos(theta)
			z := r * math32.Sin(theta)
			u := float32(sector) / sphereSectors
			v := 1 - float32(ring)/sphereRings
			d.addVertex(x, y, z, x, y, z, u, v)
		}
	}

	stride := uint32(sphereSectors + 1)
	for ring := uint32(0); ring < sphereRings; ring++ {
		for sector := uint32(0); sector < sphereSectors; sector++ {
			a := ring*stride + sector
			b := a + stride
			d.indices = append(d.indices, a, b, a+1, a+1, b, b+1)
		}
	}
	return d
}

type cylinderRanges struct {
	top    indexRange
	bottom indexRange
	sides  indexRange
}

// buildCylinder builds a cylinder (or cone frustum) with the given top and
// bottom radii, base on the XZ plane at y=0 and top at y=1. Caps and sides
// get separate index ranges so they can be drawn independently.
func buildCylinder(bottomRadius, topRadius float32) (meshData, cylinderRanges) {
	var d meshData
	var r cylinderRanges

	// Side surface. The side normal leans by the taper slope.
	slope := bottomRadius - topRadius
	for slice := 0; slice <= cylinderSlices; slice++ {
		theta := 2 * math32.Pi * float32(slice) / cylinderSlices
		c := math32.Cos(theta)
		s := math32.Sin(theta)
		u := float32(slice) / cylinderSlices

		nx, ny, nz := normalize3(c, slope, s)
		d.addVertex(bottomRadius*c, 0, bottomRadius*s, nx, ny, nz, u, 0)
		d.addVertex(topRadius*c, 1, topRadius*s, nx, ny, nz, u, 1)
	}

	r.sides.first = int32(len(d.indices))
	for slice := uint32(0); slice < cylinderSlices; slice++ {
		a := slice * 2
		d.indices = append(d.indices, a, a+1, a+2, a+2, a+1, a+3)
	}
	r.sides.count = int32(len(d.indices)) - r.sides.first

	// Top cap fan.
	topCenter := d.vertexCount()
	d.addVertex(0, 1, 0, 0, 1, 0, 0.5, 0.5)
	for slice := 0; slice <= cylinderSlices; slice++ {
		theta := 2 * math32.Pi * float32(slice) / cylinderSlices
		c := math32.Cos(theta)
		s := math32.Sin(theta)
		d.addVertex(topRadius*c, 1, topRadius*s, 0, 1, 0, 0.5+0.5*c, 0.5+0.5*s)
	}
	r.top.first = int32(len(d.indices))
	for slice := uint32(0); slice < cylinderSlices; slice++ {
		d.indices = append(d.indices, topCenter, topCenter+1+slice, topCenter+2+slice)
	}
	r.top.count = int32(len(d.indices)) - r.top.first

	// Bottom cap fan.
	bottomCenter := d.vertexCount()
	d.addVertex(0, 0, 0, 0, -1, 0, 0.5, 0.5)
	for slice := 0; slice <= cylinderSlices; slice++ {
		theta := 2 * math32.Pi * float32(slice) / cylinderSlices
		c := math32.Cos(theta)
		s := math32.Sin(theta)
		d.addVertex(bottomRadius*c, 0, bottomRadius*s, 0, -1, 0, 0.5+0.5*c, 0.5+0.5*s)
	}
	r.bottom.first = int32(len(d.indices))
	for slice := uint32(0); slice < cylinderSlices; slice++ {
		d.indices = append(d.indices, bottomCenter, bottomCenter+2+slice, bottomCenter+1+slice)
	}
	r.bottom.count = int32(len(d.indices)) - r.bottom.first

	return d, r
}

// buildTorus is a torus in the XY plane centered at the origin: major
// radius 1, tube radius torusTubeR.
func buildTorus() meshData {
	var d meshData

	for ring := 0; ring <= torusRings; ring++ {
		theta := 2 * math32.Pi * float32(ring) / torusRings
		ct := math32.Cos(theta)
		st := math32.Sin(theta)
		for side := 0; side <= torusSides; side++ {
			phi := 2 * math32.Pi * float32(side) / torusSides
			cp := math32.Cos(phi)
			sp := math32.Sin(phi)

			x := (1 + torusTubeR*cp) * ct
			y := (1 + torusTubeR*cp) * st
			z := torusTubeR * sp
			nx := cp * ct
			ny := cp * st
			nz := sp
			u := float32(ring) / torusRings
			v := float32(side) / torusSides
			d.addVertex(x, y, z, nx, ny, nz, u, v)
		}
	}

	stride := uint32(torusSides + 1)
	for ring := uint32(0); ring < torusRings; ring++ {
		for side := uint32(0); side < torusSides; side++ {
			a := ring*stride + side
			b := a + stride
			d.indices = append(d.indices, a, b, a+1, a+1, b, b+1)
		}
	}
	return d
}

func normalize3(x, y, z float32) (float32, float32, float32) {
	l := math32.Sqrt(x*x + y*y + z*z)
	if l == 0 {
		return 0, 0, 0
	}
	return x / l, y / l, z / l
}
