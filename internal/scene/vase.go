package scene

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/deskscene/pkg/math"
)

// The arrangement hangs off the rim ring above the vase opening. The
// neck lift differs per stage: the glass parts stack off the geometry
// below them, while the plant stages all share the taller rim anchor.
func plantRim(anchor math.Vec3) math.Vec3 {
	neck := anchor.Add(math.V3(0, 1.2+1.1, 0))
	return neck.Add(math.V3(0, 1.1+2.0, 0))
}

// drawVaseBase renders the bulbous glass bottom.
func (s *Scene) drawVaseBase(anchor math.Vec3) {
	s.state.SetTexture("glass")
	s.state.SetMaterial("glass")
	s.state.SetTransform(math.V3(2, 1.2, 2), 0, 0, 0, anchor)
	s.meshes.DrawSphere()
}

// drawVaseNeck renders the tapering glass neck above the base.
func (s *Scene) drawVaseNeck(anchor math.Vec3) {
	s.state.SetTexture("glass")
	s.state.SetMaterial("glass")
	neck := anchor.Add(math.V3(0, 0.8, 0))
	s.state.SetTransform(math.V3(1.5, 2.2, 1.5), 0, 0, 0, neck)
	s.meshes.DrawTaperedCylinder()
}

// drawVaseOpening renders the opening cylinder: wet-glass texture on the
// sides, plain glass on the caps.
func (s *Scene) drawVaseOpening(anchor math.Vec3) {
	s.state.SetTexture("vase_opening_side")
	neck := anchor.Add(math.V3(0, 0.8, 0))
	opening := neck.Add(math.V3(0, 1.1+1.0, 0))
	s.state.SetTransform(math.V3(0.75, 2, 0.75), 0, 0, 0, opening)
	s.meshes.DrawCylinder(false, false, true)
	s.state.SetTexture("glass")
	s.meshes.DrawCylinder(true, false, false)
	s.meshes.DrawCylinder(false, true, false)
}

// drawVaseRim renders the torus lip laid flat over the opening.
func (s *Scene) drawVaseRim(anchor math.Vec3) {
	s.state.SetTexture("glass")
	s.state.SetMaterial("glass")
	neck := anchor.Add(math.V3(0, 1.8, 0))
	rim := neck.Add(math.V3(0, 1.1+2.0, 0))
	s.state.SetTransform(math.V3(0.9, 0.9, 0.5), 90, 0, 0, rim)
	s.meshes.DrawTorus()
}

// brownStemOffsets places the four woody stems around the rim.
var brownStemOffsets = []math.Vec3{
	{X: -0.6, Y: 0.1, Z: 0.2},
	{X: -0.5, Y: 0.2, Z: -0.25},
	{X: -0.1, Y: 0.0, Z: 0.6},
	{X: -0.2, Y: 0.1, Z: -0.55},
}

func (s *Scene) drawBrownStems(anchor math.Vec3) {
	s.state.SetTexture("wood")
	s.state.SetMaterial("brown_stem")

	rim := plantRim(anchor)
	for _, offset := range brownStemOffsets {
		s.state.SetTransform(math.V3(0.1, 0.1, 1.5), -90, 25, 10, rim.Add(offset))
		s.meshes.DrawTaperedCylinder()
	}
}

// drawBeigePuffs renders the ring of dried puffs: 24 elongated spheres
// fanned around the rim, varying spread and height by index so the ring
// reads as organic rather than mechanical.
func (s *Scene) drawBeigePuffs(anchor math.Vec3) {
	s.state.SetTexture("beige_puff")
	s.state.SetMaterial("beige_puff")

	const (
		rimRadius = 1.0
		puffCount = 24
	)
	rim := plantRim(anchor)

	for i := 0; i < puffCount; i++ {
		angle := math.Radians(360 * float32(i) / puffCount)
		spread := 0.8 + 0.4*float32(i%3)

		pos := math.V3(
			rim.X+rimRadius*spread*math32.Cos(angle),
			rim.Y+0.3+0.5*float32(i%4),
			rim.Z+rimRadius*spread*math32.Sin(angle),
		)
		s.state.SetTransform(math.V3(0.25, 0.25, 0.8), 0, math.Degrees(angle)+90, 0, pos)
		s.meshes.DrawSphere()
	}
}

type branchSpec struct {
	offset math.Vec3
	yRot   float32
	zRot   float32
}

var greenBranches = []branchSpec{
	{math.V3(0.4, 0.6, 0.3), 30, -15},
	{math.V3(-0.5, 0.8, -0.2), -25, 20},
	{math.V3(0.2, 1.0, -0.4), 10, 5},
}

// drawGreenBranches renders three leafy branches, each a tapered main
// stalk with three thin sub-branches carrying two small flowers. The
// texture and material toggle to white_flower for the flowers and back
// for the next sub-branch.
func (s *Scene) drawGreenBranches(anchor math.Vec3) {
	s.state.SetTexture("green_stem")
	s.state.SetMaterial("green_stem")

	rim := plantRim(anchor)
	for _, b := range greenBranches {
		s.state.SetTransform(math.V3(0.06, 0.06, 2.5), -90, b.yRot, b.zRot, rim.Add(b.offset))
		s.meshes.DrawTaperedCylinder()

		for i := 0; i < 3; i++ {
			subPos := rim.Add(b.offset).Add(math.V3(
				float32(i+1)*0.2,
				1.0+float32(i)*0.8,
				float32(i+1)*0.2,
			))
			s.state.SetTransform(math.V3(0.04, 0.04, 1.5), -90, b.yRot+25, b.zRot+20, subPos)
			s.meshes.DrawCylinder(true, true, true)

			s.state.SetTexture("white_flower")
			s.state.SetMaterial("white_flower")
			for j := 0; j < 2; j++ {
				flowerPos := subPos.Add(math.V3(0.1*float32(j), 0.5+0.4*float32(j), 0.1*float32(j)))
				s.state.SetTransform(math.V3(0.1, 0.1, 0.1), 0, 0, 0, flowerPos)
				s.meshes.DrawSphere()
			}
			s.state.SetTexture("green_stem")
			s.state.SetMaterial("green_stem")
		}
	}
}

var flowerOffsets = []math.Vec3{
	{X: 0.1, Y: 0.2, Z: 0.1},
	{X: -0.15, Y: 0.3, Z: -0.1},
	{X: 0.0, Y: 0.4, Z: 0.2},
	{X: -0.2, Y: 0.25, Z: 0.15},
	{X: 0.15, Y: 0.35, Z: -0.2},
	{X: -0.1, Y: 0.4, Z: -0.15},
}

var flowerClusters = []math.Vec3{
	{X: 0.5, Y: 1.3, Z: 0.4},
	{X: -0.6, Y: 1.6, Z: -0.3},
	{X: 0.3, Y: 2.2, Z: -0.5},
	{X: -0.4, Y: 1.9, Z: 0.2},
	{X: 0.2, Y: 2.1, Z: 0.3},
}

var scatteredFlowers = []math.Vec3{
	{X: 0.4, Y: 1.7, Z: 0.5},
	{X: -0.3, Y: 2.0, Z: -0.4},
	{X: 0.15, Y: 1.8, Z: 0.6},
	{X: -0.5, Y: 1.9, Z: 0.3},
	{X: 0.25, Y: 2.3, Z: -0.2},
	{X: -0.2, Y: 2.1, Z: 0.4},
}

// drawWhiteFlowers renders five clusters of three flowers plus six
// scattered singles, with index-derived jitter in size and rotation.
func (s *Scene) drawWhiteFlowers(anchor math.Vec3) {
	s.state.SetTexture("white_flower")
	s.state.SetMaterial("white_flower")

	rim := plantRim(anchor)

	for _, cluster := range flowerClusters {
		for i := 0; i < 3; i++ {
			offset := flowerOffsets[i%len(flowerOffsets)]
			mirror := float32(1)
			if i%2 == 1 {
				mirror = -1
			}
			pos := rim.Add(cluster).Add(offset.Mul(math.V3(float32(i+1), 0.8, mirror)))
			size := 0.1 * (0.9 + 0.2*float32(i%3))
			s.state.SetTransform(math.V3(size, size, size), 0, 30*float32(i%4), 15*float32(i%2), pos)
			s.meshes.DrawSphere()
		}
	}

	for i, offset := range scatteredFlowers {
		size := 0.1 * (0.85 + 0.1*float32(i))
		s.state.SetTransform(
			math.V3(size, size, size),
			10*float32(i%3), 45*float32(i%4), 5*float32(i%2),
			rim.Add(offset),
		)
		s.meshes.DrawSphere()
	}
}
