package scene

import "github.com/Faultbox/deskscene/pkg/math"

type bookSpec struct {
	materialTag string
	scale       math.Vec3
	jitter      math.Vec3 // x/z nudge off the book below
	color       [4]float32
}

// bookStack is bottom to top; each book rests on the previous one with
// a small x/z offset so the spines don't align perfectly.
var bookStack = []bookSpec{
	{"gray_book", math.V3(10.5, 2.5, 4.5), math.V3(0, 0, 0), [4]float32{0.5, 0.5, 0.5, 1}},
	{"black_book", math.V3(9.5, 1.25, 4.0), math.V3(0.2, 0, -0.2), [4]float32{0.1, 0.1, 0.1, 1}},
	{"light_blue_book", math.V3(9.0, 1.25, 3.5), math.V3(-0.2, 0, 0.2), [4]float32{0.4, 0.6, 0.8, 1}},
}

// drawBookStack renders the three stacked books under the vase. The
// bottom book is centered on the anchor's x and slightly behind its z.
func (s *Scene) drawBookStack(anchor math.Vec3) {
	pos := math.V3(anchor.X, deskHeight, anchor.Z+0.2)
	prevHalf := float32(0)

	for _, b := range bookStack {
		half := b.scale.Y / 2
		pos = pos.Add(math.V3(b.jitter.X, prevHalf+half, b.jitter.Z))
		prevHalf = half

		s.state.SetMaterial(b.materialTag)
		s.state.SetColor(b.color[0], b.color[1], b.color[2], b.color[3])
		s.state.SetTransform(b.scale, 0, 0, 0, pos)
		s.meshes.DrawBox()
	}
}
