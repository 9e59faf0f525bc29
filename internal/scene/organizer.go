package scene

import "github.com/Faultbox/deskscene/pkg/math"

// Organizer dimensions. Five open shelves between two side panels,
// closed at the back.
const (
	organizerWidth   = 6.0
	organizerBaseH   = 0.5
	organizerDepth   = 8.0
	organizerBackH   = 10.0
	shelfThickness   = 0.2
	shelfLipHeight   = 1.0
	organizerShelves = 5
)

// drawOrganizer renders the desk organizer to the right of the teacup.
func (s *Scene) drawOrganizer() {
	s.state.SetMaterial("organizer")

	base := math.V3(18, deskHeight+organizerBaseH/2, 2)
	s.state.SetTransform(math.V3(organizerWidth, organizerBaseH, organizerDepth), 0, 0, 0, base)
	s.meshes.DrawBox()

	// Back panel, inset into the base footprint.
	s.state.SetTransform(
		math.V3(organizerWidth, organizerBackH, 0.2),
		0, 0, 0,
		math.V3(base.X, deskHeight+organizerBaseH+organizerBackH/2, base.Z-organizerDepth/2+0.1),
	)
	s.meshes.DrawBox()

	// Side panels.
	sideScale := math.V3(0.2, organizerBackH, organizerDepth)
	sideY := float32(deskHeight + organizerBaseH + organizerBackH/2)
	s.state.SetTransform(sideScale, 0, 0, 0, math.V3(base.X-organizerWidth/2+0.1, sideY, base.Z))
	s.meshes.DrawBox()
	s.state.SetTransform(sideScale, 0, 0, 0, math.V3(base.X+organizerWidth/2-0.1, sideY, base.Z))
	s.meshes.DrawBox()

	// Shelves with a front lip, evenly spaced up the back panel.
	shelfDepth := float32(organizerDepth - 0.5)
	spacing := float32(organizerBackH-organizerBaseH) / organizerShelves

	for i := 0; i < organizerShelves; i++ {
		shelfY := float32(deskHeight+organizerBaseH) + float32(i+1)*spacing
		s.state.SetTransform(
			math.V3(organizerWidth-0.4, shelfThickness, shelfDepth),
			0, 0, 0,
			math.V3(base.X, shelfY, base.Z-0.25),
		)
		s.meshes.DrawBox()

		s.state.SetTransform(
			math.V3(organizerWidth-0.4, shelfLipHeight, 0.2),
			0, 0, 0,
			math.V3(base.X, shelfY+shelfLipHeight/2-shelfThickness/2, base.Z+shelfDepth/2-0.1),
		)
		s.meshes.DrawBox()
	}
}
