package scene

import "github.com/Faultbox/deskscene/pkg/math"

// Shared footprint of the teacup and its saucer.
const (
	cupX = 12.0
	cupZ = 1.0
	// The saucer top sits 0.15 above the desk; the cup stands on it.
	saucerLift = 0.15
)

// drawTeacup renders the cup: a flattened half-sphere bottom with an
// open cylinder body on top (top cap and sides, no bottom).
func (s *Scene) drawTeacup() {
	s.state.SetMaterial("teacup")

	bottomScale := math.V3(1.5, 0.5, 1.5)
	bottomPos := math.V3(cupX, deskHeight+saucerLift+bottomScale.Y, cupZ)
	s.state.SetTransform(bottomScale, 0, 0, 0, bottomPos)
	s.meshes.DrawSphere()

	bodyScale := math.V3(1.5, 1.0, 1.5)
	bodyPos := math.V3(cupX, deskHeight+saucerLift+bottomScale.Y+bodyScale.Y/2, cupZ)
	s.state.SetTransform(bodyScale, 0, 0, 0, bodyPos)
	s.meshes.DrawCylinder(true, false, true)
}

// drawSaucer renders the saucer: a wide flattened sphere resting on a
// thin full cylinder base.
func (s *Scene) drawSaucer() {
	s.state.SetMaterial("saucer")

	topScale := math.V3(3, 0.4, 3)
	topPos := math.V3(cupX, deskHeight+saucerLift, cupZ)
	s.state.SetTransform(topScale, 0, 0, 0, topPos)
	s.meshes.DrawSphere()

	baseScale := math.V3(1.5, 0.2, 1.5)
	s.state.SetTransform(baseScale, 0, 0, 0, topPos)
	s.meshes.DrawCylinder(true, true, true)
}
