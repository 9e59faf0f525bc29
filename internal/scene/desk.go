package scene

import (
	"github.com/Faultbox/deskscene/internal/engine/mesh"
	"github.com/Faultbox/deskscene/pkg/math"
)

// drawDesk renders the desk surface the rest of the scene sits on.
func (s *Scene) drawDesk() {
	s.state.SetTransform(math.V3(25, 1, 12), 0, 0, 0, math.V3(0, 0, 0))
	s.state.SetMaterial("desk")
	s.meshes.DrawPlane()
}

// drawKeyboard renders the keyboard as a thin box with the photo texture
// on the top face. The photo must not stretch, so the UV scale is derived
// from the texture aspect ratio against the box footprint; the clamped
// wrap mode keeps the overflow edge from tiling.
func (s *Scene) drawKeyboard() {
	s.state.SetTexture("keyboard_texture")

	const (
		keyboardWidth  = 11.0
		keyboardDepth  = 4.5
		keyboardHeight = 0.4

		// Width/height ratio of keyboard_texture.jpg.
		textureAspect = 3.63415
	)
	scale := math.V3(keyboardWidth, keyboardHeight, keyboardDepth)
	position := math.V3(0, deskHeight+keyboardHeight/2, -0.5)

	modelAspect := float32(keyboardWidth / keyboardDepth)
	uvU, uvV := float32(1), float32(1)
	if modelAspect > textureAspect {
		uvU = modelAspect / textureAspect
	} else {
		uvV = textureAspect / modelAspect
	}

	s.state.SetUVScale(uvU, uvV)
	s.state.SetTransform(scale, 0, 0, 0, position)

	s.meshes.DrawBoxSide(mesh.BoxTop)
	s.meshes.DrawBoxSide(mesh.BoxBack)
	s.meshes.DrawBoxSide(mesh.BoxBottom)
	s.meshes.DrawBoxSide(mesh.BoxLeft)
	s.meshes.DrawBoxSide(mesh.BoxRight)
	s.meshes.DrawBoxSide(mesh.BoxFront)
}

// drawMouse renders the mouse as a squashed sphere to the right of the
// keyboard.
func (s *Scene) drawMouse() {
	s.state.SetTexture("mouse_texture")

	scale := math.V3(1.25, 0.2, 2.0)
	position := math.V3(8, deskHeight+scale.Y/2, -1)
	s.state.SetTransform(scale, 0, 0, 0, position)
	s.meshes.DrawSphere()
}
