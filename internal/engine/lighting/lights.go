// Package lighting configures the scene's fixed light bank.
package lighting

import (
	"fmt"

	"github.com/Faultbox/deskscene/internal/engine/shader"
	"github.com/Faultbox/deskscene/pkg/math"
)

// MaxPointLights is the number of point light slots in the shader.
const MaxPointLights = 4

// Directional is a direction-only light source.
type Directional struct {
	Direction math.Vec3
	Ambient   math.Vec3
	Diffuse   math.Vec3
	Specular  math.Vec3
	Active    bool
}

// Point is a positioned light source with distance attenuation.
type Point struct {
	Position  math.Vec3
	Ambient   math.Vec3
	Diffuse   math.Vec3
	Specular  math.Vec3
	Constant  float32
	Linear    float32
	Quadratic float32
	Active    bool
}

// Bank is the fixed lighting arrangement: one directional light plus four
// point light slots. Inactive slots are still uploaded so the shader sees a
// fully defined array.
type Bank struct {
	Directional Directional
	Points      [MaxPointLights]Point
}

// Apply enables lighting and uploads the whole bank. Calling it again
// overwrites the same uniforms, so re-lighting the scene is just mutating
// the bank and applying it once more.
func (b *Bank) Apply(u shader.Uniforms) {
	u.SetBoolValue("bUseLighting", true)

	d := &b.Directional
	u.SetVec3Value("directionalLight.direction", d.Direction.X, d.Direction.Y, d.Direction.Z)
	u.SetVec3Value("directionalLight.ambient", d.Ambient.X, d.Ambient.Y, d.Ambient.Z)
	u.SetVec3Value("directionalLight.diffuse", d.Diffuse.X, d.Diffuse.Y, d.Diffuse.Z)
	u.SetVec3Value("directionalLight.specular", d.Specular.X, d.Specular.Y, d.Specular.Z)
	u.SetBoolValue("directionalLight.bActive", d.Active)

	for i := range b.Points {
		p := &b.Points[i]
		prefix := fmt.Sprintf("pointLights[%d].", i)
		u.SetVec3Value(prefix+"position", p.Position.X, p.Position.Y, p.Position.Z)
		u.SetVec3Value(prefix+"ambient", p.Ambient.X, p.Ambient.Y, p.Ambient.Z)
		u.SetVec3Value(prefix+"diffuse", p.Diffuse.X, p.Diffuse.Y, p.Diffuse.Z)
		u.SetVec3Value(prefix+"specular", p.Specular.X, p.Specular.Y, p.Specular.Z)
		u.SetFloatValue(prefix+"constant", p.Constant)
		u.SetFloatValue(prefix+"linear", p.Linear)
		u.SetFloatValue(prefix+"quadratic", p.Quadratic)
		u.SetBoolValue(prefix+"bActive", p.Active)
	}
}

func gray(v float32) math.Vec3 {
	return math.Vec3{X: v, Y: v, Z: v}
}

// DeskSceneLights returns the hand-tuned bank for the reference still life:
// a soft key light from the front-left plus an overhead fill and a
// front-right highlight. Slots 2 and 3 are parked inactive.
func DeskSceneLights() *Bank {
	return &Bank{
		Directional: Directional{
			Direction: math.V3(-0.5, -0.6, 0.7),
			Ambient:   gray(0.4),
			Diffuse:   gray(0.7),
			Specular:  gray(0.6),
			Active:    true,
		},
		Points: [MaxPointLights]Point{
			{
				// Overhead fill, slightly behind the desk.
				Position: math.V3(0, 12, 5),
				Ambient:  gray(0.2), Diffuse: gray(0.5), Specular: gray(0.3),
				Constant: 1.0, Linear: 0.045, Quadratic: 0.0075,
				Active: true,
			},
			{
				// Front-right highlight close to the objects.
				Position: math.V3(10, 6, -3),
				Ambient:  gray(0.1), Diffuse: gray(0.6), Specular: gray(0.8),
				Constant: 1.0, Linear: 0.09, Quadratic: 0.032,
				Active: true,
			},
			{
				Position: math.V3(-7, 8, 10),
				Ambient:  gray(0.1), Diffuse: gray(0.3), Specular: gray(0.2),
				Constant: 1.0, Linear: 0.09, Quadratic: 0.032,
				Active: false,
			},
			{
				Position: math.V3(2, 4, -5),
				Ambient:  gray(0.05), Diffuse: gray(0.2), Specular: gray(0.1),
				Constant: 1.0, Linear: 0.09, Quadratic: 0.032,
				Active: false,
			},
		},
	}
}
