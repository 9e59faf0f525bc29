// Package scene composes the desk still life: it binds transform,
// appearance, and lighting state into the shader and sequences the
// per-object draw calls for one frame.
package scene

import (
	"go.uber.org/zap"

	"github.com/Faultbox/deskscene/internal/engine/material"
	"github.com/Faultbox/deskscene/internal/engine/shader"
	"github.com/Faultbox/deskscene/internal/engine/texture"
	"github.com/Faultbox/deskscene/internal/logger"
	"github.com/Faultbox/deskscene/pkg/math"
)

// Shader uniform names shared with the embedded GLSL sources.
const (
	uniformModel       = "model"
	uniformColor       = "objectColor"
	uniformTexture     = "objectTexture"
	uniformUseTexture  = "bUseTexture"
	uniformUVScale     = "UVscale"
	uniformMatDiffuse  = "material.diffuseColor"
	uniformMatSpecular = "material.specularColor"
	uniformMatShine    = "material.shininess"
)

// State is the shared render state every draw call mutates: the uniform
// sink plus the texture and material registries. There is exactly one
// thread of execution, so the contract is simply "set state, then draw".
type State struct {
	uniforms  shader.Uniforms
	textures  *texture.Registry
	materials *material.Registry
}

// NewState creates the binder over the given sink and registries.
func NewState(u shader.Uniforms, tex *texture.Registry, mats *material.Registry) *State {
	return &State{uniforms: u, textures: tex, materials: mats}
}

// SetTransform composes and uploads the model matrix:
// Translate * RotateZ * RotateY * RotateX * Scale, angles in degrees.
// The rotation order is fixed; changing it changes the rendered scene.
func (s *State) SetTransform(scale math.Vec3, rotXDeg, rotYDeg, rotZDeg float32, position math.Vec3) {
	model := math.TranslateVec3(position).
		Mul(math.RotateZ(math.Radians(rotZDeg))).
		Mul(math.RotateY(math.Radians(rotYDeg))).
		Mul(math.RotateX(math.Radians(rotXDeg))).
		Mul(math.ScaleVec3(scale))
	s.uniforms.SetMat4Value(uniformModel, model)
}

// SetColor disables texture sampling and uploads a flat RGBA color.
func (s *State) SetColor(r, g, b, a float32) {
	s.uniforms.SetBoolValue(uniformUseTexture, false)
	s.uniforms.SetVec4Value(uniformColor, r, g, b, a)
}

// SetTexture enables texture sampling and binds tag's texture unit,
// uploading the slot index (not the GL handle) as the sampler value.
// An unknown tag is logged and leaves the previous binding in place;
// texture sampling stays enabled.
func (s *State) SetTexture(tag string) {
	s.uniforms.SetBoolValue(uniformUseTexture, true)

	slot, ok := s.textures.Activate(tag)
	if !ok {
		logger.Warn("texture tag not found", zap.String("tag", tag))
		return
	}
	s.uniforms.SetIntValue(uniformTexture, slot)
}

// SetUVScale uploads the texture coordinate tiling multiplier.
func (s *State) SetUVScale(u, v float32) {
	s.uniforms.SetVec2Value(uniformUVScale, u, v)
}

// SetMaterial resolves tag and uploads its lighting response values.
// A miss leaves the previously uploaded material in effect.
func (s *State) SetMaterial(tag string) {
	m, ok := s.materials.Resolve(tag)
	if !ok {
		logger.Debug("material tag not found", zap.String("tag", tag))
		return
	}
	s.uniforms.SetVec3Value(uniformMatDiffuse, m.DiffuseColor.X, m.DiffuseColor.Y, m.DiffuseColor.Z)
	s.uniforms.SetVec3Value(uniformMatSpecular, m.SpecularColor.X, m.SpecularColor.Y, m.SpecularColor.Z)
	s.uniforms.SetFloatValue(uniformMatShine, m.Shininess)
}
