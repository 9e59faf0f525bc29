package scene

import (
	"path/filepath"

	"github.com/Faultbox/deskscene/internal/engine/lighting"
	"github.com/Faultbox/deskscene/internal/engine/material"
	"github.com/Faultbox/deskscene/internal/engine/mesh"
	"github.com/Faultbox/deskscene/internal/engine/shader"
	"github.com/Faultbox/deskscene/internal/engine/texture"
	"github.com/Faultbox/deskscene/pkg/math"
)

const deskHeight = 0.0

// vaseAnchor is the single anchor the whole vase assembly and the book
// stack hang off; every part position is computed from it per frame.
var vaseAnchor = math.V3(-17, 6, -5)

// Config wires the scene to its collaborators. Tests substitute
// recording fakes for all four.
type Config struct {
	Uniforms    shader.Uniforms
	Meshes      mesh.Library
	Textures    *texture.Registry
	Materials   *material.Registry
	TexturesDir string
}

// Scene owns the still-life composition: the fixed arrangement of desk,
// peripherals, monitor, teacup, vase arrangement, books, and organizer.
type Scene struct {
	state    *State
	meshes   mesh.Library
	textures *texture.Registry
	lights   *lighting.Bank
	uniforms shader.Uniforms
	dir      string
}

// New creates the scene. Call Prepare once before the first frame.
func New(cfg Config) *Scene {
	return &Scene{
		state:    NewState(cfg.Uniforms, cfg.Textures, cfg.Materials),
		meshes:   cfg.Meshes,
		textures: cfg.Textures,
		lights:   lighting.DeskSceneLights(),
		uniforms: cfg.Uniforms,
		dir:      cfg.TexturesDir,
	}
}

// sceneMaterials is every material the composition references.
var sceneMaterials = []struct {
	tag       string
	diffuse   math.Vec3
	specular  math.Vec3
	shininess float32
}{
	{"plastic", math.V3(0.1, 0.1, 0.1), math.V3(0.2, 0.2, 0.2), 32},
	{"silver", math.V3(0.75, 0.75, 0.75), math.V3(0.9, 0.9, 0.9), 128},
	{"glass", math.V3(0.1, 0.1, 0.2), math.V3(0.9, 0.9, 0.9), 256},
	{"brown_stem", math.V3(0.45, 0.35, 0.25), math.V3(0.2, 0.2, 0.2), 16},
	{"green_stem", math.V3(0.15, 0.4, 0.2), math.V3(0.2, 0.2, 0.2), 16},
	{"beige_puff", math.V3(0.93, 0.86, 0.76), math.V3(0.2, 0.2, 0.2), 4},
	{"white_flower", math.V3(1, 1, 1), math.V3(0.2, 0.2, 0.2), 8},
	{"desk", math.V3(0.6, 0.4, 0.2), math.V3(0.3, 0.3, 0.3), 32},
	{"organizer", math.V3(0.8, 0.8, 0.8), math.V3(0.3, 0.3, 0.3), 32},
	{"teacup", math.V3(0.95, 0.9, 0.85), math.V3(0.6, 0.6, 0.6), 64},
	{"saucer", math.V3(0.95, 0.9, 0.85), math.V3(0.6, 0.6, 0.6), 64},
	{"gray_book", math.V3(0.5, 0.5, 0.5), math.V3(0.1, 0.1, 0.1), 8},
	{"black_book", math.V3(0.1, 0.1, 0.1), math.V3(0.1, 0.1, 0.1), 8},
	{"light_blue_book", math.V3(0.4, 0.6, 0.8), math.V3(0.2, 0.2, 0.2), 8},
}

// sceneTextures is every texture file the composition samples. The
// keyboard and mouse photos must not tile, hence the clamp.
var sceneTextures = []struct {
	file string
	tag  string
	wrap texture.Wrap
}{
	{"glass.jpg", "glass", texture.WrapRepeat},
	{"green_stem.jpg", "green_stem", texture.WrapRepeat},
	{"white_flower.png", "white_flower", texture.WrapRepeat},
	{"beige_puff.jpg", "beige_puff", texture.WrapRepeat},
	{"wood.jpg", "wood", texture.WrapRepeat},
	{"desk.jpg", "desk", texture.WrapRepeat},
	{"wet_glass.jpg", "vase_opening_side", texture.WrapRepeat},
	{"keyboard_texture.jpg", "keyboard_texture", texture.WrapClampToEdge},
	{"mouse_texture.jpg", "mouse_texture", texture.WrapClampToEdge},
}

// Prepare defines the materials, uploads the lights, loads and binds the
// textures, and uploads the primitive meshes. Texture load failures are
// logged by the registry and degrade to untextured draws.
func (s *Scene) Prepare() {
	for _, m := range sceneMaterials {
		s.state.materials.Define(m.tag, m.diffuse, m.specular, m.shininess)
	}

	s.lights.Apply(s.uniforms)

	for _, t := range sceneTextures {
		s.textures.Load(filepath.Join(s.dir, t.file), t.tag, t.wrap, t.wrap)
	}
	s.textures.BindAll()

	s.meshes.LoadPlane()
	s.meshes.LoadCylinder()
	s.meshes.LoadTaperedCylinder()
	s.meshes.LoadTorus()
	s.meshes.LoadSphere()
	s.meshes.LoadBox()
}

// RenderFrame draws the whole composition. The order is fixed: later
// objects rely on earlier ones for depth layering, and several use
// small manual z-offsets instead of depth bias to avoid z-fighting.
func (s *Scene) RenderFrame() {
	s.drawDesk()

	s.drawKeyboard()
	s.drawMouse()

	s.drawTeacup()
	s.drawSaucer()

	s.drawMonitor()

	s.drawVaseBase(vaseAnchor)
	s.drawVaseNeck(vaseAnchor)
	s.drawVaseOpening(vaseAnchor)
	s.drawVaseRim(vaseAnchor)
	s.drawBrownStems(vaseAnchor)
	s.drawBeigePuffs(vaseAnchor)
	s.drawGreenBranches(vaseAnchor)
	s.drawWhiteFlowers(vaseAnchor)

	s.drawBookStack(vaseAnchor)

	s.drawOrganizer()
}

// Destroy frees the GPU-side texture resources.
func (s *Scene) Destroy() {
	s.textures.Destroy()
}
