// Package material stores named appearance bundles for scene objects.
package material

import "github.com/Faultbox/deskscene/pkg/math"

// Material is a named bundle of lighting response values.
type Material struct {
	DiffuseColor  math.Vec3
	SpecularColor math.Vec3
	Shininess     float32 // always >= 0
}

// Registry maps tags to materials. Defining a tag twice keeps the first
// definition; the duplicate shadows silently. Entries are immutable once
// defined and live for the program lifetime.
type Registry struct {
	byTag map[string]Material
}

// NewRegistry creates an empty material registry.
func NewRegistry() *Registry {
	return &Registry{byTag: make(map[string]Material)}
}

// Define registers a material under tag. The first definition of a tag
// wins; later definitions of the same tag are ignored. Negative shininess
// is clamped to zero.
func (r *Registry) Define(tag string, diffuse, specular math.Vec3, shininess float32) {
	if _, exists := r.byTag[tag]; exists {
		return
	}
	if shininess < 0 {
		shininess = 0
	}
	r.byTag[tag] = Material{
		DiffuseColor:  diffuse,
		SpecularColor: specular,
		Shininess:     shininess,
	}
}

// Resolve returns the material registered under tag.
func (r *Registry) Resolve(tag string) (Material, bool) {
	m, ok := r.byTag[tag]
	return m, ok
}

// Len returns the number of defined materials.
func (r *Registry) Len() int {
	return len(r.byTag)
}
