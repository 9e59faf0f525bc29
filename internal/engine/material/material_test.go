package material

import (
	"testing"

	"github.com/Faultbox/deskscene/pkg/math"
)

func TestDefineAndResolve(t *testing.T) {
	r := NewRegistry()
	r.Define("glass", math.V3(0.1, 0.1, 0.2), math.V3(0.9, 0.9, 0.9), 256)

	m, ok := r.Resolve("glass")
	if !ok {
		t.Fatal("expected glass to resolve")
	}
	if m.DiffuseColor != math.V3(0.1, 0.1, 0.2) {
		t.Errorf("diffuse = %v", m.DiffuseColor)
	}
	if m.SpecularColor != math.V3(0.9, 0.9, 0.9) {
		t.Errorf("specular = %v", m.SpecularColor)
	}
	if m.Shininess != 256 {
		t.Errorf("shininess = %f, want 256", m.Shininess)
	}
}

func TestResolveUnknown(t *testing.T) {
	r := NewRegistry()
	r.Define("wood", math.V3(0.6, 0.4, 0.2), math.V3(0.3, 0.3, 0.3), 32)

	if _, ok := r.Resolve("marble"); ok {
		t.Error("unknown tag should not resolve")
	}
}

func TestDuplicateDefineShadows(t *testing.T) {
	r := NewRegistry()
	r.Define("plastic", math.V3(0.1, 0.1, 0.1), math.V3(0.2, 0.2, 0.2), 32)
	r.Define("plastic", math.V3(1, 0, 0), math.V3(1, 1, 1), 8)

	m, ok := r.Resolve("plastic")
	if !ok {
		t.Fatal("expected plastic to resolve")
	}
	// The first definition wins; the second is a dead duplicate.
	if m.DiffuseColor != math.V3(0.1, 0.1, 0.1) || m.Shininess != 32 {
		t.Errorf("duplicate define overwrote first entry: %+v", m)
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}
}

func TestNegativeShininessClamped(t *testing.T) {
	r := NewRegistry()
	r.Define("odd", math.Vec3{}, math.Vec3{}, -5)

	m, _ := r.Resolve("odd")
	if m.Shininess != 0 {
		t.Errorf("shininess = %f, want 0", m.Shininess)
	}
}
