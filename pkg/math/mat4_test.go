package math

import (
	"math"
	"testing"
)

func abs(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	id := Identity()
	result := m.Mul(id)

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)

	// Translation should be in column 4 (indices 12, 13, 14)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestScale(t *testing.T) {
	m := Scale(2, 3, 4)

	if m[0] != 2 || m[5] != 3 || m[10] != 4 {
		t.Errorf("Scale diagonal: got (%f, %f, %f), want (2, 3, 4)", m[0], m[5], m[10])
	}
}

func TestTransformPoint(t *testing.T) {
	m := Translate(10, 20, 30)
	p := [3]float32{1, 2, 3}
	result := m.TransformPoint(p)

	expected := [3]float32{11, 22, 33}
	if result != expected {
		t.Errorf("TransformPoint: got %v, want %v", result, expected)
	}
}

func TestRotateY90(t *testing.T) {
	m := RotateY(float32(math.Pi / 2)) // 90 degrees
	p := [3]float32{1, 0, 0}           // Point on X axis
	result := m.TransformPoint(p)

	// After 90 degree Y rotation, (1,0,0) should become approximately (0,0,-1)
	if abs(result[0]) > 0.001 || abs(result[1]) > 0.001 || abs(result[2]+1) > 0.001 {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", result)
	}
}

func TestRadians(t *testing.T) {
	got := Radians(180)
	want := float32(math.Pi)
	if abs(got-want) > 0.0001 {
		t.Errorf("Radians(180) = %f, want %f", got, want)
	}
}

func TestDegrees(t *testing.T) {
	got := Degrees(float32(math.Pi / 2))
	if abs(got-90) > 0.0001 {
		t.Errorf("Degrees(pi/2) = %f, want 90", got)
	}
}

func TestLookAtOrigin(t *testing.T) {
	// Camera at +Z looking at origin: origin should land in front (negative view Z).
	view := LookAt(Vec3{0, 0, 10}, Vec3{}, Vec3{0, 1, 0})
	p := view.TransformPoint([3]float32{0, 0, 0})

	if abs(p[0]) > 0.001 || abs(p[1]) > 0.001 || abs(p[2]+10) > 0.001 {
		t.Errorf("LookAt origin: got %v, want (0, 0, -10)", p)
	}
}
