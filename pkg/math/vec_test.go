package math

import (
	"testing"
)

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	got := v.Length()
	want := float32(5)
	if got != want {
		t.Errorf("Vec2.Length() = %v, want %v", got, want)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Mul(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{2, 0.5, -1}
	got := a.Mul(b)
	want := Vec3{2, 1, -3}
	if got != want {
		t.Errorf("Vec3.Mul() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 0, 4}
	n := v.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	var v Vec3
	if got := v.Normalize(); got != (Vec3{}) {
		t.Errorf("Vec3.Normalize() on zero vector = %v, want zero", got)
	}
}
