// Package mesh provides the primitive mesh library for scene composition:
// plane, box, sphere, cylinder, tapered cylinder, and torus. Each primitive
// is loaded into GPU memory once and drawn any number of times; box and
// cylinder draws can select individual faces.
package mesh

// Library is the drawing surface the scene composer renders through.
// Load methods are one-time and idempotent; Draw methods issue one GL draw
// against whatever transform and appearance state is currently bound.
type Library interface {
	LoadPlane()
	LoadBox()
	LoadSphere()
	LoadCylinder()
	LoadTaperedCylinder()
	LoadTorus()

	DrawPlane()
	DrawBox()
	DrawBoxSide(side BoxSide)
	DrawSphere()
	// DrawCylinder renders any combination of the top cap, bottom cap,
	// and side surface.
	DrawCylinder(top, bottom, sides bool)
	DrawTaperedCylinder()
	DrawTorus()
}
