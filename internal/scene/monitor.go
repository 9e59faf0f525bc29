package scene

import "github.com/Faultbox/deskscene/pkg/math"

// Monitor dimensions.
const (
	monitorWidth        = 18.0
	monitorHeight       = 12.0
	silverBezelHeight   = 2.5
	blackBezelThickness = 0.6
	blackBezelHeight    = 0.5
	screenDepth         = 0.05
)

type bezelPart struct {
	offset math.Vec3 // relative to the monitor base position
	scale  math.Vec3
	color  [4]float32
}

// monitorBezels are the frame parts around the screen, drawn in order:
// top, left, right, silver chin, then the strip between chin and screen.
var monitorBezels = []bezelPart{
	{
		offset: math.V3(0, monitorHeight-blackBezelThickness/2, 0),
		scale:  math.V3(monitorWidth, blackBezelThickness, 0.2),
		color:  [4]float32{0, 0, 0, 1},
	},
	{
		offset: math.V3(-monitorWidth/2+blackBezelThickness/2, monitorHeight/2, 0),
		scale:  math.V3(blackBezelThickness, monitorHeight, 0.2),
		color:  [4]float32{0, 0, 0, 1},
	},
	{
		offset: math.V3(monitorWidth/2-blackBezelThickness/2, monitorHeight/2, 0),
		scale:  math.V3(blackBezelThickness, monitorHeight, 0.2),
		color:  [4]float32{0, 0, 0, 1},
	},
	{
		offset: math.V3(0, silverBezelHeight/2, 0.05),
		scale:  math.V3(monitorWidth, silverBezelHeight, 0.3),
		color:  [4]float32{0.09, 0.09, 0.09, 1},
	},
	{
		offset: math.V3(0, silverBezelHeight+blackBezelHeight/2, 0),
		scale:  math.V3(monitorWidth, blackBezelHeight, 0.2),
		color:  [4]float32{0, 0, 0, 1},
	},
}

// drawMonitor renders the display panel and its stand. The panel floats
// at base height 4 above the desk; the stand connects it back down.
func (s *Scene) drawMonitor() {
	base := math.V3(0, deskHeight+4, -1)

	for _, b := range monitorBezels {
		s.state.SetColor(b.color[0], b.color[1], b.color[2], b.color[3])
		s.state.SetTransform(b.scale, 0, 0, 0, base.Add(b.offset))
		s.meshes.DrawBox()
	}

	// White screen, inset into the frame. A tiny z-offset keeps it in
	// front of the bezel strip without z-fighting.
	screenHeight := float32(monitorHeight - silverBezelHeight - blackBezelHeight - 0.6)
	s.state.SetColor(1, 1, 1, 1)
	s.state.SetTransform(
		math.V3(monitorWidth-1, screenHeight, screenDepth),
		0, 0, 0,
		base.Add(math.V3(0, silverBezelHeight+blackBezelHeight+screenHeight/2, 0.05)),
	)
	s.meshes.DrawBox()

	s.drawMonitorStand(base)
}

// drawMonitorStand renders the base plate, the tilted arm, and a small
// connection box hidden behind the panel. The arm keeps the plate's
// color; only the connection box switches to near-black.
func (s *Scene) drawMonitorStand(base math.Vec3) {
	s.state.SetTransform(math.V3(7, 0.3, 5), 0, 0, 0, math.V3(base.X, 0.15, base.Z-2))
	s.state.SetColor(0.82, 0.82, 0.82, 1)
	s.meshes.DrawBox()

	const armLength = 8.2
	s.state.SetTransform(math.V3(0.8, armLength, 0.8), 22.5, 0, 0, math.V3(base.X, 0.15, base.Z-3.6))
	s.meshes.DrawTaperedCylinder()

	s.state.SetTransform(math.V3(1.8, 0.5, 0.8), 0, 0, 0, math.V3(base.X, base.Y+3.45, base.Z-0.5))
	s.state.SetColor(0.08, 0.08, 0.08, 1)
	s.meshes.DrawBox()
}
