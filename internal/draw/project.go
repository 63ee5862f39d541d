package draw

// Projector maps world coordinates onto the logical canvas with a simple
// perspective divide. World axes: x right, y up, z pointing out of the
// screen toward the camera, so the far plane sits at negative z.
type Projector struct {
	CenterX   float64 // Logical canvas center column
	CenterY   float64 // Logical canvas center sub-pixel row
	CameraZ   float64 // Camera position on the z axis
	Focal     float64 // Distance at which scale is 1.0
	UnitScale float64 // Canvas pixels per world unit at scale 1.0
}

// Scale clamps so objects sliding past the camera cannot blow up to an
// unbounded size, and objects at the far plane stay visible.
const (
	minScale = 0.15
	maxScale = 3.0
)

// NewProjector creates a projector for a logical canvas of the given size.
// The camera sits just behind the leak boundary looking down the -z axis.
func NewProjector(logicalWidth, logicalHeight float64) Projector {
	return Projector{
		CenterX:   logicalWidth / 2,
		CenterY:   logicalHeight / 2,
		CameraZ:   60,
		Focal:     60,
		UnitScale: 1.7,
	}
}

// Project converts a world position to logical canvas coordinates.
// The returned scale is the perspective factor for sizing shapes.
func (p Projector) Project(x, y, z float64) (sx, sy, scale float64) {
	depth := p.CameraZ - z
	if depth < 1 {
		depth = 1
	}
	scale = p.Focal / depth
	if scale < minScale {
		scale = minScale
	}
	if scale > maxScale {
		scale = maxScale
	}
	sx = p.CenterX + x*scale*p.UnitScale
	sy = p.CenterY - y*scale*p.UnitScale
	return sx, sy, scale
}
