// Package projection perspective-projects stick-figure poses into screen space for a
// back-to-front (painter's algorithm) renderer.
//
// Every function is a pure computation over its arguments; a Projector holds only
// immutable options and may be shared between goroutines.
package projection

import (
	"math"

	"github.com/swingtrack/swing-pose/internal/geometry"
)

// Framing defaults. The vertical center and near plane are tuned for a standing golfer
// and are kept at these exact values for visual compatibility with existing clients.
const (
	DefaultFieldOfViewDegrees = 38.0
	DefaultNearPlane          = 0.05
	DefaultVerticalCenter     = 0.58
	DefaultMajorLineEvery     = 6
	DefaultGridSize           = 6.4
	DefaultGridDivisions      = 24
)

// WorldUp is the world-space up direction used to derive the camera basis.
var WorldUp = geometry.UnitY

// Camera places the eye in world space.
type Camera struct {
	Position geometry.Vec3 `json:"position"`
	Target   geometry.Vec3 `json:"target"`
}

// DefaultCamera looks at the golfer's midsection from the front-right, slightly above.
func DefaultCamera() Camera {
	return Camera{
		Position: geometry.Vec3{X: 2.7, Y: 1.9, Z: 2.45},
		Target:   geometry.Vec3{X: 0, Y: 1.05, Z: 0.04},
	}
}

// Viewport is the output surface size in pixels.
type Viewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Empty reports whether nothing can be drawn into the viewport.
func (v Viewport) Empty() bool {
	return !(v.Width > 0 && v.Height > 0)
}

// Basis is an orthonormal camera frame.
type Basis struct {
	Position geometry.Vec3 `json:"position"`
	Forward  geometry.Vec3 `json:"forward"`
	Right    geometry.Vec3 `json:"right"`
	Up       geometry.Vec3 `json:"up"`
}

// NewBasis derives the camera frame. When the view direction is parallel to WorldUp the
// cross product vanishes and Right falls back to +X.
func NewBasis(camera Camera) Basis {
	forward := geometry.Normalize(geometry.Sub(camera.Target, camera.Position))
	right := geometry.Normalize(geometry.Cross(forward, WorldUp))
	if geometry.Length(right) <= geometry.Epsilon {
		right = geometry.UnitX
	}
	up := geometry.Normalize(geometry.Cross(right, forward))

	return Basis{
		Position: camera.Position,
		Forward:  forward,
		Right:    right,
		Up:       up,
	}
}

// ToCamera expresses a world point in camera space (x right, y up, z forward).
func (b Basis) ToCamera(p geometry.Vec3) geometry.Vec3 {
	relative := geometry.Sub(p, b.Position)
	return geometry.Vec3{
		X: geometry.Dot(relative, b.Right),
		Y: geometry.Dot(relative, b.Up),
		Z: geometry.Dot(relative, b.Forward),
	}
}

// Options are the projection constants.
type Options struct {
	FieldOfViewDegrees float64
	NearPlane          float64
	VerticalCenter     float64
	MajorLineEvery     int
	Palette            Palette
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		FieldOfViewDegrees: DefaultFieldOfViewDegrees,
		NearPlane:          DefaultNearPlane,
		VerticalCenter:     DefaultVerticalCenter,
		MajorLineEvery:     DefaultMajorLineEvery,
		Palette:            DefaultPalette(),
	}
}

// ProjectedPoint is a screen position in pixels plus its camera-space depth.
type ProjectedPoint struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Depth float64 `json:"depth"`
}

// Projector projects world points for a given set of options.
type Projector struct {
	opts Options
}

// NewProjector creates a Projector.
func NewProjector(opts Options) *Projector {
	return &Projector{opts: opts}
}

// focalLength is the pixel distance to the image plane for the vertical field of view.
func (p *Projector) focalLength(height float64) float64 {
	fov := p.opts.FieldOfViewDegrees * math.Pi / 180
	return (height * 0.5) / math.Tan(fov/2)
}

// ProjectPoint projects a world point. ok is false when the point lies behind the camera
// or within the near plane; such points must be skipped, never placed at a default position.
func (p *Projector) ProjectPoint(point geometry.Vec3, basis Basis, viewport Viewport) (ProjectedPoint, bool) {
	c := basis.ToCamera(point)
	// !(>) also drops NaN depths.
	if !(c.Z > p.opts.NearPlane) {
		return ProjectedPoint{}, false
	}

	scale := p.focalLength(viewport.Height) / c.Z
	return ProjectedPoint{
		X:     viewport.Width*0.5 + c.X*scale,
		Y:     viewport.Height*p.opts.VerticalCenter - c.Y*scale,
		Depth: c.Z,
	}, true
}
