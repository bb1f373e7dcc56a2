// Package geometry provides the 3D vector math used by the pose dataset and the camera projector.
package geometry

import "math"

// Epsilon is the length below which a vector has no usable direction.
const Epsilon = 1e-6

// Vec3 is a point or direction in meters. It is a value type; every operation returns a new vector.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Zero is the zero vector. Normalize returns it for directionless input.
var Zero = Vec3{}

// World axes.
var (
	UnitX = Vec3{X: 1}
	UnitY = Vec3{Y: 1}
	UnitZ = Vec3{Z: 1}
)

// Add returns a + b.
func Add(a, b Vec3) Vec3 {
	return Vec3{X: a.X + b.X, Y: a.Y + b.Y, Z: a.Z + b.Z}
}

// Sub returns a - b.
func Sub(a, b Vec3) Vec3 {
	return Vec3{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z}
}

// Scale returns v multiplied by s.
func Scale(v Vec3, s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Dot returns the dot product of a and b.
func Dot(a, b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the right-handed cross product a × b.
func Cross(a, b Vec3) Vec3 {
	return Vec3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// Length returns the Euclidean norm of v.
func Length(v Vec3) float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vec3) float64 {
	return Length(Sub(a, b))
}

// Normalize returns v scaled to unit length.
// When the length of v is at most Epsilon the zero vector is returned and the
// caller must substitute a fallback direction.
func Normalize(v Vec3) Vec3 {
	l := Length(v)
	if l <= Epsilon {
		return Zero
	}
	return Vec3{X: v.X / l, Y: v.Y / l, Z: v.Z / l}
}

// Clamp limits value to the closed range [lo, hi].
func Clamp(value, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, value))
}

// Clamp limits every component of v to [lo, hi].
func (v Vec3) Clamp(lo, hi float64) Vec3 {
	return Vec3{X: Clamp(v.X, lo, hi), Y: Clamp(v.Y, lo, hi), Z: Clamp(v.Z, lo, hi)}
}

// MirrorX negates the x component, reflecting v across the y-z plane.
func (v Vec3) MirrorX() Vec3 {
	return Vec3{X: -v.X, Y: v.Y, Z: v.Z}
}

// IsFinite reports whether every component is a finite real number.
func (v Vec3) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
