package spline

import (
	"fmt"
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

var _ Vector[Vec3] = Vec3{}

// Vec3 is a three-dimensional vector. It shares its representation with go3d's
// vec3.T and delegates its arithmetic to that package, so values can be
// converted freely between the two types.
type Vec3 vec3.T

// V3 returns the vector ⟨x, y, z⟩.
func V3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// X returns the vector's x coordinate.
func (v Vec3) X() float64 { return v[0] }

// Y returns the vector's y coordinate.
func (v Vec3) Y() float64 { return v[1] }

// Z returns the vector's z coordinate.
func (v Vec3) Z() float64 { return v[2] }

// Splat returns the vector's x, y and z coordinates.
func (v Vec3) Splat() (float64, float64, float64) {
	return v[0], v[1], v[2]
}

func (v Vec3) String() string {
	return fmt.Sprintf("⟨%g, %g, %g⟩", v[0], v[1], v[2])
}

// T returns the vector as a go3d vector.
func (v Vec3) T() vec3.T {
	return vec3.T(v)
}

// Add adds two vectors and returns the resulting vector.
func (v Vec3) Add(o Vec3) Vec3 {
	a, b := vec3.T(v), vec3.T(o)
	return Vec3(a.Added(&b))
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vec3) Sub(o Vec3) Vec3 {
	a, b := vec3.T(v), vec3.T(o)
	return Vec3(a.Subed(&b))
}

func (v Vec3) Mul(f float64) Vec3 {
	a := vec3.T(v)
	return Vec3(a.Scaled(f))
}

// Negate returns a new vector with the signs of all components flipped.
func (v Vec3) Negate() Vec3 {
	a := vec3.T(v)
	return Vec3(a.Inverted())
}

// Hypot returns the magnitude of the vector.
func (v Vec3) Hypot() float64 {
	a := vec3.T(v)
	return a.Length()
}

// Hypot2 returns the squared magnitude of the vector.
func (v Vec3) Hypot2() float64 {
	a := vec3.T(v)
	return a.LengthSqr()
}

// Normalize returns a vector of magnitude 1.0 with the same direction as v.
// The zero vector is returned unchanged instead of turning into NaNs. Tiny
// vectors are still normalized.
func (v Vec3) Normalize() Vec3 {
	h := v.Hypot()
	if h == 0 {
		return v
	}
	return v.Mul(1 / h)
}

// Clone returns a copy of v. Vec3 is a value type, so this is the identity; it
// exists to satisfy [Vector].
func (v Vec3) Clone() Vec3 {
	return v
}

// UnitX returns ⟨1, 0, 0⟩.
func (Vec3) UnitX() Vec3 {
	return Vec3(vec3.UnitX)
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 {
	a, b := vec3.T(v), vec3.T(o)
	return vec3.Dot(&a, &b)
}

// Cross returns the cross product of v and o.
func (v Vec3) Cross(o Vec3) Vec3 {
	a, b := vec3.T(v), vec3.T(o)
	return Vec3(vec3.Cross(&a, &b))
}

// Lerp linearly interpolates between two vectors.
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	a, b := vec3.T(v), vec3.T(o)
	return Vec3(vec3.Interpolate(&a, &b, t))
}

// Distance returns the euclidean distance between two points.
func (v Vec3) Distance(o Vec3) float64 {
	a, b := vec3.T(v), vec3.T(o)
	return vec3.Distance(&a, &b)
}

// ApproxEqual reports whether every component of v is within epsilon of the
// corresponding component of o.
func (v Vec3) ApproxEqual(o Vec3, epsilon float64) bool {
	a, b := vec3.T(v), vec3.T(o)
	return a.PracticallyEquals(&b, epsilon)
}

// IsInf reports whether at least one component is infinite.
func (v Vec3) IsInf() bool {
	return math.IsInf(v[0], 0) || math.IsInf(v[1], 0) || math.IsInf(v[2], 0)
}

// IsNaN reports whether at least one component is NaN.
func (v Vec3) IsNaN() bool {
	return math.IsNaN(v[0]) || math.IsNaN(v[1]) || math.IsNaN(v[2])
}
