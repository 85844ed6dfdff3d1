package spline

import "github.com/ungerik/go3d/float64/mat4"

// Transform applies f to every anchor and handle of the path. Cubic Béziers
// are invariant under affine maps, so for affine f the resulting path is the
// image of the original one. Handle modes are not re-enforced.
func (p *Path[V]) Transform(f func(V) V) {
	for i := range p.points {
		cp := &p.points[i]
		cp.HandleIn = f(cp.HandleIn)
		cp.Anchor = f(cp.Anchor)
		cp.HandleOut = f(cp.HandleOut)
	}
	p.invalidate()
}

// Transform returns the point v transformed by the 4×4 matrix m, treating v as
// a point (w = 1) and ignoring the projective row.
func (v Vec3) Transform(m *mat4.T) Vec3 {
	a := v.T()
	return Vec3(m.MulVec3W(&a, 1))
}

// Affine returns a function transforming points by m, for use with
// [Path.Transform].
func Affine(m mat4.T) func(Vec3) Vec3 {
	return func(v Vec3) Vec3 {
		return v.Transform(&m)
	}
}
