package spline

import (
	"math"
	"slices"

	"github.com/ungerik/go3d/float64/vec3"
)

// MaxExtrema is the maximum number of interior extrema a 3D cubic Bézier can
// have: up to two per coordinate.
const MaxExtrema = 6

// Extrema returns the parameters in (0, 1), in increasing order, at which one
// of the segment's coordinates has a local extremum.
func Extrema(c Cubic[Vec3]) ([MaxExtrema]float64, int) {
	var out [MaxExtrema]float64
	var outN int

	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	for axis := range 3 {
		// the derivative of one coordinate is the quadratic Bézier
		// (d0, d1, d2), in power basis c2 t² + c1 t + c0
		c2 := d0[axis] - 2*d1[axis] + d2[axis]
		c1 := 2 * (d1[axis] - d0[axis])
		c0 := d0[axis]
		roots, n := solveQuadratic(c0, c1, c2)
		for _, t := range roots[:n] {
			if t > 0.0 && t < 1.0 {
				out[outN] = t
				outN++
			}
		}
	}
	slices.Sort(out[:outN])
	return out, outN
}

// BoundingBox returns the smallest axis-aligned box enclosing the segment.
func BoundingBox(c Cubic[Vec3]) vec3.Box {
	p0, p3 := c.P0.T(), c.P3.T()
	box := vec3.Box{Min: vec3.Min(&p0, &p3), Max: vec3.Max(&p0, &p3)}
	ex, n := Extrema(c)
	for _, t := range ex[:n] {
		pt := c.Eval(t).T()
		box.Join(&vec3.Box{Min: pt, Max: pt})
	}
	return box
}

// PathBounds returns the smallest axis-aligned box enclosing the whole path.
// The path must have at least two points.
func PathBounds(p *Path[Vec3]) vec3.Box {
	p.mustEval()
	box := BoundingBox(p.segment(0))
	for i := 1; i < p.SegmentCount(); i++ {
		b := BoundingBox(p.segment(i))
		box.Join(&b)
	}
	return box
}

// solveQuadratic returns the real roots of c2 t² + c1 t + c0 = 0 in
// increasing order. If c2 is negligible next to the other coefficients, the
// equation is solved as a linear one. If all coefficients are zero, every t is
// a root and 0 stands for them.
func solveQuadratic(c0, c1, c2 float64) ([2]float64, int) {
	if math.Abs(c2) <= 1e-12*max(math.Abs(c1), math.Abs(c0)) || c2 == 0 {
		switch {
		case c1 != 0:
			return [2]float64{-c0 / c1}, 1
		case c0 == 0:
			return [2]float64{0}, 1
		default:
			return [2]float64{}, 0
		}
	}
	disc := c1*c1 - 4*c2*c0
	switch {
	case disc < 0 || math.IsNaN(disc):
		return [2]float64{}, 0
	case disc == 0:
		return [2]float64{-c1 / (2 * c2)}, 1
	}
	// q has the sign of c1, so neither root suffers from cancellation
	q := -0.5 * (c1 + math.Copysign(math.Sqrt(disc), c1))
	r1, r2 := q/c2, c0/q
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	return [2]float64{r1, r2}, 2
}
