package spline

// CubicPoint evaluates the cubic Bézier with control points p0, p1, p2 and p3
// at t. t is clamped to [0, 1].
func CubicPoint[V Vector[V]](p0, p1, p2, p3 V, t float64) V {
	t = clamp01(t)
	mt := 1.0 - t
	a := p0.Mul(mt * mt * mt)
	b := p1.Mul(3.0 * mt * mt * t)
	c := p2.Mul(3.0 * mt * t * t)
	d := p3.Mul(t * t * t)
	return a.Add(b).Add(c).Add(d)
}

// CubicTangent returns the first derivative of the cubic Bézier with control
// points p0, p1, p2 and p3 at t. t is clamped to [0, 1].
//
// The result is not normalized. Its magnitude is the speed at which the curve
// is traversed at t.
func CubicTangent[V Vector[V]](p0, p1, p2, p3 V, t float64) V {
	t = clamp01(t)
	mt := 1.0 - t
	a := p1.Sub(p0).Mul(3.0 * mt * mt)
	b := p2.Sub(p1).Mul(6.0 * mt * t)
	c := p3.Sub(p2).Mul(3.0 * t * t)
	return a.Add(b).Add(c)
}

// Cubic is a single cubic Bézier segment. P0 and P3 are the end points, P1 and
// P2 the inner control points.
type Cubic[V Vector[V]] struct {
	P0 V
	P1 V
	P2 V
	P3 V
}

// Eval returns the point at t ∈ [0, 1].
func (c Cubic[V]) Eval(t float64) V {
	return CubicPoint(c.P0, c.P1, c.P2, c.P3, t)
}

// Deriv returns the first derivative at t ∈ [0, 1].
func (c Cubic[V]) Deriv(t float64) V {
	return CubicTangent(c.P0, c.P1, c.P2, c.P3, t)
}

// Speed returns the magnitude of the first derivative at t. It is the
// integrand of the segment's arc length.
func (c Cubic[V]) Speed(t float64) float64 {
	return c.Deriv(t).Hypot()
}

// Arclen returns the arc length of the segment between t0 and t1, computed
// with the composite Simpson rule using the given number of subintervals. See
// [Simpson].
func (c Cubic[V]) Arclen(t0, t1 float64, resolution int) float64 {
	return Simpson(c.Speed, t0, t1, resolution)
}

// Subdivide splits the segment at t using de Casteljau's algorithm. The two
// halves trace exactly the same curve as c.
func (c Cubic[V]) Subdivide(t float64) (Cubic[V], Cubic[V]) {
	t = clamp01(t)
	p01 := lerp(c.P0, c.P1, t)
	p12 := lerp(c.P1, c.P2, t)
	p23 := lerp(c.P2, c.P3, t)
	p012 := lerp(p01, p12, t)
	p123 := lerp(p12, p23, t)
	pm := lerp(p012, p123, t)
	return Cubic[V]{c.P0, p01, p012, pm},
		Cubic[V]{pm, p123, p23, c.P3}
}

func (c Cubic[V]) Start() V {
	return c.P0
}

func (c Cubic[V]) End() V {
	return c.P3
}

func lerp[V Vector[V]](a, b V, t float64) V {
	// a + t * (b-a)
	return a.Add(b.Sub(a).Mul(t))
}

// clamp01 clamps t to [0, 1], mapping NaN to 0.
func clamp01(t float64) float64 {
	if !(t > 0) {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
