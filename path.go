package spline

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

// ErrSpanTooLong is returned by [Path.ApproxArclen] when the two parameters
// resolve to segments that are neither identical nor adjacent.
var ErrSpanTooLong = errors.New("spline: span covers more than two segments")

// Parameterization selects how a path's global parameter is distributed over
// its segments.
type Parameterization uint8

const (
	// ArcLength gives every segment a share of [0, 1] proportional to its
	// arc length, so that equal parameter steps cover (approximately) equal
	// distances along the whole path.
	ArcLength Parameterization = iota
	// Uniform gives every segment an equal share of [0, 1], regardless of
	// its length.
	Uniform
)

func (p Parameterization) String() string {
	switch p {
	case ArcLength:
		return "ArcLength"
	case Uniform:
		return "Uniform"
	default:
		return fmt.Sprintf("Parameterization(%d)", uint8(p))
	}
}

// Location is a global path parameter resolved to a segment. The segment runs
// from control point Segment to control point Next, and T is the parameter
// local to that segment.
type Location struct {
	Segment int
	Next    int
	T       float64
}

// Path is a spline of cubic Bézier segments joining consecutive control
// points. Segment i starts at the anchor of point i, is shaped by its
// HandleOut and the HandleIn of point i+1, and ends at the anchor of point
// i+1. A looping path has an additional segment from the last point back to
// the first.
//
// Paths are evaluated with a global parameter t ∈ [0, 1]. Under the default
// [ArcLength] parameterization, t is mapped to segments in proportion to
// their cached arc lengths, which approximates constant-speed traversal.
// Every edit invalidates the cache and it is recomputed before the next query
// that depends on it.
//
// Evaluating a path requires at least two control points; evaluation methods
// panic otherwise.
//
// Paths are not safe for concurrent use. Because queries may recompute the
// length cache, even concurrent reads must be synchronized. Use [Path.Clone]
// to hand independent snapshots to other goroutines.
type Path[V Vector[V]] struct {
	points  []ControlPoint[V]
	lengths []float64
	total   float64
	dirty   bool

	loop  bool
	param Parameterization
	cfg   SolverConfig
}

// New returns a path through the given control points. The points are copied.
func New[V Vector[V]](points ...ControlPoint[V]) *Path[V] {
	p := &Path[V]{
		points: make([]ControlPoint[V], len(points)),
		dirty:  true,
	}
	for i, cp := range points {
		p.points[i] = cp.Clone()
	}
	return p
}

// Reset replaces all control points with the default path: a straight line
// from -x to +x, where x is V's unit vector along the first axis. Both points
// are mirrored and their handles are spaced so that the segment is traversed
// at uniform speed. The path is opened and its parameterization and solver
// configuration revert to their defaults.
func (p *Path[V]) Reset() {
	var zero V
	x := zero.UnitX()
	h := x.Mul(2.0 / 3.0)
	a0 := x.Mul(-1)
	a1 := x.Clone()
	*p = Path[V]{
		points: []ControlPoint[V]{
			{HandleIn: a0.Sub(h), Anchor: a0, HandleOut: a0.Add(h), Mode: Mirrored},
			{HandleIn: a1.Sub(h), Anchor: a1, HandleOut: a1.Add(h), Mode: Mirrored},
		},
		dirty: true,
	}
	p.points[0].align(HandleIn)
	p.points[1].align(HandleIn)
}

// Clone returns a deep copy of the path, with its own control points and a
// freshly computed length cache.
func (p *Path[V]) Clone() *Path[V] {
	c := New(p.points...)
	c.loop = p.loop
	c.param = p.param
	c.cfg = p.cfg
	c.ensure()
	return c
}

// Len returns the number of control points.
func (p *Path[V]) Len() int {
	return len(p.points)
}

// SegmentCount returns the number of segments.
func (p *Path[V]) SegmentCount() int {
	n := len(p.points)
	switch {
	case n < 2:
		return 0
	case p.loop:
		return n
	default:
		return n - 1
	}
}

// Loop reports whether the path is closed by a segment from its last point
// back to its first.
func (p *Path[V]) Loop() bool {
	return p.loop
}

// SetLoop opens or closes the path.
func (p *Path[V]) SetLoop(loop bool) {
	if p.loop != loop {
		p.loop = loop
		p.invalidate()
	}
}

// Parameterization returns how global parameters are distributed over the
// segments.
func (p *Path[V]) Parameterization() Parameterization {
	return p.param
}

// SetParameterization changes how global parameters are distributed over the
// segments. This moves every point returned by [Path.Eval] except the ends.
func (p *Path[V]) SetParameterization(param Parameterization) {
	if p.param != param {
		p.param = param
		p.invalidate()
	}
}

// SolverConfig returns the numerical parameters in use. Zero fields stand for
// the defaults.
func (p *Path[V]) SolverConfig() SolverConfig {
	return p.cfg
}

// SetSolverConfig changes the numerical parameters used for integration and
// arc length inversion.
func (p *Path[V]) SetSolverConfig(cfg SolverConfig) {
	p.cfg = cfg
	p.invalidate()
}

// Point returns a copy of the control point at index i. It returns false if i
// is out of range.
func (p *Path[V]) Point(i int) (ControlPoint[V], bool) {
	if !p.valid(i) {
		return ControlPoint[V]{}, false
	}
	return p.points[i].Clone(), true
}

// ControlPoint returns a copy of the anchor or handle h of the control point
// at index i. It returns false if i is out of range.
func (p *Path[V]) ControlPoint(i int, h Handle) (V, bool) {
	if !p.valid(i) {
		return *new(V), false
	}
	return p.points[i].Get(h).Clone(), true
}

// Points returns an iterator over copies of the path's control points.
func (p *Path[V]) Points() iter.Seq2[int, ControlPoint[V]] {
	return func(yield func(int, ControlPoint[V]) bool) {
		for i, cp := range p.points {
			if !yield(i, cp.Clone()) {
				return
			}
		}
	}
}

// Mode returns the handle mode of the control point at index i.
func (p *Path[V]) Mode(i int) (HandleMode, bool) {
	if !p.valid(i) {
		return Free, false
	}
	return p.points[i].Mode, true
}

// SetMode changes the handle mode of the control point at index i and enforces
// it, keeping HandleIn in place. Out of range indices are ignored.
func (p *Path[V]) SetMode(i int, mode HandleMode) {
	if !p.valid(i) {
		return
	}
	p.points[i].Mode = mode
	p.points[i].align(HandleIn)
	p.invalidate()
}

// SetControlPoint moves the anchor or one of the handles of the control point
// at index i to v. Moving the anchor drags both handles along. Moving a
// handle enforces the point's mode on the other handle, see
// [Path.AlignHandles]. Out of range indices are ignored.
func (p *Path[V]) SetControlPoint(i int, h Handle, v V) {
	if !p.valid(i) {
		return
	}
	cp := &p.points[i]
	switch h {
	case Anchor:
		cp.moveAnchor(v)
	case HandleIn:
		cp.HandleIn = v.Clone()
		cp.align(HandleIn)
	case HandleOut:
		cp.HandleOut = v.Clone()
		cp.align(HandleOut)
	default:
		return
	}
	p.invalidate()
}

// AlignHandles enforces the handle mode of the control point at index i,
// treating moved as the handle that was just repositioned and adjusting the
// other one:
//
//   - [Free] leaves both handles alone.
//   - [Aligned] moves the other handle onto the line through moved and the
//     anchor, on the opposite side, at its previous distance from the anchor.
//   - [Mirrored] makes the other handle the reflection of moved through the
//     anchor.
//
// Passing [Anchor] as moved uses HandleIn as the reference. Out of range
// indices are ignored.
func (p *Path[V]) AlignHandles(i int, moved Handle) {
	if !p.valid(i) {
		return
	}
	p.points[i].align(moved)
	p.invalidate()
}

// AddPoint inserts a control point after index i.
//
// If i is the last point of an open path, the path is extended by a new point
// one anchor-to-anchor step beyond it. Otherwise the segment starting at i is
// split in half without changing the path's shape. The new point is mirrored.
// The handles of its neighbors shrink along their existing directions;
// mirrored neighbors are downgraded to aligned as a result.
//
// Out of range indices and paths with fewer than two points are ignored.
func (p *Path[V]) AddPoint(i int) {
	n := len(p.points)
	if n < 2 || !p.valid(i) {
		return
	}

	if i == n-1 && !p.loop {
		last, prev := p.points[n-1], p.points[n-2]
		anchor := last.Anchor.Add(last.Anchor.Sub(prev.Anchor))
		out := last.HandleOut.Sub(last.Anchor)
		p.points = append(p.points, ControlPoint[V]{
			HandleIn:  anchor.Sub(out),
			Anchor:    anchor,
			HandleOut: anchor.Add(out),
			Mode:      Mirrored,
		})
		p.invalidate()
		return
	}

	j := p.next(i)
	left, right := p.segment(i).Subdivide(0.5)
	p.points[i].HandleOut = left.P1
	p.points[j].HandleIn = right.P2
	for _, k := range [2]int{i, j} {
		if p.points[k].Mode == Mirrored {
			p.points[k].Mode = Aligned
		}
	}
	p.points = slices.Insert(p.points, i+1, ControlPoint[V]{
		HandleIn:  left.P2,
		Anchor:    left.P3,
		HandleOut: right.P1,
		Mode:      Mirrored,
	})
	p.invalidate()
}

// DeletePoint removes the control point at index i. Paths never shrink below
// two points; deleting from such a path, or with an out of range index, does
// nothing.
func (p *Path[V]) DeletePoint(i int) {
	if len(p.points) <= 2 || !p.valid(i) {
		return
	}
	p.points = slices.Delete(p.points, i, i+1)
	p.invalidate()
}

// Segment returns segment i as a standalone cubic Bézier.
func (p *Path[V]) Segment(i int) (Cubic[V], bool) {
	if i < 0 || i >= p.SegmentCount() {
		return Cubic[V]{}, false
	}
	return p.segment(i), true
}

// Segments returns an iterator over the path's segments.
func (p *Path[V]) Segments() iter.Seq2[int, Cubic[V]] {
	return func(yield func(int, Cubic[V]) bool) {
		for i := range p.SegmentCount() {
			if !yield(i, p.segment(i)) {
				return
			}
		}
	}
}

// Length returns the arc length of the whole path, or 0 if the path has fewer
// than two points.
func (p *Path[V]) Length() float64 {
	if len(p.points) < 2 {
		return 0
	}
	p.ensure()
	return p.total
}

// SegmentLengths returns the arc length of every segment.
func (p *Path[V]) SegmentLengths() []float64 {
	p.ensure()
	return slices.Clone(p.lengths)
}

// Locate resolves the global parameter t ∈ [0, 1] to a segment and a local
// parameter. t is clamped, and NaN is treated as 0.
func (p *Path[V]) Locate(t float64) Location {
	p.mustEval()
	return p.locate(t)
}

// Eval returns the point at the global parameter t ∈ [0, 1].
func (p *Path[V]) Eval(t float64) V {
	p.mustEval()
	loc := p.locate(t)
	return p.segment(loc.Segment).Eval(loc.T)
}

// Direction returns the unit tangent at the global parameter t ∈ [0, 1]. Where
// the tangent vanishes, for example at a cusp, the zero vector is returned.
func (p *Path[V]) Direction(t float64) V {
	p.mustEval()
	loc := p.locate(t)
	return p.segment(loc.Segment).Deriv(loc.T).Normalize()
}

// Samples returns an iterator over n+1 evenly spaced global parameters,
// starting at 0 and ending at 1, and the points at them.
func (p *Path[V]) Samples(n int) iter.Seq2[float64, V] {
	p.mustEval()
	n = max(n, 1)
	return func(yield func(float64, V) bool) {
		for i := range n + 1 {
			t := float64(i) / float64(n)
			if !yield(t, p.Eval(t)) {
				return
			}
		}
	}
}

// ApproxArclen returns the arc length between the global parameters t0 and t1,
// integrated directly from the segments' speeds. Both parameters must resolve
// to the same segment or to adjacent segments; otherwise it returns an error
// wrapping [ErrSpanTooLong] and callers have to split the span themselves, or
// use [Path.Arclen]. The order of t0 and t1 doesn't matter.
func (p *Path[V]) ApproxArclen(t0, t1 float64) (float64, error) {
	p.mustEval()
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	a, b := p.locate(t0), p.locate(t1)
	res := p.cfg.resolution()
	switch {
	case a.Segment == b.Segment:
		return p.segment(a.Segment).Arclen(a.T, b.T, res), nil
	case a.Next == b.Segment:
		return p.segment(a.Segment).Arclen(a.T, 1, res) +
			p.segment(b.Segment).Arclen(0, b.T, res), nil
	default:
		return 0, fmt.Errorf("%w: segments %d to %d", ErrSpanTooLong, a.Segment, b.Segment)
	}
}

// Arclen returns the arc length between the global parameters t0 and t1. Unlike
// [Path.ApproxArclen] it accepts spans of any size, using the cached lengths of
// the segments lying fully between t0 and t1.
func (p *Path[V]) Arclen(t0, t1 float64) float64 {
	p.mustEval()
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	a, b := p.locate(t0), p.locate(t1)
	res := p.cfg.resolution()
	if a.Segment == b.Segment {
		return p.segment(a.Segment).Arclen(a.T, b.T, res)
	}
	l := p.segment(a.Segment).Arclen(a.T, 1, res)
	for i := a.Segment + 1; i < b.Segment; i++ {
		l += p.lengths[i]
	}
	return l + p.segment(b.Segment).Arclen(0, b.T, res)
}

// SolveForDistance returns the global parameter at which the arc length from
// the start of the path equals distance. length is the length of the path, as
// returned by [Path.Length]; distances at or beyond it resolve to 1.
//
// The parameter is found by bisection down to a bracket of
// [SolverConfig.BisectTolerance] length units, refined with Newton's method.
// If Newton's method fails to converge, for example near a cusp where the
// path's speed drops to zero, the center of the bisection bracket is used.
// Newton's method steps along the path's speed with respect to the global
// parameter, not the local one, and its result is discarded in favor of the
// bracket's center if it is further from distance. Results can therefore
// differ slightly from a plain Newton iteration, but always stay within the
// bisection tolerance.
func (p *Path[V]) SolveForDistance(distance, length float64) float64 {
	p.mustEval()
	if distance <= 0 {
		return 0
	}
	if distance >= length {
		return 1
	}
	t, _ := solveArclen(
		func(t float64) float64 { return p.Arclen(0, t) },
		p.speed,
		distance,
		p.cfg,
	)
	return t
}

// ConstantSpeedPoint returns the point at the given distance along the path.
// See [Path.SolveForDistance].
func (p *Path[V]) ConstantSpeedPoint(distance, length float64) V {
	return p.Eval(p.SolveForDistance(distance, length))
}

// PointAtDistance is like [Path.ConstantSpeedPoint], using the path's own
// length.
func (p *Path[V]) PointAtDistance(distance float64) V {
	return p.ConstantSpeedPoint(distance, p.Length())
}

func (p *Path[V]) valid(i int) bool {
	return i >= 0 && i < len(p.points)
}

func (p *Path[V]) mustEval() {
	if len(p.points) < 2 {
		panic("spline: path needs at least two control points")
	}
}

func (p *Path[V]) invalidate() {
	p.dirty = true
}

// ensure recomputes the length cache if it's stale.
func (p *Path[V]) ensure() {
	if !p.dirty {
		return
	}
	n := p.SegmentCount()
	res := p.cfg.resolution()
	p.lengths = make([]float64, n)
	p.total = 0
	for i := range n {
		l := p.segment(i).Arclen(0, 1, res)
		p.lengths[i] = l
		p.total += l
	}
	p.dirty = false
}

func (p *Path[V]) next(i int) int {
	if i == len(p.points)-1 {
		return 0
	}
	return i + 1
}

func (p *Path[V]) segment(i int) Cubic[V] {
	a, b := p.points[i], p.points[p.next(i)]
	return Cubic[V]{a.Anchor, a.HandleOut, b.HandleIn, b.Anchor}
}

func (p *Path[V]) weight(i int) float64 {
	if p.param == Uniform {
		return 1
	}
	return p.lengths[i]
}

func (p *Path[V]) weightTotal() float64 {
	if p.param == Uniform {
		return float64(len(p.lengths))
	}
	return p.total
}

// locate maps t to a segment by walking the running sum of segment weights
// until it first reaches t times their total.
func (p *Path[V]) locate(t float64) Location {
	p.ensure()
	t = clamp01(t)
	n := len(p.lengths)
	if t == 1 {
		return Location{Segment: n - 1, Next: p.next(n - 1), T: 1}
	}
	target := t * p.weightTotal()
	acc := 0.0
	for i := range n - 1 {
		w := p.weight(i)
		if acc+w >= target {
			return p.location(i, acc, w, target)
		}
		acc += w
	}
	return p.location(n-1, acc, p.weight(n-1), target)
}

func (p *Path[V]) location(i int, acc, w, target float64) Location {
	u := 0.0
	if w > 0 {
		u = clamp01((target - acc) / w)
	}
	return Location{Segment: i, Next: p.next(i), T: u}
}

// speed returns the derivative of the arc length with respect to the global
// parameter.
func (p *Path[V]) speed(t float64) float64 {
	loc := p.locate(t)
	w := p.weight(loc.Segment)
	if w == 0 {
		return 0
	}
	return p.segment(loc.Segment).Speed(loc.T) * p.weightTotal() / w
}
