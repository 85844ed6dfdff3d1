// Package spline provides cubic Bézier spline paths that are traversed at
// constant speed. It was designed to serve path-following and animation
// systems, as well as the interactive editors that shape their paths.
//
// # Paths and control points
//
// A [Path] is an ordered list of [ControlPoint] values. Each control point
// consists of an anchor, which lies on the path, and two handles: HandleIn
// shapes the segment arriving at the anchor and HandleOut shapes the segment
// leaving it. Consecutive control points are joined by cubic Bézier segments
// ([Cubic]), and a path can optionally be closed by a segment from its last
// point back to its first (see [Path.SetLoop]).
//
// The two handles of a control point are coupled according to its
// [HandleMode]: [Free] handles move independently, [Aligned] handles stay on
// opposite sides of the anchor on a common line, and [Mirrored] handles are
// reflections of each other through the anchor. Moving a handle with
// [Path.SetControlPoint] enforces the mode on the other handle, and moving an
// anchor drags both handles along.
//
// # Vectors
//
// Paths are generic over their vector type, which only has to implement the
// small set of operations described by [Vector]. This allows paths to operate
// directly on the vector type of a host application. The package provides
// [Vec3], a three-dimensional vector that shares its representation with
// go3d's vec3.T.
//
// # Constant-speed traversal
//
// The natural parameter of a cubic Bézier does not advance at constant speed,
// and segments of a path generally differ in length. Evaluating a path
// segment by segment at equal parameter steps thus produces points that
// bunch up in some places and spread out in others.
//
// Paths avoid this by caching the arc length of every segment and
// distributing the global parameter t ∈ [0, 1] over segments in proportion to
// their lengths ([ArcLength] parameterization). Equal steps of t then cover
// approximately equal distances across the whole path. The cache is
// invalidated by every edit and recomputed before the next query that needs
// it. [Uniform] parameterization, which gives every segment an equal share of
// t, is available for compatibility.
//
// Within a segment, the mapping is still only approximate. For exact
// positioning by distance, [Path.PointAtDistance] and [Path.SolveForDistance]
// invert the arc length function numerically: the parameter is first
// bracketed by bisection to within [DefaultBisectTolerance] length units and
// then refined with Newton's method. Because Newton's method may fail to
// converge where the path's speed approaches zero, such as at cusps, the
// center of the bisection bracket is used as a fallback. Both phases are
// bounded, so the solver always terminates.
//
// Arc lengths are computed with the composite Simpson rule ([Simpson]),
// integrating the magnitude of the segments' first derivatives.
//
// # Concurrency
//
// Paths are not safe for concurrent use. Queries may update the length cache,
// so even concurrent reads have to be synchronized. [Path.Clone] produces
// fully independent copies that can be handed to other goroutines.
//
// # Literature
//
//   - [A Primer on Bézier Curves]
//   - [Curves and Splines] by Jasper Flick
//   - [Simpson's rule]
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [Curves and Splines]: https://catlikecoding.com/unity/tutorials/curves-and-splines/
// [Simpson's rule]: https://en.wikipedia.org/wiki/Simpson%27s_rule
package spline
