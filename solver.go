package spline

import "math"

const (
	// DefaultResolution is the number of Simpson subintervals used per
	// integral.
	DefaultResolution = 16
	// DefaultBisectTolerance is the arc length, in the path's own units, that
	// the bisection phase narrows its bracket to. It is absolute: it is not
	// scaled to the size of the path.
	DefaultBisectTolerance = 0.1
	// DefaultNewtonSteps caps the number of Newton refinement steps.
	DefaultNewtonSteps = 16
	// DefaultNewtonTolerance is the parameter step below which Newton's
	// method is considered converged.
	DefaultNewtonTolerance = 0.01

	// maxBisections bounds the bisection phase independently of the
	// tolerance. After this many halvings the bracket is below float64
	// resolution and further steps cannot narrow it.
	maxBisections = 64
)

// SolverConfig controls the numerical integration and arc length inversion of
// a [Path]. The zero value uses the defaults. Changing any field changes the
// points the path produces.
type SolverConfig struct {
	// Resolution is the number of Simpson subintervals. Odd values are
	// rounded up.
	Resolution int
	// BisectTolerance is the absolute arc length bracket at which bisection
	// hands over to Newton's method.
	BisectTolerance float64
	// NewtonSteps is the maximum number of Newton iterations.
	NewtonSteps int
	// NewtonTolerance is the parameter step that counts as convergence.
	NewtonTolerance float64
}

func (cfg SolverConfig) resolution() int {
	if cfg.Resolution <= 0 {
		return DefaultResolution
	}
	return cfg.Resolution
}

func (cfg SolverConfig) bisectTolerance() float64 {
	if cfg.BisectTolerance <= 0 {
		return DefaultBisectTolerance
	}
	return cfg.BisectTolerance
}

func (cfg SolverConfig) newtonSteps() int {
	if cfg.NewtonSteps <= 0 {
		return DefaultNewtonSteps
	}
	return cfg.NewtonSteps
}

func (cfg SolverConfig) newtonTolerance() float64 {
	if cfg.NewtonTolerance <= 0 {
		return DefaultNewtonTolerance
	}
	return cfg.NewtonTolerance
}

// Simpson integrates f over [a, b] with the composite Simpson rule using n
// equal subintervals. n is rounded up to the next even number; n ≤ 0 uses
// [DefaultResolution]. If b < a, the result is negative.
func Simpson(f func(float64) float64, a, b float64, n int) float64 {
	if n <= 0 {
		n = DefaultResolution
	}
	if n%2 != 0 {
		n++
	}
	if a == b {
		return 0
	}
	h := (b - a) / float64(n)
	odd, even := 0.0, 0.0
	for i := 1; i < n; i++ {
		x := a + float64(i)*h
		if i%2 == 1 {
			odd += f(x)
		} else {
			even += f(x)
		}
	}
	return h / 3.0 * (f(a) + f(b) + 4.0*odd + 2.0*even)
}

// solveArclen finds t ∈ [0, 1] with arclen(t) = target. arclen must be
// monotonically non-decreasing, with derivative speed.
//
// The bracket [0, 1] is bisected until the arc lengths at its ends differ by
// at most the bisection tolerance. Newton's method then refines the midpoint
// of the bracket. If Newton's method doesn't converge within the configured
// number of steps, or converges to a parameter whose arc length is further
// from target than the midpoint's, the midpoint is returned instead. This
// bounds the error by the bisection tolerance. The second return value
// reports whether the refined parameter was used.
func solveArclen(
	arclen func(t float64) float64,
	speed func(t float64) float64,
	target float64,
	cfg SolverConfig,
) (float64, bool) {
	tol := cfg.bisectTolerance()
	tMin, tMax := 0.0, 1.0
	aMin, aMax := arclen(tMin), arclen(tMax)
	for range maxBisections {
		if aMax-aMin <= tol {
			break
		}
		tMid := 0.5 * (tMin + tMax)
		aMid := arclen(tMid)
		if aMid < target {
			tMin, aMin = tMid, aMid
		} else {
			tMax, aMax = tMid, aMid
		}
	}
	mid := 0.5 * (tMin + tMax)

	eps := cfg.newtonTolerance()
	t := mid
	for range cfg.newtonSteps() {
		d := speed(t)
		if d == 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			break
		}
		next := t - (arclen(t)-target)/d
		if math.IsNaN(next) {
			break
		}
		next = clamp01(next)
		if math.Abs(next-t) <= eps {
			if math.Abs(arclen(next)-target) > math.Abs(arclen(mid)-target) {
				// converged, but to something worse than the bracket
				break
			}
			return next, true
		}
		t = next
	}
	return mid, false
}
