package spline

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func approx(epsilon float64) cmp.Option {
	return cmpopts.EquateApprox(0, epsilon)
}

func assertNear(t *testing.T, got, want Vec3, epsilon float64) {
	t.Helper()
	if d := got.Distance(want); d > epsilon {
		t.Fatalf("got %s, expected %s (distance %g)", got, want, d)
	}
}

// wave is an open path with unevenly spaced control points.
func wave() *Path[Vec3] {
	return New(
		ControlPoint[Vec3]{V3(-1, 0, 0), V3(0, 0, 0), V3(1, 2, 0), Aligned},
		ControlPoint[Vec3]{V3(2, 2, 0), V3(3, 0, 0), V3(4, -2, 0), Mirrored},
		ControlPoint[Vec3]{V3(9, -1, 1), V3(10, 0, 1), V3(11, 1, 1), Free},
	)
}
