package spline

import (
	"math"
	"testing"

	"github.com/ungerik/go3d/float64/vec3"
)

func TestVec3Arithmetic(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(-4, 0.5, 2)
	diff(t, V3(-3, 2.5, 5), a.Add(b))
	diff(t, V3(5, 1.5, 1), a.Sub(b))
	diff(t, V3(2, 4, 6), a.Mul(2))
	diff(t, V3(-1, -2, -3), a.Negate())
	diff(t, 3.0, a.Dot(b))
}

func TestVec3Cross(t *testing.T) {
	x, y, z := V3(1, 0, 0), V3(0, 1, 0), V3(0, 0, 1)
	diff(t, z, x.Cross(y))
	diff(t, x, y.Cross(z))
	diff(t, y, z.Cross(x))
}

func TestVec3Length(t *testing.T) {
	v := V3(2, 3, 6)
	if h := v.Hypot(); h != 7 {
		t.Errorf("got length %v, want 7", h)
	}
	if h := v.Hypot2(); h != 49 {
		t.Errorf("got squared length %v, want 49", h)
	}
	diff(t, V3(2.0/7.0, 3.0/7.0, 6.0/7.0), v.Normalize(), approx(1e-15))
	if d := V3(1, 1, 1).Distance(V3(3, 4, 7)); d != 7 {
		t.Errorf("got distance %v, want 7", d)
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	n := V3(0, 0, 0).Normalize()
	if n.IsNaN() {
		t.Fatalf("normalizing the zero vector produced %s", n)
	}
	diff(t, V3(0, 0, 0), n)
}

func TestVec3Clone(t *testing.T) {
	a := V3(1, 2, 3)
	b := a.Clone()
	b[0] = 10
	if a[0] != 1 {
		t.Errorf("modifying clone changed original to %s", a)
	}
}

func TestVec3Go3D(t *testing.T) {
	v := V3(1, 2, 3)
	diff(t, vec3.T{1, 2, 3}, v.T())
	diff(t, V3(1, 0, 0), v.UnitX())
	x, y, z := v.Splat()
	if x != v.X() || y != v.Y() || z != v.Z() {
		t.Errorf("Splat returned (%v, %v, %v), want (%v, %v, %v)", x, y, z, v.X(), v.Y(), v.Z())
	}
	diff(t, V3(0.5, 1, 1.5), V3(0, 0, 0).Lerp(v, 0.5))
	if !v.ApproxEqual(V3(1+1e-12, 2, 3-1e-12), 1e-9) {
		t.Errorf("%s should be approximately equal to itself", v)
	}
	if v.ApproxEqual(V3(1.1, 2, 3), 1e-9) {
		t.Errorf("%s should not be approximately equal to ⟨1.1, 2, 3⟩", v)
	}
}

func TestVec3NonFinite(t *testing.T) {
	if !V3(math.NaN(), 0, 0).IsNaN() {
		t.Error("expected NaN vector")
	}
	if !V3(0, 0, math.Inf(-1)).IsInf() {
		t.Error("expected infinite vector")
	}
	if v := V3(1, 2, 3); v.IsNaN() || v.IsInf() {
		t.Errorf("%s reported as non-finite", v)
	}
}

func TestVec3String(t *testing.T) {
	diff(t, "⟨1, -2.5, 0⟩", V3(1, -2.5, 0).String())
}

func TestVec3NormalizeTiny(t *testing.T) {
	for _, v := range []Vec3{V3(2e-8, 0, 0), V3(1e-12, -1e-12, 1e-12), V3(0, 0, 5e-300)} {
		if h := v.Normalize().Hypot(); math.Abs(h-1) > 1e-12 {
			t.Errorf("%s normalized to length %v, want 1", v, h)
		}
	}
}
