package systems

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

func checkOrthonormal(t *testing.T, f, r, u r3.Vec) {
	t.Helper()
	for _, v := range []r3.Vec{f, r, u} {
		if math.Abs(r3.Norm(v)-1) > 1e-9 {
			t.Fatalf("basis vector %v is not unit length", v)
		}
	}
	if math.Abs(r3.Dot(f, r)) > 1e-9 || math.Abs(r3.Dot(f, u)) > 1e-9 || math.Abs(r3.Dot(r, u)) > 1e-9 {
		t.Fatalf("basis not orthogonal: f=%v r=%v u=%v", f, r, u)
	}
	// Right-handed: right = up x forward.
	if r3.Norm(r3.Sub(r3.Cross(u, f), r)) > 1e-9 {
		t.Fatalf("basis not right-handed: f=%v r=%v u=%v", f, r, u)
	}
}

func TestSurfaceBasis(t *testing.T) {
	tests := []struct {
		name            string
		normal, forward r3.Vec
	}{
		{"floor facing x", r3.Vec{Z: 1}, r3.Vec{X: 1}},
		{"floor facing diagonal", r3.Vec{Z: 1}, r3.Vec{X: 1, Y: 1}},
		{"wall facing up", r3.Vec{X: 1}, r3.Vec{Z: 1}},
		{"ceiling facing y", r3.Vec{Z: -1}, r3.Vec{Y: 1}},
		{"unnormalized normal", r3.Vec{Z: 5}, r3.Vec{X: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, r, u := SurfaceBasis(tt.normal, tt.forward)
			checkOrthonormal(t, f, r, u)

			wantU, _ := safeUnit(tt.normal)
			if r3.Norm(r3.Sub(u, wantU)) > 1e-9 {
				t.Errorf("up = %v, want %v", u, wantU)
			}
		})
	}
}

func TestSurfaceBasisParallelForward(t *testing.T) {
	// Forward parallel to the normal is degenerate; the basis must still
	// come out orthonormal with the normal as up.
	tests := []struct {
		name            string
		normal, forward r3.Vec
	}{
		{"vertical", r3.Vec{Z: 1}, r3.Vec{Z: 1}},
		{"vertical opposed", r3.Vec{Z: 1}, r3.Vec{Z: -1}},
		{"horizontal", r3.Vec{X: 1}, r3.Vec{X: 1}},
		{"zero forward", r3.Vec{Z: 1}, r3.Vec{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, r, u := SurfaceBasis(tt.normal, tt.forward)
			checkOrthonormal(t, f, r, u)
		})
	}
}

func TestSurfaceBasisZeroNormal(t *testing.T) {
	f, r, u := SurfaceBasis(r3.Vec{}, r3.Vec{X: 1})
	checkOrthonormal(t, f, r, u)
	if r3.Norm(r3.Sub(u, worldUp)) > 1e-9 {
		t.Errorf("zero normal should fall back to world up, got %v", u)
	}
}

func TestQuatFromBasisRoundtrip(t *testing.T) {
	tests := []struct {
		name            string
		normal, forward r3.Vec
	}{
		{"identity", r3.Vec{Z: 1}, r3.Vec{X: 1}},
		{"yawed", r3.Vec{Z: 1}, r3.Vec{X: 1, Y: 1}},
		{"on wall", r3.Vec{X: -1}, r3.Vec{Z: 1}},
		{"on ceiling", r3.Vec{Z: -1}, r3.Vec{X: 1}},
		{"tilted", r3.Vec{X: 1, Z: 1}, r3.Vec{X: 1, Z: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, r, u := SurfaceBasis(tt.normal, tt.forward)
			q := QuatFromBasis(f, r, u)

			if r3.Norm(r3.Sub(Forward(q), f)) > 1e-9 {
				t.Errorf("Forward(q) = %v, want %v", Forward(q), f)
			}
			if r3.Norm(r3.Sub(Right(q), r)) > 1e-9 {
				t.Errorf("Right(q) = %v, want %v", Right(q), r)
			}
			if r3.Norm(r3.Sub(Up(q), u)) > 1e-9 {
				t.Errorf("Up(q) = %v, want %v", Up(q), u)
			}
		})
	}
}

func TestQuatFromBasisIdentity(t *testing.T) {
	q := QuatFromBasis(r3.Vec{X: 1}, r3.Vec{Y: 1}, r3.Vec{Z: 1})
	want := quat.Number{Real: 1}
	if math.Abs(q.Real-want.Real) > 1e-9 || math.Abs(q.Imag) > 1e-9 ||
		math.Abs(q.Jmag) > 1e-9 || math.Abs(q.Kmag) > 1e-9 {
		t.Errorf("identity basis quaternion = %+v, want identity", q)
	}
}

func quatNorm(q quat.Number) float64 {
	return math.Sqrt(q.Real*q.Real + q.Imag*q.Imag + q.Jmag*q.Jmag + q.Kmag*q.Kmag)
}

func TestSlerpEndpoints(t *testing.T) {
	a := quat.Number{Real: 1}
	fb, rb, ub := SurfaceBasis(r3.Vec{X: 1}, r3.Vec{Z: 1})
	b := QuatFromBasis(fb, rb, ub)

	if got := Slerp(a, b, 0); got != a {
		t.Errorf("Slerp(a, b, 0) = %+v, want a", got)
	}
	if got := Slerp(a, b, 1); got != b {
		t.Errorf("Slerp(a, b, 1) = %+v, want b", got)
	}
}

func TestSlerpMidpointUnit(t *testing.T) {
	a := quat.Number{Real: 1}
	fb, rb, ub := SurfaceBasis(r3.Vec{X: 1}, r3.Vec{Z: 1})
	b := QuatFromBasis(fb, rb, ub)

	for _, frac := range []float64{0.1, 0.25, 0.5, 0.75, 0.9} {
		q := Slerp(a, b, frac)
		if math.Abs(quatNorm(q)-1) > 1e-9 {
			t.Errorf("Slerp at t=%v has norm %v, want 1", frac, quatNorm(q))
		}
	}
}

func TestSlerpNearIdentical(t *testing.T) {
	// Nearly identical rotations exercise the nlerp fallback.
	a := quat.Number{Real: 1}
	b := normalizeQuat(quat.Number{Real: 1, Imag: 1e-6})

	q := Slerp(a, b, 0.5)
	if math.Abs(quatNorm(q)-1) > 1e-9 {
		t.Errorf("near-identical slerp norm = %v, want 1", quatNorm(q))
	}
}

func TestExpSmoothing(t *testing.T) {
	tests := []struct {
		name     string
		rate, dt float64
		wantLo   float64
		wantHi   float64
	}{
		{"zero rate", 0, 0.016, 0, 0},
		{"negative rate", -1, 0.016, 0, 0},
		{"small dt", 5, 0.016, 0, 1},
		{"huge dt stays bounded", 5, 100, 0.99, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := expSmoothing(tt.rate, tt.dt)
			if got < tt.wantLo || got > tt.wantHi {
				t.Errorf("expSmoothing(%v, %v) = %v, want in [%v, %v]",
					tt.rate, tt.dt, got, tt.wantLo, tt.wantHi)
			}
		})
	}
}

func TestSmoothUnitVec(t *testing.T) {
	cur := r3.Vec{Z: 1}
	target := r3.Vec{X: 1}

	v := smoothUnitVec(cur, target, 0.5)
	if math.Abs(r3.Norm(v)-1) > 1e-9 {
		t.Errorf("smoothed vector norm = %v, want 1", r3.Norm(v))
	}

	// Repeated smoothing converges on the target.
	v = cur
	for i := 0; i < 200; i++ {
		v = smoothUnitVec(v, target, 0.2)
	}
	if r3.Dot(v, target) < 0.999 {
		t.Errorf("smoothing did not converge: %v", v)
	}
}

func TestSmoothUnitVecOpposed(t *testing.T) {
	// Exactly opposed directions cancel at t=0.5; the result must still
	// be usable.
	v := smoothUnitVec(r3.Vec{Z: 1}, r3.Vec{Z: -1}, 0.5)
	if math.Abs(r3.Norm(v)-1) > 1e-9 {
		t.Errorf("opposed smoothing produced non-unit vector %v", v)
	}
}
