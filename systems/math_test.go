package systems

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestClampFloat(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi float64
		want      float64
	}{
		{"below range", -1, 0, 1, 0},
		{"above range", 2, 0, 1, 1},
		{"inside range", 0.5, 0, 1, 0.5},
		{"at lower bound", 0, 0, 1, 0},
		{"at upper bound", 1, 0, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := clampFloat(tt.v, tt.lo, tt.hi)
			if got != tt.want {
				t.Errorf("clampFloat(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

func TestAngleBetween(t *testing.T) {
	tests := []struct {
		name string
		a, b r3.Vec
		want float64
	}{
		{"identical", r3.Vec{Z: 1}, r3.Vec{Z: 1}, 0},
		{"perpendicular", r3.Vec{Z: 1}, r3.Vec{X: 1}, math.Pi / 2},
		{"opposed", r3.Vec{Z: 1}, r3.Vec{Z: -1}, math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AngleBetween(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("AngleBetween = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAngleBetweenDriftedNormals(t *testing.T) {
	// Dot products slightly outside [-1, 1] from accumulated float error
	// must not produce NaN.
	a := r3.Vec{X: 0.6, Y: 0.8}
	b := r3.Scale(1+1e-12, a)
	got := AngleBetween(a, b)
	if math.IsNaN(got) {
		t.Errorf("AngleBetween returned NaN for near-parallel drifted vectors")
	}
}

func TestRandBetween(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 1000; i++ {
		v := randBetween(rng, 2, 6)
		if v < 2 || v > 6 {
			t.Fatalf("randBetween(2, 6) = %v, out of range", v)
		}
	}
}

func TestRandBetweenReversedBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	// A misconfigured range with min > max still yields values inside
	// the interval.
	for i := 0; i < 1000; i++ {
		v := randBetween(rng, 6, 2)
		if v < 2 || v > 6 {
			t.Fatalf("randBetween(6, 2) = %v, out of range", v)
		}
	}
}

func TestRandUnitVec(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 100; i++ {
		v := randUnitVec(rng)
		if math.Abs(r3.Norm(v)-1) > 1e-9 {
			t.Fatalf("randUnitVec norm = %v, want 1", r3.Norm(v))
		}
	}
}

func TestDirFromYawPitch(t *testing.T) {
	tests := []struct {
		name       string
		yaw, pitch float64
		want       r3.Vec
	}{
		{"forward", 0, 0, r3.Vec{X: 1}},
		{"left", math.Pi / 2, 0, r3.Vec{Y: 1}},
		{"straight up", 0, math.Pi / 2, r3.Vec{Z: 1}},
		{"straight down", 0, -math.Pi / 2, r3.Vec{Z: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dirFromYawPitch(tt.yaw, tt.pitch)
			if r3.Norm(r3.Sub(got, tt.want)) > 1e-9 {
				t.Errorf("dirFromYawPitch(%v, %v) = %v, want %v", tt.yaw, tt.pitch, got, tt.want)
			}
		})
	}
}

func TestSafeUnit(t *testing.T) {
	if _, ok := safeUnit(r3.Vec{}); ok {
		t.Errorf("safeUnit(zero) reported ok")
	}

	u, ok := safeUnit(r3.Vec{X: 3, Y: 4})
	if !ok {
		t.Fatalf("safeUnit rejected a valid vector")
	}
	if math.Abs(r3.Norm(u)-1) > 1e-12 {
		t.Errorf("safeUnit norm = %v, want 1", r3.Norm(u))
	}
}
