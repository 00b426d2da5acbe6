package systems

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"
)

// Clamp functions for common value ranges

// clampFloat clamps a value between min and max.
func clampFloat(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// clampDot clamps a dot product to [-1, 1] so it is safe to feed into acos.
// Normals carrying floating-point drift can otherwise produce NaN angles.
func clampDot(d float64) float64 {
	return clampFloat(d, -1, 1)
}

// AngleBetween returns the angle in radians between two unit vectors.
func AngleBetween(a, b r3.Vec) float64 {
	return math.Acos(clampDot(r3.Dot(a, b)))
}

// Vector helpers

// nearZero reports whether a vector has negligible length.
func nearZero(v r3.Vec) bool {
	return r3.Norm2(v) < 1e-12
}

// safeUnit normalizes a vector, returning (zero, false) for degenerate input.
func safeUnit(v r3.Vec) (r3.Vec, bool) {
	n := r3.Norm(v)
	if n < 1e-8 {
		return r3.Vec{}, false
	}
	return r3.Scale(1/n, v), true
}

// World axes. Body frame is X-forward, Y-right, Z-up.
var (
	worldUp      = r3.Vec{Z: 1}
	worldForward = r3.Vec{X: 1}
)

// Random draws

// randBetween returns a uniform value in [min(a,b), max(a,b)].
// The bounds are order-normalized so a misconfigured range degrades
// gracefully instead of producing values outside the interval.
func randBetween(rng *rand.Rand, a, b float64) float64 {
	lo := math.Min(a, b)
	hi := math.Max(a, b)
	return lo + rng.Float64()*(hi-lo)
}

// randUnitVec returns a direction distributed uniformly over the sphere.
func randUnitVec(rng *rand.Rand) r3.Vec {
	z := 2*rng.Float64() - 1
	theta := 2 * math.Pi * rng.Float64()
	s := math.Sqrt(1 - z*z)
	return r3.Vec{X: s * math.Cos(theta), Y: s * math.Sin(theta), Z: z}
}

// dirFromYawPitch builds a unit direction from a yaw angle around world up
// and a pitch angle above the horizontal plane, both in radians.
func dirFromYawPitch(yaw, pitch float64) r3.Vec {
	cp := math.Cos(pitch)
	return r3.Vec{
		X: cp * math.Cos(yaw),
		Y: cp * math.Sin(yaw),
		Z: math.Sin(pitch),
	}
}
