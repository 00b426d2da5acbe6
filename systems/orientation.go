package systems

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Orientation math for surface-relative crawling. A pose's rotation is a
// unit quaternion mapping the body frame (X-forward, Y-right, Z-up) into
// world space.

// SurfaceBasis builds an orthonormal basis whose up axis is the given
// surface normal and whose forward axis is as close as possible to the
// desired forward direction. A forward vector parallel to the normal is a
// degenerate input; a fallback reference is substituted so the result is
// always a valid basis.
func SurfaceBasis(normal, forward r3.Vec) (f, r, u r3.Vec) {
	u, ok := safeUnit(normal)
	if !ok {
		u = worldUp
	}

	r, ok = safeUnit(r3.Cross(u, forward))
	if !ok {
		// Forward is parallel to the normal. Pick a reference the normal
		// cannot also be parallel to: world up, or world forward when the
		// normal itself is near-vertical.
		ref := worldUp
		if math.Abs(u.Z) > 0.9 {
			ref = worldForward
		}
		r, _ = safeUnit(r3.Cross(u, ref))
	}

	f, _ = safeUnit(r3.Cross(r, u))
	return f, r, u
}

// QuatFromBasis converts an orthonormal basis (forward, right, up) into a
// unit quaternion. The basis vectors form the columns of the body-to-world
// rotation matrix.
func QuatFromBasis(f, r, u r3.Vec) quat.Number {
	m00, m01, m02 := f.X, r.X, u.X
	m10, m11, m12 := f.Y, r.Y, u.Y
	m20, m21, m22 := f.Z, r.Z, u.Z

	trace := m00 + m11 + m22
	var q quat.Number
	switch {
	case trace > 0:
		s := 2 * math.Sqrt(trace+1)
		q.Real = s / 4
		q.Imag = (m21 - m12) / s
		q.Jmag = (m02 - m20) / s
		q.Kmag = (m10 - m01) / s
	case m00 > m11 && m00 > m22:
		s := 2 * math.Sqrt(1+m00-m11-m22)
		q.Real = (m21 - m12) / s
		q.Imag = s / 4
		q.Jmag = (m01 + m10) / s
		q.Kmag = (m02 + m20) / s
	case m11 > m22:
		s := 2 * math.Sqrt(1+m11-m00-m22)
		q.Real = (m02 - m20) / s
		q.Imag = (m01 + m10) / s
		q.Jmag = s / 4
		q.Kmag = (m12 + m21) / s
	default:
		s := 2 * math.Sqrt(1+m22-m00-m11)
		q.Real = (m10 - m01) / s
		q.Imag = (m02 + m20) / s
		q.Jmag = (m12 + m21) / s
		q.Kmag = s / 4
	}
	return normalizeQuat(q)
}

// Forward returns the world-space forward axis of an orientation.
func Forward(q quat.Number) r3.Vec {
	return r3.Rotation(q).Rotate(worldForward)
}

// Right returns the world-space right axis of an orientation.
func Right(q quat.Number) r3.Vec {
	return r3.Rotation(q).Rotate(r3.Vec{Y: 1})
}

// Up returns the world-space up axis of an orientation.
func Up(q quat.Number) r3.Vec {
	return r3.Rotation(q).Rotate(worldUp)
}

// Slerp spherically interpolates between two unit quaternions. The shorter
// arc is always taken; nearly identical rotations fall back to normalized
// linear interpolation to avoid division by a vanishing sine.
func Slerp(a, b quat.Number, t float64) quat.Number {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}

	dot := a.Real*b.Real + a.Imag*b.Imag + a.Jmag*b.Jmag + a.Kmag*b.Kmag
	if dot < 0 {
		b = quat.Number{Real: -b.Real, Imag: -b.Imag, Jmag: -b.Jmag, Kmag: -b.Kmag}
		dot = -dot
	}
	dot = clampDot(dot)

	if dot > 0.9995 {
		return normalizeQuat(quat.Number{
			Real: a.Real + (b.Real-a.Real)*t,
			Imag: a.Imag + (b.Imag-a.Imag)*t,
			Jmag: a.Jmag + (b.Jmag-a.Jmag)*t,
			Kmag: a.Kmag + (b.Kmag-a.Kmag)*t,
		})
	}

	theta0 := math.Acos(dot)
	sinTheta0 := math.Sin(theta0)
	theta := theta0 * t
	sA := math.Sin(theta0-theta) / sinTheta0
	sB := math.Sin(theta) / sinTheta0
	return normalizeQuat(quat.Number{
		Real: a.Real*sA + b.Real*sB,
		Imag: a.Imag*sA + b.Imag*sB,
		Jmag: a.Jmag*sA + b.Jmag*sB,
		Kmag: a.Kmag*sA + b.Kmag*sB,
	})
}

// normalizeQuat scales a quaternion to unit length. A degenerate
// quaternion becomes the identity.
func normalizeQuat(q quat.Number) quat.Number {
	n := math.Sqrt(q.Real*q.Real + q.Imag*q.Imag + q.Jmag*q.Jmag + q.Kmag*q.Kmag)
	if n < 1e-12 {
		return quat.Number{Real: 1}
	}
	return quat.Number{Real: q.Real / n, Imag: q.Imag / n, Jmag: q.Jmag / n, Kmag: q.Kmag / n}
}

// expSmoothing converts an exponential smoothing rate into a per-tick
// interpolation factor that is stable for any dt.
func expSmoothing(rate, dt float64) float64 {
	if rate <= 0 {
		return 0
	}
	return 1 - math.Exp(-rate*dt)
}

// smoothUnitVec moves a unit vector toward a target direction by the given
// interpolation factor, keeping the result unit length.
func smoothUnitVec(cur, target r3.Vec, t float64) r3.Vec {
	v := r3.Add(cur, r3.Scale(t, r3.Sub(target, cur)))
	if u, ok := safeUnit(v); ok {
		return u
	}
	// Opposed directions can cancel exactly; snap to the target.
	if u, ok := safeUnit(target); ok {
		return u
	}
	return cur
}
