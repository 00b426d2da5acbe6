package systems

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// SurfaceTracker carries the normals a crawling monster is attached to.
// CurrentNormal trails TargetNormal through exponential smoothing so
// surface changes reorient the body without visual popping. Both vectors
// are kept unit length.
type SurfaceTracker struct {
	CurrentNormal r3.Vec
	TargetNormal  r3.Vec
	OnSurface     bool
}

// NewSurfaceTracker returns a tracker anchored to an upward-facing floor.
func NewSurfaceTracker() SurfaceTracker {
	return SurfaceTracker{
		CurrentNormal: worldUp,
		TargetNormal:  worldUp,
		OnSurface:     false,
	}
}

// SurfaceWalker advances a pose toward a target surface point one tick at
// a time, continuously re-detecting the surface underfoot and smoothly
// reorienting to its normal. It is stateless over externally supplied pose
// and tracker data.
type SurfaceWalker struct {
	ray Raycaster
	p   Params
}

// NewSurfaceWalker creates a walker over the given raycast oracle.
func NewSurfaceWalker(ray Raycaster, p Params) *SurfaceWalker {
	return &SurfaceWalker{ray: ray, p: p}
}

// Advance moves the character one tick toward target. It returns true,
// without moving, when the distance to the target is within the
// acceptance radius (a distance exactly equal to the radius counts as
// reached). Otherwise it steps min(speed*dt, distance) along the direct
// line and re-anchors the pose:
//
//   - A forward-biased trace looks for geometry between the character and
//     a point past the desired position. A hit whose normal opposes the
//     movement direction is a blocking obstacle; the character stays put
//     and re-anchors to the nearest surface at its current position. Any
//     other hit is walkable surface to snap onto.
//   - With no forward hit, the scored six-axis probe at the desired
//     position supplies the surface. If that also finds nothing the
//     character moves freely through open space without a surface.
func (w *SurfaceWalker) Advance(ch Character, tr *SurfaceTracker, target SurfaceSample, dt, speed float64) bool {
	pos := ch.Position()
	to := r3.Sub(target.Point, pos)
	dist := r3.Norm(to)
	if dist <= w.p.AcceptanceRadius {
		return true
	}

	dir := r3.Scale(1/dist, to)
	step := math.Min(speed*dt, dist)
	desired := r3.Add(pos, r3.Scale(step, dir))

	// Probe from slightly ahead of the pose so the ray clears the surface
	// the character is already resting on, extended past the desired
	// position to see upcoming geometry.
	probeStart := r3.Add(pos, r3.Scale(w.p.ClearanceOffset*0.1, dir))
	probeEnd := r3.Add(desired, r3.Scale(w.p.SurfaceDetectionRange*0.5, dir))

	if hit, ok := w.ray.TraceRay(probeStart, probeEnd); ok {
		if r3.Dot(hit.Normal, dir) < w.p.ObstacleDot {
			// Blocking obstacle ahead; hold position and re-anchor to
			// whatever surface is nearest here.
			if s, found := detectSurface(w.ray, w.p, pos, tr.CurrentNormal, tr.OnSurface); found {
				w.anchor(ch, tr, s)
			}
			return false
		}
		w.anchor(ch, tr, SurfaceSample{
			Point:  r3.Add(hit.Point, r3.Scale(w.p.ClearanceOffset, hit.Normal)),
			Normal: hit.Normal,
		})
		return false
	}

	if s, found := detectSurface(w.ray, w.p, desired, tr.CurrentNormal, tr.OnSurface); found {
		w.anchor(ch, tr, s)
		return false
	}

	// Open space between surfaces; move unconstrained.
	ch.SetPosition(desired)
	tr.OnSurface = false
	return false
}

// anchor snaps the pose onto a surface sample and retargets the tracker,
// notifying the character when the normal swings far enough to count as a
// surface transition.
func (w *SurfaceWalker) anchor(ch Character, tr *SurfaceTracker, s SurfaceSample) {
	ch.SetPosition(s.Point)
	if tr.OnSurface && AngleBetween(tr.TargetNormal, s.Normal) >= w.p.MinTransitionAngle {
		ch.OnSurfaceTransition(s.Normal)
	}
	tr.TargetNormal = s.Normal
	tr.OnSurface = true
}

// AlignToSurface settles the body onto the tracked surface: the smoothed
// current normal moves toward the target normal, then the orientation is
// slerped toward the basis built from that normal and the desired forward
// direction. moveDir biases the forward axis toward the direction of
// travel; pass the zero vector to keep the current heading. Runs every
// tick regardless of whether a destination is active.
func (w *SurfaceWalker) AlignToSurface(ch Character, tr *SurfaceTracker, moveDir r3.Vec, dt float64) {
	if w.p.SurfaceAlignmentSpeed <= 0 {
		return
	}

	f := expSmoothing(w.p.SurfaceAlignmentSpeed, dt)
	tr.CurrentNormal = smoothUnitVec(tr.CurrentNormal, tr.TargetNormal, f)

	forward := Forward(ch.Orientation())
	if dir, ok := safeUnit(moveDir); ok {
		turn := expSmoothing(w.p.TurnBlendSpeed, dt)
		forward = smoothUnitVec(forward, dir, turn)
	}

	bf, br, bu := SurfaceBasis(tr.CurrentNormal, forward)
	targetQ := QuatFromBasis(bf, br, bu)
	ch.SetOrientation(Slerp(ch.Orientation(), targetQ, f))
}
