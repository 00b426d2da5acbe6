package systems

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"
)

// Params holds the tunable behavior constants. The zero value is not
// usable; construct via DefaultParams or populate from config.
type Params struct {
	// Idle
	MinIdleDuration        float64
	MaxIdleDuration        float64
	MinSubtleInterval      float64
	MaxSubtleInterval      float64
	BreathingCycleDuration float64
	PatrolTransitionChance float64

	// Patrol (both modes)
	PatrolRange      float64
	MinStopDuration  float64
	MaxStopDuration  float64
	AcceptanceRadius float64

	// Crawling / surface system
	SurfaceTransitionChance float64
	SurfaceDetectionRange   float64
	SurfaceAlignmentSpeed   float64
	MinTransitionAngle      float64 // radians
	ClearanceOffset         float64
	SearchAttempts          int
	MinSearchFraction       float64 // lower bound of ray length as fraction of range
	CrawlPitchRange         float64 // radians, +/- around horizontal
	TransitionPitchRange    float64 // radians, widened range when seeking a new surface
	UpwardBiasChance        float64 // chance to bias upward when clinging to a wall
	TransitionDot           float64 // normals with dot below this count as a different surface
	ObstacleDot             float64 // hit normals opposing movement beyond this block motion
	StuckTimeout            float64
	StuckMinSpeed           float64 // progress below this speed counts as stuck
	TurnBlendSpeed          float64 // forward-axis blend rate toward movement direction
}

// DefaultParams returns the reference tuning.
func DefaultParams() Params {
	return Params{
		MinIdleDuration:        5,
		MaxIdleDuration:        15,
		MinSubtleInterval:      2,
		MaxSubtleInterval:      6,
		BreathingCycleDuration: 4,
		PatrolTransitionChance: 0.3,

		PatrolRange:      1000,
		MinStopDuration:  2,
		MaxStopDuration:  5,
		AcceptanceRadius: 100,

		SurfaceTransitionChance: 0.3,
		SurfaceDetectionRange:   200,
		SurfaceAlignmentSpeed:   5,
		MinTransitionAngle:      45 * math.Pi / 180,
		ClearanceOffset:         10,
		SearchAttempts:          30,
		MinSearchFraction:       0.5,
		CrawlPitchRange:         45 * math.Pi / 180,
		TransitionPitchRange:    75 * math.Pi / 180,
		UpwardBiasChance:        0.7,
		TransitionDot:           0.5,
		ObstacleDot:             -0.3,
		StuckTimeout:            2,
		StuckMinSpeed:           10,
		TurnBlendSpeed:          2.5,
	}
}

// detectDirections are the world-axis directions probed by DetectSurface.
var detectDirections = [6]r3.Vec{
	{Z: 1}, {Z: -1},
	{X: 1}, {X: -1},
	{Y: 1}, {Y: -1},
}

// Scoring weights for DetectSurface: closeness dominates, agreement with
// the currently tracked normal breaks ties toward the surface underfoot.
const (
	detectDistanceWeight = 0.7
	detectAlignWeight    = 0.3
)

// SurfaceLocator finds points on arbitrary surfaces by ray casting.
// It is stateless apart from its oracle and tuning.
type SurfaceLocator struct {
	ray Raycaster
	p   Params
}

// NewSurfaceLocator creates a locator over the given raycast oracle.
func NewSurfaceLocator(ray Raycaster, p Params) *SurfaceLocator {
	return &SurfaceLocator{ray: ray, p: p}
}

// FindDestination searches for a crawlable point on some surface within
// searchRange of origin. currentNormal biases the search toward directions
// that produce natural movement for the surface type the monster currently
// occupies; pass hasNormal=false for an unbiased uniform search.
// seekTransition widens the pitch range to favor differently oriented
// surfaces (wall-to-floor, floor-to-ceiling crossings).
//
// The search is bounded: after SearchAttempts rays with no surface hit it
// reports false and the caller retries on a later tick.
func (l *SurfaceLocator) FindDestination(origin r3.Vec, rng *rand.Rand, searchRange float64, currentNormal r3.Vec, hasNormal, seekTransition bool) (SurfaceSample, bool) {
	attempts := l.p.SearchAttempts
	if attempts <= 0 {
		attempts = 30
	}

	var fallback SurfaceSample
	haveFallback := false

	for i := 0; i < attempts; i++ {
		dir := l.candidateDirection(rng, currentNormal, hasNormal, seekTransition)
		dist := randBetween(rng, searchRange*l.p.MinSearchFraction, searchRange)

		hit, ok := l.ray.TraceRay(origin, r3.Add(origin, r3.Scale(dist, dir)))
		if !ok {
			continue
		}

		sample := SurfaceSample{
			Point:  r3.Add(hit.Point, r3.Scale(l.p.ClearanceOffset, hit.Normal)),
			Normal: hit.Normal,
		}

		// Surfaces whose normal diverges sharply from the current one are
		// surface-type changes; accept those immediately since they create
		// the interesting wall and ceiling crossings.
		if hasNormal && r3.Dot(currentNormal, hit.Normal) < l.p.TransitionDot {
			return sample, true
		}
		if !haveFallback {
			fallback = sample
			haveFallback = true
		}
	}
	return fallback, haveFallback
}

// candidateDirection draws a search direction. With no known surface the
// distribution is uniform over the sphere. On a near-horizontal surface
// the pitch is biased mildly downward so monsters descend off the tops of
// structures; on a near-vertical surface it is biased upward most of the
// time to encourage climbing.
func (l *SurfaceLocator) candidateDirection(rng *rand.Rand, currentNormal r3.Vec, hasNormal, seekTransition bool) r3.Vec {
	if !hasNormal {
		return randUnitVec(rng)
	}

	pitchRange := l.p.CrawlPitchRange
	if seekTransition {
		pitchRange = l.p.TransitionPitchRange
	}

	yaw := randBetween(rng, -math.Pi, math.Pi)
	pitch := randBetween(rng, -pitchRange, pitchRange)

	switch {
	case math.Abs(currentNormal.Z) > 0.7:
		// Standing on a floor or hanging from a ceiling: keep the search
		// mostly horizontal with a mild downward lean.
		pitch = randBetween(rng, -pitchRange, pitchRange*0.2)
	case math.Abs(currentNormal.Z) < 0.3:
		// Clinging to a wall: climb upward most of the time.
		if rng.Float64() < l.p.UpwardBiasChance {
			pitch = randBetween(rng, 20*math.Pi/180, pitchRange)
		}
	}
	return dirFromYawPitch(yaw, pitch)
}

// DetectSurface probes six world-axis directions from location and returns
// the best surface within detection range, offset outward by the clearance
// constant. Hits are scored by closeness (70%) and, when a tracked normal
// is supplied, by how well their normal agrees with it (30%). Used both
// for continuous ground-following and as a fallback destination search.
func (l *SurfaceLocator) DetectSurface(location r3.Vec, currentNormal r3.Vec, hasNormal bool) (SurfaceSample, bool) {
	return detectSurface(l.ray, l.p, location, currentNormal, hasNormal)
}

// detectSurface is shared between the locator and the walker; both
// components re-anchor to geometry through the same scored probe.
func detectSurface(ray Raycaster, p Params, location r3.Vec, currentNormal r3.Vec, hasNormal bool) (SurfaceSample, bool) {
	bestScore := math.Inf(-1)
	var best SurfaceSample
	found := false

	for _, dir := range detectDirections {
		hit, ok := ray.TraceRay(location, r3.Add(location, r3.Scale(p.SurfaceDetectionRange, dir)))
		if !ok {
			continue
		}

		dist := r3.Norm(r3.Sub(hit.Point, location))
		closeness := 1 - dist/p.SurfaceDetectionRange
		align := 0.0
		if hasNormal {
			align = math.Max(0, clampDot(r3.Dot(currentNormal, hit.Normal)))
		}
		score := detectDistanceWeight*closeness + detectAlignWeight*align

		if score > bestScore {
			bestScore = score
			best = SurfaceSample{
				Point:  r3.Add(hit.Point, r3.Scale(p.ClearanceOffset, hit.Normal)),
				Normal: hit.Normal,
			}
			found = true
		}
	}
	return best, found
}
