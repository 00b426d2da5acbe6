package systems

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/HUANREAL/AuraMonster/components"
)

// PathStatus describes a navigator's path-following state.
type PathStatus uint8

const (
	PathIdle PathStatus = iota
	PathMoving
	PathReachedGoal
	PathOther
)

// Navigator is the ground-navigation oracle used by standing patrol. The
// behavior core only issues queries and commands; the navigator owns the
// actual path following.
type Navigator interface {
	// RandomReachablePoint returns a walkable point within radius of
	// origin, or false when none could be found.
	RandomReachablePoint(origin r3.Vec, radius float64) (r3.Vec, bool)
	Status() PathStatus
	MoveTo(point r3.Vec, acceptanceRadius float64)
	Stop()
}

const (
	// Vertical cast distances for walkable-floor sampling.
	navCastUp   = 100.0
	navCastDown = 500.0

	// Minimum normal Z for a hit to count as walkable floor.
	navWalkableDot = 0.7

	navSampleAttempts = 12
)

// TerrainNavigator is a straight-line navigator over box terrain. It
// samples walkable floor by casting down onto the geometry and advances
// its character toward the active goal each tick.
type TerrainNavigator struct {
	ray Raycaster
	ch  Character
	rng *rand.Rand

	goal       r3.Vec
	acceptance float64
	status     PathStatus
}

// NewTerrainNavigator creates a navigator steering the given character.
func NewTerrainNavigator(ray Raycaster, ch Character, rng *rand.Rand) *TerrainNavigator {
	return &TerrainNavigator{ray: ray, ch: ch, rng: rng, status: PathIdle}
}

// RandomReachablePoint samples points in a disk around origin and casts
// down to find walkable floor. Bounded attempts; a miss is reported as
// false and the caller retries later.
func (n *TerrainNavigator) RandomReachablePoint(origin r3.Vec, radius float64) (r3.Vec, bool) {
	for i := 0; i < navSampleAttempts; i++ {
		theta := randBetween(n.rng, -math.Pi, math.Pi)
		// sqrt for uniform density over the disk
		r := radius * math.Sqrt(n.rng.Float64())
		probe := r3.Add(origin, r3.Vec{X: r * math.Cos(theta), Y: r * math.Sin(theta), Z: navCastUp})

		hit, ok := n.ray.TraceRay(probe, r3.Add(probe, r3.Vec{Z: -(navCastUp + navCastDown)}))
		if !ok || hit.Normal.Z < navWalkableDot {
			continue
		}
		return hit.Point, true
	}
	return r3.Vec{}, false
}

// Status returns the current path-following state.
func (n *TerrainNavigator) Status() PathStatus {
	return n.status
}

// MoveTo starts path following toward the given point.
func (n *TerrainNavigator) MoveTo(point r3.Vec, acceptanceRadius float64) {
	n.goal = point
	n.acceptance = acceptanceRadius
	n.status = PathMoving
}

// Stop cancels the active path.
func (n *TerrainNavigator) Stop() {
	n.status = PathIdle
}

// Update advances the character toward the goal for one tick at the
// standing-patrol speed. Ground height is re-sampled along the way so the
// character follows floor contours.
func (n *TerrainNavigator) Update(dt float64) {
	if n.status != PathMoving || n.ch == nil {
		return
	}

	pos := n.ch.Position()
	to := r3.Sub(n.goal, pos)
	// Path following works in the ground plane; height follows the floor.
	to.Z = 0
	dist := r3.Norm(to)
	if dist <= n.acceptance {
		n.status = PathReachedGoal
		return
	}

	speed := n.ch.MovementSpeed(components.StatePatrolStanding)
	step := math.Min(speed*dt, dist)
	pos = r3.Add(pos, r3.Scale(step/dist, to))

	// Keep the character on the floor beneath the new position.
	probe := r3.Add(pos, r3.Vec{Z: navCastUp})
	if hit, ok := n.ray.TraceRay(probe, r3.Add(probe, r3.Vec{Z: -(navCastUp + navCastDown)})); ok && hit.Normal.Z >= navWalkableDot {
		pos.Z = hit.Point.Z
	}
	n.ch.SetPosition(pos)
}
