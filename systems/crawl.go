package systems

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/HUANREAL/AuraMonster/components"
)

// crawlingBehavior patrols across arbitrary surfaces: floors, walls and
// ceilings, reorienting the body to whatever it clings to.
type crawlingBehavior struct {
	c *Controller
}

func (b *crawlingBehavior) Enter() {
	c := b.c
	c.crawl = CrawlSession{Tracker: NewSurfaceTracker()}
	if c.ch == nil {
		return
	}
	pos := c.ch.Position()
	c.crawl.PrevPos = pos
	// Seed the tracker from whatever surface is around the spawn point.
	if s, ok := c.locator.DetectSurface(pos, worldUp, false); ok {
		c.crawl.Tracker.CurrentNormal = s.Normal
		c.crawl.Tracker.TargetNormal = s.Normal
		c.crawl.Tracker.OnSurface = true
	}
}

func (b *crawlingBehavior) Exit() {
	b.c.crawl = CrawlSession{Tracker: NewSurfaceTracker()}
}

func (b *crawlingBehavior) Execute(dt float64) {
	c := b.c
	s := &c.crawl

	// Settle the body onto the tracked surface every tick, destination or
	// not, steering the forward axis toward the travel direction.
	var moveDir r3.Vec
	if s.HasDestination && !s.Stopped {
		moveDir = r3.Sub(s.Destination.Point, c.ch.Position())
	}
	c.walker.AlignToSurface(c.ch, &s.Tracker, moveDir, dt)

	if s.Stopped {
		s.StopElapsed += dt
		if s.StopElapsed < s.StopTarget {
			return
		}
		// Done listening; force reselection of a destination.
		s.Stopped = false
		s.StopElapsed = 0
		s.HasDestination = false
		s.StuckElapsed = 0
		return
	}

	if s.HasDestination {
		speed := c.ch.MovementSpeed(components.StatePatrolCrawling)
		if c.walker.Advance(c.ch, &s.Tracker, s.Destination, dt, speed) {
			s.Stopped = true
			s.StopElapsed = 0
			s.StopTarget = randBetween(c.rng, c.p.MinStopDuration, c.p.MaxStopDuration)
			// Occasionally go looking for a differently oriented surface
			// next, which produces the wall and ceiling crossings.
			if c.rng.Float64() < c.p.SurfaceTransitionChance {
				s.SeekTransition = true
			}
			c.emitDestinationReached()
			return
		}

		// Stuck detection: abandon destinations that stop making progress,
		// e.g. against geometry the walker cannot get around.
		pos := c.ch.Position()
		moved := r3.Norm(r3.Sub(pos, s.PrevPos))
		if moved < c.p.StuckMinSpeed*dt {
			s.StuckElapsed += dt
			if s.StuckElapsed > c.p.StuckTimeout {
				s.HasDestination = false
				s.StuckElapsed = 0
				c.emitStuckRecovered()
			}
		} else {
			s.StuckElapsed = 0
		}
		s.PrevPos = pos
		return
	}

	// No destination held: find one on some surface within patrol range.
	pos := c.ch.Position()
	sample, ok := c.locator.FindDestination(pos, c.rng, c.p.PatrolRange,
		s.Tracker.CurrentNormal, s.Tracker.OnSurface, s.SeekTransition)
	if !ok {
		// Nothing found this tick; search again next tick.
		return
	}

	s.Destination = sample
	s.HasDestination = true
	s.SeekTransition = false
	s.StuckElapsed = 0
	s.PrevPos = pos

	// Face the new destination immediately; alignment smoothing keeps the
	// body settled on the current surface while it turns.
	if dir, okDir := safeUnit(r3.Sub(sample.Point, pos)); okDir {
		bf, br, bu := SurfaceBasis(s.Tracker.CurrentNormal, dir)
		c.ch.SetOrientation(QuatFromBasis(bf, br, bu))
	}

	c.emitDestinationChosen(sample)
}
