package systems

// standingBehavior patrols the ground through the navigation
// collaborator: walk somewhere reachable, stop to listen, repeat.
type standingBehavior struct {
	c *Controller
}

func (b *standingBehavior) Enter() {
	b.c.standing = StandingSession{}
}

func (b *standingBehavior) Exit() {
	if b.c.nav != nil {
		b.c.nav.Stop()
	}
}

func (b *standingBehavior) Execute(dt float64) {
	c := b.c
	if c.nav == nil {
		// No navigation system yet; retried next tick.
		return
	}
	s := &c.standing

	if s.Stopped {
		s.StopElapsed += dt
		if s.StopElapsed < s.StopTarget {
			return
		}
		s.Stopped = false
		s.StopElapsed = 0
	}

	switch c.nav.Status() {
	case PathMoving:
		return
	case PathReachedGoal:
		// Arrived; stop to listen and look around for a while.
		s.Stopped = true
		s.StopElapsed = 0
		s.StopTarget = randBetween(c.rng, c.p.MinStopDuration, c.p.MaxStopDuration)
		c.nav.Stop()
		return
	case PathIdle:
		origin := c.ch.Position()
		point, ok := c.nav.RandomReachablePoint(origin, c.p.PatrolRange)
		if !ok {
			// Constrained environment; retry closer in.
			point, ok = c.nav.RandomReachablePoint(origin, c.p.PatrolRange*0.5)
		}
		if ok {
			c.nav.MoveTo(point, c.p.AcceptanceRadius)
		}
		// Still nothing reachable: try again next tick.
	default:
		// Transient path states settle on their own; selecting a new
		// destination now would cause rapid destination churn.
		return
	}
}
