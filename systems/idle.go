package systems

import (
	"math"

	"github.com/HUANREAL/AuraMonster/components"
)

// defaultBreathingCycle substitutes for a non-positive configured cycle
// duration so the breathing phase never divides by zero.
const defaultBreathingCycle = 4.0

// idleBehavior breathes, fidgets, and eventually wanders off to patrol.
type idleBehavior struct {
	c *Controller
}

func (b *idleBehavior) Enter() {
	c := b.c
	c.idle = IdleSession{
		TargetDuration: randBetween(c.rng, c.p.MinIdleDuration, c.p.MaxIdleDuration),
		SubtleInterval: randBetween(c.rng, c.p.MinSubtleInterval, c.p.MaxSubtleInterval),
	}
}

func (b *idleBehavior) Exit() {}

func (b *idleBehavior) Execute(dt float64) {
	c := b.c
	s := &c.idle

	s.Elapsed += dt

	cycle := c.p.BreathingCycleDuration
	if cycle <= 0 {
		cycle = defaultBreathingCycle
	}
	s.BreathingPhase = math.Mod(s.BreathingPhase+dt, cycle)
	intensity := math.Sin(s.BreathingPhase/cycle*2*math.Pi)*0.5 + 0.5
	c.ch.OnBreathingUpdate(intensity)

	s.SubtleElapsed += dt
	if s.SubtleElapsed >= s.SubtleInterval {
		if c.rng.Float64() < 0.5 {
			c.ch.OnNeckTwitch()
		} else {
			c.ch.OnFingerShift()
		}
		s.SubtleElapsed = 0
		s.SubtleInterval = randBetween(c.rng, c.p.MinSubtleInterval, c.p.MaxSubtleInterval)
	}

	if s.Elapsed >= s.TargetDuration {
		if c.rng.Float64() < c.p.PatrolTransitionChance {
			next := components.StatePatrolStanding
			if c.rng.Float64() < 0.5 {
				next = components.StatePatrolCrawling
			}
			c.TransitionTo(next)
			return
		}
		// Stay idle for another stretch.
		s.Elapsed = 0
		s.TargetDuration = randBetween(c.rng, c.p.MinIdleDuration, c.p.MaxIdleDuration)
	}
}
