package components

// BehaviorState identifies a monster's active behavior.
type BehaviorState uint8

const (
	StateIdle BehaviorState = iota
	StatePatrolStanding
	StatePatrolCrawling
	NumBehaviorStates
)

// String returns a human-readable state name.
func (s BehaviorState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePatrolStanding:
		return "patrol_standing"
	case StatePatrolCrawling:
		return "patrol_crawling"
	default:
		return "unknown"
	}
}

// Monster holds per-monster behavior data shared between the controller
// and the rest of the simulation.
type Monster struct {
	State BehaviorState

	// Movement speeds per behavior state, world units per second.
	StandingSpeed float64
	CrawlingSpeed float64

	// Animation intents, written by the controller's notification sinks.
	BreathingIntensity float64
	OnSurface          bool
}

// SpeedForState returns the movement speed for the given behavior state.
// Idle monsters do not move.
func (m *Monster) SpeedForState(state BehaviorState) float64 {
	switch state {
	case StatePatrolStanding:
		return m.StandingSpeed
	case StatePatrolCrawling:
		return m.CrawlingSpeed
	default:
		return 0
	}
}
