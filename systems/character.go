package systems

import (
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/HUANREAL/AuraMonster/components"
)

// Character is the controlled monster as seen by the behavior core: a pose
// with accessors, a per-state speed lookup, and one-shot animation-intent
// sinks. The behavior state itself is owned by the controller; the
// character only learns of changes through OnBehaviorStateChanged.
type Character interface {
	Position() r3.Vec
	SetPosition(p r3.Vec)
	Orientation() quat.Number
	SetOrientation(q quat.Number)

	// MovementSpeed returns the speed in world units per second the
	// character moves at while in the given behavior state.
	MovementSpeed(state components.BehaviorState) float64

	// Animation-intent notifications. These are side effects with no
	// internal logic; implementations forward them to animation or
	// telemetry layers.
	OnBreathingUpdate(intensity float64)
	OnNeckTwitch()
	OnFingerShift()
	OnSurfaceTransition(newNormal r3.Vec)
	OnBehaviorStateChanged(oldState, newState components.BehaviorState)
}
