// Package telemetry provides behavior observability: windowed stats over
// state changes, surface transitions and crawl progress, with CSV output.
package telemetry

import "github.com/HUANREAL/AuraMonster/components"

// EventType identifies behavior telemetry events.
type EventType uint8

const (
	EventStateChange EventType = iota
	EventSurfaceTransition
	EventStuckRecovery
	EventDestinationChosen
	EventDestinationReached
	EventSubtleMovement
)

// Event represents a single behavior event.
type Event struct {
	Type      EventType
	Tick      int64
	MonsterID uint32

	// Optional fields depending on event type
	FromState components.BehaviorState // state change
	ToState   components.BehaviorState // state change
	AngleDeg  float64                  // surface transition angle change
}

// NewStateChangeEvent creates a state change event.
func NewStateChangeEvent(tick int64, id uint32, from, to components.BehaviorState) Event {
	return Event{
		Type:      EventStateChange,
		Tick:      tick,
		MonsterID: id,
		FromState: from,
		ToState:   to,
	}
}

// NewSurfaceTransitionEvent creates a surface transition event carrying
// the angle in degrees between the old and new surface normals.
func NewSurfaceTransitionEvent(tick int64, id uint32, angleDeg float64) Event {
	return Event{
		Type:      EventSurfaceTransition,
		Tick:      tick,
		MonsterID: id,
		AngleDeg:  angleDeg,
	}
}
