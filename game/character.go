package game

import (
	"log/slog"
	"math"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/HUANREAL/AuraMonster/components"
	"github.com/HUANREAL/AuraMonster/systems"
	"github.com/HUANREAL/AuraMonster/telemetry"
)

// monsterCharacter adapts one ECS entity to the behavior core's Character
// interface and forwards its notification sinks to telemetry.
type monsterCharacter struct {
	sim    *Sim
	id     uint32
	entity ecs.Entity

	// Previous surface normal, for transition angle reporting.
	lastNormal r3.Vec
}

func (c *monsterCharacter) Position() r3.Vec {
	return c.sim.posMap.Get(c.entity).Point
}

func (c *monsterCharacter) SetPosition(p r3.Vec) {
	c.sim.posMap.Get(c.entity).Point = p
}

func (c *monsterCharacter) Orientation() quat.Number {
	return c.sim.oriMap.Get(c.entity).Quat
}

func (c *monsterCharacter) SetOrientation(q quat.Number) {
	c.sim.oriMap.Get(c.entity).Quat = q
}

func (c *monsterCharacter) MovementSpeed(state components.BehaviorState) float64 {
	return c.sim.monMap.Get(c.entity).SpeedForState(state)
}

func (c *monsterCharacter) OnBreathingUpdate(intensity float64) {
	c.sim.monMap.Get(c.entity).BreathingIntensity = intensity
}

func (c *monsterCharacter) OnNeckTwitch() {
	c.sim.collector.Record(telemetry.Event{
		Type:      telemetry.EventSubtleMovement,
		Tick:      c.sim.tick,
		MonsterID: c.id,
	})
}

func (c *monsterCharacter) OnFingerShift() {
	c.sim.collector.Record(telemetry.Event{
		Type:      telemetry.EventSubtleMovement,
		Tick:      c.sim.tick,
		MonsterID: c.id,
	})
}

func (c *monsterCharacter) OnSurfaceTransition(newNormal r3.Vec) {
	angleDeg := normalAngleDeg(c.lastNormal, newNormal)
	c.lastNormal = newNormal

	mon := c.sim.monMap.Get(c.entity)
	mon.OnSurface = true

	c.sim.collector.Record(telemetry.NewSurfaceTransitionEvent(c.sim.tick, c.id, angleDeg))
	slog.Debug("surface transition",
		"monster", c.id,
		"tick", c.sim.tick,
		"angle_deg", angleDeg,
	)
}

func (c *monsterCharacter) OnBehaviorStateChanged(oldState, newState components.BehaviorState) {
	c.sim.monMap.Get(c.entity).State = newState

	c.sim.collector.Record(telemetry.NewStateChangeEvent(c.sim.tick, c.id, oldState, newState))
	slog.Debug("state change",
		"monster", c.id,
		"tick", c.sim.tick,
		"from", oldState.String(),
		"to", newState.String(),
	)
}

// CrawlEvents sink.

func (c *monsterCharacter) OnDestinationChosen(s systems.SurfaceSample) {
	c.sim.collector.Record(telemetry.Event{
		Type:      telemetry.EventDestinationChosen,
		Tick:      c.sim.tick,
		MonsterID: c.id,
	})
}

func (c *monsterCharacter) OnDestinationReached() {
	c.sim.collector.Record(telemetry.Event{
		Type:      telemetry.EventDestinationReached,
		Tick:      c.sim.tick,
		MonsterID: c.id,
	})
}

func (c *monsterCharacter) OnStuckRecovered() {
	c.sim.collector.Record(telemetry.Event{
		Type:      telemetry.EventStuckRecovery,
		Tick:      c.sim.tick,
		MonsterID: c.id,
	})
	slog.Debug("stuck recovery", "monster", c.id, "tick", c.sim.tick)
}

// normalAngleDeg returns the angle in degrees between two unit normals.
func normalAngleDeg(a, b r3.Vec) float64 {
	return systems.AngleBetween(a, b) * 180 / math.Pi
}
