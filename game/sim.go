// Package game wires the behavior systems into a headless simulation:
// an ECS world of monsters, box terrain to crawl over, and telemetry.
package game

import (
	"fmt"
	"math/rand"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/HUANREAL/AuraMonster/components"
	"github.com/HUANREAL/AuraMonster/config"
	"github.com/HUANREAL/AuraMonster/systems"
	"github.com/HUANREAL/AuraMonster/telemetry"
)

// Options holds simulation construction options.
type Options struct {
	Seed           int64
	Monsters       int // 0 = use config
	LogStats       bool
	StatsWindowSec float64 // 0 = use config
	OutputDir      string
}

// monsterAgent bundles the non-component collaborators of one monster:
// its controller, its navigator and its character adapter.
type monsterAgent struct {
	id     uint32
	entity ecs.Entity
	ch     *monsterCharacter
	ctrl   *systems.Controller
	nav    *systems.TerrainNavigator
}

// Sim holds the complete simulation state.
type Sim struct {
	world *ecs.World
	rng   *rand.Rand
	cfg   *config.Config

	mapper *ecs.Map3[
		components.Position,
		components.Orientation,
		components.Monster,
	]
	filter *ecs.Filter3[
		components.Position,
		components.Orientation,
		components.Monster,
	]

	// Individual component mappers for lookups
	posMap *ecs.Map1[components.Position]
	oriMap *ecs.Map1[components.Orientation]
	monMap *ecs.Map1[components.Monster]

	terrain *systems.Terrain
	agents  []*monsterAgent

	collector *telemetry.Collector
	output    *telemetry.OutputManager
	logStats  bool

	tick   int64
	nextID uint32
}

// NewSim builds a simulation from the given config and options.
func NewSim(cfg *config.Config, opts Options) (*Sim, error) {
	world := ecs.NewWorld()

	s := &Sim{
		world: world,
		rng:   rand.New(rand.NewSource(opts.Seed)),
		cfg:   cfg,
		mapper: ecs.NewMap3[
			components.Position,
			components.Orientation,
			components.Monster,
		](world),
		filter: ecs.NewFilter3[
			components.Position,
			components.Orientation,
			components.Monster,
		](world),
		posMap:   ecs.NewMap1[components.Position](world),
		oriMap:   ecs.NewMap1[components.Orientation](world),
		monMap:   ecs.NewMap1[components.Monster](world),
		logStats: opts.LogStats,
	}

	s.terrain = buildArena(cfg.Arena, s.rng)

	statsWindow := cfg.Telemetry.StatsWindow
	if opts.StatsWindowSec > 0 {
		statsWindow = opts.StatsWindowSec
	}
	s.collector = telemetry.NewCollector(statsWindow, cfg.Sim.DT)

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("initializing output: %w", err)
	}
	s.output = output
	if err := s.output.WriteConfig(cfg); err != nil {
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	count := cfg.Sim.Monsters
	if opts.Monsters > 0 {
		count = opts.Monsters
	}
	params := behaviorParams(cfg)
	for i := 0; i < count; i++ {
		s.spawnMonster(params)
	}

	return s, nil
}

// spawnMonster creates one monster on the arena floor with its controller
// and navigator attached.
func (s *Sim) spawnMonster(params systems.Params) {
	id := s.nextID
	s.nextID++

	// Spawn on the inner half of the floor, clear of walls and columns.
	h := s.cfg.Arena.HalfExtent * 0.5
	pos := components.Position{Point: r3.Vec{
		X: randRange(s.rng, -h, h),
		Y: randRange(s.rng, -h, h),
	}}
	ori := components.IdentityOrientation()
	mon := components.Monster{
		State:         components.StateIdle,
		StandingSpeed: s.cfg.Monster.StandingSpeed,
		CrawlingSpeed: s.cfg.Monster.CrawlingSpeed,
	}

	entity := s.mapper.NewEntity(&pos, &ori, &mon)

	ch := &monsterCharacter{sim: s, id: id, entity: entity, lastNormal: r3.Vec{Z: 1}}
	nav := systems.NewTerrainNavigator(s.terrain, ch, s.rng)
	ctrl := systems.NewController(ch, nav, s.terrain, s.rng, params)
	ctrl.SetEvents(ch)

	s.agents = append(s.agents, &monsterAgent{
		id:     id,
		entity: entity,
		ch:     ch,
		ctrl:   ctrl,
		nav:    nav,
	})
}

// Step runs a single tick of the simulation.
func (s *Sim) Step() {
	dt := s.cfg.Sim.DT

	for _, a := range s.agents {
		before := a.ch.Position()

		a.ctrl.Tick(dt)
		a.nav.Update(dt)

		if a.ctrl.State() == components.StatePatrolCrawling {
			s.collector.RecordCrawlDistance(r3.Norm(r3.Sub(a.ch.Position(), before)))

			// Mirror the surface attachment into the component so
			// queries see it.
			if mon := s.monMap.Get(a.entity); mon != nil {
				mon.OnSurface = a.ctrl.Crawl().Tracker.OnSurface
			}
		}
	}

	s.tick++
	s.flushTelemetry()
}

// Tick returns the current simulation tick.
func (s *Sim) Tick() int64 {
	return s.tick
}

// Terrain returns the arena geometry.
func (s *Sim) Terrain() *systems.Terrain {
	return s.terrain
}

// Close flushes and closes telemetry output.
func (s *Sim) Close() error {
	return s.output.Close()
}

// randRange returns a uniform value in [lo, hi).
func randRange(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
