package game

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/HUANREAL/AuraMonster/config"
	"github.com/HUANREAL/AuraMonster/systems"
)

// Slab thickness for walls, ceiling and the floor underside.
const arenaSlabThickness = 50.0

// buildArena constructs the box terrain the monsters live in: a floor,
// four perimeter walls, a ceiling and a scatter of crawlable columns.
// Every face is a surface the crawl system can attach to.
func buildArena(cfg config.ArenaConfig, rng *rand.Rand) *systems.Terrain {
	t := systems.NewTerrain()

	h := cfg.HalfExtent
	wall := cfg.WallHeight

	t.AddFloor(h, 0)

	// Perimeter walls from floor to ceiling.
	t.AddBox(r3.Vec{X: -h - arenaSlabThickness, Y: -h - arenaSlabThickness, Z: 0},
		r3.Vec{X: h + arenaSlabThickness, Y: -h, Z: wall})
	t.AddBox(r3.Vec{X: -h - arenaSlabThickness, Y: h, Z: 0},
		r3.Vec{X: h + arenaSlabThickness, Y: h + arenaSlabThickness, Z: wall})
	t.AddBox(r3.Vec{X: -h - arenaSlabThickness, Y: -h, Z: 0},
		r3.Vec{X: -h, Y: h, Z: wall})
	t.AddBox(r3.Vec{X: h, Y: -h, Z: 0},
		r3.Vec{X: h + arenaSlabThickness, Y: h, Z: wall})

	// Ceiling. Its underside is crawlable.
	t.AddBox(r3.Vec{X: -h, Y: -h, Z: wall},
		r3.Vec{X: h, Y: h, Z: wall + arenaSlabThickness})

	// Columns scattered over the inner floor.
	for i := 0; i < cfg.Columns; i++ {
		x := randRange(rng, -h*0.7, h*0.7)
		y := randRange(rng, -h*0.7, h*0.7)
		t.AddColumn(x, y, cfg.ColumnWidth, 0, cfg.ColumnHeight)
	}

	return t
}
