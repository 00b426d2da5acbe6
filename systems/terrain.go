package systems

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// SurfaceSample is a point on solid geometry together with its outward
// normal. Samples are ephemeral; they are produced per raycast and not
// persisted beyond one decision.
type SurfaceSample struct {
	Point  r3.Vec
	Normal r3.Vec
}

// Raycaster is the world-geometry oracle the behavior core queries.
// It returns the nearest blocking hit along a segment, or false when the
// segment crosses only open space. A miss is an ordinary outcome, never an
// error.
type Raycaster interface {
	TraceRay(start, end r3.Vec) (SurfaceSample, bool)
}

// Box is an axis-aligned solid block.
type Box struct {
	Min, Max r3.Vec
}

// Contains reports whether a point lies strictly inside the box.
func (b Box) Contains(p r3.Vec) bool {
	return p.X > b.Min.X && p.X < b.Max.X &&
		p.Y > b.Min.Y && p.Y < b.Max.Y &&
		p.Z > b.Min.Z && p.Z < b.Max.Z
}

// Terrain is world geometry made of axis-aligned boxes: floors, walls,
// ceilings and columns. It implements Raycaster for the behavior core and
// backs the navigator's reachability sampling.
type Terrain struct {
	boxes []Box
}

// NewTerrain creates empty terrain.
func NewTerrain() *Terrain {
	return &Terrain{}
}

// AddBox adds a solid block. Min/max bounds are normalized per axis.
func (t *Terrain) AddBox(min, max r3.Vec) {
	b := Box{
		Min: r3.Vec{X: math.Min(min.X, max.X), Y: math.Min(min.Y, max.Y), Z: math.Min(min.Z, max.Z)},
		Max: r3.Vec{X: math.Max(min.X, max.X), Y: math.Max(min.Y, max.Y), Z: math.Max(min.Z, max.Z)},
	}
	t.boxes = append(t.boxes, b)
}

// AddFloor adds a floor slab spanning [-halfExtent, halfExtent] in X and Y
// with its walkable top face at the given height.
func (t *Terrain) AddFloor(halfExtent, top float64) {
	t.AddBox(
		r3.Vec{X: -halfExtent, Y: -halfExtent, Z: top - 100},
		r3.Vec{X: halfExtent, Y: halfExtent, Z: top},
	)
}

// AddColumn adds a vertical column from the floor at z=base up to the
// given height, centered at (x, y) with the given half width.
func (t *Terrain) AddColumn(x, y, halfWidth, base, height float64) {
	t.AddBox(
		r3.Vec{X: x - halfWidth, Y: y - halfWidth, Z: base},
		r3.Vec{X: x + halfWidth, Y: y + halfWidth, Z: base + height},
	)
}

// TraceRay returns the nearest hit along the segment from start to end.
// A start point inside a box does not register a hit against that box, so
// a monster embedded in clearance tolerance does not trace against itself.
func (t *Terrain) TraceRay(start, end r3.Vec) (SurfaceSample, bool) {
	dir := r3.Sub(end, start)
	best := math.Inf(1)
	var bestSample SurfaceSample
	found := false

	for _, b := range t.boxes {
		tHit, normal, ok := rayBox(start, dir, b)
		if !ok || tHit >= best {
			continue
		}
		best = tHit
		bestSample = SurfaceSample{
			Point:  r3.Add(start, r3.Scale(tHit, dir)),
			Normal: normal,
		}
		found = true
	}
	return bestSample, found
}

// rayBox intersects the segment start + t*dir, t in (0, 1], with a box
// using the slab method. It returns the entry parameter and the outward
// normal of the entered face. Rays starting inside the box miss.
func rayBox(start, dir r3.Vec, b Box) (float64, r3.Vec, bool) {
	tMin := 0.0
	tMax := 1.0
	// Axis index of the face the ray enters through.
	entryAxis := -1
	entrySign := 0.0

	mins := [3]float64{b.Min.X, b.Min.Y, b.Min.Z}
	maxs := [3]float64{b.Max.X, b.Max.Y, b.Max.Z}
	origins := [3]float64{start.X, start.Y, start.Z}
	dirs := [3]float64{dir.X, dir.Y, dir.Z}

	for axis := 0; axis < 3; axis++ {
		o, d := origins[axis], dirs[axis]
		if math.Abs(d) < 1e-12 {
			if o <= mins[axis] || o >= maxs[axis] {
				return 0, r3.Vec{}, false
			}
			continue
		}
		inv := 1 / d
		t0 := (mins[axis] - o) * inv
		t1 := (maxs[axis] - o) * inv
		sign := -1.0
		if t0 > t1 {
			t0, t1 = t1, t0
			sign = 1.0
		}
		if t0 > tMin {
			tMin = t0
			entryAxis = axis
			entrySign = sign
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMin > tMax {
			return 0, r3.Vec{}, false
		}
	}

	// entryAxis < 0 means the start point is inside the box.
	if entryAxis < 0 || tMin <= 0 || tMin > 1 {
		return 0, r3.Vec{}, false
	}

	var normal r3.Vec
	switch entryAxis {
	case 0:
		normal = r3.Vec{X: entrySign}
	case 1:
		normal = r3.Vec{Y: entrySign}
	default:
		normal = r3.Vec{Z: entrySign}
	}
	return tMin, normal, true
}
