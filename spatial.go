package skink

import "math"

// SpatialHashGrid buckets entity AABBs into fixed-size cells so the
// collision phase can skip pairs that share no cell. It stores only ids;
// callers still run the precise overlap test on the survivors.
type SpatialHashGrid struct {
	cellSize float64
	cells    map[uint64][]EntityId
}

func NewSpatialHashGrid(cellSize float64) *SpatialHashGrid {
	return &SpatialHashGrid{
		cellSize: cellSize,
		cells:    make(map[uint64][]EntityId),
	}
}

func (g *SpatialHashGrid) Clear() {
	clear(g.cells)
}

func (g *SpatialHashGrid) Insert(id EntityId, min, max Vec2) {
	minX, maxX := g.cellIndex(min.X()), g.cellIndex(max.X())
	minY, maxY := g.cellIndex(min.Y()), g.cellIndex(max.Y())

	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			key := g.hashKey(x, y)
			g.cells[key] = append(g.cells[key], id)
		}
	}
}

// Query returns the set of ids whose AABBs share at least one cell with
// the given box. A set rather than a list: cell membership carries no
// usable order, so callers filter their own ordered lists with it.
func (g *SpatialHashGrid) Query(min, max Vec2) map[EntityId]bool {
	minX, maxX := g.cellIndex(min.X()), g.cellIndex(max.X())
	minY, maxY := g.cellIndex(min.Y()), g.cellIndex(max.Y())

	found := make(map[EntityId]bool)
	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			for _, id := range g.cells[g.hashKey(x, y)] {
				found[id] = true
			}
		}
	}
	return found
}

func (g *SpatialHashGrid) cellIndex(v float64) int {
	return int(math.Floor(v / g.cellSize))
}

// Large primes for mixing the cell coordinates into one key.
func (g *SpatialHashGrid) hashKey(x, y int) uint64 {
	const p1 = 73856093
	const p2 = 19349663
	return uint64(x*p1 ^ y*p2)
}
