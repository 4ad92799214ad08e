package skink

import "fmt"

// GeometryType classifies one tile of the static world grid. The
// directional variants are one-way blockers: they are solid only to an
// entity whose speed crosses their face. With +Y pointing down, BlocksUp
// stops entities moving up (speed.y < 0), the kind of tile a platformer
// uses for jump-through platforms flipped on their head.
type GeometryType int

const (
	Empty GeometryType = iota
	Full
	BlocksLeft
	BlocksRight
	BlocksUp
	BlocksDown
)

func (gt GeometryType) String() string {
	switch gt {
	case Empty:
		return "empty"
	case Full:
		return "full"
	case BlocksLeft:
		return "blocks-left"
	case BlocksRight:
		return "blocks-right"
	case BlocksUp:
		return "blocks-up"
	case BlocksDown:
		return "blocks-down"
	}
	return fmt.Sprintf("geometry(%d)", int(gt))
}

// SolidAgainst reports whether a tile of this type blocks an entity moving
// with the given speed.
func (gt GeometryType) SolidAgainst(speed Vec2) bool {
	switch gt {
	case Full:
		return true
	case BlocksLeft:
		return speed.X() < 0
	case BlocksRight:
		return speed.X() > 0
	case BlocksUp:
		return speed.Y() < 0
	case BlocksDown:
		return speed.Y() > 0
	}
	return false
}

// GeometryGrid is the static tile world, indexed [x][y]. Tile (i, j)
// occupies the box [i, i+1] x [j, j+1]. Coordinates outside the grid
// behave as Full so nothing falls out of the world.
//
// Mutation belongs to the host and must happen between ticks; a tick
// treats the grid as read-only.
type GeometryGrid struct {
	width  int
	height int
	tiles  [][]GeometryType
}

func NewGeometryGrid(width, height int) *GeometryGrid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	tiles := make([][]GeometryType, width)
	for x := range tiles {
		tiles[x] = make([]GeometryType, height)
	}
	return &GeometryGrid{width: width, height: height, tiles: tiles}
}

func (g *GeometryGrid) Width() int  { return g.width }
func (g *GeometryGrid) Height() int { return g.height }

func (g *GeometryGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// TypeAt returns the tile at (x, y). Out-of-bounds coordinates read as
// Full; that is a rule, not an error.
func (g *GeometryGrid) TypeAt(x, y int) GeometryType {
	if !g.InBounds(x, y) {
		return Full
	}
	return g.tiles[x][y]
}

// SetType writes a tile. Out-of-bounds writes are dropped.
func (g *GeometryGrid) SetType(x, y int, gt GeometryType) {
	if !g.InBounds(x, y) {
		return
	}
	g.tiles[x][y] = gt
}

// Fill sets every tile to the given type.
func (g *GeometryGrid) Fill(gt GeometryType) {
	for x := range g.tiles {
		for y := range g.tiles[x] {
			g.tiles[x][y] = gt
		}
	}
}
