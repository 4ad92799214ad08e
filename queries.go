package skink

import "math"

// Directions used for directional-tile solidity checks.
var (
	dirLeft  = Vec2{-1, 0}
	dirRight = Vec2{1, 0}
	dirUp    = Vec2{0, -1}
	dirDown  = Vec2{0, 1}
)

// IsInBounds reports whether tile (x, y) lies inside the grid.
func (en *Engine) IsInBounds(x, y int) bool {
	en.mu.Lock()
	defer en.mu.Unlock()
	return en.grid.InBounds(x, y)
}

// GeometryTypeAt returns the tile at (x, y); out of bounds reads as Full.
func (en *Engine) GeometryTypeAt(x, y int) GeometryType {
	en.mu.Lock()
	defer en.mu.Unlock()
	return en.grid.TypeAt(x, y)
}

// PointCollidesWithGeometry reports whether the point sits inside a Full
// tile (or outside the grid). One-way tiles are not point-solid, matching
// the hitscan geometry rule.
func (en *Engine) PointCollidesWithGeometry(p Vec2) bool {
	en.mu.Lock()
	defer en.mu.Unlock()
	return en.grid.TypeAt(int(math.Floor(p.X())), int(math.Floor(p.Y()))) == Full
}

// IsCollidingWithGeometry reports whether the entity's AABB overlaps any
// tile solid against its current motion.
func (en *Engine) IsCollidingWithGeometry(e DynamicEntity) bool {
	en.mu.Lock()
	defer en.mu.Unlock()
	return en.isCollidingWithGeometry(e)
}

func (en *Engine) isCollidingWithGeometry(e DynamicEntity) bool {
	x0, x1 := tileSpan(e.Loc().X()-e.HalfWidth(), e.Loc().X()+e.HalfWidth())
	y0, y1 := tileSpan(e.Loc().Y()-e.HalfHeight(), e.Loc().Y()+e.HalfHeight())
	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			if en.grid.TypeAt(x, y).SolidAgainst(e.Speed()) {
				return true
			}
		}
	}
	return false
}

// TouchingFloor reports whether the entity rests flush on a tile that
// blocks downward motion.
func (en *Engine) TouchingFloor(e DynamicEntity) bool {
	en.mu.Lock()
	defer en.mu.Unlock()
	return en.touchingRow(e, e.Loc().Y()+e.HalfHeight(), 0, dirDown)
}

// TouchingCeiling reports whether the entity is flush under a tile that
// blocks upward motion.
func (en *Engine) TouchingCeiling(e DynamicEntity) bool {
	en.mu.Lock()
	defer en.mu.Unlock()
	return en.touchingRow(e, e.Loc().Y()-e.HalfHeight(), -1, dirUp)
}

// TouchingLeftWall reports whether the entity is flush against a tile on
// its left that blocks leftward motion.
func (en *Engine) TouchingLeftWall(e DynamicEntity) bool {
	en.mu.Lock()
	defer en.mu.Unlock()
	return en.touchingColumn(e, e.Loc().X()-e.HalfWidth(), -1, dirLeft)
}

// TouchingRightWall reports whether the entity is flush against a tile on
// its right that blocks rightward motion.
func (en *Engine) TouchingRightWall(e DynamicEntity) bool {
	en.mu.Lock()
	defer en.mu.Unlock()
	return en.touchingColumn(e, e.Loc().X()+e.HalfWidth(), 0, dirRight)
}

// touchingRow checks the tile row adjacent to a horizontal face. The face
// must sit exactly on a tile boundary (within epsilon); rowShift picks the
// row on the far side of that boundary.
func (en *Engine) touchingRow(e DynamicEntity, face float64, rowShift int, dir Vec2) bool {
	boundary := math.Round(face)
	if math.Abs(face-boundary) > touchEpsilon {
		return false
	}
	row := int(boundary) + rowShift
	x0, x1 := tileSpan(e.Loc().X()-e.HalfWidth(), e.Loc().X()+e.HalfWidth())
	for x := x0; x <= x1; x++ {
		if en.grid.TypeAt(x, row).SolidAgainst(dir) {
			return true
		}
	}
	return false
}

func (en *Engine) touchingColumn(e DynamicEntity, face float64, colShift int, dir Vec2) bool {
	boundary := math.Round(face)
	if math.Abs(face-boundary) > touchEpsilon {
		return false
	}
	col := int(boundary) + colShift
	y0, y1 := tileSpan(e.Loc().Y()-e.HalfHeight(), e.Loc().Y()+e.HalfHeight())
	for y := y0; y <= y1; y++ {
		if en.grid.TypeAt(col, y).SolidAgainst(dir) {
			return true
		}
	}
	return false
}

// OrthoGeometryCollisionNormals sums the blocked directions around the
// entity into a single {-1, 0, +1} pair, normals pointing away from the
// surfaces. Not reliable for half-extents above 0.5: a wide entity can
// touch opposing faces of the same tile row and the components cancel.
func (en *Engine) OrthoGeometryCollisionNormals(e DynamicEntity) (int, int) {
	en.mu.Lock()
	defer en.mu.Unlock()

	nx, ny := 0, 0
	if en.touchingColumn(e, e.Loc().X()-e.HalfWidth(), -1, dirLeft) {
		nx++
	}
	if en.touchingColumn(e, e.Loc().X()+e.HalfWidth(), 0, dirRight) {
		nx--
	}
	if en.touchingRow(e, e.Loc().Y()-e.HalfHeight(), -1, dirUp) {
		ny++
	}
	if en.touchingRow(e, e.Loc().Y()+e.HalfHeight(), 0, dirDown) {
		ny--
	}
	return nx, ny
}
