package skink

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTouchingQueries(t *testing.T) {
	en := NewEngine(3, 3)
	for x := 0; x < 3; x++ {
		en.Geometry().SetType(x, 2, Full) // floor
	}
	en.Geometry().SetType(0, 1, Full) // wall on the left
	en.Geometry().SetType(2, 1, Full) // wall on the right

	b := NewBody(Vec2{1.5, 1.5}, Vec2{0.5, 0.5})
	b.SetAffectedByGravity(false)
	en.Add(b)

	assert.True(t, en.TouchingFloor(b))
	assert.True(t, en.TouchingLeftWall(b))
	assert.True(t, en.TouchingRightWall(b))
	assert.False(t, en.TouchingCeiling(b))

	// A hair off the floor is not touching.
	b.SetLoc(Vec2{1.5, 1.4})
	assert.False(t, en.TouchingFloor(b))
}

func TestTouchingFloorRespectsDirectionalTiles(t *testing.T) {
	en := NewEngine(3, 3)
	en.Geometry().SetType(1, 2, BlocksUp) // jump-through from above: no floor

	b := NewBody(Vec2{1.5, 1.5}, Vec2{0.5, 0.5})
	assert.False(t, en.TouchingFloor(b))

	en.Geometry().SetType(1, 2, BlocksDown)
	assert.True(t, en.TouchingFloor(b))
}

func TestOrthoGeometryCollisionNormals(t *testing.T) {
	en := NewEngine(3, 3)
	for x := 0; x < 3; x++ {
		en.Geometry().SetType(x, 2, Full)
	}
	en.Geometry().SetType(2, 1, Full)

	b := NewBody(Vec2{1.5, 1.5}, Vec2{0.5, 0.5})
	nx, ny := en.OrthoGeometryCollisionNormals(b)
	assert.Equal(t, -1, nx, "wall on the right pushes left")
	assert.Equal(t, -1, ny, "floor below pushes up")

	free := NewBody(Vec2{1.0, 0.5}, Vec2{0.3, 0.3})
	nx, ny = en.OrthoGeometryCollisionNormals(free)
	assert.Zero(t, nx)
	assert.Zero(t, ny)
}

func TestPointCollidesWithGeometry(t *testing.T) {
	en := NewEngine(3, 3)
	en.Geometry().SetType(1, 1, Full)
	en.Geometry().SetType(0, 1, BlocksUp)

	assert.True(t, en.PointCollidesWithGeometry(Vec2{1.5, 1.5}))
	assert.False(t, en.PointCollidesWithGeometry(Vec2{0.5, 0.5}))
	assert.False(t, en.PointCollidesWithGeometry(Vec2{0.5, 1.5}), "one-way tiles are not point-solid")
	assert.True(t, en.PointCollidesWithGeometry(Vec2{-0.5, 0.5}), "out of bounds is full")
}

func TestIsCollidingWithGeometryDirectional(t *testing.T) {
	en := NewEngine(3, 3)
	en.Geometry().SetType(1, 1, BlocksUp)

	ghost := NewBody(Vec2{1.5, 1.5}, Vec2{0.3, 0.3})
	ghost.SetPushedByGeometry(false)

	ghost.SetSpeed(Vec2{0, -1})
	assert.True(t, en.IsCollidingWithGeometry(ghost))

	ghost.SetSpeed(Vec2{0, 1})
	assert.False(t, en.IsCollidingWithGeometry(ghost))
}
