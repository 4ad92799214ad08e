package skink

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec2 is the engine's 2D vector. +X grows right, +Y grows down.
// Distances are in tiles, speeds in tiles per second.
type Vec2 = mgl64.Vec2

// impulse is the speed change produced by an acceleration over dt.
func impulse(accel Vec2, dt float64) Vec2 {
	return accel.Mul(dt)
}

func distSq(a, b Vec2) float64 {
	d := a.Sub(b)
	return d.Dot(d)
}

// tileCenter is the world-space center of tile (x, y); tiles have unit side.
func tileCenter(x, y int) Vec2 {
	return Vec2{float64(x) + 0.5, float64(y) + 0.5}
}

// tileSpan returns the tile indices [lo..hi] overlapped by the open
// interval (min, max). The epsilon keeps a box that merely touches a tile
// boundary from claiming the neighbouring tile.
func tileSpan(min, max float64) (int, int) {
	return int(math.Floor(min + touchEpsilon)), int(math.Floor(max - touchEpsilon))
}

const touchEpsilon = 1e-7
