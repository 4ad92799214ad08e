package skink

import "math"

// SweptAABB is a resolved continuous collision between a moving entity box
// and one tile. Time is the entry time as a fraction of the step, Normal
// is the unit surface normal of the face that was hit.
type SweptAABB struct {
	Time   float64
	Normal Vec2
	TileX  int
	TileY  int
	Type   GeometryType
}

// sweptPointBox runs the slab test of a point starting at origin and
// moving by delta against the box [boxMin, boxMax]. A point already inside
// the box reports a hit at time zero. The normal axis is the one entered
// last; ties go to X.
func sweptPointBox(origin, delta, boxMin, boxMax Vec2) (bool, float64, Vec2) {
	var enter, exit [2]float64
	for i := 0; i < 2; i++ {
		switch {
		case delta[i] > 0:
			enter[i] = (boxMin[i] - origin[i]) / delta[i]
			exit[i] = (boxMax[i] - origin[i]) / delta[i]
		case delta[i] < 0:
			enter[i] = (boxMax[i] - origin[i]) / delta[i]
			exit[i] = (boxMin[i] - origin[i]) / delta[i]
		default:
			// No motion on this axis: either permanently inside the slab
			// or never in it.
			if origin[i] <= boxMin[i] || origin[i] >= boxMax[i] {
				return false, 0, Vec2{}
			}
			enter[i] = math.Inf(-1)
			exit[i] = math.Inf(1)
		}
	}

	entry := math.Max(enter[0], enter[1])
	leave := math.Min(exit[0], exit[1])
	if entry >= leave || leave <= 0 || entry > 1 {
		return false, 0, Vec2{}
	}

	axis := 0
	if enter[1] > enter[0] {
		axis = 1
	}
	var normal Vec2
	switch {
	case delta[axis] > 0:
		normal[axis] = -1
	case delta[axis] < 0:
		normal[axis] = 1
	default:
		// Started overlapping with no motion on the winning axis; push
		// toward the nearer face.
		if origin[axis] < (boxMin[axis]+boxMax[axis])/2 {
			normal[axis] = -1
		} else {
			normal[axis] = 1
		}
	}

	if entry < 0 {
		entry = 0
	}
	return true, entry, normal
}

// CollisionCheckGeometry sweeps an entity against a single tile over dt.
// The tile box is Minkowski-expanded by the entity's half-extents so the
// entity center can be traced as a point. One-way tiles participate only
// when the entity's speed crosses their blocked face.
func CollisionCheckGeometry(e DynamicEntity, dt float64, tx, ty int, gt GeometryType) (SweptAABB, bool) {
	if !gt.SolidAgainst(e.Speed()) {
		return SweptAABB{}, false
	}

	half := Vec2{e.HalfWidth(), e.HalfHeight()}
	boxMin := Vec2{float64(tx), float64(ty)}.Sub(half)
	boxMax := Vec2{float64(tx) + 1, float64(ty) + 1}.Add(half)

	hit, t, normal := sweptPointBox(e.Loc(), e.Speed().Mul(dt), boxMin, boxMax)
	if !hit {
		return SweptAABB{}, false
	}
	return SweptAABB{Time: t, Normal: normal, TileX: tx, TileY: ty, Type: gt}, true
}
