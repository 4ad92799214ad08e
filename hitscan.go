package skink

import (
	"fmt"
	"math"
)

// HitscanImpact is the first entity a hitscan ray touches.
type HitscanImpact struct {
	Entity DynamicEntity
	Id     EntityId
	Time   float64 // fraction of the ray, in [0, 1)
	Point  Vec2    // world-space impact point
}

// Hitscan bundles the entity and geometry results of one ray query.
type Hitscan struct {
	FirstEntity    *HitscanImpact // nil when nothing, or when geometry stops the ray first
	GeometryImpact Vec2           // offset from the origin; the full distance when nothing was hit
}

// scanSkipsCategory is the eligibility rule: a scan fired on behalf of a
// side never hits that side's actors. Environment entities are always
// tested. An unknown scan type is a programmer error.
func scanSkipsCategory(scanType, cat Category) bool {
	switch scanType {
	case CategoryPlayer, CategoryPlayerProjectile:
		return cat == CategoryPlayer
	case CategoryEnemy, CategoryEnemyProjectile:
		return cat == CategoryEnemy
	case CategoryEnvironment:
		return false
	}
	panic(fmt.Sprintf("skink: hitscan with invalid scan type %d", int(scanType)))
}

// GetHitscanImpact traces a point moving by distance from origin and
// returns the earliest eligible entity it enters, or nil. distance is a
// displacement, not a unit vector.
func (en *Engine) GetHitscanImpact(origin, distance Vec2, scanType Category) *HitscanImpact {
	if !scanType.valid() {
		panic(fmt.Sprintf("skink: hitscan with invalid scan type %d", int(scanType)))
	}
	en.mu.Lock()
	defer en.mu.Unlock()
	return en.hitscanImpact(origin, distance, scanType)
}

func (en *Engine) hitscanImpact(origin, distance Vec2, scanType Category) *HitscanImpact {
	var best *HitscanImpact
	for _, it := range en.master {
		if scanSkipsCategory(scanType, it.category) {
			continue
		}
		boxMin, boxMax := entityBounds(it.entity)
		hit, t, _ := sweptPointBox(origin, distance, boxMin, boxMax)
		if !hit || t >= 1 {
			continue
		}
		if best == nil || t < best.Time {
			best = &HitscanImpact{
				Entity: it.entity,
				Id:     it.id,
				Time:   t,
				Point:  origin.Add(distance.Mul(t)),
			}
		}
	}
	return best
}

// GetHitscanImpactGeometry walks the ray one unit at a time along its
// larger axis and returns the offset from origin at which it first samples
// a Full or out-of-bounds tile; the full distance if it never does.
// Directional tiles are transparent to hitscans. Tile-imprecise: the
// result is the sample position, not the exact face intersection.
func (en *Engine) GetHitscanImpactGeometry(origin, distance Vec2) Vec2 {
	en.mu.Lock()
	defer en.mu.Unlock()
	return en.hitscanImpactGeometry(origin, distance)
}

func (en *Engine) hitscanImpactGeometry(origin, distance Vec2) Vec2 {
	major := math.Max(math.Abs(distance.X()), math.Abs(distance.Y()))
	if major == 0 {
		return distance
	}
	step := distance.Mul(1 / major)
	steps := int(major) + 1

	pos := origin
	for i := 0; i < steps; i++ {
		tx := int(math.Floor(pos.X()))
		ty := int(math.Floor(pos.Y()))
		if !en.grid.InBounds(tx, ty) || en.grid.TypeAt(tx, ty) == Full {
			return pos.Sub(origin)
		}
		pos = pos.Add(step)
	}
	return distance
}

// CalculateHitscan runs both the entity and geometry scans and keeps the
// entity only if it is hit no later than the ray reaches geometry.
func (en *Engine) CalculateHitscan(origin, distance Vec2, scanType Category) Hitscan {
	if !scanType.valid() {
		panic(fmt.Sprintf("skink: hitscan with invalid scan type %d", int(scanType)))
	}
	en.mu.Lock()
	defer en.mu.Unlock()

	result := Hitscan{GeometryImpact: en.hitscanImpactGeometry(origin, distance)}
	impact := en.hitscanImpact(origin, distance, scanType)
	if impact == nil {
		return result
	}

	geometryTime := 1.0
	if l := distance.Len(); l > 0 {
		geometryTime = result.GeometryImpact.Len() / l
	}
	if impact.Time <= geometryTime {
		result.FirstEntity = impact
	}
	return result
}
