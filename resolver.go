package skink

// geometryCandidate is one tile the resolver may have to push an entity
// out of this step.
type geometryCandidate struct {
	x, y int
	gt   GeometryType
	dsq  float64
}

// resolveGeometry pushes a single entity out of the solid tiles its swept
// box crosses during dt, then integrates its position. Candidates are
// taken nearest tile center first: resolving the closer blocker first
// keeps the farther one from being consulted with a stale speed. Ties keep
// insertion order, which is what makes a tick reproducible.
func resolveGeometry(e DynamicEntity, grid *GeometryGrid, dt float64) {
	ox, oy := e.PotentialCollisionOrigin(dt)
	ex, ey := e.PotentialCollisionEnd(dt)

	center := e.Loc()
	var candidates []geometryCandidate
	for x := ox; x <= ex; x++ {
		for y := oy; y <= ey; y++ {
			gt := grid.TypeAt(x, y) // out of bounds reads as Full
			if gt == Empty {
				continue
			}
			candidates = append(candidates, geometryCandidate{
				x: x, y: y, gt: gt,
				dsq: distSq(tileCenter(x, y), center),
			})
		}
	}

	// Repeated minimum scan instead of a sort: candidate lists are small,
	// and picking the first minimal index preserves insertion order on
	// equal distances.
	used := make([]bool, len(candidates))
	for n := 0; n < len(candidates); n++ {
		best := -1
		for i := range candidates {
			if used[i] {
				continue
			}
			if best < 0 || candidates[i].dsq < candidates[best].dsq {
				best = i
			}
		}
		used[best] = true

		c := candidates[best]
		if hit, ok := CollisionCheckGeometry(e, dt, c.x, c.y, c.gt); ok {
			e.AdjustForCollision(hit)
		}
	}

	e.ApplySpeeds(dt)
}
