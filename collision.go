package skink

// runCollisionPhase reports pairwise overlaps at post-integration
// positions, following the category matrix:
//
//	player        -> enemies, enemy projectiles
//	enemy         -> player projectiles
//	projectiles   -> geometry only
//	environment   -> everything in the master list
//
// Reports are reciprocal except environment-vs-environment, where only the
// earlier-added of the two receives a report; the later one skips the pair
// entirely. That keeps every unordered pair at one report per rule cell.
// Callers hold the engine lock.
func (en *Engine) runCollisionPhase() {
	en.rebuildBroadphase()

	// Geometry overlap for entities the resolver does not own. Pushed
	// entities were already placed flush against solid tiles.
	for _, it := range en.master {
		if !it.entity.PushedByGeometry() && en.isCollidingWithGeometry(it.entity) {
			it.entity.MovingCollisionOccurred(MovingCollision{})
		}
	}

	for _, p := range en.byCat[CategoryPlayer] {
		en.reportPairs(p, en.byCat[CategoryEnemy])
		en.reportPairs(p, en.byCat[CategoryEnemyProjectile])
	}
	for _, e := range en.byCat[CategoryEnemy] {
		en.reportPairs(e, en.byCat[CategoryPlayerProjectile])
	}

	visited := make(map[EntityId]bool)
	for _, env := range en.byCat[CategoryEnvironment] {
		near := en.broadphase.Query(entityBounds(env.entity))
		for _, other := range en.master {
			if other == env {
				continue
			}
			if other.category == CategoryEnvironment && visited[other.id] {
				continue
			}
			if !near[other.id] || !env.entity.IsColliding(other.entity) {
				continue
			}
			env.entity.MovingCollisionOccurred(MovingCollision{Other: other.entity, OtherId: other.id})
			if other.category != CategoryEnvironment {
				other.entity.MovingCollisionOccurred(MovingCollision{Other: env.entity, OtherId: env.id})
			}
		}
		visited[env.id] = true
	}
}

// reportPairs tests one entity against a category list in insertion order
// and delivers reciprocal reports for each overlap.
func (en *Engine) reportPairs(a *entityEntry, targets []*entityEntry) {
	if len(targets) == 0 {
		return
	}
	near := en.broadphase.Query(entityBounds(a.entity))
	for _, t := range targets {
		if !near[t.id] || !a.entity.IsColliding(t.entity) {
			continue
		}
		a.entity.MovingCollisionOccurred(MovingCollision{Other: t.entity, OtherId: t.id})
		t.entity.MovingCollisionOccurred(MovingCollision{Other: a.entity, OtherId: a.id})
	}
}

func (en *Engine) rebuildBroadphase() {
	en.broadphase.Clear()
	for _, it := range en.master {
		min, max := entityBounds(it.entity)
		en.broadphase.Insert(it.id, min, max)
	}
}

func entityBounds(e DynamicEntity) (Vec2, Vec2) {
	half := Vec2{e.HalfWidth(), e.HalfHeight()}
	return e.Loc().Sub(half), e.Loc().Add(half)
}
