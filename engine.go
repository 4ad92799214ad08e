package skink

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

const (
	defaultGravity          = 9.8  // tiles per second squared, +Y is down
	defaultTerminalVelocity = 20.0 // tiles per second
	broadphaseCellSize      = 2.0
)

// entityEntry binds a host entity to its engine-side handle and category.
type entityEntry struct {
	id       EntityId
	entity   DynamicEntity
	category Category
}

// Engine owns the simulation: the geometry grid, the entity lists and the
// tick driver. One tick runs motion integration for every entity, then the
// categorized pairwise collision phase, then drains deferred removals.
//
// A single coarse lock covers a tick; hosts may call queries and setters
// from other goroutines between ticks.
type Engine struct {
	mu sync.Mutex

	gravity          float64
	terminalVelocity float64
	grid             *GeometryGrid

	master  []*entityEntry
	byCat   map[Category][]*entityEntry
	byId    map[EntityId]*entityEntry
	pending []EntityId

	broadphase *SpatialHashGrid
	tickCount  uint64

	running    bool
	terminated atomic.Bool
	cps        atomic.Int64

	log Logger
}

// NewEngine returns an engine with an empty width x height grid, default
// gravity and terminal velocity, and the run flag enabled.
func NewEngine(width, height int) *Engine {
	return &Engine{
		gravity:          defaultGravity,
		terminalVelocity: defaultTerminalVelocity,
		grid:             NewGeometryGrid(width, height),
		byCat:            make(map[Category][]*entityEntry),
		byId:             make(map[EntityId]*entityEntry),
		broadphase:       NewSpatialHashGrid(broadphaseCellSize),
		running:          true,
		log:              NewNopLogger(),
	}
}

func (en *Engine) Gravity() float64 {
	en.mu.Lock()
	defer en.mu.Unlock()
	return en.gravity
}

func (en *Engine) SetGravity(g float64) {
	en.mu.Lock()
	en.gravity = g
	en.mu.Unlock()
}

func (en *Engine) TerminalVelocity() float64 {
	en.mu.Lock()
	defer en.mu.Unlock()
	return en.terminalVelocity
}

func (en *Engine) SetTerminalVelocity(tv float64) {
	en.mu.Lock()
	en.terminalVelocity = tv
	en.mu.Unlock()
}

// Geometry returns the live grid. Hosts mutate it between ticks only.
func (en *Engine) Geometry() *GeometryGrid {
	en.mu.Lock()
	defer en.mu.Unlock()
	return en.grid
}

// SetGeometry swaps the grid; observable from the next tick.
func (en *Engine) SetGeometry(grid *GeometryGrid) {
	en.mu.Lock()
	en.grid = grid
	en.mu.Unlock()
}

func (en *Engine) Running() bool {
	en.mu.Lock()
	defer en.mu.Unlock()
	return en.running
}

func (en *Engine) SetRunning(running bool) {
	en.mu.Lock()
	en.running = running
	en.mu.Unlock()
}

func (en *Engine) SetLogger(log Logger) {
	if log == nil {
		log = NewNopLogger()
	}
	en.mu.Lock()
	en.log = log
	en.mu.Unlock()
}

// CPS is the cycles-per-second metric maintained by Run, refreshed about
// once per second. Zero when the engine is host-driven.
func (en *Engine) CPS() int {
	return int(en.cps.Load())
}

// TickCount is the number of completed ticks.
func (en *Engine) TickCount() uint64 {
	en.mu.Lock()
	defer en.mu.Unlock()
	return en.tickCount
}

// Add registers an entity in the Environment category and returns its
// handle. Effective immediately before the next tick.
func (en *Engine) Add(e DynamicEntity) EntityId {
	return en.AddWithCategory(e, CategoryEnvironment)
}

// AddWithCategory registers an entity under the given category. An
// out-of-range category is a programmer error and panics.
func (en *Engine) AddWithCategory(e DynamicEntity, c Category) EntityId {
	if !c.valid() {
		panic(fmt.Sprintf("skink: add with invalid category %d", int(c)))
	}
	en.mu.Lock()
	defer en.mu.Unlock()

	it := &entityEntry{
		id:       EntityId(uuid.NewString()),
		entity:   e,
		category: c,
	}
	en.master = append(en.master, it)
	en.byCat[c] = append(en.byCat[c], it)
	en.byId[it.id] = it
	return it.id
}

// Remove enqueues an entity for removal. The queue is drained after the
// tick completes, so a tick never mutates the lists it iterates.
func (en *Engine) Remove(e DynamicEntity) {
	en.mu.Lock()
	defer en.mu.Unlock()
	for _, it := range en.master {
		if it.entity == e {
			en.pending = append(en.pending, it.id)
			return
		}
	}
}

// RemoveId is Remove by handle.
func (en *Engine) RemoveId(id EntityId) {
	en.mu.Lock()
	defer en.mu.Unlock()
	if _, ok := en.byId[id]; ok {
		en.pending = append(en.pending, id)
	}
}

// Lookup resolves a handle back to its entity, or nil.
func (en *Engine) Lookup(id EntityId) DynamicEntity {
	en.mu.Lock()
	defer en.mu.Unlock()
	if it, ok := en.byId[id]; ok {
		return it.entity
	}
	return nil
}

// Tick advances the simulation by dtMillis. Non-positive deltas and a
// cleared run flag are silent no-ops.
func (en *Engine) Tick(dtMillis int64) {
	if dtMillis <= 0 {
		return
	}
	en.mu.Lock()
	defer en.mu.Unlock()
	if !en.running {
		return
	}

	dt := float64(dtMillis) / 1000.0
	en.stepPhysics(dt)
	en.runCollisionPhase()
	en.drainPending()
	en.tickCount++
}

// stepPhysics integrates every entity: own accelerations, gravity impulse,
// geometry resolution, position advance. Master-list order, so identical
// input always produces identical state.
func (en *Engine) stepPhysics(dt float64) {
	for _, it := range en.master {
		e := it.entity
		e.ApplyAccelerations(dt)
		if e.AffectedByGravity() {
			e.ApplyGravityImpulse(en.gravity*dt, en.terminalVelocity)
		}
		if e.PushedByGeometry() {
			// resolveGeometry ends with ApplySpeeds.
			resolveGeometry(e, en.grid, dt)
		} else {
			e.ApplySpeeds(dt)
		}
	}
}

func (en *Engine) drainPending() {
	if len(en.pending) == 0 {
		return
	}
	for _, id := range en.pending {
		it, ok := en.byId[id]
		if !ok {
			continue
		}
		delete(en.byId, id)
		en.master = removeEntry(en.master, it)
		en.byCat[it.category] = removeEntry(en.byCat[it.category], it)
	}
	en.pending = en.pending[:0]
}

// removeEntry filters one entry out of a list, preserving order.
func removeEntry(list []*entityEntry, it *entityEntry) []*entityEntry {
	for i := range list {
		if list[i] == it {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// Run drives the engine from its own monotonic clock until Terminate is
// called, maintaining the cps metric. Hosts that own a loop call Tick
// directly instead; both styles are supported.
func (en *Engine) Run() {
	en.mu.Lock()
	en.running = true
	log := en.log
	en.mu.Unlock()
	en.terminated.Store(false)

	log.Infof("driver started")
	clk := newTickClock()
	for !en.terminated.Load() {
		if dtMillis := clk.advance(); dtMillis > 0 {
			en.Tick(dtMillis)
		}
		if cps, ok := clk.rollWindow(); ok {
			en.cps.Store(int64(cps))
			log.Debugf("cps: %d", cps)
		}
		// Cooperative yield between cycles; the engine never blocks on IO.
		time.Sleep(time.Millisecond)
	}
	log.Infof("driver stopped after %d ticks", en.TickCount())
}

// Terminate makes Run exit before its next tick. In-flight tick work is
// not interrupted.
func (en *Engine) Terminate() {
	en.terminated.Store(true)
}

func (en *Engine) Terminated() bool {
	return en.terminated.Load()
}
