package ecs

import (
	"errors"
	"fmt"

	"github.com/milk9111/orbitgates/common"
	"github.com/milk9111/orbitgates/ecs/component"
	"github.com/milk9111/orbitgates/physics"
)

var ErrEntityNotAlive = errors.New("ecs: entity not alive")

// View names one of the categorized id sets the world maintains.
type View uint8

const (
	ViewDrawable View = iota
	ViewUpdatable
	ViewPhysics
	ViewSpatial
	ViewPlanets
	ViewGates
	ViewAsteroids
	viewCount
)

// World owns every live entity record plus the index views over them. It is
// the only caller that creates or releases physics bodies outside of Step.
type World struct {
	entities entityStore
	records  SparseSet[*component.Entity]
	views    [viewCount]SparseSet[struct{}]

	colliderToEntity map[physics.ColliderHandle]Entity
	player           Entity

	physics *physics.Server
	rng     *common.Rand

	passDepth int
	pending   []Entity
	pendingIn map[Entity]struct{}

	dt         float64
	progress   component.Progress
	camera     component.Camera
	stepEvents []physics.Event
	events     EventQueue
	over       bool
}

// NewWorld creates an empty world bound to a physics server and the run's
// random source.
func NewWorld(srv *physics.Server, rng *common.Rand) *World {
	return &World{
		colliderToEntity: make(map[physics.ColliderHandle]Entity),
		pendingIn:        make(map[Entity]struct{}),
		physics:          srv,
		rng:              rng,
	}
}

// Insert registers rec in every view its kind supports and returns its id.
// Colliders already attached to rec.Body become resolvable through
// EntityForCollider.
func (w *World) Insert(rec *component.Entity) Entity {
	if rec == nil || rec.Variant == nil {
		panic("ecs: insert entity without variant")
	}
	kind := rec.Kind()
	if kind == component.KindPlayer && w.IsAlive(w.player) {
		panic("ecs: second live player")
	}

	caps := rec.Capabilities()
	if caps.Has(component.PhysicsBound) && (w.physics == nil || !w.physics.ContainsBody(rec.Body)) {
		panic(fmt.Sprintf("ecs: %s inserted without a live body", kind))
	}

	e := w.entities.create()
	w.records.Set(e, rec)
	for _, v := range viewsFor(kind, caps) {
		w.views[v].Set(e, struct{}{})
	}
	if caps.Has(component.PhysicsBound) {
		for _, c := range w.physics.Colliders(rec.Body) {
			w.colliderToEntity[c] = e
		}
	}
	if kind == component.KindPlayer {
		w.player = e
	}
	return e
}

func viewsFor(kind component.Kind, caps component.Capability) []View {
	out := make([]View, 0, 5)
	if caps.Has(component.Drawable) {
		out = append(out, ViewDrawable)
	}
	if caps.Has(component.Updatable) {
		out = append(out, ViewUpdatable)
	}
	if caps.Has(component.PhysicsBound) {
		out = append(out, ViewPhysics)
	}
	if caps.Has(component.Spatial) {
		out = append(out, ViewSpatial)
	}
	switch kind {
	case component.KindPlanet:
		out = append(out, ViewPlanets)
	case component.KindGate:
		out = append(out, ViewGates)
	case component.KindAsteroid:
		out = append(out, ViewAsteroids)
	}
	return out
}

// Remove deletes e. Inside an iteration pass the request is buffered until
// FlushRemovals; repeated requests for the same entity collapse into one.
func (w *World) Remove(e Entity) error {
	if !w.IsAlive(e) {
		return fmt.Errorf("ecs: remove %s: %w", e, ErrEntityNotAlive)
	}
	if w.passDepth > 0 {
		if _, ok := w.pendingIn[e]; !ok {
			w.pendingIn[e] = struct{}{}
			w.pending = append(w.pending, e)
		}
		return nil
	}
	w.removeNow(e)
	return nil
}

func (w *World) removeNow(e Entity) {
	rec, _ := w.records.Get(e)
	if rec.Capabilities().Has(component.PhysicsBound) {
		for _, c := range w.physics.Colliders(rec.Body) {
			delete(w.colliderToEntity, c)
		}
		w.physics.RemoveBody(rec.Body)
	}
	for i := range w.views {
		w.views[i].Remove(e)
	}
	w.records.Remove(e)
	w.entities.destroy(e)
	if e == w.player {
		w.player = 0
	}
}

// PendingRemovals reports how many removals are buffered.
func (w *World) PendingRemovals() int {
	return len(w.pending)
}

// RemovalPending reports whether e is waiting for FlushRemovals.
func (w *World) RemovalPending(e Entity) bool {
	_, ok := w.pendingIn[e]
	return ok
}

// FlushRemovals applies every buffered removal. It panics if called inside
// a pass.
func (w *World) FlushRemovals() int {
	if w.passDepth > 0 {
		panic("ecs: flush removals inside iteration pass")
	}
	n := 0
	for _, e := range w.pending {
		delete(w.pendingIn, e)
		if !w.IsAlive(e) {
			continue
		}
		w.removeNow(e)
		n++
	}
	w.pending = w.pending[:0]
	return n
}

// BeginPass starts an iteration pass; removals are deferred until the
// matching EndPass and a FlushRemovals.
func (w *World) BeginPass() {
	w.passDepth++
}

func (w *World) EndPass() {
	if w.passDepth == 0 {
		panic("ecs: EndPass without BeginPass")
	}
	w.passDepth--
}

// Each calls fn for every entity in view v. The view is snapshotted so fn
// may request removals.
func (w *World) Each(v View, fn func(Entity, *component.Entity)) {
	ids := w.View(v)
	w.BeginPass()
	defer w.EndPass()
	for _, e := range ids {
		rec, ok := w.records.Get(e)
		if !ok {
			continue
		}
		fn(e, rec)
	}
}

func (w *World) EachPhysics(fn func(Entity, *component.Entity)) {
	w.Each(ViewPhysics, fn)
}

func (w *World) EachUpdatable(fn func(Entity, *component.Entity)) {
	w.Each(ViewUpdatable, fn)
}

// View returns a copy of the ids in v.
func (w *World) View(v View) []Entity {
	return append([]Entity(nil), w.views[v].Entities()...)
}

// Query returns the ids present in both views.
func (w *World) Query(a, b View) []Entity {
	return IntersectEntities(&w.views[a], &w.views[b])
}

func (w *World) Count(v View) int {
	return w.views[v].Len()
}

func (w *World) InView(v View, e Entity) bool {
	return w.views[v].Has(e)
}

func (w *World) IsAlive(e Entity) bool {
	return w.entities.isAlive(e)
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return w.entities.live
}

func (w *World) Get(e Entity) (*component.Entity, bool) {
	return w.records.Get(e)
}

// EntityForCollider resolves a collider to the entity owning its body.
func (w *World) EntityForCollider(c physics.ColliderHandle) (Entity, bool) {
	e, ok := w.colliderToEntity[c]
	return e, ok
}

// Player returns the single live player, if any.
func (w *World) Player() (Entity, *component.Entity, bool) {
	if !w.IsAlive(w.player) {
		return 0, nil, false
	}
	rec, _ := w.records.Get(w.player)
	return w.player, rec, true
}

func (w *World) Physics() *physics.Server {
	return w.physics
}

func (w *World) Rand() *common.Rand {
	return w.rng
}

func (w *World) SetDt(dt float64) {
	w.dt = dt
}

func (w *World) Dt() float64 {
	return w.dt
}

func (w *World) Progress() *component.Progress {
	return &w.progress
}

func (w *World) Camera() *component.Camera {
	return &w.camera
}

// SetStepEvents stores the events drained from the most recent physics
// step for the resolution phases of the same tick.
func (w *World) SetStepEvents(evts []physics.Event) {
	w.stepEvents = evts
}

func (w *World) StepEvents() []physics.Event {
	return w.stepEvents
}

// MarkRunOver latches the end of the run. It is set by the run state phase
// so every phase of the ending tick still resolves its events.
func (w *World) MarkRunOver() {
	w.over = true
}

// RunOver reports whether an earlier tick ended the run.
func (w *World) RunOver() bool {
	return w.over
}

// CountLive is Count minus entities already queued for removal.
func (w *World) CountLive(v View) int {
	n := w.Count(v)
	for _, e := range w.pending {
		if w.InView(v, e) {
			n--
		}
	}
	return n
}

// Events returns the outward game event queue.
func (w *World) Events() *EventQueue {
	return &w.events
}
