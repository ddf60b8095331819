package system

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/orbitgates/common"
	"github.com/milk9111/orbitgates/ecs"
	"github.com/milk9111/orbitgates/ecs/component"
	"github.com/milk9111/orbitgates/ecs/entity"
	"github.com/milk9111/orbitgates/prefabs"
)

// FragmentSource is the state of an asteroid at the moment it breaks.
type FragmentSource struct {
	Position cp.Vector
	Velocity cp.Vector
	Scale    float64
}

// Fragment computes the children of a destroyed asteroid. Asteroids at or
// below the split threshold leave nothing behind. A parent with no velocity
// breaks along +X with zero speed.
func Fragment(parent FragmentSource, spec prefabs.AsteroidSpec, rng *common.Rand) []entity.AsteroidParams {
	if parent.Scale <= spec.SplitThreshold {
		return nil
	}

	speed := parent.Velocity.Length()
	dir := common.SafeNormalize(parent.Velocity, cp.Vector{X: 1})
	if math.IsNaN(speed) || math.IsInf(speed, 0) {
		speed = 0
	}
	origin := parent.Position.Sub(dir.Mult(spec.BackOffset))

	n := rng.IntRange(spec.ChildrenMin, spec.ChildrenMax)
	out := make([]entity.AsteroidParams, 0, n)
	for i := 0; i < n; i++ {
		childSpeed := speed * rng.Uniform(spec.SpeedMin, spec.SpeedMax)
		childDir := common.Rotate(dir, rng.Uniform(0.5*math.Pi, 1.5*math.Pi))
		out = append(out, entity.AsteroidParams{
			Position:        origin,
			Velocity:        childDir.Mult(childSpeed),
			AngularVelocity: rng.Uniform(-spec.SpinMax, spec.SpinMax),
			Scale:           parent.Scale * rng.Uniform(spec.ScaleMin, spec.ScaleMax),
			Variant:         rng.IntRange(0, max(spec.Variants-1, 0)),
		})
	}
	return out
}

// AsteroidLifecycle spawns and destroys asteroids. Destruction defers the
// removal to the end of the tick but spawns fragments immediately.
type AsteroidLifecycle struct {
	spec prefabs.AsteroidSpec
}

func NewAsteroidLifecycle(spec prefabs.AsteroidSpec) *AsteroidLifecycle {
	return &AsteroidLifecycle{spec: spec}
}

func (l *AsteroidLifecycle) Spawn(w *ecs.World, p entity.AsteroidParams) (ecs.Entity, error) {
	return entity.NewAsteroid(w, l.spec, p)
}

// Destroy removes asteroid e and spawns its fragments. It returns the number
// of children spawned.
func (l *AsteroidLifecycle) Destroy(w *ecs.World, e ecs.Entity) int {
	rec, ok := w.Get(e)
	if !ok || w.RemovalPending(e) {
		return 0
	}
	a, ok := rec.Asteroid()
	if !ok {
		return 0
	}

	srv := w.Physics()
	src := FragmentSource{
		Position: srv.Position(rec.Body),
		Velocity: srv.LinearVelocity(rec.Body),
		Scale:    a.Scale,
	}

	w.BeginPass()
	err := w.Remove(e)
	w.EndPass()
	if err != nil {
		return 0
	}

	children := 0
	for _, p := range Fragment(src, l.spec, w.Rand()) {
		if _, err := l.Spawn(w, p); err != nil {
			log.Printf("Asteroids: spawn fragment: %v", err)
			continue
		}
		children++
	}

	w.Events().Push(ecs.Event{Type: ecs.EventAsteroidDestroyed, Data: ecs.AsteroidDestroyedEvent{
		Entity:   e,
		Scale:    a.Scale,
		Children: children,
	}})
	return children
}

// IsAsteroid reports whether e is a live asteroid.
func IsAsteroid(w *ecs.World, e ecs.Entity) bool {
	return w.InView(ecs.ViewAsteroids, e)
}

func kindOf(w *ecs.World, e ecs.Entity) component.Kind {
	rec, ok := w.Get(e)
	if !ok {
		return 0
	}
	return rec.Kind()
}
