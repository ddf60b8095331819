package system

import (
	"github.com/milk9111/orbitgates/ecs"
	"github.com/milk9111/orbitgates/ecs/component"
)

// TransformSyncSystem copies body state into each entity's cached
// transform.
type TransformSyncSystem struct{}

func NewTransformSyncSystem() *TransformSyncSystem { return &TransformSyncSystem{} }

func (s *TransformSyncSystem) Update(w *ecs.World) {
	srv := w.Physics()
	w.EachPhysics(func(_ ecs.Entity, rec *component.Entity) {
		pos := srv.Position(rec.Body)
		rec.Transform = component.Transform{X: pos.X, Y: pos.Y, Rotation: srv.Rotation(rec.Body)}
		if p, ok := rec.Player(); ok && rec.Visual != nil {
			rec.Visual.Exhaust = p.MoveY < 0
		}
	})
}
