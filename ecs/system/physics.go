package system

import "github.com/milk9111/orbitgates/ecs"

// PhysicsSystem steps the physics server and hands the drained events to
// the resolution phases of the same tick.
type PhysicsSystem struct{}

func NewPhysicsSystem() *PhysicsSystem { return &PhysicsSystem{} }

func (s *PhysicsSystem) Update(w *ecs.World) {
	w.SetStepEvents(w.Physics().Step(w.Dt()))
}
