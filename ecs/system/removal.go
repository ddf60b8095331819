package system

import "github.com/milk9111/orbitgates/ecs"

// RemovalSystem applies the removals buffered during the tick.
type RemovalSystem struct{}

func NewRemovalSystem() *RemovalSystem { return &RemovalSystem{} }

func (s *RemovalSystem) Update(w *ecs.World) {
	w.FlushRemovals()
}
