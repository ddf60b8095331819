package system

import (
	"github.com/milk9111/orbitgates/ecs"
	"github.com/milk9111/orbitgates/ecs/component"
)

// InputSource is read once per tick; it reports key-down state only.
type InputSource interface {
	Pressed(component.Action) bool
}

// AudioMixer receives one-shot impact cues.
type AudioMixer interface {
	PlayImpact(relativeSpeed float64)
}

// RunOver reports whether the run ended on an earlier tick. The tick that
// completes or fails the run still applies its gate and contact events.
func RunOver(w *ecs.World) bool {
	return w.RunOver()
}
