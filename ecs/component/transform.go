package component

import "github.com/jakecoffman/cp"

// Transform is the cached position and rotation of an entity, refreshed from
// its body after every step.
type Transform struct {
	X        float64
	Y        float64
	Rotation float64
}

func (t Transform) Position() cp.Vector {
	return cp.Vector{X: t.X, Y: t.Y}
}
