package component

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Camera follows the player. ViewWidth/ViewHeight are the window size in
// pixels; the visible world radius shrinks as Zoom grows.
type Camera struct {
	Target     cp.Vector
	Rotation   float64
	Zoom       float64
	Smoothness float64
	ViewWidth  float64
	ViewHeight float64
}

// ViewRadius is the world-space radius of the circle that just contains the
// screen.
func (c *Camera) ViewRadius() float64 {
	zoom := c.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	return math.Hypot(c.ViewWidth, c.ViewHeight) / 2 / zoom
}
