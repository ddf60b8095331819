package component

import "image/color"

type Shape uint8

const (
	ShapeShip Shape = iota + 1
	ShapePlanet
	ShapeGate
	ShapeAsteroid
)

// Visual is handed to the renderer untouched. Gradient is only used by
// planets, Tint is rewritten each frame for gates.
type Visual struct {
	Shape    Shape
	Variant  int
	Scale    float64
	Radius   float64
	Tint     color.Color
	Gradient [2]color.Color
	// Exhaust is set while the ship is thrusting forward.
	Exhaust bool
}
