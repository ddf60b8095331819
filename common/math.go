package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

// degenerateLength is the length below which a vector has no usable direction.
const degenerateLength = 1e-9

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// LerpVector interpolates each axis of a toward b.
func LerpVector(a, b cp.Vector, t float64) cp.Vector {
	return cp.Vector{X: Lerp(a.X, b.X, t), Y: Lerp(a.Y, b.Y, t)}
}

// SafeNormalize returns the unit vector of v, or fallback when v has no
// direction. The fallback is returned as given.
func SafeNormalize(v, fallback cp.Vector) cp.Vector {
	l := math.Hypot(v.X, v.Y)
	if l < degenerateLength || math.IsNaN(l) || math.IsInf(l, 0) {
		return fallback
	}
	return cp.Vector{X: v.X / l, Y: v.Y / l}
}

// Rotate turns v counter-clockwise by angle radians.
func Rotate(v cp.Vector, angle float64) cp.Vector {
	sin, cos := math.Sincos(angle)
	return cp.Vector{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos}
}

// FromAngle returns the unit vector pointing at angle radians.
func FromAngle(angle float64) cp.Vector {
	sin, cos := math.Sincos(angle)
	return cp.Vector{X: cos, Y: sin}
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
