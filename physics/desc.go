package physics

import (
	"math"

	"github.com/jakecoffman/cp"
)

type BodyKind uint8

const (
	Static BodyKind = iota
	Dynamic
)

func (k BodyKind) String() string {
	if k == Dynamic {
		return "dynamic"
	}
	return "static"
}

// Role selects the Chipmunk collision type of a collider, which in turn
// selects the handler that reports its events.
type Role uint8

const (
	RoleSolid Role = iota + 1
	RolePlayer
	RoleSensor
	RoleAsteroid
)

func (r Role) collisionType() cp.CollisionType {
	return cp.CollisionType(r)
}

// EventFlags lists the event classes a collider participates in.
type EventFlags uint8

const (
	IntersectionEvents EventFlags = 1 << iota
	ContactEvents
)

type ShapeKind uint8

const (
	ShapeCircle ShapeKind = iota
	ShapeCapsule
	ShapeBox
)

// BodyDesc describes a body to create.
type BodyDesc struct {
	Kind            BodyKind
	Position        cp.Vector
	Rotation        float64
	LinearVelocity  cp.Vector
	AngularVelocity float64
	// Tag is only meaningful when HasTag is set.
	Tag    int
	HasTag bool
}

// ColliderDesc describes a collider attached to a body. Capsules run along
// the local Y axis with HalfHeight being half the segment length.
type ColliderDesc struct {
	Shape      ShapeKind
	Radius     float64
	HalfWidth  float64
	HalfHeight float64
	Offset     cp.Vector
	Density    float64
	Elasticity float64
	Friction   float64
	Sensor     bool
	Role       Role
	Events     EventFlags
}

// Area returns the collider's area in world units.
func (d ColliderDesc) Area() float64 {
	switch d.Shape {
	case ShapeCircle:
		return math.Pi * d.Radius * d.Radius
	case ShapeCapsule:
		return 2*d.Radius*(2*d.HalfHeight) + math.Pi*d.Radius*d.Radius
	case ShapeBox:
		return (2 * d.HalfWidth) * (2 * d.HalfHeight)
	}
	return 0
}

// Mass is density times area. Sensors carry no mass.
func (d ColliderDesc) Mass() float64 {
	if d.Sensor || d.Density <= 0 {
		return 0
	}
	return d.Density * d.Area()
}

// boundingRadius is the smallest distance from the collider's centre to its
// surface; it bounds how far a body may move per substep.
func (d ColliderDesc) boundingRadius() float64 {
	switch d.Shape {
	case ShapeCircle, ShapeCapsule:
		return d.Radius
	case ShapeBox:
		return math.Min(d.HalfWidth, d.HalfHeight)
	}
	return 0
}

func (d ColliderDesc) moment(mass float64) float64 {
	if mass <= 0 {
		return 0
	}
	switch d.Shape {
	case ShapeCircle:
		return cp.MomentForCircle(mass, 0, d.Radius, d.Offset)
	case ShapeCapsule:
		return cp.MomentForBox(mass, 2*d.Radius, 2*(d.HalfHeight+d.Radius)) + mass*d.Offset.LengthSq()
	case ShapeBox:
		return cp.MomentForBox(mass, 2*d.HalfWidth, 2*d.HalfHeight) + mass*d.Offset.LengthSq()
	}
	return 0
}

func (d ColliderDesc) newShape(body *cp.Body) *cp.Shape {
	switch d.Shape {
	case ShapeCapsule:
		if d.HalfHeight <= 0 {
			return cp.NewCircle(body, d.Radius, d.Offset)
		}
		a := cp.Vector{X: d.Offset.X, Y: d.Offset.Y - d.HalfHeight}
		b := cp.Vector{X: d.Offset.X, Y: d.Offset.Y + d.HalfHeight}
		return cp.NewSegment(body, a, b, d.Radius)
	case ShapeBox:
		bb := cp.BB{
			L: d.Offset.X - d.HalfWidth,
			B: d.Offset.Y - d.HalfHeight,
			R: d.Offset.X + d.HalfWidth,
			T: d.Offset.Y + d.HalfHeight,
		}
		return cp.NewBox2(body, bb, 0)
	default:
		return cp.NewCircle(body, d.Radius, d.Offset)
	}
}
