package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/orbitgates/ecs"
	"github.com/milk9111/orbitgates/ecs/component"
	"github.com/milk9111/orbitgates/physics"
	"github.com/milk9111/orbitgates/prefabs"
)

// AsteroidParams describes one asteroid to spawn.
type AsteroidParams struct {
	Position        cp.Vector
	Rotation        float64
	Velocity        cp.Vector
	AngularVelocity float64
	Scale           float64
	Variant         int
}

// NewAsteroid spawns a dynamic capsule sized by p.Scale.
func NewAsteroid(w *ecs.World, spec prefabs.AsteroidSpec, p AsteroidParams) (ecs.Entity, error) {
	if p.Scale <= 0 {
		return 0, fmt.Errorf("asteroid: spawn with scale %v", p.Scale)
	}

	srv := w.Physics()
	body := srv.CreateBody(physics.BodyDesc{
		Kind:            physics.Dynamic,
		Position:        p.Position,
		Rotation:        p.Rotation,
		LinearVelocity:  p.Velocity,
		AngularVelocity: p.AngularVelocity,
	})
	c := srv.AttachCollider(body, physics.ColliderDesc{
		Shape:      physics.ShapeCapsule,
		Radius:     spec.Radius * p.Scale,
		HalfHeight: spec.HalfHeight * p.Scale,
		Density:    spec.Density,
		Elasticity: spec.Elasticity,
		Role:       physics.RoleAsteroid,
		Events:     physics.ContactEvents,
	})

	return w.Insert(&component.Entity{
		Transform: component.Transform{X: p.Position.X, Y: p.Position.Y, Rotation: p.Rotation},
		Visual: &component.Visual{
			Shape:   component.ShapeAsteroid,
			Variant: p.Variant,
			Scale:   p.Scale,
			Radius:  (spec.Radius + spec.HalfHeight) * p.Scale,
		},
		Body:    body,
		Variant: &component.Asteroid{Scale: p.Scale, Collider: c},
	}), nil
}
