package entity

import (
	"image/color"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/orbitgates/ecs"
	"github.com/milk9111/orbitgates/ecs/component"
	"github.com/milk9111/orbitgates/physics"
	"github.com/milk9111/orbitgates/prefabs"
)

func NewPlanetAt(w *ecs.World, spec prefabs.PlanetSpec, pos cp.Vector, radius float64, gradient [2]color.Color) ecs.Entity {
	srv := w.Physics()
	body := srv.CreateBody(physics.BodyDesc{Kind: physics.Static, Position: pos})
	srv.AttachCollider(body, physics.ColliderDesc{
		Shape:   physics.ShapeCircle,
		Radius:  radius,
		Density: spec.Density,
	})

	return w.Insert(&component.Entity{
		Transform: component.Transform{X: pos.X, Y: pos.Y},
		Visual: &component.Visual{
			Shape:    component.ShapePlanet,
			Scale:    1,
			Radius:   radius,
			Gradient: gradient,
		},
		Body: body,
		Variant: &component.Planet{
			Radius: radius,
			// Mass stays fixed even though the body is static.
			Mass: srv.Mass(body),
		},
	})
}
