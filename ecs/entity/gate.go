package entity

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/orbitgates/ecs"
	"github.com/milk9111/orbitgates/ecs/component"
	"github.com/milk9111/orbitgates/physics"
	"github.com/milk9111/orbitgates/prefabs"
)

// NewGateAt spawns gate num: a thin sensor zone between two solid posts. The
// body is tagged with num so a zone exit can be matched to progress.
func NewGateAt(w *ecs.World, spec prefabs.GateSpec, num int, pos cp.Vector, rotation float64) ecs.Entity {
	srv := w.Physics()
	body := srv.CreateBody(physics.BodyDesc{
		Kind:     physics.Static,
		Position: pos,
		Rotation: rotation,
		Tag:      num,
		HasTag:   true,
	})
	zone := srv.AttachCollider(body, physics.ColliderDesc{
		Shape:      physics.ShapeBox,
		HalfWidth:  spec.ZoneWidth / 2,
		HalfHeight: spec.HalfHeight,
		Sensor:     true,
	})
	for _, y := range []float64{-spec.HalfHeight, spec.HalfHeight} {
		srv.AttachCollider(body, physics.ColliderDesc{
			Shape:   physics.ShapeCircle,
			Radius:  spec.PostRadius,
			Offset:  cp.Vector{Y: y},
			Density: 1,
		})
	}

	return w.Insert(&component.Entity{
		Transform: component.Transform{X: pos.X, Y: pos.Y, Rotation: rotation},
		Visual: &component.Visual{
			Shape:  component.ShapeGate,
			Scale:  1,
			Radius: spec.HalfHeight + spec.PostRadius,
			Tint:   spec.FutureTint.Or(nil),
		},
		Body:    body,
		Variant: &component.Gate{Num: num, Zone: zone},
	})
}
