package entity

import (
	"fmt"
	"image/color"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/orbitgates/ecs"
	"github.com/milk9111/orbitgates/ecs/component"
	"github.com/milk9111/orbitgates/physics"
	"github.com/milk9111/orbitgates/prefabs"
)

// PlayerOptions carries the per-run choices from the level select menu.
type PlayerOptions struct {
	Score    int
	FuelMode bool
	Fuel     float64
	Ship     int
}

// NewPlayerAt spawns the ship. A run may only hold one.
func NewPlayerAt(w *ecs.World, spec prefabs.PlayerSpec, pos cp.Vector, opts PlayerOptions) (ecs.Entity, error) {
	if _, _, ok := w.Player(); ok {
		return 0, fmt.Errorf("player: spawn: player already exists")
	}

	srv := w.Physics()
	body := srv.CreateBody(physics.BodyDesc{Kind: physics.Dynamic, Position: pos})
	c := srv.AttachCollider(body, physics.ColliderDesc{
		Shape:      physics.ShapeCapsule,
		Radius:     spec.Radius,
		HalfHeight: spec.HalfHeight,
		Density:    spec.Density,
		Elasticity: spec.Elasticity,
		Role:       physics.RolePlayer,
		Events:     physics.IntersectionEvents | physics.ContactEvents,
	})
	srv.SetPlayerCollider(c)

	var tint color.Color = color.White
	if opts.Ship >= 0 && opts.Ship < len(spec.Ships) {
		tint = spec.Ships[opts.Ship].Tint.Or(tint)
	}

	rec := &component.Entity{
		Transform: component.Transform{X: pos.X, Y: pos.Y},
		Visual: &component.Visual{
			Shape:   component.ShapeShip,
			Variant: opts.Ship,
			Scale:   1,
			Radius:  spec.Radius + spec.HalfHeight,
			Tint:    tint,
		},
		Body: body,
		Variant: &component.Player{
			LinSpeed:     spec.LinSpeed,
			ForwardBoost: spec.ForwardBoost,
			AngSpeed:     spec.AngSpeed,
			Zoom:         spec.Zoom,
			ZoomMin:      spec.ZoomMin,
			ZoomMax:      spec.ZoomMax,
			Fuel:         opts.Fuel,
			FuelBurn:     spec.FuelBurn,
			FuelMode:     opts.FuelMode,
			Score:        opts.Score,
		},
	}
	return w.Insert(rec), nil
}
