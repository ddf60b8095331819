package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/orbitgates/common"
	"github.com/milk9111/orbitgates/ecs"
	"github.com/milk9111/orbitgates/ecs/component"
)

// PlayerControllerSystem turns input into the ship's move and rotation
// accumulators and applies them to its body as velocity changes.
type PlayerControllerSystem struct {
	input    InputSource
	zoomRate float64
}

func NewPlayerControllerSystem(input InputSource, zoomRate float64) *PlayerControllerSystem {
	return &PlayerControllerSystem{input: input, zoomRate: zoomRate}
}

func (s *PlayerControllerSystem) Update(w *ecs.World) {
	if s.input == nil {
		return
	}
	_, rec, ok := w.Player()
	if !ok {
		return
	}
	p, _ := rec.Player()
	dt := w.Dt()

	p.MoveX, p.MoveY, p.Rot = 0, 0, 0
	if s.hasFuel(p) {
		moves := 0
		if s.input.Pressed(component.ActionForward) {
			p.MoveY -= p.LinSpeed * p.ForwardBoost
			moves++
		}
		if s.input.Pressed(component.ActionBackward) {
			p.MoveY += p.LinSpeed
			moves++
		}
		if s.input.Pressed(component.ActionStrafeLeft) {
			p.MoveX -= p.LinSpeed
			moves++
		}
		if s.input.Pressed(component.ActionStrafeRight) {
			p.MoveX += p.LinSpeed
			moves++
		}
		if p.FuelMode && !w.Progress().Completed() {
			p.Fuel = max(p.Fuel-dt*p.FuelBurn*float64(moves), 0)
		}
	}
	// Thrust may have just emptied the tank.
	if s.hasFuel(p) {
		if s.input.Pressed(component.ActionRotateLeft) {
			p.Rot -= p.AngSpeed
		}
		if s.input.Pressed(component.ActionRotateRight) {
			p.Rot += p.AngSpeed
		}
	}
	p.Fuel = max(p.Fuel, 0)

	if s.input.Pressed(component.ActionZoomIn) {
		p.Zoom *= 1 + dt*s.zoomRate
	}
	if s.input.Pressed(component.ActionZoomOut) {
		p.Zoom /= 1 + dt*s.zoomRate
	}
	p.Zoom = common.Clamp(p.Zoom, p.ZoomMin, p.ZoomMax)

	srv := w.Physics()
	move := common.Rotate(cp.Vector{X: p.MoveX, Y: p.MoveY}, srv.Rotation(rec.Body))
	srv.SetLinearVelocity(rec.Body, srv.LinearVelocity(rec.Body).Add(move.Mult(dt)))
	srv.SetAngularVelocity(rec.Body, srv.AngularVelocity(rec.Body)+p.Rot*dt)
}

func (s *PlayerControllerSystem) hasFuel(p *component.Player) bool {
	return !p.FuelMode || p.Fuel > 0
}
