package system

import (
	"image/color"

	"github.com/milk9111/orbitgates/ecs"
	"github.com/milk9111/orbitgates/ecs/component"
	"github.com/milk9111/orbitgates/physics"
)

type GateTints struct {
	Future  color.Color
	Current color.Color
	Passed  color.Color
}

func (t GateTints) For(s component.GateState) color.Color {
	switch s {
	case component.GateCurrent:
		return t.Current
	case component.GatePassed:
		return t.Passed
	}
	return t.Future
}

// GateSystem advances progress when the player leaves the current gate's
// zone and re-tints every gate from the derived state.
type GateSystem struct {
	bonus int
	tints GateTints
}

func NewGateSystem(bonus int, tints GateTints) *GateSystem {
	return &GateSystem{bonus: bonus, tints: tints}
}

func (s *GateSystem) Update(w *ecs.World) {
	progress := w.Progress()

	if !RunOver(w) {
		s.resolveCrossings(w, progress)
	}

	w.Each(ecs.ViewGates, func(_ ecs.Entity, rec *component.Entity) {
		g, _ := rec.Gate()
		if rec.Visual != nil {
			rec.Visual.Tint = s.tints.For(progress.State(g.Num))
		}
	})
}

func (s *GateSystem) resolveCrossings(w *ecs.World, progress *component.Progress) {
	srv := w.Physics()
	player, ok := srv.PlayerCollider()
	if !ok {
		return
	}
	_, rec, ok := w.Player()
	if !ok {
		return
	}
	p, _ := rec.Player()

	for _, ev := range w.StepEvents() {
		if ev.Kind != physics.IntersectionStopped || ev.B != player {
			continue
		}
		tag, ok := srv.Tag(srv.ColliderBody(ev.A))
		if !ok {
			continue
		}
		if !progress.Cross(tag) {
			continue
		}
		p.Score += s.bonus
		w.Events().Push(ecs.Event{Type: ecs.EventGateCrossed, Data: ecs.GateCrossedEvent{
			Gate:     tag,
			NextGate: progress.NextGate,
			Score:    p.Score,
		}})
	}
}
