package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/orbitgates/common"
	"github.com/milk9111/orbitgates/ecs"
	"github.com/milk9111/orbitgates/ecs/component"
	"github.com/milk9111/orbitgates/physics"
)

type GravityConfig struct {
	G       float64
	Cutoff  float64
	Epsilon float64
}

// Attractor is a planet as seen by the gravity pass.
type Attractor struct {
	Position cp.Vector
	Mass     float64
}

// GravityAccel sums the acceleration planets impart on a body at pos.
// Planets beyond cfg.Cutoff, or exactly at pos, contribute nothing.
func GravityAccel(pos cp.Vector, planets []Attractor, cfg GravityConfig) cp.Vector {
	var accel cp.Vector
	for _, p := range planets {
		d := p.Position.Sub(pos)
		dist2 := d.LengthSq()
		if dist2 == 0 || math.Sqrt(dist2) > cfg.Cutoff {
			continue
		}
		dir := common.SafeNormalize(d, cp.Vector{})
		accel = accel.Add(dir.Mult(cfg.G * p.Mass / max(dist2, cfg.Epsilon)))
	}
	return accel
}

// GravitySystem sets force = accel * mass on every dynamic body. Static
// bodies, planets included, are never pulled.
type GravitySystem struct {
	cfg     GravityConfig
	planets []Attractor
}

func NewGravitySystem(cfg GravityConfig) *GravitySystem {
	return &GravitySystem{cfg: cfg}
}

func (s *GravitySystem) Update(w *ecs.World) {
	srv := w.Physics()

	s.planets = s.planets[:0]
	w.Each(ecs.ViewPlanets, func(_ ecs.Entity, rec *component.Entity) {
		planet, _ := rec.Planet()
		s.planets = append(s.planets, Attractor{Position: srv.Position(rec.Body), Mass: planet.Mass})
	})
	if len(s.planets) == 0 {
		return
	}

	w.EachPhysics(func(_ ecs.Entity, rec *component.Entity) {
		if srv.Kind(rec.Body) != physics.Dynamic {
			return
		}
		accel := GravityAccel(srv.Position(rec.Body), s.planets, s.cfg)
		srv.SetForce(rec.Body, accel.Mult(srv.Mass(rec.Body)))
	})
}
