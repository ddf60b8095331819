package system

import (
	"github.com/milk9111/orbitgates/ecs"
	"github.com/milk9111/orbitgates/ecs/component"
)

// AsteroidDriftSystem removes asteroids that have drifted too far from the
// ship to matter again.
type AsteroidDriftSystem struct {
	despawnDistance float64
}

func NewAsteroidDriftSystem(despawnDistance float64) *AsteroidDriftSystem {
	return &AsteroidDriftSystem{despawnDistance: despawnDistance}
}

func (s *AsteroidDriftSystem) Update(w *ecs.World) {
	if s.despawnDistance <= 0 {
		return
	}
	_, player, ok := w.Player()
	if !ok {
		return
	}
	srv := w.Physics()
	origin := srv.Position(player.Body)

	w.EachUpdatable(func(e ecs.Entity, rec *component.Entity) {
		if rec.Kind() != component.KindAsteroid {
			return
		}
		if srv.Position(rec.Body).Distance(origin) > s.despawnDistance {
			_ = w.Remove(e)
		}
	})
}
