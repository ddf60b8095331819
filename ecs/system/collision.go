package system

import (
	"github.com/milk9111/orbitgates/ecs"
	"github.com/milk9111/orbitgates/ecs/component"
	"github.com/milk9111/orbitgates/physics"
)

// CollisionSystem resolves contact-started events: player contacts cost a
// flat penalty (the impact cue is gated on relative speed), and an asteroid
// hitting anything other than the player or another asteroid breaks.
type CollisionSystem struct {
	asteroids  *AsteroidLifecycle
	audio      AudioMixer
	penalty    int
	soundSpeed float64

	destroyed map[ecs.Entity]struct{}
}

func NewCollisionSystem(asteroids *AsteroidLifecycle, audio AudioMixer, penalty int, soundSpeed float64) *CollisionSystem {
	return &CollisionSystem{
		asteroids:  asteroids,
		audio:      audio,
		penalty:    penalty,
		soundSpeed: soundSpeed,
		destroyed:  make(map[ecs.Entity]struct{}),
	}
}

func (s *CollisionSystem) Update(w *ecs.World) {
	clear(s.destroyed)
	over := RunOver(w)

	for _, ev := range w.StepEvents() {
		if ev.Kind != physics.ContactStarted {
			continue
		}
		a, okA := w.EntityForCollider(ev.A)
		b, okB := w.EntityForCollider(ev.B)
		if !okA || !okB {
			continue
		}
		ka, kb := kindOf(w, a), kindOf(w, b)

		if ka == component.KindPlayer || kb == component.KindPlayer {
			s.playerContact(w, ev, over)
			continue
		}

		var rock ecs.Entity
		switch {
		case ka == component.KindAsteroid && kb != component.KindAsteroid:
			rock = a
		case kb == component.KindAsteroid && ka != component.KindAsteroid:
			rock = b
		default:
			continue
		}
		if _, done := s.destroyed[rock]; done {
			continue
		}
		s.destroyed[rock] = struct{}{}
		s.asteroids.Destroy(w, rock)
	}
}

func (s *CollisionSystem) playerContact(w *ecs.World, ev physics.Event, over bool) {
	if s.audio != nil && ev.RelativeSpeed > s.soundSpeed {
		s.audio.PlayImpact(ev.RelativeSpeed)
	}
	if over {
		return
	}
	_, rec, ok := w.Player()
	if !ok {
		return
	}
	p, _ := rec.Player()
	p.Score -= s.penalty
	w.Events().Push(ecs.Event{Type: ecs.EventPlayerDamaged, Data: ecs.PlayerDamagedEvent{
		Score:         p.Score,
		RelativeSpeed: ev.RelativeSpeed,
	}})
}
