package system

import (
	"image/color"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/orbitgates/ecs"
	"github.com/milk9111/orbitgates/ecs/entity"
	"github.com/milk9111/orbitgates/physics"
)

func TestContactPenaltyDrivesFailure(t *testing.T) {
	specs := loadSpecs(t)
	w := newWorld(1)
	p, player := spawnPlayer(t, w, specs, 30)
	spawnGates(w, specs, 3)

	planet := entity.NewPlanetAt(w, specs.Planet, cp.Vector{X: 900}, 100, [2]color.Color{})
	rec, _ := w.Get(planet)
	planetCollider := w.Physics().Colliders(rec.Body)[0]

	audio := &fakeAudio{}
	collisions := NewCollisionSystem(NewAsteroidLifecycle(specs.Asteroid), audio, 10, 120)
	runState := NewRunStateSystem()

	speeds := []float64{50, 500, 10, 200}
	wantScores := []int{20, 10, 0, -10}
	for i, speed := range speeds {
		w.SetStepEvents([]physics.Event{contactEvent(player, planetCollider, speed)})
		collisions.Update(w)
		runState.Update(w)
		if p.Score != wantScores[i] {
			t.Fatalf("contact %d: score = %d, want %d", i, p.Score, wantScores[i])
		}
		if want := wantScores[i] < 0; p.Failed != want {
			t.Fatalf("contact %d: failed = %v, want %v", i, p.Failed, want)
		}
	}
	if len(audio.impacts) != 2 {
		t.Fatalf("impact cues = %d, want 2 (only fast contacts)", len(audio.impacts))
	}
	if !RunOver(w) || w.Progress().Completed() {
		t.Fatalf("run should be over by failure only")
	}

	// Scoring is frozen once the run is over.
	w.SetStepEvents([]physics.Event{contactEvent(planetCollider, player, 10)})
	collisions.Update(w)
	if p.Score != -10 {
		t.Fatalf("score changed after run over: %d", p.Score)
	}
}

func TestAsteroidContacts(t *testing.T) {
	cases := []struct {
		name        string
		other       string
		wantRemoved bool
	}{
		{"planet breaks asteroid", "planet", true},
		{"asteroid pair ignored", "asteroid", false},
		{"player does not break asteroid", "player", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			specs := loadSpecs(t)
			w := newWorld(5)
			_, player := spawnPlayer(t, w, specs, 30)
			rock, _ := entity.NewAsteroid(w, specs.Asteroid, entity.AsteroidParams{
				Position: cp.Vector{X: 300},
				Velocity: cp.Vector{X: 100},
				Scale:    1,
			})
			rr, _ := w.Get(rock)
			rockCollider := w.Physics().Colliders(rr.Body)[0]

			var other physics.ColliderHandle
			switch c.other {
			case "planet":
				e := entity.NewPlanetAt(w, specs.Planet, cp.Vector{X: 600}, 100, [2]color.Color{})
				rec, _ := w.Get(e)
				other = w.Physics().Colliders(rec.Body)[0]
			case "asteroid":
				e, _ := entity.NewAsteroid(w, specs.Asteroid, entity.AsteroidParams{Position: cp.Vector{X: 320}, Scale: 1})
				rec, _ := w.Get(e)
				other = w.Physics().Colliders(rec.Body)[0]
			case "player":
				other = player
			}

			collisions := NewCollisionSystem(NewAsteroidLifecycle(specs.Asteroid), nil, 10, 120)
			before := w.Count(ecs.ViewAsteroids)
			// The same contact reported twice must only break the rock once.
			w.SetStepEvents([]physics.Event{contactEvent(rockCollider, other, 80), contactEvent(other, rockCollider, 80)})
			collisions.Update(w)
			NewRemovalSystem().Update(w)

			if got := !w.IsAlive(rock); got != c.wantRemoved {
				t.Fatalf("removed = %v, want %v", got, c.wantRemoved)
			}
			if !c.wantRemoved {
				if w.Count(ecs.ViewAsteroids) != before {
					t.Fatalf("asteroid count changed without destruction")
				}
				return
			}
			children := w.Count(ecs.ViewAsteroids) - (before - 1)
			if children < 2 || children > 3 {
				t.Fatalf("fragments = %d, want 2 or 3", children)
			}
			if w.Physics().ContainsBody(rr.Body) {
				t.Fatalf("destroyed asteroid body still resolvable")
			}
		})
	}
}
