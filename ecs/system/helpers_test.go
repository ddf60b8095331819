package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/orbitgates/common"
	"github.com/milk9111/orbitgates/ecs"
	"github.com/milk9111/orbitgates/ecs/component"
	"github.com/milk9111/orbitgates/ecs/entity"
	"github.com/milk9111/orbitgates/physics"
	"github.com/milk9111/orbitgates/prefabs"
)

const frame = 1.0 / 60.0

func loadSpecs(t *testing.T) *prefabs.Specs {
	t.Helper()
	specs, err := prefabs.LoadAll()
	if err != nil {
		t.Fatalf("load specs: %v", err)
	}
	return specs
}

func newWorld(seed uint64) *ecs.World {
	w := ecs.NewWorld(physics.NewServer(physics.Config{}), common.NewRand(seed))
	w.SetDt(frame)
	return w
}

func spawnPlayer(t *testing.T, w *ecs.World, specs *prefabs.Specs, score int) (*component.Player, physics.ColliderHandle) {
	t.Helper()
	e, err := entity.NewPlayerAt(w, specs.Player, cp.Vector{}, entity.PlayerOptions{Score: score})
	if err != nil {
		t.Fatalf("spawn player: %v", err)
	}
	rec, _ := w.Get(e)
	p, _ := rec.Player()
	c, _ := w.Physics().PlayerCollider()
	return p, c
}

func spawnGates(w *ecs.World, specs *prefabs.Specs, n int) []physics.ColliderHandle {
	zones := make([]physics.ColliderHandle, n)
	for i := 0; i < n; i++ {
		e := entity.NewGateAt(w, specs.Gate, i, cp.Vector{X: 1000 * float64(i+1), Y: 5000}, 0)
		rec, _ := w.Get(e)
		g, _ := rec.Gate()
		zones[i] = g.Zone
	}
	w.Progress().GateCount = n
	return zones
}

func exitEvent(zone, player physics.ColliderHandle) physics.Event {
	return physics.Event{Kind: physics.IntersectionStopped, A: zone, B: player}
}

func contactEvent(a, b physics.ColliderHandle, speed float64) physics.Event {
	return physics.Event{Kind: physics.ContactStarted, A: a, B: b, RelativeSpeed: speed}
}

type fakeInput map[component.Action]bool

func (f fakeInput) Pressed(a component.Action) bool { return f[a] }

type fakeAudio struct {
	impacts []float64
}

func (f *fakeAudio) PlayImpact(speed float64) { f.impacts = append(f.impacts, speed) }

func asteroidAt(x float64) entity.AsteroidParams {
	return entity.AsteroidParams{Position: cp.Vector{X: x}, Scale: 1}
}
