package game

import (
	"image/color"
	"math"
	"reflect"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/orbitgates/common"
	"github.com/milk9111/orbitgates/ecs"
	"github.com/milk9111/orbitgates/ecs/component"
	"github.com/milk9111/orbitgates/ecs/entity"
	"github.com/milk9111/orbitgates/prefabs"
)

type fakeInput map[component.Action]bool

func (f fakeInput) Pressed(a component.Action) bool { return f[a] }

type recordingRenderer struct {
	shapes []component.Shape
}

func (r *recordingRenderer) DrawEntity(_ component.Transform, v *component.Visual, _ color.Color) {
	r.shapes = append(r.shapes, v.Shape)
}

func loadSpecs(t *testing.T) *prefabs.Specs {
	t.Helper()
	specs, err := prefabs.LoadAll()
	if err != nil {
		t.Fatalf("load specs: %v", err)
	}
	return specs
}

func TestNewBuildsRun(t *testing.T) {
	specs := loadSpecs(t)
	sim, err := New(RunParams{Length: 6, FuelMode: true}, specs, fakeInput{}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if sim.Seed() != 6 {
		t.Fatalf("fixed mode seed = %d, want the level length", sim.Seed())
	}

	w := sim.World()
	if got := w.Count(ecs.ViewGates); got != 6 {
		t.Fatalf("gates = %d, want 6", got)
	}
	if got := w.Count(ecs.ViewPlanets); got != len(sim.Layout().Planets) {
		t.Fatalf("planets = %d, want %d", got, len(sim.Layout().Planets))
	}
	hud := sim.HUD()
	if hud.Score != specs.Game.Score.Start {
		t.Fatalf("start score = %d, want %d", hud.Score, specs.Game.Score.Start)
	}
	if want := specs.Player.FuelPerGate * 6; hud.Fuel != want || !hud.FuelMode {
		t.Fatalf("fuel = %v mode=%v, want %v in fuel mode", hud.Fuel, hud.FuelMode, want)
	}
	if sim.Outcome().Over() {
		t.Fatalf("fresh run is already over")
	}
}

func TestSameSeedReproducesLevel(t *testing.T) {
	specs := loadSpecs(t)
	a, err := New(RunParams{Length: 10, RandomSeed: true}, specs, nil, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	b, err := a.Restart(nil, nil)
	if err != nil {
		t.Fatalf("Restart: %v", err)
	}
	if a.Seed() != b.Seed() {
		t.Fatalf("restart changed seed %d -> %d", a.Seed(), b.Seed())
	}
	if !reflect.DeepEqual(a.Layout(), b.Layout()) {
		t.Fatalf("restart produced a different level")
	}
}

func TestTickKeepsInvariants(t *testing.T) {
	specs := loadSpecs(t)
	sim, err := New(RunParams{Length: 6}, specs, fakeInput{component.ActionForward: true}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	prevNext := 0
	for i := 0; i < 600; i++ {
		sim.Tick(0)
		out := sim.Outcome()
		if out.NextGate < prevNext || out.NextGate > out.GateCount {
			t.Fatalf("tick %d: next gate %d (prev %d, count %d)", i, out.NextGate, prevNext, out.GateCount)
		}
		prevNext = out.NextGate

		w := sim.World()
		if w.PendingRemovals() != 0 {
			t.Fatalf("tick %d: removals left pending after the tick", i)
		}
		if _, _, ok := w.Player(); !ok {
			t.Fatalf("tick %d: player lost", i)
		}
	}
	if sim.World().Count(ecs.ViewAsteroids) == 0 {
		t.Fatalf("ambient spawner never produced an asteroid")
	}
	if sim.HUD().Speed == 0 {
		t.Fatalf("ship never moved under thrust")
	}
}

func TestRenderDrawsBackToFront(t *testing.T) {
	specs := loadSpecs(t)
	sim, err := New(RunParams{Length: 3}, specs, nil, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := 0; i < 30; i++ {
		sim.Tick(0)
	}

	r := &recordingRenderer{}
	sim.Render(r)
	if len(r.shapes) != sim.World().Count(ecs.ViewDrawable) {
		t.Fatalf("drew %d entities, want %d", len(r.shapes), sim.World().Count(ecs.ViewDrawable))
	}
	if r.shapes[0] != component.ShapePlanet || r.shapes[len(r.shapes)-1] != component.ShapeShip {
		t.Fatalf("draw order = %v, want planets first and ship last", r.shapes)
	}
}

func TestPhysicsContinuesAfterRunOver(t *testing.T) {
	specs := loadSpecs(t)
	sim, err := New(RunParams{Length: 3}, specs, nil, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, rec, _ := sim.World().Player()
	p, _ := rec.Player()
	p.Failed = true
	score := p.Score

	srv := sim.World().Physics()
	start := srv.Position(rec.Body)
	for i := 0; i < 120; i++ {
		sim.Tick(0)
	}
	if srv.Position(rec.Body) == start {
		t.Fatalf("ship stopped simulating after the run ended")
	}
	if p.Score != score || sim.Outcome().NextGate != 0 {
		t.Fatalf("scoring changed after the run ended")
	}
}

func TestTickCrossesGateThroughSensor(t *testing.T) {
	specs := loadSpecs(t)
	sim, err := New(RunParams{Length: 3}, specs, nil, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	w := sim.World()
	srv := w.Physics()
	_, rec, _ := w.Player()

	// Fly the ship straight through the first gate's zone.
	g := sim.Layout().Gates[0]
	dir := common.FromAngle(g.Rotation)
	srv.SetPosition(rec.Body, g.Position.Sub(dir.Mult(80)))
	srv.SetLinearVelocity(rec.Body, dir.Mult(600))

	var crossed []ecs.GateCrossedEvent
	for i := 0; i < 30 && sim.Outcome().NextGate == 0; i++ {
		sim.Tick(0)
		for _, ev := range sim.Events() {
			if ev.Type == ecs.EventGateCrossed {
				crossed = append(crossed, ev.Data.(ecs.GateCrossedEvent))
			}
		}
	}

	if len(crossed) != 1 || crossed[0].Gate != 0 {
		t.Fatalf("gate events = %+v, want one for gate 0", crossed)
	}
	out := sim.Outcome()
	if out.NextGate != 1 {
		t.Fatalf("next gate = %d, want 1", out.NextGate)
	}
	if want := specs.Game.Score.Start + specs.Game.Score.GateBonus; out.Score != want {
		t.Fatalf("score = %d, want %d", out.Score, want)
	}
}

func TestTickBreaksAsteroidOnPlanet(t *testing.T) {
	specs := loadSpecs(t)
	sim, err := New(RunParams{Length: 6}, specs, nil, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	w := sim.World()
	layout := sim.Layout()
	planet := layout.Planets[0]

	// Approach from the side of the planet farthest from any gate post.
	var dir cp.Vector
	best := -1.0
	for i := 0; i < 16; i++ {
		d := common.FromAngle(2 * math.Pi * float64(i) / 16)
		start := planet.Position.Add(d.Mult(planet.Radius + 60))
		clearance := math.Inf(1)
		for _, g := range layout.Gates {
			clearance = math.Min(clearance, start.Distance(g.Position))
		}
		if clearance > best {
			best, dir = clearance, d
		}
	}

	rock, err := entity.NewAsteroid(w, specs.Asteroid, entity.AsteroidParams{
		Position: planet.Position.Add(dir.Mult(planet.Radius + 60)),
		Velocity: dir.Mult(-400),
		Scale:    1,
	})
	if err != nil {
		t.Fatalf("NewAsteroid: %v", err)
	}

	var destroyed *ecs.AsteroidDestroyedEvent
	for i := 0; i < 60 && destroyed == nil; i++ {
		sim.Tick(0)
		for _, ev := range sim.Events() {
			if d, ok := ev.Data.(ecs.AsteroidDestroyedEvent); ok && d.Entity == rock {
				destroyed = &d
			}
		}
	}

	if destroyed == nil {
		t.Fatalf("asteroid never broke on the planet")
	}
	if destroyed.Children < specs.Asteroid.ChildrenMin || destroyed.Children > specs.Asteroid.ChildrenMax {
		t.Fatalf("children = %d, want %d..%d", destroyed.Children, specs.Asteroid.ChildrenMin, specs.Asteroid.ChildrenMax)
	}
	if w.IsAlive(rock) {
		t.Fatalf("broken asteroid still alive after the tick")
	}
	if w.PendingRemovals() != 0 {
		t.Fatalf("removals left pending after the tick")
	}
}
