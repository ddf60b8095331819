package game

import (
	"fmt"
	"image/color"
	"sort"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/orbitgates/common"
	"github.com/milk9111/orbitgates/ecs"
	"github.com/milk9111/orbitgates/ecs/component"
	"github.com/milk9111/orbitgates/ecs/entity"
	"github.com/milk9111/orbitgates/ecs/system"
	"github.com/milk9111/orbitgates/levels"
	"github.com/milk9111/orbitgates/physics"
	"github.com/milk9111/orbitgates/prefabs"
)

// RunParams are chosen once per run on the level select screen.
type RunParams struct {
	Length     int
	RandomSeed bool
	// Seed, when non-zero, replays a specific level regardless of mode.
	Seed     uint64
	FuelMode bool
	Ship     int
}

// Renderer draws one entity. It is called after transform sync.
type Renderer interface {
	DrawEntity(t component.Transform, v *component.Visual, tint color.Color)
}

type Outcome struct {
	Completed bool
	Failed    bool
	Score     int
	NextGate  int
	GateCount int
}

func (o Outcome) Over() bool {
	return o.Completed || o.Failed
}

// HUD is the per-frame state the host overlays on the scene.
type HUD struct {
	Score    int
	Fuel     float64
	FuelMode bool
	NextGate int
	Gates    int
	Seed     uint64
	Speed    float64
}

// Simulation owns one run: the world, the physics server and the phase
// ordered scheduler.
type Simulation struct {
	params    RunParams
	specs     *prefabs.Specs
	seed      uint64
	world     *ecs.World
	scheduler *ecs.Scheduler
	layout    *levels.Layout
}

// New generates the level for params and spawns every entity of the run.
func New(params RunParams, specs *prefabs.Specs, input system.InputSource, audio system.AudioMixer) (*Simulation, error) {
	if specs == nil {
		return nil, fmt.Errorf("game: new run: %w", prefabs.ErrInvalidSpec)
	}
	if params.Length == 0 {
		params.Length = specs.Level.DefaultLength
	}

	seed := params.Seed
	if seed == 0 {
		seed = levels.SeedFor(params.Length, params.RandomSeed, common.NewRand(uint64(time.Now().UnixNano())))
		// Zero means "unset" in RunParams, so never hand it out.
		if seed == 0 {
			seed = 1
		}
	}
	rng := common.NewRand(seed)

	layout, err := levels.Generate(rng, params.Length, levels.ParamsFromSpecs(specs))
	if err != nil {
		return nil, fmt.Errorf("game: generate level: %w", err)
	}

	srv := physics.NewServer(physics.Config{
		Iterations:  specs.Game.Physics.Iterations,
		MaxSubsteps: specs.Game.Physics.MaxSubsteps,
	})
	w := ecs.NewWorld(srv, rng)

	for _, p := range layout.Planets {
		entity.NewPlanetAt(w, specs.Planet, p.Position, p.Radius, p.Colors)
	}
	for _, g := range layout.Gates {
		entity.NewGateAt(w, specs.Gate, g.Num, g.Position, g.Rotation)
	}
	w.Progress().GateCount = len(layout.Gates)

	if _, err := entity.NewPlayerAt(w, specs.Player, cp.Vector{}, entity.PlayerOptions{
		Score:    specs.Game.Score.Start,
		FuelMode: params.FuelMode,
		Fuel:     specs.Player.FuelPerGate * float64(params.Length),
		Ship:     params.Ship,
	}); err != nil {
		return nil, fmt.Errorf("game: spawn player: %w", err)
	}

	cam := w.Camera()
	cam.Zoom = specs.Player.Zoom
	cam.Smoothness = specs.Game.CameraSmoothing
	cam.ViewWidth, cam.ViewHeight = common.BaseWidth, common.BaseHeight

	asteroids := system.NewAsteroidLifecycle(specs.Asteroid)
	sched := ecs.NewScheduler(
		// (a) per-entity update
		system.NewPlayerControllerSystem(input, specs.Player.ZoomRate),
		system.NewAsteroidDriftSystem(specs.Asteroid.DespawnDistance),
		system.NewAmbientSpawnSystem(asteroids, specs.Asteroid),
		// (b) gravity
		system.NewGravitySystem(system.GravityConfig{
			G:       specs.Game.Gravity.G,
			Cutoff:  specs.Game.Gravity.Cutoff,
			Epsilon: specs.Game.Gravity.Epsilon,
		}),
		// (c) step
		system.NewPhysicsSystem(),
		// (d) gates
		system.NewGateSystem(specs.Game.Score.GateBonus, system.GateTints{
			Future:  specs.Gate.FutureTint.Or(color.White),
			Current: specs.Gate.CurrentTint.Or(color.White),
			Passed:  specs.Gate.PassedTint.Or(color.White),
		}),
		// (e) collisions and run state
		system.NewCollisionSystem(asteroids, audio, specs.Game.Score.ContactPenalty, specs.Game.ImpactSoundSpeed),
		system.NewRunStateSystem(),
		// (f) deferred removals
		system.NewRemovalSystem(),
		// (g) sync
		system.NewTransformSyncSystem(),
		system.NewCameraSystem(),
	)

	return &Simulation{
		params:    params,
		specs:     specs,
		seed:      seed,
		world:     w,
		scheduler: sched,
		layout:    layout,
	}, nil
}

// Tick advances the run by dt, or by the fixed step when dt is not
// positive.
func (s *Simulation) Tick(dt float64) {
	if dt <= 0 {
		dt = s.specs.Game.FixedDt
	}
	s.world.SetDt(dt)
	s.scheduler.Update(s.world)
}

var drawOrder = map[component.Kind]int{
	component.KindPlanet:   0,
	component.KindGate:     1,
	component.KindAsteroid: 2,
	component.KindPlayer:   3,
}

// Render hands every drawable entity to r, back to front.
func (s *Simulation) Render(r Renderer) {
	ids := s.world.View(ecs.ViewDrawable)
	recs := make([]*component.Entity, 0, len(ids))
	for _, e := range ids {
		if rec, ok := s.world.Get(e); ok && rec.Visual != nil {
			recs = append(recs, rec)
		}
	}
	sort.SliceStable(recs, func(i, j int) bool {
		return drawOrder[recs[i].Kind()] < drawOrder[recs[j].Kind()]
	})
	for _, rec := range recs {
		r.DrawEntity(rec.Transform, rec.Visual, rec.Visual.Tint)
	}
}

func (s *Simulation) Outcome() Outcome {
	progress := s.world.Progress()
	out := Outcome{
		Completed: progress.Completed(),
		NextGate:  progress.NextGate,
		GateCount: progress.GateCount,
	}
	if _, rec, ok := s.world.Player(); ok {
		p, _ := rec.Player()
		out.Failed = p.Failed
		out.Score = p.Score
	}
	return out
}

func (s *Simulation) HUD() HUD {
	progress := s.world.Progress()
	h := HUD{NextGate: progress.NextGate, Gates: progress.GateCount, Seed: s.seed}
	if _, rec, ok := s.world.Player(); ok {
		p, _ := rec.Player()
		h.Score, h.Fuel, h.FuelMode = p.Score, p.Fuel, p.FuelMode
		h.Speed = s.world.Physics().LinearVelocity(rec.Body).Length()
	}
	return h
}

// Events drains the game events raised since the last call.
func (s *Simulation) Events() []ecs.Event {
	return s.world.Events().Drain()
}

// SetViewSize tells the camera how large the window is, in pixels.
func (s *Simulation) SetViewSize(w, h float64) {
	cam := s.world.Camera()
	cam.ViewWidth, cam.ViewHeight = w, h
}

func (s *Simulation) Camera() component.Camera {
	return *s.world.Camera()
}

func (s *Simulation) Seed() uint64 {
	return s.seed
}

func (s *Simulation) Params() RunParams {
	return s.params
}

func (s *Simulation) Layout() *levels.Layout {
	return s.layout
}

func (s *Simulation) World() *ecs.World {
	return s.world
}

// Restart builds a fresh run with the same level.
func (s *Simulation) Restart(input system.InputSource, audio system.AudioMixer) (*Simulation, error) {
	p := s.params
	p.Seed = s.seed
	return New(p, s.specs, input, audio)
}
