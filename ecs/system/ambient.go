package system

import (
	"fmt"
	"log"
	"math"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/orbitgates/common"
	"github.com/milk9111/orbitgates/ecs"
	"github.com/milk9111/orbitgates/ecs/entity"
	"github.com/milk9111/orbitgates/prefabs"
)

// SpawnRolls are the raw draws for one ambient asteroid, each in [0,1).
type SpawnRolls struct {
	Angle   float64
	Heading float64
	Speed   float64
	Scale   float64
	Spin    float64
}

// SpawnShape is what the rolls become.
type SpawnShape struct {
	Angle   float64
	Heading float64
	Speed   float64
	Scale   float64
	Spin    float64
}

// ShapeSpawn is the built-in mapping, used when no script is loaded.
func ShapeSpawn(r SpawnRolls, spec prefabs.AmbientSpec) SpawnShape {
	angle := r.Angle * 2 * math.Pi
	return SpawnShape{
		Angle:   angle,
		Heading: angle + math.Pi + (r.Heading-0.5)*math.Pi*0.5,
		Speed:   common.Lerp(spec.SpeedMin, spec.SpeedMax, r.Speed),
		Scale:   common.Lerp(spec.ScaleMin, spec.ScaleMax, r.Scale),
		Spin:    (r.Spin*2 - 1) * spec.SpinMax,
	}
}

// AmbientSpawnSystem keeps the field populated: every interval it drops an
// asteroid on a ring just outside the camera's view, up to a live cap.
type AmbientSpawnSystem struct {
	asteroids *AsteroidLifecycle
	spec      prefabs.AmbientSpec
	variants  int
	timer     float64
	script    *tengo.Compiled
}

func NewAmbientSpawnSystem(asteroids *AsteroidLifecycle, spec prefabs.AsteroidSpec) *AmbientSpawnSystem {
	s := &AmbientSpawnSystem{asteroids: asteroids, spec: spec.Ambient, variants: spec.Variants}
	if spec.Ambient.Script != "" {
		compiled, err := compileSpawnScript(spec.Ambient.Script)
		if err != nil {
			log.Printf("Asteroids: ambient script %s disabled: %v", spec.Ambient.Script, err)
		} else {
			s.script = compiled
		}
	}
	return s
}

func compileSpawnScript(name string) (*tengo.Compiled, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, err
	}
	script := tengo.NewScript(src)
	_ = script.Add("rolls", map[string]any{})
	_ = script.Add("limits", map[string]any{})
	_ = script.Add("progress", 0.0)
	script.SetImports(stdlib.GetModuleMap("math"))
	return script.Compile()
}

func (s *AmbientSpawnSystem) Update(w *ecs.World) {
	s.timer += w.Dt()
	for s.timer >= s.spec.Interval {
		s.timer -= s.spec.Interval
		if w.CountLive(ecs.ViewAsteroids) >= s.spec.MaxLive {
			continue
		}
		s.spawnOne(w)
	}
}

func (s *AmbientSpawnSystem) spawnOne(w *ecs.World) {
	rng := w.Rand()
	rolls := SpawnRolls{
		Angle:   rng.Float64(),
		Heading: rng.Float64(),
		Speed:   rng.Float64(),
		Scale:   rng.Float64(),
		Spin:    rng.Float64(),
	}
	variant := rng.IntRange(0, max(s.variants-1, 0))

	shape := ShapeSpawn(rolls, s.spec)
	if s.script != nil {
		scripted, err := s.runScript(rolls, w)
		if err != nil {
			log.Printf("Asteroids: ambient script failed, using defaults: %v", err)
			s.script = nil
		} else {
			shape = scripted
		}
	}
	if shape.Scale <= 0 {
		return
	}

	cam := w.Camera()
	ring := cam.ViewRadius() * s.spec.Margin
	pos := ringPoint(cam.Target, shape.Angle, ring)
	if _, err := s.asteroids.Spawn(w, entity.AsteroidParams{
		Position:        pos,
		Rotation:        shape.Heading,
		Velocity:        common.FromAngle(shape.Heading).Mult(shape.Speed),
		AngularVelocity: shape.Spin,
		Scale:           shape.Scale,
		Variant:         variant,
	}); err != nil {
		log.Printf("Asteroids: ambient spawn: %v", err)
	}
}

func (s *AmbientSpawnSystem) runScript(r SpawnRolls, w *ecs.World) (SpawnShape, error) {
	progress := 0.0
	if p := w.Progress(); p.GateCount > 0 {
		progress = float64(p.NextGate) / float64(p.GateCount)
	}
	vars := map[string]any{
		"rolls": map[string]any{
			"angle": r.Angle, "heading": r.Heading, "speed": r.Speed, "scale": r.Scale, "spin": r.Spin,
		},
		"limits": map[string]any{
			"speed_min": s.spec.SpeedMin, "speed_max": s.spec.SpeedMax,
			"scale_min": s.spec.ScaleMin, "scale_max": s.spec.ScaleMax,
			"spin_max": s.spec.SpinMax,
		},
		"progress": progress,
	}
	for name, v := range vars {
		if err := s.script.Set(name, v); err != nil {
			return SpawnShape{}, err
		}
	}
	if err := s.script.Run(); err != nil {
		return SpawnShape{}, err
	}

	out := s.script.Get("spawn").Map()
	if out == nil {
		return SpawnShape{}, fmt.Errorf("script did not define spawn")
	}
	return SpawnShape{
		Angle:   scriptFloat(out["angle"]),
		Heading: scriptFloat(out["heading"]),
		Speed:   scriptFloat(out["speed"]),
		Scale:   scriptFloat(out["scale"]),
		Spin:    scriptFloat(out["spin"]),
	}, nil
}

func scriptFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	}
	return 0
}

func ringPoint(center cp.Vector, angle, radius float64) cp.Vector {
	return center.Add(common.FromAngle(angle).Mult(radius))
}
