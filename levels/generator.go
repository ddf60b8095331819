package levels

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/orbitgates/common"
	"github.com/milk9111/orbitgates/prefabs"
)

var (
	ErrPlacementExhausted = errors.New("levels: placement retries exhausted")
	ErrInvalidGateCount   = errors.New("levels: gate count must be at least 1")
)

// Params bounds every random decision the generator makes.
type Params struct {
	RadiusMin, RadiusMax     float64
	DistanceMin, DistanceMax float64
	SeparationFactor         float64
	GrowthFactor             float64
	GateClearance            float64
	MaxAttempts              int
	MaxPlanets               int

	GatesMin, GatesMax       int
	StepMin, StepMax         float64
	GateDistMin, GateDistMax float64
	GateDistOffset           float64

	Palette []color.Color
}

func ParamsFromSpecs(s *prefabs.Specs) Params {
	return Params{
		RadiusMin:        s.Level.RadiusMin,
		RadiusMax:        s.Level.RadiusMax,
		DistanceMin:      s.Level.DistanceMin,
		DistanceMax:      s.Level.DistanceMax,
		SeparationFactor: s.Level.SeparationFactor,
		GrowthFactor:     s.Level.GrowthFactor,
		GateClearance:    s.Level.GateClearance,
		MaxAttempts:      s.Level.MaxAttempts,
		MaxPlanets:       s.Level.MaxPlanets,
		GatesMin:         s.Gate.MinPerPlanet,
		GatesMax:         s.Gate.MaxPerPlanet,
		StepMin:          s.Gate.StepMin,
		StepMax:          s.Gate.StepMax,
		GateDistMin:      s.Gate.DistanceMin,
		GateDistMax:      s.Gate.DistanceMax,
		GateDistOffset:   s.Gate.DistanceOffset,
		Palette:          s.Planet.Colors(),
	}
}

type Planet struct {
	Position cp.Vector
	Radius   float64
	Colors   [2]color.Color
}

type Gate struct {
	Num      int
	Position cp.Vector
	Rotation float64
	Planet   int
}

// Layout is a generated level. Gates are ordered by Num.
type Layout struct {
	Seed    uint64
	Planets []Planet
	Gates   []Gate
}

// SeedFor picks the level seed: the gate budget itself in fixed mode, a
// fresh 16-bit draw from src in random mode.
func SeedFor(length int, random bool, src *common.Rand) uint64 {
	if !random || src == nil {
		return uint64(length)
	}
	return src.Uint64() & 0xffff
}

// Generate places planets by a random walk from the origin and fans gates
// around each one until exactly gateCount gates exist. Every draw comes from
// rng, so the same seed and count reproduce the same layout.
func Generate(rng *common.Rand, gateCount int, p Params) (*Layout, error) {
	if gateCount < 1 {
		return nil, fmt.Errorf("levels: generate %d gates: %w", gateCount, ErrInvalidGateCount)
	}
	if len(p.Palette) == 0 {
		p.Palette = []color.Color{color.White}
	}

	g := &generator{rng: rng, p: p, layout: &Layout{Seed: rng.Seed()}}
	prev := Planet{}
	for remaining := gateCount; remaining > 0; {
		if len(g.layout.Planets) >= p.MaxPlanets {
			return nil, fmt.Errorf("levels: %d planets placed with %d gates left: %w", len(g.layout.Planets), remaining, ErrPlacementExhausted)
		}
		planet, err := g.placePlanet(prev)
		if err != nil {
			return nil, err
		}
		g.layout.Planets = append(g.layout.Planets, planet)

		allot := min(rng.IntRange(p.GatesMin, p.GatesMax), remaining)
		remaining -= g.fanGates(len(g.layout.Planets)-1, allot)
		prev = planet
	}

	log.Printf("Levels: seed=%d planets=%d gates=%d", g.layout.Seed, len(g.layout.Planets), len(g.layout.Gates))
	return g.layout, nil
}

type generator struct {
	rng    *common.Rand
	p      Params
	layout *Layout
}

func (g *generator) placePlanet(prev Planet) (Planet, error) {
	r := g.rng.Uniform(g.p.RadiusMin, g.p.RadiusMax)
	dist := (prev.Radius + r) * g.rng.Uniform(g.p.DistanceMin, g.p.DistanceMax)

	for attempt := 0; attempt < g.p.MaxAttempts; attempt++ {
		theta := g.rng.Uniform(0, 2*math.Pi)
		cand := prev.Position.Add(common.FromAngle(theta).Mult(dist))
		if g.planetFits(cand, r) {
			return Planet{Position: cand, Radius: r, Colors: g.pickColors()}, nil
		}
		dist *= g.p.GrowthFactor
	}
	return Planet{}, fmt.Errorf("levels: place planet %d after %d attempts: %w", len(g.layout.Planets), g.p.MaxAttempts, ErrPlacementExhausted)
}

func (g *generator) planetFits(pos cp.Vector, r float64) bool {
	// The ship spawns at the origin.
	if pos.Length() < r*g.p.SeparationFactor {
		return false
	}
	for _, other := range g.layout.Planets {
		if pos.Distance(other.Position) < (r+other.Radius)*g.p.SeparationFactor {
			return false
		}
	}
	for _, gate := range g.layout.Gates {
		if pos.Distance(gate.Position) < r+g.p.GateClearance {
			return false
		}
	}
	return true
}

func (g *generator) pickColors() [2]color.Color {
	n := len(g.p.Palette)
	i := g.rng.IntRange(0, n-1)
	j := i
	if n > 1 {
		j = (i + g.rng.IntRange(1, n-1)) % n
	}
	return [2]color.Color{g.p.Palette[i], g.p.Palette[j]}
}

// fanGates walks a fan of candidate slots around planet idx and returns how
// many gates it placed. Slots that collide with a planet or another gate are
// skipped; whatever is not placed stays in the caller's budget.
func (g *generator) fanGates(idx, allot int) int {
	planet := g.layout.Planets[idx]
	start := g.rng.Uniform(0, 2*math.Pi)
	step := g.rng.Uniform(g.p.StepMin, g.p.StepMax)
	dir := g.rng.Sign()

	placed := 0
	for slot := 0; slot < 2*g.p.GatesMax && placed < allot; slot++ {
		theta := start + dir*step*float64(slot)
		d := planet.Radius*g.rng.Uniform(g.p.GateDistMin, g.p.GateDistMax) + g.p.GateDistOffset
		pos := planet.Position.Add(common.FromAngle(theta).Mult(d))
		if !g.gateFits(pos) {
			continue
		}
		g.layout.Gates = append(g.layout.Gates, Gate{
			Num:      len(g.layout.Gates),
			Position: pos,
			Rotation: theta + math.Pi/2,
			Planet:   idx,
		})
		placed++
	}
	return placed
}

func (g *generator) gateFits(pos cp.Vector) bool {
	for _, planet := range g.layout.Planets {
		if pos.Distance(planet.Position) < planet.Radius+g.p.GateClearance {
			return false
		}
	}
	for _, other := range g.layout.Gates {
		if pos.Distance(other.Position) < g.p.GateClearance {
			return false
		}
	}
	return true
}
