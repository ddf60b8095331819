package levels

import (
	"errors"
	"reflect"
	"testing"

	"github.com/milk9111/orbitgates/common"
	"github.com/milk9111/orbitgates/prefabs"
)

func testParams(t *testing.T) Params {
	t.Helper()
	specs, err := prefabs.LoadAll()
	if err != nil {
		t.Fatalf("load specs: %v", err)
	}
	return ParamsFromSpecs(specs)
}

func TestGenerateIsDeterministic(t *testing.T) {
	p := testParams(t)
	for _, seed := range []uint64{1, 6, 42, 65535} {
		a, err := Generate(common.NewRand(seed), 12, p)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		b, err := Generate(common.NewRand(seed), 12, p)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("seed %d produced different layouts", seed)
		}
	}
}

func TestGenerateGateInvariants(t *testing.T) {
	p := testParams(t)
	cases := []struct {
		name  string
		seed  uint64
		gates int
	}{
		{"single", 3, 1},
		{"short", 6, 6},
		{"medium", 15, 15},
		{"long", 30, 30},
		{"odd budget", 9001, 7},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l, err := Generate(common.NewRand(c.seed), c.gates, p)
			if err != nil {
				t.Fatalf("generate: %v", err)
			}
			if len(l.Gates) != c.gates {
				t.Fatalf("gate count = %d, want %d", len(l.Gates), c.gates)
			}
			perPlanet := make(map[int]int)
			for i, g := range l.Gates {
				if g.Num != i {
					t.Fatalf("gate %d has ordinal %d", i, g.Num)
				}
				perPlanet[g.Planet]++
			}
			for idx, n := range perPlanet {
				if n > p.GatesMax {
					t.Fatalf("planet %d has %d gates, max %d", idx, n, p.GatesMax)
				}
			}
			for i, a := range l.Planets {
				if a.Position.Length() < a.Radius*p.SeparationFactor {
					t.Fatalf("planet %d too close to spawn", i)
				}
				for j := i + 1; j < len(l.Planets); j++ {
					b := l.Planets[j]
					if d := a.Position.Distance(b.Position); d < (a.Radius+b.Radius)*p.SeparationFactor {
						t.Fatalf("planets %d and %d are %v apart", i, j, d)
					}
				}
				if a.Radius < p.RadiusMin || a.Radius >= p.RadiusMax {
					t.Fatalf("planet %d radius %v out of range", i, a.Radius)
				}
			}
		})
	}
}

func TestGenerateRejectsEmptyBudget(t *testing.T) {
	p := testParams(t)
	for _, n := range []int{0, -3} {
		if _, err := Generate(common.NewRand(1), n, p); !errors.Is(err, ErrInvalidGateCount) {
			t.Fatalf("Generate(%d) err = %v, want ErrInvalidGateCount", n, err)
		}
	}
}

func TestGenerateExhaustion(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(p *Params)
	}{
		// Every candidate sits inside the spawn exclusion radius.
		{"attempts", func(p *Params) { p.SeparationFactor = 1e6; p.MaxAttempts = 3 }},
		// No gate slot is ever clear of its own planet.
		{"planet cap", func(p *Params) { p.GateClearance = 1e6; p.MaxPlanets = 4 }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := testParams(t)
			c.mutate(&p)
			_, err := Generate(common.NewRand(7), 5, p)
			if !errors.Is(err, ErrPlacementExhausted) {
				t.Fatalf("err = %v, want ErrPlacementExhausted", err)
			}
		})
	}
}

func TestSeedFor(t *testing.T) {
	if got := SeedFor(6, false, common.NewRand(99)); got != 6 {
		t.Fatalf("fixed seed = %d, want 6", got)
	}
	src := common.NewRand(99)
	got := SeedFor(6, true, src)
	if got > 0xffff {
		t.Fatalf("random seed %d exceeds 16 bits", got)
	}
	if again := SeedFor(6, true, common.NewRand(99)); again != got {
		t.Fatalf("random seed not reproducible from the same source")
	}
}

func TestLoadPresets(t *testing.T) {
	presets, err := LoadPresets()
	if err != nil {
		t.Fatalf("LoadPresets: %v", err)
	}
	if len(presets) != 3 {
		t.Fatalf("presets = %d, want 3", len(presets))
	}
	for i := 1; i < len(presets); i++ {
		if presets[i].Length <= presets[i-1].Length {
			t.Fatalf("presets should grow in length: %+v", presets)
		}
	}
}
