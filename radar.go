package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/orbitgates/common"
	"github.com/milk9111/orbitgates/ecs/component"
	"github.com/milk9111/orbitgates/levels"
	"golang.org/x/image/colornames"
)

const (
	radarRadius     = 110.0
	radarRange      = 4000.0
	radarEdgeMargin = 6
)

var radarBackground = color.NRGBA{R: 0x10, G: 0x18, B: 0x30, A: 0xb0}

// radarPoint maps a world position into radar space around the camera
// target, rotated like the main view and clamped to the rim. clamped is
// true when the point lies outside radar range.
func radarPoint(p cp.Vector, cam component.Camera) (pt cp.Vector, clamped bool) {
	rel := common.Rotate(p.Sub(cam.Target), cam.Rotation).Mult(radarRadius / radarRange)
	edge := float64(radarRadius - radarEdgeMargin)
	if d := rel.Length(); d > edge {
		return rel.Mult(edge / d), true
	}
	return rel, false
}

func drawRadar(screen *ebiten.Image, layout *levels.Layout, nextGate int, cam component.Camera) {
	if layout == nil {
		return
	}
	cx := float32(cam.ViewWidth - radarRadius - 16)
	cy := float32(cam.ViewHeight - radarRadius - 16)
	vector.FillCircle(screen, cx, cy, radarRadius, radarBackground, true)
	vector.StrokeCircle(screen, cx, cy, radarRadius, 1, colornames.Slategray, true)

	scale := radarRadius / radarRange
	for _, pl := range layout.Planets {
		pt, clamped := radarPoint(pl.Position, cam)
		if clamped {
			continue
		}
		r := float32(math.Max(pl.Radius*scale, 1.5))
		vector.FillCircle(screen, cx+float32(pt.X), cy+float32(pt.Y), r, pl.Colors[0], true)
	}
	if nextGate >= 0 && nextGate < len(layout.Gates) {
		pt, _ := radarPoint(layout.Gates[nextGate].Position, cam)
		vector.FillCircle(screen, cx+float32(pt.X), cy+float32(pt.Y), 4, colornames.Gold, true)
	}
	vector.FillCircle(screen, cx, cy, 2.5, colornames.White, true)
}

// starfield is a torus of points kept around the camera so it never runs
// out as the ship travels.
type starfield struct {
	stars []star
	span  float64
}

type star struct {
	pos   cp.Vector
	depth float64
	size  float32
}

func newStarfield(count int, span float64, rng *common.Rand) *starfield {
	s := &starfield{span: span}
	for range count {
		s.stars = append(s.stars, star{
			pos:   cp.Vector{X: rng.Uniform(-span/2, span/2), Y: rng.Uniform(-span/2, span/2)},
			depth: rng.Uniform(0.1, 0.5),
			size:  float32(rng.Uniform(0.6, 1.8)),
		})
	}
	return s
}

// wrap returns a star's offset from the parallax-scaled camera target,
// folded into [-span/2, span/2).
func (s *starfield) wrap(st star, target cp.Vector) cp.Vector {
	half := s.span / 2
	rel := st.pos.Sub(target.Mult(st.depth))
	fold := func(v float64) float64 {
		return math.Mod(math.Mod(v+half, s.span)+s.span, s.span) - half
	}
	return cp.Vector{X: fold(rel.X), Y: fold(rel.Y)}
}

func (s *starfield) draw(screen *ebiten.Image, cam component.Camera) {
	for _, st := range s.stars {
		rel := common.Rotate(s.wrap(st, cam.Target), cam.Rotation)
		x := float32(rel.X + cam.ViewWidth/2)
		y := float32(rel.Y + cam.ViewHeight/2)
		alpha := uint8(80 + 300*st.depth)
		vector.FillCircle(screen, x, y, st.size, color.NRGBA{R: 0xdd, G: 0xe6, B: 0xff, A: alpha}, false)
	}
}
