package main

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/orbitgates/common"
	"github.com/milk9111/orbitgates/ecs/component"
	"github.com/milk9111/orbitgates/prefabs"
	"golang.org/x/image/colornames"
)

var (
	spaceColor    = color.RGBA{R: 8, G: 10, B: 24, A: 255}
	exhaustColor  = colornames.Orange
	asteroidTints = []color.Color{colornames.Darkgray, colornames.Rosybrown, colornames.Slategray}
)

var whitePixel = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

// sceneRenderer maps world space to the screen through the run's camera
// and draws each entity kind with plain vector shapes.
type sceneRenderer struct {
	screen   *ebiten.Image
	cam      component.Camera
	gate     prefabs.GateSpec
	asteroid prefabs.AsteroidSpec
	player   prefabs.PlayerSpec
}

func (r *sceneRenderer) toScreen(p cp.Vector) cp.Vector {
	rel := common.Rotate(p.Sub(r.cam.Target).Mult(r.cam.Zoom), r.cam.Rotation)
	return cp.Vector{X: rel.X + r.cam.ViewWidth/2, Y: rel.Y + r.cam.ViewHeight/2}
}

// local converts a point in an entity's frame to screen space.
func (r *sceneRenderer) local(t component.Transform, p cp.Vector) cp.Vector {
	return r.toScreen(t.Position().Add(common.Rotate(p, t.Rotation)))
}

func (r *sceneRenderer) DrawEntity(t component.Transform, v *component.Visual, tint color.Color) {
	if v == nil {
		return
	}
	c := r.toScreen(t.Position())
	if reach := v.Radius * r.cam.Zoom; c.X < -reach || c.Y < -reach || c.X > r.cam.ViewWidth+reach || c.Y > r.cam.ViewHeight+reach {
		return
	}

	switch v.Shape {
	case component.ShapePlanet:
		r.drawPlanet(c, v)
	case component.ShapeGate:
		r.drawGate(t, tint)
	case component.ShapeAsteroid:
		r.drawAsteroid(t, v)
	case component.ShapeShip:
		r.drawShip(t, v, tint)
	}
}

func (r *sceneRenderer) drawPlanet(c cp.Vector, v *component.Visual) {
	outer, inner := v.Gradient[1], v.Gradient[0]
	if outer == nil || inner == nil {
		outer, inner = colornames.Gray, colornames.Lightgray
	}
	rad := float32(v.Radius * r.cam.Zoom)
	// Step between the two colours to fake a radial gradient.
	const bands = 6
	for i := 0; i < bands; i++ {
		f := float64(i) / bands
		vector.FillCircle(r.screen, float32(c.X), float32(c.Y), rad*float32(1-f*0.6), mixColor(outer, inner, f), true)
	}
}

func (r *sceneRenderer) drawGate(t component.Transform, tint color.Color) {
	if tint == nil {
		tint = color.White
	}
	top := r.local(t, cp.Vector{Y: -r.gate.HalfHeight})
	bottom := r.local(t, cp.Vector{Y: r.gate.HalfHeight})
	width := float32(math.Max(r.gate.ZoneWidth*r.cam.Zoom*0.3, 1))
	vector.StrokeLine(r.screen, float32(top.X), float32(top.Y), float32(bottom.X), float32(bottom.Y), width, fade(tint, 0x60), true)
	post := float32(r.gate.PostRadius * r.cam.Zoom)
	vector.FillCircle(r.screen, float32(top.X), float32(top.Y), post, tint, true)
	vector.FillCircle(r.screen, float32(bottom.X), float32(bottom.Y), post, tint, true)
}

func (r *sceneRenderer) drawAsteroid(t component.Transform, v *component.Visual) {
	tint := asteroidTints[v.Variant%len(asteroidTints)]
	a := r.local(t, cp.Vector{Y: -r.asteroid.HalfHeight * v.Scale})
	b := r.local(t, cp.Vector{Y: r.asteroid.HalfHeight * v.Scale})
	rad := float32(r.asteroid.Radius * v.Scale * r.cam.Zoom)
	vector.StrokeLine(r.screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), rad*2, tint, true)
	vector.FillCircle(r.screen, float32(a.X), float32(a.Y), rad, tint, true)
	vector.FillCircle(r.screen, float32(b.X), float32(b.Y), rad, tint, true)
}

func (r *sceneRenderer) drawShip(t component.Transform, v *component.Visual, tint color.Color) {
	if tint == nil {
		tint = color.White
	}
	h := r.player.HalfHeight + r.player.Radius
	w := r.player.Radius
	if v.Exhaust {
		r.fillTriangle(exhaustColor,
			r.local(t, cp.Vector{X: -w * 0.5, Y: h * 0.6}),
			r.local(t, cp.Vector{X: w * 0.5, Y: h * 0.6}),
			r.local(t, cp.Vector{Y: h * 1.5}),
		)
	}
	r.fillTriangle(tint,
		r.local(t, cp.Vector{Y: -h}),
		r.local(t, cp.Vector{X: w, Y: h}),
		r.local(t, cp.Vector{X: -w, Y: h}),
	)
}

func (r *sceneRenderer) fillTriangle(clr color.Color, a, b, c cp.Vector) {
	cr, cg, cb, ca := clr.RGBA()
	vs := make([]ebiten.Vertex, 0, 3)
	for _, p := range []cp.Vector{a, b, c} {
		vs = append(vs, ebiten.Vertex{
			DstX: float32(p.X), DstY: float32(p.Y),
			SrcX: 1, SrcY: 1,
			ColorR: float32(cr) / 0xffff, ColorG: float32(cg) / 0xffff, ColorB: float32(cb) / 0xffff, ColorA: float32(ca) / 0xffff,
		})
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	r.screen.DrawTriangles(vs, []uint16{0, 1, 2}, whitePixel, op)
}

func mixColor(a, b color.Color, f float64) color.Color {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	mix := func(x, y uint32) uint8 {
		return uint8(common.Lerp(float64(x), float64(y), f) / 0x101)
	}
	return color.RGBA{R: mix(ar, br), G: mix(ag, bg), B: mix(ab, bb), A: mix(aa, ba)}
}

func fade(c color.Color, alpha uint8) color.Color {
	cr, cg, cb, _ := c.RGBA()
	return color.NRGBA{R: uint8(cr >> 8), G: uint8(cg >> 8), B: uint8(cb >> 8), A: alpha}
}
