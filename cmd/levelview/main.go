// Command levelview previews generated levels without playing them. It draws
// the whole layout scaled to the window, or with -dump prints it as YAML.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/orbitgates/common"
	"github.com/milk9111/orbitgates/levels"
	"github.com/milk9111/orbitgates/prefabs"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

const viewSize = 900

type preview struct {
	params levels.Params
	length int
	seed   uint64
	layout *levels.Layout
	err    error
}

func (p *preview) regenerate() {
	p.layout, p.err = levels.Generate(common.NewRand(p.seed), p.length, p.params)
	if p.err != nil {
		log.Printf("levelview: seed %d: %v", p.seed, p.err)
	}
}

func (p *preview) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyN), inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		p.seed++
		p.regenerate()
	case inpututil.IsKeyJustPressed(ebiten.KeyP), inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		if p.seed > 1 {
			p.seed--
			p.regenerate()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	}
	return nil
}

func (p *preview) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x08, 0x0a, 0x18, 0xff})
	if p.layout == nil {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("seed %d: %v", p.seed, p.err))
		return
	}

	scale, offset := fit(p.layout)
	at := func(x, y float64) (float32, float32) {
		return float32((x-offset.X)*scale + viewSize/2), float32((y-offset.Y)*scale + viewSize/2)
	}
	for _, pl := range p.layout.Planets {
		x, y := at(pl.Position.X, pl.Position.Y)
		vector.FillCircle(screen, x, y, float32(pl.Radius*scale), pl.Colors[0], true)
	}
	for i, g := range p.layout.Gates {
		x, y := at(g.Position.X, g.Position.Y)
		clr := colornames.Deepskyblue
		if i == 0 {
			clr = colornames.Gold
		}
		vector.FillCircle(screen, x, y, 3, clr, true)
		if i > 0 {
			prev := p.layout.Gates[i-1]
			px, py := at(prev.Position.X, prev.Position.Y)
			vector.StrokeLine(screen, px, py, x, y, 1, colornames.Dimgray, true)
		}
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("seed %d  planets %d  gates %d  [N/P] seed",
		p.seed, len(p.layout.Planets), len(p.layout.Gates)))
}

func (p *preview) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewSize, viewSize
}

// fit returns the scale and world center that frame every planet.
func fit(l *levels.Layout) (float64, struct{ X, Y float64 }) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, pl := range l.Planets {
		minX = math.Min(minX, pl.Position.X-pl.Radius)
		minY = math.Min(minY, pl.Position.Y-pl.Radius)
		maxX = math.Max(maxX, pl.Position.X+pl.Radius)
		maxY = math.Max(maxY, pl.Position.Y+pl.Radius)
	}
	span := math.Max(maxX-minX, maxY-minY)
	if span <= 0 {
		span = 1
	}
	return 0.9 * viewSize / span, struct{ X, Y float64 }{(minX + maxX) / 2, (minY + maxY) / 2}
}

type dumpGate struct {
	Num    int        `yaml:"num"`
	Planet int        `yaml:"planet"`
	At     [2]float64 `yaml:"at,flow"`
	Angle  float64    `yaml:"angle"`
}

type dumpPlanet struct {
	At     [2]float64 `yaml:"at,flow"`
	Radius float64    `yaml:"radius"`
}

type dump struct {
	Seed    uint64       `yaml:"seed"`
	Planets []dumpPlanet `yaml:"planets"`
	Gates   []dumpGate   `yaml:"gates"`
}

func dumpLayout(l *levels.Layout) error {
	d := dump{Seed: l.Seed}
	for _, pl := range l.Planets {
		d.Planets = append(d.Planets, dumpPlanet{At: [2]float64{pl.Position.X, pl.Position.Y}, Radius: pl.Radius})
	}
	for _, g := range l.Gates {
		d.Gates = append(d.Gates, dumpGate{Num: g.Num, Planet: g.Planet, At: [2]float64{g.Position.X, g.Position.Y}, Angle: g.Rotation})
	}
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(d)
}

func main() {
	length := flag.Int("length", 15, "gate count")
	seed := flag.Uint64("seed", 0, "level seed (0 uses the length, like fixed mode)")
	dumpOnly := flag.Bool("dump", false, "print the layout as YAML and exit")
	flag.Parse()

	specs, err := prefabs.LoadAll()
	if err != nil {
		log.Fatal(err)
	}
	p := &preview{params: levels.ParamsFromSpecs(specs), length: *length, seed: *seed}
	if p.seed == 0 {
		p.seed = levels.SeedFor(*length, false, nil)
	}
	p.regenerate()

	if *dumpOnly {
		if p.err != nil {
			log.Fatal(p.err)
		}
		if err := dumpLayout(p.layout); err != nil {
			log.Fatal(err)
		}
		return
	}

	ebiten.SetWindowSize(viewSize, viewSize)
	ebiten.SetWindowTitle("levelview")
	if err := ebiten.RunGame(p); err != nil {
		log.Fatal(err)
	}
}
