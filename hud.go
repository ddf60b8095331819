package main

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/orbitgates/game"
	"golang.org/x/image/colornames"
)

const hudScale = 2

func hudLines(h game.HUD, canCopy bool) []string {
	lines := []string{
		fmt.Sprintf("Score %d", h.Score),
		fmt.Sprintf("Gate %d/%d", min(h.NextGate+1, h.Gates), h.Gates),
		fmt.Sprintf("Speed %.0f", h.Speed),
	}
	if h.FuelMode {
		lines = append(lines, fmt.Sprintf("Fuel %.0f", h.Fuel))
	}
	seed := fmt.Sprintf("Seed %d", h.Seed)
	if canCopy {
		seed += "  [C] copy"
	}
	return append(lines, seed, fmt.Sprintf("FPS %.0f", ebiten.ActualFPS()))
}

func drawHUD(screen *ebiten.Image, h game.HUD, canCopy bool) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Scale(hudScale, hudScale)
	op.GeoM.Translate(16, 16)
	op.ColorScale.ScaleWithColor(colornames.White)
	op.LineSpacing = uiFace.Metrics().HAscent + uiFace.Metrics().HDescent + 4
	ebtext.Draw(screen, strings.Join(hudLines(h, canCopy), "\n"), uiFace, op)
}
