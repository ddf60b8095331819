package main

import (
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/milk9111/orbitgates/common"
	"github.com/milk9111/orbitgates/game"
)

// newOverlayUI builds the end of run panel. Both flags are shown when a run
// completes and fails on the same tick.
func newOverlayUI(a *App, o game.Outcome) *ebitenui.UI {
	root, panel := newPanel(common.BaseWidth/4, common.BaseHeight/3)

	title := "Run failed"
	switch {
	case o.Completed && o.Failed:
		title = "Completed, but out of points"
	case o.Completed:
		title = "All gates cleared!"
	}
	panel.AddChild(newLabel(title))
	panel.AddChild(newLabel(fmt.Sprintf("Score %d    Gates %d/%d", o.Score, min(o.NextGate, o.GateCount), o.GateCount)))

	panel.AddChild(newButton("Restart (R)", a.restart))
	panel.AddChild(newButton("New seed (N)", a.reroll))
	panel.AddChild(newButton("Menu (Esc)", a.toMenu))

	return &ebitenui.UI{Container: root}
}
