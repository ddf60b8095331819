package main

import (
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/milk9111/orbitgates/common"
	"github.com/milk9111/orbitgates/game"
	"github.com/milk9111/orbitgates/levels"
	"github.com/milk9111/orbitgates/prefabs"
)

// menuUI is the level select screen: one button per preset plus toggles
// for seed mode, fuel mode and hull.
type menuUI struct {
	ui   *ebitenui.UI
	quit bool

	random bool
	fuel   bool
	ship   int
	ships  []prefabs.ShipSpec

	randomBtn *widget.Button
	fuelBtn   *widget.Button
	shipBtn   *widget.Button
}

func newMenuUI(a *App, presets []levels.Preset, ships []prefabs.ShipSpec) *menuUI {
	m := &menuUI{ships: ships}
	root, panel := newPanel(common.BaseWidth/3, common.BaseHeight/2)

	panel.AddChild(newLabel("ORBIT GATES"))
	for _, p := range presets {
		label := fmt.Sprintf("%s (%d gates)", p.Label, p.Length)
		panel.AddChild(newButton(label, func() {
			a.Start(game.RunParams{
				Length:     p.Length,
				RandomSeed: m.random,
				FuelMode:   m.fuel,
				Ship:       m.ship,
			})
		}))
	}

	m.randomBtn = newButton("", func() {
		m.random = !m.random
		m.refresh()
	})
	m.fuelBtn = newButton("", func() {
		m.fuel = !m.fuel
		m.refresh()
	})
	m.shipBtn = newButton("", func() {
		if len(m.ships) > 0 {
			m.ship = (m.ship + 1) % len(m.ships)
		}
		m.refresh()
	})
	panel.AddChild(m.randomBtn)
	panel.AddChild(m.fuelBtn)
	panel.AddChild(m.shipBtn)
	panel.AddChild(newButton("Quit", func() { m.quit = true }))

	m.refresh()
	m.ui = &ebitenui.UI{Container: root}
	return m
}

// setShips swaps the hull list after a prefab reload.
func (m *menuUI) setShips(ships []prefabs.ShipSpec) {
	m.ships = ships
	if m.ship >= len(ships) {
		m.ship = 0
	}
	m.refresh()
}

func (m *menuUI) refresh() {
	setButtonLabel(m.randomBtn, "Seed: "+onOff(m.random, "random", "fixed"))
	setButtonLabel(m.fuelBtn, "Fuel: "+onOff(m.fuel, "on", "off"))
	name := "default"
	if m.ship < len(m.ships) && m.ships[m.ship].Name != "" {
		name = m.ships[m.ship].Name
	}
	setButtonLabel(m.shipBtn, "Ship: "+name)
}

func onOff(v bool, on, off string) string {
	if v {
		return on
	}
	return off
}
