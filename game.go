package main

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/orbitgates/assets"
	"github.com/milk9111/orbitgates/common"
	"github.com/milk9111/orbitgates/ecs"
	"github.com/milk9111/orbitgates/ecs/component"
	"github.com/milk9111/orbitgates/ecs/system"
	"github.com/milk9111/orbitgates/game"
	"github.com/milk9111/orbitgates/levels"
	"github.com/milk9111/orbitgates/prefabs"
	"golang.design/x/clipboard"
)

type appState int

const (
	stateMenu appState = iota
	statePlaying
)

// App is the ebiten host. It owns the menu, the current run and the
// hot-reloadable specs; the simulation itself knows nothing about ebiten.
type App struct {
	state    appState
	debug    bool
	showDraw bool

	live    *prefabs.Live
	presets []levels.Preset
	audio   *assets.ImpactMixer
	input   keyboardInput

	menu    *menuUI
	stars   *starfield
	overlay *ebitenui.UI
	sim     *game.Simulation
	last    game.RunParams

	clipboardOK bool
	viewW       float64
	viewH       float64
}

func NewApp(debug bool) (*App, error) {
	specs, err := prefabs.LoadAll()
	if err != nil {
		return nil, err
	}
	presets, err := levels.LoadPresets()
	if err != nil {
		return nil, err
	}

	var watcher *prefabs.Watcher
	if debug {
		dirs := []string{prefabs.DiskDir, filepath.Join(prefabs.DiskDir, "scripts")}
		if watcher, err = prefabs.NewWatcher(dirs...); err != nil {
			log.Printf("App: prefab hot reload disabled: %v", err)
			watcher = nil
		}
	}

	mixer, err := assets.NewImpactMixer(specs.Game.ImpactSoundSpeed)
	if err != nil {
		log.Printf("App: audio disabled: %v", err)
	}

	a := &App{
		debug:    debug,
		showDraw: debug,
		live:     prefabs.NewLive(specs, watcher),
		presets:  presets,
		audio:    mixer,
		viewW:    common.BaseWidth,
		viewH:    common.BaseHeight,
		stars:    newStarfield(400, 3000, common.NewRand(uint64(time.Now().UnixNano()))),
	}
	if err := clipboard.Init(); err != nil {
		log.Printf("App: clipboard unavailable: %v", err)
	} else {
		a.clipboardOK = true
	}
	a.menu = newMenuUI(a, presets, specs.Player.Ships)
	return a, nil
}

// Start begins a fresh run with params, replacing any run in progress.
func (a *App) Start(params game.RunParams) {
	sim, err := game.New(params, a.live.Specs(), a.input, a.mixer())
	if err != nil {
		log.Printf("App: start run: %v", err)
		return
	}
	sim.SetViewSize(a.viewW, a.viewH)
	a.sim = sim
	a.last = sim.Params()
	a.overlay = nil
	a.state = statePlaying
	log.Printf("App: run started length=%d seed=%d fuel=%t", params.Length, sim.Seed(), params.FuelMode)
}

// restart replays the current seed.
func (a *App) restart() {
	if a.sim == nil {
		return
	}
	params := a.last
	params.Seed = a.sim.Seed()
	a.Start(params)
}

// reroll starts the same length with a new random seed.
func (a *App) reroll() {
	params := a.last
	params.Seed = 0
	params.RandomSeed = true
	a.Start(params)
}

func (a *App) toMenu() {
	a.sim = nil
	a.overlay = nil
	a.state = stateMenu
}

func (a *App) copySeed() {
	if a.sim == nil || !a.clipboardOK {
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(fmt.Sprintf("%d", a.sim.Seed())))
	log.Printf("App: copied seed %d", a.sim.Seed())
}

// mixer avoids handing a typed nil to the simulation when audio failed.
func (a *App) mixer() system.AudioMixer {
	if a.audio == nil {
		return nil
	}
	return a.audio
}

func (a *App) Update() error {
	if a.live.Poll() {
		a.menu.setShips(a.live.Specs().Player.Ships)
	}
	if a.input.justPressed(component.ActionToggleDebug) {
		a.showDraw = !a.showDraw
	}

	switch a.state {
	case stateMenu:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			return ebiten.Termination
		}
		a.menu.ui.Update()
		if a.menu.quit {
			return ebiten.Termination
		}
		return nil
	case statePlaying:
		return a.updatePlaying()
	}
	return nil
}

func (a *App) updatePlaying() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		a.toMenu()
		return nil
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		a.restart()
		return nil
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		a.reroll()
		return nil
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		a.copySeed()
	}

	a.sim.Tick(1 / float64(ebiten.TPS()))
	for _, ev := range a.sim.Events() {
		logEvent(ev)
	}

	if a.sim.Outcome().Over() && a.overlay == nil {
		a.overlay = newOverlayUI(a, a.sim.Outcome())
	}
	if a.overlay != nil {
		a.overlay.Update()
	}
	return nil
}

func logEvent(ev ecs.Event) {
	switch d := ev.Data.(type) {
	case ecs.GateCrossedEvent:
		log.Printf("Game: gate %d crossed, score %d", d.Gate, d.Score)
	case ecs.PlayerDamagedEvent:
		log.Printf("Game: hit at %.0f, score %d", d.RelativeSpeed, d.Score)
	case ecs.RunOverEvent:
		log.Printf("Game: run over completed=%t failed=%t score=%d", d.Completed, d.Failed, d.Score)
	}
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(spaceColor)
	if a.state == stateMenu || a.sim == nil {
		a.menu.ui.Draw(screen)
		return
	}

	specs := a.live.Specs()
	r := &sceneRenderer{
		screen:   screen,
		cam:      a.sim.Camera(),
		gate:     specs.Gate,
		asteroid: specs.Asteroid,
		player:   specs.Player,
	}
	a.stars.draw(screen, r.cam)
	a.sim.Render(r)
	if a.showDraw {
		drawColliders(screen, a.sim.World().Physics().Space(), r.cam)
	}
	hud := a.sim.HUD()
	drawHUD(screen, hud, a.clipboardOK)
	drawRadar(screen, a.sim.Layout(), hud.NextGate, r.cam)
	if a.overlay != nil {
		a.overlay.Draw(screen)
	}
}

func (a *App) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return a.viewW, a.viewH
	}
	// Keep the base height and widen or narrow with the window aspect.
	a.viewH = common.BaseHeight
	a.viewW = common.BaseHeight * outsideWidth / outsideHeight
	if a.sim != nil {
		a.sim.SetViewSize(a.viewW, a.viewH)
	}
	return a.viewW, a.viewH
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
