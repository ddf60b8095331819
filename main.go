package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/orbitgates/game"
)

func main() {
	debug := flag.Bool("debug", false, "draw colliders and hot-reload prefabs from ./prefabs")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	length := flag.Int("length", 0, "skip the menu and start a run with this many gates")
	seed := flag.Uint64("seed", 0, "level seed for -length runs (0 picks one)")
	random := flag.Bool("random", false, "random seed for -length runs")
	fuel := flag.Bool("fuel", false, "fuel mode for -length runs")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	w, h := ebiten.Monitor().Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("orbitgates")

	app, err := NewApp(*debug)
	if err != nil {
		log.Fatal(err)
	}
	if *length > 0 {
		app.Start(game.RunParams{Length: *length, Seed: *seed, RandomSeed: *random, FuelMode: *fuel})
	}

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
