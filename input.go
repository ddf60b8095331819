package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/orbitgates/ecs/component"
)

var keyBindings = map[component.Action][]ebiten.Key{
	component.ActionForward:     {ebiten.KeyW, ebiten.KeyArrowUp},
	component.ActionBackward:    {ebiten.KeyS, ebiten.KeyArrowDown},
	component.ActionStrafeLeft:  {ebiten.KeyA},
	component.ActionStrafeRight: {ebiten.KeyD},
	component.ActionRotateLeft:  {ebiten.KeyI, ebiten.KeyArrowLeft},
	component.ActionRotateRight: {ebiten.KeyO, ebiten.KeyArrowRight},
	component.ActionZoomIn:      {ebiten.KeyBracketRight},
	component.ActionZoomOut:     {ebiten.KeyBracketLeft},
	component.ActionToggleDebug: {ebiten.KeyF3},
}

// keyboardInput reads key-down state straight from ebiten.
type keyboardInput struct{}

func (keyboardInput) Pressed(a component.Action) bool {
	for _, k := range keyBindings[a] {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// justPressed reports an edge on any key bound to a, for toggles.
func (keyboardInput) justPressed(a component.Action) bool {
	for _, k := range keyBindings[a] {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
