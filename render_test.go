package main

import (
	"math"
	"strings"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/orbitgates/ecs/component"
	"github.com/milk9111/orbitgates/game"
)

func TestSceneRendererToScreen(t *testing.T) {
	cam := component.Camera{Target: cp.Vector{X: 100, Y: 50}, Zoom: 2, ViewWidth: 800, ViewHeight: 600}
	tests := []struct {
		name     string
		rotation float64
		in       cp.Vector
		want     cp.Vector
	}{
		{"target at center", 0, cp.Vector{X: 100, Y: 50}, cp.Vector{X: 400, Y: 300}},
		{"zoom scales offset", 0, cp.Vector{X: 110, Y: 50}, cp.Vector{X: 420, Y: 300}},
		{"quarter turn", math.Pi / 2, cp.Vector{X: 110, Y: 50}, cp.Vector{X: 400, Y: 320}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cam
			c.Rotation = tt.rotation
			r := &sceneRenderer{cam: c}
			got := r.toScreen(tt.in)
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
				t.Fatalf("toScreen(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHUDLines(t *testing.T) {
	h := game.HUD{Score: 42, NextGate: 5, Gates: 6, Seed: 9, FuelMode: true, Fuel: 12.4}
	got := strings.Join(hudLines(h, false), "|")
	for _, want := range []string{"Score 42", "Gate 6/6", "Fuel 12", "Seed 9"} {
		if !strings.Contains(got, want) {
			t.Fatalf("hud %q missing %q", got, want)
		}
	}
	if strings.Contains(got, "copy") {
		t.Fatalf("hud %q offers copy without a clipboard", got)
	}

	h.FuelMode = false
	if got := strings.Join(hudLines(h, true), "|"); strings.Contains(got, "Fuel") || !strings.Contains(got, "copy") {
		t.Fatalf("unexpected hud %q", got)
	}
}

func TestRadarPoint(t *testing.T) {
	cam := component.Camera{Target: cp.Vector{X: 1000, Y: 0}}
	tests := []struct {
		name        string
		in          cp.Vector
		wantClamped bool
		wantLen     float64
	}{
		{"at target", cp.Vector{X: 1000}, false, 0},
		{"inside range", cp.Vector{X: 1000 + radarRange/2}, false, radarRadius / 2},
		{"outside range pinned to rim", cp.Vector{X: 1000 + radarRange*3}, true, radarRadius - radarEdgeMargin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pt, clamped := radarPoint(tt.in, cam)
			if clamped != tt.wantClamped {
				t.Fatalf("clamped = %v, want %v", clamped, tt.wantClamped)
			}
			if math.Abs(pt.Length()-tt.wantLen) > 1e-9 {
				t.Fatalf("length = %v, want %v", pt.Length(), tt.wantLen)
			}
		})
	}
}

func TestStarfieldWrapStaysInSpan(t *testing.T) {
	s := &starfield{span: 100}
	st := star{pos: cp.Vector{X: 10, Y: -20}, depth: 0.5}
	for _, target := range []cp.Vector{{}, {X: 1e6, Y: -3e5}, {X: -777, Y: 42}} {
		got := s.wrap(st, target)
		if got.X < -50 || got.X >= 50 || got.Y < -50 || got.Y >= 50 {
			t.Fatalf("wrap(%v) = %v outside span", target, got)
		}
	}
}
