package common

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestSafeNormalize(t *testing.T) {
	fallback := cp.Vector{X: 1}
	cases := []struct {
		name string
		in   cp.Vector
		want cp.Vector
	}{
		{"unit", cp.Vector{Y: 2}, cp.Vector{Y: 1}},
		{"diagonal", cp.Vector{X: 3, Y: 4}, cp.Vector{X: 0.6, Y: 0.8}},
		{"zero", cp.Vector{}, fallback},
		{"tiny", cp.Vector{X: 1e-12}, fallback},
		{"nan", cp.Vector{X: math.NaN()}, fallback},
		{"inf", cp.Vector{Y: math.Inf(1)}, fallback},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := SafeNormalize(c.in, fallback)
			if got.Sub(c.want).Length() > 1e-12 {
				t.Fatalf("SafeNormalize(%v) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestRotate(t *testing.T) {
	got := Rotate(cp.Vector{X: 1}, math.Pi/2)
	if got.Sub(cp.Vector{Y: 1}).Length() > 1e-12 {
		t.Fatalf("Rotate = %v, want (0, 1)", got)
	}
	if l := Rotate(cp.Vector{X: 3, Y: 4}, 1.234).Length(); math.Abs(l-5) > 1e-12 {
		t.Fatalf("rotation changed length to %v", l)
	}
}

func TestClampAndLerp(t *testing.T) {
	if Clamp(2, 0.25, 0.8) != 0.8 || Clamp(0, 0.25, 0.8) != 0.25 || Clamp(0.5, 0.25, 0.8) != 0.5 {
		t.Fatalf("Clamp out of range")
	}
	if Lerp(10, 20, 0.17) != 10+10*0.17 {
		t.Fatalf("Lerp mismatch")
	}
	v := LerpVector(cp.Vector{}, cp.Vector{X: 100, Y: -100}, 0.5)
	if v != (cp.Vector{X: 50, Y: -50}) {
		t.Fatalf("LerpVector = %v", v)
	}
}
