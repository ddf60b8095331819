package physics

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

const frame = 1.0 / 60.0

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s: expected panic", name)
		}
	}()
	fn()
}

func newShip(s *Server, pos, vel cp.Vector) (BodyHandle, ColliderHandle) {
	b := s.CreateBody(BodyDesc{Kind: Dynamic, Position: pos, LinearVelocity: vel})
	c := s.AttachCollider(b, ColliderDesc{
		Shape:      ShapeCapsule,
		Radius:     20,
		HalfHeight: 20,
		Density:    1,
		Role:       RolePlayer,
		Events:     IntersectionEvents | ContactEvents,
	})
	s.SetPlayerCollider(c)
	return b, c
}

func newGate(s *Server, pos cp.Vector, tag int) (BodyHandle, ColliderHandle) {
	b := s.CreateBody(BodyDesc{Kind: Static, Position: pos, Tag: tag, HasTag: true})
	zone := s.AttachCollider(b, ColliderDesc{Shape: ShapeBox, HalfWidth: 7.5, HalfHeight: 115, Sensor: true})
	return b, zone
}

func TestBodyLifecycle(t *testing.T) {
	s := NewServer(Config{})
	b := s.CreateBody(BodyDesc{Kind: Dynamic, Position: cp.Vector{X: 5, Y: 6}})
	c := s.AttachCollider(b, ColliderDesc{Shape: ShapeCircle, Radius: 10, Density: 2})

	if !s.ContainsBody(b) || !s.ContainsCollider(c) {
		t.Fatalf("expected body and collider to resolve")
	}
	if got := s.ColliderBody(c); got != b {
		t.Fatalf("collider parent = %v, want %v", got, b)
	}
	want := 2 * math.Pi * 100
	if got := s.Mass(b); math.Abs(got-want) > 1e-9 {
		t.Fatalf("mass = %v, want %v", got, want)
	}

	s.RemoveBody(b)
	if s.ContainsBody(b) || s.ContainsCollider(c) {
		t.Fatalf("expected handles to stop resolving after removal")
	}
	if s.BodyCount() != 0 || s.ColliderCount() != 0 {
		t.Fatalf("expected empty arenas, got %d bodies %d colliders", s.BodyCount(), s.ColliderCount())
	}

	mustPanic(t, "position", func() { s.Position(b) })
	mustPanic(t, "collider body", func() { s.ColliderBody(c) })
	mustPanic(t, "remove twice", func() { s.RemoveBody(b) })

	again := s.CreateBody(BodyDesc{Kind: Static})
	if again == b {
		t.Fatalf("reused slot must carry a new generation")
	}
	mustPanic(t, "stale after reuse", func() { s.Position(b) })
}

func TestSetPositionTeleports(t *testing.T) {
	s := NewServer(Config{})
	ship, _ := newShip(s, cp.Vector{}, cp.Vector{})
	_, zone := newGate(s, cp.Vector{X: 500}, 0)
	gate := s.ColliderBody(zone)

	s.SetPosition(ship, cp.Vector{X: 500})
	if got := s.Position(ship); got != (cp.Vector{X: 500}) {
		t.Fatalf("position = %v, want (500, 0)", got)
	}
	entered := false
	for _, e := range s.Step(frame) {
		if e.Kind == IntersectionStarted && e.A == zone {
			entered = true
		}
	}
	if !entered {
		t.Fatalf("teleported ship did not enter the gate zone")
	}

	s.SetPosition(gate, cp.Vector{X: -100})
	if got := s.Position(gate); got != (cp.Vector{X: 500}) {
		t.Fatalf("static body moved to %v", got)
	}
}

func TestTagAndKind(t *testing.T) {
	s := NewServer(Config{})
	gate, _ := newGate(s, cp.Vector{}, 4)
	ship, _ := newShip(s, cp.Vector{X: 500}, cp.Vector{})

	if tag, ok := s.Tag(gate); !ok || tag != 4 {
		t.Fatalf("gate tag = %d ok=%v, want 4", tag, ok)
	}
	if _, ok := s.Tag(ship); ok {
		t.Fatalf("ship should carry no tag")
	}
	if s.Kind(gate) != Static || s.Kind(ship) != Dynamic {
		t.Fatalf("unexpected kinds %v %v", s.Kind(gate), s.Kind(ship))
	}
}

func TestSensorExitRaisesPlayerIntersection(t *testing.T) {
	s := NewServer(Config{})
	_, zone := newGate(s, cp.Vector{X: 100}, 0)
	_, ship := newShip(s, cp.Vector{}, cp.Vector{X: 600})

	var started, stopped, flagged int
	for i := 0; i < 60; i++ {
		evts := s.Step(frame)
		for _, e := range evts {
			switch e.Kind {
			case IntersectionStarted:
				started++
			case IntersectionStopped:
				stopped++
				if e.A != zone || e.B != ship {
					t.Fatalf("stopped event = %+v, want sensor %v and ship %v", e, zone, ship)
				}
			}
		}
		if c, ok := s.PlayerIntersection(); ok {
			flagged++
			if c != zone {
				t.Fatalf("player intersected %v, want %v", c, zone)
			}
		}
	}

	if started != 1 || stopped != 1 {
		t.Fatalf("started=%d stopped=%d, want 1 and 1", started, stopped)
	}
	if flagged != 1 {
		t.Fatalf("player intersection flag seen on %d steps, want exactly 1", flagged)
	}
}

func TestSensorIgnoresCollidersWithoutIntersectionEvents(t *testing.T) {
	s := NewServer(Config{})
	newGate(s, cp.Vector{X: 100}, 0)
	rock := s.CreateBody(BodyDesc{Kind: Dynamic, LinearVelocity: cp.Vector{X: 600}})
	s.AttachCollider(rock, ColliderDesc{Shape: ShapeCircle, Radius: 10, Density: 1, Role: RoleAsteroid, Events: ContactEvents})

	for i := 0; i < 60; i++ {
		for _, e := range s.Step(frame) {
			if e.Kind == IntersectionStarted || e.Kind == IntersectionStopped {
				t.Fatalf("unexpected intersection event %+v", e)
			}
		}
	}
}

func TestContactEvents(t *testing.T) {
	tests := []struct {
		name   string
		events EventFlags
		want   int
	}{
		{"reported", ContactEvents, 1},
		{"inactive", 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewServer(Config{})
			planet := s.CreateBody(BodyDesc{Kind: Static, Position: cp.Vector{X: 200}})
			s.AttachCollider(planet, ColliderDesc{Shape: ShapeCircle, Radius: 50, Density: 5})

			rock := s.CreateBody(BodyDesc{Kind: Dynamic, LinearVelocity: cp.Vector{X: 300}})
			s.AttachCollider(rock, ColliderDesc{Shape: ShapeCircle, Radius: 10, Density: 1, Role: RoleAsteroid, Events: tc.events})

			got := 0
			for i := 0; i < 60; i++ {
				for _, e := range s.Step(frame) {
					if e.Kind != ContactStarted {
						continue
					}
					got++
					if e.RelativeSpeed <= 0 {
						t.Fatalf("expected positive relative speed, got %v", e.RelativeSpeed)
					}
				}
			}
			if got != tc.want {
				t.Fatalf("contact events = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestStaticBodiesIgnoreVelocityAndForce(t *testing.T) {
	s := NewServer(Config{})
	b := s.CreateBody(BodyDesc{Kind: Static, Position: cp.Vector{X: 10, Y: 10}})
	s.AttachCollider(b, ColliderDesc{Shape: ShapeCircle, Radius: 5, Density: 5})

	s.SetLinearVelocity(b, cp.Vector{X: 100})
	s.SetForce(b, cp.Vector{X: 1e6})
	s.Step(frame)

	if p := s.Position(b); p.X != 10 || p.Y != 10 {
		t.Fatalf("static body moved to %v", p)
	}
	if s.Mass(b) <= 0 {
		t.Fatalf("static body should still report collider mass")
	}
}

func TestSubstepsBoundFastBodies(t *testing.T) {
	s := NewServer(Config{MaxSubsteps: 4})
	b := s.CreateBody(BodyDesc{Kind: Dynamic, LinearVelocity: cp.Vector{X: 60 * 25}})
	s.AttachCollider(b, ColliderDesc{Shape: ShapeCircle, Radius: 10, Density: 1})

	if n := s.substeps(frame); n != 3 {
		t.Fatalf("substeps = %d, want 3", n)
	}
	s.SetLinearVelocity(b, cp.Vector{X: 1e6})
	if n := s.substeps(frame); n != 4 {
		t.Fatalf("substeps = %d, want capped 4", n)
	}
}

func TestForceIsClearedAfterStep(t *testing.T) {
	s := NewServer(Config{})
	b := s.CreateBody(BodyDesc{Kind: Dynamic})
	s.AttachCollider(b, ColliderDesc{Shape: ShapeCircle, Radius: 1, Density: 1})

	s.SetForce(b, cp.Vector{X: s.Mass(b) * 60})
	s.Step(frame)
	if v := s.LinearVelocity(b); math.Abs(v.X-1) > 1e-6 {
		t.Fatalf("velocity = %v, want 1 after one frame of unit acceleration*60", v)
	}
	if f := s.Force(b); f.X != 0 || f.Y != 0 {
		t.Fatalf("force should be cleared after step, got %v", f)
	}
}

func TestMutationDuringStepPanics(t *testing.T) {
	s := NewServer(Config{})
	b := s.CreateBody(BodyDesc{Kind: Dynamic})
	s.stepping = true
	defer func() { s.stepping = false }()

	mustPanic(t, "create", func() { s.CreateBody(BodyDesc{}) })
	mustPanic(t, "attach", func() { s.AttachCollider(b, ColliderDesc{Radius: 1}) })
	mustPanic(t, "remove", func() { s.RemoveBody(b) })
}
