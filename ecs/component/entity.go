package component

import "github.com/milk9111/orbitgates/physics"

// Variant is the per-kind payload of an entity. It is implemented only by
// *Player, *Planet, *Gate and *Asteroid.
type Variant interface {
	Kind() Kind
	variant()
}

// Entity is the record stored in the world arena.
type Entity struct {
	Transform Transform
	Visual    *Visual
	Body      physics.BodyHandle
	Variant   Variant
}

func (e *Entity) Kind() Kind {
	if e == nil || e.Variant == nil {
		return 0
	}
	return e.Variant.Kind()
}

func (e *Entity) Capabilities() Capability {
	return CapabilitiesOf(e.Kind())
}

func (e *Entity) Player() (*Player, bool) {
	p, ok := e.Variant.(*Player)
	return p, ok
}

func (e *Entity) Planet() (*Planet, bool) {
	p, ok := e.Variant.(*Planet)
	return p, ok
}

func (e *Entity) Gate() (*Gate, bool) {
	g, ok := e.Variant.(*Gate)
	return g, ok
}

func (e *Entity) Asteroid() (*Asteroid, bool) {
	a, ok := e.Variant.(*Asteroid)
	return a, ok
}
