package component

// Kind is the closed set of entity kinds.
type Kind uint8

const (
	KindPlayer Kind = iota + 1
	KindPlanet
	KindGate
	KindAsteroid
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindPlanet:
		return "planet"
	case KindGate:
		return "gate"
	case KindAsteroid:
		return "asteroid"
	}
	return "unknown"
}

// Capability is a bit set of behaviours an entity kind supports.
type Capability uint8

const (
	Drawable Capability = 1 << iota
	Updatable
	PhysicsBound
	Spatial
)

func (c Capability) Has(o Capability) bool {
	return c&o == o
}

var capabilities = [...]Capability{
	KindPlayer:   Drawable | Updatable | PhysicsBound | Spatial,
	KindPlanet:   Drawable | PhysicsBound | Spatial,
	KindGate:     Drawable | PhysicsBound | Spatial,
	KindAsteroid: Drawable | Updatable | PhysicsBound | Spatial,
}

// CapabilitiesOf returns the capability set for k.
func CapabilitiesOf(k Kind) Capability {
	if int(k) >= len(capabilities) {
		return 0
	}
	return capabilities[k]
}
