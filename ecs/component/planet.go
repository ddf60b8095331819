package component

// Planet is a static attractor. Mass is density times area, fixed at spawn.
type Planet struct {
	Radius float64
	Mass   float64
}

func (*Planet) Kind() Kind { return KindPlanet }
func (*Planet) variant()   {}
