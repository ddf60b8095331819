package component

import "github.com/milk9111/orbitgates/physics"

type Asteroid struct {
	Scale    float64
	Collider physics.ColliderHandle
}

func (*Asteroid) Kind() Kind { return KindAsteroid }
func (*Asteroid) variant()   {}
