package component

import "github.com/milk9111/orbitgates/physics"

// Gate is one ordinal gate. Its body carries Num as tag.
type Gate struct {
	Num  int
	Zone physics.ColliderHandle
}

func (*Gate) Kind() Kind { return KindGate }
func (*Gate) variant()   {}

// GateState is derived from the gate's ordinal and the next gate to cross.
type GateState uint8

const (
	GateFuture GateState = iota
	GateCurrent
	GatePassed
)

func (s GateState) String() string {
	switch s {
	case GateCurrent:
		return "current"
	case GatePassed:
		return "passed"
	}
	return "future"
}
