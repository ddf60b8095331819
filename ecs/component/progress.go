package component

// Progress tracks which gate must be crossed next. NextGate never decreases
// and never exceeds GateCount.
type Progress struct {
	NextGate  int
	GateCount int
}

// Cross applies a crossing of the gate tagged num. Only the current gate
// advances progress; everything else is a no-op.
func (p *Progress) Cross(num int) bool {
	if p.Completed() || num != p.NextGate {
		return false
	}
	p.NextGate++
	return true
}

// Completed reports whether every gate has been crossed.
func (p *Progress) Completed() bool {
	return p.GateCount > 0 && p.NextGate >= p.GateCount
}

// State derives the visual state of gate num.
func (p *Progress) State(num int) GateState {
	switch {
	case num < p.NextGate:
		return GatePassed
	case num == p.NextGate:
		return GateCurrent
	}
	return GateFuture
}
