package component

// Player holds the ship's input accumulators and run scoring.
type Player struct {
	LinSpeed     float64
	ForwardBoost float64
	AngSpeed     float64

	// MoveX/MoveY and Rot are rebuilt from input every frame and applied to
	// the body before the step.
	MoveX float64
	MoveY float64
	Rot   float64

	Zoom    float64
	ZoomMin float64
	ZoomMax float64

	Fuel     float64
	FuelBurn float64
	FuelMode bool

	Score  int
	Failed bool
}

func (*Player) Kind() Kind { return KindPlayer }
func (*Player) variant()   {}

// Thrusting reports whether any translation input was applied this frame.
func (p *Player) Thrusting() bool {
	return p.MoveX != 0 || p.MoveY != 0
}
