package physics

type EventKind uint8

const (
	IntersectionStarted EventKind = iota + 1
	IntersectionStopped
	ContactStarted
)

func (k EventKind) String() string {
	switch k {
	case IntersectionStarted:
		return "intersection_started"
	case IntersectionStopped:
		return "intersection_stopped"
	case ContactStarted:
		return "contact_started"
	}
	return "unknown"
}

// Event is captured during a step and drained once the step returns.
// Intersection events carry the sensor in A and the intersecting collider in
// B. Contact events carry the two colliders in arbiter order.
type Event struct {
	Kind          EventKind
	A             ColliderHandle
	B             ColliderHandle
	RelativeSpeed float64
}

// Other returns the collider paired with c, if c is part of the event.
func (e Event) Other(c ColliderHandle) (ColliderHandle, bool) {
	switch c {
	case e.A:
		return e.B, true
	case e.B:
		return e.A, true
	}
	return ColliderHandle{}, false
}

// eventBuffer is written by collision callbacks and drained by Step's caller.
// Callbacks and the drain run on the same goroutine inside one Step call, so
// no locking is needed.
type eventBuffer struct {
	items []Event
}

func (b *eventBuffer) push(evt Event) {
	b.items = append(b.items, evt)
}

func (b *eventBuffer) drain() []Event {
	if len(b.items) == 0 {
		return nil
	}
	out := b.items
	b.items = nil
	return out
}
