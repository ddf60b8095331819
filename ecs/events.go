package ecs

// Event is a game event raised during a tick and drained by the host.
type Event struct {
	Type string
	Data any
}

const (
	EventGateCrossed       = "gate_crossed"
	EventPlayerDamaged     = "player_damaged"
	EventAsteroidDestroyed = "asteroid_destroyed"
	EventRunOver           = "run_over"
)

type GateCrossedEvent struct {
	Gate     int
	NextGate int
	Score    int
}

type PlayerDamagedEvent struct {
	Score         int
	RelativeSpeed float64
}

type AsteroidDestroyedEvent struct {
	Entity   Entity
	Scale    float64
	Children int
}

type RunOverEvent struct {
	Completed bool
	Failed    bool
	Score     int
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
