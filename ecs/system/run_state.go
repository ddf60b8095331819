package system

import (
	"log"

	"github.com/milk9111/orbitgates/ecs"
)

// RunStateSystem checks both terminal conditions every tick. Completion and
// failure may land on the same tick; both are reported.
type RunStateSystem struct {
	reported bool
}

func NewRunStateSystem() *RunStateSystem { return &RunStateSystem{} }

func (s *RunStateSystem) Update(w *ecs.World) {
	_, rec, ok := w.Player()
	if !ok {
		return
	}
	p, _ := rec.Player()
	if p.Score < 0 {
		p.Failed = true
	}
	completed := w.Progress().Completed()
	if completed || p.Failed {
		w.MarkRunOver()
	}

	if s.reported || (!completed && !p.Failed) {
		return
	}
	s.reported = true
	log.Printf("Run: over completed=%v failed=%v score=%d", completed, p.Failed, p.Score)
	w.Events().Push(ecs.Event{Type: ecs.EventRunOver, Data: ecs.RunOverEvent{
		Completed: completed,
		Failed:    p.Failed,
		Score:     p.Score,
	}})
}
