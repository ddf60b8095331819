package physics

import "fmt"

// BodyHandle is an opaque, generational reference to a rigid body. The zero
// value never resolves.
type BodyHandle struct {
	index uint32
	gen   uint32
}

func (h BodyHandle) Valid() bool {
	return h.gen != 0
}

func (h BodyHandle) String() string {
	return fmt.Sprintf("body(%d:%d)", h.index, h.gen)
}

// ColliderHandle is an opaque, generational reference to a collider.
type ColliderHandle struct {
	index uint32
	gen   uint32
}

func (h ColliderHandle) Valid() bool {
	return h.gen != 0
}

func (h ColliderHandle) String() string {
	return fmt.Sprintf("collider(%d:%d)", h.index, h.gen)
}

type slot[T any] struct {
	gen   uint32
	alive bool
	value T
}

// arena stores values in reusable slots. A slot's generation is bumped on
// removal so stale handles stop resolving.
type arena[T any] struct {
	slots []slot[T]
	free  []uint32
	live  int
}

func (a *arena[T]) insert(v T) (uint32, uint32) {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.slots = append(a.slots, slot[T]{})
		idx = uint32(len(a.slots) - 1)
	}
	s := &a.slots[idx]
	s.gen++
	s.alive = true
	s.value = v
	a.live++
	return idx, s.gen
}

func (a *arena[T]) get(idx, gen uint32) (T, bool) {
	var zero T
	if gen == 0 || int(idx) >= len(a.slots) {
		return zero, false
	}
	s := &a.slots[idx]
	if !s.alive || s.gen != gen {
		return zero, false
	}
	return s.value, true
}

func (a *arena[T]) remove(idx, gen uint32) bool {
	if _, ok := a.get(idx, gen); !ok {
		return false
	}
	s := &a.slots[idx]
	var zero T
	s.value = zero
	s.alive = false
	a.free = append(a.free, idx)
	a.live--
	return true
}

func (a *arena[T]) len() int {
	return a.live
}
