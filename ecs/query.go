package ecs

// IntersectEntities returns entities present in both sets, in the order of
// the smaller set.
func IntersectEntities[A, B any](a *SparseSet[A], b *SparseSet[B]) []Entity {
	if a == nil || b == nil {
		return nil
	}
	if a.Len() <= b.Len() {
		out := make([]Entity, 0, a.Len())
		for _, e := range a.Entities() {
			if b.Has(e) {
				out = append(out, e)
			}
		}
		return out
	}
	out := make([]Entity, 0, b.Len())
	for _, e := range b.Entities() {
		if a.Has(e) {
			out = append(out, e)
		}
	}
	return out
}
