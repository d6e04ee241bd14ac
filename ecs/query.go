package ecs

import "github.com/milk9111/foxtrot/ecs/component"

// ForEach calls fn for every live entity with kind. fn may add or remove
// components; entities removed during iteration are skipped.
func ForEach[A any](w *World, ka component.ComponentKind[A], fn func(Entity, *A)) {
	sa := storeFor(w, ka, false)
	for _, id := range sa.ids() {
		e, ok := w.entities.current(id)
		if !ok {
			continue
		}
		a, ok := sa.Get(id)
		if !ok {
			continue
		}
		fn(e, a)
	}
}

// ForEach2 visits entities that carry both kinds.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	sa := storeFor(w, ka, false)
	sb := storeFor(w, kb, false)
	if sa == nil || sb == nil {
		return
	}
	for _, id := range smallest(sa.ids(), sb.ids()) {
		e, ok := w.entities.current(id)
		if !ok {
			continue
		}
		a, okA := sa.Get(id)
		b, okB := sb.Get(id)
		if okA && okB {
			fn(e, a, b)
		}
	}
}

// smallest picks the shortest id list to drive an intersection.
func smallest(lists ...[]entityID) []entityID {
	var out []entityID
	for i, l := range lists {
		if i == 0 || len(l) < len(out) {
			out = l
		}
	}
	return out
}
