package ecs

import (
	"fmt"

	"github.com/milk9111/foxtrot/ecs/component"
)

func storeFor[T any](w *World, kind component.ComponentKind[T], create bool) *SparseSet[*T] {
	if w == nil || !kind.Valid() {
		return nil
	}
	if w.stores == nil {
		if !create {
			return nil
		}
		w.stores = make(map[component.ComponentID]componentStore)
	}
	if s, ok := w.stores[kind.ID()]; ok {
		typed, ok := s.(*SparseSet[*T])
		if !ok {
			panic(fmt.Sprintf("ecs: component kind %d (%s) registered with a different type", kind.ID(), kind.Name()))
		}
		return typed
	}
	if !create {
		return nil
	}
	s := &SparseSet[*T]{}
	w.stores[kind.ID()] = s
	return s
}

// Add attaches value to e, replacing any existing component of the same kind.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return fmt.Errorf("%w: %s", component.ErrNilComponent, kind.Name())
	}
	if !IsAlive(w, e) {
		return fmt.Errorf("%w: add %s to %s", component.ErrEntityNotAlive, kind.Name(), e)
	}
	storeFor(w, kind, true).Set(e.id(), value)
	return nil
}

// Remove detaches the component; it reports whether one was present.
func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !IsAlive(w, e) {
		return false
	}
	return storeFor(w, kind, false).Remove(e.id())
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !IsAlive(w, e) {
		return false
	}
	return storeFor(w, kind, false).Has(e.id())
}

// Get returns the stored pointer; mutations through it are visible to every
// other system without re-adding.
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if !IsAlive(w, e) {
		return nil, false
	}
	v, ok := storeFor(w, kind, false).Get(e.id())
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// Count returns how many live entities carry kind.
func Count[T any](w *World, kind component.ComponentKind[T]) int {
	return storeFor(w, kind, false).Len()
}
