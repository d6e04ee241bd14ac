// Package claim merges boolean conditions asserted by independent producers
// into one precedence-resolved value per entity.
//
// Each condition owns the set of claimants currently asserting it. Producers
// assert and retract without knowing about each other; a condition is active
// while at least one claimant holds it. Resolve is called once per tick after
// every producer has run and reports a change only when the derived value
// differs from the previous tick.
package claim

import (
	"fmt"
	"sort"
)

// Registry is owned by a single entity and must not be shared between
// goroutines without external serialization.
type Registry[C comparable, D comparable] struct {
	sets    map[C]map[Claimant]struct{}
	cascade Cascade[C, D]
	edge    Edge[D]
}

// New creates an empty registry. The previous derived value starts at the
// cascade default.
func New[C comparable, D comparable](cascade Cascade[C, D]) *Registry[C, D] {
	return &Registry[C, D]{
		sets:    make(map[C]map[Claimant]struct{}),
		cascade: cascade,
		edge:    NewEdge(cascade.Default),
	}
}

// Assert adds who to the claim set of c. Asserting twice is a no-op.
func (r *Registry[C, D]) Assert(c C, who Claimant) {
	if r == nil {
		return
	}
	if r.sets == nil {
		r.sets = make(map[C]map[Claimant]struct{})
	}
	set, ok := r.sets[c]
	if !ok {
		set = make(map[Claimant]struct{}, 1)
		r.sets[c] = set
	}
	set[who] = struct{}{}
}

// Retract removes who from the claim set of c. Retracting a claim that was
// never asserted is allowed and changes nothing.
func (r *Registry[C, D]) Retract(c C, who Claimant) {
	if r == nil {
		return
	}
	set, ok := r.sets[c]
	if !ok {
		return
	}
	delete(set, who)
	if len(set) == 0 {
		delete(r.sets, c)
	}
}

// Set asserts when on is true and retracts otherwise.
func (r *Registry[C, D]) Set(c C, who Claimant, on bool) {
	if on {
		r.Assert(c, who)
		return
	}
	r.Retract(c, who)
}

// RetractAll removes who from every condition.
func (r *Registry[C, D]) RetractAll(who Claimant) {
	if r == nil {
		return
	}
	for c := range r.sets {
		r.Retract(c, who)
	}
}

// IsActive reports whether any claimant holds c.
func (r *Registry[C, D]) IsActive(c C) bool {
	if r == nil {
		return false
	}
	return len(r.sets[c]) > 0
}

// Holds reports whether who currently asserts c.
func (r *Registry[C, D]) Holds(c C, who Claimant) bool {
	if r == nil {
		return false
	}
	_, ok := r.sets[c][who]
	return ok
}

// Derive applies the precedence cascade to the active conditions. It has no
// side effects.
func (r *Registry[C, D]) Derive() D {
	if r == nil {
		var zero D
		return zero
	}
	return r.cascade.Resolve(r.IsActive)
}

// Resolve derives the current value and records it. changed is true exactly
// when the value differs from the one recorded by the previous Resolve.
func (r *Registry[C, D]) Resolve() (value D, changed bool) {
	if r == nil {
		return value, false
	}
	value = r.Derive()
	return value, r.edge.Observe(value)
}

// Last returns the value recorded by the most recent Resolve.
func (r *Registry[C, D]) Last() D {
	if r == nil {
		var zero D
		return zero
	}
	return r.edge.Last()
}

// Claimants returns the claimants holding c in creation order.
func (r *Registry[C, D]) Claimants(c C) []Claimant {
	if r == nil || len(r.sets[c]) == 0 {
		return nil
	}
	out := make([]Claimant, 0, len(r.sets[c]))
	for who := range r.sets[c] {
		out = append(out, who)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// Snapshot returns the claimant names per active condition, keyed by the
// formatted condition.
func (r *Registry[C, D]) Snapshot() map[string][]string {
	if r == nil {
		return nil
	}
	out := make(map[string][]string, len(r.sets))
	for c := range r.sets {
		claimants := r.Claimants(c)
		if len(claimants) == 0 {
			continue
		}
		names := make([]string, 0, len(claimants))
		for _, who := range claimants {
			names = append(names, who.String())
		}
		out[fmt.Sprint(c)] = names
	}
	return out
}
