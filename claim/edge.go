package claim

// Edge remembers the last observed value and reports changes.
type Edge[D comparable] struct {
	last D
}

// NewEdge starts with initial as the previous value, so observing initial
// first does not count as a change.
func NewEdge[D comparable](initial D) Edge[D] {
	return Edge[D]{last: initial}
}

// Observe stores v and reports whether it differs from the previous value.
func (e *Edge[D]) Observe(v D) bool {
	if e == nil {
		return false
	}
	if v == e.last {
		return false
	}
	e.last = v
	return true
}

func (e *Edge[D]) Last() D {
	if e == nil {
		var zero D
		return zero
	}
	return e.last
}
