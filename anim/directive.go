package anim

// Directive is the per-tick result of State.Update. The zero value is
// Maintain.
type Directive struct {
	Alter bool
	Old   Intent
	New   Intent
}

func Maintain() Directive {
	return Directive{}
}

func (d Directive) String() string {
	if !d.Alter {
		return "maintain"
	}
	return "alter " + d.Old.String() + "->" + d.New.String()
}

// State retains the previously committed intent of one entity. It runs for
// the lifetime of the entity; any intent may follow any other.
// The zero value starts at Idle.
type State struct {
	current Intent
}

// NewState starts the machine at the configured default intent.
func NewState(initial Intent) *State {
	return &State{current: initial}
}

// Current returns the committed intent.
func (s *State) Current() Intent {
	if s == nil {
		return Intent{}
	}
	return s.current
}

// Update compares in against the committed intent by tag. A different tag
// returns Alter and commits in before returning; an equal tag returns
// Maintain and leaves the committed intent, payload included, untouched.
func (s *State) Update(in Intent) Directive {
	if s == nil {
		return Maintain()
	}
	if s.current.Same(in) {
		return Maintain()
	}
	old := s.current
	s.current = in
	return Directive{Alter: true, Old: old, New: in}
}
