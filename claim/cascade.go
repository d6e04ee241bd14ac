package claim

// Rule maps one active condition to a derived value.
type Rule[C comparable, D comparable] struct {
	When C
	Then D
}

// Cascade is a fixed precedence list. The first rule whose condition is
// active wins; Default applies when none are.
type Cascade[C comparable, D comparable] struct {
	Rules   []Rule[C, D]
	Default D
}

// Resolve applies the cascade using active to test conditions.
func (c Cascade[C, D]) Resolve(active func(C) bool) D {
	for _, r := range c.Rules {
		if active(r.When) {
			return r.Then
		}
	}
	return c.Default
}
