package anim

import "sort"

// Library stores validated engines by config name. Entities refer to their
// engine by name so a reload can replace it without touching them.
type Library struct {
	engines map[string]*Engine
}

func NewLibrary() *Library {
	return &Library{engines: make(map[string]*Engine)}
}

// Register adds or replaces an engine. Only validated engines exist, so a
// registered name always resolves to a complete table.
func (l *Library) Register(name string, engine *Engine) {
	if l == nil || name == "" || engine == nil {
		return
	}
	if l.engines == nil {
		l.engines = make(map[string]*Engine)
	}
	l.engines[name] = engine
}

func (l *Library) Get(name string) (*Engine, bool) {
	if l == nil || name == "" {
		return nil, false
	}
	e, ok := l.engines[name]
	return e, ok
}

// Names returns the registered config names in sorted order.
func (l *Library) Names() []string {
	if l == nil {
		return nil
	}
	out := make([]string, 0, len(l.engines))
	for name := range l.engines {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
