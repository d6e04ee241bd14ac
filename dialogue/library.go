package dialogue

import (
	"fmt"
	"sort"
)

// Library holds compiled scripts by name.
type Library struct {
	scripts map[string]*Script
}

func NewLibrary() *Library {
	return &Library{scripts: make(map[string]*Script)}
}

// Load compiles src and stores it under name. On a compile error the
// previous script, if any, stays in place.
func (l *Library) Load(name string, src []byte) error {
	if l == nil {
		return fmt.Errorf("dialogue: load %q: nil library", name)
	}
	s, err := Compile(name, src)
	if err != nil {
		return err
	}
	if l.scripts == nil {
		l.scripts = make(map[string]*Script)
	}
	l.scripts[name] = s
	return nil
}

func (l *Library) Get(name string) (*Script, bool) {
	if l == nil {
		return nil, false
	}
	s, ok := l.scripts[name]
	return s, ok
}

func (l *Library) Names() []string {
	if l == nil {
		return nil
	}
	out := make([]string, 0, len(l.scripts))
	for name := range l.scripts {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
