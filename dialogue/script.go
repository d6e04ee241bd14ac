// Package dialogue runs the tengo scripts behind NPC conversations. A script
// sets three globals: prompt (string), available (bool) and lines (array of
// strings). It can read visits, the number of finished conversations with
// the same NPC.
package dialogue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

var ErrNoLines = errors.New("dialogue: script produced no lines")

const runTimeout = 50 * time.Millisecond

// Result is what one evaluation of a script yields.
type Result struct {
	Prompt    string
	Available bool
	Lines     []string
}

// Script is a compiled dialogue. It is safe to Run repeatedly; each run
// works on a clone.
type Script struct {
	name     string
	compiled *tengo.Compiled
}

// Compile parses src once at load time.
func Compile(name string, src []byte) (*Script, error) {
	s := tengo.NewScript(src)
	_ = s.Add("visits", 0)
	_ = s.Add("speaker", "")
	s.SetImports(stdlib.GetModuleMap("text", "fmt", "math"))

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("dialogue: compile %q: %w", name, err)
	}
	return &Script{name: name, compiled: compiled}, nil
}

func (s *Script) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

// Run evaluates the script for a speaker that has been visited visits times.
func (s *Script) Run(ctx context.Context, speaker string, visits int) (Result, error) {
	if s == nil || s.compiled == nil {
		return Result{}, fmt.Errorf("dialogue: run: script not compiled")
	}
	c := s.compiled.Clone()
	if err := c.Set("visits", visits); err != nil {
		return Result{}, fmt.Errorf("dialogue: run %q: %w", s.name, err)
	}
	if err := c.Set("speaker", speaker); err != nil {
		return Result{}, fmt.Errorf("dialogue: run %q: %w", s.name, err)
	}

	ctx, cancel := context.WithTimeout(ctx, runTimeout)
	defer cancel()
	if err := c.RunContext(ctx); err != nil {
		return Result{}, fmt.Errorf("dialogue: run %q: %w", s.name, err)
	}

	res := Result{Available: true}
	if c.IsDefined("prompt") {
		res.Prompt = c.Get("prompt").String()
	}
	if c.IsDefined("available") {
		res.Available = c.Get("available").Bool()
	}
	if c.IsDefined("lines") {
		for _, v := range c.Get("lines").Array() {
			if line, ok := v.(string); ok && line != "" {
				res.Lines = append(res.Lines, line)
			}
		}
	}
	if len(res.Lines) == 0 {
		return res, fmt.Errorf("%w: %q", ErrNoLines, s.name)
	}
	return res, nil
}
