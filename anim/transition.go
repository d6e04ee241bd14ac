package anim

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrMissingTransition = errors.New("anim: transition table missing intent")
	ErrInvalidTransition = errors.New("anim: invalid transition")
)

// LoopPolicy controls what the target clip does after the cross-fade.
type LoopPolicy uint8

const (
	PlayOnce LoopPolicy = iota
	Repeat
)

func (p LoopPolicy) String() string {
	if p == Repeat {
		return "repeat"
	}
	return "once"
}

// Transition is what a consumer does when an intent becomes current: fade
// into Clip over Blend, then loop or hold per Loop.
type Transition struct {
	Clip  string
	Blend time.Duration
	Loop  LoopPolicy
}

// Table maps every intent tag to its transition.
type Table map[Kind]Transition

// Validate checks that every kind has a usable transition. It reports all
// problems at once.
func (t Table) Validate(kinds []Kind) error {
	var errs []error
	for _, k := range kinds {
		tr, ok := t[k]
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrMissingTransition, k))
			continue
		}
		if tr.Clip == "" {
			errs = append(errs, fmt.Errorf("%w: %s: empty clip", ErrInvalidTransition, k))
		}
		if tr.Blend < 0 {
			errs = append(errs, fmt.Errorf("%w: %s: negative blend %s", ErrInvalidTransition, k, tr.Blend))
		}
	}
	return errors.Join(errs...)
}

// Config is everything an Engine needs at startup.
type Config struct {
	Initial     Kind
	Thresholds  Thresholds
	Transitions Table
}

// Engine holds a validated transition table. Once NewEngine succeeds,
// Transition never misses.
type Engine struct {
	initial     Kind
	thresholds  Thresholds
	transitions Table
}

// NewEngine validates cfg against the full intent enumeration. It is the
// only fallible step in the package and must run before the first tick.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Transitions.Validate(Kinds()); err != nil {
		return nil, err
	}
	table := make(Table, len(cfg.Transitions))
	for k, v := range cfg.Transitions {
		table[k] = v
	}
	return &Engine{
		initial:     cfg.Initial,
		thresholds:  cfg.Thresholds,
		transitions: table,
	}, nil
}

// ComputeIntent maps a signal snapshot to an intent using the engine's
// thresholds.
func (e *Engine) ComputeIntent(s Signals) Intent {
	if e == nil {
		return DefaultThresholds().Intent(s)
	}
	return e.thresholds.Intent(s)
}

// NewState returns a state machine at the configured initial intent.
func (e *Engine) NewState() *State {
	if e == nil {
		return NewState(Intent{})
	}
	return NewState(Intent{Kind: e.initial})
}

// Transition returns the configured transition for k.
func (e *Engine) Transition(k Kind) Transition {
	if e == nil {
		panic("anim: Transition on nil engine")
	}
	tr, ok := e.transitions[k]
	if !ok {
		panic(fmt.Sprintf("anim: no transition for validated intent %s", k))
	}
	return tr
}

func (e *Engine) Initial() Kind {
	if e == nil {
		return Idle
	}
	return e.initial
}

func (e *Engine) Thresholds() Thresholds {
	if e == nil {
		return DefaultThresholds()
	}
	return e.thresholds
}
