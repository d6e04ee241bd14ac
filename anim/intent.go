// Package anim turns controller signals into discrete animation intents and
// edge-triggered transition directives.
package anim

import (
	"fmt"
	"math"
	"strings"
)

// Kind is the tag of an animation intent.
type Kind uint8

const (
	Idle Kind = iota
	Moving
	Jumping
	Falling
	Landing
)

var kindNames = [...]string{
	Idle:    "idle",
	Moving:  "moving",
	Jumping: "jumping",
	Falling: "falling",
	Landing: "landing",
}

// Kinds returns every intent tag ComputeIntent can produce.
func Kinds() []Kind {
	return []Kind{Idle, Moving, Jumping, Falling, Landing}
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseKind accepts the names produced by Kind.String.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("anim: unknown intent %q", s)
}

// Intent is the animation an entity should conceptually be playing. Kind is
// the tag; Speed and VerticalSpeed are payload describing the signals that
// produced it.
//
// Transitions compare intents with Same, which looks at Kind only. Two
// Moving intents with different speeds are the same state. Do not compare
// intents with == when deciding whether to transition.
type Intent struct {
	Kind          Kind
	Speed         float64
	VerticalSpeed float64
}

// Same reports whether both intents carry the same tag, ignoring payload.
func (i Intent) Same(other Intent) bool {
	return i.Kind == other.Kind
}

func (i Intent) String() string {
	return i.Kind.String()
}

// Signals is a per-tick snapshot of the character controller. Vertical
// velocity is positive when rising.
type Signals struct {
	Grounded         bool
	VerticalVelocity float64
	// JumpActive is true while the controller is in the rising phase of a jump.
	JumpActive     bool
	InputMagnitude float64
	// LandingTicks counts ticks since touchdown; zero when airborne or when
	// the entity has not just landed.
	LandingTicks int
}

// Thresholds tune how signals map to intents.
type Thresholds struct {
	MoveEpsilon   float64
	RiseEpsilon   float64
	LandingWindow int
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		MoveEpsilon:   0.1,
		RiseEpsilon:   0.05,
		LandingWindow: 6,
	}
}

// Intent maps signals to exactly one intent. It is total: every input,
// including NaN velocities, produces a value.
func (t Thresholds) Intent(s Signals) Intent {
	out := Intent{Speed: finite(s.InputMagnitude), VerticalSpeed: finite(s.VerticalVelocity)}

	if !s.Grounded {
		if s.JumpActive || out.VerticalSpeed > t.RiseEpsilon {
			out.Kind = Jumping
		} else {
			out.Kind = Falling
		}
		return out
	}

	switch {
	case s.LandingTicks > 0 && s.LandingTicks <= t.LandingWindow:
		out.Kind = Landing
	case out.Speed > t.MoveEpsilon:
		out.Kind = Moving
	default:
		out.Kind = Idle
	}
	return out
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
