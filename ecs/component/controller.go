package component

import (
	"math"

	"github.com/milk9111/foxtrot/anim"
)

// Controller is a floating character controller: planar motion goes through
// the physics body, the vertical axis is integrated here.
type Controller struct {
	MoveSpeed float64
	JumpSpeed float64
	Gravity   float64

	// desired planar direction, unit length or zero
	MoveX float64
	MoveY float64

	Height           float64
	VerticalVelocity float64
	Grounded         bool
	JumpActive       bool
	LandingTicks     int
}

// Signals snapshots the controller for intent computation.
func (c Controller) Signals() anim.Signals {
	return anim.Signals{
		Grounded:         c.Grounded,
		VerticalVelocity: c.VerticalVelocity,
		JumpActive:       c.JumpActive,
		InputMagnitude:   math.Hypot(c.MoveX, c.MoveY),
		LandingTicks:     c.LandingTicks,
	}
}

var ControllerComponent = NewComponent[Controller]()
