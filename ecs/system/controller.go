package system

import (
	"math"

	"github.com/milk9111/foxtrot/common"
	"github.com/milk9111/foxtrot/ecs"
	"github.com/milk9111/foxtrot/ecs/component"
)

// maxLandingTicks caps the touchdown counter; intent thresholds only care
// about the first few ticks.
const maxLandingTicks = 255

// ControllerSystem turns input into planar body velocity and integrates the
// vertical axis: jump phase, height and landing. It runs before physics.
type ControllerSystem struct{}

func NewControllerSystem() *ControllerSystem {
	return &ControllerSystem{}
}

func (cs *ControllerSystem) Update(w *ecs.World) {
	if cs == nil || w == nil || paused(w) {
		return
	}
	frozen := inDialogue(w)

	ecs.ForEach2(w, component.ControllerComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, c *component.Controller, t *component.Transform) {
		var in component.Input
		if input, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok && !frozen {
			in = *input
		}

		if player, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); ok {
			t.Rotation = wrapAngle(t.Rotation + in.LookDelta*player.LookSpeed)
		}

		c.MoveX, c.MoveY = common.Normalize2(in.MoveX, in.MoveY)
		integrateVertical(c, in.JumpPressed, common.TickSeconds)

		if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && body.Body != nil && !body.Static {
			vx, vy := planarVelocity(c, t.Rotation)
			body.Body.SetVelocity(vx, vy)
		}
	})
}

// planarVelocity maps (strafe, forward) input onto the ground plane.
func planarVelocity(c *component.Controller, rotation float64) (float64, float64) {
	fx, fy := common.Facing(rotation)
	rx, ry := -fy, fx
	vx := (fx*c.MoveY + rx*c.MoveX) * c.MoveSpeed
	vy := (fy*c.MoveY + ry*c.MoveX) * c.MoveSpeed
	return vx, vy
}

func integrateVertical(c *component.Controller, jumpPressed bool, dt float64) {
	if c.Grounded {
		if jumpPressed && c.JumpSpeed > 0 {
			c.Grounded = false
			c.JumpActive = true
			c.VerticalVelocity = c.JumpSpeed
			c.LandingTicks = 0
		} else {
			if c.LandingTicks > 0 && c.LandingTicks < maxLandingTicks {
				c.LandingTicks++
			}
			return
		}
	}

	c.VerticalVelocity -= c.Gravity * dt
	c.Height += c.VerticalVelocity * dt
	if c.VerticalVelocity <= 0 {
		c.JumpActive = false
	}
	if c.Height <= 0 {
		c.Height = 0
		c.VerticalVelocity = 0
		c.JumpActive = false
		c.Grounded = true
		c.LandingTicks = 1
	}
}

func wrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
