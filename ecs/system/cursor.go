package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/foxtrot/claim"
	"github.com/milk9111/foxtrot/ecs"
	"github.com/milk9111/foxtrot/ecs/component"
)

// CursorControl grabs or releases the OS cursor.
type CursorControl interface {
	SetCaptured(captured bool)
}

// CursorSystem captures the cursor for mouse look whenever the player is in
// control, and releases it during dialogue and pause. A released cursor hides
// the crosshair.
type CursorSystem struct {
	control  CursorControl
	claimant claim.Claimant
}

func NewCursorSystem(control CursorControl) *CursorSystem {
	return &CursorSystem{control: control, claimant: claim.NewClaimant("cursor")}
}

func (c *CursorSystem) Update(w *ecs.World) {
	if c == nil || w == nil {
		return
	}
	stateEnt, ok := w.First(component.CursorStateComponent.Kind())
	if !ok {
		return
	}
	state, ok := ecs.Get(w, stateEnt, component.CursorStateComponent.Kind())
	if !ok {
		return
	}

	want := !paused(w) && !inDialogue(w)
	if want != state.Captured {
		if c.control != nil {
			c.control.SetCaptured(want)
		}
		state.Captured = want
	}

	if crosshair, ok := firstCrosshair(w); ok {
		crosshair.Claims.Set(component.CrosshairForceHidden, c.claimant, !state.Captured)
	}
}

// EbitenCursor switches ebiten's cursor mode.
type EbitenCursor struct{}

func (EbitenCursor) SetCaptured(captured bool) {
	if captured {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
		return
	}
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
}
