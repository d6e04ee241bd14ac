package system

import (
	"github.com/milk9111/foxtrot/claim"
	"github.com/milk9111/foxtrot/ecs"
	"github.com/milk9111/foxtrot/ecs/component"
)

// PauseSystem toggles the pause singleton. While paused it hides the
// crosshair.
type PauseSystem struct {
	claimant claim.Claimant
	resume   bool
}

func NewPauseSystem() *PauseSystem {
	return &PauseSystem{claimant: claim.NewClaimant("pause")}
}

// RequestResume unpauses on the next tick. The pause menu calls it.
func (p *PauseSystem) RequestResume() {
	if p == nil {
		return
	}
	p.resume = true
}

func (p *PauseSystem) Update(w *ecs.World) {
	if p == nil || w == nil {
		return
	}
	stateEnt, ok := w.First(component.PauseStateComponent.Kind())
	if !ok {
		return
	}
	state, ok := ecs.Get(w, stateEnt, component.PauseStateComponent.Kind())
	if !ok {
		return
	}

	pressed := false
	ecs.ForEach2(w, component.PlayerTagComponent.Kind(), component.InputComponent.Kind(), func(_ ecs.Entity, _ *component.PlayerTag, in *component.Input) {
		pressed = pressed || in.PausePressed
	})

	if pressed {
		state.Paused = !state.Paused
	}
	if p.resume {
		state.Paused = false
		p.resume = false
	}

	if crosshair, ok := firstCrosshair(w); ok {
		crosshair.Claims.Set(component.CrosshairForceHidden, p.claimant, state.Paused)
	}
}
