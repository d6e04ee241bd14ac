package system

import (
	"github.com/milk9111/foxtrot/ecs"
	"github.com/milk9111/foxtrot/ecs/component"
)

func firstCrosshair(w *ecs.World) (*component.Crosshair, bool) {
	e, ok := w.First(component.CrosshairComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.CrosshairComponent.Kind())
}

func firstPrompt(w *ecs.World) (*component.InteractionPrompt, bool) {
	e, ok := w.First(component.InteractionPromptComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.InteractionPromptComponent.Kind())
}

func dialogueState(w *ecs.World) (*component.DialogueState, bool) {
	e, ok := w.First(component.DialogueStateComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.DialogueStateComponent.Kind())
}

func paused(w *ecs.World) bool {
	e, ok := w.First(component.PauseStateComponent.Kind())
	if !ok {
		return false
	}
	p, ok := ecs.Get(w, e, component.PauseStateComponent.Kind())
	return ok && p.Paused
}

func inDialogue(w *ecs.World) bool {
	d, ok := dialogueState(w)
	return ok && d.Active
}

func firstPlayer(w *ecs.World) (ecs.Entity, bool) {
	return w.First(component.PlayerTagComponent.Kind())
}

// IsPaused reports whether the pause menu is open.
func IsPaused(w *ecs.World) bool {
	return paused(w)
}
