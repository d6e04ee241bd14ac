package entity

import (
	"fmt"

	"github.com/milk9111/foxtrot/anim"
	"github.com/milk9111/foxtrot/common"
	"github.com/milk9111/foxtrot/ecs"
	"github.com/milk9111/foxtrot/ecs/component"
)

const defaultReach = 96.0

// NewSession creates the entity holding the per-game singletons: the
// interaction prompt, dialogue progress, cursor capture and pause.
func NewSession(w *ecs.World) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.InteractionPromptComponent.Kind(), component.NewInteractionPrompt()); err != nil {
		return 0, fmt.Errorf("session: prompt: %w", err)
	}
	if err := ecs.Add(w, e, component.DialogueStateComponent.Kind(), &component.DialogueState{Visits: map[string]int{}}); err != nil {
		return 0, fmt.Errorf("session: dialogue: %w", err)
	}
	// released until the cursor system captures it on the first tick
	if err := ecs.Add(w, e, component.CursorStateComponent.Kind(), &component.CursorState{}); err != nil {
		return 0, fmt.Errorf("session: cursor: %w", err)
	}
	if err := ecs.Add(w, e, component.PauseStateComponent.Kind(), &component.PauseState{}); err != nil {
		return 0, fmt.Errorf("session: pause: %w", err)
	}
	return e, nil
}

// NewCrosshair builds the crosshair in screen space, reach pixels ahead of
// the view anchor where the player's probe ends.
func NewCrosshair(w *ecs.World, reach float64, animations *anim.Library) (ecs.Entity, error) {
	if reach <= 0 {
		reach = defaultReach
	}
	e, err := BuildEntity(w, "crosshair.yaml", animations)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, e, common.ViewAnchorX, common.ViewAnchorY-reach, 0); err != nil {
		return 0, fmt.Errorf("crosshair: place: %w", err)
	}
	return e, nil
}
