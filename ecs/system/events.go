package system

import "github.com/milk9111/foxtrot/ecs"

// Change notifications are pushed by resolve-stage systems and read by
// consume-stage systems in the same tick.
const (
	// EventCrosshairChanged carries a component.CrosshairView.
	EventCrosshairChanged ecs.EventType = "crosshair_changed"
	// EventPromptChanged carries a component.PromptView.
	EventPromptChanged ecs.EventType = "prompt_changed"
	// EventAnimationAltered carries the anim.Directive of an Alter.
	EventAnimationAltered ecs.EventType = "animation_altered"
)

// Dialogue events are pushed by DialogueSystem during the produce stage.
const (
	EventDialogueStarted ecs.EventType = "dialogue_started"
	EventDialogueLine    ecs.EventType = "dialogue_line"
	EventDialogueEnded   ecs.EventType = "dialogue_ended"
)

// DialogueLine is the payload of the dialogue events.
type DialogueLine struct {
	Speaker string
	Line    string
	Index   int
	Total   int
}
