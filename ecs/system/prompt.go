package system

import (
	"github.com/milk9111/foxtrot/ecs"
	"github.com/milk9111/foxtrot/ecs/component"
)

// PromptDisplay shows the interaction prompt. The HUD implements it.
type PromptDisplay interface {
	SetPrompt(view component.PromptView)
}

// PromptSystem forwards prompt change events to the display.
type PromptSystem struct {
	display PromptDisplay
}

func NewPromptSystem(display PromptDisplay) *PromptSystem {
	return &PromptSystem{display: display}
}

func (p *PromptSystem) Update(w *ecs.World) {
	if p == nil || w == nil || p.display == nil {
		return
	}
	w.Events().Each(EventPromptChanged, func(evt ecs.Event) {
		if view, ok := evt.Data.(component.PromptView); ok {
			p.display.SetPrompt(view)
		}
	})
}

// DialogueDisplay shows the current dialogue line.
type DialogueDisplay interface {
	ShowLine(line DialogueLine)
	HideDialogue()
}

// DialoguePanelSystem forwards dialogue events to the display.
type DialoguePanelSystem struct {
	display DialogueDisplay
}

func NewDialoguePanelSystem(display DialogueDisplay) *DialoguePanelSystem {
	return &DialoguePanelSystem{display: display}
}

func (d *DialoguePanelSystem) Update(w *ecs.World) {
	if d == nil || w == nil || d.display == nil {
		return
	}
	show := func(evt ecs.Event) {
		if line, ok := evt.Data.(DialogueLine); ok {
			d.display.ShowLine(line)
		}
	}
	w.Events().Each(EventDialogueStarted, show)
	w.Events().Each(EventDialogueLine, show)
	w.Events().Each(EventDialogueEnded, func(ecs.Event) {
		d.display.HideDialogue()
	})
}
