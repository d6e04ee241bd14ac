package system

import (
	"log/slog"

	"github.com/milk9111/foxtrot/ecs"
	"github.com/milk9111/foxtrot/ecs/component"
)

// CrosshairResolveSystem derives every crosshair once per tick and pushes a
// change event only when the derived view differs from the last one.
type CrosshairResolveSystem struct{}

func NewCrosshairResolveSystem() *CrosshairResolveSystem {
	return &CrosshairResolveSystem{}
}

func (s *CrosshairResolveSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	ecs.ForEach(w, component.CrosshairComponent.Kind(), func(e ecs.Entity, c *component.Crosshair) {
		view, changed := c.Claims.Resolve()
		if !changed {
			return
		}
		slog.Debug("crosshair changed", "entity", e, "view", view)
		w.Events().Push(ecs.Event{Type: EventCrosshairChanged, Entity: e, Data: view})
	})
}

// PromptResolveSystem is the same edge trigger for the interaction prompt.
type PromptResolveSystem struct{}

func NewPromptResolveSystem() *PromptResolveSystem {
	return &PromptResolveSystem{}
}

func (s *PromptResolveSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	ecs.ForEach(w, component.InteractionPromptComponent.Kind(), func(e ecs.Entity, p *component.InteractionPrompt) {
		view, changed := p.Resolve()
		if !changed {
			return
		}
		slog.Debug("prompt changed", "entity", e, "visible", view.Visible, "text", view.Text)
		w.Events().Push(ecs.Event{Type: EventPromptChanged, Entity: e, Data: view})
	})
}
