package system

import (
	"log/slog"

	"github.com/milk9111/foxtrot/anim"
	"github.com/milk9111/foxtrot/ecs"
	"github.com/milk9111/foxtrot/ecs/component"
)

// AnimationIntentSystem computes each animated entity's intent from its
// controller and runs the intent state machine. Alters become events for the
// playback system; Maintain produces nothing.
type AnimationIntentSystem struct {
	library *anim.Library
}

func NewAnimationIntentSystem(library *anim.Library) *AnimationIntentSystem {
	return &AnimationIntentSystem{library: library}
}

func (s *AnimationIntentSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	ecs.ForEach2(w, component.ControllerComponent.Kind(), component.AnimationStateComponent.Kind(), func(e ecs.Entity, c *component.Controller, st *component.AnimationState) {
		engine, ok := s.library.Get(st.Config)
		if !ok {
			return
		}
		if st.Machine == nil {
			st.Machine = engine.NewState()
		}

		d := st.Machine.Update(engine.ComputeIntent(c.Signals()))
		st.Last = d
		if !d.Alter {
			return
		}
		st.Alters++
		slog.Debug("animation altered", "entity", e, "from", d.Old, "to", d.New)
		w.Events().Push(ecs.Event{Type: EventAnimationAltered, Entity: e, Data: d})
	})
}
