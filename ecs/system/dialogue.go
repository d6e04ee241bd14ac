package system

import (
	"context"
	"log/slog"

	"github.com/milk9111/foxtrot/claim"
	"github.com/milk9111/foxtrot/dialogue"
	"github.com/milk9111/foxtrot/ecs"
	"github.com/milk9111/foxtrot/ecs/component"
)

// DialogueSystem starts, advances and ends conversations. A running
// conversation suppresses the interaction prompt and hides the crosshair.
type DialogueSystem struct {
	scripts  *dialogue.Library
	claimant claim.Claimant
}

func NewDialogueSystem(scripts *dialogue.Library) *DialogueSystem {
	return &DialogueSystem{scripts: scripts, claimant: claim.NewClaimant("dialogue")}
}

func (s *DialogueSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	state, ok := dialogueState(w)
	if !ok {
		return
	}

	player, hasPlayer := firstPlayer(w)
	interact := false
	if hasPlayer && !paused(w) {
		if in, ok := ecs.Get(w, player, component.InputComponent.Kind()); ok {
			interact = in.InteractPressed
		}
	}

	switch {
	case state.Active && !w.IsAlive(ecs.Entity(state.Speaker)):
		s.end(w, state)
	case state.Active && interact:
		state.Index++
		if state.Index >= len(state.Lines) {
			s.end(w, state)
			break
		}
		state.Line = state.Lines[state.Index]
		s.push(w, EventDialogueLine, state)
	case !state.Active && interact:
		s.start(w, state, player)
	}

	s.claim(w, state.Active)
}

func (s *DialogueSystem) start(w *ecs.World, state *component.DialogueState, player ecs.Entity) {
	target, ok := ecs.Get(w, player, component.InteractorComponent.Kind())
	if !ok || !target.Valid || !target.Available {
		return
	}
	speaker := ecs.Entity(target.Target)
	npc, ok := ecs.Get(w, speaker, component.NPCComponent.Kind())
	if !ok {
		return
	}
	script, ok := s.scripts.Get(npc.Script)
	if !ok {
		slog.Warn("dialogue: no script", "npc", npc.Name, "script", npc.Script)
		return
	}
	if state.Visits == nil {
		state.Visits = make(map[string]int)
	}

	res, err := script.Run(context.Background(), npc.Name, state.Visits[npc.Name])
	if err != nil {
		slog.Warn("dialogue: script failed", "npc", npc.Name, "err", err)
		return
	}
	if !res.Available {
		return
	}

	state.Active = true
	state.Speaker = uint64(speaker)
	state.Name = npc.Name
	state.Lines = res.Lines
	state.Index = 0
	state.Line = res.Lines[0]
	slog.Debug("dialogue: started", "npc", npc.Name, "lines", len(res.Lines))
	s.push(w, EventDialogueStarted, state)
}

func (s *DialogueSystem) end(w *ecs.World, state *component.DialogueState) {
	if state.Visits == nil {
		state.Visits = make(map[string]int)
	}
	state.Visits[state.Name]++
	s.push(w, EventDialogueEnded, state)
	slog.Debug("dialogue: ended", "npc", state.Name, "visits", state.Visits[state.Name])

	state.Active = false
	state.Speaker = 0
	state.Line = ""
	state.Lines = nil
	state.Index = 0
}

func (s *DialogueSystem) claim(w *ecs.World, active bool) {
	if prompt, ok := firstPrompt(w); ok {
		prompt.Claims.Set(component.PromptSuppressed, s.claimant, active)
	}
	if crosshair, ok := firstCrosshair(w); ok {
		crosshair.Claims.Set(component.CrosshairForceHidden, s.claimant, active)
	}
}

func (s *DialogueSystem) push(w *ecs.World, t ecs.EventType, state *component.DialogueState) {
	w.Events().Push(ecs.Event{
		Type:   t,
		Entity: ecs.Entity(state.Speaker),
		Data: DialogueLine{
			Speaker: state.Name,
			Line:    state.Line,
			Index:   state.Index,
			Total:   len(state.Lines),
		},
	})
}
