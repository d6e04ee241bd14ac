package system

import (
	"context"
	"log/slog"
	"math"

	"github.com/milk9111/foxtrot/claim"
	"github.com/milk9111/foxtrot/dialogue"
	"github.com/milk9111/foxtrot/ecs"
	"github.com/milk9111/foxtrot/ecs/component"
)

// InteractionSystem offers the talk prompt for the nearest NPC in range.
// The NPC's dialogue script decides the prompt text and whether talking is
// available at all.
type InteractionSystem struct {
	scripts  *dialogue.Library
	claimant claim.Claimant
	// last script result per NPC, reused while visits and the compiled
	// script stay the same
	cache map[ecs.Entity]cachedResult
}

type cachedResult struct {
	visits int
	script *dialogue.Script
	result dialogue.Result
}

func NewInteractionSystem(scripts *dialogue.Library) *InteractionSystem {
	return &InteractionSystem{
		scripts:  scripts,
		claimant: claim.NewClaimant("interaction"),
		cache:    make(map[ecs.Entity]cachedResult),
	}
}

func (s *InteractionSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	prompt, hasPrompt := firstPrompt(w)

	player, ok := firstPlayer(w)
	if !ok {
		if hasPrompt {
			prompt.Withdraw(s.claimant)
		}
		return
	}

	target := s.nearest(w, player)
	if err := ecs.Add(w, player, component.InteractorComponent.Kind(), &target); err != nil {
		panic("interaction system: update interactor: " + err.Error())
	}

	if !hasPrompt {
		return
	}
	if target.Valid && target.Available {
		prompt.Offer(s.claimant, target.Prompt)
	} else {
		prompt.Withdraw(s.claimant)
	}
}

func (s *InteractionSystem) nearest(w *ecs.World, player ecs.Entity) component.Interactor {
	pt, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return component.Interactor{}
	}

	var best ecs.Entity
	var bestNPC *component.NPC
	bestDist := math.Inf(1)
	ecs.ForEach2(w, component.NPCComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, npc *component.NPC, t *component.Transform) {
		d := math.Hypot(t.X-pt.X, t.Y-pt.Y)
		if d > npc.InteractionRadius || d >= bestDist {
			return
		}
		best, bestNPC, bestDist = e, npc, d
	})
	if bestNPC == nil {
		return component.Interactor{}
	}

	out := component.Interactor{Target: uint64(best), Valid: true, Available: true, Prompt: bestNPC.Prompt}
	res, ok := s.evaluate(w, best, bestNPC)
	if ok {
		out.Available = res.Available
		if res.Prompt != "" {
			out.Prompt = res.Prompt
		}
	}
	return out
}

func (s *InteractionSystem) evaluate(w *ecs.World, e ecs.Entity, npc *component.NPC) (dialogue.Result, bool) {
	script, ok := s.scripts.Get(npc.Script)
	if !ok {
		return dialogue.Result{}, false
	}
	visits := 0
	if d, ok := dialogueState(w); ok {
		visits = d.Visits[npc.Name]
	}

	if c, ok := s.cache[e]; ok && c.visits == visits && c.script == script {
		return c.result, true
	}
	res, err := script.Run(context.Background(), npc.Name, visits)
	if err != nil {
		slog.Warn("interaction: dialogue script failed", "npc", npc.Name, "script", npc.Script, "err", err)
		res = dialogue.Result{Available: false}
	}
	s.cache[e] = cachedResult{visits: visits, script: script, result: res}
	return res, true
}
