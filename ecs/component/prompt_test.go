package component

import (
	"testing"

	"github.com/milk9111/foxtrot/claim"
)

func TestPromptTextFollowsRemainingOfferer(t *testing.T) {
	p := NewInteractionPrompt()
	npc := claim.NewClaimant("npc")
	sign := claim.NewClaimant("sign")

	p.Offer(npc, "Talk to Fox")
	p.Offer(sign, "Read")
	if v, changed := p.Resolve(); !changed || v.Text != "E: Talk to Fox" {
		t.Fatalf("expected the first offer, got %+v changed=%v", v, changed)
	}

	p.Withdraw(npc)
	v, changed := p.Resolve()
	if !changed || v.Text != "E: Read" {
		t.Fatalf("expected the remaining offer, got %+v changed=%v", v, changed)
	}
	if p.Last() != v {
		t.Fatalf("Last %+v does not match resolved %+v", p.Last(), v)
	}

	p.Withdraw(sign)
	if v, _ := p.Resolve(); v.Visible || p.Text() != "" {
		t.Fatalf("expected hidden prompt, got %+v text=%q", v, p.Text())
	}
}

func TestPromptResolveKeepsRegistryCurrent(t *testing.T) {
	p := NewInteractionPrompt()
	npc := claim.NewClaimant("npc")
	dialogue := claim.NewClaimant("dialogue")

	p.Offer(npc, "Talk")
	p.Resolve()
	if !p.Claims.Last() {
		t.Fatalf("registry should record the visible prompt")
	}

	p.Claims.Assert(PromptSuppressed, dialogue)
	if _, changed := p.Resolve(); !changed {
		t.Fatalf("suppression must notify")
	}
	if p.Claims.Last() || p.Last().Visible {
		t.Fatalf("expected hidden prompt after suppression")
	}
}
