package component

import "github.com/milk9111/foxtrot/claim"

type PromptCondition uint8

const (
	PromptOffered PromptCondition = iota + 1
	PromptSuppressed
)

func (c PromptCondition) String() string {
	switch c {
	case PromptOffered:
		return "offered"
	case PromptSuppressed:
		return "suppressed"
	default:
		return "unknown"
	}
}

var PromptCascade = claim.Cascade[PromptCondition, bool]{
	Rules: []claim.Rule[PromptCondition, bool]{
		{When: PromptSuppressed, Then: false},
		{When: PromptOffered, Then: true},
	},
	Default: false,
}

// PromptView is what the HUD shows.
type PromptView struct {
	Visible bool
	Text    string
}

// InteractionPrompt is the claim registry behind the "E: talk" prompt.
// Each offering producer carries its own text; the earliest claimant still
// offering supplies what is shown. Visibility comes from the cascade.
type InteractionPrompt struct {
	Claims *claim.Registry[PromptCondition, bool]
	texts  map[claim.Claimant]string
	view   claim.Edge[PromptView]
}

func NewInteractionPrompt() *InteractionPrompt {
	return &InteractionPrompt{
		Claims: claim.New(PromptCascade),
		texts:  make(map[claim.Claimant]string),
		view:   claim.NewEdge(PromptView{}),
	}
}

// Offer shows text on behalf of who unless something suppresses the prompt.
func (p *InteractionPrompt) Offer(who claim.Claimant, text string) {
	if p == nil {
		return
	}
	if p.texts == nil {
		p.texts = make(map[claim.Claimant]string)
	}
	p.texts[who] = text
	p.Claims.Assert(PromptOffered, who)
}

// Withdraw retracts who's offer and forgets its text.
func (p *InteractionPrompt) Withdraw(who claim.Claimant) {
	if p == nil {
		return
	}
	p.Claims.Retract(PromptOffered, who)
	delete(p.texts, who)
}

// Text is the text of the earliest claimant still offering.
func (p *InteractionPrompt) Text() string {
	if p == nil {
		return ""
	}
	for _, who := range p.Claims.Claimants(PromptOffered) {
		if text, ok := p.texts[who]; ok {
			return text
		}
	}
	return ""
}

func (p *InteractionPrompt) viewOf(visible bool) PromptView {
	if !visible {
		return PromptView{}
	}
	return PromptView{Visible: true, Text: "E: " + p.Text()}
}

// View derives the current prompt without recording it.
func (p *InteractionPrompt) View() PromptView {
	if p == nil {
		return PromptView{}
	}
	return p.viewOf(p.Claims.Derive())
}

// Resolve resolves the registry and records the view, reporting whether the
// view changed since the previous Resolve. Text changes count as changes.
func (p *InteractionPrompt) Resolve() (PromptView, bool) {
	if p == nil {
		return PromptView{}, false
	}
	visible, _ := p.Claims.Resolve()
	v := p.viewOf(visible)
	return v, p.view.Observe(v)
}

// Last returns the view recorded by the most recent Resolve.
func (p *InteractionPrompt) Last() PromptView {
	if p == nil {
		return PromptView{}
	}
	return p.view.Last()
}

var InteractionPromptComponent = NewComponent[InteractionPrompt]()
