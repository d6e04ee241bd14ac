package component

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/foxtrot/claim"
)

// CrosshairCondition is a boolean axis producers claim on the crosshair.
type CrosshairCondition uint8

const (
	CrosshairPreferSquare CrosshairCondition = iota + 1
	CrosshairForceHidden
)

func (c CrosshairCondition) String() string {
	switch c {
	case CrosshairPreferSquare:
		return "prefer_square"
	case CrosshairForceHidden:
		return "force_hidden"
	default:
		return "unknown"
	}
}

// CrosshairGlyph selects the crosshair texture.
type CrosshairGlyph uint8

const (
	GlyphDot CrosshairGlyph = iota
	GlyphSquare
)

// CrosshairView is the derived crosshair outcome. Hidden masks the glyph, so
// toggling the square while hidden does not count as a change.
type CrosshairView uint8

const (
	CrosshairDot CrosshairView = iota
	CrosshairSquare
	CrosshairHidden
)

func (v CrosshairView) Visible() bool {
	return v != CrosshairHidden
}

func (v CrosshairView) Glyph() CrosshairGlyph {
	if v == CrosshairSquare {
		return GlyphSquare
	}
	return GlyphDot
}

func (v CrosshairView) String() string {
	switch v {
	case CrosshairSquare:
		return "square"
	case CrosshairHidden:
		return "hidden"
	default:
		return "dot"
	}
}

// CrosshairCascade: force hidden beats prefer square beats the dot.
var CrosshairCascade = claim.Cascade[CrosshairCondition, CrosshairView]{
	Rules: []claim.Rule[CrosshairCondition, CrosshairView]{
		{When: CrosshairForceHidden, Then: CrosshairHidden},
		{When: CrosshairPreferSquare, Then: CrosshairSquare},
	},
	Default: CrosshairDot,
}

// Crosshair owns the claims of every producer that wants to influence the
// crosshair. Producers write Claims; only the resolve stage calls Resolve.
type Crosshair struct {
	Claims *claim.Registry[CrosshairCondition, CrosshairView]
}

func NewCrosshair() *Crosshair {
	return &Crosshair{Claims: claim.New(CrosshairCascade)}
}

var CrosshairComponent = NewComponent[Crosshair]()

// CrosshairTextures holds the glyph images the crosshair consumer swaps.
type CrosshairTextures struct {
	Dot    *ebiten.Image
	Square *ebiten.Image
}

func (t CrosshairTextures) For(g CrosshairGlyph) *ebiten.Image {
	if g == GlyphSquare {
		return t.Square
	}
	return t.Dot
}

var CrosshairTexturesComponent = NewComponent[CrosshairTextures]()
