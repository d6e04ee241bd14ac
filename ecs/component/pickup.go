package component

import "github.com/hajimehoshi/ebiten/v2"

// Prop is a dynamic object the player can pick up.
type Prop struct {
	Kind string
	// Extinguishable props (candles) swap to UnlitImage when first picked up.
	Extinguishable bool
	Lit            bool
	UnlitImage     *ebiten.Image
}

var PropComponent = NewComponent[Prop]()

// Held marks a prop as carried. By is the holder (ecs.Entity is uint64).
type Held struct {
	By       uint64
	Distance float64
}

var HeldComponent = NewComponent[Held]()

// PickupTarget is what the player's view probe hit this tick.
type PickupTarget struct {
	Entity uint64
	Valid  bool
}

var PickupTargetComponent = NewComponent[PickupTarget]()
