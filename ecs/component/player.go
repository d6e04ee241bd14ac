package component

type Player struct {
	// LookSpeed scales mouse delta into facing rotation.
	LookSpeed           float64
	InteractionDistance float64
	ThrowSpeed          float64
}

var PlayerComponent = NewComponent[Player]()
