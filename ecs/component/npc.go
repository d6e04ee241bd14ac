package component

// NPC is something the player can talk to.
type NPC struct {
	Name              string
	Prompt            string
	Script            string
	InteractionRadius float64
}

var NPCComponent = NewComponent[NPC]()

// Interactor is the NPC the player would talk to if they pressed interact.
type Interactor struct {
	Target    uint64
	Valid     bool
	Available bool
	Prompt    string
}

var InteractorComponent = NewComponent[Interactor]()
