package component

// Input stores per-frame input state for an entity.
type Input struct {
	MoveX float64
	MoveY float64
	// LookDelta is raw horizontal look input this frame: mouse pixels or stick
	// deflection. Player.LookSpeed turns it into radians.
	LookDelta       float64
	Jump            bool
	JumpPressed     bool
	InteractPressed bool
	PickupPressed   bool
	ThrowPressed    bool
	DropPressed     bool
	PausePressed    bool
	DebugPressed    bool
}

var InputComponent = NewComponent[Input]()
