package component

// DialogueState is a singleton describing the running conversation.
type DialogueState struct {
	Active  bool
	Speaker uint64
	Name    string
	Line    string
	Index   int
	Lines   []string
	// Visits counts completed conversations per NPC name.
	Visits map[string]int
}

var DialogueStateComponent = NewComponent[DialogueState]()

// CursorState is a singleton tracking whether the cursor is captured.
type CursorState struct {
	Captured bool
}

var CursorStateComponent = NewComponent[CursorState]()

// PauseState is a singleton for the pause menu.
type PauseState struct {
	Paused bool
}

var PauseStateComponent = NewComponent[PauseState]()
