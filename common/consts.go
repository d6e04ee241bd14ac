package common

import "time"

const (
	BaseWidth  = 1280
	BaseHeight = 720

	TileSize = 32

	TPS          = 60
	TickDuration = time.Second / TPS
	TickSeconds  = 1.0 / TPS
)

// The player is drawn at the view anchor, facing up the screen.
const (
	ViewAnchorX = BaseWidth / 2
	ViewAnchorY = BaseHeight * 3 / 4
)
