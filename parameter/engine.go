package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the terminal host redraw interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// IdleXPInterval is the period of the background XP timer while Running
	IdleXPInterval = time.Hour
)

// Event queue limits
const (
	// EventQueueSize is the number of events a session holds between scheduler drains
	EventQueueSize = 256
)
