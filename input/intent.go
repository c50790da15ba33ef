package input

import "github.com/lixenwraith/gaia-snake/core"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// Host-level intents, not forwarded to the game
	IntentQuit        // q, Esc, Ctrl+C
	IntentToggleMute  // m
	IntentToggleDebug // F1
	IntentResize      // terminal resize event

	// Game controls
	IntentMove    // arrows, WASD, hjkl
	IntentToggle  // space: start, pause or resume
	IntentReset   // r
	IntentNewGame // n
	IntentClaim   // c
)

var intentNames = [...]string{
	IntentNone:        "none",
	IntentQuit:        "quit",
	IntentToggleMute:  "toggle_mute",
	IntentToggleDebug: "toggle_debug",
	IntentResize:      "resize",
	IntentMove:        "move",
	IntentToggle:      "toggle",
	IntentReset:       "reset",
	IntentNewGame:     "new_game",
	IntentClaim:       "claim",
}

func (t IntentType) String() string {
	if int(t) < len(intentNames) {
		return intentNames[t]
	}
	return "unknown"
}

// Intent represents a parsed semantic action
type Intent struct {
	Type      IntentType
	Direction core.Direction // IntentMove only
}
