package engine

// GameState is the session lifecycle state
type GameState uint8

const (
	StateIdle GameState = iota
	StateRunning
	StatePaused
	StateGameOver
)

var stateNames = [...]string{
	StateIdle:     "Idle",
	StateRunning:  "Running",
	StatePaused:   "Paused",
	StateGameOver: "GameOver",
}

func (s GameState) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "Unknown"
}

// ParseGameState maps a state name back to its value
func ParseGameState(name string) (GameState, bool) {
	for i, n := range stateNames {
		if n == name {
			return GameState(i), true
		}
	}
	return StateIdle, false
}
