package input

import (
	"github.com/lixenwraith/gaia-snake/core"
	"github.com/lixenwraith/gaia-snake/engine"
	"github.com/lixenwraith/gaia-snake/reward"
)

// Controls is the slice of *engine.Game that input drives
type Controls interface {
	State() engine.GameState
	Start() bool
	Pause() bool
	Resume() bool
	Reset()
	NewGame()
	Direction(d core.Direction) bool
	ClaimWin() (reward.Award, bool)
}

// Result reports what a dispatched intent did
type Result struct {
	Applied bool
	Award   reward.Award // IntentClaim only
}

// Dispatch applies a game intent to c
// Host-level intents are ignored and report Applied false
func Dispatch(c Controls, in Intent) Result {
	switch in.Type {
	case IntentMove:
		return Result{Applied: c.Direction(in.Direction)}
	case IntentToggle:
		return Result{Applied: toggle(c)}
	case IntentReset:
		c.Reset()
		return Result{Applied: true}
	case IntentNewGame:
		c.NewGame()
		return Result{Applied: true}
	case IntentClaim:
		award, ok := c.ClaimWin()
		return Result{Applied: ok, Award: award}
	}
	return Result{}
}

// toggle is the single-key play control: start, pause, resume, or restart after game over
func toggle(c Controls) bool {
	switch c.State() {
	case engine.StateIdle:
		return c.Start()
	case engine.StateRunning:
		return c.Pause()
	case engine.StatePaused:
		return c.Resume()
	case engine.StateGameOver:
		c.Reset()
		return c.Start()
	}
	return false
}
