package engine

import (
	"testing"

	"github.com/lixenwraith/gaia-snake/core"
)

func TestGameStateNames(t *testing.T) {
	for _, s := range []GameState{StateIdle, StateRunning, StatePaused, StateGameOver} {
		got, ok := ParseGameState(s.String())
		if !ok || got != s {
			t.Errorf("ParseGameState(%q) = %v, %t", s.String(), got, ok)
		}
	}
	if GameState(9).String() != "Unknown" {
		t.Errorf("Expected Unknown for out of range state, got %s", GameState(9))
	}
	if _, ok := ParseGameState("Sleeping"); ok {
		t.Error("Expected unknown name to be rejected")
	}
}

// TestStateMachine walks every control from every state
func TestStateMachine(t *testing.T) {
	type op func(g *Game) bool
	start := func(g *Game) bool { return g.Start() }
	pause := func(g *Game) bool { return g.Pause() }
	resume := func(g *Game) bool { return g.Resume() }
	reset := func(g *Game) bool { g.Reset(); return true }

	// into drives a fresh game into the named state
	into := func(s GameState) *Game {
		g, _ := NewTestGame(RunwayConfig())
		switch s {
		case StateRunning:
			g.Start()
		case StatePaused:
			g.Start()
			g.Pause()
		case StateGameOver:
			g.Start()
			g.Direction(core.DirUp)
			g.Tick()
		}
		g.Events()
		return g
	}

	tests := []struct {
		name string
		from GameState
		op   op
		ok   bool
		to   GameState
	}{
		{"start from idle", StateIdle, start, true, StateRunning},
		{"pause from idle", StateIdle, pause, false, StateIdle},
		{"resume from idle", StateIdle, resume, false, StateIdle},
		{"reset from idle", StateIdle, reset, true, StateIdle},
		{"start while running", StateRunning, start, false, StateRunning},
		{"pause while running", StateRunning, pause, true, StatePaused},
		{"resume while running", StateRunning, resume, false, StateRunning},
		{"reset while running", StateRunning, reset, true, StateIdle},
		{"start while paused resumes", StatePaused, start, true, StateRunning},
		{"resume while paused", StatePaused, resume, true, StateRunning},
		{"pause while paused", StatePaused, pause, false, StatePaused},
		{"reset while paused", StatePaused, reset, true, StateIdle},
		{"start after game over", StateGameOver, start, false, StateGameOver},
		{"pause after game over", StateGameOver, pause, false, StateGameOver},
		{"resume after game over", StateGameOver, resume, false, StateGameOver},
		{"reset after game over", StateGameOver, reset, true, StateIdle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := into(tt.from)
			if g.State() != tt.from {
				t.Fatalf("Expected setup state %v, got %v", tt.from, g.State())
			}
			if ok := tt.op(g); ok != tt.ok {
				t.Errorf("Expected op result %t, got %t", tt.ok, ok)
			}
			if g.State() != tt.to {
				t.Errorf("Expected state %v, got %v", tt.to, g.State())
			}
			evs := g.Events()
			if tt.ok && len(evs) == 0 {
				t.Error("Expected a StateChanged event")
			}
			if !tt.ok && len(evs) != 0 {
				t.Errorf("Expected no events on rejected op, got %d", len(evs))
			}
		})
	}
}
