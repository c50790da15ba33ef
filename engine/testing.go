package engine

import (
	"time"

	"github.com/lixenwraith/gaia-snake/core"
	"github.com/lixenwraith/gaia-snake/world"
)

// TestEpoch is the start time of clocks created by NewTestGame
var TestEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// NewTestGame creates a Game on a MockClock with a discarding logger
// Used by collaborator tests that need a real session without timers
func NewTestGame(cfg Config) (*Game, *MockClock) {
	clock := NewMockClock(TestEpoch)
	return NewGame(cfg, clock, nil, nil), clock
}

// RunwayConfig returns a quiet configuration: actor at the left edge heading Right on an empty row,
// no opening Bonus items and no background Bonus spawns
func RunwayConfig() Config {
	cfg := DefaultConfig()
	cfg.Layout = world.Layout{
		Size:    20,
		Start:   core.Point{X: 0, Y: 0},
		Heading: core.DirRight,
		Food:    core.Point{X: 19, Y: 19},
		Bonuses: 0,
	}
	cfg.Spawn.BonusChance = 0
	return cfg
}

// FeastConfig returns a configuration whose first tick eats a Score item worth points
func FeastConfig(points int) Config {
	cfg := RunwayConfig()
	cfg.Layout.Food = core.Point{X: 1, Y: 0}
	cfg.Spawn.ScorePoints = points
	return cfg
}
