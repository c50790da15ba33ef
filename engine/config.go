package engine

import (
	"time"

	"github.com/lixenwraith/gaia-snake/parameter"
	"github.com/lixenwraith/gaia-snake/progression"
	"github.com/lixenwraith/gaia-snake/reward"
	"github.com/lixenwraith/gaia-snake/world"
)

// Config holds the tuning of one Game
type Config struct {
	Player             string
	Seed               uint64
	Layout             world.Layout
	Spawn              world.SpawnConfig
	Curve              progression.Curve
	Rules              reward.Rules
	ElevationThreshold int
	IdleInterval       time.Duration

	// Ledger seeds the reward ledger of the first session only
	Ledger reward.Ledger
}

// DefaultConfig returns the stock tuning with a zero seed
func DefaultConfig() Config {
	return Config{
		Player:             "player",
		Layout:             world.DefaultLayout(),
		Spawn:              world.DefaultSpawnConfig(),
		Curve:              progression.DefaultCurve(),
		Rules:              reward.DefaultRules(),
		ElevationThreshold: parameter.ElevationThreshold,
		IdleInterval:       parameter.IdleXPInterval,
	}
}
