package parameter

import "time"

// Board
const (
	// GridSize is the board extent N (board is N×N)
	GridSize = 20

	// ActorStartX, ActorStartY is the head cell at session start
	ActorStartX = 10
	ActorStartY = 10

	// FoodStartX, FoodStartY is the first Score item of a session
	FoodStartX = 15
	FoodStartY = 15
)

// Collectibles
const (
	// ScoreItemPoints is awarded for a Score item, which also grows the actor
	ScoreItemPoints = 10

	// BonusItemPoints is awarded for a Bonus item
	BonusItemPoints = 5

	// InitialBonusItems is the number of Bonus items placed at session start
	InitialBonusItems = 5

	// SpawnMaxAttempts is the number of random placement attempts before a spawn is skipped
	SpawnMaxAttempts = 10

	// BonusSpawnWindow is the simulated-time window of the background Bonus roll
	BonusSpawnWindow = 3 * time.Second

	// BonusSpawnChance is the per-window probability of a background Bonus spawn
	BonusSpawnChance = 0.3
)

// Mode
const (
	// ElevationThreshold is the cumulative Bonus count that elevates the session
	ElevationThreshold = 100
)
