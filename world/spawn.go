package world

import (
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/gaia-snake/core"
	"github.com/lixenwraith/gaia-snake/parameter"
)

// SpawnConfig tunes item placement and scoring
type SpawnConfig struct {
	MaxAttempts int
	BonusWindow time.Duration
	BonusChance float64
	ScorePoints int
	BonusPoints int
}

// DefaultSpawnConfig returns the stock tuning
func DefaultSpawnConfig() SpawnConfig {
	return SpawnConfig{
		MaxAttempts: parameter.SpawnMaxAttempts,
		BonusWindow: parameter.BonusSpawnWindow,
		BonusChance: parameter.BonusSpawnChance,
		ScorePoints: parameter.ScoreItemPoints,
		BonusPoints: parameter.BonusItemPoints,
	}
}

// Spawner places collectibles on random free cells
// Randomness comes from the injected source so sequences replay under a fixed seed
type Spawner struct {
	rng     *rand.Rand
	cfg     SpawnConfig
	elapsed time.Duration // Simulated time inside the current bonus window
}

// NewSpawner creates a spawner drawing from rng
func NewSpawner(rng *rand.Rand, cfg SpawnConfig) *Spawner {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = parameter.SpawnMaxAttempts
	}
	return &Spawner{rng: rng, cfg: cfg}
}

// Reset clears the bonus window accumulator
func (s *Spawner) Reset() {
	s.elapsed = 0
}

func (s *Spawner) points(k ItemKind) int {
	switch k {
	case KindScore:
		return s.cfg.ScorePoints
	case KindBonus:
		return s.cfg.BonusPoints
	}
	return 0
}

// freeCell draws up to MaxAttempts uniform cells and returns the first free one
func (s *Spawner) freeCell(w World) (core.Point, bool) {
	if w.FreeCells() <= 0 {
		return core.Point{}, false
	}
	for i := 0; i < s.cfg.MaxAttempts; i++ {
		p := core.Point{X: s.rng.IntN(w.size), Y: s.rng.IntN(w.size)}
		if w.Free(p) {
			return p, true
		}
	}
	return core.Point{}, false
}

func (s *Spawner) spawn(w World, k ItemKind) (World, bool) {
	p, ok := s.freeCell(w)
	if !ok {
		return w, false
	}
	return w.WithItem(Item{Pos: p, Kind: k})
}

// SpawnScore places a Score item, reporting false when the spawn was skipped
func (s *Spawner) SpawnScore(w World) (World, bool) {
	return s.spawn(w, KindScore)
}

// SpawnBonus places a Bonus item, reporting false when the spawn was skipped
func (s *Spawner) SpawnBonus(w World) (World, bool) {
	return s.spawn(w, KindBonus)
}

// Advance feeds elapsed simulated time into the background bonus roll
// Each completed window rolls BonusChance once; returns spawned and skipped counts
func (s *Spawner) Advance(w World, elapsed time.Duration) (World, int, int) {
	if s.cfg.BonusWindow <= 0 {
		return w, 0, 0
	}
	s.elapsed += elapsed
	spawned, skipped := 0, 0
	for s.elapsed >= s.cfg.BonusWindow {
		s.elapsed -= s.cfg.BonusWindow
		if s.rng.Float64() >= s.cfg.BonusChance {
			continue
		}
		var ok bool
		if w, ok = s.SpawnBonus(w); ok {
			spawned++
		} else {
			skipped++
		}
	}
	return w, spawned, skipped
}

// Layout is the opening arrangement of a session
type Layout struct {
	Size    int
	Start   core.Point
	Heading core.Direction
	Food    core.Point
	Bonuses int
}

// DefaultLayout returns the stock 20×20 opening
func DefaultLayout() Layout {
	return Layout{
		Size:    parameter.GridSize,
		Start:   core.Point{X: parameter.ActorStartX, Y: parameter.ActorStartY},
		Heading: core.DirRight,
		Food:    core.Point{X: parameter.FoodStartX, Y: parameter.FoodStartY},
		Bonuses: parameter.InitialBonusItems,
	}
}

// Populate builds a fresh world from l; the food cell falls back to a random free cell
// Returns the number of skipped spawns
func (s *Spawner) Populate(l Layout) (World, int) {
	w := New(l.Size, NewActor(l.Start, l.Heading))
	skipped := 0

	var ok bool
	if w, ok = w.WithItem(Item{Pos: l.Food, Kind: KindScore}); !ok {
		if w, ok = s.SpawnScore(w); !ok {
			skipped++
		}
	}
	for i := 0; i < l.Bonuses; i++ {
		if w, ok = s.SpawnBonus(w); !ok {
			skipped++
		}
	}
	mustValidate(w)
	return w, skipped
}
