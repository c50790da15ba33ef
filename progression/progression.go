// Package progression derives level and tick speed from score
package progression

import (
	"time"

	"github.com/lixenwraith/gaia-snake/parameter"
)

// Curve maps levels to tick intervals
type Curve struct {
	ScorePerLevel int
	Base          time.Duration
	Decrement     time.Duration
	Floor         time.Duration
}

// DefaultCurve returns the stock level curve
func DefaultCurve() Curve {
	return Curve{
		ScorePerLevel: parameter.ScorePerLevel,
		Base:          parameter.BaseTickInterval,
		Decrement:     parameter.TickIntervalDecrement,
		Floor:         parameter.MinTickInterval,
	}
}

// Level returns score/ScorePerLevel + 1, never below 1
func (c Curve) Level(score int) int {
	if score < 0 || c.ScorePerLevel <= 0 {
		return 1
	}
	return score/c.ScorePerLevel + 1
}

// Interval returns max(Floor, Base - (level-1)*Decrement)
func (c Curve) Interval(level int) time.Duration {
	if level < 1 {
		level = 1
	}
	d := c.Base - time.Duration(level-1)*c.Decrement
	if d < c.Floor {
		return c.Floor
	}
	return d
}

// State is the progression value carried in every snapshot
type State struct {
	Score        int           `json:"score" msgpack:"score"`
	Level        int           `json:"level" msgpack:"level"`
	TickInterval time.Duration `json:"tick_interval" msgpack:"tick_interval"`
}

// Initial returns the level 1 state for c
func (c Curve) Initial() State {
	return State{Level: 1, TickInterval: c.Interval(1)}
}

// Apply adds delta to the score and recomputes level and interval
// Reports whether the level increased
func (c Curve) Apply(s State, delta int) (State, bool) {
	s.Score += delta
	level := c.Level(s.Score)
	leveled := level > s.Level
	s.Level = level
	s.TickInterval = c.Interval(level)
	return s, leveled
}
