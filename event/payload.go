package event

import "time"

// Item kinds as carried in payloads
const (
	KindScore = "score"
	KindBonus = "bonus"
)

// Collision causes carried by GameOverPayload
const (
	CauseWall = "wall"
	CauseSelf = "self"
)

// ScoreChangedPayload carries the new score and what produced it
type ScoreChangedPayload struct {
	Score int    `msgpack:"score" json:"score"`
	Delta int    `msgpack:"delta" json:"delta"`
	Kind  string `msgpack:"kind" json:"kind"`
}

// BonusCollectedPayload carries the session's cumulative Bonus count
type BonusCollectedPayload struct {
	Collected int `msgpack:"collected" json:"collected"`
}

// LevelUpPayload carries the new level and both tick periods
type LevelUpPayload struct {
	Level             int           `msgpack:"level" json:"level"`
	TickInterval      time.Duration `msgpack:"interval" json:"interval"`
	EffectiveInterval time.Duration `msgpack:"effective" json:"effective"`
}

// ModeElevatedPayload carries the Bonus count at elevation
type ModeElevatedPayload struct {
	BonusCollected int `msgpack:"bonus" json:"bonus"`
}

// GameOverPayload carries the final score and collision cause
type GameOverPayload struct {
	FinalScore int    `msgpack:"score" json:"score"`
	Level      int    `msgpack:"level" json:"level"`
	Length     int    `msgpack:"length" json:"length"`
	Cause      string `msgpack:"cause" json:"cause"`
}

// RewardClaimedPayload carries a win-claim payout
type RewardClaimedPayload struct {
	Tokens          int `msgpack:"tokens" json:"tokens"`
	XP              int `msgpack:"xp" json:"xp"`
	ConsecutiveWins int `msgpack:"wins" json:"wins"`
	Level           int `msgpack:"level" json:"level"`
	Score           int `msgpack:"score" json:"score"`
}

// XPAccruedPayload carries an idle payout and the resulting totals
type XPAccruedPayload struct {
	Amount   int `msgpack:"amount" json:"amount"`
	TotalXP  int `msgpack:"total" json:"total"`
	PlayTime int `msgpack:"playtime" json:"playtime"`
}

// StateChangedPayload carries a session state transition by name
type StateChangedPayload struct {
	From string `msgpack:"from" json:"from"`
	To   string `msgpack:"to" json:"to"`
}
