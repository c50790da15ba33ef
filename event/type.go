package event

import "time"

// EventType represents the type of game event
type EventType int

const (
	// EventScoreChanged signals a score delta from item consumption
	// Trigger: Score or Bonus item eaten | Payload: ScoreChangedPayload
	EventScoreChanged EventType = iota

	// EventBonusCollected signals a Bonus item consumption
	// Trigger: Bonus item eaten | Payload: BonusCollectedPayload
	EventBonusCollected

	// EventLevelUp signals a level increase and the new tick period
	// Trigger: score crossing a level boundary | Payload: LevelUpPayload
	EventLevelUp

	// EventModeElevated signals the one-way Normal → Elevated transition
	// Trigger: cumulative Bonus count reaching threshold | Payload: ModeElevatedPayload
	EventModeElevated

	// EventGameOver signals a terminal collision
	// Trigger: wall or self collision | Payload: GameOverPayload
	EventGameOver

	// EventRewardClaimed signals an accepted win claim
	// Trigger: ClaimWin while eligible | Payload: RewardClaimedPayload
	// Consumer: ledger store
	EventRewardClaimed

	// EventXPAccrued signals an idle timer payout
	// Trigger: idle timer while Running | Payload: XPAccruedPayload
	EventXPAccrued

	// EventStateChanged signals a session state transition
	// Trigger: Start, Pause, Resume, Reset, NewGame, collision | Payload: StateChangedPayload
	EventStateChanged
)

var typeNames = [...]string{
	EventScoreChanged:   "ScoreChanged",
	EventBonusCollected: "BonusCollected",
	EventLevelUp:        "LevelUp",
	EventModeElevated:   "ModeElevated",
	EventGameOver:       "GameOver",
	EventRewardClaimed:  "RewardClaimed",
	EventXPAccrued:      "XPAccrued",
	EventStateChanged:   "StateChanged",
}

func (t EventType) String() string {
	if t >= 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "Unknown"
}

// GameEvent represents a single game event with metadata
// Session is the session that emitted it, which may differ from the snapshot delivered alongside
type GameEvent struct {
	Type      EventType `msgpack:"type" json:"type"`
	Session   string    `msgpack:"session" json:"session"`
	Payload   any       `msgpack:"payload" json:"payload"`
	Tick      uint64    `msgpack:"tick" json:"tick"`
	Timestamp time.Time `msgpack:"ts" json:"ts"`
}
