package audio

import (
	"github.com/lixenwraith/gaia-snake/engine"
	"github.com/lixenwraith/gaia-snake/event"
)

// CuePlayer plays a cue, reporting whether it was audible
type CuePlayer interface {
	Play(cue Cue) bool
}

// Cues maps game events to sound cues
// Runs on the scheduler goroutine, Play must not block
type Cues struct {
	player CuePlayer
}

// NewCues binds the event mapping to a player
func NewCues(player CuePlayer) *Cues {
	return &Cues{player: player}
}

// CueFor returns the cue for an event, false when the event is silent
func CueFor(ev event.GameEvent) (Cue, bool) {
	switch ev.Type {
	case event.EventScoreChanged:
		// Bonus items chime on BonusCollected instead
		if p, ok := ev.Payload.(event.ScoreChangedPayload); ok && p.Kind == event.KindBonus {
			return 0, false
		}
		return CueChomp, true
	case event.EventBonusCollected:
		return CueBell, true
	case event.EventLevelUp:
		return CueLevelUp, true
	case event.EventModeElevated:
		return CueElevated, true
	case event.EventGameOver:
		return CueGameOver, true
	case event.EventRewardClaimed:
		return CueCoin, true
	}
	return 0, false
}

func (c *Cues) HandleEvent(_ engine.Snapshot, ev event.GameEvent) {
	if cue, ok := CueFor(ev); ok {
		c.player.Play(cue)
	}
}

func (c *Cues) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventScoreChanged,
		event.EventBonusCollected,
		event.EventLevelUp,
		event.EventModeElevated,
		event.EventGameOver,
		event.EventRewardClaimed,
	}
}
