package engine

import (
	"time"

	"github.com/lixenwraith/gaia-snake/core"
	"github.com/lixenwraith/gaia-snake/event"
	"github.com/lixenwraith/gaia-snake/mode"
	"github.com/lixenwraith/gaia-snake/progression"
	"github.com/lixenwraith/gaia-snake/reward"
	"github.com/lixenwraith/gaia-snake/world"
)

// Snapshot is an immutable copy of session state taken after a tick or control change
type Snapshot struct {
	Session           string            `msgpack:"session" json:"session"`
	Player            string            `msgpack:"player" json:"player"`
	Tick              uint64            `msgpack:"tick" json:"tick"`
	GridSize          int               `msgpack:"grid" json:"grid"`
	Actor             []core.Point      `msgpack:"actor" json:"actor"`
	Direction         core.Direction    `msgpack:"dir" json:"dir"`
	Items             []world.Item      `msgpack:"items" json:"items"`
	Progression       progression.State `msgpack:"progression" json:"progression"`
	EffectiveInterval time.Duration     `msgpack:"effective" json:"effective"`
	Escalation        float64           `msgpack:"escalation" json:"escalation"`
	Mode              mode.Mode         `msgpack:"mode" json:"mode"`
	BonusCollected    int               `msgpack:"bonus" json:"bonus"`
	Reward            reward.Ledger     `msgpack:"reward" json:"reward"`
	State             GameState         `msgpack:"state" json:"state"`
}

// ClaimEligible reports whether ClaimWin would be accepted in this snapshot
func (s Snapshot) ClaimEligible(rules reward.Rules) bool {
	return rules.Eligible(s.Progression.Score, s.State == StateRunning)
}

// EventHandler receives routed events along with the snapshot taken after they were emitted
type EventHandler = event.Handler[Snapshot]

// SnapshotSink receives every published snapshot
// Called on the scheduler goroutine, must not block
type SnapshotSink interface {
	PublishSnapshot(s Snapshot)
}

// SnapshotSinkFunc adapts a function to SnapshotSink
type SnapshotSinkFunc func(Snapshot)

func (f SnapshotSinkFunc) PublishSnapshot(s Snapshot) { f(s) }
