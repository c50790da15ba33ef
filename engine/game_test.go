package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/gaia-snake/core"
	"github.com/lixenwraith/gaia-snake/event"
	"github.com/lixenwraith/gaia-snake/mode"
	"github.com/lixenwraith/gaia-snake/reward"
	"github.com/lixenwraith/gaia-snake/world"
)

func eventTypes(evs []event.GameEvent) []event.EventType {
	types := make([]event.EventType, len(evs))
	for i, ev := range evs {
		types[i] = ev.Type
	}
	return types
}

func findEvent(evs []event.GameEvent, t event.EventType) (event.GameEvent, bool) {
	for _, ev := range evs {
		if ev.Type == t {
			return ev, true
		}
	}
	return event.GameEvent{}, false
}

func TestNewGameOpeningBoard(t *testing.T) {
	g, _ := NewTestGame(DefaultConfig())
	snap := g.Snapshot()

	if snap.State != StateIdle {
		t.Errorf("Expected Idle, got %v", snap.State)
	}
	if len(snap.Actor) != 1 || snap.Actor[0] != (core.Point{X: 10, Y: 10}) {
		t.Errorf("Expected actor at (10,10), got %v", snap.Actor)
	}
	if snap.Direction != core.DirRight {
		t.Errorf("Expected heading Right, got %v", snap.Direction)
	}
	if snap.Items[0] != (world.Item{Pos: core.Point{X: 15, Y: 15}, Kind: world.KindScore}) {
		t.Errorf("Expected food at (15,15), got %v", snap.Items[0])
	}
	if len(snap.Items) != 6 {
		t.Errorf("Expected 6 items, got %d", len(snap.Items))
	}
	if snap.Progression.Level != 1 || snap.EffectiveInterval != 200*time.Millisecond {
		t.Errorf("Expected level 1 at 200ms, got %+v at %v", snap.Progression, snap.EffectiveInterval)
	}
	if snap.Session == "" {
		t.Error("Expected a session ID")
	}
}

func TestTickIgnoredUnlessRunning(t *testing.T) {
	g, _ := NewTestGame(RunwayConfig())
	if g.Tick() {
		t.Error("Expected Tick to be ignored in Idle")
	}
	if g.Direction(core.DirDown) {
		t.Error("Expected Direction to be ignored in Idle")
	}
	g.Start()
	g.Pause()
	if g.Tick() || g.Direction(core.DirDown) || g.AccrueIdle() {
		t.Error("Expected Tick, Direction and AccrueIdle to be ignored while Paused")
	}
	if g.Snapshot().Tick != 0 {
		t.Errorf("Expected tick 0, got %d", g.Snapshot().Tick)
	}
}

// TestScenarioAOnGame collects one Score item
func TestScenarioAOnGame(t *testing.T) {
	g, _ := NewTestGame(FeastConfig(10))
	g.Start()
	g.Events()

	if !g.Tick() {
		t.Fatal("Expected tick to run")
	}
	snap := g.Snapshot()
	if snap.Progression.Score != 10 || snap.Progression.Level != 1 {
		t.Errorf("Expected score 10 at level 1, got %+v", snap.Progression)
	}
	if snap.EffectiveInterval != 200*time.Millisecond {
		t.Errorf("Expected 200ms, got %v", snap.EffectiveInterval)
	}
	if len(snap.Actor) != 2 {
		t.Errorf("Expected length 2, got %d", len(snap.Actor))
	}

	evs := g.Events()
	ev, ok := findEvent(evs, event.EventScoreChanged)
	if !ok {
		t.Fatalf("Expected ScoreChanged, got %v", eventTypes(evs))
	}
	p := ev.Payload.(event.ScoreChangedPayload)
	if p.Score != 10 || p.Delta != 10 || p.Kind != event.KindScore {
		t.Errorf("Unexpected payload %+v", p)
	}
	if ev.Tick != 1 {
		t.Errorf("Expected event tick 1, got %d", ev.Tick)
	}
	if _, ok := findEvent(evs, event.EventLevelUp); ok {
		t.Error("Unexpected LevelUp")
	}
}

// TestScenarioBOnGame jumps to score 250
func TestScenarioBOnGame(t *testing.T) {
	g, _ := NewTestGame(FeastConfig(250))
	g.Start()
	g.Events()
	g.Tick()

	evs := g.Events()
	ev, ok := findEvent(evs, event.EventLevelUp)
	if !ok {
		t.Fatalf("Expected LevelUp, got %v", eventTypes(evs))
	}
	p := ev.Payload.(event.LevelUpPayload)
	if p.Level != 3 || p.TickInterval != 170*time.Millisecond || p.EffectiveInterval != 170*time.Millisecond {
		t.Errorf("Unexpected payload %+v", p)
	}
	if g.EffectiveInterval() != 170*time.Millisecond {
		t.Errorf("Expected 170ms, got %v", g.EffectiveInterval())
	}
}

// TestScenarioCOnGame claims at level 4 with two prior wins
func TestScenarioCOnGame(t *testing.T) {
	cfg := FeastConfig(520)
	cfg.Ledger = reward.Ledger{ConsecutiveWins: 2}
	g, _ := NewTestGame(cfg)

	if _, ok := g.ClaimWin(); ok {
		t.Error("Expected claim to be rejected in Idle")
	}
	g.Start()
	if _, ok := g.ClaimWin(); ok {
		t.Error("Expected claim to be rejected below threshold")
	}
	g.Tick()
	g.Events()

	award, ok := g.ClaimWin()
	if !ok {
		t.Fatal("Expected claim to be accepted")
	}
	// Score 520 is level 6: min(100, 60) * min(3, 5)
	if award.Tokens != 180 || award.XP != 300 || award.ConsecutiveWins != 3 {
		t.Errorf("Unexpected award %+v", award)
	}

	evs := g.Events()
	ev, ok := findEvent(evs, event.EventRewardClaimed)
	if !ok {
		t.Fatalf("Expected RewardClaimed, got %v", eventTypes(evs))
	}
	p := ev.Payload.(event.RewardClaimedPayload)
	if p.Tokens != 180 || p.ConsecutiveWins != 3 {
		t.Errorf("Unexpected payload %+v", p)
	}
	if led := g.Snapshot().Reward; led.Tokens != 180 || led.XP != 300 || led.ConsecutiveWins != 3 {
		t.Errorf("Unexpected ledger %+v", led)
	}
}

// TestScenarioDOnGame escalates at session start with ten prior wins
func TestScenarioDOnGame(t *testing.T) {
	cfg := RunwayConfig()
	cfg.Ledger = reward.Ledger{ConsecutiveWins: 10}
	g, _ := NewTestGame(cfg)

	if g.EffectiveInterval() != 200*time.Millisecond {
		t.Errorf("Expected 200ms before start, got %v", g.EffectiveInterval())
	}
	g.Start()
	if g.EffectiveInterval() != 100*time.Millisecond {
		t.Errorf("Expected 100ms after start, got %v", g.EffectiveInterval())
	}
	if g.Snapshot().Escalation != 2 {
		t.Errorf("Expected escalation 2, got %v", g.Snapshot().Escalation)
	}

	// Pause and resume keep the factor without compounding it
	g.Pause()
	g.Start()
	if g.EffectiveInterval() != 100*time.Millisecond {
		t.Errorf("Expected 100ms after resume, got %v", g.EffectiveInterval())
	}
}

// TestScenarioEOnGame turns into the left wall
func TestScenarioEOnGame(t *testing.T) {
	cfg := RunwayConfig()
	cfg.Layout.Start = core.Point{X: 0, Y: 7}
	cfg.Layout.Heading = core.DirDown
	g, _ := NewTestGame(cfg)
	g.Start()
	g.Events()

	if !g.Direction(core.DirLeft) {
		t.Fatal("Expected Left to be accepted while heading Down")
	}
	g.Tick()

	if g.State() != StateGameOver {
		t.Fatalf("Expected GameOver, got %v", g.State())
	}
	evs := g.Events()
	types := eventTypes(evs)
	if len(types) != 2 || types[0] != event.EventGameOver || types[1] != event.EventStateChanged {
		t.Fatalf("Expected [GameOver StateChanged], got %v", types)
	}
	p := evs[0].Payload.(event.GameOverPayload)
	if p.FinalScore != 0 || p.Cause != event.CauseWall {
		t.Errorf("Unexpected payload %+v", p)
	}
	sc := evs[1].Payload.(event.StateChangedPayload)
	if sc.From != "Running" || sc.To != "GameOver" {
		t.Errorf("Unexpected transition %+v", sc)
	}
	if g.Snapshot().Actor[0] != (core.Point{X: 0, Y: 7}) {
		t.Error("Expected board to be left as it was before the collision")
	}
}

func TestRapidDirectionsCollapse(t *testing.T) {
	cfg := RunwayConfig()
	cfg.Layout.Start = core.Point{X: 5, Y: 5}
	g, _ := NewTestGame(cfg)
	g.Start()

	g.Direction(core.DirUp)
	g.Direction(core.DirLeft) // reverse of committed Right, ignored
	g.Direction(core.DirDown)
	g.Tick()

	snap := g.Snapshot()
	if snap.Actor[0] != (core.Point{X: 5, Y: 6}) || snap.Direction != core.DirDown {
		t.Errorf("Expected head (5,6) heading Down, got %v heading %v", snap.Actor[0], snap.Direction)
	}
}

func TestBonusElevatesMode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Layout.Size = 3
	cfg.Layout.Start = core.Point{X: 0, Y: 0}
	cfg.Layout.Food = core.Point{X: 2, Y: 2}
	cfg.Layout.Bonuses = 7
	cfg.Spawn.MaxAttempts = 1000
	cfg.Spawn.BonusChance = 0
	cfg.ElevationThreshold = 1
	g, _ := NewTestGame(cfg)

	if n := len(g.Snapshot().Items); n != 8 {
		t.Fatalf("Expected a full 3x3 board with 8 items, got %d", n)
	}
	g.Start()
	g.Events()
	g.Tick()

	evs := g.Events()
	types := eventTypes(evs)
	want := []event.EventType{event.EventScoreChanged, event.EventBonusCollected, event.EventModeElevated}
	if len(types) != len(want) {
		t.Fatalf("Expected %v, got %v", want, types)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("Event %d: expected %v, got %v", i, want[i], types[i])
		}
	}
	snap := g.Snapshot()
	if snap.Mode != mode.Elevated || snap.BonusCollected != 1 || snap.Progression.Score != 5 {
		t.Errorf("Unexpected snapshot mode %v bonus %d score %d", snap.Mode, snap.BonusCollected, snap.Progression.Score)
	}
	if len(snap.Actor) != 1 {
		t.Errorf("Expected Bonus to leave length 1, got %d", len(snap.Actor))
	}
}

func TestResetKeepsLedger(t *testing.T) {
	cfg := FeastConfig(600)
	g, _ := NewTestGame(cfg)
	session := g.Snapshot().Session
	g.Start()
	g.Tick()
	g.ClaimWin()

	g.Reset()
	snap := g.Snapshot()
	if snap.State != StateIdle || len(snap.Actor) != 1 || snap.Actor[0] != (core.Point{X: 0, Y: 0}) {
		t.Errorf("Expected a fresh board in Idle, got %v with %v", snap.State, snap.Actor)
	}
	if snap.Reward.ConsecutiveWins != 1 || snap.Reward.Tokens == 0 {
		t.Errorf("Expected ledger to survive reset, got %+v", snap.Reward)
	}
	if snap.Progression.Score != 600 {
		t.Errorf("Expected progression to survive reset, got %+v", snap.Progression)
	}
	if snap.Session != session {
		t.Error("Expected reset to keep the session ID")
	}

	g.NewGame()
	snap = g.Snapshot()
	if snap.Reward != (reward.Ledger{}) || snap.Progression.Score != 0 || snap.Progression.Level != 1 {
		t.Errorf("Expected new game to clear ledger and progression, got %+v %+v", snap.Reward, snap.Progression)
	}
	if snap.Session == session {
		t.Error("Expected new game to issue a new session ID")
	}
}

func TestIdleAccrual(t *testing.T) {
	g, _ := NewTestGame(RunwayConfig())
	if g.AccrueIdle() {
		t.Error("Expected idle accrual to be ignored in Idle")
	}
	g.Start()
	g.Events()
	g.AccrueIdle()
	g.AccrueIdle()

	evs := g.Events()
	if len(evs) != 2 {
		t.Fatalf("Expected 2 events, got %v", eventTypes(evs))
	}
	p := evs[1].Payload.(event.XPAccruedPayload)
	if p.Amount != 5 || p.TotalXP != 10 || p.PlayTime != 2 {
		t.Errorf("Unexpected payload %+v", p)
	}
}

func TestEventTimestampsUseClock(t *testing.T) {
	g, clock := NewTestGame(RunwayConfig())
	clock.Advance(time.Minute)
	g.Start()

	evs := g.Events()
	if len(evs) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(evs))
	}
	if !evs[0].Timestamp.Equal(TestEpoch.Add(time.Minute)) {
		t.Errorf("Expected timestamp %v, got %v", TestEpoch.Add(time.Minute), evs[0].Timestamp)
	}
}

func TestEventsCarryEmittingSession(t *testing.T) {
	g, _ := NewTestGame(FeastConfig(500))
	g.Start()
	g.Tick()
	first := g.Snapshot().Session
	g.ClaimWin()
	g.NewGame()
	second := g.Snapshot().Session

	evs := g.Events()
	if len(evs) == 0 {
		t.Fatal("Expected pending events")
	}
	last := evs[len(evs)-1]
	if last.Type != event.EventStateChanged || last.Session != second {
		t.Errorf("Expected final StateChanged from session %s, got %s from %s", second, last.Type, last.Session)
	}
	for _, ev := range evs[:len(evs)-1] {
		if ev.Session != first {
			t.Errorf("Expected %s from session %s, got %s", ev.Type, first, ev.Session)
		}
	}
}
