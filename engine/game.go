package engine

import (
	"io"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/gaia-snake/core"
	"github.com/lixenwraith/gaia-snake/event"
	"github.com/lixenwraith/gaia-snake/mode"
	"github.com/lixenwraith/gaia-snake/progression"
	"github.com/lixenwraith/gaia-snake/reward"
	"github.com/lixenwraith/gaia-snake/status"
	"github.com/lixenwraith/gaia-snake/world"
)

// Game owns one play session: board, progression, mode, reward ledger and lifecycle state
// All methods are safe for concurrent use; mutation happens under a single mutex
type Game struct {
	mu sync.Mutex

	cfg   Config
	clock Clock
	log   *logrus.Entry

	rng     *rand.Rand
	spawner *world.Spawner

	session string
	state   GameState
	board   world.World
	fresh   bool // Board populated and not yet ticked
	prog    progression.State
	modes   mode.Controller
	ledger  reward.Ledger
	factor  float64
	tick    uint64
	epoch   uint64

	queue   *event.EventQueue
	changed chan struct{}

	statTicks   *atomic.Int64
	statSkipped *atomic.Int64
	statEpoch   *atomic.Int64
	statDropped *atomic.Int64
	statLen     *atomic.Int64
	statSpeed   *status.Gauge
}

// NewGame creates a Game in Idle with a populated board
// Nil log and registry are replaced with a discarding logger and a private registry
func NewGame(cfg Config, clock Clock, log *logrus.Entry, reg *status.Registry) *Game {
	if clock == nil {
		clock = NewTimeProvider()
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = logrus.NewEntry(l)
	}
	if reg == nil {
		reg = status.NewRegistry()
	}

	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	g := &Game{
		cfg:         cfg,
		clock:       clock,
		rng:         rng,
		spawner:     world.NewSpawner(rng, cfg.Spawn),
		queue:       event.NewEventQueue(),
		changed:     make(chan struct{}, 1),
		statTicks:   reg.Ints.Get("engine.ticks"),
		statSkipped: reg.Ints.Get("world.spawn_skipped"),
		statEpoch:   reg.Ints.Get("session.epoch"),
		statDropped: reg.Ints.Get("engine.events_dropped"),
		statLen:     reg.Ints.Get("actor.length"),
		statSpeed:   reg.Gauges.Get("engine.interval"),
	}
	g.newSession()
	g.ledger = cfg.Ledger
	g.log = log.WithFields(logrus.Fields{"component": "engine", "session": g.session})
	g.populate()
	return g
}

// newSession reinitializes everything a new game resets
func (g *Game) newSession() {
	g.session = uuid.NewString()
	g.prog = g.cfg.Curve.Initial()
	g.modes = mode.NewController(g.cfg.ElevationThreshold)
	g.ledger = reward.Ledger{}
	g.factor = 1
	g.tick = 0
}

// populate lays out a fresh board
func (g *Game) populate() {
	g.spawner.Reset()
	board, skipped := g.spawner.Populate(g.cfg.Layout)
	g.board = board
	g.fresh = true
	g.statSkipped.Add(int64(skipped))
	g.statLen.Store(int64(board.Actor().Len()))
}

// effective returns the tick period in force, with escalation applied
func (g *Game) effective() time.Duration {
	return g.cfg.Rules.Effective(g.prog.TickInterval, g.factor)
}

func (g *Game) emit(t event.EventType, payload any) {
	g.queue.Push(event.GameEvent{
		Type:      t,
		Session:   g.session,
		Payload:   payload,
		Tick:      g.tick,
		Timestamp: g.clock.Now(),
	})
}

func (g *Game) notify() {
	select {
	case g.changed <- struct{}{}:
	default:
	}
}

// transition moves to s, emitting StateChanged; entering Running opens a new timer epoch
func (g *Game) transition(s GameState) {
	from := g.state
	g.state = s
	if s == StateRunning {
		g.epoch++
		g.statEpoch.Store(int64(g.epoch))
	}
	g.emit(event.EventStateChanged, event.StateChangedPayload{From: from.String(), To: s.String()})
	g.log.WithFields(logrus.Fields{"from": from, "to": s, "tick": g.tick}).Info("state changed")
	g.notify()
}

// Start begins a session from Idle or resumes from Paused
// Escalation is fixed at session start from the consecutive win count
func (g *Game) Start() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch g.state {
	case StateIdle:
		if !g.fresh {
			g.populate()
		}
		g.factor = g.cfg.Rules.Escalation(g.ledger.ConsecutiveWins)
		if g.factor > 1 {
			g.log.WithFields(logrus.Fields{
				"wins":      g.ledger.ConsecutiveWins,
				"factor":    g.factor,
				"effective": g.effective(),
			}).Info("difficulty escalated")
		}
		g.statSpeed.Set(g.effective())
		g.transition(StateRunning)
		return true
	case StatePaused:
		g.transition(StateRunning)
		return true
	}
	return false
}

// Pause suspends a running session
func (g *Game) Pause() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StateRunning {
		return false
	}
	g.transition(StatePaused)
	return true
}

// Resume continues a paused session
func (g *Game) Resume() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StatePaused {
		return false
	}
	g.transition(StateRunning)
	return true
}

// Reset returns to Idle with a fresh board and Normal mode
// Progression and the reward ledger are kept
func (g *Game) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.populate()
	g.modes = g.modes.Reset()
	g.factor = 1
	g.transition(StateIdle)
}

// NewGame returns to Idle and reinitializes progression, mode and the reward ledger under a new session ID
func (g *Game) NewGame() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.newSession()
	g.log = g.log.WithField("session", g.session)
	g.populate()
	g.transition(StateIdle)
}

// Direction buffers a heading change for the next tick
// Ignored unless Running; the reverse of the committed heading is ignored
func (g *Game) Direction(d core.Direction) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StateRunning {
		return false
	}
	board, ok := g.board.WithRequest(d)
	g.board = board
	return ok
}

// ClaimWin pays out a win when Running at or above the win threshold, otherwise does nothing
func (g *Game) ClaimWin() (reward.Award, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	ledger, award, ok := g.cfg.Rules.Claim(g.ledger, g.prog.Level, g.prog.Score, g.state == StateRunning)
	if !ok {
		return award, false
	}
	g.ledger = ledger
	g.emit(event.EventRewardClaimed, event.RewardClaimedPayload{
		Tokens:          award.Tokens,
		XP:              award.XP,
		ConsecutiveWins: award.ConsecutiveWins,
		Level:           g.prog.Level,
		Score:           g.prog.Score,
	})
	g.log.WithFields(logrus.Fields{
		"tokens": award.Tokens,
		"xp":     award.XP,
		"wins":   award.ConsecutiveWins,
	}).Info("win claimed")
	g.notify()
	return award, true
}

// AccrueIdle pays the idle XP amount; ignored unless Running
func (g *Game) AccrueIdle() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StateRunning {
		return false
	}
	g.ledger = g.cfg.Rules.AccrueIdle(g.ledger)
	g.emit(event.EventXPAccrued, event.XPAccruedPayload{
		Amount:   g.cfg.Rules.IdleXP,
		TotalXP:  g.ledger.XP,
		PlayTime: g.ledger.PlayTime,
	})
	return true
}

// Tick advances the simulation one step; returns false when not Running
func (g *Game) Tick() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StateRunning {
		return false
	}
	g.tick++
	g.fresh = false
	g.statTicks.Add(1)
	interval := g.effective()

	board, out := g.board.Step(g.spawner)
	if out.Collision != world.CollisionNone {
		g.emit(event.EventGameOver, event.GameOverPayload{
			FinalScore: g.prog.Score,
			Level:      g.prog.Level,
			Length:     g.board.Actor().Len(),
			Cause:      out.Collision.String(),
		})
		g.log.WithFields(logrus.Fields{
			"score": g.prog.Score,
			"cause": out.Collision,
			"head":  out.Head,
		}).Info("game over")
		g.transition(StateGameOver)
		return true
	}
	g.board = board
	skipped := out.Skipped

	if out.ScoreDelta != 0 {
		var leveled bool
		g.prog, leveled = g.cfg.Curve.Apply(g.prog, out.ScoreDelta)
		g.emit(event.EventScoreChanged, event.ScoreChangedPayload{
			Score: g.prog.Score,
			Delta: out.ScoreDelta,
			Kind:  out.Consumed.String(),
		})
		if leveled {
			eff := g.effective()
			g.emit(event.EventLevelUp, event.LevelUpPayload{
				Level:             g.prog.Level,
				TickInterval:      g.prog.TickInterval,
				EffectiveInterval: eff,
			})
			g.statSpeed.Set(eff)
			g.log.WithFields(logrus.Fields{"level": g.prog.Level, "interval": eff}).Info("level up")
		}
	}

	if out.Consumed == world.KindBonus {
		var elevated bool
		g.modes, elevated = g.modes.Observe(1)
		g.emit(event.EventBonusCollected, event.BonusCollectedPayload{Collected: g.modes.Collected()})
		if elevated {
			g.emit(event.EventModeElevated, event.ModeElevatedPayload{BonusCollected: g.modes.Collected()})
			g.log.WithField("bonus", g.modes.Collected()).Info("mode elevated")
		}
	}

	var bonusSkipped int
	g.board, _, bonusSkipped = g.spawner.Advance(g.board, interval)
	skipped += bonusSkipped
	if skipped > 0 {
		g.statSkipped.Add(int64(skipped))
		g.log.WithField("skipped", skipped).Debug("spawn skipped, no free cell")
	}
	g.statLen.Store(int64(g.board.Actor().Len()))
	g.statDropped.Store(int64(g.queue.Dropped()))
	return true
}

// Events drains the events emitted since the last call
func (g *Game) Events() []event.GameEvent {
	return g.queue.Consume()
}

// Changed signals after control operations; coalesces while unread
func (g *Game) Changed() <-chan struct{} {
	return g.changed
}

// Status returns the lifecycle state and the Running epoch
func (g *Game) Status() (GameState, uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state, g.epoch
}

// State returns the lifecycle state
func (g *Game) State() GameState {
	s, _ := g.Status()
	return s
}

// EffectiveInterval returns the current tick period
func (g *Game) EffectiveInterval() time.Duration {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.effective()
}

// IdleInterval returns the idle XP period
func (g *Game) IdleInterval() time.Duration {
	return g.cfg.IdleInterval
}

// Rules returns the reward rules in force
func (g *Game) Rules() reward.Rules {
	return g.cfg.Rules
}

// Snapshot copies the current session state
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	actor := g.board.Actor()
	return Snapshot{
		Session:           g.session,
		Player:            g.cfg.Player,
		Tick:              g.tick,
		GridSize:          g.board.Size(),
		Actor:             actor.Cells(),
		Direction:         actor.Direction(),
		Items:             g.board.Items(),
		Progression:       g.prog,
		EffectiveInterval: g.effective(),
		Escalation:        g.factor,
		Mode:              g.modes.Mode(),
		BonusCollected:    g.modes.Collected(),
		Reward:            g.ledger,
		State:             g.state,
	}
}
