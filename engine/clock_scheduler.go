package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/gaia-snake/core"
	"github.com/lixenwraith/gaia-snake/event"
	"github.com/lixenwraith/gaia-snake/status"
)

// Scheduler drives a Game with two timers: the tick timer at the effective interval and the idle XP timer
// Both are armed on every entry to Running and stopped on leaving it
// Events and snapshots are delivered on the scheduler goroutine after each tick, idle payout or control change
type Scheduler struct {
	game  *Game
	clock Clock
	log   *logrus.Entry

	router *event.Router[Snapshot]
	sinks  []SnapshotSink

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	// Cached metric pointers
	statEvents   *atomic.Int64
	statArmed    *atomic.Bool
	statHandlers *atomic.Int64
}

// NewScheduler creates a scheduler for game using clock for both timers
func NewScheduler(game *Game, clock Clock, log *logrus.Entry, reg *status.Registry) *Scheduler {
	if clock == nil {
		clock = NewTimeProvider()
	}
	if log == nil {
		log = game.log
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Scheduler{
		game:         game,
		clock:        clock,
		log:          log.WithField("component", "scheduler"),
		router:       event.NewRouter[Snapshot](),
		stopChan:     make(chan struct{}),
		statEvents:   reg.Ints.Get("engine.events"),
		statArmed:    reg.Bools.Get("engine.timers_armed"),
		statHandlers: reg.Ints.Get("engine.handler_calls"),
	}
}

// RegisterEventHandler adds an event handler to router, must be called before Start()
func (s *Scheduler) RegisterEventHandler(handler EventHandler) {
	s.router.Register(handler)
}

// RegisterSnapshotSink adds a snapshot consumer, must be called before Start()
func (s *Scheduler) RegisterSnapshotSink(sink SnapshotSink) {
	s.sinks = append(s.sinks, sink)
}

// Start begins the scheduler loop
func (s *Scheduler) Start() {
	if s.running.CompareAndSwap(false, true) {
		s.wg.Add(1)
		core.Go(s.schedulerLoop)
	}
}

// Stop halts the loop and cancels both timers; safe to call more than once
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
		if s.running.Load() {
			s.wg.Wait()
		}
	})
}

func (s *Scheduler) schedulerLoop() {
	defer s.wg.Done()

	tick := s.clock.NewTimer(time.Hour)
	tick.Stop()
	idle := s.clock.NewTimer(time.Hour)
	idle.Stop()
	defer func() {
		tick.Stop()
		idle.Stop()
		s.statArmed.Store(false)
	}()

	var (
		armed bool
		epoch uint64
	)

	for first := true; ; first = false {
		var tickFired, idleFired bool

		if !first {
			var tickC, idleC <-chan time.Time
			if armed {
				tickC = tick.C()
				idleC = idle.C()
			}

			select {
			case <-s.stopChan:
				return
			case <-s.game.Changed():
			case <-tickC:
				s.game.Tick()
				tickFired = true
			case <-idleC:
				s.game.AccrueIdle()
				idleFired = true
			}
		}

		// Deliver before re-arming so a re-armed timer implies delivery finished
		s.flush()

		state, ep := s.game.Status()
		switch {
		case state != StateRunning:
			if armed {
				tick.Stop()
				idle.Stop()
				armed = false
				s.log.WithField("state", state).Debug("timers cancelled")
			}
		case !armed || ep != epoch:
			tick.Reset(s.game.EffectiveInterval())
			idle.Reset(s.game.IdleInterval())
			armed, epoch = true, ep
			s.log.WithField("epoch", ep).Debug("timers armed")
		default:
			if tickFired {
				tick.Reset(s.game.EffectiveInterval())
			}
			if idleFired {
				idle.Reset(s.game.IdleInterval())
			}
		}
		s.statArmed.Store(armed)
	}
}

// flush routes pending events and publishes the resulting snapshot
func (s *Scheduler) flush() {
	evs := s.game.Events()
	snap := s.game.Snapshot()
	if len(evs) > 0 {
		s.statEvents.Add(int64(len(evs)))
		s.statHandlers.Add(int64(s.router.Dispatch(snap, evs)))
	}
	for _, sink := range s.sinks {
		sink.PublishSnapshot(snap)
	}
}
