package store

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/gaia-snake/core"
	"github.com/lixenwraith/gaia-snake/engine"
	"github.com/lixenwraith/gaia-snake/event"
)

// RecorderBuffer is the default number of pending writes
const RecorderBuffer = 256

// writeTimeout bounds a single record write
const writeTimeout = 5 * time.Second

// Recorder persists ledger-relevant events
// HandleEvent only enqueues; a writer goroutine drains to the Store so dispatch never blocks
type Recorder struct {
	store   *Store
	records chan func(ctx context.Context) error

	wg        sync.WaitGroup
	closeOnce sync.Once
	closed    atomic.Bool

	dropped atomic.Int64
	failed  atomic.Int64
}

// NewRecorder starts the writer goroutine; a non-positive buffer uses RecorderBuffer
func NewRecorder(s *Store, buffer int) *Recorder {
	if buffer <= 0 {
		buffer = RecorderBuffer
	}
	r := &Recorder{
		store:   s,
		records: make(chan func(ctx context.Context) error, buffer),
	}
	r.wg.Add(1)
	core.Go(r.writer)
	return r
}

func (r *Recorder) writer() {
	defer r.wg.Done()
	for rec := range r.records {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		if err := rec(ctx); err != nil {
			r.failed.Add(1)
			r.store.log.WithError(err).Warn("ledger write failed")
		}
		cancel()
	}
}

// EventTypes returns the ledger-relevant events
func (r *Recorder) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventStateChanged,
		event.EventRewardClaimed,
		event.EventXPAccrued,
		event.EventGameOver,
	}
}

// HandleEvent enqueues the write for ev; drops when the buffer is full or the recorder is closed
func (r *Recorder) HandleEvent(snap engine.Snapshot, ev event.GameEvent) {
	var rec func(ctx context.Context) error

	switch p := ev.Payload.(type) {
	case event.StateChangedPayload:
		if p.To != engine.StateRunning.String() {
			return
		}
		sr := SessionRecord{Session: ev.Session, Player: snap.Player, At: ev.Timestamp}
		rec = func(ctx context.Context) error { return r.store.RecordSession(ctx, sr) }

	case event.RewardClaimedPayload:
		rr := RewardRecord{
			Session:         ev.Session,
			Player:          snap.Player,
			Tokens:          p.Tokens,
			XP:              p.XP,
			ConsecutiveWins: p.ConsecutiveWins,
			Level:           p.Level,
			Score:           p.Score,
			At:              ev.Timestamp,
		}
		rec = func(ctx context.Context) error { return r.store.RecordReward(ctx, rr) }

	case event.XPAccruedPayload:
		ir := IdleRecord{Session: ev.Session, Player: snap.Player, Amount: p.Amount, PlayTime: p.PlayTime, At: ev.Timestamp}
		rec = func(ctx context.Context) error { return r.store.RecordIdle(ctx, ir) }

	case event.GameOverPayload:
		gr := ResultRecord{
			Session: ev.Session,
			Player:  snap.Player,
			Score:   p.FinalScore,
			Level:   p.Level,
			Length:  p.Length,
			Cause:   p.Cause,
			At:      ev.Timestamp,
		}
		rec = func(ctx context.Context) error { return r.store.RecordResult(ctx, gr) }

	default:
		return
	}

	if r.closed.Load() {
		r.dropped.Add(1)
		return
	}
	select {
	case r.records <- rec:
	default:
		r.dropped.Add(1)
		r.store.log.WithField("event", ev.Type).Warn("ledger buffer full, record dropped")
	}
}

// Dropped returns the number of records discarded
func (r *Recorder) Dropped() int64 {
	return r.dropped.Load()
}

// Failed returns the number of writes that returned an error
func (r *Recorder) Failed() int64 {
	return r.failed.Load()
}

// Close stops accepting records and waits for pending writes
// Must not race with HandleEvent: stop the scheduler first
func (r *Recorder) Close() {
	r.closeOnce.Do(func() {
		r.closed.Store(true)
		close(r.records)
		r.wg.Wait()
	})
}
