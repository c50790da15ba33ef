package event

import (
	"sync"
	"testing"
	"time"

	"github.com/lixenwraith/gaia-snake/parameter"
)

// TestEventQueueBasic tests basic push and consume operations
func TestEventQueueBasic(t *testing.T) {
	eq := NewEventQueue()

	eq.Push(GameEvent{Type: EventScoreChanged, Payload: ScoreChangedPayload{Score: 10, Delta: 10, Kind: KindScore}, Tick: 1, Timestamp: time.Now()})
	eq.Push(GameEvent{Type: EventLevelUp, Payload: LevelUpPayload{Level: 2}, Tick: 2, Timestamp: time.Now()})
	eq.Push(GameEvent{Type: EventGameOver, Payload: GameOverPayload{FinalScore: 110, Cause: CauseWall}, Tick: 3, Timestamp: time.Now()})

	events := eq.Consume()
	if len(events) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(events))
	}

	want := []EventType{EventScoreChanged, EventLevelUp, EventGameOver}
	for i, ev := range events {
		if ev.Type != want[i] {
			t.Errorf("Event %d type = %v, want %v", i, ev.Type, want[i])
		}
		if ev.Tick != uint64(i+1) {
			t.Errorf("Event %d tick = %d, want %d", i, ev.Tick, i+1)
		}
	}

	if p, ok := events[2].Payload.(GameOverPayload); !ok || p.FinalScore != 110 {
		t.Errorf("GameOver payload = %#v", events[2].Payload)
	}

	if again := eq.Consume(); len(again) != 0 {
		t.Errorf("Expected 0 events on second consume, got %d", len(again))
	}
}

// TestEventQueueOverflow verifies oldest events are discarded when full
func TestEventQueueOverflow(t *testing.T) {
	eq := NewEventQueue()
	extra := 10
	total := parameter.EventQueueSize + extra

	for i := 0; i < total; i++ {
		eq.Push(GameEvent{Type: EventScoreChanged, Tick: uint64(i)})
	}

	if got := eq.Len(); got != parameter.EventQueueSize {
		t.Errorf("Len() = %d, want %d", got, parameter.EventQueueSize)
	}

	events := eq.Consume()
	if len(events) != parameter.EventQueueSize {
		t.Fatalf("Expected %d events, got %d", parameter.EventQueueSize, len(events))
	}
	if events[0].Tick != uint64(extra) {
		t.Errorf("First surviving tick = %d, want %d", events[0].Tick, extra)
	}
	if events[len(events)-1].Tick != uint64(total-1) {
		t.Errorf("Last tick = %d, want %d", events[len(events)-1].Tick, total-1)
	}
	if eq.Dropped() != uint64(extra) {
		t.Errorf("Dropped() = %d, want %d", eq.Dropped(), extra)
	}
}

// TestEventQueueConcurrent tests concurrent push operations from multiple goroutines
func TestEventQueueConcurrent(t *testing.T) {
	eq := NewEventQueue()
	numGoroutines := 8
	eventsPerGoroutine := 16

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < eventsPerGoroutine; j++ {
				eq.Push(GameEvent{Type: EventXPAccrued, Tick: uint64(id*100 + j)})
			}
		}(i)
	}
	wg.Wait()

	events := eq.Consume()
	if len(events) != numGoroutines*eventsPerGoroutine {
		t.Fatalf("Expected %d events, got %d", numGoroutines*eventsPerGoroutine, len(events))
	}

	seen := make(map[uint64]bool, len(events))
	for _, ev := range events {
		if seen[ev.Tick] {
			t.Errorf("Duplicate event tick %d", ev.Tick)
		}
		seen[ev.Tick] = true
	}
}

func TestEventTypeString(t *testing.T) {
	tests := []struct {
		t    EventType
		want string
	}{
		{EventScoreChanged, "ScoreChanged"},
		{EventModeElevated, "ModeElevated"},
		{EventStateChanged, "StateChanged"},
		{EventType(999), "Unknown"},
		{EventType(-1), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.t.String(); got != tt.want {
			t.Errorf("EventType(%d).String() = %q, want %q", tt.t, got, tt.want)
		}
	}
}

func TestEventQueueWrapsAfterConsume(t *testing.T) {
	eq := NewEventQueue()
	for i := 0; i < 3; i++ {
		eq.Push(GameEvent{Type: EventScoreChanged, Tick: uint64(i)})
	}
	eq.Consume()

	for i := 0; i < parameter.EventQueueSize; i++ {
		eq.Push(GameEvent{Type: EventScoreChanged, Tick: uint64(100 + i)})
	}
	events := eq.Consume()
	if len(events) != parameter.EventQueueSize {
		t.Fatalf("Expected %d events, got %d", parameter.EventQueueSize, len(events))
	}
	for i, ev := range events {
		if ev.Tick != uint64(100+i) {
			t.Fatalf("Event %d tick = %d, want %d", i, ev.Tick, 100+i)
		}
	}
	if eq.Dropped() != 0 {
		t.Errorf("Dropped() = %d, want 0", eq.Dropped())
	}
}
