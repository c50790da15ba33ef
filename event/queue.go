package event

import (
	"sync"

	"github.com/lixenwraith/gaia-snake/parameter"
)

// EventQueue is a bounded FIFO of game events between one session and the scheduler
// The session pushes while holding its own lock; the scheduler drains after each tick
//
// Overflow: the oldest event is discarded and counted
type EventQueue struct {
	mu      sync.Mutex
	ring    [parameter.EventQueueSize]GameEvent
	start   int // index of the oldest pending event
	n       int // pending count
	dropped uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends ev, evicting the oldest pending event when full
func (eq *EventQueue) Push(ev GameEvent) {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if eq.n == len(eq.ring) {
		eq.ring[eq.start] = GameEvent{}
		eq.start = (eq.start + 1) % len(eq.ring)
		eq.n--
		eq.dropped++
	}
	eq.ring[(eq.start+eq.n)%len(eq.ring)] = ev
	eq.n++
}

// Consume returns all pending events in push order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if eq.n == 0 {
		return nil
	}
	out := make([]GameEvent, eq.n)
	for i := range out {
		idx := (eq.start + i) % len(eq.ring)
		out[i] = eq.ring[idx]
		eq.ring[idx] = GameEvent{} // release payloads
	}
	eq.start, eq.n = 0, 0
	return out
}

// Len returns the pending event count
func (eq *EventQueue) Len() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return eq.n
}

// Dropped returns how many events overflow discarded
func (eq *EventQueue) Dropped() uint64 {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return eq.dropped
}
