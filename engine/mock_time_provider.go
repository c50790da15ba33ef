package engine

import (
	"sync"
	"time"
)

// MockClock provides a controllable time source for testing
// Timers fire only when Advance moves past their deadline
type MockClock struct {
	mu     sync.Mutex
	cond   *sync.Cond
	now    time.Time
	timers []*mockTimer
}

// NewMockClock creates a new mock clock at the given start time
func NewMockClock(start time.Time) *MockClock {
	m := &MockClock{now: start}
	m.cond = sync.NewCond(&m.mu)
	return m
}

// Now returns the current mocked time
func (m *MockClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// NewTimer creates an armed timer due d after the current mocked time
func (m *MockClock) NewTimer(d time.Duration) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := &mockTimer{clock: m, c: make(chan time.Time, 1)}
	m.timers = append(m.timers, t)
	t.arm(d)
	return t
}

// Advance moves time forward by d, firing due timers in deadline order
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	target := m.now.Add(d)
	for {
		var next *mockTimer
		for _, t := range m.timers {
			if t.active && !t.deadline.After(target) && (next == nil || t.deadline.Before(next.deadline)) {
				next = t
			}
		}
		if next == nil {
			break
		}
		m.now = next.deadline
		next.fire()
	}
	m.now = target
	m.cond.Broadcast()
}

// Active returns the number of armed timers
func (m *MockClock) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active()
}

func (m *MockClock) active() int {
	n := 0
	for _, t := range m.timers {
		if t.active {
			n++
		}
	}
	return n
}

// BlockUntil waits until exactly n timers are armed
func (m *MockClock) BlockUntil(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for m.active() != n {
		m.cond.Wait()
	}
}

type mockTimer struct {
	clock    *MockClock
	c        chan time.Time
	deadline time.Time
	active   bool
}

// arm and fire run under clock.mu
func (t *mockTimer) arm(d time.Duration) {
	t.drain()
	t.deadline = t.clock.now.Add(d)
	t.active = true
	if d <= 0 {
		t.fire()
	}
	t.clock.cond.Broadcast()
}

func (t *mockTimer) fire() {
	t.active = false
	select {
	case t.c <- t.deadline:
	default:
	}
}

// drain discards an undelivered fire so Stop and Reset never leave a stale value
func (t *mockTimer) drain() {
	select {
	case <-t.c:
	default:
	}
}

func (t *mockTimer) C() <-chan time.Time {
	return t.c
}

func (t *mockTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()

	was := t.active
	t.active = false
	t.drain()
	t.clock.cond.Broadcast()
	return was
}

func (t *mockTimer) Reset(d time.Duration) bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()

	was := t.active
	t.arm(d)
	return was
}
