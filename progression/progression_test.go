package progression

import (
	"testing"
	"time"
)

func TestInterval(t *testing.T) {
	c := DefaultCurve()
	tests := []struct {
		level int
		want  time.Duration
	}{
		{0, 200 * time.Millisecond},
		{1, 200 * time.Millisecond},
		{2, 185 * time.Millisecond},
		{3, 170 * time.Millisecond},
		{10, 65 * time.Millisecond},
		{11, 50 * time.Millisecond},
		{12, 50 * time.Millisecond},
		{40, 50 * time.Millisecond},
	}
	for _, tt := range tests {
		if got := c.Interval(tt.level); got != tt.want {
			t.Errorf("Interval(%d) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

// TestScenarioA collects one Score item from a fresh state
func TestScenarioA(t *testing.T) {
	c := DefaultCurve()
	s, leveled := c.Apply(c.Initial(), 10)
	if leveled {
		t.Error("unexpected level up at score 10")
	}
	if s.Score != 10 || s.Level != 1 || s.TickInterval != 200*time.Millisecond {
		t.Errorf("state = %+v, want score 10, level 1, 200ms", s)
	}
}

// TestScenarioB reaches level 3 at score 250
func TestScenarioB(t *testing.T) {
	c := DefaultCurve()
	s, leveled := c.Apply(c.Initial(), 250)
	if !leveled {
		t.Error("expected level up")
	}
	if s.Level != 3 || s.TickInterval != 170*time.Millisecond {
		t.Errorf("state = %+v, want level 3 at 170ms", s)
	}
}

func TestLevelMonotonic(t *testing.T) {
	c := DefaultCurve()
	s := c.Initial()
	prevLevel, prevInterval := s.Level, s.TickInterval
	ups := 0
	for i := 0; i < 300; i++ {
		var leveled bool
		s, leveled = c.Apply(s, 5)
		if s.Level < prevLevel {
			t.Fatalf("level decreased %d -> %d", prevLevel, s.Level)
		}
		if s.TickInterval > prevInterval {
			t.Fatalf("interval grew %v -> %v", prevInterval, s.TickInterval)
		}
		if leveled != (s.Level > prevLevel) {
			t.Fatalf("leveled=%t but level %d -> %d", leveled, prevLevel, s.Level)
		}
		if leveled {
			ups++
		}
		if s.Level != s.Score/100+1 {
			t.Fatalf("level %d does not match score %d", s.Level, s.Score)
		}
		prevLevel, prevInterval = s.Level, s.TickInterval
	}
	// 1500 points spans levels 1 through 16
	if ups != 15 {
		t.Errorf("level ups = %d, want 15", ups)
	}
}
