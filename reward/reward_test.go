package reward

import (
	"testing"
	"time"
)

// TestScenarioC claims at level 4 with two prior wins
func TestScenarioC(t *testing.T) {
	r := DefaultRules()
	l := Ledger{ConsecutiveWins: 2}

	l, a, ok := r.Claim(l, 4, 520, true)
	if !ok {
		t.Fatal("eligible claim rejected")
	}
	if a.Tokens != 120 || a.XP != 200 || a.ConsecutiveWins != 3 {
		t.Errorf("award = %+v, want 120 tokens, 200 xp, 3 wins", a)
	}
	if l.Tokens != 120 || l.XP != 200 || l.ConsecutiveWins != 3 {
		t.Errorf("ledger = %+v", l)
	}
}

func TestClaimRejected(t *testing.T) {
	r := DefaultRules()
	start := Ledger{Tokens: 7, XP: 9, ConsecutiveWins: 1}
	tests := []struct {
		name    string
		score   int
		running bool
	}{
		{"below threshold", 499, true},
		{"not running", 900, false},
		{"neither", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, _, ok := r.Claim(start, 5, tt.score, tt.running)
			if ok {
				t.Error("claim accepted")
			}
			if l != start {
				t.Errorf("ledger changed: %+v", l)
			}
		})
	}
}

// TestPayoutDeterministic checks the closed form over a grid of inputs
func TestPayoutDeterministic(t *testing.T) {
	r := DefaultRules()
	for level := 1; level <= 15; level++ {
		for wins := 0; wins <= 8; wins++ {
			a := r.Payout(level, wins)
			want := min(100, level*10) * min(wins+1, 5)
			if a.Tokens != want {
				t.Errorf("Payout(%d, %d).Tokens = %d, want %d", level, wins, a.Tokens, want)
			}
			if a.XP != 50*level {
				t.Errorf("Payout(%d, %d).XP = %d, want %d", level, wins, a.XP, 50*level)
			}
			if b := r.Payout(level, wins); b != a {
				t.Errorf("Payout(%d, %d) not repeatable: %+v vs %+v", level, wins, a, b)
			}
		}
	}
}

func TestEscalation(t *testing.T) {
	r := DefaultRules()
	tests := []struct {
		wins int
		want float64
	}{
		{0, 1},
		{4, 1},
		{5, 1},
		{7, 1.4},
		{10, 2},
		{15, 3},
		{40, 3},
	}
	for _, tt := range tests {
		if got := r.Escalation(tt.wins); got != tt.want {
			t.Errorf("Escalation(%d) = %v, want %v", tt.wins, got, tt.want)
		}
	}
}

// TestScenarioD halves the opening interval at ten wins
func TestScenarioD(t *testing.T) {
	r := DefaultRules()
	factor := r.Escalation(10)
	if got := r.Effective(200*time.Millisecond, factor); got != 100*time.Millisecond {
		t.Errorf("effective interval = %v, want 100ms", got)
	}
}

func TestEffectiveFloor(t *testing.T) {
	r := DefaultRules()
	if got := r.Effective(50*time.Millisecond, 3); got != 30*time.Millisecond {
		t.Errorf("Effective(50ms, 3) = %v, want 30ms", got)
	}
	if got := r.Effective(50*time.Millisecond, 1); got != 50*time.Millisecond {
		t.Errorf("Effective(50ms, 1) = %v, want 50ms", got)
	}
}

func TestAccrueIdle(t *testing.T) {
	r := DefaultRules()
	l := r.AccrueIdle(r.AccrueIdle(Ledger{XP: 10}))
	if l.XP != 20 || l.PlayTime != 2 {
		t.Errorf("ledger = %+v, want xp 20, play time 2", l)
	}
}
