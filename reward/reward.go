// Package reward computes token and XP payouts for win claims and idle accrual
package reward

import (
	"time"

	"github.com/lixenwraith/gaia-snake/parameter"
)

// Ledger is the accrued reward state; it survives resets within a play session
type Ledger struct {
	Tokens          int `json:"tokens" msgpack:"tokens"`
	XP              int `json:"xp" msgpack:"xp"`
	ConsecutiveWins int `json:"consecutive_wins" msgpack:"consecutive_wins"`
	PlayTime        int `json:"play_time" msgpack:"play_time"` // Idle timer fires
}

// Award is the payout of one accepted claim
type Award struct {
	Tokens          int
	XP              int
	ConsecutiveWins int // Count after the claim
	Multiplier      int
}

// Rules holds the payout and escalation tuning
type Rules struct {
	WinThreshold    int
	TokensPerLevel  int
	TokensCap       int
	MultiplierCap   int
	XPPerLevel      int
	IdleXP          int
	EscalationStep  int
	EscalationMax   float64
	EscalationFloor time.Duration
}

// DefaultRules returns the stock tuning
func DefaultRules() Rules {
	return Rules{
		WinThreshold:    parameter.WinScoreThreshold,
		TokensPerLevel:  parameter.WinTokensPerLevel,
		TokensCap:       parameter.WinTokensCap,
		MultiplierCap:   parameter.WinMultiplierCap,
		XPPerLevel:      parameter.WinXPPerLevel,
		IdleXP:          parameter.IdleXPAmount,
		EscalationStep:  parameter.EscalationWinsStep,
		EscalationMax:   parameter.EscalationMaxFactor,
		EscalationFloor: parameter.EscalatedMinTickInterval,
	}
}

// Eligible reports whether a claim at score would be accepted while running
func (r Rules) Eligible(score int, running bool) bool {
	return running && score >= r.WinThreshold
}

// Payout computes the award for a claim at level with wins prior consecutive wins
func (r Rules) Payout(level, wins int) Award {
	base := min(r.TokensCap, level*r.TokensPerLevel)
	mult := min(wins+1, r.MultiplierCap)
	return Award{
		Tokens:          base * mult,
		XP:              r.XPPerLevel * level,
		ConsecutiveWins: wins + 1,
		Multiplier:      mult,
	}
}

// Claim applies a win claim; ineligible claims return l unchanged and false
func (r Rules) Claim(l Ledger, level, score int, running bool) (Ledger, Award, bool) {
	if !r.Eligible(score, running) {
		return l, Award{}, false
	}
	a := r.Payout(level, l.ConsecutiveWins)
	l.Tokens += a.Tokens
	l.XP += a.XP
	l.ConsecutiveWins = a.ConsecutiveWins
	return l, a, true
}

// AccrueIdle adds the idle XP amount and one play-time unit
func (r Rules) AccrueIdle(l Ledger) Ledger {
	l.XP += r.IdleXP
	l.PlayTime++
	return l
}

// Escalation returns the interval divisor for a session starting with wins consecutive wins
// Below EscalationStep wins the divisor is 1
func (r Rules) Escalation(wins int) float64 {
	if r.EscalationStep <= 0 || wins < r.EscalationStep {
		return 1
	}
	return min(float64(wins)/float64(r.EscalationStep), r.EscalationMax)
}

// Effective divides levelInterval by factor, floored at EscalationFloor
// A factor of 1 or less leaves the level interval untouched
func (r Rules) Effective(levelInterval time.Duration, factor float64) time.Duration {
	if factor <= 1 {
		return levelInterval
	}
	d := time.Duration(float64(levelInterval) / factor)
	return max(d, r.EscalationFloor)
}
