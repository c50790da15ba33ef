package parameter

import "time"

// Progression curve
const (
	// ScorePerLevel is the score span of one level: level = score/ScorePerLevel + 1
	ScorePerLevel = 100

	// BaseTickInterval is the level 1 tick period
	BaseTickInterval = 200 * time.Millisecond

	// TickIntervalDecrement is subtracted per level above 1
	TickIntervalDecrement = 15 * time.Millisecond

	// MinTickInterval is the floor of the level curve
	MinTickInterval = 50 * time.Millisecond
)

// Repeated-win escalation
const (
	// EscalationWinsStep is the number of consecutive wins per escalation unit
	EscalationWinsStep = 5

	// EscalationMaxFactor caps the start-of-session interval divisor
	EscalationMaxFactor = 3.0

	// EscalatedMinTickInterval floors the escalated interval
	EscalatedMinTickInterval = 30 * time.Millisecond
)
