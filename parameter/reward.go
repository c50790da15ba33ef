package parameter

// Win claims
const (
	// WinScoreThreshold is the minimum score for a valid win claim
	WinScoreThreshold = 500

	// WinTokensPerLevel and WinTokensCap bound the base payout: min(cap, level*perLevel)
	WinTokensPerLevel = 10
	WinTokensCap      = 100

	// WinMultiplierCap bounds the consecutive-win multiplier: min(wins+1, cap)
	WinMultiplierCap = 5

	// WinXPPerLevel is the XP payout per level on a claim
	WinXPPerLevel = 50
)

// Idle accrual
const (
	// IdleXPAmount is added on every idle timer fire
	IdleXPAmount = 5
)
