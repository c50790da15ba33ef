// Package mode tracks the one-way Normal to Elevated presentation switch
package mode

import "github.com/lixenwraith/gaia-snake/parameter"

// Mode is the presentation mode
type Mode uint8

const (
	Normal Mode = iota
	Elevated
)

func (m Mode) String() string {
	if m == Elevated {
		return "Elevated"
	}
	return "Normal"
}

// Controller counts collected Bonus items and elevates once at the threshold
type Controller struct {
	threshold int
	collected int
	mode      Mode
}

// NewController creates a controller; a non-positive threshold uses the default
func NewController(threshold int) Controller {
	if threshold <= 0 {
		threshold = parameter.ElevationThreshold
	}
	return Controller{threshold: threshold}
}

// Mode returns the current mode
func (c Controller) Mode() Mode {
	return c.mode
}

// Collected returns the cumulative Bonus count since the last reset
func (c Controller) Collected() int {
	return c.collected
}

// Observe records n collected Bonus items
// Reports true exactly once, on the call that crosses the threshold in Normal
func (c Controller) Observe(n int) (Controller, bool) {
	if n <= 0 {
		return c, false
	}
	c.collected += n
	if c.mode == Normal && c.collected >= c.threshold {
		c.mode = Elevated
		return c, true
	}
	return c, false
}

// Reset returns to Normal with a zero count
func (c Controller) Reset() Controller {
	return Controller{threshold: c.threshold}
}
