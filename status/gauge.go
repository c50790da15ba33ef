package status

import (
	"sync/atomic"
	"time"
)

// Gauge holds the latest duration reading, e.g. the effective tick interval
// Zero value is ready to use
type Gauge struct {
	ns atomic.Int64
}

func (g *Gauge) Set(d time.Duration) { g.ns.Store(int64(d)) }

func (g *Gauge) Get() time.Duration { return time.Duration(g.ns.Load()) }
