package state

import "sync/atomic"

// Clock is a monotonically increasing revision counter. Every scene mutation
// ticks it so renderers and viewers can tell when a frame is stale.
type Clock struct {
	counter atomic.Uint64
}

// Tick advances the clock and returns the new revision.
func (c *Clock) Tick() uint64 {
	return c.counter.Add(1)
}

// Now returns the current revision without advancing it.
func (c *Clock) Now() uint64 {
	return c.counter.Load()
}
