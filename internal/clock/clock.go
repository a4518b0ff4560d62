package clock

import (
	"sync/atomic"

	"github.com/roach88/tickid/pkg/tick"
)

// Clock is a monotonic logical clock measured in ticks.
//
// Thread-safety: Clock is safe for concurrent use (atomic operations).
// A simulation loop normally has a single writer, but observers may call Now
// from other goroutines.
type Clock struct {
	now atomic.Uint32
}

// New creates a clock at tick 0.
func New() *Clock {
	return &Clock{}
}

// NewAt creates a clock at start.
// Used for replay to resume from a known tick.
func NewAt(start tick.ID) *Clock {
	c := &Clock{}
	c.now.Store(start.Value())
	return c
}

// Now returns the current tick without moving the clock.
func (c *Clock) Now() tick.ID {
	return tick.New(c.now.Load())
}

// Step advances the clock by one tick and returns the new tick.
func (c *Clock) Step() tick.ID {
	return c.Advance(1)
}

// Advance moves the clock forward by n ticks and returns the new tick.
//
// Panics with a *tick.RangeError if the clock would pass tick.Max; the clock
// keeps its previous tick in that case.
func (c *Clock) Advance(n uint32) tick.ID {
	return c.update(func(t *tick.ID) { t.AddAssign(n) })
}

// Rewind moves the clock back by n ticks and returns the new tick.
//
// Panics with a *tick.RangeError if the clock would go below tick.Zero; the
// clock keeps its previous tick in that case.
func (c *Clock) Rewind(n uint32) tick.ID {
	return c.update(func(t *tick.ID) { t.SubAssign(n) })
}

// Reset moves the clock to an arbitrary tick.
//
// Used for test reuse and for restarting a replay.
func (c *Clock) Reset(to tick.ID) {
	c.now.Store(to.Value())
}

// update applies fn to a copy of the current tick and publishes the result
// only if no other writer got there first.
func (c *Clock) update(fn func(*tick.ID)) tick.ID {
	for {
		old := c.now.Load()
		next := tick.New(old)
		fn(&next)
		if c.now.CompareAndSwap(old, next.Value()) {
			return next
		}
	}
}
