// Package progress defines the advisory progress feedback interface used by
// the loader and the matrix engine. Implementations render UI (the CLI wires
// a terminal progress bar); the core packages only emit counts and never
// depend on how they are displayed. Progress is advisory: dropping every
// callback must not change results.
package progress

import "sync/atomic"

// Observer receives progress notifications for a single phase of work.
// Start is called once before any Increment; a negative total means the
// amount of work is not known up front.
type Observer interface {
	Start(total int64)
	Increment(n int64)
	Finish()
}

// Nop is an Observer that discards all notifications.
type Nop struct{}

func (Nop) Start(int64)     {}
func (Nop) Increment(int64) {}
func (Nop) Finish()         {}

// Counter is an Observer that tallies notifications. Safe for concurrent
// use so it can observe the parallel matrix computation in tests.
type Counter struct {
	total      atomic.Int64
	increments atomic.Int64
	finished   atomic.Bool
}

func (c *Counter) Start(total int64) { c.total.Store(total) }
func (c *Counter) Increment(n int64) { c.increments.Add(n) }
func (c *Counter) Finish()           { c.finished.Store(true) }

// Total reports the value passed to Start.
func (c *Counter) Total() int64 { return c.total.Load() }

// Increments reports the sum of all Increment calls.
func (c *Counter) Increments() int64 { return c.increments.Load() }

// Finished reports whether Finish has been called.
func (c *Counter) Finished() bool { return c.finished.Load() }
