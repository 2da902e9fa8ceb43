package core

import (
	"sync"
	"time"
)

// Clock supplies wall-clock time to the simulation.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real time.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock is a Clock that only moves when told to.
// The zero value starts at the Unix epoch.
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewManualClock creates a clock frozen at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.now.IsZero() {
		c.now = time.Unix(0, 0)
	}
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.now.IsZero() {
		c.now = time.Unix(0, 0)
	}
	c.now = c.now.Add(d)
}

// FrameDelta measures elapsed time between frame updates.
// The first Tick after construction or Reset reports zero.
type FrameDelta struct {
	last   time.Time
	ticked bool
	max    float64
}

// NewFrameDelta creates a delta tracker capping each step at maxSeconds.
// A non-positive cap disables clamping.
func NewFrameDelta(maxSeconds float64) FrameDelta {
	return FrameDelta{max: maxSeconds}
}

// Tick records now and returns seconds elapsed since the previous Tick.
func (d *FrameDelta) Tick(now time.Time) float64 {
	if !d.ticked {
		d.last = now
		d.ticked = true
		return 0
	}

	dt := now.Sub(d.last).Seconds()
	d.last = now
	if dt < 0 {
		return 0
	}
	if d.max > 0 && dt > d.max {
		return d.max
	}
	return dt
}

// Reset forgets the last tick so the next Tick reports zero.
func (d *FrameDelta) Reset() {
	d.ticked = false
	d.last = time.Time{}
}

// Ticked reports whether a tick has been recorded since the last Reset.
func (d *FrameDelta) Ticked() bool {
	return d.ticked
}
