package breakout

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-breaker/internal/core"
)

// BonusKind is the reward a brick holds.
type BonusKind int

const (
	BonusNone      BonusKind = iota
	BonusExtraBall           // releases an extra ball on destruction
	BonusExtraTime           // drops a pickup that adds countdown time
)

// String returns a human-readable name for the bonus.
func (k BonusKind) String() string {
	switch k {
	case BonusExtraBall:
		return "extra-ball"
	case BonusExtraTime:
		return "extra-time"
	default:
		return "none"
	}
}

// FallingBonus is a pickup descending from a destroyed brick.
type FallingBonus struct {
	pos    core.Vec
	radius float64
	speed  float64
	kind   BonusKind
	amount int // seconds granted by extra time
	active bool
	delta  core.FrameDelta
}

// NewFallingBonus creates an active pickup at pos.
func NewFallingBonus(pos core.Vec, radius, speed float64, kind BonusKind, amount int, maxDelta float64) *FallingBonus {
	return &FallingBonus{
		pos:    pos,
		radius: radius,
		speed:  speed,
		kind:   kind,
		amount: amount,
		active: true,
		delta:  core.NewFrameDelta(maxDelta),
	}
}

// Update moves the pickup down. It deactivates once fully below canvasH.
func (f *FallingBonus) Update(now time.Time, canvasH float64) {
	if !f.active {
		return
	}
	f.pos.Y += f.speed * f.delta.Tick(now) * 60
	if f.pos.Y-f.radius > canvasH {
		f.active = false
	}
}

// CheckPlatform deactivates the pickup when it touches the platform and
// applies its effect to the timer. It reports whether it was collected.
func (f *FallingBonus) CheckPlatform(p *Platform, t *Timer) bool {
	if !f.active || !core.Overlaps(f.pos, f.radius, p.Bounds()) {
		return false
	}
	f.active = false
	if f.kind == BonusExtraTime && t != nil {
		t.AddTime(f.amount)
	}
	return true
}

// Pause forgets the last frame time.
func (f *FallingBonus) Pause() {
	f.delta.Reset()
}

// Cancel removes the pickup from play without effect.
func (f *FallingBonus) Cancel() {
	f.active = false
}

// Active reports whether the pickup is still falling.
func (f *FallingBonus) Active() bool {
	return f.active
}

// Position returns the pickup centre.
func (f *FallingBonus) Position() core.Vec {
	return f.pos
}

// Radius returns the pickup radius.
func (f *FallingBonus) Radius() float64 {
	return f.radius
}

// Kind returns the bonus type.
func (f *FallingBonus) Kind() BonusKind {
	return f.kind
}

// Label returns the text drawn on the pickup.
func (f *FallingBonus) Label() string {
	return fmt.Sprintf("+%d", f.amount)
}

// SimpleRNG is a deterministic pseudo-random number generator.
// Uses a simple LCG (Linear Congruential Generator).
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// Next generates the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a random int in [0, n).
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n)) //#nosec G115 -- n is always positive
}

// Float64 returns a random float64 in [0, 1).
func (r *SimpleRNG) Float64() float64 {
	return float64(r.Next()>>11) / float64(1<<53)
}

// State returns the internal state for snapshots.
func (r *SimpleRNG) State() uint64 {
	return r.state
}
