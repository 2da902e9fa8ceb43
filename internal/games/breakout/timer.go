package breakout

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-breaker/internal/core"
)

// Highlight is the cosmetic flash shown after a timer change.
type Highlight int

const (
	HighlightNone  Highlight = iota // neutral white
	HighlightRed                    // time was subtracted
	HighlightGreen                  // time was added
)

// String returns a human-readable name for the highlight.
func (h Highlight) String() string {
	switch h {
	case HighlightRed:
		return "red"
	case HighlightGreen:
		return "green"
	default:
		return "white"
	}
}

const (
	flashTop   = 255
	flashFloor = 50
	flashStep  = 20
)

// Timer is the session countdown. It decrements once per wall-clock second
// while started and never reports negative time. onTimeUp fires at most
// once until Reset or AddTime makes time positive again.
type Timer struct {
	remaining int
	initial   int
	running   bool
	nextTick  time.Time
	fired     bool
	onTimeUp  func()

	highlight Highlight
	step      int
	reverse   bool
}

// NewTimer creates a stopped timer holding initial seconds.
func NewTimer(initial int, onTimeUp func()) *Timer {
	return &Timer{
		remaining: max(0, initial),
		initial:   max(0, initial),
		onTimeUp:  onTimeUp,
		step:      flashTop,
	}
}

// Start begins ticking from now. Starting a running timer is a no-op.
func (t *Timer) Start(now time.Time) {
	if t.running {
		return
	}
	t.running = true
	t.nextTick = now.Add(time.Second)
}

// Stop halts ticking.
func (t *Timer) Stop() {
	t.running = false
}

// Running reports whether the timer is ticking.
func (t *Timer) Running() bool {
	return t.running
}

// Poll applies every full second elapsed up to now. A tick that finds no
// time left stops the timer and fires time-up.
func (t *Timer) Poll(now time.Time) {
	for t.running && !now.Before(t.nextTick) {
		t.nextTick = t.nextTick.Add(time.Second)
		if t.remaining > 0 {
			t.remaining--
			continue
		}
		t.Stop()
		t.fire()
	}
}

// Reset restores the initial time and clears the flash.
func (t *Timer) Reset() {
	t.Stop()
	t.remaining = t.initial
	t.fired = false
	t.highlight = HighlightNone
	t.step = flashTop
	t.reverse = false
}

// Subtract removes seconds, clamping at zero. Reaching zero stops the
// timer and fires time-up immediately.
func (t *Timer) Subtract(seconds int) {
	t.remaining = max(0, t.remaining-seconds)
	t.flash(HighlightRed)

	if t.remaining == 0 {
		t.Stop()
		t.fire()
	}
}

// SubtractMinute applies the standard life-loss penalty.
func (t *Timer) SubtractMinute() {
	t.Subtract(60)
}

// AddTime adds seconds with no upper bound.
func (t *Timer) AddTime(seconds int) {
	t.remaining += seconds
	t.flash(HighlightGreen)
	if t.remaining > 0 {
		t.fired = false
	}
}

// Remaining returns the seconds left.
func (t *Timer) Remaining() int {
	return t.remaining
}

// HasRunOut reports whether no time is left.
func (t *Timer) HasRunOut() bool {
	return t.remaining <= 0
}

func (t *Timer) fire() {
	if t.fired {
		return
	}
	t.fired = true
	if t.onTimeUp != nil {
		t.onTimeUp()
	}
}

func (t *Timer) flash(h Highlight) {
	t.highlight = h
	t.step = flashTop
	t.reverse = false
}

// AdvanceFlash moves the flash animation one draw frame: the step falls to
// the floor then climbs back, ending in the neutral colour.
func (t *Timer) AdvanceFlash() {
	if t.highlight == HighlightNone {
		return
	}

	if t.reverse {
		t.step += flashStep
	} else {
		t.step -= flashStep
	}

	if t.step <= flashFloor {
		t.reverse = true
	}

	if t.reverse && t.step >= flashTop {
		t.step = flashTop
		t.highlight = HighlightNone
	}
}

// Highlight returns the current flash state.
func (t *Timer) Highlight() Highlight {
	return t.highlight
}

// Color returns the colour to draw the countdown with.
func (t *Timer) Color() core.Color {
	step := uint8(core.Clamp(t.step, 0, 255)) //#nosec G115 -- clamped to byte range
	switch t.highlight {
	case HighlightRed:
		return core.RGB(step, 50, 50)
	case HighlightGreen:
		return core.RGB(50, step, 50)
	default:
		return core.ColorWhite
	}
}

// String formats the remaining time as m:ss.
func (t *Timer) String() string {
	return fmt.Sprintf("%d:%02d", t.remaining/60, t.remaining%60)
}
