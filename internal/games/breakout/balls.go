package breakout

import (
	"time"

	"github.com/vovakirdan/tui-breaker/internal/core"
)

// BallManager owns the live balls.
type BallManager struct {
	balls []*Ball
	lost  int
}

// NewBallManager creates an empty manager.
func NewBallManager() *BallManager {
	return &BallManager{}
}

// Add puts a ball into play.
func (m *BallManager) Add(b *Ball) {
	if b == nil {
		return
	}
	m.balls = append(m.balls, b)
}

// Balls returns the live balls.
func (m *BallManager) Balls() []*Ball {
	return m.balls
}

// Len returns the number of live balls.
func (m *BallManager) Len() int {
	return len(m.balls)
}

// Empty reports whether no ball is in play.
func (m *BallManager) Empty() bool {
	return len(m.balls) == 0
}

// Lost returns how many balls dropped since the last Clear.
func (m *BallManager) Lost() int {
	return m.lost
}

// Clear removes every ball.
func (m *BallManager) Clear() {
	m.balls = nil
	m.lost = 0
}

// Pause resets every ball's frame time.
func (m *BallManager) Pause() {
	for _, b := range m.balls {
		b.Pause()
	}
}

// Update advances every ball, resolving ball-ball contacts, and drops the
// balls that left the canvas. Each ball lost while others survive the
// frame emits SoundLoss; losing the last ones is left to the session.
func (m *BallManager) Update(now time.Time, canvasW, canvasH float64, p *Platform, sounds core.SoundSink) {
	dropped := 0
	for _, b := range m.balls {
		b.Update(now, canvasW, canvasH, p, m.balls, sounds, func() {
			dropped++
		})
	}
	m.lost += dropped

	kept := m.balls[:0]
	for _, b := range m.balls {
		if !b.Out() {
			kept = append(kept, b)
		}
	}
	clear(m.balls[len(kept):])
	m.balls = kept

	if len(kept) > 0 {
		for range dropped {
			sounds.Emit(core.SoundLoss)
		}
	}
}
