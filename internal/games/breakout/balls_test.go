package breakout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vovakirdan/tui-breaker/internal/core"
)

func TestBallManagerDropsLostBalls(t *testing.T) {
	m := NewBallManager()
	m.Add(NewBall(core.Vec{X: 100, Y: 100}, core.Vec{X: 0, Y: -1}, testParams(4)))
	m.Add(NewBall(core.Vec{X: 300, Y: 395}, core.Vec{X: 0, Y: 1}, testParams(4)))
	m.Add(nil)
	assert.Equal(t, 2, m.Len())

	var q core.EventQueue
	m.Update(t0, 640, 384, nil, &q)

	assert.Equal(t, 1, m.Len())
	assert.Equal(t, 1, m.Lost())
	assert.Equal(t, []core.Sound{core.SoundLoss}, q.Drain(), "losing one of several balls plays loss")
}

func TestBallManagerLastBallSilent(t *testing.T) {
	m := NewBallManager()
	m.Add(NewBall(core.Vec{X: 300, Y: 395}, core.Vec{X: 0, Y: 1}, testParams(4)))

	var q core.EventQueue
	m.Update(t0, 640, 384, nil, &q)

	assert.True(t, m.Empty())
	assert.Zero(t, q.Len())
}

func TestBallManagerLastTwoBallsSilent(t *testing.T) {
	m := NewBallManager()
	m.Add(NewBall(core.Vec{X: 100, Y: 395}, core.Vec{X: 0, Y: 1}, testParams(4)))
	m.Add(NewBall(core.Vec{X: 300, Y: 395}, core.Vec{X: 0, Y: 1}, testParams(4)))

	var q core.EventQueue
	m.Update(t0, 640, 384, nil, &q)

	assert.True(t, m.Empty())
	assert.Equal(t, 2, m.Lost())
	assert.Zero(t, q.Len(), "the session reports losing the last balls")
}

func TestBallManagerClear(t *testing.T) {
	m := NewBallManager()
	m.Add(NewBall(core.Vec{X: 300, Y: 395}, core.Vec{X: 0, Y: 1}, testParams(4)))
	m.Add(NewBall(core.Vec{X: 100, Y: 100}, core.Vec{X: 0, Y: -1}, testParams(4)))

	var q core.EventQueue
	m.Update(t0, 640, 384, nil, &q)
	m.Clear()

	assert.True(t, m.Empty())
	assert.Zero(t, m.Lost())
}
