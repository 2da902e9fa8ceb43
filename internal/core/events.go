package core

// Sound is a fire-and-forget audio notification emitted by the simulation.
type Sound int

const (
	SoundBounce        Sound = iota // platform or ball-ball bounce
	SoundLevelComplete              // all bricks cleared
	SoundLifeLost                   // last ball lost or time up
	SoundLoss                       // one ball lost while others remain
)

// String returns a human-readable name for the sound.
func (s Sound) String() string {
	switch s {
	case SoundBounce:
		return "bounce"
	case SoundLevelComplete:
		return "level-complete"
	case SoundLifeLost:
		return "life-lost"
	case SoundLoss:
		return "loss"
	default:
		return "unknown"
	}
}

// SoundSink receives sound notifications.
type SoundSink interface {
	Emit(s Sound)
}

// EventQueue buffers sounds emitted during a tick until the host drains them.
type EventQueue struct {
	sounds []Sound
}

// Emit appends a sound to the queue.
func (q *EventQueue) Emit(s Sound) {
	q.sounds = append(q.sounds, s)
}

// Len returns the number of queued sounds.
func (q *EventQueue) Len() int {
	return len(q.sounds)
}

// Drain returns the queued sounds and empties the queue.
func (q *EventQueue) Drain() []Sound {
	if len(q.sounds) == 0 {
		return nil
	}
	out := q.sounds
	q.sounds = nil
	return out
}
