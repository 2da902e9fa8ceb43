// Package audio plays the game's sound tokens through beep. Tones are
// synthesized, so no asset files are needed. Hosts without an audio
// device fall back to a silent player.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-breaker/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Player consumes sound tokens emitted by a session.
type Player interface {
	core.SoundSink
	Close()
}

// PlayAll emits every sound drained from a frame.
func PlayAll(p Player, sounds []core.Sound) {
	for _, s := range sounds {
		p.Emit(s)
	}
}

// NopPlayer discards every sound.
type NopPlayer struct{}

// Emit does nothing.
func (NopPlayer) Emit(core.Sound) {}

// Close does nothing.
func (NopPlayer) Close() {}

// BeepPlayer mixes synthesized tones onto the speaker.
type BeepPlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	initialized bool
}

// NewBeepPlayer creates a player at the given volume in [0, 1].
func NewBeepPlayer(volume float64) *BeepPlayer {
	return &BeepPlayer{
		mixer:  &beep.Mixer{},
		volume: core.ClampF(volume, 0, 1),
	}
}

// Initialize sets up the speaker. Calling it twice is a no-op.
func (p *BeepPlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Emit queues the tone for s. Sounds before Initialize are dropped.
func (p *BeepPlayer) Emit(s core.Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}

	streamer := soundFor(s, p.volume)
	if streamer == nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
}

// ToggleMute flips muting and reports whether sound is now on.
func (p *BeepPlayer) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	return !p.muted
}

// Close stops every queued sound.
func (p *BeepPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Open returns a beep player, or a NopPlayer and the reason when no audio
// device is available. A zero volume always yields a NopPlayer.
func Open(volume float64) (Player, error) {
	if volume <= 0 {
		return NopPlayer{}, nil
	}
	p := NewBeepPlayer(volume)
	if err := p.Initialize(); err != nil {
		return NopPlayer{}, err
	}
	return p, nil
}

// tone is one note of a sound.
type tone struct {
	wave     func(beep.SampleRate, float64) (beep.Streamer, error)
	freq     float64
	duration time.Duration
}

// sounds maps every token to its notes.
var sounds = map[core.Sound][]tone{
	core.SoundBounce: {
		{generators.SineTone, 660, 40 * time.Millisecond},
	},
	core.SoundLevelComplete: {
		{generators.SquareTone, 523.25, 90 * time.Millisecond},
		{generators.SquareTone, 659.25, 90 * time.Millisecond},
		{generators.SquareTone, 783.99, 180 * time.Millisecond},
	},
	core.SoundLifeLost: {
		{generators.SawtoothTone, 330, 150 * time.Millisecond},
		{generators.SawtoothTone, 262, 150 * time.Millisecond},
		{generators.SawtoothTone, 196, 300 * time.Millisecond},
	},
	core.SoundLoss: {
		{generators.SineTone, 220, 100 * time.Millisecond},
	},
}

// soundFor builds the streamer for s, or nil for unknown tokens.
func soundFor(s core.Sound, volume float64) beep.Streamer {
	notes, ok := sounds[s]
	if !ok {
		return nil
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		wave, err := n.wave(sampleRate, n.freq)
		if err != nil {
			continue
		}
		parts = append(parts, beep.Take(sampleRate.N(n.duration), wave))
	}
	if len(parts) == 0 {
		return nil
	}

	return newVolume(beep.Seq(parts...), volume*0.5)
}

// newVolume scales s. math.Log2(0) is -Inf, so zero volume is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
