// Package recorder turns the step results of a running game into run
// history rows. Both hosts share it so a run is saved the same way
// whether it was played in a terminal or a window.
package recorder

import (
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-breaker/internal/core"
	"github.com/vovakirdan/tui-breaker/internal/games/breakout"
	"github.com/vovakirdan/tui-breaker/internal/registry"
	"github.com/vovakirdan/tui-breaker/internal/storage"
)

// RunInfo is implemented by games that can be recorded as runs.
type RunInfo interface {
	SessionID() uuid.UUID
	LevelsCleared() int
	Difficulty() int
}

// Recorder tracks one game and saves each finished run exactly once.
// A nil store makes it track without saving.
type Recorder struct {
	store     *storage.Store
	game      registry.Game
	last      core.GameState
	startedAt time.Time
	saved     bool
}

// New creates a recorder for the game.
func New(store *storage.Store, game registry.Game) *Recorder {
	return &Recorder{store: store, game: game}
}

// Observe is called with the state after every step. It saves the run
// when the game reports it finished.
func (r *Recorder) Observe(state core.GameState, now time.Time) error {
	if r.saved && !state.GameOver {
		// A new run started after the last one ended
		r.saved = false
		r.startedAt = time.Time{}
	}
	if state.Running && r.startedAt.IsZero() {
		r.startedAt = now
	}
	r.last = state

	if !state.GameOver || r.saved {
		return nil
	}
	outcome := storage.OutcomeGameOver
	if state.Phase == breakout.StateGameWon.String() {
		outcome = storage.OutcomeGameWon
	}
	return r.save(outcome, now)
}

// Abandon saves a run cut short by the player. Runs without points are
// not worth a row.
func (r *Recorder) Abandon(now time.Time) error {
	if r.saved || r.last.GameOver || r.last.Score == 0 {
		return nil
	}
	return r.save(storage.OutcomeAbandoned, now)
}

// Restart forgets the current run, for hosts that reset the game.
func (r *Recorder) Restart() {
	r.last = core.GameState{}
	r.startedAt = time.Time{}
	r.saved = false
}

// StartedAt returns when the current run first ran, or zero.
func (r *Recorder) StartedAt() time.Time {
	return r.startedAt
}

func (r *Recorder) save(outcome storage.Outcome, now time.Time) error {
	if r.startedAt.IsZero() {
		return nil
	}
	r.saved = true

	info, ok := r.game.(RunInfo)
	if r.store == nil || !ok {
		return nil
	}

	_, err := r.store.SaveRun(storage.Run{
		SessionID:     info.SessionID().String(),
		Mode:          r.game.ID(),
		Score:         r.last.Score,
		LevelsCleared: info.LevelsCleared(),
		Difficulty:    info.Difficulty(),
		Outcome:       outcome,
		Duration:      int(now.Sub(r.startedAt).Seconds()),
	})
	return err
}
