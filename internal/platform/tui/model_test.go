package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breaker/internal/core"
	"github.com/vovakirdan/tui-breaker/internal/games/breakout"
	"github.com/vovakirdan/tui-breaker/internal/storage"
)

func newTestModel(t *testing.T, store *storage.Store) (Model, *breakout.Session) {
	t.Helper()
	game := breakout.NewSession(breakout.ModeCycling, breakout.Options{})
	m := NewModel(game, store, nil, HostConfig{Width: 80, Height: 25, FPS: 60, Seed: 42})
	m.Init()
	return m, game
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func TestCanvasConfigReservesHelpRow(t *testing.T) {
	cfg := canvasConfig(80, 25, 60, 1)
	if cfg.CanvasW != 640 || cfg.CanvasH != 384 {
		t.Errorf("canvas = %vx%v, expected 640x384", cfg.CanvasW, cfg.CanvasH)
	}
	if !cfg.HasCanvas() {
		t.Error("config should carry a canvas")
	}
}

func TestModelStartsPaused(t *testing.T) {
	m, game := newTestModel(t, nil)

	m, cmd := update(t, m, TickMsg{Time: time.Now(), Gen: m.gen})
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	if m.gameState.Running {
		t.Error("game should wait for the player")
	}
	if game.Phase() != breakout.StatePaused {
		t.Errorf("phase = %v, expected PAUSED", game.Phase())
	}
}

func TestModelToggleStartsGame(t *testing.T) {
	m, game := newTestModel(t, nil)

	m, cmd := update(t, m, runeKey(' '))
	if cmd != nil {
		t.Error("key presses must not schedule ticks")
	}

	m, _ = update(t, m, TickMsg{Time: time.Now(), Gen: m.gen})
	if game.Phase() != breakout.StateRunning {
		t.Errorf("phase = %v, expected RUNNING", game.Phase())
	}
	if !m.gameState.Running || m.recorder.StartedAt().IsZero() {
		t.Error("model should record the run start")
	}
}

func TestModelDropsStaleTick(t *testing.T) {
	m, _ := newTestModel(t, nil)

	_, cmd := update(t, m, TickMsg{Time: time.Now(), Gen: m.gen + 1000})
	if cmd != nil {
		t.Error("a tick from another model must not schedule a new one")
	}
}

func TestModelDirectionHoldExpires(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.direction != core.DirLeft {
		t.Fatalf("direction = %v, expected left", m.direction)
	}

	m, _ = update(t, m, TickMsg{Time: time.Now(), Gen: m.gen})
	if m.direction != core.DirLeft {
		t.Error("direction should survive within the hold window")
	}

	m, _ = update(t, m, TickMsg{Time: time.Now().Add(time.Second), Gen: m.gen})
	if m.direction != core.DirNone {
		t.Error("direction should be released after the hold window")
	}
}

func TestModelMouseTapStartsGame(t *testing.T) {
	m, game := newTestModel(t, nil)

	m, _ = update(t, m, tea.MouseMsg{X: 40, Y: 20, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	update(t, m, TickMsg{Time: time.Now(), Gen: m.gen})

	if game.Phase() != breakout.StateRunning {
		t.Errorf("tap should resume, phase = %v", game.Phase())
	}
}

func TestModelBackAndQuit(t *testing.T) {
	m, _ := newTestModel(t, nil)

	back, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !back.BackToMenu() || cmd == nil {
		t.Error("esc should leave to the menu")
	}
	if back.View() != "" {
		t.Error("view should be empty after leaving")
	}

	quit, _ := update(t, m, runeKey('q'))
	if !quit.IsQuitting() {
		t.Error("q should quit")
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t, nil)

	view := m.View()
	if !strings.Contains(view, "BREAKER") {
		t.Errorf("view should show the start overlay, got:\n%s", view)
	}
	if !strings.Contains(view, "quit") {
		t.Error("view should end with the help line")
	}
}

func TestModelQuitSavesAbandonedRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	m, game := newTestModel(t, store)
	m.recorder.Observe(core.GameState{Running: true, Score: 120}, time.Now().Add(-90*time.Second))

	update(t, m, runeKey('q'))

	run, err := store.RunBySession(game.SessionID().String())
	if err != nil {
		t.Fatalf("RunBySession failed: %v", err)
	}
	if run == nil {
		t.Fatal("run should be recorded on quit")
	}
	if run.Score != 120 || run.Outcome != storage.OutcomeAbandoned {
		t.Errorf("unexpected run %+v", run)
	}
	if run.Mode != "breakout" {
		t.Errorf("mode = %q, expected breakout", run.Mode)
	}
}

func TestConfigErrorReported(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yaml")
	game := breakout.NewSession(breakout.ModeCycling, breakout.Options{ConfigPath: missing})
	m := NewModel(game, nil, nil, HostConfig{Width: 80, Height: 25, Seed: 1})
	m.Init()

	if err := configError(game); err == nil {
		t.Error("a missing config file should be reported")
	}

	good, _ := newTestModel(t, nil)
	if err := configError(good.game); err != nil {
		t.Errorf("default config reported %v", err)
	}
}
