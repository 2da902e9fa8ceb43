package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breaker/internal/audio"
	"github.com/vovakirdan/tui-breaker/internal/core"
	"github.com/vovakirdan/tui-breaker/internal/platform/recorder"
	"github.com/vovakirdan/tui-breaker/internal/registry"
	"github.com/vovakirdan/tui-breaker/internal/storage"
)

// Terminal cell size in canvas pixels. Cells are twice as tall as wide.
const (
	cellW    = 8.0
	cellH    = 16.0
	helpRows = 1
)

// holdWindow keeps a direction active after its last key press.
// Terminals send no key-up events, so auto-repeat keeps it alive.
const holdWindow = 250 * time.Millisecond

// modelGen hands out tick generations.
var modelGen atomic.Uint64

// muter is implemented by players that can be silenced.
type muter interface {
	ToggleMute() bool
}

// configReporter is implemented by games that can fall back to defaults
// when their config or levels fail to load.
type configReporter interface {
	ConfigError() error
}

// configError returns the load error of games that report one.
func configError(g registry.Game) error {
	if r, ok := g.(configReporter); ok {
		return r.ConfigError()
	}
	return nil
}

// HostConfig holds the terminal size and loop settings for a model.
type HostConfig struct {
	Width  int
	Height int
	FPS    int
	Seed   int64 // 0 means time-based
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	styles   styleCache
	recorder *recorder.Recorder
	player   audio.Player
	keys     *KeyMapper
	help     help.Model

	config core.RuntimeConfig
	gen    uint64

	input     core.InputFrame
	direction core.Direction
	holdUntil time.Time

	gameState core.GameState

	muted      bool
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, player audio.Player, hc HostConfig) Model {
	// Use time-based seed if not specified
	if hc.Seed == 0 {
		hc.Seed = time.Now().UnixNano()
	}
	if hc.FPS <= 0 {
		hc.FPS = 60
	}
	if player == nil {
		player = audio.NopPlayer{}
	}

	rows := max(1, hc.Height-helpRows)
	screen := core.NewScreen(hc.Width, rows)
	screen.SetScale(cellW, cellH)

	h := help.New()
	h.Width = hc.Width

	return Model{
		game:     game,
		screen:   screen,
		styles:   styleCache{},
		recorder: recorder.New(store, game),
		player:   player,
		keys:     NewKeyMapper(),
		help:     h,
		config:   canvasConfig(hc.Width, hc.Height, hc.FPS, hc.Seed),
		gen:      modelGen.Add(1),
		input:    core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate, false, m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if cmd, ok := MapMouse(msg, cellW); ok {
			m.input.Push(cmd.Kind, cmd.X)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick(msg.Time)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKeyToFrame(msg, &m.input) {
	case KeyQuit:
		//nolint:errcheck // Best-effort save, the program is exiting
		m.recorder.Abandon(time.Now())
		m.quitting = true
		return m, tea.Quit

	case KeyBack:
		//nolint:errcheck // Best-effort save, the program is exiting
		m.recorder.Abandon(time.Now())
		m.backToMenu = true
		return m, tea.Quit

	case KeyDirection:
		m.direction = m.input.Direction
		m.holdUntil = time.Now().Add(holdWindow)

	case KeyMute:
		if mu, ok := m.player.(muter); ok {
			m.muted = mu.ToggleMute()
		}

	case KeyScreenshot:
		m.saveScreenshot()
	}

	return m, nil
}

// handleResize rebuilds the canvas. The run restarts at the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	rows := max(1, msg.Height-helpRows)
	if msg.Width == m.screen.Width() && rows == m.screen.Height() {
		return m, nil
	}

	//nolint:errcheck // Best-effort save, the run restarts anyway
	m.recorder.Abandon(time.Now())
	m.screen.Resize(msg.Width, rows)
	m.help.Width = msg.Width
	m.config = canvasConfig(msg.Width, msg.Height, m.config.TickRate, m.config.Seed)
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.recorder.Restart()

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.direction != core.DirNone && now.After(m.holdUntil) {
		m.direction = core.DirNone
		m.input.SetDirection(core.DirNone)
	}

	result := m.game.Step(m.input)
	m.input.Clear()
	audio.PlayAll(m.player, result.Sounds)

	m.gameState = result.State

	//nolint:errcheck // Best-effort save, game continues regardless
	m.recorder.Observe(result.State, now)

	return m, tickCmd(m.config.TickRate, m.gameState.Running, m.gen)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".breaker", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)

	footer := m.help.View(m.keys.Keys())
	if m.muted {
		footer += "  [muted]"
	}
	return renderScreen(m.screen, m.styles) + "\n" + helpStyle.Render(footer)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for one game. It reports whether the
// player asked to go back to the menu.
func Run(game registry.Game, store *storage.Store, player audio.Player, hc HostConfig) (bool, error) {
	model := NewModel(game, store, player, hc)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(Model)
	return ok && m.BackToMenu(), nil
}
