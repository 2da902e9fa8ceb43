// Package gui provides the ebiten host for the breaker: a resizable window
// with a real raster canvas, keyboard, mouse and touch input.
package gui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-breaker/internal/audio"
	"github.com/vovakirdan/tui-breaker/internal/core"
	"github.com/vovakirdan/tui-breaker/internal/platform/recorder"
	"github.com/vovakirdan/tui-breaker/internal/registry"
	"github.com/vovakirdan/tui-breaker/internal/storage"
)

// Options configures the window.
type Options struct {
	Width  int
	Height int
	FPS    int
	Seed   int64 // 0 means time-based
}

// DefaultOptions returns a config with sensible defaults.
func DefaultOptions() Options {
	return Options{Width: 800, Height: 600, FPS: 60}
}

// muter is implemented by players that can be silenced.
type muter interface {
	ToggleMute() bool
}

// configReporter is implemented by games that can fall back to defaults
// when their config or levels fail to load.
type configReporter interface {
	ConfigError() error
}

func configError(g registry.Game) error {
	if r, ok := g.(configReporter); ok {
		return r.ConfigError()
	}
	return nil
}

// Host implements ebiten.Game around one session.
type Host struct {
	game     registry.Game
	player   audio.Player
	recorder *recorder.Recorder
	logger   *log.Logger
	tracker  *inputTracker
	canvas   *imageCanvas

	config        core.RuntimeConfig
	width, height int
	muted         bool
}

// NewHost creates a host. The session is reset on the first update, once
// the window size is known.
func NewHost(game registry.Game, store *storage.Store, player audio.Player, logger *log.Logger, opts Options) *Host {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if player == nil {
		player = audio.NopPlayer{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Host{
		game:     game,
		player:   player,
		recorder: recorder.New(store, game),
		logger:   logger,
		tracker:  newInputTracker(),
		canvas:   newImageCanvas(),
		config: core.RuntimeConfig{
			TickRate: opts.FPS,
			Seed:     opts.Seed,
			Clock:    core.SystemClock{},
		},
	}
}

// Update advances the session by one frame.
func (h *Host) Update() error {
	now := time.Now()

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		h.abandon(now)
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		if mu, ok := h.player.(muter); ok {
			h.muted = mu.ToggleMute()
		}
	}

	if h.resized() {
		// The run restarts at the new size
		h.abandon(now)
		h.config.CanvasW = float64(h.width)
		h.config.CanvasH = float64(h.height)
		h.game.Reset(h.config)
		h.recorder.Restart()
		h.logger.Debug("canvas reset", "width", h.width, "height", h.height)
		if err := configError(h.game); err != nil {
			h.logger.Warn("game fell back to defaults", "error", err)
		}
	}

	result := h.game.Step(h.tracker.frame(pollDevices()))
	audio.PlayAll(h.player, result.Sounds)

	if err := h.recorder.Observe(result.State, now); err != nil {
		h.logger.Warn("could not save run", "error", err)
	}
	return nil
}

func (h *Host) resized() bool {
	return h.width > 0 && h.height > 0 &&
		(float64(h.width) != h.config.CanvasW || float64(h.height) != h.config.CanvasH)
}

func (h *Host) abandon(now time.Time) {
	if err := h.recorder.Abandon(now); err != nil {
		h.logger.Warn("could not save run", "error", err)
	}
}

// Draw renders the session onto the window.
func (h *Host) Draw(screen *ebiten.Image) {
	h.canvas.dst = screen
	h.game.Render(h.canvas)
	if h.muted {
		h.canvas.Text(float64(h.width)-8, float64(h.height)-glyphH-4, "muted", core.ColorGray, core.AlignRight)
	}
}

// Layout makes the canvas follow the window size one to one.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	h.width, h.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed.
func Run(game registry.Game, store *storage.Store, player audio.Player, logger *log.Logger, opts Options) error {
	host := NewHost(game, store, player, logger, opts)

	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(host.config.TickRate)

	host.logger.Info("window opened", "mode", game.ID(), "width", opts.Width, "height", opts.Height)
	if err := ebiten.RunGame(host); err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
