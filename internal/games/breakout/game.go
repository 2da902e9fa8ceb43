package breakout

import (
	"math"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/vovakirdan/tui-breaker/internal/config"
	"github.com/vovakirdan/tui-breaker/internal/core"
	"github.com/vovakirdan/tui-breaker/internal/registry"
)

// GameMode selects what happens when the level list runs out.
type GameMode int

const (
	ModeCycling  GameMode = iota // Wrap to the first level with higher difficulty
	ModeCampaign                 // Finite list, clearing the last level wins
)

// Options configures new sessions.
type Options struct {
	ConfigPath string                  // Custom config file, empty for the search order
	Preset     config.DifficultyPreset // Optional difficulty preset
	LevelsDir  string                  // Directory of level files, empty for built-ins
	StartLevel int                     // 0-based index of the first level
}

// defaultOptions are used by the registry factories and set from the CLI.
var defaultOptions Options

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	defaultOptions.ConfigPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	p := config.DifficultyPreset(preset)
	if !slices.Contains(config.Presets(), p) {
		p = ""
	}
	defaultOptions.Preset = p
}

// SetLevelsDir sets the directory custom levels are loaded from.
func SetLevelsDir(dir string) {
	defaultOptions.LevelsDir = dir
}

// SetStartLevel sets the first level index.
func SetStartLevel(index int) {
	defaultOptions.StartLevel = max(0, index)
}

// DefaultOptions returns the options the registry factories use.
func DefaultOptions() Options {
	return defaultOptions
}

// ModeForID maps a registry ID back to its mode.
func ModeForID(id string) (GameMode, bool) {
	switch id {
	case "breakout":
		return ModeCycling, true
	case "breakout_campaign":
		return ModeCampaign, true
	}
	return ModeCycling, false
}

// Session is one play session: it owns the platform, the balls, the bricks,
// the countdown and the state machine. Sessions are never shared.
type Session struct {
	id   uuid.UUID
	mode GameMode
	opts Options

	cfg     config.BreakoutConfig
	diff    *config.DifficultyManager
	loadErr error

	runtime core.RuntimeConfig
	clock   core.Clock
	rng     *SimpleRNG
	ready   bool

	levels     []Level
	levelIndex int
	difficulty int

	platform *Platform
	balls    *BallManager
	bricks   *BrickManager
	timer    *Timer

	state        State
	started      bool
	blockedUntil time.Time

	direction   core.Direction
	jumpX       float64
	jumpPending bool

	events        core.EventQueue
	score         int
	levelsCleared int
	tick          uint64
}

// New creates a cycling session with the CLI defaults.
func New() *Session {
	return NewSession(ModeCycling, defaultOptions)
}

// NewCampaign creates a finite campaign session with the CLI defaults.
func NewCampaign() *Session {
	return NewSession(ModeCampaign, defaultOptions)
}

// NewSession creates a session. It stays inert until Reset delivers a canvas.
func NewSession(mode GameMode, opts Options) *Session {
	return &Session{
		id:    uuid.New(),
		mode:  mode,
		opts:  opts,
		state: StatePaused,
	}
}

// ID returns the unique identifier for this mode.
func (s *Session) ID() string {
	if s.mode == ModeCampaign {
		return "breakout_campaign"
	}
	return "breakout"
}

// Title returns the display name for this mode.
func (s *Session) Title() string {
	if s.mode == ModeCampaign {
		return "Breakout (Campaign)"
	}
	return "Breakout"
}

// SessionID returns the unique id of this play session.
func (s *Session) SessionID() uuid.UUID {
	return s.id
}

// Mode returns the session mode.
func (s *Session) Mode() GameMode {
	return s.mode
}

// ConfigError returns the error met while loading config or levels, if
// the session fell back to defaults.
func (s *Session) ConfigError() error {
	return s.loadErr
}

// Reset delivers the canvas and seed and rebuilds the session in PAUSED.
func (s *Session) Reset(runtime core.RuntimeConfig) {
	s.runtime = runtime
	s.clock = runtime.Clock
	if s.clock == nil {
		s.clock = core.SystemClock{}
	}
	s.ready = runtime.HasCanvas()
	s.loadErr = nil

	cfg, err := config.LoadBreakout(s.opts.ConfigPath)
	if err != nil {
		s.loadErr = err
		cfg = config.DefaultBreakoutConfig()
	}
	if s.opts.Preset != "" {
		config.ApplyBreakoutPreset(&cfg, s.opts.Preset)
	}
	s.cfg = cfg
	s.diff = config.NewDifficultyManager(cfg)

	s.levels = s.loadLevels()
	s.rng = NewSimpleRNG(runtime.Seed)
	s.timer = NewTimer(cfg.Timer.InitialSeconds, s.onTimeUp)
	s.balls = NewBallManager()
	s.events = core.EventQueue{}
	s.direction = core.DirNone
	s.jumpPending = false
	s.tick = 0
	s.started = false

	if !s.ready {
		s.state = StatePaused
		return
	}

	s.platform = NewPlatform(runtime.CanvasW, runtime.CanvasH, cfg.Platform)
	s.restart()
	s.state = StatePaused
}

// loadLevels returns the level list, preferring the levels directory.
func (s *Session) loadLevels() []Level {
	lvls, err := LoadLevels(s.opts.LevelsDir)
	if err != nil {
		s.loadErr = err
	}
	return lvls
}

// restart begins a new run at the starting level and difficulty.
func (s *Session) restart() {
	s.id = uuid.New()
	s.difficulty = s.diff.Start()
	s.levelIndex = max(0, s.opts.StartLevel) % len(s.levels)
	s.score = 0
	s.levelsCleared = 0
	s.timer.Reset()
	s.platform.Recenter()
	s.initLevel()
}

// initLevel builds the bricks of the current level and serves one ball.
func (s *Session) initLevel() {
	lvl := s.levels[s.levelIndex]
	s.bricks = NewBrickManager(lvl.Grid, s.runtime.CanvasW, s.runtime.CanvasH, s.difficulty, s.cfg, s.rng)
	s.balls.Clear()
	s.balls.Add(s.serveBall())
}

// serveBall creates a ball resting on the platform, launched upward.
func (s *Session) serveBall() *Ball {
	params := ballParams(s.cfg)
	angle := s.cfg.Physics.LaunchAngle * math.Pi / 180
	sign := 1.0
	if s.rng.Intn(2) == 0 {
		sign = -1
	}
	pos := core.Vec{
		X: s.platform.CenterX(),
		Y: s.platform.Bounds().Y - params.Radius - 1,
	}
	return NewBall(pos, core.Vec{X: sign * math.Sin(angle), Y: -math.Cos(angle)}, params)
}

// Step consumes input and advances one frame.
func (s *Session) Step(in core.InputFrame) core.StepResult {
	if !s.ready {
		return core.StepResult{State: s.State()}
	}

	now := s.clock.Now()
	s.tick++

	s.applyInput(now, in)
	s.timer.Poll(now)

	if s.state == StateGameOverBlocked && !now.Before(s.blockedUntil) {
		s.state = StateGameOver
	}

	if s.state == StateRunning {
		s.update(now)
	}

	s.timer.AdvanceFlash()

	return core.StepResult{
		State:  s.State(),
		Sounds: s.events.Drain(),
	}
}

// applyInput folds queued input into the session.
func (s *Session) applyInput(now time.Time, in core.InputFrame) {
	if in.HasDirection {
		s.direction = in.Direction
	}

	for _, cmd := range in.Commands {
		switch cmd.Kind {
		case core.CmdToggle:
			if s.state == StateRunning {
				s.pause()
			} else {
				s.resume(now)
			}
		case core.CmdTap:
			if s.state == StateRunning {
				s.jump(cmd.X)
			} else {
				s.resume(now)
			}
		case core.CmdDrag:
			if s.state == StateRunning {
				s.jump(cmd.X)
			}
		}
	}
}

func (s *Session) jump(x float64) {
	s.jumpX = x
	s.jumpPending = true
}

// pause freezes the run and cancels falling pickups.
func (s *Session) pause() {
	s.state = StatePaused
	s.timer.Stop()
	s.balls.Pause()
	s.bricks.CancelBonuses()
}

// resume moves every resumable state to RUNNING.
func (s *Session) resume(now time.Time) {
	switch s.state {
	case StatePaused:
	case StateLifeLost:
		s.balls.Add(s.serveBall())
	case StateGameOver, StateGameWon:
		s.restart()
	default:
		return
	}

	s.state = StateRunning
	s.started = true
	s.timer.Start(now)
}

// update advances every entity and evaluates the level predicates.
func (s *Session) update(now time.Time) {
	w, h := s.runtime.CanvasW, s.runtime.CanvasH

	if s.jumpPending {
		s.platform.Jump(s.jumpX)
		s.jumpPending = false
	} else {
		s.platform.Move(s.direction)
	}

	s.balls.Update(now, w, h, s.platform, &s.events)

	hit := s.bricks.Update(s.balls.Balls(), s.balls.Add)
	if hit.Destroyed {
		s.score += s.cfg.Scoring.BrickPoints * hit.Brick.InitialDurability()
	}

	s.bricks.UpdateBonuses(now, s.platform, s.timer)

	if s.balls.Empty() {
		s.loseLife()
		return
	}

	if s.bricks.IsLevelCompleted() {
		s.completeLevel()
	}
}

// loseLife stops the run and applies the time penalty, which may end it.
func (s *Session) loseLife() {
	s.state = StateLifeLost
	s.timer.Stop()
	s.bricks.PauseBonuses()
	s.timer.Subtract(s.cfg.Timer.LifePenaltySeconds)

	if s.state == StateLifeLost {
		s.events.Emit(core.SoundLifeLost)
	}
}

// completeLevel advances to the next level, wrapping with higher
// difficulty in cycling mode and winning at the end of a campaign.
func (s *Session) completeLevel() {
	s.events.Emit(core.SoundLevelComplete)
	s.score += s.cfg.Scoring.LevelBonus
	s.levelsCleared++

	next := s.levelIndex + 1
	if next >= len(s.levels) {
		if s.mode == ModeCampaign {
			s.state = StateGameWon
			s.timer.Stop()
			s.balls.Pause()
			return
		}
		next = 0
		s.difficulty = s.diff.Next(s.difficulty)
	}

	s.levelIndex = next
	s.initLevel()
}

// onTimeUp blocks the screen before GAME_OVER.
func (s *Session) onTimeUp() {
	s.state = StateGameOverBlocked
	s.blockedUntil = s.clock.Now().Add(time.Duration(s.cfg.Timer.GameOverDelayMs) * time.Millisecond)
	s.timer.Stop()
	s.balls.Pause()
	s.bricks.PauseBonuses()
	s.events.Emit(core.SoundLifeLost)
}

// Phase returns the current state machine phase.
func (s *Session) Phase() State {
	return s.state
}

// Score returns the run score.
func (s *Session) Score() int {
	return s.score
}

// LevelsCleared returns the number of levels cleared this run.
func (s *Session) LevelsCleared() int {
	return s.levelsCleared
}

// Difficulty returns the current difficulty step.
func (s *Session) Difficulty() int {
	return s.difficulty
}

// CurrentLevel returns the level being played.
func (s *Session) CurrentLevel() Level {
	if len(s.levels) == 0 {
		return Level{}
	}
	return s.levels[s.levelIndex]
}

// State returns the current game state.
func (s *Session) State() core.GameState {
	gs := core.GameState{
		Score:      s.score,
		GameOver:   s.state.Finished(),
		Paused:     s.state != StateRunning,
		Running:    s.state == StateRunning,
		Phase:      s.state.String(),
		Level:      s.levelIndex + 1,
		Difficulty: s.difficulty,
	}
	if s.timer != nil {
		gs.TimeLeft = s.timer.Remaining()
	}
	return gs
}

// Register the modes with the registry
func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
	registry.Register("breakout_campaign", func() registry.Game {
		return NewCampaign()
	})
}
