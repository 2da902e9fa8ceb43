package core

// RuntimeConfig contains configuration passed to games at initialization.
// The host owns the drawing surface; games only learn its size here.
type RuntimeConfig struct {
	CanvasW  float64 // Drawing surface width in pixels
	CanvasH  float64 // Drawing surface height in pixels
	TickRate int     // Simulation ticks per second (default 60)
	Seed     int64   // RNG seed for deterministic gameplay
	Clock    Clock   // Time source; nil means SystemClock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		CanvasW:  640,
		CanvasH:  384,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
		Clock:    SystemClock{},
	}
}

// HasCanvas reports whether a drawable surface was supplied.
func (c RuntimeConfig) HasCanvas() bool {
	return c.CanvasW > 0 && c.CanvasH > 0
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score      int    // Current score
	GameOver   bool   // Whether the run has ended (lost or won)
	Paused     bool   // Whether the simulation is frozen
	Running    bool   // Whether balls and timer advance this frame
	Phase      string // Name of the current state machine phase
	Level      int    // 1-based level number
	Difficulty int    // Current difficulty step
	TimeLeft   int    // Seconds remaining on the countdown
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and the sounds emitted during the tick.
type StepResult struct {
	State  GameState
	Sounds []Sound
}
