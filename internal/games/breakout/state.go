package breakout

import "fmt"

// State is the session phase.
type State int

const (
	StatePaused State = iota
	StateRunning
	StateLifeLost
	StateGameWon
	StateGameOverBlocked // time is up; resume is ignored until the delay passes
	StateGameOver
)

// String returns the phase name.
func (s State) String() string {
	switch s {
	case StatePaused:
		return "PAUSED"
	case StateRunning:
		return "RUNNING"
	case StateLifeLost:
		return "LIFE_LOST"
	case StateGameWon:
		return "GAME_WON"
	case StateGameOverBlocked:
		return "GAME_OVER_BLOCKED_SCREEN"
	case StateGameOver:
		return "GAME_OVER"
	default:
		return "UNKNOWN"
	}
}

// Finished reports whether the run has ended.
func (s State) Finished() bool {
	return s == StateGameOver || s == StateGameWon
}

// message returns the overlay title and subtitle for the state.
func message(s State, started bool, score int, penalty int) (string, string) {
	switch s {
	case StatePaused:
		if !started {
			return "BREAKER", "press space or tap to start"
		}
		return "PAUSED", "press space or tap to resume"
	case StateLifeLost:
		return "LIFE LOST", fmt.Sprintf("-%d:%02d  press space to continue", penalty/60, penalty%60)
	case StateGameOverBlocked:
		return "TIME UP", ""
	case StateGameOver:
		return "GAME OVER", fmt.Sprintf("score %d  press space to restart", score)
	case StateGameWon:
		return "YOU WIN", fmt.Sprintf("score %d  press space to play again", score)
	default:
		return "", ""
	}
}
