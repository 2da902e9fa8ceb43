// Package config provides YAML-based configuration loading and
// difficulty management for the breaker.
package config

// BreakoutConfig contains all tunables of a breakout session.
// Distances are canvas pixels, speeds are pixels per 1/60 s.
type BreakoutConfig struct {
	Physics    BreakoutPhysics  `yaml:"physics"`
	Platform   BreakoutPlatform `yaml:"platform"`
	Bricks     BreakoutBricks   `yaml:"bricks"`
	Bonus      BreakoutBonus    `yaml:"bonus"`
	Timer      BreakoutTimer    `yaml:"timer"`
	Scoring    BreakoutScoring  `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BreakoutPhysics defines ball motion parameters.
type BreakoutPhysics struct {
	BallSpeed       float64 `yaml:"ball_speed"`
	BallRadius      float64 `yaml:"ball_radius"`
	LaunchAngle     float64 `yaml:"launch_angle"`      // Degrees from vertical
	MaxBounceAngle  float64 `yaml:"max_bounce_angle"`  // Degrees at the platform edge
	MaxDeltaSeconds float64 `yaml:"max_delta_seconds"` // Cap on a single frame step
}

// BreakoutPlatform defines the player paddle.
type BreakoutPlatform struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
	YRatio float64 `yaml:"y_ratio"` // Top edge as a fraction of canvas height
}

// BreakoutBricks defines the brick grid layout.
type BreakoutBricks struct {
	HeightRatio        float64 `yaml:"height_ratio"`         // Canvas height / brick height
	PaddingRatio       float64 `yaml:"padding_ratio"`        // Canvas height / padding
	TopMarginRatio     float64 `yaml:"top_margin_ratio"`     // Grid offset as a fraction of canvas height
	SideRowRatio       float64 `yaml:"side_row_ratio"`       // Side brick row as a fraction of canvas height
	MaxSideBricks      int     `yaml:"max_side_bricks"`      // Cap on side bricks
	HardSideDifficulty int     `yaml:"hard_side_difficulty"` // Difficulty at which side bricks take two hits
}

// BreakoutBonus defines bonus roll odds and falling pickups.
type BreakoutBonus struct {
	ExtraBallChance     float64 `yaml:"extra_ball_chance"`
	MaxExtraBalls       int     `yaml:"max_extra_balls"`
	ExtraTimeChance     float64 `yaml:"extra_time_chance"`
	Radius              float64 `yaml:"radius"`
	SpeedFactor         float64 `yaml:"speed_factor"`          // Fall speed relative to ball speed
	DifficultySpeedStep float64 `yaml:"difficulty_speed_step"` // Extra fall speed per difficulty
	ExtraTime           []int   `yaml:"extra_time"`            // Seconds granted, indexed by difficulty
}

// BreakoutTimer defines the countdown.
type BreakoutTimer struct {
	InitialSeconds     int `yaml:"initial_seconds"`
	LifePenaltySeconds int `yaml:"life_penalty_seconds"`
	GameOverDelayMs    int `yaml:"game_over_delay_ms"`
}

// BreakoutScoring defines run score awards.
type BreakoutScoring struct {
	BrickPoints int `yaml:"brick_points"` // Per point of initial durability
	LevelBonus  int `yaml:"level_bonus"`
}

// DifficultyConfig defines the step-based difficulty progression.
type DifficultyConfig struct {
	Scaling bool `yaml:"scaling"` // Use level durability values
	Start   int  `yaml:"start"`   // Difficulty of the first level
	Max     int  `yaml:"max"`     // 0 means unbounded
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the known presets in display order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// StartForPreset returns the starting difficulty for a preset.
func StartForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyHard:
		return 2
	default:
		return 0
	}
}

// IsFixedPreset returns true if the preset disables durability scaling.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
