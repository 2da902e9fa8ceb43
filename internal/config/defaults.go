package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Physics: BreakoutPhysics{
			BallSpeed:       4,
			BallRadius:      10,
			LaunchAngle:     45,
			MaxBounceAngle:  45,
			MaxDeltaSeconds: 0.25,
		},
		Platform: BreakoutPlatform{
			Width:  100,
			Height: 10,
			Speed:  8,
			YRatio: 0.9,
		},
		Bricks: BreakoutBricks{
			HeightRatio:        40,
			PaddingRatio:       160,
			TopMarginRatio:     0.06,
			SideRowRatio:       0.8,
			MaxSideBricks:      8,
			HardSideDifficulty: 4,
		},
		Bonus: BreakoutBonus{
			ExtraBallChance:     0.1,
			MaxExtraBalls:       3,
			ExtraTimeChance:     0.1,
			Radius:              15,
			SpeedFactor:         0.5,
			DifficultySpeedStep: 0.1,
			ExtraTime:           []int{20, 15, 10, 5},
		},
		Timer: BreakoutTimer{
			InitialSeconds:     180,
			LifePenaltySeconds: 60,
			GameOverDelayMs:    2000,
		},
		Scoring: BreakoutScoring{
			BrickPoints: 10,
			LevelBonus:  100,
		},
		Difficulty: DifficultyConfig{
			Scaling: true,
			Start:   0,
			Max:     0,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "breakout", "breakout_campaign":
		return defaultBreakoutYAML
	default:
		return nil
	}
}
