package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by Validate failures.
var ErrInvalidConfig = errors.New("invalid config")

// LoadBreakout loads breakout configuration.
// Search order: customPath -> ~/.breaker/configs/breakout.yaml -> ./configs/breakout.yaml -> embedded default
// Files only need the keys they override; the rest keep default values.
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	cfg := DefaultBreakoutConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultBreakoutConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return DefaultBreakoutConfig(), fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("breakout.yaml"); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := tryLoad(filepath.Join("configs", "breakout.yaml")); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	cfg = DefaultBreakoutConfig()
	if err := yaml.Unmarshal(GetDefaultYAML("breakout"), &cfg); err != nil {
		return DefaultBreakoutConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file, ignoring missing or broken ones.
func tryLoad(path string) (BreakoutConfig, bool) {
	cfg := DefaultBreakoutConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".breaker", "configs", filename)
}

// Validate rejects values the simulation cannot run with.
func (c BreakoutConfig) Validate() error {
	switch {
	case c.Physics.BallSpeed <= 0:
		return fmt.Errorf("%w: physics.ball_speed must be positive", ErrInvalidConfig)
	case c.Physics.BallRadius <= 0:
		return fmt.Errorf("%w: physics.ball_radius must be positive", ErrInvalidConfig)
	case c.Platform.Width <= 0 || c.Platform.Height <= 0:
		return fmt.Errorf("%w: platform size must be positive", ErrInvalidConfig)
	case c.Bricks.HeightRatio <= 0 || c.Bricks.PaddingRatio <= 0:
		return fmt.Errorf("%w: bricks ratios must be positive", ErrInvalidConfig)
	case c.Bonus.ExtraBallChance < 0 || c.Bonus.ExtraTimeChance < 0 ||
		c.Bonus.ExtraBallChance+c.Bonus.ExtraTimeChance > 1:
		return fmt.Errorf("%w: bonus chances must be non-negative and sum to at most 1", ErrInvalidConfig)
	case c.Timer.InitialSeconds <= 0:
		return fmt.Errorf("%w: timer.initial_seconds must be positive", ErrInvalidConfig)
	case c.Timer.LifePenaltySeconds < 0 || c.Timer.GameOverDelayMs < 0:
		return fmt.Errorf("%w: timer penalties must not be negative", ErrInvalidConfig)
	}
	return nil
}

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Scaling = false
	} else {
		cfg.Difficulty.Scaling = true
		cfg.Difficulty.Start = StartForPreset(preset)
	}

	// Adjust pacing based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Timer.InitialSeconds = 240
		cfg.Platform.Width = 130
		cfg.Physics.BallSpeed = 3.5
	case DifficultyHard:
		cfg.Timer.InitialSeconds = 120
		cfg.Platform.Width = 80
		cfg.Physics.BallSpeed = 5
	}
}
