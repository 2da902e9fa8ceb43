package config

// DifficultyManager derives per-level parameters from the difficulty step.
// Difficulty starts at DifficultyConfig.Start and grows each time the
// level list wraps.
type DifficultyManager struct {
	cfg BreakoutConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg BreakoutConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// IsScaling returns whether level durability values are honoured.
func (d *DifficultyManager) IsScaling() bool {
	return d.cfg.Difficulty.Scaling
}

// Start returns the difficulty of a fresh run.
func (d *DifficultyManager) Start() int {
	return max(0, d.cfg.Difficulty.Start)
}

// Next returns the difficulty after a wrap of the level list.
func (d *DifficultyManager) Next(level int) int {
	next := level + 1
	if d.cfg.Difficulty.Max > 0 && next > d.cfg.Difficulty.Max {
		return d.cfg.Difficulty.Max
	}
	return next
}

// Durability returns the hit points of a grid cell at the given difficulty.
// Without scaling every brick breaks in one hit.
func (d *DifficultyManager) Durability(cell, level int) int {
	if cell <= 0 {
		return 0
	}
	if !d.cfg.Difficulty.Scaling {
		return 1
	}
	return min(cell, 1+level)
}

// SideBrickCount returns how many side bricks to place, split left/right.
func (d *DifficultyManager) SideBrickCount(level int) int {
	if level < 1 {
		return 0
	}
	return min(2*level, d.cfg.Bricks.MaxSideBricks)
}

// SideBrickDurability returns the hit points of a side brick.
func (d *DifficultyManager) SideBrickDurability(level int) int {
	if d.cfg.Bricks.HardSideDifficulty > 0 && level >= d.cfg.Bricks.HardSideDifficulty {
		return 2
	}
	return 1
}

// BonusSpeed returns the fall speed of a bonus pickup.
func (d *DifficultyManager) BonusSpeed(ballSpeed float64, level int) float64 {
	return ballSpeed * d.cfg.Bonus.SpeedFactor * (1 + float64(level)*d.cfg.Bonus.DifficultySpeedStep)
}

// ExtraTime returns the seconds granted by an extra-time pickup. Levels
// beyond the table use its last entry.
func (d *DifficultyManager) ExtraTime(level int) int {
	table := d.cfg.Bonus.ExtraTime
	if len(table) == 0 {
		return 0
	}
	if level < 0 {
		level = 0
	}
	if level >= len(table) {
		return table[len(table)-1]
	}
	return table[level]
}
