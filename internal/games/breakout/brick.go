package breakout

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-breaker/internal/config"
	"github.com/vovakirdan/tui-breaker/internal/core"
)

// Brick is a destructible rectangle. It becomes invisible when its
// durability reaches zero and is never restored within a level.
type Brick struct {
	rect       core.Rect
	color      core.Color
	durability int
	initial    int
	side       bool
	bonus      BonusKind
	ball       *Ball         // attached extra ball, nil once released
	falling    *FallingBonus // spawned pickup, nil until destroyed
}

// Bounds returns the brick rectangle.
func (b *Brick) Bounds() core.Rect { return b.rect }

// OnHit takes one point of durability.
func (b *Brick) OnHit(core.Side) {
	if b.durability > 0 {
		b.durability--
	}
}

// Visible reports whether the brick is still in play.
func (b *Brick) Visible() bool { return b.durability > 0 }

// Durability returns the remaining hit points.
func (b *Brick) Durability() int { return b.durability }

// InitialDurability returns the hit points the brick started with.
func (b *Brick) InitialDurability() int { return b.initial }

// Bonus returns the bonus the brick holds.
func (b *Brick) Bonus() BonusKind { return b.bonus }

// Side reports whether the brick sits in the side row.
func (b *Brick) Side() bool { return b.side }

// AttachedBall returns the extra ball still held by the brick.
func (b *Brick) AttachedBall() *Ball { return b.ball }

// Color returns the fill colour, darker for tougher bricks.
func (b *Brick) Color() core.Color {
	if b.durability <= 1 {
		return b.color
	}
	return core.Darken(b.color, math.Min(60, float64(b.durability-1)*20))
}

var _ core.Collidable = (*Brick)(nil)

// HitResult reports the brick hit during a frame.
type HitResult struct {
	Brick     *Brick // nil when nothing was hit
	Destroyed bool
}

// BrickManager owns the bricks of a level and their bonuses.
type BrickManager struct {
	bricks     []*Brick
	completed  bool
	rng        *SimpleRNG
	diff       *config.DifficultyManager
	cfg        config.BreakoutConfig
	difficulty int
	canvasH    float64
	params     BallParams
	extraBalls int
}

// NewBrickManager lays out the grid on a canvas of the given size. Cells
// hold durability, 0 for none; rows shorter than the longest are padded.
// A grid without bricks is complete from the start.
func NewBrickManager(grid [][]int, canvasW, canvasH float64, difficulty int, cfg config.BreakoutConfig, rng *SimpleRNG) *BrickManager {
	m := &BrickManager{
		rng:        rng,
		diff:       config.NewDifficultyManager(cfg),
		cfg:        cfg,
		difficulty: difficulty,
		canvasH:    canvasH,
		params:     ballParams(cfg),
	}

	rows := len(grid)
	rowLen := 0
	for _, row := range grid {
		rowLen = max(rowLen, len(row))
	}

	padding := math.Ceil(canvasH / cfg.Bricks.PaddingRatio)
	height := canvasH / cfg.Bricks.HeightRatio
	width := canvasW
	if rowLen > 0 {
		width = (canvasW - padding*float64(rowLen+1)) / float64(rowLen)
	}
	top := canvasH * cfg.Bricks.TopMarginRatio

	for r, row := range grid {
		color := core.HSL(float64(r)/float64(rows)*360, 0.7, 0.5)
		for c, cell := range row {
			durability := m.diff.Durability(cell, difficulty)
			if durability <= 0 {
				continue
			}
			rect := core.NewRect(
				padding+float64(c)*(width+padding),
				top+float64(r)*(height+padding),
				width,
				height,
			)
			m.add(rect, color, durability, false)
		}
	}

	m.placeSideBricks(canvasW, canvasH, padding, width, height)
	m.completed = m.Remaining() == 0
	return m
}

// placeSideBricks mirrors side bricks left and right along the side row.
func (m *BrickManager) placeSideBricks(canvasW, canvasH, padding, width, height float64) {
	perSide := m.diff.SideBrickCount(m.difficulty) / 2
	if perSide == 0 {
		return
	}

	sideW := math.Min(width, (canvasW/2-padding*float64(perSide+1))/float64(perSide))
	if sideW <= 0 {
		return
	}
	y := canvasH * m.cfg.Bricks.SideRowRatio
	durability := m.diff.SideBrickDurability(m.difficulty)
	color := core.ColorGray

	for i := 0; i < perSide; i++ {
		offset := padding + float64(i)*(sideW+padding)
		m.add(core.NewRect(offset, y, sideW, height), color, durability, true)
		m.add(core.NewRect(canvasW-offset-sideW, y, sideW, height), color, durability, true)
	}
}

func (m *BrickManager) add(rect core.Rect, color core.Color, durability int, side bool) {
	b := &Brick{
		rect:       rect,
		color:      color,
		durability: durability,
		initial:    durability,
		side:       side,
		bonus:      m.rollBonus(),
	}
	if b.bonus == BonusExtraBall {
		b.ball = NewBall(rect.Center(), core.Vec{X: 0, Y: 1}, m.params)
	}
	m.bricks = append(m.bricks, b)
}

// rollBonus draws once: [0, pBall) is an extra ball while the cap allows,
// [pBall, pBall+pTime) is extra time.
func (m *BrickManager) rollBonus() BonusKind {
	roll := m.rng.Float64()
	pBall := m.cfg.Bonus.ExtraBallChance
	pTime := m.cfg.Bonus.ExtraTimeChance

	switch {
	case roll < pBall:
		if m.extraBalls < m.cfg.Bonus.MaxExtraBalls {
			m.extraBalls++
			return BonusExtraBall
		}
		return BonusNone
	case roll < pBall+pTime:
		return BonusExtraTime
	default:
		return BonusNone
	}
}

// Update resolves at most one brick hit across all balls this frame.
// A destroyed brick hands its extra ball to release or drops its pickup.
func (m *BrickManager) Update(balls []*Ball, release func(*Ball)) HitResult {
	var result HitResult
	hasCollided := false

	for _, ball := range balls {
		if hasCollided {
			break
		}
		if ball.Out() {
			continue
		}
		for _, brick := range m.bricks {
			if !brick.Visible() {
				continue
			}
			if !core.ResolveCollision(ball, brick) {
				continue
			}
			hasCollided = true
			result.Brick = brick
			if !brick.Visible() {
				result.Destroyed = true
				m.destroy(brick, release)
			}
			break
		}
	}

	if !m.completed && m.Remaining() == 0 {
		m.completed = true
	}
	return result
}

func (m *BrickManager) destroy(b *Brick, release func(*Ball)) {
	switch b.bonus {
	case BonusExtraBall:
		if b.ball != nil && release != nil {
			release(b.ball)
		}
		b.ball = nil
	case BonusExtraTime:
		if b.falling == nil {
			b.falling = NewFallingBonus(
				b.rect.Center(),
				m.cfg.Bonus.Radius,
				m.diff.BonusSpeed(m.params.Speed, m.difficulty),
				BonusExtraTime,
				m.diff.ExtraTime(m.difficulty),
				m.params.MaxDelta,
			)
		}
	}
}

// UpdateBonuses moves falling pickups and applies those caught by the
// platform. It returns the number collected.
func (m *BrickManager) UpdateBonuses(now time.Time, p *Platform, t *Timer) int {
	collected := 0
	for _, f := range m.Bonuses() {
		f.Update(now, m.canvasH)
		if f.CheckPlatform(p, t) {
			collected++
		}
	}
	return collected
}

// CancelBonuses removes every falling pickup without effect.
func (m *BrickManager) CancelBonuses() {
	for _, f := range m.Bonuses() {
		f.Cancel()
	}
}

// PauseBonuses forgets the frame time of falling pickups.
func (m *BrickManager) PauseBonuses() {
	for _, f := range m.Bonuses() {
		f.Pause()
	}
}

// Bonuses returns the active falling pickups.
func (m *BrickManager) Bonuses() []*FallingBonus {
	var out []*FallingBonus
	for _, b := range m.bricks {
		if b.falling != nil && b.falling.Active() {
			out = append(out, b.falling)
		}
	}
	return out
}

// Bricks returns every brick, visible or not.
func (m *BrickManager) Bricks() []*Brick {
	return m.bricks
}

// Remaining returns the number of visible bricks.
func (m *BrickManager) Remaining() int {
	n := 0
	for _, b := range m.bricks {
		if b.Visible() {
			n++
		}
	}
	return n
}

// IsLevelCompleted reports whether every brick is invisible.
func (m *BrickManager) IsLevelCompleted() bool {
	return m.completed
}

// ballParams extracts the ball tunables from the config.
func ballParams(cfg config.BreakoutConfig) BallParams {
	return BallParams{
		Radius:         cfg.Physics.BallRadius,
		Speed:          cfg.Physics.BallSpeed,
		MaxBounceAngle: cfg.Physics.MaxBounceAngle,
		MaxDelta:       cfg.Physics.MaxDeltaSeconds,
	}
}
