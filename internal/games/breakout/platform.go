package breakout

import (
	"github.com/vovakirdan/tui-breaker/internal/config"
	"github.com/vovakirdan/tui-breaker/internal/core"
)

// Platform is the player-controlled paddle.
// Its x is always within [0, canvasW - width].
type Platform struct {
	x, y    float64
	width   float64
	height  float64
	speed   float64
	canvasW float64
	hits    int
}

// NewPlatform centres a platform near the bottom of the canvas. Its width
// is fixed from the canvas width at creation.
func NewPlatform(canvasW, canvasH float64, cfg config.BreakoutPlatform) *Platform {
	width := min(cfg.Width, canvasW/3)
	return &Platform{
		x:       canvasW/2 - width/2,
		y:       canvasH * cfg.YRatio,
		width:   width,
		height:  cfg.Height,
		speed:   cfg.Speed,
		canvasW: canvasW,
	}
}

// Move shifts the platform by its speed in the given direction.
func (p *Platform) Move(dir core.Direction) {
	switch dir {
	case core.DirLeft:
		p.setX(p.x - p.speed)
	case core.DirRight:
		p.setX(p.x + p.speed)
	}
}

// Jump centres the platform under x.
func (p *Platform) Jump(x float64) {
	p.setX(x - p.width/2)
}

// Recenter puts the platform back in the middle of the canvas.
func (p *Platform) Recenter() {
	p.setX(p.canvasW/2 - p.width/2)
}

func (p *Platform) setX(x float64) {
	p.x = core.ClampF(x, 0, p.canvasW-p.width)
}

// Bounds returns the platform rectangle.
func (p *Platform) Bounds() core.Rect {
	return core.NewRect(p.x, p.y, p.width, p.height)
}

// OnHit counts ball contacts.
func (p *Platform) OnHit(core.Side) {
	p.hits++
}

// Hits returns the number of ball contacts so far.
func (p *Platform) Hits() int {
	return p.hits
}

// X returns the left edge.
func (p *Platform) X() float64 {
	return p.x
}

// CenterX returns the horizontal centre.
func (p *Platform) CenterX() float64 {
	return p.x + p.width/2
}

var _ core.Collidable = (*Platform)(nil)
