package breakout

import (
	"fmt"

	"github.com/vovakirdan/tui-breaker/internal/core"
)

const (
	hudMargin     = 8.0
	hudLineHeight = 16.0
)

// Render draws the current frame onto the canvas.
func (s *Session) Render(dst core.Canvas) {
	dst.Clear()
	if !s.ready {
		return
	}

	w, h := s.runtime.CanvasW, s.runtime.CanvasH

	for _, b := range s.bricks.Bricks() {
		if !b.Visible() {
			continue
		}
		dst.FillRect(b.Bounds(), b.Color())
		if ball := b.AttachedBall(); ball != nil {
			dst.StrokeCircle(ball.Center(), ball.Radius(), core.ColorWhite)
		}
	}

	for _, f := range s.bricks.Bonuses() {
		pos := f.Position()
		dst.FillCircle(pos, f.Radius(), core.ColorGold)
		dst.Text(pos.X, pos.Y-hudLineHeight/2, f.Label(), core.ColorBlack, core.AlignCenter)
	}

	dst.FillRect(s.platform.Bounds(), core.ColorPlatform)

	for _, b := range s.balls.Balls() {
		dst.FillCircle(b.Center(), b.Radius(), core.ColorBall)
	}

	s.renderHUD(dst, w)

	title, subtitle := message(s.state, s.started, s.score, s.cfg.Timer.LifePenaltySeconds)
	if title != "" {
		y := h * 0.8
		dst.Text(w/2, y, title, core.ColorWhite, core.AlignCenter)
		if subtitle != "" {
			dst.Text(w/2, y+30, subtitle, core.ColorGray, core.AlignCenter)
		}
	}
}

func (s *Session) renderHUD(dst core.Canvas, w float64) {
	lvl := s.CurrentLevel()
	hud := fmt.Sprintf("Score: %d  Level %d %s", s.score, s.levelIndex+1, lvl.Name)
	if s.diff.IsScaling() && s.difficulty > 0 {
		hud += fmt.Sprintf("  Difficulty %d", s.difficulty)
	}
	dst.Text(hudMargin, hudMargin, hud, core.ColorWhite, core.AlignLeft)
	dst.Text(w-hudMargin, hudMargin, s.timer.String(), s.timer.Color(), core.AlignRight)
}
