package breakout

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-breaker/internal/core"
)

// BallParams holds the shared ball tunables.
type BallParams struct {
	Radius         float64
	Speed          float64 // Pixels per 1/60 s
	MaxBounceAngle float64 // Degrees at the platform edge
	MaxDelta       float64 // Seconds, cap on one frame step
}

// Ball is a moving circle. Its velocity magnitude is renormalized to
// speed after every bounce.
type Ball struct {
	pos       core.Vec
	vel       core.Vec
	radius    float64
	speed     float64
	maxBounce float64 // radians
	delta     core.FrameDelta
	out       bool
}

// NewBall creates a ball at pos heading along dir at the configured speed.
func NewBall(pos, dir core.Vec, p BallParams) *Ball {
	return &Ball{
		pos:       pos,
		vel:       dir.WithLen(p.Speed),
		radius:    p.Radius,
		speed:     p.Speed,
		maxBounce: p.MaxBounceAngle * math.Pi / 180,
		delta:     core.NewFrameDelta(p.MaxDelta),
	}
}

// Center returns the ball position.
func (b *Ball) Center() core.Vec { return b.pos }

// Radius returns the ball radius.
func (b *Ball) Radius() float64 { return b.radius }

// Velocity returns the current velocity.
func (b *Ball) Velocity() core.Vec { return b.vel }

// Speed returns the target speed magnitude.
func (b *Ball) Speed() float64 { return b.speed }

// ReverseX flips the horizontal velocity.
func (b *Ball) ReverseX() { b.vel.X = -b.vel.X }

// ReverseY flips the vertical velocity.
func (b *Ball) ReverseY() { b.vel.Y = -b.vel.Y }

// Out reports whether the ball has left play.
func (b *Ball) Out() bool { return b.out }

// Pause forgets the last update time so the next frame does not apply a
// stale delta.
func (b *Ball) Pause() {
	b.delta.Reset()
}

// Update advances the ball one frame. When the ball drops below the canvas
// it calls onEliminated and stops. Platform and ball-ball bounces emit
// SoundBounce.
func (b *Ball) Update(now time.Time, canvasW, canvasH float64, p *Platform, others []*Ball, sounds core.SoundSink, onEliminated func()) {
	if b.out {
		return
	}

	step := b.delta.Tick(now) * 60
	b.pos = b.pos.Add(b.vel.Scale(step))

	if (b.pos.X-b.radius < 0 && b.vel.X < 0) || (b.pos.X+b.radius > canvasW && b.vel.X > 0) {
		b.ReverseX()
		b.normalize()
	}
	if b.pos.Y-b.radius < 0 && b.vel.Y < 0 {
		b.ReverseY()
		b.normalize()
	}

	if b.pos.Y-b.radius > canvasH && b.vel.Y > 0 {
		b.out = true
		if onEliminated != nil {
			onEliminated()
		}
		return
	}

	if p != nil && b.collidePlatform(p) {
		sounds.Emit(core.SoundBounce)
	}

	for _, other := range others {
		if other == b || other.out {
			continue
		}
		if b.collideBall(other) {
			sounds.Emit(core.SoundBounce)
		}
	}
}

// collidePlatform bounces off the platform. Hits on the top or bottom face
// leave at an angle proportional to the offset from the platform centre.
func (b *Ball) collidePlatform(p *Platform) bool {
	box := p.Bounds()
	if !core.Overlaps(b.pos, b.radius, box) {
		return false
	}

	side := core.HitSide(b.pos, b.radius, b.vel, box)
	switch side {
	case core.SideTop, core.SideBottom:
		offset := core.ClampF((b.pos.X-box.Center().X)/(box.W/2), -1, 1)
		angle := offset * b.maxBounce
		vx := b.speed * math.Sin(angle)
		vy := b.speed * math.Cos(angle)
		if side == core.SideTop {
			b.vel = core.Vec{X: vx, Y: -vy}
			b.pos.Y = box.Y - b.radius
		} else {
			b.vel = core.Vec{X: vx, Y: vy}
			b.pos.Y = box.Bottom() + b.radius
		}
	case core.SideLeft, core.SideRight:
		b.ReverseX()
		b.normalize()
	default:
		return false
	}

	p.OnHit(side)
	return true
}

// collideBall applies an equal-mass elastic collision along the line of
// centres. Separating pairs are left alone. Both balls leave at the faster
// of their two speeds.
func (b *Ball) collideBall(o *Ball) bool {
	d := o.pos.Sub(b.pos)
	dist := d.Len()
	minDist := b.radius + o.radius
	if dist >= minDist || dist == 0 {
		return false
	}

	n := d.Scale(1 / dist)
	along := o.vel.Sub(b.vel).Dot(n)
	if along > 0 {
		return false
	}

	b.vel = b.vel.Add(n.Scale(along))
	o.vel = o.vel.Sub(n.Scale(along))

	overlap := minDist - dist
	b.pos = b.pos.Sub(n.Scale(overlap / 2))
	o.pos = o.pos.Add(n.Scale(overlap / 2))

	speed := max(b.speed, o.speed)
	b.speed, o.speed = speed, speed
	b.normalize()
	o.normalize()
	return true
}

// normalize rescales the velocity to the target speed.
func (b *Ball) normalize() {
	b.vel = b.vel.WithLen(b.speed)
}

var _ core.Body = (*Ball)(nil)
