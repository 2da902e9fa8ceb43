package core

import "math"

// Side identifies the face of a box that a circle struck.
type Side int

const (
	SideNone Side = iota // overlap without a resolvable face
	SideTop
	SideBottom
	SideLeft
	SideRight
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// Vertical reports whether the side is the top or bottom face.
func (s Side) Vertical() bool {
	return s == SideTop || s == SideBottom
}

// Body is a moving circle that collisions can reflect.
type Body interface {
	Center() Vec
	Radius() float64
	Velocity() Vec
	ReverseX()
	ReverseY()
}

// Collidable is a box that reacts to being struck by a Body.
type Collidable interface {
	Bounds() Rect
	OnHit(side Side)
}

// Overlaps reports whether the bounding square of the circle overlaps box.
func Overlaps(center Vec, radius float64, box Rect) bool {
	return center.X+radius > box.X &&
		center.X-radius < box.Right() &&
		center.Y+radius > box.Y &&
		center.Y-radius < box.Bottom()
}

// HitSide picks the face of box a circle moving with vel has struck.
// Vertical faces win when their penetration is below |vel.Y| and the circle
// moves into them; otherwise the nearer horizontal face is chosen if the
// circle moves toward it. SideNone means no reflection applies.
func HitSide(center Vec, radius float64, vel Vec, box Rect) Side {
	overlapTop := center.Y + radius - box.Y
	overlapBottom := box.Bottom() - (center.Y - radius)
	overlapLeft := center.X - radius - box.X
	overlapRight := box.Right() - (center.X + radius)

	threshold := math.Abs(vel.Y)

	switch {
	case overlapTop < threshold && vel.Y > 0:
		return SideTop
	case overlapBottom < threshold && vel.Y < 0:
		return SideBottom
	case overlapLeft < overlapRight && vel.X > 0:
		return SideLeft
	case overlapLeft > overlapRight && vel.X < 0:
		return SideRight
	default:
		return SideNone
	}
}

// ResolveCollision tests b against c and, on overlap, reflects b off the
// struck face and notifies c. It returns false when the shapes are apart.
func ResolveCollision(b Body, c Collidable) bool {
	box := c.Bounds()
	if !Overlaps(b.Center(), b.Radius(), box) {
		return false
	}

	side := HitSide(b.Center(), b.Radius(), b.Velocity(), box)
	switch side {
	case SideTop, SideBottom:
		b.ReverseY()
	case SideLeft, SideRight:
		b.ReverseX()
	}

	c.OnHit(side)
	return true
}
