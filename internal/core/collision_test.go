package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testBody struct {
	pos Vec
	r   float64
	vel Vec
}

func (b *testBody) Center() Vec     { return b.pos }
func (b *testBody) Radius() float64 { return b.r }
func (b *testBody) Velocity() Vec   { return b.vel }
func (b *testBody) ReverseX()       { b.vel.X = -b.vel.X }
func (b *testBody) ReverseY()       { b.vel.Y = -b.vel.Y }

type testBox struct {
	rect Rect
	hits []Side
}

func (b *testBox) Bounds() Rect    { return b.rect }
func (b *testBox) OnHit(side Side) { b.hits = append(b.hits, side) }

func TestOverlaps(t *testing.T) {
	box := NewRect(100, 100, 50, 20)

	assert.True(t, Overlaps(Vec{X: 125, Y: 96}, 5, box), "circle dipping into top edge")
	assert.False(t, Overlaps(Vec{X: 125, Y: 95}, 5, box), "circle touching top edge")
	assert.False(t, Overlaps(Vec{X: 20, Y: 20}, 5, box), "far away")
	assert.True(t, Overlaps(Vec{X: 98, Y: 110}, 5, box), "circle dipping into left edge")
}

func TestHitSide(t *testing.T) {
	box := NewRect(100, 100, 50, 20)

	tests := []struct {
		name   string
		center Vec
		vel    Vec
		want   Side
	}{
		{"falling onto top", Vec{X: 125, Y: 97}, Vec{X: 1, Y: 4}, SideTop},
		{"rising into bottom", Vec{X: 125, Y: 123}, Vec{X: 1, Y: -4}, SideBottom},
		{"moving right into left face", Vec{X: 97, Y: 110}, Vec{X: 4, Y: 0}, SideLeft},
		{"moving left into right face", Vec{X: 153, Y: 110}, Vec{X: -4, Y: 0}, SideRight},
		{"moving away horizontally", Vec{X: 97, Y: 110}, Vec{X: -4, Y: 0}, SideNone},
		{"deep vertical penetration resolves sideways", Vec{X: 97, Y: 110}, Vec{X: 4, Y: 1}, SideLeft},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, HitSide(tc.center, 5, tc.vel, box))
		})
	}
}

func TestResolveCollisionReflects(t *testing.T) {
	box := &testBox{rect: NewRect(0, 50, 100, 10)}
	body := &testBody{pos: Vec{X: 50, Y: 47}, r: 5, vel: Vec{X: 3, Y: 4}}

	hit := ResolveCollision(body, box)

	assert.True(t, hit)
	assert.Equal(t, Vec{X: 3, Y: -4}, body.vel, "top hit reverses Y only")
	assert.Equal(t, []Side{SideTop}, box.hits)
}

func TestResolveCollisionMiss(t *testing.T) {
	box := &testBox{rect: NewRect(0, 50, 100, 10)}
	body := &testBody{pos: Vec{X: 50, Y: 10}, r: 5, vel: Vec{X: 3, Y: 4}}

	assert.False(t, ResolveCollision(body, box))
	assert.Equal(t, Vec{X: 3, Y: 4}, body.vel)
	assert.Empty(t, box.hits)
}

func TestResolveCollisionNotifiesWithoutReflection(t *testing.T) {
	box := &testBox{rect: NewRect(0, 50, 100, 10)}
	// Centred inside the box and stationary: overlap, but no face applies.
	body := &testBody{pos: Vec{X: 50, Y: 55}, r: 2}

	assert.True(t, ResolveCollision(body, box))
	assert.Equal(t, Vec{}, body.vel)
	assert.Equal(t, []Side{SideNone}, box.hits)
}
