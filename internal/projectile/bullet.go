// Package projectile implements bullets and the short-lived impact effects
// they leave behind.
package projectile

import "github.com/vovakirdan/rogue-shot/internal/core"

// Owner records which side fired a bullet, and so whom it can hurt.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

// String returns a human-readable name for the owner.
func (o Owner) String() string {
	switch o {
	case OwnerPlayer:
		return "player"
	case OwnerEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Result is the outcome of one Move.
type Result int

const (
	Flying   Result = iota // Still in the air
	Culled                 // Left the world plus margin
	Impacted               // Struck an obstacle at Pos
)

// Bounds is the region outside which bullets are dropped.
type Bounds struct {
	Width, Height float64
	Margin        float64
}

// Bullet is a square projectile travelling in a straight line.
type Bullet struct {
	Pos   core.Vec2 // Centre
	Vel   core.Vec2
	Size  float64
	Owner Owner
}

// New fires a bullet from origin along dir (expected to be unit length).
func New(owner Owner, origin, dir core.Vec2, speed, size float64) Bullet {
	return Bullet{
		Pos:   origin,
		Vel:   dir.Scale(speed),
		Size:  size,
		Owner: owner,
	}
}

// Rect returns the bullet's hitbox.
func (b Bullet) Rect() core.Rect {
	return core.RectAround(b.Pos, b.Size, b.Size)
}

// Move integrates one tick, then checks the bounds and the obstacles.
// Entity hits are left to the caller.
func (b *Bullet) Move(solids []core.Solid, bounds Bounds) Result {
	b.Pos = b.Pos.Add(b.Vel)

	m := bounds.Margin
	if b.Pos.X < -m || b.Pos.X > bounds.Width+m || b.Pos.Y < -m || b.Pos.Y > bounds.Height+m {
		return Culled
	}
	if core.AnyIntersects(b.Rect(), solids) {
		return Impacted
	}
	return Flying
}
