package projectile

import "github.com/vovakirdan/rogue-shot/internal/core"

// Effect is a shrinking flash drawn where a bullet struck something.
type Effect struct {
	Pos       core.Vec2
	Color     core.Color
	Life      int
	MaxLife   int
	MaxRadius float64
}

func newEffect(pos core.Vec2, c core.Color, life int, radius float64) Effect {
	return Effect{Pos: pos, Color: c, Life: life, MaxLife: life, MaxRadius: radius}
}

// PlayerHit is spawned when an enemy bullet hits the player.
func PlayerHit(pos core.Vec2) Effect {
	return newEffect(pos, core.ColorRed, 15, 15)
}

// EnemyHit is spawned when a player bullet hits the enemy.
func EnemyHit(pos core.Vec2) Effect {
	return newEffect(pos, core.ColorBrightRed, 15, 12)
}

// ObstacleHit is spawned when a bullet strikes terrain.
func ObstacleHit(pos core.Vec2, owner Owner) Effect {
	c := core.ColorOrange
	if owner == OwnerEnemy {
		c = core.ColorYellow
	}
	return newEffect(pos, c, 10, 10)
}

// Update ages the effect by one tick and reports whether it is still visible.
func (e *Effect) Update() bool {
	e.Life--
	return e.Life > 0
}

// Radius shrinks linearly with the remaining life.
func (e Effect) Radius() float64 {
	if e.MaxLife <= 0 {
		return 0
	}
	return e.MaxRadius * float64(e.Life) / float64(e.MaxLife)
}
