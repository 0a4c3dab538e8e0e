package game

import (
	"github.com/vovakirdan/rogue-shot/internal/core"
	"github.com/vovakirdan/rogue-shot/internal/enemy"
	"github.com/vovakirdan/rogue-shot/internal/pickup"
	"github.com/vovakirdan/rogue-shot/internal/projectile"
)

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	Tick   uint64
	World  core.Vec2 // Width and height
	Paused bool
	Debug  bool

	Obstacles []ObstacleView
	Player    PlayerView
	Enemy     EnemyView
	Bullets   []BulletView
	Items     []ItemView
	Effects   []projectile.Effect

	ItemTimer   int
	ActiveItems int
	ItemCap     int
	Stats       Stats
}

// ObstacleView describes one obstacle.
type ObstacleView struct {
	Rect   core.Rect
	Ground bool
	Moving bool
}

// PlayerView describes the player.
type PlayerView struct {
	Rect         core.Rect
	Health       int
	MaxHealth    int
	Invulnerable int
	Hidden       bool // Off phase of the invulnerability blink
	Grounded     bool
}

// EnemyView describes the enemy, including what the debug overlay shows.
type EnemyView struct {
	Rect         core.Rect
	Health       int
	MaxHealth    int
	State        enemy.State
	StateTimer   int
	Cooldown     int
	ShotCooldown int
	Grounded     bool

	HasTarget bool
	Target    core.Vec2 // Centre of the item being sought
}

// BulletView describes a bullet in flight.
type BulletView struct {
	Rect  core.Rect
	Owner projectile.Owner
}

// ItemView describes a health item, fading ones included.
type ItemView struct {
	ID        int
	Rect      core.Rect
	Active    bool
	Lifetime  int
	Particles []pickup.Particle
}

// Snapshot captures the current frame.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:        g.tick,
		World:       core.Vec2{X: g.cfg.World.Width, Y: g.cfg.World.Height},
		Paused:      g.paused,
		Debug:       g.debug,
		ItemTimer:   g.items.Timer(),
		ActiveItems: g.items.ActiveCount(),
		ItemCap:     g.items.Capacity(),
		Stats:       g.stats,
	}

	for _, o := range g.arena.Obstacles() {
		s.Obstacles = append(s.Obstacles, ObstacleView{Rect: o.Rect, Ground: o.Ground, Moving: o.Moving()})
	}

	p := g.player
	s.Player = PlayerView{
		Rect:         p.Rect,
		Health:       p.Health(),
		MaxHealth:    p.MaxHealth(),
		Invulnerable: p.Invulnerable(),
		Hidden:       p.Hidden(),
		Grounded:     p.Grounded(),
	}

	e := g.enemy
	s.Enemy = EnemyView{
		Rect:         e.Rect,
		Health:       e.Health(),
		MaxHealth:    e.MaxHealth(),
		State:        e.State(),
		StateTimer:   e.StateTimer(),
		Cooldown:     e.Cooldown(),
		ShotCooldown: e.ShotCooldown(),
		Grounded:     e.Grounded(),
	}
	if e.State() == enemy.StateSeekHealth {
		if v, ok := g.items.Find(e.Target()); ok && v.Active {
			s.Enemy.HasTarget = true
			s.Enemy.Target = v.Rect.Center()
		}
	}

	for _, b := range g.bullets {
		s.Bullets = append(s.Bullets, BulletView{Rect: b.Rect(), Owner: b.Owner})
	}

	for _, it := range g.items.Items() {
		s.Items = append(s.Items, ItemView{
			ID:        it.ID,
			Rect:      it.Rect,
			Active:    it.Active(),
			Lifetime:  it.Lifetime,
			Particles: append([]pickup.Particle(nil), it.Particles...),
		})
	}

	s.Effects = append([]projectile.Effect(nil), g.effects...)
	return s
}
