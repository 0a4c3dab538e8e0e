// Package game wires the simulation together: it owns the arena, both
// fighters, the bullets, the health items and the impact effects, and
// advances them in a fixed order once per tick.
package game

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rogue-shot/internal/config"
	"github.com/vovakirdan/rogue-shot/internal/core"
	"github.com/vovakirdan/rogue-shot/internal/enemy"
	"github.com/vovakirdan/rogue-shot/internal/level"
	"github.com/vovakirdan/rogue-shot/internal/pickup"
	"github.com/vovakirdan/rogue-shot/internal/player"
	"github.com/vovakirdan/rogue-shot/internal/projectile"
)

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for gameplay events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// WithDebug starts the game with the debug overlay enabled.
func WithDebug(on bool) Option {
	return func(g *Game) {
		g.debug = on
	}
}

// Game is one running simulation.
type Game struct {
	cfg  config.Config
	seed int64
	rng  *rand.Rand
	log  *log.Logger

	gen    *level.Generator
	arena  *level.Arena
	player *player.Player
	enemy  *enemy.Enemy
	items  *pickup.Manager

	bullets []projectile.Bullet
	effects []projectile.Effect
	bounds  projectile.Bounds

	tick   uint64
	paused bool
	debug  bool
	stats  Stats
}

// New creates a game from cfg. All randomness derives from seed.
func New(cfg config.Config, seed int64, opts ...Option) *Game {
	rng := rand.New(rand.NewSource(seed))
	g := &Game{
		cfg:  cfg,
		seed: seed,
		rng:  rng,
		log:  log.New(io.Discard),
		bounds: projectile.Bounds{
			Width:  cfg.World.Width,
			Height: cfg.World.Height,
			Margin: cfg.World.CullMargin,
		},
		gen:    level.NewGenerator(cfg, rng),
		player: player.New(cfg),
		enemy:  enemy.New(cfg, rng),
		items:  pickup.NewManager(cfg, rng),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.buildLevel()
	g.log.Info("game started", "seed", seed, "obstacles", g.arena.Len())
	return g
}

func (g *Game) buildLevel() {
	g.arena = g.gen.Generate(g.player.Rect.Pos())
	g.player.SetRespawnPoint(g.player.Rect.Pos())
}

// Reset regenerates the level around the player's current position and
// clears bullets, effects and items. The player keeps its health; the
// enemy respawns. Run statistics are kept.
func (g *Game) Reset() {
	g.buildLevel()
	g.player.Land()
	g.bullets = g.bullets[:0]
	g.effects = g.effects[:0]
	g.items.Clear()
	g.enemy.ClearTarget()
	g.enemy.Respawn()
	g.log.Info("level reset", "tick", g.tick, "obstacles", g.arena.Len())
}

// Step processes one frame of input and, unless paused, advances the
// simulation by one tick.
func (g *Game) Step(in core.InputFrame) StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if in.Has(core.ActionDebug) {
		g.debug = !g.debug
		g.log.Debug("debug mode", "on", g.debug)
	}
	if in.Has(core.ActionReset) {
		g.Reset()
		return g.result()
	}
	if g.paused {
		return g.result()
	}

	if in.Has(core.ActionSpawnItem) && g.debug {
		if id, ok := g.items.Spawn(); ok {
			g.log.Debug("debug item spawned", "id", id)
		}
	}

	g.tick++
	g.stats.Ticks = g.tick
	solids := g.arena.Solids()

	g.player.Update(player.InputFromFrame(in), solids)

	prev := g.enemy.State()
	playerRect := g.player.Rect
	g.enemy.Update(enemy.World{Solids: solids, Player: &playerRect, Items: g.items})
	if cur := g.enemy.State(); cur != prev {
		g.log.Debug("enemy state", "from", prev, "to", cur, "tick", g.tick)
	}

	g.shoot(in)
	g.moveBullets(solids)

	g.arena.Update()

	g.items.Update(g.arena.Solids(), g.player, g.enemy)
	g.handleItemEvents()

	kept := g.effects[:0]
	for _, e := range g.effects {
		if e.Update() {
			kept = append(kept, e)
		}
	}
	g.effects = kept

	return g.result()
}

func (g *Game) shoot(in core.InputFrame) {
	if in.Has(core.ActionFire) {
		if b, ok := g.player.Shoot(in.Aim); ok {
			g.bullets = append(g.bullets, b)
			g.stats.ShotsFired++
		}
	}
	if b, ok := g.enemy.TryShoot(g.player.Rect.Center()); ok {
		g.bullets = append(g.bullets, b)
		g.stats.EnemyShots++
	}
}

// moveBullets advances every bullet and resolves what it struck.
func (g *Game) moveBullets(solids []core.Solid) {
	kept := g.bullets[:0]
	for _, b := range g.bullets {
		switch b.Move(solids, g.bounds) {
		case projectile.Culled:
			continue
		case projectile.Impacted:
			g.effects = append(g.effects, projectile.ObstacleHit(b.Pos, b.Owner))
			continue
		}

		if g.hitsOpponent(b) {
			continue
		}
		kept = append(kept, b)
	}
	g.bullets = kept
}

func (g *Game) hitsOpponent(b projectile.Bullet) bool {
	r := b.Rect()
	switch b.Owner {
	case projectile.OwnerPlayer:
		if !r.Intersects(g.enemy.Rect) {
			return false
		}
		g.stats.ShotsHit++
		g.effects = append(g.effects, projectile.EnemyHit(b.Pos))
		if g.enemy.TakeDamage(g.cfg.Player.BulletDamage) {
			g.stats.Kills++
			g.log.Info("enemy down", "kills", g.stats.Kills, "tick", g.tick)
		}
		return true

	case projectile.OwnerEnemy:
		if !r.Intersects(g.player.Rect) {
			return false
		}
		g.effects = append(g.effects, projectile.PlayerHit(b.Pos))
		before := g.player.Health()
		if g.player.TakeDamage(g.cfg.Combat.EnemyBulletDamage) {
			g.stats.HitsTaken++
			if before-g.cfg.Combat.EnemyBulletDamage <= 0 {
				g.stats.Deaths++
				g.log.Info("player down", "deaths", g.stats.Deaths, "tick", g.tick)
			}
		}
		return true
	}
	return false
}

func (g *Game) handleItemEvents() {
	for _, ev := range g.items.DrainEvents() {
		switch ev.Kind {
		case pickup.EventCollected:
			who := "player"
			if _, ok := ev.Collector.(*enemy.Enemy); ok {
				who = "enemy"
				g.stats.EnemyItems++
			} else {
				g.stats.PlayerItems++
			}
			g.log.Debug("item collected", "id", ev.ItemID, "by", who, "healed", ev.Amount)
		case pickup.EventSpawned:
			g.log.Debug("item spawned", "id", ev.ItemID)
		case pickup.EventExpired:
			g.log.Debug("item lost", "id", ev.ItemID)
		}
	}
}

func (g *Game) result() StepResult {
	return StepResult{Tick: g.tick, Paused: g.paused, Stats: g.stats}
}

// StepResult is returned by Step.
type StepResult struct {
	Tick   uint64
	Paused bool
	Stats  Stats
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.Config { return g.cfg }

// Seed returns the seed the game was started with.
func (g *Game) Seed() int64 { return g.seed }

// Tick returns the number of simulated ticks.
func (g *Game) Tick() uint64 { return g.tick }

// Paused reports whether the simulation is paused.
func (g *Game) Paused() bool { return g.paused }

// Debug reports whether debug mode is on.
func (g *Game) Debug() bool { return g.debug }

// Stats returns the run statistics so far.
func (g *Game) Stats() Stats { return g.stats }

// Player returns the player.
func (g *Game) Player() *player.Player { return g.player }

// Enemy returns the enemy.
func (g *Game) Enemy() *enemy.Enemy { return g.enemy }

// Items returns the health item manager.
func (g *Game) Items() *pickup.Manager { return g.items }

// Arena returns the current level.
func (g *Game) Arena() *level.Arena { return g.arena }

// Bullets returns the bullets in flight. Callers must not modify the slice.
func (g *Game) Bullets() []projectile.Bullet { return g.bullets }

// Effects returns the live impact effects.
func (g *Game) Effects() []projectile.Effect { return g.effects }
