// Package player implements the input-driven player controller.
package player

import (
	"github.com/vovakirdan/rogue-shot/internal/config"
	"github.com/vovakirdan/rogue-shot/internal/core"
	"github.com/vovakirdan/rogue-shot/internal/projectile"
)

// Input is the subset of the frame input the controller reads.
type Input struct {
	Left     bool
	Right    bool
	Jump     bool
	FastFall bool
}

// InputFromFrame extracts the movement keys from a frame.
func InputFromFrame(f core.InputFrame) Input {
	return Input{
		Left:     f.Has(core.ActionMoveLeft),
		Right:    f.Has(core.ActionMoveRight),
		Jump:     f.Has(core.ActionJump),
		FastFall: f.Has(core.ActionFastFall),
	}
}

// Player is the controllable character.
type Player struct {
	Rect core.Rect
	Vel  core.Vec2

	health       int
	invulnerable int // Frames left during which damage is ignored
	grounded     bool
	support      int // Obstacle index stood on, -1 when airborne
	respawnPoint core.Vec2

	coyote int // Frames left in which a jump is still allowed after leaving ground
	buffer int // Frames left in which an early jump press is remembered

	cfg       config.PlayerConfig
	gravity   float64
	tolerance float64
	worldW    float64
}

// New creates a player at the configured spawn point.
func New(cfg config.Config) *Player {
	p := &Player{
		Rect:      core.NewRect(cfg.Player.SpawnX, cfg.Player.SpawnY, cfg.Player.Width, cfg.Player.Height),
		health:    cfg.Player.MaxHealth,
		support:   -1,
		cfg:       cfg.Player,
		gravity:   cfg.Physics.Gravity,
		tolerance: cfg.Physics.Tolerance,
		worldW:    cfg.World.Width,
	}
	p.respawnPoint = p.Rect.Pos()
	return p
}

// Update advances the player by one tick against the given terrain.
func (p *Player) Update(in Input, solids []core.Solid) {
	if p.invulnerable > 0 {
		p.invulnerable--
	}

	// Horizontal: fixed speed, right wins when both are held
	p.Vel.X = 0
	if in.Left {
		p.Vel.X = -p.cfg.MoveSpeed
	}
	if in.Right {
		p.Vel.X = p.cfg.MoveSpeed
	}
	p.Rect.X += p.Vel.X
	core.ResolveHorizontal(&p.Rect, p.Vel.X, solids, p.tolerance)
	p.clampX()

	p.updateJump(in)

	if in.FastFall && !p.grounded {
		p.Vel.Y += p.cfg.FastFall
	}

	p.Vel.Y += p.gravity
	p.Rect.Y += p.Vel.Y
	hit := core.ResolveVertical(&p.Rect, p.Vel.Y, solids, p.tolerance, p.support)
	if hit.Ceiling && p.Vel.Y < 0 {
		p.Vel.Y = 0
	}

	p.grounded = hit.Grounded()
	p.support = hit.Landed
	if p.grounded {
		p.Vel.Y = 0
		// Vertical carry is already part of the landing snap.
		p.Rect.X += solids[p.support].Displacement().X
		p.clampX()
	}
}

func (p *Player) updateJump(in Input) {
	if in.Jump {
		p.buffer = p.cfg.JumpBufferFrames
	} else if p.buffer > 0 {
		p.buffer--
	}
	if p.grounded {
		p.coyote = p.cfg.CoyoteFrames
	} else if p.coyote > 0 {
		p.coyote--
	}

	canJump := p.grounded || p.coyote > 0
	wantJump := in.Jump || p.buffer > 0
	if canJump && wantJump {
		p.Vel.Y = -p.cfg.JumpSpeed
		p.grounded = false
		p.support = -1
		p.coyote = 0
		p.buffer = 0
	}
}

func (p *Player) clampX() {
	p.Rect.X = core.ClampF(p.Rect.X, 0, p.worldW-p.Rect.W)
}

// Shoot fires a bullet from the player's centre towards target.
// It returns false when target is the centre itself.
func (p *Player) Shoot(target core.Vec2) (projectile.Bullet, bool) {
	c := p.Rect.Center()
	d := target.Sub(c)
	if d.X == 0 && d.Y == 0 {
		return projectile.Bullet{}, false
	}
	return projectile.New(projectile.OwnerPlayer, c, d.Normalize(), p.cfg.BulletSpeed, p.cfg.BulletSize), true
}

// TakeDamage applies damage unless the player is invulnerable.
// It reports whether the damage was applied.
func (p *Player) TakeDamage(amount int) bool {
	if p.invulnerable > 0 {
		return false
	}
	p.health -= amount
	p.invulnerable = p.cfg.InvulnerableFrames
	if p.health <= 0 {
		p.Respawn()
	}
	return true
}

// Respawn restores the player at the respawn point with a doubled
// invulnerability window.
func (p *Player) Respawn() {
	p.health = p.cfg.MaxHealth
	p.Rect.X = p.respawnPoint.X
	p.Rect.Y = p.respawnPoint.Y
	p.Vel = core.Vec2{}
	p.grounded = false
	p.support = -1
	p.coyote = 0
	p.buffer = 0
	p.invulnerable = p.cfg.InvulnerableFrames * 2
}

// SetRespawnPoint moves the respawn point (top-left corner).
func (p *Player) SetRespawnPoint(pos core.Vec2) {
	p.respawnPoint = pos
}

// RespawnPoint returns the current respawn point.
func (p *Player) RespawnPoint() core.Vec2 {
	return p.respawnPoint
}

// Land forgets any support and vertical speed, used after the level is rebuilt.
func (p *Player) Land() {
	p.Vel.Y = 0
	p.grounded = false
	p.support = -1
}

// Health returns the current health.
func (p *Player) Health() int { return p.health }

// MaxHealth returns the health cap.
func (p *Player) MaxHealth() int { return p.cfg.MaxHealth }

// SetHealth sets health, clamped to [0, MaxHealth].
func (p *Player) SetHealth(h int) { p.health = core.Clamp(h, 0, p.cfg.MaxHealth) }

// Bounds returns the player's body.
func (p *Player) Bounds() core.Rect { return p.Rect }

// Invulnerable returns the frames of invulnerability left.
func (p *Player) Invulnerable() int { return p.invulnerable }

// Hidden reports whether the sprite is in the off phase of the
// invulnerability blink.
func (p *Player) Hidden() bool {
	return p.invulnerable > 0 && p.invulnerable%8 >= 4
}

// Grounded reports whether the player ended the last tick standing on terrain.
func (p *Player) Grounded() bool { return p.grounded }

// Support returns the obstacle index the player stands on, or -1.
func (p *Player) Support() int { return p.support }
