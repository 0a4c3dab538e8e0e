package enemy

import (
	"github.com/vovakirdan/rogue-shot/internal/core"
	"github.com/vovakirdan/rogue-shot/internal/projectile"
)

// Health returns the current health.
func (e *Enemy) Health() int { return e.health }

// MaxHealth returns the health cap.
func (e *Enemy) MaxHealth() int { return e.combat.EnemyMaxHealth }

// SetHealth sets health, clamped to [0, MaxHealth].
func (e *Enemy) SetHealth(h int) { e.health = core.Clamp(h, 0, e.combat.EnemyMaxHealth) }

// ShotCooldown returns the frames left before the enemy may fire again.
func (e *Enemy) ShotCooldown() int { return e.shotCooldown }

// TakeDamage applies a hit. A lethal hit respawns the enemy and returns true.
// Otherwise the hit may scare it into fleeing or, when health is low, send it
// looking for an item; both reactions respect the transition cooldown.
func (e *Enemy) TakeDamage(amount int) (killed bool) {
	e.health -= amount
	if e.health <= 0 {
		e.Respawn()
		return true
	}

	switch {
	case core.Chance(e.rng, e.combat.HitFleeChance):
		e.TransitionTo(StateFlee)
	case e.health <= e.combat.FleeThreshold && core.Chance(e.rng, e.combat.HitSeekChance):
		e.TransitionTo(StateSeekHealth)
	}
	return false
}

// Respawn restores full health and drops the enemy into a random corner of
// the world, back in Patrol.
func (e *Enemy) Respawn() {
	e.health = e.combat.EnemyMaxHealth
	e.state = StatePatrol
	e.stateTimer = 0
	e.target = 0
	e.requested = false

	corners := e.Corners()
	c := corners[e.rng.Intn(len(corners))]
	e.Rect.X, e.Rect.Y = c.X, c.Y
	e.Vel = core.Vec2{X: e.randomDirection() * e.cfg.PatrolSpeed}
	e.grounded = false
	e.support = -1
}

// Corners returns the four respawn positions: the top corners of the world
// and the two ends of the ground.
func (e *Enemy) Corners() [4]core.Vec2 {
	right := e.worldW - e.Rect.W
	floor := e.worldH - e.Rect.H - e.groundH
	return [4]core.Vec2{
		{X: 0, Y: 0},
		{X: right, Y: 0},
		{X: 0, Y: floor},
		{X: right, Y: floor},
	}
}

// TryShoot fires at target when attacking, off cooldown and the per-frame
// trigger roll succeeds. The aim is perturbed per axis by the configured noise.
func (e *Enemy) TryShoot(target core.Vec2) (projectile.Bullet, bool) {
	if e.state != StateAttack || e.shotCooldown > 0 {
		return projectile.Bullet{}, false
	}
	if !core.Chance(e.rng, e.combat.ShotChance) {
		return projectile.Bullet{}, false
	}
	e.shotCooldown = e.combat.ShotCooldown

	c := e.Rect.Center()
	dir := target.Sub(c).Normalize()
	noise := e.combat.AimNoise
	dir.X += core.RandFloat(e.rng, -noise, noise)
	dir.Y += core.RandFloat(e.rng, -noise, noise)
	dir = dir.Normalize()

	return projectile.New(projectile.OwnerEnemy, c, dir, e.combat.EnemyBulletSpeed, e.combat.EnemyBulletSize), true
}
