package config

import (
	"errors"
	"fmt"
)

// Validate reports every constraint the config violates, joined into one error.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}
	chance := func(name string, p float64) {
		check(p >= 0 && p <= 1, "%s must be within [0, 1], got %v", name, p)
	}

	w := c.World
	check(w.Width > 0 && w.Height > 0, "world size must be positive, got %vx%v", w.Width, w.Height)
	check(w.CullMargin >= 0, "world.cull_margin must not be negative")

	check(c.Physics.Gravity > 0, "physics.gravity must be positive")
	check(c.Physics.Tolerance >= 0, "physics.tolerance must not be negative")

	p := c.Player
	check(p.Width > 0 && p.Height > 0, "player size must be positive")
	check(p.MaxHealth > 0, "player.max_health must be positive")
	check(p.InvulnerableFrames >= 0, "player.invulnerable_frames must not be negative")
	check(p.BulletSpeed > 0 && p.BulletSize > 0, "player bullets need a positive speed and size")
	check(p.CoyoteFrames >= 0 && p.JumpBufferFrames >= 0, "player coyote/jump buffer frames must not be negative")

	e := c.Enemy
	check(e.Width > 0 && e.Height > 0, "enemy size must be positive")
	check(e.PathCheckInterval > 0, "enemy.path_check_interval must be positive")
	check(e.PathSampleStep > 0, "enemy.path_sample_step must be positive")
	check(e.MinStateTime >= 0, "enemy.min_state_time must not be negative")
	check(e.PatrolTurnInterval > 0, "enemy.patrol_turn_interval must be positive")
	chance("enemy.patrol_jump_chance", e.PatrolJumpChance)
	chance("enemy.flee_jump_chance", e.FleeJumpChance)
	chance("enemy.idle_chance", e.IdleChance)

	cb := c.Combat
	check(cb.EnemyMaxHealth > 0, "combat.enemy_max_health must be positive")
	check(cb.FleeThreshold >= 0 && cb.FleeThreshold <= cb.EnemyMaxHealth,
		"combat.flee_threshold must be within [0, enemy_max_health]")
	check(cb.ShotCooldown >= 0, "combat.shot_cooldown must not be negative")
	check(cb.EnemyBulletSpeed > 0 && cb.EnemyBulletSize > 0, "enemy bullets need a positive speed and size")
	chance("combat.hit_flee_chance", cb.HitFleeChance)
	chance("combat.hit_seek_chance", cb.HitSeekChance)
	chance("combat.shot_chance", cb.ShotChance)

	h := c.HealthItems
	check(h.MaxActive >= 1, "health_items.max_active must be at least 1")
	check(h.SpawnInterval > 0, "health_items.spawn_interval must be positive")
	check(h.EarlyLossLead >= 0 && h.EarlyLossLead <= h.SpawnInterval,
		"health_items.early_loss_lead must be within [0, spawn_interval]")
	check(h.Width > 0 && h.Height > 0, "health item size must be positive")
	check(h.SpawnMinX <= h.SpawnMaxX, "health_items.spawn_min_x must not exceed spawn_max_x")
	check(h.MinFallSpeed > 0 && h.MinFallSpeed <= h.MaxFallSpeed, "health item fall speed range is invalid")
	check(h.MinHeal > 0 && h.MinHeal <= h.MaxHeal, "health item heal range is invalid")
	check(h.Lifetime > 0, "health_items.lifetime must be positive")
	pc := h.Particles
	check(pc.Count >= 0, "particle count must not be negative")
	check(pc.MinSpeed <= pc.MaxSpeed, "particle speed range is invalid")
	check(pc.MinLife > 0 && pc.MinLife <= pc.MaxLife, "particle life range is invalid")
	check(pc.MinSize <= pc.MaxSize, "particle size range is invalid")

	l := c.Level
	check(l.GroundHeight > 0 && l.GroundHeight < w.Height, "level.ground_height must be within (0, world height)")
	check(l.StaticPlatforms >= 0 && l.MovingPlatforms >= 0, "platform counts must not be negative")
	check(l.PlatformHeight > 0, "level.platform_height must be positive")
	check(l.StaticMinWidth > 0 && l.StaticMinWidth <= l.StaticMaxWidth, "static platform width range is invalid")
	check(l.MovingMinWidth > 0 && l.MovingMinWidth <= l.MovingMaxWidth, "moving platform width range is invalid")
	check(float64(l.StaticMaxWidth) <= w.Width && float64(l.MovingMaxWidth) <= w.Width,
		"platforms must fit inside the world width")
	check(l.MinY <= l.MaxY, "level.min_y must not exceed max_y")
	check(l.MinMotionSpeed <= l.MaxMotionSpeed, "platform motion speed range is invalid")
	check(l.MinAmplitude <= l.MaxAmplitude, "platform amplitude range is invalid")

	return errors.Join(errs...)
}
