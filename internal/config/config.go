// Package config provides YAML-based tuning for the simulation and the
// difficulty presets layered on top of it.
package config

// Config contains every tunable of the simulation.
type Config struct {
	World       WorldConfig       `yaml:"world"`
	Physics     PhysicsConfig     `yaml:"physics"`
	Player      PlayerConfig      `yaml:"player"`
	Enemy       EnemyConfig       `yaml:"enemy"`
	Combat      CombatConfig      `yaml:"combat"`
	HealthItems HealthItemsConfig `yaml:"health_items"`
	Level       LevelConfig       `yaml:"level"`
}

// WorldConfig defines the playfield in world units.
type WorldConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	CullMargin float64 `yaml:"cull_margin"` // Projectiles further than this outside the world are dropped
}

// PhysicsConfig defines parameters shared by every mover.
type PhysicsConfig struct {
	Gravity   float64 `yaml:"gravity"`
	Tolerance float64 `yaml:"tolerance"` // Face classification slack for collision resolution
}

// PlayerConfig defines the player controller.
type PlayerConfig struct {
	Width              float64 `yaml:"width"`
	Height             float64 `yaml:"height"`
	SpawnX             float64 `yaml:"spawn_x"`
	SpawnY             float64 `yaml:"spawn_y"`
	MoveSpeed          float64 `yaml:"move_speed"`
	JumpSpeed          float64 `yaml:"jump_speed"`
	FastFall           float64 `yaml:"fast_fall"`
	MaxHealth          int     `yaml:"max_health"`
	InvulnerableFrames int     `yaml:"invulnerable_frames"`
	BulletSpeed        float64 `yaml:"bullet_speed"`
	BulletSize         float64 `yaml:"bullet_size"`
	BulletDamage       int     `yaml:"bullet_damage"`
	CoyoteFrames       int     `yaml:"coyote_frames"`      // 0 disables
	JumpBufferFrames   int     `yaml:"jump_buffer_frames"` // 0 disables
}

// EnemyConfig defines enemy movement, sensing and behaviour timing.
type EnemyConfig struct {
	Width                float64 `yaml:"width"`
	Height               float64 `yaml:"height"`
	SpawnX               float64 `yaml:"spawn_x"`
	SpawnY               float64 `yaml:"spawn_y"`
	PatrolSpeed          float64 `yaml:"patrol_speed"`
	ChaseSpeed           float64 `yaml:"chase_speed"`
	AttackSpeed          float64 `yaml:"attack_speed"`
	FleeSpeed            float64 `yaml:"flee_speed"`
	SeekSpeed            float64 `yaml:"seek_speed"`
	SeekBoost            float64 `yaml:"seek_boost"`
	JumpSpeed            float64 `yaml:"jump_speed"`
	DetectionRange       float64 `yaml:"detection_range"`
	HealthDetectionRange float64 `yaml:"health_detection_range"`
	PathCheckInterval    int     `yaml:"path_check_interval"`
	PathSampleStep       float64 `yaml:"path_sample_step"`
	ProbeSize            float64 `yaml:"probe_size"`
	MinStateTime         int     `yaml:"min_state_time"`
	PatrolTurnInterval   int     `yaml:"patrol_turn_interval"`
	PatrolJumpChance     float64 `yaml:"patrol_jump_chance"`
	FleeJumpChance       float64 `yaml:"flee_jump_chance"`
	FleeTimeout          int     `yaml:"flee_timeout"`
	IdleAfter            int     `yaml:"idle_after"`
	IdleChance           float64 `yaml:"idle_chance"`
	RecoverHealth        int     `yaml:"recover_health"` // Seeking stops above this absolute health
}

// CombatConfig defines enemy health, shooting and damage routing.
type CombatConfig struct {
	EnemyMaxHealth    int     `yaml:"enemy_max_health"`
	FleeThreshold     int     `yaml:"flee_threshold"`
	AttackRange       float64 `yaml:"attack_range"`
	HitFleeChance     float64 `yaml:"hit_flee_chance"`
	HitSeekChance     float64 `yaml:"hit_seek_chance"`
	ShotCooldown      int     `yaml:"shot_cooldown"`
	ShotChance        float64 `yaml:"shot_chance"`
	AimNoise          float64 `yaml:"aim_noise"`
	EnemyBulletSpeed  float64 `yaml:"enemy_bullet_speed"`
	EnemyBulletSize   float64 `yaml:"enemy_bullet_size"`
	EnemyBulletDamage int     `yaml:"enemy_bullet_damage"`
}

// HealthItemsConfig defines collectible spawning and lifetime.
type HealthItemsConfig struct {
	MaxActive     int     `yaml:"max_active"`
	SpawnInterval int     `yaml:"spawn_interval"`
	EarlyLossLead int     `yaml:"early_loss_lead"` // Timer is raised to interval-lead after a premature loss
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	SpawnY        float64 `yaml:"spawn_y"`
	SpawnMinX     int     `yaml:"spawn_min_x"`
	SpawnMaxX     int     `yaml:"spawn_max_x"`
	MinFallSpeed  float64 `yaml:"min_fall_speed"`
	MaxFallSpeed  float64 `yaml:"max_fall_speed"`
	MinHeal       int     `yaml:"min_heal"`
	MaxHeal       int     `yaml:"max_heal"`
	Lifetime      int     `yaml:"lifetime"`
	DespawnMargin float64 `yaml:"despawn_margin"` // Items below world height + margin are lost

	Particles ParticleConfig `yaml:"particles"`
}

// ParticleConfig defines the collection burst.
type ParticleConfig struct {
	Count    int     `yaml:"count"`
	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`
	MinLife  int     `yaml:"min_life"`
	MaxLife  int     `yaml:"max_life"`
	MinSize  int     `yaml:"min_size"`
	MaxSize  int     `yaml:"max_size"`
}

// LevelConfig defines procedural platform placement.
type LevelConfig struct {
	GroundHeight    float64 `yaml:"ground_height"`
	StaticPlatforms int     `yaml:"static_platforms"`
	MovingPlatforms int     `yaml:"moving_platforms"`
	PlatformHeight  float64 `yaml:"platform_height"`
	StaticMinWidth  int     `yaml:"static_min_width"`
	StaticMaxWidth  int     `yaml:"static_max_width"`
	MovingMinWidth  int     `yaml:"moving_min_width"`
	MovingMaxWidth  int     `yaml:"moving_max_width"`
	MinY            int     `yaml:"min_y"`
	MaxY            int     `yaml:"max_y"`
	MinSpacing      float64 `yaml:"min_spacing"`
	MinMotionSpeed  float64 `yaml:"min_motion_speed"`
	MaxMotionSpeed  float64 `yaml:"max_motion_speed"`
	MinAmplitude    int     `yaml:"min_amplitude"`
	MaxAmplitude    int     `yaml:"max_amplitude"`
	PhaseStep       float64 `yaml:"phase_step"` // Phase advance per tick per unit of speed
	FootholdOffsetX float64 `yaml:"foothold_offset_x"`
	FootholdOffsetY float64 `yaml:"foothold_offset_y"`
	FootholdWidth   float64 `yaml:"foothold_width"`
}

// GroundY returns the top edge of the ground strip.
func (c Config) GroundY() float64 {
	return c.World.Height - c.Level.GroundHeight
}
