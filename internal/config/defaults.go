package config

import (
	_ "embed"
)

//go:embed defaults/rogueshot.yaml
var defaultYAML []byte

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		World: WorldConfig{
			Width:      1000,
			Height:     600,
			CullMargin: 50,
		},
		Physics: PhysicsConfig{
			Gravity:   0.8,
			Tolerance: 5,
		},
		Player: PlayerConfig{
			Width:              50,
			Height:             50,
			SpawnX:             500,
			SpawnY:             500,
			MoveSpeed:          5,
			JumpSpeed:          15,
			FastFall:           1,
			MaxHealth:          100,
			InvulnerableFrames: 60,
			BulletSpeed:        15,
			BulletSize:         5,
			BulletDamage:       10,
		},
		Enemy: EnemyConfig{
			Width:                50,
			Height:               50,
			SpawnX:               900,
			SpawnY:               500,
			PatrolSpeed:          2,
			ChaseSpeed:           3,
			AttackSpeed:          1,
			FleeSpeed:            3,
			SeekSpeed:            4,
			SeekBoost:            1.5,
			JumpSpeed:            15,
			DetectionRange:       200,
			HealthDetectionRange: 300,
			PathCheckInterval:    15,
			PathSampleStep:       10,
			ProbeSize:            4,
			MinStateTime:         30,
			PatrolTurnInterval:   60,
			PatrolJumpChance:     0.02,
			FleeJumpChance:       0.08,
			FleeTimeout:          120,
			IdleAfter:            300,
			IdleChance:           0.1,
			RecoverHealth:        50,
		},
		Combat: CombatConfig{
			EnemyMaxHealth:    100,
			FleeThreshold:     30,
			AttackRange:       200, // Same as detection range, so Chase is only left, never entered
			HitFleeChance:     0.3,
			HitSeekChance:     0.7,
			ShotCooldown:      30,
			ShotChance:        0.05,
			AimNoise:          0.2,
			EnemyBulletSpeed:  10,
			EnemyBulletSize:   5,
			EnemyBulletDamage: 5,
		},
		HealthItems: HealthItemsConfig{
			MaxActive:     2,
			SpawnInterval: 600, // 10 seconds at 60 ticks
			EarlyLossLead: 180,
			Width:         30,
			Height:        30,
			SpawnY:        -50,
			SpawnMinX:     50,
			SpawnMaxX:     950,
			MinFallSpeed:  2,
			MaxFallSpeed:  4,
			MinHeal:       10,
			MaxHeal:       25,
			Lifetime:      420,
			DespawnMargin: 50,
			Particles: ParticleConfig{
				Count:    15,
				MinSpeed: 1,
				MaxSpeed: 3,
				MinLife:  10,
				MaxLife:  20,
				MinSize:  2,
				MaxSize:  6,
			},
		},
		Level: LevelConfig{
			GroundHeight:    50,
			StaticPlatforms: 8,
			MovingPlatforms: 4,
			PlatformHeight:  20,
			StaticMinWidth:  100,
			StaticMaxWidth:  200,
			MovingMinWidth:  80,
			MovingMaxWidth:  150,
			MinY:            200,
			MaxY:            500,
			MinSpacing:      100,
			MinMotionSpeed:  0.5,
			MaxMotionSpeed:  2,
			MinAmplitude:    30,
			MaxAmplitude:    80,
			PhaseStep:       0.05,
			FootholdOffsetX: -50,
			FootholdOffsetY: 100,
			FootholdWidth:   150,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultYAML
}
