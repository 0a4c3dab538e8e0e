package game

import "github.com/vovakirdan/rogue-shot/internal/storage"

// Points awarded per event.
const (
	PointsPerKill = 100
	PointsPerHit  = 10
)

// Stats counts what happened during a run.
type Stats struct {
	Ticks       uint64
	Kills       int // Enemy deaths
	Deaths      int // Player deaths
	ShotsFired  int
	ShotsHit    int
	EnemyShots  int
	HitsTaken   int // Enemy bullets that damaged the player
	PlayerItems int // Health items collected by the player
	EnemyItems  int // Health items collected by the enemy
}

// Score derives the run score from the counters.
func (s Stats) Score() int {
	return s.Kills*PointsPerKill + s.ShotsHit*PointsPerHit
}

// Accuracy returns the fraction of player shots that hit, or 0.
func (s Stats) Accuracy() float64 {
	if s.ShotsFired == 0 {
		return 0
	}
	return float64(s.ShotsHit) / float64(s.ShotsFired)
}

// Record converts the run so far into a storage row.
func (g *Game) Record(difficulty string) storage.Run {
	s := g.stats
	return storage.Run{
		Seed:        g.seed,
		Difficulty:  difficulty,
		Ticks:       int64(s.Ticks),
		Kills:       s.Kills,
		Deaths:      s.Deaths,
		ShotsFired:  s.ShotsFired,
		ShotsHit:    s.ShotsHit,
		PlayerItems: s.PlayerItems,
		EnemyItems:  s.EnemyItems,
		Score:       s.Score(),
	}
}
