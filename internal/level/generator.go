package level

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/rogue-shot/internal/config"
	"github.com/vovakirdan/rogue-shot/internal/core"
)

// motionKinds is sampled uniformly, so linear motion is twice as likely as circular.
var motionKinds = []MotionKind{MotionHorizontal, MotionVertical, MotionHorizontal, MotionVertical, MotionCircular}

// Generator builds randomized levels.
type Generator struct {
	world config.WorldConfig
	cfg   config.LevelConfig
	rng   *rand.Rand
}

// NewGenerator creates a level generator drawing from rng.
func NewGenerator(cfg config.Config, rng *rand.Rand) *Generator {
	return &Generator{world: cfg.World, cfg: cfg.Level, rng: rng}
}

// Generate lays out the ground, the static platforms, one foothold close to
// playerPos (the player's top-left corner) and the moving platforms.
//
// Candidates that land within min_spacing of an already placed platform on
// both axes are skipped, not relocated, so a level may hold fewer platforms
// than configured.
func (g *Generator) Generate(playerPos core.Vec2) *Arena {
	c := g.cfg
	placed := make([]core.Vec2, 0, 1+c.StaticPlatforms+c.MovingPlatforms)
	obstacles := make([]Obstacle, 0, 2+c.StaticPlatforms+c.MovingPlatforms)

	groundY := g.world.Height - c.GroundHeight
	ground := NewStatic(core.NewRect(0, groundY, g.world.Width, c.GroundHeight))
	ground.Ground = true
	obstacles = append(obstacles, ground)
	placed = append(placed, ground.Rect.Pos())

	for i := 0; i < c.StaticPlatforms; i++ {
		w := core.RandInt(g.rng, c.StaticMinWidth, c.StaticMaxWidth)
		pos := g.candidate(w)
		if g.crowded(pos, placed) {
			continue
		}
		obstacles = append(obstacles, NewStatic(core.NewRect(pos.X, pos.Y, float64(w), c.PlatformHeight)))
		placed = append(placed, pos)
	}

	for i := 0; i < c.MovingPlatforms; i++ {
		w := core.RandInt(g.rng, c.MovingMinWidth, c.MovingMaxWidth)
		pos := g.candidate(w)
		if g.crowded(pos, placed) {
			continue
		}
		m := Motion{
			Kind:      motionKinds[g.rng.Intn(len(motionKinds))],
			Speed:     core.RandFloat(g.rng, c.MinMotionSpeed, c.MaxMotionSpeed),
			Amplitude: float64(core.RandInt(g.rng, c.MinAmplitude, c.MaxAmplitude)),
			Phase:     core.RandFloat(g.rng, 0, 2*math.Pi),
		}
		obstacles = append(obstacles, NewMoving(pos, float64(w), c.PlatformHeight, m))
		placed = append(placed, pos)
	}

	foothold := core.NewRect(playerPos.X+c.FootholdOffsetX, playerPos.Y+c.FootholdOffsetY, c.FootholdWidth, c.PlatformHeight)
	obstacles = append(obstacles, NewStatic(foothold))

	return NewArena(obstacles, c.PhaseStep)
}

// candidate picks a top-left corner for a platform of width w.
func (g *Generator) candidate(w int) core.Vec2 {
	maxX := int(g.world.Width) - w
	if maxX < 0 {
		maxX = 0
	}
	return core.Vec2{
		X: float64(core.RandInt(g.rng, 0, maxX)),
		Y: float64(core.RandInt(g.rng, g.cfg.MinY, g.cfg.MaxY)),
	}
}

// crowded reports whether pos is too close to any placed corner on both axes.
func (g *Generator) crowded(pos core.Vec2, placed []core.Vec2) bool {
	for _, p := range placed {
		if math.Abs(pos.X-p.X) < g.cfg.MinSpacing && math.Abs(pos.Y-p.Y) < g.cfg.MinSpacing {
			return true
		}
	}
	return false
}
