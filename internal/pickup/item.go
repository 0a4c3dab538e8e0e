package pickup

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/rogue-shot/internal/config"
	"github.com/vovakirdan/rogue-shot/internal/core"
)

// Particle is one spark of the collection burst.
type Particle struct {
	Pos  core.Vec2
	Vel  core.Vec2
	Life int
	Size int
}

// Item is a falling health pack. After collection it stays around inactive
// until its particles have faded.
type Item struct {
	ID        int
	Rect      core.Rect
	FallSpeed float64
	Lifetime  int // Frames left before it vanishes uncollected
	Heal      int
	Particles []Particle

	active   bool
	registry *Registry
	burst    config.ParticleConfig
}

// NewItem creates an item with its top-left corner at pos. The item starts
// inactive when the registry is already full.
func NewItem(id int, pos core.Vec2, cfg config.HealthItemsConfig, rng *rand.Rand, reg *Registry) *Item {
	it := &Item{
		ID:        id,
		Rect:      core.NewRect(pos.X, pos.Y, cfg.Width, cfg.Height),
		FallSpeed: core.RandFloat(rng, cfg.MinFallSpeed, cfg.MaxFallSpeed),
		Lifetime:  cfg.Lifetime,
		Heal:      core.RandInt(rng, cfg.MinHeal, cfg.MaxHeal),
		registry:  reg,
		burst:     cfg.Particles,
	}
	it.active = reg.Acquire(id)
	return it
}

// Active reports whether the item can still be collected.
func (it *Item) Active() bool {
	return it.active
}

func (it *Item) deactivate() {
	if !it.active {
		return
	}
	it.active = false
	it.registry.Release(it.ID)
}

// Update ages and moves an active item. It comes to rest on the first
// obstacle it overlaps, and is lost once its lifetime runs out or its top
// passes despawnY. Returns whether the item is still active.
func (it *Item) Update(solids []core.Solid, despawnY float64) bool {
	if !it.active {
		return false
	}

	it.Lifetime--
	if it.Lifetime <= 0 {
		it.deactivate()
		return false
	}

	it.Rect.Y += it.FallSpeed
	for i := range solids {
		if it.Rect.Intersects(solids[i].Rect) {
			it.Rect.Y = solids[i].Rect.Y - it.Rect.H
			break
		}
	}

	if it.Rect.Y > despawnY {
		it.deactivate()
		return false
	}
	return true
}

// Collect heals h by the item's amount, capped at its maximum, and bursts
// into particles. A collector already at full health leaves the item alone.
func (it *Item) Collect(h Healable, rng *rand.Rand) bool {
	if !it.active || h.Health() >= h.MaxHealth() {
		return false
	}
	h.SetHealth(min(h.Health()+it.Heal, h.MaxHealth()))
	it.deactivate()

	c := it.Rect.Center()
	b := it.burst
	for i := 0; i < b.Count; i++ {
		angle := core.RandFloat(rng, 0, 2*math.Pi)
		speed := core.RandFloat(rng, b.MinSpeed, b.MaxSpeed)
		it.Particles = append(it.Particles, Particle{
			Pos:  c,
			Vel:  core.Vec2{X: speed * math.Cos(angle), Y: speed * math.Sin(angle)},
			Life: core.RandInt(rng, b.MinLife, b.MaxLife),
			Size: core.RandInt(rng, b.MinSize, b.MaxSize),
		})
	}
	return true
}

// UpdateParticles advances the burst of an inactive item and reports
// whether any particle is left.
func (it *Item) UpdateParticles() bool {
	if it.active {
		return false
	}
	kept := it.Particles[:0]
	for _, p := range it.Particles {
		p.Pos = p.Pos.Add(p.Vel)
		p.Life--
		if p.Life > 0 {
			kept = append(kept, p)
		}
	}
	it.Particles = kept
	return len(it.Particles) > 0
}
