package game

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/rogue-shot/internal/core"
)

// Autopilot plays the player side for headless runs. It keeps a fighting
// distance from the enemy, fires at it on a fixed rhythm and goes for health
// items when hurt.
type Autopilot struct {
	FireEvery  int     // Ticks between shots
	MinRange   float64 // Back off when closer than this
	MaxRange   float64 // Close in when farther than this
	JumpChance float64 // Per-tick chance of a random hop
	HealBelow  float64 // Health fraction under which items are sought

	rng  *rand.Rand
	tick int
}

// NewAutopilot returns an autopilot with moderate defaults.
func NewAutopilot(rng *rand.Rand) *Autopilot {
	return &Autopilot{
		FireEvery:  20,
		MinRange:   120,
		MaxRange:   250,
		JumpChance: 0.01,
		HealBelow:  0.5,
		rng:        rng,
	}
}

// Next chooses the input for the coming tick.
func (a *Autopilot) Next(s Snapshot) core.InputFrame {
	a.tick++
	in := core.NewInputFrame()

	me := s.Player.Rect.Center()
	foe := s.Enemy.Rect.Center()
	in.Aim = foe

	goal, chase := foe, true
	if float64(s.Player.Health) < a.HealBelow*float64(s.Player.MaxHealth) {
		if item, ok := nearestItem(me, s.Items); ok {
			goal, chase = item, false
		}
	}

	dx := goal.X - me.X
	switch {
	case !chase && math.Abs(dx) > 5:
		a.steer(&in, dx)
	case chase && math.Abs(dx) > a.MaxRange:
		a.steer(&in, dx)
	case chase && math.Abs(dx) < a.MinRange:
		a.steer(&in, -dx)
	}

	if s.Player.Grounded && (goal.Y < me.Y-60 || core.Chance(a.rng, a.JumpChance)) {
		in.Set(core.ActionJump)
	}
	if a.FireEvery > 0 && a.tick%a.FireEvery == 0 {
		in.Set(core.ActionFire)
	}
	return in
}

func (a *Autopilot) steer(in *core.InputFrame, dx float64) {
	switch core.Sign(dx) {
	case -1:
		in.Set(core.ActionMoveLeft)
	case 1:
		in.Set(core.ActionMoveRight)
	}
}

func nearestItem(from core.Vec2, items []ItemView) (core.Vec2, bool) {
	best, found := core.Vec2{}, false
	bestDist := math.Inf(1)
	for _, it := range items {
		if !it.Active {
			continue
		}
		c := it.Rect.Center()
		if d := core.Distance(from, c); d < bestDist {
			best, bestDist, found = c, d, true
		}
	}
	return best, found
}
