// Package enemy implements the computer-controlled opponent: a six-state
// behaviour machine, its motor behaviour per state, local sensing used to
// decide when to jump, and combat.
package enemy

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/rogue-shot/internal/config"
	"github.com/vovakirdan/rogue-shot/internal/core"
	"github.com/vovakirdan/rogue-shot/internal/pickup"
)

// State is the enemy's current behaviour.
type State int

const (
	StatePatrol State = iota // Initial state
	StateChase
	StateAttack
	StateFlee
	StateIdle
	StateSeekHealth
)

// States lists every state in declaration order.
func States() []State {
	return []State{StatePatrol, StateChase, StateAttack, StateFlee, StateIdle, StateSeekHealth}
}

// String returns the label shown by the debug overlay.
func (s State) String() string {
	switch s {
	case StatePatrol:
		return "patrol"
	case StateChase:
		return "chase"
	case StateAttack:
		return "attack"
	case StateFlee:
		return "flee"
	case StateIdle:
		return "idle"
	case StateSeekHealth:
		return "seek_health"
	default:
		return "unknown"
	}
}

// Color is the indicator colour drawn next to the enemy for each state.
func (s State) Color() core.Color {
	switch s {
	case StatePatrol:
		return core.ColorCyan
	case StateChase:
		return core.ColorOrange
	case StateAttack:
		return core.ColorRed
	case StateFlee:
		return core.ColorMagenta
	case StateIdle:
		return core.ColorGray
	case StateSeekHealth:
		return core.ColorGreen
	default:
		return core.ColorWhite
	}
}

// Snapshot is the immutable view of the world the decision policy reads.
type Snapshot struct {
	State     State
	StateTime int // Frames spent in State
	Health    int
	Center    core.Vec2

	HasPlayer    bool
	PlayerCenter core.Vec2

	Items  []pickup.View // Active items only
	Target int           // Item being sought, 0 for none
}

// Decision is the outcome of a policy evaluation.
type Decision struct {
	State  State
	Target int
}

// Policy holds the thresholds of the decision function.
type Policy struct {
	FleeThreshold        int
	RecoverHealth        int
	AttackRange          float64
	DetectionRange       float64
	HealthDetectionRange float64
	IdleAfter            int
	IdleChance           float64
}

// PolicyFromConfig extracts the policy thresholds from cfg.
func PolicyFromConfig(cfg config.Config) Policy {
	return Policy{
		FleeThreshold:        cfg.Combat.FleeThreshold,
		RecoverHealth:        cfg.Enemy.RecoverHealth,
		AttackRange:          cfg.Combat.AttackRange,
		DetectionRange:       cfg.Enemy.DetectionRange,
		HealthDetectionRange: cfg.Enemy.HealthDetectionRange,
		IdleAfter:            cfg.Enemy.IdleAfter,
		IdleChance:           cfg.Enemy.IdleChance,
	}
}

// Decide returns the state the enemy wants to be in next. The caller is
// responsible for the transition cooldown.
//
// Priority: low health with an item in reach overrides everything, no player
// means patrol, seeking continues until the item is gone or health recovered,
// and otherwise the distance to the player picks Attack, Chase or Patrol.
func (p Policy) Decide(s Snapshot, rng *rand.Rand) Decision {
	d := Decision{State: s.State, Target: s.Target}

	if s.Health <= p.FleeThreshold && len(s.Items) > 0 && s.State != StateSeekHealth {
		d.Target = p.Nearest(s.Center, s.Items)
		if d.Target != 0 {
			d.State = StateSeekHealth
			return d
		}
	}

	if !s.HasPlayer {
		if s.State != StateSeekHealth {
			d.State = StatePatrol
		}
		return d
	}

	dist := core.Distance(s.Center, s.PlayerCenter)

	if s.State == StateSeekHealth {
		switch {
		case !hasItem(s.Items, s.Target) || s.Health > p.RecoverHealth:
			d.State = p.ladder(dist)
		case dist <= p.AttackRange/2:
			d.State = StateAttack
		}
		return d
	}

	switch {
	case dist <= p.AttackRange:
		d.State = StateAttack
	case dist <= p.DetectionRange:
		d.State = StateChase
	case s.State == StateChase:
		d.State = StatePatrol
	case s.State == StatePatrol && s.StateTime > p.IdleAfter:
		if core.Chance(rng, p.IdleChance) {
			d.State = StateIdle
		}
	}
	return d
}

func (p Policy) ladder(dist float64) State {
	switch {
	case dist <= p.AttackRange:
		return StateAttack
	case dist <= p.DetectionRange:
		return StateChase
	default:
		return StatePatrol
	}
}

// Nearest returns the ID of the closest item within the health detection
// range, or 0 if there is none.
func (p Policy) Nearest(from core.Vec2, items []pickup.View) int {
	best, bestDist := 0, math.Inf(1)
	for _, it := range items {
		if !it.Active {
			continue
		}
		d := core.Distance(from, it.Rect.Center())
		if d < bestDist && d <= p.HealthDetectionRange {
			best, bestDist = it.ID, d
		}
	}
	return best
}

func hasItem(items []pickup.View, id int) bool {
	if id == 0 {
		return false
	}
	for _, it := range items {
		if it.ID == id && it.Active {
			return true
		}
	}
	return false
}
