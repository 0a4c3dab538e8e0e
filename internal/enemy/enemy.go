package enemy

import (
	"math/rand"

	"github.com/vovakirdan/rogue-shot/internal/config"
	"github.com/vovakirdan/rogue-shot/internal/core"
	"github.com/vovakirdan/rogue-shot/internal/pickup"
)

// Items is what the enemy needs from the health item manager.
type Items interface {
	Views() []pickup.View
	Collect(id int, h pickup.Healable) bool
}

// World is the per-tick context of an enemy update.
type World struct {
	Solids []core.Solid
	Player *core.Rect // nil when there is no player
	Items  Items      // may be nil
}

func (w World) views() []pickup.View {
	if w.Items == nil {
		return nil
	}
	return w.Items.Views()
}

// Enemy is the computer-controlled opponent.
type Enemy struct {
	Rect core.Rect
	Vel  core.Vec2

	state      State
	stateTimer int
	cooldown   int // Frames before another transition is allowed
	target     int // Item ID being sought
	request    State
	requested  bool

	health       int
	shotCooldown int

	grounded  bool
	support   int
	pathTimer int

	cfg    config.EnemyConfig
	combat config.CombatConfig
	policy Policy

	gravity   float64
	tolerance float64
	worldW    float64
	worldH    float64
	groundH   float64

	rng *rand.Rand
}

// New creates an enemy at the configured spawn point in Patrol.
func New(cfg config.Config, rng *rand.Rand) *Enemy {
	return &Enemy{
		Rect:      core.NewRect(cfg.Enemy.SpawnX, cfg.Enemy.SpawnY, cfg.Enemy.Width, cfg.Enemy.Height),
		Vel:       core.Vec2{X: cfg.Enemy.PatrolSpeed},
		state:     StatePatrol,
		health:    cfg.Combat.EnemyMaxHealth,
		support:   -1,
		cfg:       cfg.Enemy,
		combat:    cfg.Combat,
		policy:    PolicyFromConfig(cfg),
		gravity:   cfg.Physics.Gravity,
		tolerance: cfg.Physics.Tolerance,
		worldW:    cfg.World.Width,
		worldH:    cfg.World.Height,
		groundH:   cfg.Level.GroundHeight,
		rng:       rng,
	}
}

// Update advances the enemy by one tick.
func (e *Enemy) Update(w World) {
	e.decide(w)

	if e.shotCooldown > 0 {
		e.shotCooldown--
	}

	e.execute(w)
	e.applyGravity(w.Solids)
	e.enforceBounds()

	e.stateTimer++
	e.pathTimer++
}

func (e *Enemy) decide(w World) {
	if e.cooldown > 0 {
		e.cooldown--
		return
	}

	d := e.policy.Decide(e.Snapshot(w), e.rng)
	e.target = d.Target
	if e.requested {
		if d.State == e.state {
			d.State = e.request
		}
		e.requested = false
	}
	if d.State != e.state {
		e.TransitionTo(d.State)
	}
}

// Snapshot captures what the decision policy needs to know.
func (e *Enemy) Snapshot(w World) Snapshot {
	s := Snapshot{
		State:     e.state,
		StateTime: e.stateTimer,
		Health:    e.health,
		Center:    e.Rect.Center(),
		Items:     w.views(),
		Target:    e.target,
	}
	if w.Player != nil {
		s.HasPlayer = true
		s.PlayerCenter = w.Player.Center()
	}
	return s
}

// TransitionTo switches state unless the transition cooldown is running.
// Leaving SeekHealth forgets the target item.
func (e *Enemy) TransitionTo(s State) bool {
	if e.cooldown > 0 {
		return false
	}
	e.state = s
	e.stateTimer = 0
	e.cooldown = e.cfg.MinStateTime
	if s != StateSeekHealth {
		e.target = 0
	}
	return true
}

func (e *Enemy) execute(w World) {
	switch e.state {
	case StatePatrol:
		e.patrol(w)
	case StateChase:
		e.pursue(w, e.cfg.ChaseSpeed)
	case StateAttack:
		e.pursue(w, e.cfg.AttackSpeed)
	case StateFlee:
		e.flee(w)
	case StateIdle:
		e.Vel.X = 0
	case StateSeekHealth:
		e.seekHealth(w)
	}
}

func (e *Enemy) patrol(w World) {
	turn := e.stateTimer > 0 && e.cfg.PatrolTurnInterval > 0 && e.stateTimer%e.cfg.PatrolTurnInterval == 0
	if turn || e.Vel.X == 0 {
		e.Vel.X = e.randomDirection() * e.cfg.PatrolSpeed
	}
	if e.grounded && core.Chance(e.rng, e.cfg.PatrolJumpChance) {
		e.jump()
	}
	e.moveHorizontal(w.Solids)
}

// pursue closes in on the player, used by Chase and, slower, by Attack.
func (e *Enemy) pursue(w World, speed float64) {
	if w.Player == nil {
		return
	}
	e.Vel.X = e.towards(w.Player.Center().X) * speed
	if e.grounded && ShouldJump(e.Rect, e.Vel.X, e.grounded, *w.Player, w.Solids) {
		e.jump()
	}
	e.moveHorizontal(w.Solids)
}

func (e *Enemy) flee(w World) {
	if w.Player != nil {
		e.Vel.X = -e.towards(w.Player.Center().X) * e.cfg.FleeSpeed
	} else if e.Vel.X == 0 {
		e.Vel.X = e.randomDirection() * e.cfg.FleeSpeed
	}
	if e.grounded && core.Chance(e.rng, e.cfg.FleeJumpChance) {
		e.jump()
	}
	e.moveHorizontal(w.Solids)

	if w.Player == nil && e.stateTimer > e.cfg.FleeTimeout {
		e.request, e.requested = StatePatrol, true
	}
}

func (e *Enemy) seekHealth(w World) {
	views := w.views()
	target, ok := findView(views, e.target)
	if !ok {
		e.target = e.policy.Nearest(e.Rect.Center(), views)
		if target, ok = findView(views, e.target); !ok {
			return
		}
	}

	c := e.Rect.Center()
	tc := target.Rect.Center()
	open := PathClear(c, tc, w.Solids, e.cfg.PathSampleStep, e.cfg.ProbeSize)

	e.Vel.X = e.towards(tc.X) * e.cfg.SeekSpeed

	if e.pathTimer >= e.cfg.PathCheckInterval {
		e.pathTimer = 0
		if !open || tc.Y < c.Y-seekLookUp {
			if ShouldJumpForPath(e.Rect, e.Vel.X, target.Rect, w.Solids) && e.grounded {
				e.jump()
				e.Vel.X *= e.cfg.SeekBoost
			}
		}
	}

	e.moveHorizontal(w.Solids)

	if e.Rect.Intersects(target.Rect) && w.Items != nil {
		w.Items.Collect(target.ID, e)
	}
}

// seekLookUp is how far above the enemy's centre an item must be before the
// path check considers jumping even with a clear line.
const seekLookUp = 20

func findView(views []pickup.View, id int) (pickup.View, bool) {
	if id == 0 {
		return pickup.View{}, false
	}
	for _, v := range views {
		if v.ID == id && v.Active {
			return v, true
		}
	}
	return pickup.View{}, false
}

// towards returns -1 when x lies left of the enemy's centre, 1 otherwise.
func (e *Enemy) towards(x float64) float64 {
	if x < e.Rect.Center().X {
		return -1
	}
	return 1
}

func (e *Enemy) randomDirection() float64 {
	if e.rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

func (e *Enemy) jump() {
	if !e.grounded {
		return
	}
	e.Vel.Y = -e.cfg.JumpSpeed
	e.grounded = false
	e.support = -1
}

// moveHorizontal integrates Vel.X and bounces off walls.
func (e *Enemy) moveHorizontal(solids []core.Solid) {
	e.Rect.X += e.Vel.X
	if core.ResolveHorizontal(&e.Rect, e.Vel.X, solids, e.tolerance) >= 0 {
		e.Vel.X = -e.Vel.X
	}
}

func (e *Enemy) applyGravity(solids []core.Solid) {
	e.Vel.Y += e.gravity
	e.Rect.Y += e.Vel.Y
	hit := core.ResolveVertical(&e.Rect, e.Vel.Y, solids, e.tolerance, e.support)
	if hit.Ceiling && e.Vel.Y < 0 {
		e.Vel.Y = 0
	}

	e.grounded = hit.Grounded()
	e.support = hit.Landed
	if e.grounded {
		e.Vel.Y = 0
		e.Rect.X += solids[e.support].Displacement().X
	}

	if e.Rect.Bottom() > e.worldH {
		e.Rect.Y = e.worldH - e.Rect.H
		e.Vel.Y = 0
		e.grounded = true
		e.support = -1
	}
}

func (e *Enemy) enforceBounds() {
	if e.Rect.X < 0 {
		e.Rect.X = 0
		e.Vel.X = -e.Vel.X
	}
	if e.Rect.Right() > e.worldW {
		e.Rect.X = e.worldW - e.Rect.W
		e.Vel.X = -e.Vel.X
	}
}

// State returns the current behaviour state.
func (e *Enemy) State() State { return e.state }

// StateTimer returns the frames spent in the current state.
func (e *Enemy) StateTimer() int { return e.stateTimer }

// Cooldown returns the frames left before another transition is allowed.
func (e *Enemy) Cooldown() int { return e.cooldown }

// Target returns the ID of the item being sought, or 0.
func (e *Enemy) Target() int { return e.target }

// ClearTarget forgets the sought item, used when the items are wiped.
func (e *Enemy) ClearTarget() { e.target = 0 }

// Grounded reports whether the enemy ended the last tick standing on something.
func (e *Enemy) Grounded() bool { return e.grounded }

// Bounds returns the enemy's body.
func (e *Enemy) Bounds() core.Rect { return e.Rect }
