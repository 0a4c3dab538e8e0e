package player

import (
	"math"
	"testing"

	"github.com/vovakirdan/rogue-shot/internal/config"
	"github.com/vovakirdan/rogue-shot/internal/core"
)

func static(x, y, w, h float64) core.Solid {
	r := core.NewRect(x, y, w, h)
	return core.Solid{Rect: r, Prev: r}
}

var ground = []core.Solid{static(0, 550, 1000, 50)}

func newPlayer(mutate func(*config.Config)) *Player {
	cfg := config.Default()
	if mutate != nil {
		mutate(&cfg)
	}
	return New(cfg)
}

func TestRestingIsIdempotent(t *testing.T) {
	p := newPlayer(nil)
	for i := 0; i < 120; i++ {
		p.Update(Input{}, ground)
		if p.Rect.Bottom() != 550 {
			t.Fatalf("tick %d: bottom = %v, expected 550", i, p.Rect.Bottom())
		}
		if !p.Grounded() || p.Support() != 0 {
			t.Fatalf("tick %d: grounded = %v support = %d", i, p.Grounded(), p.Support())
		}
		if p.Vel.Y != 0 {
			t.Fatalf("tick %d: Vel.Y = %v, expected 0", i, p.Vel.Y)
		}
	}
}

func TestHorizontalMovement(t *testing.T) {
	tests := []struct {
		name  string
		in    Input
		ticks int
		wantX float64
	}{
		{"right", Input{Right: true}, 10, 550},
		{"left", Input{Left: true}, 10, 450},
		{"both held, right wins", Input{Left: true, Right: true}, 4, 520},
		{"clamped at left edge", Input{Left: true}, 200, 0},
		{"clamped at right edge", Input{Right: true}, 200, 950},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := newPlayer(nil)
			for i := 0; i < tc.ticks; i++ {
				p.Update(tc.in, ground)
			}
			if p.Rect.X != tc.wantX {
				t.Errorf("X = %v, expected %v", p.Rect.X, tc.wantX)
			}
		})
	}
}

func TestWallStopsWithoutBounce(t *testing.T) {
	p := newPlayer(nil)
	solids := append([]core.Solid{}, ground...)
	solids = append(solids, static(600, 400, 20, 150))

	for i := 0; i < 40; i++ {
		p.Update(Input{Right: true}, solids)
	}
	if p.Rect.Right() != 600 {
		t.Errorf("right edge = %v, expected 600 (against the wall)", p.Rect.Right())
	}
	if p.Rect.Bottom() != 550 {
		t.Errorf("bottom = %v, expected 550", p.Rect.Bottom())
	}
}

func TestJump(t *testing.T) {
	p := newPlayer(nil)
	p.Update(Input{}, ground)

	p.Update(Input{Jump: true}, ground)
	if p.Grounded() {
		t.Fatal("player should leave the ground")
	}
	if math.Abs(p.Vel.Y-(-14.2)) > 1e-9 {
		t.Errorf("Vel.Y = %v, expected -14.2", p.Vel.Y)
	}

	// Holding jump mid-air does not jump again
	vy := p.Vel.Y
	p.Update(Input{Jump: true}, ground)
	if p.Vel.Y != vy+0.8 {
		t.Errorf("mid-air jump changed Vel.Y to %v, expected %v", p.Vel.Y, vy+0.8)
	}

	// Eventually lands back
	for i := 0; i < 100 && !p.Grounded(); i++ {
		p.Update(Input{}, ground)
	}
	if !p.Grounded() || p.Rect.Bottom() != 550 {
		t.Errorf("player did not land: grounded = %v bottom = %v", p.Grounded(), p.Rect.Bottom())
	}
}

func TestCeiling(t *testing.T) {
	p := newPlayer(nil)
	solids := append([]core.Solid{}, ground...)
	solids = append(solids, static(400, 420, 200, 20)) // underside at 440, player top at 500

	p.Update(Input{}, solids)
	p.Update(Input{Jump: true}, solids)
	for i := 0; i < 10; i++ {
		p.Update(Input{}, solids)
		if p.Rect.Y < 440 {
			t.Fatalf("tick %d: top = %v passed through the ceiling", i, p.Rect.Y)
		}
	}
}

func TestFastFall(t *testing.T) {
	normal := newPlayer(nil)
	fast := newPlayer(nil)
	normal.Rect.Y, fast.Rect.Y = 100, 100

	for i := 0; i < 5; i++ {
		normal.Update(Input{}, ground)
		fast.Update(Input{FastFall: true}, ground)
	}
	if fast.Rect.Y <= normal.Rect.Y {
		t.Errorf("fast-fall Y = %v, expected below normal Y = %v", fast.Rect.Y, normal.Rect.Y)
	}
	if math.Abs(fast.Vel.Y-normal.Vel.Y-5) > 1e-9 {
		t.Errorf("fast-fall added %v to Vel.Y, expected 5", fast.Vel.Y-normal.Vel.Y)
	}
}

func TestCoyoteTime(t *testing.T) {
	tests := []struct {
		name   string
		coyote int
		jumps  bool
	}{
		{"disabled", 0, false},
		{"enabled", 5, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := newPlayer(func(c *config.Config) {
				c.Player.CoyoteFrames = tc.coyote
				c.Player.SpawnX = 40
				c.Player.SpawnY = 250
			})
			ledge := []core.Solid{static(0, 300, 100, 20)}
			p.Update(Input{}, ledge)
			if !p.Grounded() {
				t.Fatal("player should start on the ledge")
			}
			for i := 0; i < 50 && p.Grounded(); i++ {
				p.Update(Input{Right: true}, ledge)
			}
			if p.Grounded() {
				t.Fatal("player never walked off the ledge")
			}

			p.Update(Input{Right: true, Jump: true}, ledge)
			if got := p.Vel.Y < 0; got != tc.jumps {
				t.Errorf("jumped after leaving the ledge = %v, expected %v", got, tc.jumps)
			}
		})
	}
}

func TestJumpBuffer(t *testing.T) {
	tests := []struct {
		name   string
		buffer int
		jumps  bool
	}{
		{"disabled", 0, false},
		{"enabled", 7, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := newPlayer(func(c *config.Config) {
				c.Player.JumpBufferFrames = tc.buffer
				c.Player.SpawnY = 400
			})
			pressed := false
			for i := 0; i < 40 && !p.Grounded(); i++ {
				in := Input{}
				if !pressed && p.Rect.Bottom() > 520 {
					in.Jump = true
					pressed = true
				}
				p.Update(in, ground)
			}
			if !pressed || !p.Grounded() {
				t.Fatalf("setup failed: pressed = %v grounded = %v", pressed, p.Grounded())
			}

			jumped := false
			for i := 0; i < 10; i++ {
				p.Update(Input{}, ground)
				if p.Vel.Y < 0 {
					jumped = true
				}
			}
			if jumped != tc.jumps {
				t.Errorf("buffered jump fired = %v, expected %v", jumped, tc.jumps)
			}
		})
	}
}

func TestRidesMovingPlatform(t *testing.T) {
	tests := []struct {
		name string
		step core.Vec2
	}{
		{"horizontal", core.Vec2{X: 2}},
		{"down", core.Vec2{Y: 1.5}},
		{"up", core.Vec2{Y: -1.5}},
		{"diagonal", core.Vec2{X: -1, Y: 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := newPlayer(func(c *config.Config) {
				c.Player.SpawnX = 420
				c.Player.SpawnY = 250
			})
			platform := core.NewRect(400, 300, 150, 20)
			solids := []core.Solid{{Rect: platform, Prev: platform}}
			p.Update(Input{}, solids)
			if !p.Grounded() {
				t.Fatal("player should start on the platform")
			}

			for i := 1; i <= 20; i++ {
				prev := platform
				platform = platform.Translate(tc.step)
				solids[0] = core.Solid{Rect: platform, Prev: prev}
				p.Update(Input{}, solids)

				if !p.Grounded() || p.Support() != 0 {
					t.Fatalf("tick %d: player fell off (grounded = %v)", i, p.Grounded())
				}
				if math.Abs(p.Rect.Bottom()-platform.Y) > 1e-9 {
					t.Fatalf("tick %d: bottom = %v, expected %v", i, p.Rect.Bottom(), platform.Y)
				}
				wantX := 420 + tc.step.X*float64(i)
				if math.Abs(p.Rect.X-wantX) > 1e-9 {
					t.Fatalf("tick %d: X = %v, expected %v (carried once per tick)", i, p.Rect.X, wantX)
				}
			}
		})
	}
}

func TestTakeDamage(t *testing.T) {
	p := newPlayer(nil)

	if !p.TakeDamage(30) {
		t.Fatal("TakeDamage() = false, expected true")
	}
	if p.Health() != 70 {
		t.Errorf("Health() = %d, expected 70", p.Health())
	}
	if p.Invulnerable() != 60 {
		t.Errorf("Invulnerable() = %d, expected 60", p.Invulnerable())
	}

	if p.TakeDamage(30) {
		t.Error("TakeDamage() while invulnerable = true, expected false")
	}
	if p.Health() != 70 {
		t.Errorf("Health() = %d, expected 70 after absorbed hit", p.Health())
	}

	for i := 0; i < 60; i++ {
		p.Update(Input{}, ground)
	}
	if !p.TakeDamage(5) {
		t.Error("TakeDamage() after invulnerability ran out = false")
	}
}

func TestDeathRespawns(t *testing.T) {
	p := newPlayer(nil)
	p.SetRespawnPoint(core.Vec2{X: 100, Y: 200})
	p.Rect.X = 700
	p.Vel = core.Vec2{X: 5, Y: 3}
	p.SetHealth(10)

	if !p.TakeDamage(25) {
		t.Fatal("TakeDamage() = false")
	}
	if p.Health() != p.MaxHealth() {
		t.Errorf("Health() = %d, expected full health after respawn", p.Health())
	}
	if p.Rect.Pos() != (core.Vec2{X: 100, Y: 200}) {
		t.Errorf("position = %v, expected respawn point", p.Rect.Pos())
	}
	if p.Vel != (core.Vec2{}) {
		t.Errorf("Vel = %v, expected zero", p.Vel)
	}
	if p.Invulnerable() != 120 {
		t.Errorf("Invulnerable() = %d, expected 120", p.Invulnerable())
	}
}

func TestHealthBounds(t *testing.T) {
	p := newPlayer(nil)
	tests := []struct {
		set, want int
	}{
		{50, 50},
		{150, 100},
		{-20, 0},
	}
	for _, tc := range tests {
		p.SetHealth(tc.set)
		if p.Health() != tc.want {
			t.Errorf("SetHealth(%d) -> %d, expected %d", tc.set, p.Health(), tc.want)
		}
	}
}

func TestShoot(t *testing.T) {
	p := newPlayer(nil) // centre (525, 525)

	b, ok := p.Shoot(core.Vec2{X: 525 + 30, Y: 525 - 40})
	if !ok {
		t.Fatal("Shoot() ok = false")
	}
	if math.Abs(b.Vel.X-9) > 1e-9 || math.Abs(b.Vel.Y+12) > 1e-9 {
		t.Errorf("Vel = %v, expected (9, -12)", b.Vel)
	}
	if b.Pos != p.Rect.Center() {
		t.Errorf("Pos = %v, expected the player centre", b.Pos)
	}

	if _, ok := p.Shoot(p.Rect.Center()); ok {
		t.Error("Shoot() at own centre should be a no-op")
	}
}

func TestHidden(t *testing.T) {
	p := newPlayer(nil)
	if p.Hidden() {
		t.Error("Hidden() without invulnerability = true")
	}
	p.TakeDamage(1)
	hidden := 0
	for i := 0; i < 60; i++ {
		if p.Hidden() {
			hidden++
		}
		p.Update(Input{}, ground)
	}
	if hidden == 0 || hidden == 60 {
		t.Errorf("player hidden for %d of 60 frames, expected a blink", hidden)
	}
}
