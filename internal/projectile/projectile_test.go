package projectile

import (
	"math"
	"testing"

	"github.com/vovakirdan/rogue-shot/internal/core"
)

var world = Bounds{Width: 1000, Height: 600, Margin: 50}

func TestMoveIntegration(t *testing.T) {
	tests := []struct {
		name   string
		origin core.Vec2
		vel    core.Vec2
		ticks  int
	}{
		{"right", core.Vec2{X: 100, Y: 100}, core.Vec2{X: 15, Y: 0}, 40},
		{"diagonal", core.Vec2{X: 500, Y: 300}, core.Vec2{X: -3.3, Y: 2.7}, 60},
		{"up", core.Vec2{X: 500, Y: 500}, core.Vec2{X: 0, Y: -10}, 30},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := Bullet{Pos: tc.origin, Vel: tc.vel, Size: 5}
			for i := 1; i <= tc.ticks; i++ {
				if r := b.Move(nil, world); r != Flying {
					t.Fatalf("tick %d: Move() = %v, expected Flying", i, r)
				}
				want := tc.origin.Add(tc.vel.Scale(float64(i)))
				if math.Abs(b.Pos.X-want.X) > 1e-9 || math.Abs(b.Pos.Y-want.Y) > 1e-9 {
					t.Fatalf("tick %d: Pos = %v, expected %v", i, b.Pos, want)
				}
			}
		})
	}
}

func TestMoveCulling(t *testing.T) {
	tests := []struct {
		name string
		pos  core.Vec2
		vel  core.Vec2
		want Result
	}{
		{"inside margin left", core.Vec2{X: -30, Y: 300}, core.Vec2{X: -10}, Flying},
		{"past margin left", core.Vec2{X: -45, Y: 300}, core.Vec2{X: -10}, Culled},
		{"past margin right", core.Vec2{X: 1045, Y: 300}, core.Vec2{X: 10}, Culled},
		{"past margin top", core.Vec2{X: 500, Y: -45}, core.Vec2{Y: -10}, Culled},
		{"past margin bottom", core.Vec2{X: 500, Y: 645}, core.Vec2{Y: 10}, Culled},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := Bullet{Pos: tc.pos, Vel: tc.vel, Size: 5}
			if r := b.Move(nil, world); r != tc.want {
				t.Errorf("Move() = %v, expected %v", r, tc.want)
			}
		})
	}
}

func TestMoveImpact(t *testing.T) {
	wall := core.NewRect(200, 0, 20, 600)
	solids := []core.Solid{{Rect: wall, Prev: wall}}

	b := New(OwnerPlayer, core.Vec2{X: 150, Y: 300}, core.Vec2{X: 1}, 15, 5)
	var r Result
	ticks := 0
	for r = Flying; r == Flying && ticks < 10; ticks++ {
		r = b.Move(solids, world)
	}
	if r != Impacted {
		t.Fatalf("Move() = %v, expected Impacted", r)
	}
	if ticks != 4 {
		t.Errorf("impact after %d ticks, expected 4", ticks)
	}
	if b.Pos.X != 210 {
		t.Errorf("impact point X = %v, expected 210", b.Pos.X)
	}
}

func TestNewBullet(t *testing.T) {
	b := New(OwnerEnemy, core.Vec2{X: 10, Y: 20}, core.Vec2{X: 0.6, Y: 0.8}, 10, 5)
	if b.Owner != OwnerEnemy {
		t.Errorf("Owner = %v, expected enemy", b.Owner)
	}
	if math.Abs(b.Vel.X-6) > 1e-9 || math.Abs(b.Vel.Y-8) > 1e-9 {
		t.Errorf("Vel = %v, expected (6, 8)", b.Vel)
	}
	if r := b.Rect(); r != core.NewRect(7.5, 17.5, 5, 5) {
		t.Errorf("Rect() = %v, expected {7.5 17.5 5 5}", r)
	}
}

func TestEffectLifecycle(t *testing.T) {
	tests := []struct {
		name   string
		effect Effect
		life   int
		color  core.Color
	}{
		{"player hit", PlayerHit(core.Vec2{}), 15, core.ColorRed},
		{"enemy hit", EnemyHit(core.Vec2{}), 15, core.ColorBrightRed},
		{"player bullet on terrain", ObstacleHit(core.Vec2{}, OwnerPlayer), 10, core.ColorOrange},
		{"enemy bullet on terrain", ObstacleHit(core.Vec2{}, OwnerEnemy), 10, core.ColorYellow},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := tc.effect
			if e.Color != tc.color {
				t.Errorf("Color = %v, expected %v", e.Color, tc.color)
			}
			if e.Radius() != e.MaxRadius {
				t.Errorf("fresh Radius() = %v, expected %v", e.Radius(), e.MaxRadius)
			}
			alive := 0
			for e.Update() {
				alive++
			}
			if alive != tc.life-1 {
				t.Errorf("effect survived %d updates, expected %d", alive, tc.life-1)
			}
			if e.Radius() != 0 {
				t.Errorf("expired Radius() = %v, expected 0", e.Radius())
			}
		})
	}
}
