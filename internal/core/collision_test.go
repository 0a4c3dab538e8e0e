package core

import "testing"

func static(r Rect) Solid {
	return Solid{Rect: r, Prev: r}
}

func TestResolveVerticalLanding(t *testing.T) {
	solids := []Solid{static(NewRect(0, 550, 1000, 50))}

	r := NewRect(100, 497, 50, 50)
	r.Y += 5
	hit := ResolveVertical(&r, 5, solids, DefaultTolerance, -1)
	if !hit.Grounded() || hit.Landed != 0 {
		t.Fatalf("ResolveVertical() landed = %d, expected 0", hit.Landed)
	}
	if r.Y != 500 {
		t.Errorf("Y after landing = %v, expected 500", r.Y)
	}

	// Resting under gravity keeps the same position every tick
	for i := 0; i < 10; i++ {
		r.Y += 0.8
		hit = ResolveVertical(&r, 0.8, solids, DefaultTolerance, hit.Landed)
		if r.Y != 500 || !hit.Grounded() {
			t.Fatalf("tick %d: Y = %v grounded = %v, expected 500 true", i, r.Y, hit.Grounded())
		}
	}
}

func TestResolveVerticalCeiling(t *testing.T) {
	solids := []Solid{static(NewRect(0, 100, 100, 20))}

	r := NewRect(10, 125, 50, 50)
	r.Y -= 10
	hit := ResolveVertical(&r, -10, solids, DefaultTolerance, -1)
	if !hit.Ceiling {
		t.Fatal("expected ceiling hit")
	}
	if hit.Grounded() {
		t.Error("ceiling hit should not ground the mover")
	}
	if r.Y != 120 {
		t.Errorf("Y after ceiling = %v, expected 120", r.Y)
	}
}

func TestResolveVerticalMissesWhenFarAbove(t *testing.T) {
	// A mover that starts deep inside a solid is not snapped on top of it.
	solids := []Solid{static(NewRect(0, 300, 200, 20))}

	r := NewRect(10, 290, 50, 50)
	r.Y += 1
	hit := ResolveVertical(&r, 1, solids, DefaultTolerance, -1)
	if hit.Grounded() {
		t.Errorf("ResolveVertical() landed = %d, expected -1", hit.Landed)
	}
}

func TestResolveHorizontalWall(t *testing.T) {
	solids := []Solid{static(NewRect(100, 400, 20, 200))}

	tests := []struct {
		name  string
		start Rect
		dx    float64
		wantX float64
		hit   int
	}{
		{"moving right into wall", NewRect(45, 500, 50, 50), 10, 50, 0},
		{"moving left into wall", NewRect(125, 500, 50, 50), -10, 120, 0},
		{"moving right clear of wall", NewRect(0, 500, 50, 50), 10, 10, -1},
		{"no movement", NewRect(45, 500, 50, 50), 0, 45, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := tc.start
			r.X += tc.dx
			hit := ResolveHorizontal(&r, tc.dx, solids, DefaultTolerance)
			if hit != tc.hit {
				t.Errorf("ResolveHorizontal() = %d, expected %d", hit, tc.hit)
			}
			if r.X != tc.wantX {
				t.Errorf("X = %v, expected %v", r.X, tc.wantX)
			}
		})
	}
}

func TestResolveVerticalRidesMovingSolid(t *testing.T) {
	tests := []struct {
		name  string
		prev  Rect
		now   Rect
		wantY float64
	}{
		{"platform moving down", NewRect(0, 300, 100, 20), NewRect(0, 302, 100, 20), 252},
		{"platform moving up", NewRect(0, 300, 100, 20), NewRect(0, 298, 100, 20), 248},
		{"platform moving sideways", NewRect(0, 300, 100, 20), NewRect(2, 300, 100, 20), 250},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			solids := []Solid{{Rect: tc.now, Prev: tc.prev}}
			r := NewRect(20, 250, 50, 50)
			r.Y += 0.8
			hit := ResolveVertical(&r, 0.8, solids, DefaultTolerance, 0)
			if hit.Landed != 0 {
				t.Fatalf("Landed = %d, expected 0", hit.Landed)
			}
			if r.Y != tc.wantY {
				t.Errorf("Y = %v, expected %v", r.Y, tc.wantY)
			}
		})
	}
}

func TestResolveVerticalLeavesSupportWhenJumping(t *testing.T) {
	solids := []Solid{{Rect: NewRect(0, 302, 100, 20), Prev: NewRect(0, 300, 100, 20)}}
	r := NewRect(20, 250, 50, 50)
	r.Y -= 15
	hit := ResolveVertical(&r, -15, solids, DefaultTolerance, 0)
	if hit.Grounded() {
		t.Error("a jumping mover should not stick to its support")
	}
	if r.Y != 235 {
		t.Errorf("Y = %v, expected 235", r.Y)
	}
}

func TestResolveVerticalWalkedOffSupport(t *testing.T) {
	solids := []Solid{{Rect: NewRect(0, 302, 100, 20), Prev: NewRect(0, 300, 100, 20)}}
	r := NewRect(150, 250, 50, 50)
	r.Y += 0.8
	hit := ResolveVertical(&r, 0.8, solids, DefaultTolerance, 0)
	if hit.Grounded() {
		t.Error("a mover past the edge should fall")
	}
}

func TestSolidDisplacement(t *testing.T) {
	s := Solid{Rect: NewRect(12, 7, 10, 10), Prev: NewRect(10, 10, 10, 10)}
	d := s.Displacement()
	if d.X != 2 || d.Y != -3 {
		t.Errorf("Displacement() = %v, expected (2, -3)", d)
	}
}

func TestAnyIntersects(t *testing.T) {
	solids := []Solid{static(NewRect(0, 0, 10, 10)), static(NewRect(50, 50, 10, 10))}
	if !AnyIntersects(NewRect(55, 55, 2, 2), solids) {
		t.Error("AnyIntersects() = false, expected true")
	}
	if AnyIntersects(NewRect(20, 20, 2, 2), solids) {
		t.Error("AnyIntersects() = true, expected false")
	}
}
