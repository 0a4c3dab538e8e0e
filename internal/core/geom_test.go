package core

import (
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "sub-unit overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9.5, 9.5, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		p        Vec2
		expected bool
	}{
		{"inside", Vec2{15, 15}, true},
		{"top-left corner", Vec2{10, 10}, true},
		{"bottom-right edge (exclusive)", Vec2{30, 25}, false},
		{"outside left", Vec2{5, 15}, false},
		{"outside right", Vec2{35, 15}, false},
		{"outside top", Vec2{15, 5}, false},
		{"outside bottom", Vec2{15, 30}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.p)
			if result != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", r.Bottom())
	}

	c := r.Center()
	if c.X != 15 || c.Y != 17.5 {
		t.Errorf("Center() = %v, expected (15, 17.5)", c)
	}

	around := RectAround(Vec2{10, 10}, 4, 4)
	if around != NewRect(8, 8, 4, 4) {
		t.Errorf("RectAround() = %v, expected {8 8 4 4}", around)
	}
}

func TestVecNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vec2
		want Vec2
	}{
		{"unit x", Vec2{10, 0}, Vec2{1, 0}},
		{"3-4-5", Vec2{3, 4}, Vec2{0.6, 0.8}},
		{"zero stays zero", Vec2{0, 0}, Vec2{0, 0}},
		{"short vector is not stretched", Vec2{0.5, 0}, Vec2{0.5, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Normalize()
			if math.Abs(got.X-tc.want.X) > 1e-9 || math.Abs(got.Y-tc.want.Y) > 1e-9 {
				t.Errorf("Normalize(%v) = %v, expected %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(Vec2{0, 0}, Vec2{3, 4}); d != 5 {
		t.Errorf("Distance() = %v, expected 5", d)
	}
	if d := Manhattan(Vec2{0, 0}, Vec2{-3, 4}); d != 7 {
		t.Errorf("Manhattan() = %v, expected 7", d)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestSign(t *testing.T) {
	tests := []struct {
		val, expected float64
	}{
		{3.5, 1},
		{-0.1, -1},
		{0, 0},
	}

	for _, tc := range tests {
		if result := Sign(tc.val); result != tc.expected {
			t.Errorf("Sign(%f) = %f, expected %f", tc.val, result, tc.expected)
		}
	}
}

func TestAbs(t *testing.T) {
	if Abs(-4) != 4 || Abs(4) != 4 || Abs(0) != 0 {
		t.Errorf("Abs() mismatch: %d %d %d", Abs(-4), Abs(4), Abs(0))
	}
}

func TestHealthColor(t *testing.T) {
	tests := []struct {
		health, max int
		expected    Color
	}{
		{100, 100, ColorGreen},
		{61, 100, ColorGreen},
		{60, 100, ColorYellow},
		{31, 100, ColorYellow},
		{30, 100, ColorRed},
		{0, 100, ColorRed},
		{5, 0, ColorRed},
	}

	for _, tc := range tests {
		if got := HealthColor(tc.health, tc.max); got != tc.expected {
			t.Errorf("HealthColor(%d, %d) = %d, expected %d", tc.health, tc.max, got, tc.expected)
		}
	}
}
