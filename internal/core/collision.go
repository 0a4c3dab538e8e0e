package core

import "math"

// DefaultTolerance is the slack used to decide which face of an obstacle was
// struck when a mover already overlaps it after integration.
const DefaultTolerance = 5.0

// Solid is a collidable rectangle together with where it was one tick ago.
// For static obstacles Prev equals Rect.
type Solid struct {
	Rect Rect
	Prev Rect
}

// Displacement returns how far the solid moved during its last update.
func (s Solid) Displacement() Vec2 {
	return Vec2{X: s.Rect.X - s.Prev.X, Y: s.Rect.Y - s.Prev.Y}
}

// ResolveHorizontal pushes r out of every solid it was driven into by a
// horizontal move of dx (already applied to r). A solid counts as a wall only
// if the pre-move leading edge was within tolerance of the solid's facing edge.
// Returns the index of the last wall struck, or -1.
func ResolveHorizontal(r *Rect, dx float64, solids []Solid, tolerance float64) int {
	hit := -1
	if dx == 0 {
		return hit
	}
	for i := range solids {
		s := &solids[i]
		if !r.Intersects(s.Rect) {
			continue
		}
		switch {
		case dx > 0 && r.Right()-dx <= s.Prev.X+tolerance:
			r.X = s.Rect.X - r.W
			hit = i
		case dx < 0 && r.X-dx >= s.Prev.Right()-tolerance:
			r.X = s.Rect.Right()
			hit = i
		}
	}
	return hit
}

// VerticalHit is the outcome of ResolveVertical.
type VerticalHit struct {
	Landed  int  // index of the solid stood on, -1 when airborne
	Ceiling bool // an upward move was stopped by a solid's underside
}

// Grounded reports whether the mover ended on top of a solid.
func (h VerticalHit) Grounded() bool {
	return h.Landed >= 0
}

// ResolveVertical resolves a vertical move of dy (already applied to r).
// Falling onto a solid whose top was within tolerance of the pre-move bottom
// edge lands on it; rising into one whose bottom was within tolerance of the
// pre-move top edge stops at its underside.
//
// support is the solid the mover stood on last tick (-1 for none). If the mover
// is not rising and nothing else caught it, it stays glued to the top of its
// support, which is how riders follow platforms moving downwards.
func ResolveVertical(r *Rect, dy float64, solids []Solid, tolerance float64, support int) VerticalHit {
	hit := VerticalHit{Landed: -1}
	for i := range solids {
		s := &solids[i]
		if !r.Intersects(s.Rect) {
			continue
		}
		switch {
		case dy > 0 && r.Bottom()-dy <= s.Prev.Y+tolerance:
			r.Y = s.Rect.Y - r.H
			hit.Landed = i
		case dy < 0 && r.Y-dy >= s.Prev.Bottom()-tolerance:
			r.Y = s.Rect.Bottom()
			hit.Ceiling = true
		}
	}

	if hit.Landed < 0 && dy >= 0 && support >= 0 && support < len(solids) {
		s := &solids[support]
		if r.OverlapsX(s.Rect) && math.Abs(r.Bottom()-dy-s.Prev.Y) <= tolerance {
			r.Y = s.Rect.Y - r.H
			hit.Landed = support
		}
	}
	return hit
}

// AnyIntersects reports whether r overlaps any solid.
func AnyIntersects(r Rect, solids []Solid) bool {
	for i := range solids {
		if r.Intersects(solids[i].Rect) {
			return true
		}
	}
	return false
}
