// Package level holds the terrain: static and moving obstacles kept in an
// arena with stable indices, and the procedural level generator.
package level

import (
	"math"

	"github.com/vovakirdan/rogue-shot/internal/core"
)

// MotionKind selects how a moving obstacle oscillates.
type MotionKind int

const (
	MotionHorizontal MotionKind = iota
	MotionVertical
	MotionCircular
)

// String returns a human-readable name for the kind.
func (k MotionKind) String() string {
	switch k {
	case MotionHorizontal:
		return "horizontal"
	case MotionVertical:
		return "vertical"
	case MotionCircular:
		return "circular"
	default:
		return "unknown"
	}
}

// Motion is the oscillation profile of a moving obstacle.
type Motion struct {
	Kind      MotionKind
	Speed     float64
	Amplitude float64
	Phase     float64
	Origin    core.Vec2 // Centre of the oscillation (top-left corner)
}

// offset returns the displacement from Origin for the current phase.
func (m Motion) offset() core.Vec2 {
	switch m.Kind {
	case MotionHorizontal:
		return core.Vec2{X: math.Sin(m.Phase) * m.Amplitude}
	case MotionVertical:
		return core.Vec2{Y: math.Sin(m.Phase) * m.Amplitude}
	case MotionCircular:
		return core.Vec2{X: math.Cos(m.Phase) * m.Amplitude, Y: math.Sin(m.Phase) * m.Amplitude}
	default:
		return core.Vec2{}
	}
}

// Obstacle is a solid rectangle of terrain. Static obstacles have a nil Motion
// and never move once generated.
type Obstacle struct {
	Rect   core.Rect
	Prev   core.Rect // Rect before the last Update
	Ground bool
	Motion *Motion
}

// NewStatic creates an immovable obstacle.
func NewStatic(r core.Rect) Obstacle {
	return Obstacle{Rect: r, Prev: r}
}

// NewMoving creates an oscillating obstacle centred on origin. The rectangle
// starts where the initial phase puts it, so the first update moves it by a
// single step rather than jumping.
func NewMoving(origin core.Vec2, w, h float64, m Motion) Obstacle {
	m.Origin = origin
	r := core.NewRect(origin.X, origin.Y, w, h).Translate(m.offset())
	return Obstacle{Rect: r, Prev: r, Motion: &m}
}

// Moving reports whether the obstacle has a motion profile.
func (o Obstacle) Moving() bool {
	return o.Motion != nil
}

// Update advances a moving obstacle by one tick. phaseStep is the phase
// advance per unit of speed.
func (o *Obstacle) Update(phaseStep float64) {
	o.Prev = o.Rect
	if o.Motion == nil {
		return
	}
	o.Motion.Phase += phaseStep * o.Motion.Speed
	pos := o.Motion.Origin.Add(o.Motion.offset())
	o.Rect.X = pos.X
	o.Rect.Y = pos.Y
}

// Displacement returns how far the obstacle moved during the last Update.
func (o *Obstacle) Displacement() core.Vec2 {
	return core.Vec2{X: o.Rect.X - o.Prev.X, Y: o.Rect.Y - o.Prev.Y}
}

// Solid returns the collision view of the obstacle.
func (o *Obstacle) Solid() core.Solid {
	return core.Solid{Rect: o.Rect, Prev: o.Prev}
}
