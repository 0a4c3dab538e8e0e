package enemy

import (
	"math"

	"github.com/vovakirdan/rogue-shot/internal/core"
)

const (
	gapProbeGap    = 10 // Horizontal distance from the leading edge to the gap probe
	gapProbeDrop   = 5  // Vertical distance below the feet
	gapProbeWidth  = 20
	gapProbeHeight = 10

	targetAboveChase = 50 // Chase jumps when the target's feet are higher than this below our head
	targetAbovePath  = 40 // Seeking jumps when the target centre is this far above ours
	pathProbeReach   = 30 // Seeking looks this far ahead for a wall
)

// PathClear samples the straight line from one point to another every step
// units and reports whether a probe square of side probe fits at every sample.
func PathClear(from, to core.Vec2, solids []core.Solid, step, probe float64) bool {
	d := to.Sub(from)
	dist := math.Max(1, d.Len())
	dir := d.Scale(1 / dist)
	if step <= 0 {
		step = 1
	}

	for t := 0.0; t < math.Floor(dist); t += step {
		at := from.Add(dir.Scale(t))
		if core.AnyIntersects(core.RectAround(at, probe, probe), solids) {
			return false
		}
	}
	return true
}

// gapAhead reports whether there is no floor just beyond the leading edge.
func gapAhead(body core.Rect, vx float64, solids []core.Solid) bool {
	x := body.X - gapProbeGap
	if vx > 0 {
		x = body.Right() + gapProbeGap
	}
	probe := core.NewRect(x, body.Bottom()+gapProbeDrop, gapProbeWidth, gapProbeHeight)
	return !core.AnyIntersects(probe, solids)
}

// ShouldJump decides whether a chasing body moving at vx should jump towards
// target: a wall one body-width ahead, a target standing higher, or a gap in
// the floor while grounded.
func ShouldJump(body core.Rect, vx float64, grounded bool, target core.Rect, solids []core.Solid) bool {
	offset := -body.W
	if vx > 0 {
		offset = body.W
	}
	if core.AnyIntersects(body.Translate(core.Vec2{X: offset}), solids) {
		return true
	}
	if target.Bottom() < body.Y+targetAboveChase {
		return true
	}
	return grounded && gapAhead(body, vx, solids)
}

// ShouldJumpForPath is the variant used while heading for an item.
func ShouldJumpForPath(body core.Rect, vx float64, target core.Rect, solids []core.Solid) bool {
	offset := -pathProbeReach
	if vx > 0 {
		offset = pathProbeReach
	}
	if core.AnyIntersects(body.Translate(core.Vec2{X: float64(offset)}), solids) {
		return true
	}
	if target.Center().Y < body.Center().Y-targetAbovePath {
		return true
	}
	return gapAhead(body, vx, solids)
}
