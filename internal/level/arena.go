package level

import "github.com/vovakirdan/rogue-shot/internal/core"

// Arena owns the obstacles of one level. Indices are stable for the lifetime
// of the arena: static obstacles come first, moving ones after them.
type Arena struct {
	obstacles []Obstacle
	solids    []core.Solid
	phaseStep float64
	static    int
}

// NewArena builds an arena. Static obstacles are placed before moving ones
// regardless of the order given, keeping their relative order.
func NewArena(obstacles []Obstacle, phaseStep float64) *Arena {
	a := &Arena{phaseStep: phaseStep}
	for _, o := range obstacles {
		if !o.Moving() {
			a.obstacles = append(a.obstacles, o)
		}
	}
	a.static = len(a.obstacles)
	for _, o := range obstacles {
		if o.Moving() {
			a.obstacles = append(a.obstacles, o)
		}
	}
	a.solids = make([]core.Solid, len(a.obstacles))
	a.sync()
	return a
}

// Update advances every moving obstacle by one tick.
func (a *Arena) Update() {
	for i := a.static; i < len(a.obstacles); i++ {
		a.obstacles[i].Update(a.phaseStep)
	}
	a.sync()
}

func (a *Arena) sync() {
	for i := range a.obstacles {
		a.solids[i] = a.obstacles[i].Solid()
	}
}

// Solids returns the collision view, indexed like the obstacles.
// The slice is owned by the arena and rewritten by Update.
func (a *Arena) Solids() []core.Solid {
	return a.solids
}

// Len returns the number of obstacles.
func (a *Arena) Len() int {
	return len(a.obstacles)
}

// StaticCount returns how many leading obstacles never move.
func (a *Arena) StaticCount() int {
	return a.static
}

// Obstacle returns the obstacle at index i.
func (a *Arena) Obstacle(i int) Obstacle {
	return a.obstacles[i]
}

// Obstacles returns all obstacles. Callers must not modify the slice.
func (a *Arena) Obstacles() []Obstacle {
	return a.obstacles
}

// Displacement returns the last-tick movement of obstacle i, or zero for an
// out-of-range index.
func (a *Arena) Displacement(i int) core.Vec2 {
	if i < 0 || i >= len(a.obstacles) {
		return core.Vec2{}
	}
	return a.obstacles[i].Displacement()
}
