// Package pickup implements falling health items: the capped registry of
// active items, item physics and collection, and the spawning manager.
package pickup

import "github.com/vovakirdan/rogue-shot/internal/core"

// Healable is anything a health item can heal.
type Healable interface {
	Health() int
	SetHealth(int)
	MaxHealth() int
}

// Collector is a Healable with a body that can touch items.
type Collector interface {
	Healable
	Bounds() core.Rect
}

// Registry tracks which items are active and caps how many may be at once.
// It is owned by a Manager and handed to the items it creates.
type Registry struct {
	active map[int]struct{}
	max    int
}

// NewRegistry creates a registry allowing at most limit active items.
func NewRegistry(limit int) *Registry {
	return &Registry{active: make(map[int]struct{}, limit), max: limit}
}

// Acquire marks id active. It fails when the cap is reached.
func (r *Registry) Acquire(id int) bool {
	if _, ok := r.active[id]; ok {
		return true
	}
	if len(r.active) >= r.max {
		return false
	}
	r.active[id] = struct{}{}
	return true
}

// Release marks id inactive. Releasing an unknown id is a no-op.
func (r *Registry) Release(id int) {
	delete(r.active, id)
}

// Count returns the number of active items.
func (r *Registry) Count() int {
	return len(r.active)
}

// Max returns the cap.
func (r *Registry) Max() int {
	return r.max
}

// Full reports whether no further item may become active.
func (r *Registry) Full() bool {
	return len(r.active) >= r.max
}

// Reset forgets every active item.
func (r *Registry) Reset() {
	clear(r.active)
}
