package pickup

import (
	"math/rand"

	"github.com/vovakirdan/rogue-shot/internal/config"
	"github.com/vovakirdan/rogue-shot/internal/core"
)

// EventKind classifies a manager event.
type EventKind int

const (
	EventSpawned EventKind = iota
	EventCollected
	EventExpired // Lifetime ran out or the item fell out of the world
)

// String returns a human-readable name for the kind.
func (k EventKind) String() string {
	switch k {
	case EventSpawned:
		return "spawned"
	case EventCollected:
		return "collected"
	case EventExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// Event reports something that happened to an item.
type Event struct {
	Kind      EventKind
	ItemID    int
	Amount    int      // Health restored, for EventCollected
	Collector Healable // Who collected it, for EventCollected
}

// View is the read-only description of an item used for sensing.
type View struct {
	ID     int
	Rect   core.Rect
	Active bool
}

// Manager owns the item list, the registry and the spawn timer.
type Manager struct {
	items    []*Item
	registry *Registry
	timer    int
	nextID   int
	events   []Event

	cfg      config.HealthItemsConfig
	despawnY float64
	rng      *rand.Rand
}

// NewManager creates an empty manager.
func NewManager(cfg config.Config, rng *rand.Rand) *Manager {
	return &Manager{
		registry: NewRegistry(cfg.HealthItems.MaxActive),
		cfg:      cfg.HealthItems,
		despawnY: cfg.World.Height + cfg.HealthItems.DespawnMargin,
		rng:      rng,
		nextID:   1,
	}
}

// Update runs one tick: timer, item motion, collection by the collectors in
// priority order, particle teardown and spawning.
func (m *Manager) Update(solids []core.Solid, collectors ...Collector) {
	if !m.registry.Full() {
		m.timer++
	}

	kept := m.items[:0]
	for _, it := range m.items {
		wasActive := it.Active()
		isActive := it.Update(solids, m.despawnY)
		if wasActive && !isActive {
			m.events = append(m.events, Event{Kind: EventExpired, ItemID: it.ID})
			if !m.registry.Full() {
				m.timer = max(m.timer, m.cfg.SpawnInterval-m.cfg.EarlyLossLead)
			}
		}

		for _, c := range collectors {
			if !it.Active() || !it.Rect.Intersects(c.Bounds()) {
				continue
			}
			if m.collect(it, c) {
				break
			}
		}

		if it.Active() || it.UpdateParticles() {
			kept = append(kept, it)
		}
	}
	for i := len(kept); i < len(m.items); i++ {
		m.items[i] = nil
	}
	m.items = kept

	if m.timer >= m.cfg.SpawnInterval && !m.registry.Full() {
		m.Spawn()
		m.timer = 0
	}
}

// Spawn drops a new item at a random x above the world.
// Nothing happens when the cap is reached.
func (m *Manager) Spawn() (int, bool) {
	if m.registry.Full() {
		return 0, false
	}
	x := core.RandInt(m.rng, m.cfg.SpawnMinX, m.cfg.SpawnMaxX)
	id := m.nextID
	m.nextID++
	it := NewItem(id, core.Vec2{X: float64(x), Y: m.cfg.SpawnY}, m.cfg, m.rng, m.registry)
	m.items = append(m.items, it)
	m.events = append(m.events, Event{Kind: EventSpawned, ItemID: id})
	return id, true
}

// Collect lets h pick up item id. Used by collectors that seek items
// themselves rather than waiting for Update to find the overlap.
func (m *Manager) Collect(id int, h Healable) bool {
	it := m.find(id)
	if it == nil {
		return false
	}
	return m.collect(it, h)
}

func (m *Manager) collect(it *Item, h Healable) bool {
	before := h.Health()
	if !it.Collect(h, m.rng) {
		return false
	}
	m.events = append(m.events, Event{
		Kind:      EventCollected,
		ItemID:    it.ID,
		Amount:    h.Health() - before,
		Collector: h,
	})
	return true
}

func (m *Manager) find(id int) *Item {
	for _, it := range m.items {
		if it.ID == id {
			return it
		}
	}
	return nil
}

// Find returns the view of item id, if it is still tracked.
func (m *Manager) Find(id int) (View, bool) {
	it := m.find(id)
	if it == nil {
		return View{}, false
	}
	return View{ID: it.ID, Rect: it.Rect, Active: it.Active()}, true
}

// Views returns the currently active items.
func (m *Manager) Views() []View {
	views := make([]View, 0, m.registry.Count())
	for _, it := range m.items {
		if it.Active() {
			views = append(views, View{ID: it.ID, Rect: it.Rect, Active: true})
		}
	}
	return views
}

// Items returns every tracked item, including fading ones.
// Callers must not modify the slice.
func (m *Manager) Items() []*Item {
	return m.items
}

// ActiveCount returns how many items are collectable right now.
func (m *Manager) ActiveCount() int {
	return m.registry.Count()
}

// Capacity returns how many items may be collectable at once.
func (m *Manager) Capacity() int {
	return m.registry.Max()
}

// Timer returns the spawn timer.
func (m *Manager) Timer() int {
	return m.timer
}

// DrainEvents returns and forgets the events since the last call.
func (m *Manager) DrainEvents() []Event {
	ev := m.events
	m.events = nil
	return ev
}

// Clear drops every item and restarts the spawn timer.
func (m *Manager) Clear() {
	for _, it := range m.items {
		it.deactivate()
	}
	m.items = nil
	m.registry.Reset()
	m.timer = 0
	m.events = nil
}
