package kitchen

import (
	"math/rand"

	"github.com/vovakirdan/times-kitchen/internal/catalog"
)

// Order is one customer request, alive from spawn until fulfillment.
type Order struct {
	ID     int
	Dish   catalog.ItemKind
	Name   string
	Reward int

	WaitTime  float64
	Completed bool

	Customer *Customer
	Table    *DiningTable
}

// CompletedOrder lingers on the HUD for a few seconds after delivery.
type CompletedOrder struct {
	Name   string
	Reward int
	Left   float64
}

// OrderManager owns the order lifecycle: timed spawning, wait-time
// accrual, fulfillment, and the completed-order display queue.
type OrderManager struct {
	cat *catalog.Catalog
	rng *rand.Rand

	active    []*Order
	completed []CompletedOrder

	interval    float64
	spawnTimer  float64
	grace       float64
	maxActive   int
	displayLife float64

	counter int

	TotalSpawned   int
	TotalCompleted int
	TotalReward    int

	// OnSpawn fires for every order that is actually added.
	OnSpawn func(*Order)
}

func newOrderManager(cat *catalog.Catalog, rng *rand.Rand, ordersPerHour, hourSeconds, grace float64, maxActive int, displayLife float64) *OrderManager {
	return &OrderManager{
		cat:         cat,
		rng:         rng,
		interval:    hourSeconds / ordersPerHour,
		grace:       grace,
		maxActive:   maxActive,
		displayLife: displayLife,
	}
}

// Active returns incomplete orders in spawn order.
func (m *OrderManager) Active() []*Order { return m.active }

// Completed returns the orders still on the HUD display.
func (m *OrderManager) Completed() []CompletedOrder { return m.completed }

// Tick advances spawn and display timers. Spawning stops once less
// than the grace period remains on the round clock, so late orders
// cannot appear that nobody could plausibly fill.
func (m *OrderManager) Tick(dt, remaining float64) {
	for _, o := range m.active {
		o.WaitTime += dt
	}

	live := m.completed[:0]
	for i := range m.completed {
		m.completed[i].Left -= dt
		if m.completed[i].Left > 0 {
			live = append(live, m.completed[i])
		}
	}
	m.completed = live

	if remaining <= m.grace {
		return
	}
	m.spawnTimer += dt
	if m.spawnTimer >= m.interval {
		m.spawnTimer = 0
		m.spawn()
	}
}

// spawn draws a dish and allocates an id unconditionally; the order is
// only added while below the active cap, so spawns at the cap leave an
// id gap rather than a backlog.
func (m *OrderManager) spawn() {
	dishes := m.cat.Dishes()
	dish := dishes[m.rng.Intn(len(dishes))]
	m.counter++
	if len(m.active) >= m.maxActive {
		return
	}
	recipe, _ := m.cat.RecipeFor(dish)
	o := &Order{
		ID:     m.counter,
		Dish:   dish,
		Name:   recipe.Name,
		Reward: recipe.Reward,
	}
	m.active = append(m.active, o)
	m.TotalSpawned++
	if m.OnSpawn != nil {
		m.OnSpawn(o)
	}
}

// Fulfill completes the given order: marks it, removes it from the
// active list, and pushes it onto the display queue. reward is the
// final (possibly perk-multiplied) amount shown on the HUD.
func (m *OrderManager) Fulfill(o *Order, reward int) {
	o.Completed = true
	for i, a := range m.active {
		if a == o {
			m.active = append(m.active[:i], m.active[i+1:]...)
			break
		}
	}
	m.completed = append(m.completed, CompletedOrder{
		Name:   o.Name,
		Reward: reward,
		Left:   m.displayLife,
	})
	m.TotalCompleted++
	m.TotalReward += reward
}
