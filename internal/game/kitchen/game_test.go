package kitchen

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/times-kitchen/internal/core"
	"github.com/vovakirdan/times-kitchen/internal/session"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:     12345,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

func frameFor(id core.PlayerID, actions ...core.Action) core.MultiInputFrame {
	m := core.NewMultiInputFrame()
	for _, a := range actions {
		m.Set(id, a)
	}
	return m
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and input stream should produce
	// identical snapshots.
	cfg := testConfig()

	g1 := New(1)
	g1.Reset(cfg)
	g2 := New(1)
	g2.Reset(cfg)

	for i := 0; i < 2000; i++ {
		in := core.NewMultiInputFrame()
		switch {
		case i > 100 && i < 200:
			in.Set(core.Player1, core.ActionMoveLeft)
		case i > 300 && i < 400:
			in.Set(core.Player1, core.ActionMoveUp)
		case i == 500:
			in.Set(core.Player1, core.ActionInteract)
		case i == 700:
			in.Set(core.Player1, core.ActionServe)
		}
		g1.Step(in)
		g2.Step(in)
	}

	if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
		t.Errorf("snapshots diverged after identical input streams")
	}
}

func TestRoundClockEndsRound(t *testing.T) {
	g := New(1)
	g.Reset(testConfig())

	g.timeRemaining = 0.01
	in := core.NewMultiInputFrame()
	g.Step(in)

	st := g.State()
	if !st.RoundOver {
		t.Fatal("round should be over once the clock reaches zero")
	}
	if st.TimeRemaining != 0 {
		t.Errorf("TimeRemaining = %v, want 0", st.TimeRemaining)
	}

	// Further steps must not move the simulation.
	before := g.Snapshot()
	g.Step(in)
	after := g.Snapshot()
	before.Tick = after.Tick
	if !reflect.DeepEqual(before, after) {
		t.Error("simulation advanced after round end")
	}
}

func TestPauseFreezesClock(t *testing.T) {
	g := New(1)
	g.Reset(testConfig())

	g.Step(frameFor(core.Player1, core.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected paused")
	}

	remaining := g.timeRemaining
	in := core.NewMultiInputFrame()
	for i := 0; i < 120; i++ {
		g.Step(in)
	}
	if g.timeRemaining != remaining {
		t.Error("clock advanced while paused")
	}

	g.Step(frameFor(core.Player1, core.ActionPause))
	if g.State().Paused {
		t.Error("expected unpaused after second toggle")
	}
}

func TestOrdersSpawnCustomersAndTables(t *testing.T) {
	g := New(2)
	g.Reset(testConfig())

	// Run two game hours; co-op spawns 10 orders per hour.
	in := core.NewMultiInputFrame()
	for i := 0; i < 2*60*60; i++ {
		g.Step(in)
	}

	if g.orders.TotalSpawned == 0 {
		t.Fatal("no orders spawned after two game hours")
	}
	if len(g.customers) == 0 {
		t.Fatal("orders spawned but no customers exist")
	}
	if len(g.orders.Active()) > g.cfg.MaxActiveOrders(2) {
		t.Errorf("active orders %d exceed cap %d", len(g.orders.Active()), g.cfg.MaxActiveOrders(2))
	}

	// Only three tables: everyone else waits in line, stranded.
	seated := 0
	for _, c := range g.customers {
		if c.Table != nil {
			seated++
		}
	}
	if seated > len(g.layout.Tables) {
		t.Errorf("%d customers seated but only %d tables", seated, len(g.layout.Tables))
	}
}

func TestTableOccupancyConserved(t *testing.T) {
	g := New(1)
	g.Reset(testConfig())

	in := core.NewMultiInputFrame()
	for i := 0; i < 3*60*60; i++ {
		g.Step(in)

		occupied := 0
		for _, tb := range g.layout.Tables {
			if tb.Occupied {
				occupied++
			}
		}
		holders := 0
		for _, c := range g.customers {
			if c.Table != nil {
				holders++
			}
		}
		if occupied != holders {
			t.Fatalf("tick %d: %d tables occupied but %d customers hold tables", i, occupied, holders)
		}
	}
}

func TestDirtAccumulatesPerHour(t *testing.T) {
	g := New(1)
	g.Reset(testConfig())

	in := core.NewMultiInputFrame()
	// One game hour plus slack for float accumulation on the clock.
	for i := 0; i < 60*60+120; i++ {
		g.Step(in)
	}
	if len(g.dirt) != 1 {
		t.Errorf("dirt after one hour = %d, want 1", len(g.dirt))
	}

	for i := 0; i < 5*60*60; i++ {
		g.Step(in)
	}
	if len(g.dirt) > g.cfg.Dirt.MaxSpots {
		t.Errorf("dirt %d exceeds cap %d", len(g.dirt), g.cfg.Dirt.MaxSpots)
	}
}

func TestConfigureRoundAppliesPerks(t *testing.T) {
	g := New(1)
	g.ConfigureRound(session.RoundConfig{SpeedBonus: 3, CarryBonus: 1, RewardMultiplier: 2})
	g.Reset(testConfig())

	p := g.chefs[0]
	if p.Speed != g.cfg.Player.Speed+3 {
		t.Errorf("speed = %v, want base+3", p.Speed)
	}
	if p.CarryCapacity != g.cfg.Player.CarryCapacity+1 {
		t.Errorf("capacity = %d, want base+1", p.CarryCapacity)
	}

	// Fabricate a seated customer and serve them: reward doubles.
	o := g.fabricateOrder(t)
	c := o.Customer
	p.Pos = c.Pos
	p.Pickup(NewItem(o.Dish))
	res := g.serve(p)
	if !res.OK {
		t.Fatalf("serve failed: %s", res.Message)
	}
	if g.score != o.Reward*2 {
		t.Errorf("score = %d, want doubled reward %d", g.score, o.Reward*2)
	}
}

func TestZeroRoundConfigNormalized(t *testing.T) {
	g := New(1)
	g.Reset(testConfig()) // no ConfigureRound call at all

	o := g.fabricateOrder(t)
	p := g.chefs[0]
	p.Pos = o.Customer.Pos
	p.Pickup(NewItem(o.Dish))
	if res := g.serve(p); !res.OK {
		t.Fatalf("serve failed: %s", res.Message)
	}
	if g.score != o.Reward {
		t.Errorf("score = %d, want plain reward %d", g.score, o.Reward)
	}
}

// fabricateOrder wires up an active order with a seated customer,
// bypassing spawn timing.
func (g *Game) fabricateOrder(t *testing.T) *Order {
	t.Helper()
	recipe, okR := g.cat.RecipeFor(g.cat.Dishes()[0])
	if !okR {
		t.Fatal("catalog has no dishes")
	}
	o := &Order{ID: 999, Dish: recipe.Dish, Name: recipe.Name, Reward: recipe.Reward}
	g.orders.active = append(g.orders.active, o)

	c := newCustomer(o, 0, g.cfg.Customer.Speed, g.cfg.Customer.EatSeconds)
	c.AssignTable(g.layout.Tables[0])
	c.State = CustomerSitting
	c.Pos = g.layout.Tables[0].SeatPos()
	g.customers = append(g.customers, c)
	return o
}
