package kitchen

import (
	"testing"

	"github.com/vovakirdan/times-kitchen/internal/catalog"
	"github.com/vovakirdan/times-kitchen/internal/core"
)

func newTestGame(t *testing.T, players int) *Game {
	t.Helper()
	g := New(players)
	g.Reset(testConfig())
	return g
}

func TestInteractPrefersMopOverStation(t *testing.T) {
	g := newTestGame(t, 1)
	p := g.chefs[0]

	// Drop the mop right next to a station so both are in range.
	station := g.layout.Stations[0]
	g.mop.Pos = station.Center().Add(core.Vec2{X: 3, Y: 0})
	p.Pos = g.mop.Pos

	res := g.interact(p)
	if !res.OK || !p.HoldingMop {
		t.Fatalf("expected mop pickup, got: %s", res.Message)
	}
	if !g.mop.Held {
		t.Error("mop state not marked held")
	}
}

func TestInteractCleansDirtWhenHoldingMop(t *testing.T) {
	g := newTestGame(t, 1)
	p := g.chefs[0]
	p.HoldingMop = true
	g.mop.Held = true

	spot := &DirtSpot{ID: 1, Pos: p.Pos}
	g.dirt = append(g.dirt, spot)

	res := g.interact(p)
	if !res.OK || !p.Cleaning {
		t.Fatalf("expected cleaning to start, got: %s", res.Message)
	}

	// Cleaning locks until the tick counter runs out, then pays.
	in := core.NewMultiInputFrame()
	for i := 0; i < g.cfg.Dirt.CleanTicks+1; i++ {
		g.Step(in)
	}
	if p.Cleaning {
		t.Error("cleaning never finished")
	}
	if len(g.dirt) != 0 {
		t.Error("dirt spot not removed")
	}
	if g.score != g.cfg.Rewards.Cleaning {
		t.Errorf("score = %d, want cleaning reward %d", g.score, g.cfg.Rewards.Cleaning)
	}
}

func TestCoolerModalFlow(t *testing.T) {
	g := newTestGame(t, 1)
	p := g.chefs[0]

	var cooler *Cooler
	for _, s := range g.layout.Stations {
		if c, okC := s.(*Cooler); okC {
			cooler = c
		}
	}
	p.Pos = cooler.Center().Add(core.Vec2{X: 3, Y: 0})

	res := g.interact(p)
	if !res.OK || p.pendingCooler == nil {
		t.Fatalf("expected modal to open, got: %s", res.Message)
	}

	// Movement is locked while the modal is open.
	before := p.Pos
	g.applyMovement(p, frameWith(core.ActionMoveRight), 1.0/60)
	if p.Pos != before {
		t.Error("player moved while modal open")
	}

	// Digit 2 dispenses the second option (raw sausage).
	g.applyActions(p, frameWith(core.ActionDigit2))
	if p.pendingCooler != nil {
		t.Fatal("modal should close after a valid choice")
	}
	if len(p.Held) != 1 || p.Held[0].Kind != catalog.KindSausage {
		t.Errorf("held = %v, want one raw sausage", p.Held)
	}
}

func TestCoolerModalCancel(t *testing.T) {
	g := newTestGame(t, 1)
	p := g.chefs[0]
	var cooler *Cooler
	for _, s := range g.layout.Stations {
		if c, okC := s.(*Cooler); okC {
			cooler = c
		}
	}
	p.pendingCooler = cooler

	g.applyActions(p, frameWith(core.ActionCancel))
	if p.pendingCooler != nil {
		t.Error("cancel should close the modal")
	}
	if len(p.Held) != 0 {
		t.Error("cancel must not dispense anything")
	}
}

func TestServeDeliversAtMostOneOrder(t *testing.T) {
	g := newTestGame(t, 1)
	p := g.chefs[0]

	// Two identical burger orders at two tables, both in range.
	recipe, _ := g.cat.RecipeFor(catalog.KindBurger)
	var orders []*Order
	for i := 0; i < 2; i++ {
		o := &Order{ID: 100 + i, Dish: recipe.Dish, Name: recipe.Name, Reward: recipe.Reward}
		g.orders.active = append(g.orders.active, o)
		c := newCustomer(o, 0, 10, 4)
		c.AssignTable(g.layout.Tables[i])
		c.State = CustomerSitting
		// Stack both customers in range so the scan could match either.
		c.Pos = g.layout.Tables[0].SeatPos()
		g.customers = append(g.customers, c)
		orders = append(orders, o)
	}
	p.Pos = g.layout.Tables[0].SeatPos()
	p.Pickup(NewItem(catalog.KindBurger))
	p.Pickup(NewItem(catalog.KindBurger))

	res := g.serve(p)
	if !res.OK {
		t.Fatalf("serve failed: %s", res.Message)
	}
	completed := 0
	for _, o := range orders {
		if o.Completed {
			completed++
		}
	}
	if completed != 1 {
		t.Fatalf("one serve completed %d orders, want exactly 1", completed)
	}
	if len(p.Held) != 1 {
		t.Errorf("held = %d dishes after one serve, want 1", len(p.Held))
	}
	if g.score != recipe.Reward {
		t.Errorf("score = %d, want %d", g.score, recipe.Reward)
	}
}

func TestServeFallsBackToCounter(t *testing.T) {
	g := newTestGame(t, 2)
	p := g.chefs[0]
	p.Pos = g.layout.Serve.Center().Add(core.Vec2{X: 0, Y: 2})
	p.Pickup(NewItem(catalog.KindHotdog))

	res := g.serve(p)
	if !res.OK {
		t.Fatalf("counter deposit failed: %s", res.Message)
	}
	slot, okS := g.layout.Serve.Slot()
	if !okS || slot.Kind != catalog.KindHotdog {
		t.Fatalf("counter slot = %v %v, want hotdog", slot, okS)
	}
	if len(p.Held) != 0 {
		t.Error("dish not removed from player")
	}

	// The other player picks it up off the counter.
	p2 := g.chefs[1]
	p2.Pos = p.Pos
	res = g.interact(p2)
	if !res.OK {
		t.Fatalf("counter pickup failed: %s", res.Message)
	}
	if len(p2.Held) != 1 || p2.Held[0].Kind != catalog.KindHotdog {
		t.Errorf("p2 held = %v, want the hotdog", p2.Held)
	}
}

func TestServeWithNoDish(t *testing.T) {
	g := newTestGame(t, 1)
	p := g.chefs[0]
	p.Pickup(NewItem(catalog.KindBread)) // an ingredient, not a dish

	if res := g.serve(p); res.OK {
		t.Errorf("serving without a dish should fail, got: %s", res.Message)
	}
	if len(p.Held) != 1 {
		t.Error("failed serve must not consume items")
	}
}

func TestDropMopReturnsItToFloor(t *testing.T) {
	g := newTestGame(t, 1)
	p := g.chefs[0]
	p.HoldingMop = true
	g.mop.Held = true

	res := g.drop(p)
	if !res.OK || p.HoldingMop || g.mop.Held {
		t.Fatalf("mop drop broken: %s", res.Message)
	}
	if g.mop.Pos != p.Pos {
		t.Errorf("mop at %v, want player position %v", g.mop.Pos, p.Pos)
	}
}

func TestDropDiscardsLastItem(t *testing.T) {
	g := newTestGame(t, 1)
	p := g.chefs[0]
	p.Pickup(NewItem(catalog.KindBread))
	p.Pickup(NewItem(catalog.KindMeat))

	if res := g.drop(p); !res.OK {
		t.Fatalf("drop failed: %s", res.Message)
	}
	if len(p.Held) != 1 || p.Held[0].Kind != catalog.KindBread {
		t.Errorf("held = %v, want just the bread (LIFO drop)", p.Held)
	}

	g.drop(p)
	if res := g.drop(p); res.OK {
		t.Error("drop with empty hands should fail")
	}
}

func frameWith(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}
