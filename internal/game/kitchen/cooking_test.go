package kitchen

import (
	"testing"

	"github.com/vovakirdan/times-kitchen/internal/catalog"
	"github.com/vovakirdan/times-kitchen/internal/core"
)

func testChef() *Player {
	return newPlayer(core.Player1, core.Vec2{X: 10, Y: 10}, 16, 3)
}

func TestCookingStationLifecycle(t *testing.T) {
	cat := catalog.Default()
	s := newStove(core.Vec2{X: 16, Y: 2}, cat.StoveRules)
	p := testChef()
	p.Pickup(NewItem(catalog.KindMeat))

	res := s.Interact(p)
	if !res.OK {
		t.Fatalf("loading meat failed: %s", res.Message)
	}
	if s.State() != Cooking {
		t.Fatalf("state = %v, want Cooking", s.State())
	}
	if len(p.Held) != 0 {
		t.Error("meat not removed from player")
	}

	// Interacting mid-cook changes nothing.
	if res := s.Interact(p); res.OK {
		t.Error("interact during cooking should fail")
	}

	// Meat cooks in 5 seconds at default config; a couple of extra
	// ticks cover float accumulation.
	for i := 0; i < 5*60+2; i++ {
		s.Tick(1.0 / 60)
	}
	if s.State() != CookReady {
		t.Fatalf("state after cook time = %v, want CookReady", s.State())
	}
	if s.Current() != catalog.KindCookedMeat {
		t.Errorf("output = %v, want cooked meat", s.Current())
	}

	res = s.Interact(p)
	if !res.OK {
		t.Fatalf("collecting failed: %s", res.Message)
	}
	if s.State() != CookIdle {
		t.Errorf("state after collect = %v, want CookIdle", s.State())
	}
	if len(p.Held) != 1 || p.Held[0].Kind != catalog.KindCookedMeat {
		t.Errorf("player holds %v, want one cooked meat", p.Held)
	}
}

func TestCookingStationRejectsWrongItems(t *testing.T) {
	cat := catalog.Default()
	s := newStove(core.Vec2{X: 16, Y: 2}, cat.StoveRules)
	p := testChef()
	p.Pickup(NewItem(catalog.KindBread))
	p.Pickup(NewItem(catalog.KindPasta)) // pasta boils, never fries

	if res := s.Interact(p); res.OK {
		t.Errorf("stove accepted uncookable items: %s", res.Message)
	}
	if len(p.Held) != 2 {
		t.Error("failed interact must leave the carry stack unchanged")
	}
}

func TestCookingStationHandsFullOnCollect(t *testing.T) {
	cat := catalog.Default()
	s := newBoiler(core.Vec2{X: 33, Y: 2}, cat.BoilerRules)
	p := testChef()
	p.Pickup(NewItem(catalog.KindPasta))
	if res := s.Interact(p); !res.OK {
		t.Fatalf("loading pasta failed: %s", res.Message)
	}
	for i := 0; i < 7*60+2; i++ {
		s.Tick(1.0 / 60)
	}

	p.Pickup(NewItem(catalog.KindBread))
	p.Pickup(NewItem(catalog.KindBread))
	p.Pickup(NewItem(catalog.KindBread))

	res := s.Interact(p)
	if res.OK {
		t.Error("collect with full hands should fail")
	}
	if s.State() != CookReady {
		t.Error("ready item must stay on the station until collected")
	}
}

func TestCooklessInteractSelectsFirstCookable(t *testing.T) {
	cat := catalog.Default()
	s := newStove(core.Vec2{X: 16, Y: 2}, cat.StoveRules)
	p := testChef()
	p.Pickup(NewItem(catalog.KindBread))
	p.Pickup(NewItem(catalog.KindSausage))
	p.Pickup(NewItem(catalog.KindMeat))

	if res := s.Interact(p); !res.OK {
		t.Fatalf("load failed: %s", res.Message)
	}
	// Sausage comes before meat in the stack, so it loads first.
	if s.Current() != catalog.KindSausage {
		t.Errorf("loaded %v, want sausage (first cookable in stack)", s.Current())
	}
}
