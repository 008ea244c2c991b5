package kitchen

import (
	"testing"

	"github.com/vovakirdan/times-kitchen/internal/catalog"
	"github.com/vovakirdan/times-kitchen/internal/core"
)

func TestCarryCapacityInvariant(t *testing.T) {
	p := newPlayer(core.Player1, core.Vec2{X: 10, Y: 10}, 16, 3)

	for i := 0; i < 3; i++ {
		if !p.Pickup(NewItem(catalog.KindBread)) {
			t.Fatalf("pickup %d rejected below capacity", i)
		}
	}
	if p.CanCarry() {
		t.Error("CanCarry true at capacity")
	}
	if p.Pickup(NewItem(catalog.KindBread)) {
		t.Error("pickup accepted over capacity")
	}
	if len(p.Held) != 3 {
		t.Errorf("held = %d, want 3", len(p.Held))
	}
}

func TestFirstDishScansOldestFirst(t *testing.T) {
	p := newPlayer(core.Player1, core.Vec2{}, 16, 4)
	p.Pickup(NewItem(catalog.KindBread))
	p.Pickup(NewItem(catalog.KindHotdog))
	p.Pickup(NewItem(catalog.KindBurger))

	i, kind, okD := p.FirstDish()
	if !okD || kind != catalog.KindHotdog || i != 1 {
		t.Errorf("FirstDish = (%d, %v, %v), want (1, hotdog, true)", i, kind, okD)
	}
}

func TestMoveBlockedByStations(t *testing.T) {
	g := newTestGame(t, 1)
	p := g.chefs[0]

	// Walk straight at the nearest assembly table; the player must
	// never end up inside its footprint.
	target := core.Vec2{X: 20, Y: 9}
	p.Pos = core.Vec2{X: 20, Y: 13}

	for i := 0; i < 5*60; i++ {
		g.applyMovement(p, frameWith(core.ActionMoveUp), 1.0/60)
	}
	for _, s := range g.layout.Stations {
		if s.Bounds().Contains(int(p.Pos.X+0.5), int(p.Pos.Y+0.5)) {
			t.Fatalf("player at %v ended inside station %s", p.Pos, s.Label())
		}
	}
	if core.Dist(p.Pos, target) > 6 {
		t.Errorf("player at %v never reached the table edge", p.Pos)
	}
}

func TestMoveClampedToPlayfield(t *testing.T) {
	g := newTestGame(t, 1)
	p := g.chefs[0]
	p.Pos = core.Vec2{X: 70, Y: 13}

	for i := 0; i < 20*60; i++ {
		g.applyMovement(p, frameWith(core.ActionMoveRight), 1.0/60)
	}
	if p.Pos.X > playMaxX {
		t.Errorf("player escaped the playfield: x = %v", p.Pos.X)
	}
}

func TestMoveLockedWhileCleaning(t *testing.T) {
	p := newPlayer(core.Player1, core.Vec2{X: 10, Y: 10}, 16, 3)
	p.startCleaning(&DirtSpot{ID: 1, Pos: p.Pos}, 60)

	before := p.Pos
	p.move(core.Vec2{X: 1}, 1.0/60, nil)
	if p.Pos != before {
		t.Error("player moved while cleaning")
	}
}

func TestDiagonalMovementNormalized(t *testing.T) {
	p := newPlayer(core.Player1, core.Vec2{X: 40, Y: 10}, 16, 3)

	p.move(core.Vec2{X: 1, Y: 1}, 1.0, nil)
	moved := core.Dist(core.Vec2{X: 40, Y: 10}, p.Pos)
	// A full second at speed 16 covers at most 16 units, not 16*sqrt(2).
	if moved > 16.01 {
		t.Errorf("diagonal step covered %v units, want <= 16", moved)
	}
}
