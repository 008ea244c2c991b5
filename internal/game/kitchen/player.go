package kitchen

import (
	"github.com/vovakirdan/times-kitchen/internal/catalog"
	"github.com/vovakirdan/times-kitchen/internal/core"
)

// Player is a chef controlled by one local player. Position is in
// playfield coordinates (floats; render rounds to cells).
type Player struct {
	ID    core.PlayerID
	Pos   core.Vec2
	Speed float64

	CarryCapacity int
	Held          []ItemStack

	HoldingMop bool

	// Cleaning locks movement until the countdown hits zero.
	Cleaning      bool
	cleaningLeft  int
	cleaningTotal int
	cleaningSpot  *DirtSpot

	// pendingCooler is the open ingredient-selection modal, if any.
	pendingCooler *Cooler
}

func newPlayer(id core.PlayerID, spawn core.Vec2, speed float64, capacity int) *Player {
	return &Player{
		ID:            id,
		Pos:           spawn,
		Speed:         speed,
		CarryCapacity: capacity,
		Held:          make([]ItemStack, 0, capacity),
	}
}

// CanCarry reports whether the player has a free hand slot.
func (p *Player) CanCarry() bool {
	return len(p.Held) < p.CarryCapacity
}

// Pickup appends an item to the carry stack. Returns false when full.
func (p *Player) Pickup(item ItemStack) bool {
	if !p.CanCarry() {
		return false
	}
	p.Held = append(p.Held, item)
	return true
}

// PopItem removes and returns the most recently picked-up item.
func (p *Player) PopItem() (ItemStack, bool) {
	if len(p.Held) == 0 {
		return ItemStack{}, false
	}
	item := p.Held[len(p.Held)-1]
	p.Held = p.Held[:len(p.Held)-1]
	return item, true
}

// FirstDish returns the index and kind of the first completed dish in the
// carry stack, scanning oldest-first.
func (p *Player) FirstDish() (int, catalog.ItemKind, bool) {
	for i, item := range p.Held {
		if item.Kind.IsDish() {
			return i, item.Kind, true
		}
	}
	return 0, catalog.KindNone, false
}

// RemoveAt removes the item at index i, preserving order.
func (p *Player) RemoveAt(i int) ItemStack {
	item := p.Held[i]
	p.Held = append(p.Held[:i], p.Held[i+1:]...)
	return item
}

// RemoveFirst removes the first held item of the given kind.
func (p *Player) RemoveFirst(kind catalog.ItemKind) bool {
	for i, item := range p.Held {
		if item.Kind == kind {
			p.RemoveAt(i)
			return true
		}
	}
	return false
}

func (p *Player) startCleaning(spot *DirtSpot, ticks int) {
	p.Cleaning = true
	p.cleaningLeft = ticks
	p.cleaningTotal = ticks
	p.cleaningSpot = spot
}

// CleanProgress reports cleaning completion in [0,1].
func (p *Player) CleanProgress() float64 {
	if !p.Cleaning || p.cleaningTotal == 0 {
		return 0
	}
	return 1 - float64(p.cleaningLeft)/float64(p.cleaningTotal)
}

// move advances the player along dir, axis-separated so sliding along a
// station edge works. Movement is blocked while cleaning or while the
// cooler modal is open.
func (p *Player) move(dir core.Vec2, dt float64, obstacles []core.Collidable) {
	if p.Cleaning || p.pendingCooler != nil {
		return
	}
	if dir.X == 0 && dir.Y == 0 {
		return
	}
	step := dir.Normalize().Scale(p.Speed * dt)

	next := p.Pos
	next.X = core.ClampF(p.Pos.X+step.X, playMinX, playMaxX)
	if !collides(next, obstacles) {
		p.Pos.X = next.X
	}
	next = p.Pos
	next.Y = core.ClampF(p.Pos.Y+step.Y, playMinY, playMaxY)
	if !collides(next, obstacles) {
		p.Pos.Y = next.Y
	}
}

func collides(pos core.Vec2, obstacles []core.Collidable) bool {
	cx, cy := int(pos.X+0.5), int(pos.Y+0.5)
	for _, o := range obstacles {
		if o.Bounds().Contains(cx, cy) {
			return true
		}
	}
	return false
}

