package kitchen

import (
	"fmt"

	"github.com/vovakirdan/times-kitchen/internal/core"
)

// ServeCounter is a single-slot hand-off buffer. One player deposits a
// finished dish, the other picks it up; the counter never fulfills
// orders itself.
type ServeCounter struct {
	stationBase
	slot *ItemStack
}

func newServeCounter(pos core.Vec2) *ServeCounter {
	return &ServeCounter{
		stationBase: stationBase{typ: StationServe, label: "Counter", pos: pos},
	}
}

// Slot returns the buffered dish, if any.
func (c *ServeCounter) Slot() (ItemStack, bool) {
	if c.slot == nil {
		return ItemStack{}, false
	}
	return *c.slot, true
}

func (c *ServeCounter) Interact(p *Player) Result {
	if c.slot != nil {
		if !p.CanCarry() {
			return fail("Hands full!")
		}
		dish := *c.slot
		c.slot = nil
		p.Pickup(dish)
		return ok(fmt.Sprintf("Picked up %s", dish.DisplayName()))
	}
	return c.Deposit(p)
}

// Deposit moves the player's first completed dish into the slot.
func (c *ServeCounter) Deposit(p *Player) Result {
	if c.slot != nil {
		return fail("Counter is full!")
	}
	i, kind, okD := p.FirstDish()
	if !okD {
		return fail("No dish to serve!")
	}
	dish := p.RemoveAt(i)
	c.slot = &dish
	return ok(fmt.Sprintf("Left %s on the counter", kind.DisplayName()))
}
