package kitchen

import (
	"fmt"

	"github.com/vovakirdan/times-kitchen/internal/catalog"
	"github.com/vovakirdan/times-kitchen/internal/core"
)

// IngredientTable dispenses one fixed ingredient per interaction. Supply
// is unlimited.
type IngredientTable struct {
	stationBase
	provides catalog.ItemKind
}

func newIngredientTable(pos core.Vec2, provides catalog.ItemKind) *IngredientTable {
	return &IngredientTable{
		stationBase: stationBase{typ: StationIngredient, label: provides.DisplayName(), pos: pos},
		provides:    provides,
	}
}

// Provides returns the ingredient this table dispenses.
func (t *IngredientTable) Provides() catalog.ItemKind { return t.provides }

func (t *IngredientTable) Interact(p *Player) Result {
	if !p.CanCarry() {
		return fail("Hands full!")
	}
	p.Pickup(NewItem(t.provides))
	return ok(fmt.Sprintf("Picked up %s", t.provides.DisplayName()))
}

// Cooler holds several raw ingredients behind a selection modal.
// Interacting opens the modal on the player; a digit action then
// dispenses the chosen option.
type Cooler struct {
	stationBase
	options []catalog.ItemKind
}

func newCooler(pos core.Vec2, options ...catalog.ItemKind) *Cooler {
	return &Cooler{
		stationBase: stationBase{typ: StationCooler, label: "Cooler", pos: pos},
		options:     options,
	}
}

// Options returns the selectable ingredients in menu order.
func (c *Cooler) Options() []catalog.ItemKind { return c.options }

func (c *Cooler) Interact(p *Player) Result {
	p.pendingCooler = c
	return ok(c.prompt())
}

func (c *Cooler) prompt() string {
	msg := "Cooler:"
	for i, opt := range c.options {
		msg += fmt.Sprintf(" %d) %s", i+1, opt.DisplayName())
	}
	return msg
}

// Dispense resolves a modal choice. Out-of-range choices keep the modal
// open; a successful or hands-full outcome closes it.
func (c *Cooler) Dispense(p *Player, choice int) Result {
	if choice < 0 || choice >= len(c.options) {
		return fail(c.prompt())
	}
	p.pendingCooler = nil
	if !p.CanCarry() {
		return fail("Hands full!")
	}
	kind := c.options[choice]
	p.Pickup(NewItem(kind))
	return ok(fmt.Sprintf("Picked up %s", kind.DisplayName()))
}
