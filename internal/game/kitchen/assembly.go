package kitchen

import (
	"fmt"

	"github.com/vovakirdan/times-kitchen/internal/catalog"
	"github.com/vovakirdan/times-kitchen/internal/core"
)

// AssemblyTable combines placed ingredients into dishes. Interacting
// tries, in order: assemble a dish from what is on the table, hand over
// a dish parked on the table, place the player's most recent item.
type AssemblyTable struct {
	stationBase
	cat *catalog.Catalog

	items  []ItemStack
	parked *ItemStack // assembled dish waiting because hands were full
}

func newAssemblyTable(pos core.Vec2, cat *catalog.Catalog) *AssemblyTable {
	return &AssemblyTable{
		stationBase: stationBase{typ: StationAssembly, label: "Assembly", pos: pos},
		cat:         cat,
	}
}

// Items returns the ingredients currently on the table.
func (t *AssemblyTable) Items() []ItemStack { return t.items }

// Parked returns the assembled dish left on the table, if any.
func (t *AssemblyTable) Parked() (ItemStack, bool) {
	if t.parked == nil {
		return ItemStack{}, false
	}
	return *t.parked, true
}

func (t *AssemblyTable) Interact(p *Player) Result {
	if recipe, okR := t.matchRecipe(); okR {
		t.consume(recipe)
		dish := NewItem(recipe.Dish)
		if p.Pickup(dish) {
			return ok(fmt.Sprintf("Made %s!", recipe.Name))
		}
		t.parked = &dish
		return ok(fmt.Sprintf("Made %s! (left on table)", recipe.Name))
	}
	if t.parked != nil {
		if !p.CanCarry() {
			return fail("Hands full!")
		}
		dish := *t.parked
		t.parked = nil
		p.Pickup(dish)
		return ok(fmt.Sprintf("Picked up %s", dish.DisplayName()))
	}
	if item, okP := p.PopItem(); okP {
		t.items = append(t.items, item)
		return ok(fmt.Sprintf("Placed %s on table", item.DisplayName()))
	}
	return fail("Nothing to assemble!")
}

// matchRecipe returns the first catalog recipe whose full ingredient
// list is covered by the items on the table. Catalog order is the
// tie-break when several recipes match.
func (t *AssemblyTable) matchRecipe() (catalog.Recipe, bool) {
	for _, r := range t.cat.Recipes {
		if t.covers(r.Ingredients) {
			return r, true
		}
	}
	return catalog.Recipe{}, false
}

func (t *AssemblyTable) covers(ingredients []catalog.ItemKind) bool {
	counts := make(map[catalog.ItemKind]int, len(t.items))
	for _, item := range t.items {
		counts[item.Kind]++
	}
	for _, need := range ingredients {
		if counts[need] == 0 {
			return false
		}
		counts[need]--
	}
	return true
}

// consume removes exactly the recipe's ingredients, first-matching
// instance of each; unrelated items stay on the table.
func (t *AssemblyTable) consume(r catalog.Recipe) {
	for _, need := range r.Ingredients {
		for i, item := range t.items {
			if item.Kind == need {
				t.items = append(t.items[:i], t.items[i+1:]...)
				break
			}
		}
	}
}
