package kitchen

import (
	"testing"

	"github.com/vovakirdan/times-kitchen/internal/catalog"
	"github.com/vovakirdan/times-kitchen/internal/core"
)

func testAssembly() (*AssemblyTable, catalog.Catalog) {
	cat := catalog.Default()
	return newAssemblyTable(core.Vec2{X: 20, Y: 9}, &cat), cat
}

func TestAssemblyPlaceAndCombine(t *testing.T) {
	table, _ := testAssembly()
	p := testChef()

	p.Pickup(NewItem(catalog.KindBread))
	if res := table.Interact(p); !res.OK {
		t.Fatalf("placing bread failed: %s", res.Message)
	}
	if len(table.Items()) != 1 {
		t.Fatalf("table has %d items, want 1", len(table.Items()))
	}

	p.Pickup(NewItem(catalog.KindCookedMeat))
	if res := table.Interact(p); !res.OK {
		t.Fatalf("placing cooked meat failed: %s", res.Message)
	}

	// Bread + cooked meat is a burger; next interact assembles it.
	res := table.Interact(p)
	if !res.OK {
		t.Fatalf("assembling failed: %s", res.Message)
	}
	if len(p.Held) != 1 || p.Held[0].Kind != catalog.KindBurger {
		t.Errorf("player holds %v, want one burger", p.Held)
	}
	if len(table.Items()) != 0 {
		t.Errorf("table still has %d items after assembly", len(table.Items()))
	}
}

func TestAssemblyConsumesOnlyRecipeIngredients(t *testing.T) {
	table, _ := testAssembly()

	table.items = []ItemStack{
		NewItem(catalog.KindBoiledPasta),
		NewItem(catalog.KindBread),
		NewItem(catalog.KindCookedMeat),
	}

	p := testChef()
	res := table.Interact(p)
	if !res.OK {
		t.Fatalf("assembly failed: %s", res.Message)
	}
	// Burger precedes pasta in the catalog, so it wins; the pasta
	// ingredient stays put.
	if p.Held[0].Kind != catalog.KindBurger {
		t.Errorf("assembled %v, want burger", p.Held[0].Kind)
	}
	if len(table.Items()) != 1 || table.Items()[0].Kind != catalog.KindBoiledPasta {
		t.Errorf("leftovers = %v, want just boiled pasta", table.Items())
	}
}

func TestAssemblyParksDishWhenHandsFull(t *testing.T) {
	table, _ := testAssembly()
	table.items = []ItemStack{
		NewItem(catalog.KindBread),
		NewItem(catalog.KindCookedSausage),
	}

	p := testChef()
	p.Pickup(NewItem(catalog.KindBread))
	p.Pickup(NewItem(catalog.KindBread))
	p.Pickup(NewItem(catalog.KindBread))

	res := table.Interact(p)
	if !res.OK {
		t.Fatalf("assembly failed: %s", res.Message)
	}
	parked, okP := table.Parked()
	if !okP || parked.Kind != catalog.KindHotdog {
		t.Fatalf("parked = %v %v, want hotdog", parked, okP)
	}

	// Free a hand and pick the parked dish up.
	p.PopItem()
	res = table.Interact(p)
	if !res.OK {
		t.Fatalf("collecting parked dish failed: %s", res.Message)
	}
	if _, still := table.Parked(); still {
		t.Error("parked dish not cleared after pickup")
	}
	found := false
	for _, item := range p.Held {
		if item.Kind == catalog.KindHotdog {
			found = true
		}
	}
	if !found {
		t.Error("player never received the hotdog")
	}
}

func TestAssemblyEmptyHandsEmptyTable(t *testing.T) {
	table, _ := testAssembly()
	p := testChef()
	if res := table.Interact(p); res.OK {
		t.Errorf("interact with nothing anywhere should fail, got: %s", res.Message)
	}
}
