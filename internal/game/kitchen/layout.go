package kitchen

import (
	"github.com/vovakirdan/times-kitchen/internal/catalog"
	"github.com/vovakirdan/times-kitchen/internal/core"
)

// The playfield is a fixed logical grid so the simulation is identical
// on every terminal size; rendering centers it on screen. Coordinates
// below are playfield coordinates, origin top-left.
const (
	fieldW = 78
	fieldH = 20

	hudHeight = 3

	minScreenW = 80
	minScreenH = 24

	stationHalfW = 2
	stationHalfH = 1

	// Players stay inside the playfield; customers roam past the right
	// edge while arriving and exiting.
	playMinX = 0.5
	playMaxX = fieldW - 1.5
	playMinY = 0.5
	playMaxY = fieldH - 1.0

	interactRadius = 4.5
	deliveryRadius = 4.5
	dirtRadius     = 3.5
	mopRadius      = 3.0

	customerSpawnX = 84.0
	exitThresholdX = 86.0
	queueBaseX     = 62.0
	queueStepX     = 3.0
	queueY         = 5.0
	exitCornerX    = 74.0
	exitCornerY    = 18.0
)

// Layout is the fixed station placement, built once per Reset.
type Layout struct {
	Stations []Station
	Tables   []*DiningTable

	Serve   *ServeCounter
	MopHome core.Vec2

	CashierPos   core.Vec2
	PlayerSpawns [2]core.Vec2

	// solids blocks player movement: stations plus dining tables.
	solids []core.Collidable
}

func buildLayout(cat *catalog.Catalog) *Layout {
	l := &Layout{
		MopHome:    core.Vec2{X: 47, Y: 9},
		CashierPos: core.Vec2{X: 66, Y: 2},
		PlayerSpawns: [2]core.Vec2{
			{X: 26, Y: 13},
			{X: 38, Y: 13},
		},
	}

	cooler := newCooler(core.Vec2{X: 3, Y: 3}, catalog.KindMeat, catalog.KindSausage)
	bread := newIngredientTable(core.Vec2{X: 3, Y: 8}, catalog.KindBread)
	pasta := newIngredientTable(core.Vec2{X: 3, Y: 13}, catalog.KindPasta)

	stove1 := newStove(core.Vec2{X: 16, Y: 2}, cat.StoveRules)
	stove2 := newStove(core.Vec2{X: 24, Y: 2}, cat.StoveRules)
	boiler1 := newBoiler(core.Vec2{X: 33, Y: 2}, cat.BoilerRules)
	boiler2 := newBoiler(core.Vec2{X: 41, Y: 2}, cat.BoilerRules)

	asm1 := newAssemblyTable(core.Vec2{X: 20, Y: 9}, cat)
	asm2 := newAssemblyTable(core.Vec2{X: 32, Y: 9}, cat)

	l.Serve = newServeCounter(core.Vec2{X: 56, Y: 2})
	rack := newMopRack(core.Vec2{X: 44, Y: 9})

	// Scan order below is the tie-break order when interaction zones
	// overlap: coolers are checked before everything else by the
	// resolver, the rest in this order.
	l.Stations = []Station{
		cooler, bread, pasta,
		stove1, stove2, boiler1, boiler2,
		asm1, asm2,
		l.Serve, rack,
	}

	l.Tables = []*DiningTable{
		newDiningTable(core.Vec2{X: 16, Y: 16}),
		newDiningTable(core.Vec2{X: 36, Y: 16}),
		newDiningTable(core.Vec2{X: 56, Y: 16}),
	}

	for _, s := range l.Stations {
		l.solids = append(l.solids, s)
	}
	for _, t := range l.Tables {
		l.solids = append(l.solids, t)
	}
	return l
}
