package kitchen

import (
	"github.com/vovakirdan/times-kitchen/internal/core"
)

// DiningTable seats exactly one customer at a time.
type DiningTable struct {
	stationBase
	Occupied bool
}

func newDiningTable(pos core.Vec2) *DiningTable {
	return &DiningTable{
		stationBase: stationBase{typ: StationDining, label: "Table", pos: pos},
	}
}

// SeatPos is where a seated customer stands, just above the table.
func (t *DiningTable) SeatPos() core.Vec2 {
	return core.Vec2{X: t.pos.X, Y: t.pos.Y - 2}
}

func (t *DiningTable) Interact(p *Player) Result {
	return fail("That table is for customers.")
}
