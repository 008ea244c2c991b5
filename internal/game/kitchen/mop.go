package kitchen

import (
	"github.com/vovakirdan/times-kitchen/internal/core"
)

// Mop is the single shared cleaning tool. It is either held by a player
// or lying somewhere on the floor.
type Mop struct {
	Pos  core.Vec2
	Held bool
}

// MopRack marks where the mop lives between rounds. It is solid but
// interaction just hints; the mop itself is picked up off the floor.
type MopRack struct {
	stationBase
}

func newMopRack(pos core.Vec2) *MopRack {
	return &MopRack{
		stationBase: stationBase{typ: StationMopRack, label: "Mop", pos: pos},
	}
}

func (r *MopRack) Interact(p *Player) Result {
	if p.HoldingMop {
		return fail("Find a dirt spot to clean.")
	}
	return fail("Grab the mop next to the rack.")
}

// DirtSpot is a floor stain that accumulates near the cooking stations
// as the shift wears on. Cleaning one with the mop pays a small reward.
type DirtSpot struct {
	ID  int
	Pos core.Vec2
}
