package kitchen

import (
	"github.com/vovakirdan/times-kitchen/internal/core"
)

// StationType discriminates station kinds for rendering and snapshots.
type StationType int

const (
	StationCooler StationType = iota
	StationIngredient
	StationStove
	StationBoiler
	StationAssembly
	StationServe
	StationMopRack
	StationDining
)

func (t StationType) String() string {
	switch t {
	case StationCooler:
		return "cooler"
	case StationIngredient:
		return "ingredient"
	case StationStove:
		return "stove"
	case StationBoiler:
		return "boiler"
	case StationAssembly:
		return "assembly"
	case StationServe:
		return "serve"
	case StationMopRack:
		return "mop_rack"
	case StationDining:
		return "dining"
	default:
		return "unknown"
	}
}

// Station is a fixed interactable in the kitchen. Interact applies the
// station's state machine to the given player and reports the outcome;
// Tick advances time-driven state (cook timers). All stations are solid
// for movement via Bounds.
type Station interface {
	core.Collidable
	Type() StationType
	Label() string
	Center() core.Vec2
	CanInteract(pos core.Vec2) bool
	Interact(p *Player) Result
	Tick(dt float64)
}

// stationBase carries placement shared by all stations. Footprint is a
// 5x3 cell block centered on pos.
type stationBase struct {
	typ   StationType
	label string
	pos   core.Vec2
}

func (b *stationBase) Type() StationType { return b.typ }
func (b *stationBase) Label() string     { return b.label }
func (b *stationBase) Center() core.Vec2 { return b.pos }
func (b *stationBase) Tick(dt float64)   {}

func (b *stationBase) Bounds() core.Rect {
	return core.Rect{
		X: int(b.pos.X) - stationHalfW,
		Y: int(b.pos.Y) - stationHalfH,
		W: stationHalfW*2 + 1,
		H: stationHalfH*2 + 1,
	}
}

func (b *stationBase) CanInteract(pos core.Vec2) bool {
	return core.Dist(pos, b.pos) <= interactRadius
}
