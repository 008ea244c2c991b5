package kitchen

import (
	"fmt"

	"github.com/vovakirdan/times-kitchen/internal/catalog"
	"github.com/vovakirdan/times-kitchen/internal/core"
)

// CookState is the cooking-station state machine.
type CookState int

const (
	CookIdle CookState = iota
	Cooking
	CookReady
)

func (s CookState) String() string {
	switch s {
	case CookIdle:
		return "idle"
	case Cooking:
		return "cooking"
	case CookReady:
		return "ready"
	default:
		return "unknown"
	}
}

// CookingStation transforms one input item into one output item over a
// fixed duration. Stoves and boilers differ only in their rule set.
type CookingStation struct {
	stationBase
	rules []catalog.CookRule

	state    CookState
	current  catalog.ItemKind // input while cooking, output when ready
	elapsed  float64
	duration float64
}

func newStove(pos core.Vec2, rules []catalog.CookRule) *CookingStation {
	return &CookingStation{
		stationBase: stationBase{typ: StationStove, label: "Stove", pos: pos},
		rules:       rules,
	}
}

func newBoiler(pos core.Vec2, rules []catalog.CookRule) *CookingStation {
	return &CookingStation{
		stationBase: stationBase{typ: StationBoiler, label: "Boiler", pos: pos},
		rules:       rules,
	}
}

// State returns the current machine state.
func (s *CookingStation) State() CookState { return s.state }

// Current returns the item on the station: the input while cooking, the
// output once ready, KindNone when idle.
func (s *CookingStation) Current() catalog.ItemKind { return s.current }

// Progress reports cook completion in [0,1]; 0 when not cooking.
func (s *CookingStation) Progress() float64 {
	if s.state != Cooking || s.duration == 0 {
		return 0
	}
	if s.elapsed >= s.duration {
		return 1
	}
	return s.elapsed / s.duration
}

func (s *CookingStation) Tick(dt float64) {
	if s.state != Cooking {
		return
	}
	s.elapsed += dt
	if s.elapsed >= s.duration {
		rule, _ := catalog.RuleFor(s.rules, s.current)
		s.current = rule.Output
		s.state = CookReady
	}
}

// Interact collects the finished item when ready, otherwise loads the
// first cookable item from the player's stack.
func (s *CookingStation) Interact(p *Player) Result {
	switch s.state {
	case CookReady:
		if !p.CanCarry() {
			return fail("Hands full!")
		}
		done := s.current
		p.Pickup(NewItem(done))
		s.state = CookIdle
		s.current = catalog.KindNone
		return ok(fmt.Sprintf("Picked up %s", done.DisplayName()))
	case Cooking:
		return fail(fmt.Sprintf("Cooking... %.1fs left", s.duration-s.elapsed))
	default:
		for i, item := range p.Held {
			rule, okRule := catalog.RuleFor(s.rules, item.Kind)
			if !okRule {
				continue
			}
			p.RemoveAt(i)
			s.state = Cooking
			s.current = rule.Input
			s.elapsed = 0
			s.duration = rule.Duration
			return ok(fmt.Sprintf("Cooking %s...", rule.Input.DisplayName()))
		}
		return fail("No cookable items!")
	}
}
