package kitchen

import (
	"strconv"

	"github.com/vovakirdan/times-kitchen/internal/core"
)

// applyActions resolves one player's discrete actions for this tick.
// While the cooler modal is open only digit and cancel actions do
// anything, so a stray interact cannot dispense the wrong ingredient.
func (g *Game) applyActions(p *Player, frame core.InputFrame) {
	if p.pendingCooler != nil {
		switch {
		case frame.Has(core.ActionDigit1):
			g.report(p, p.pendingCooler.Dispense(p, 0))
		case frame.Has(core.ActionDigit2):
			g.report(p, p.pendingCooler.Dispense(p, 1))
		case frame.Has(core.ActionCancel), frame.Has(core.ActionBack):
			p.pendingCooler = nil
		}
		return
	}
	if p.Cleaning {
		return
	}

	if frame.Has(core.ActionInteract) {
		g.report(p, g.interact(p))
	}
	if frame.Has(core.ActionServe) {
		g.report(p, g.serve(p))
	}
	if frame.Has(core.ActionDrop) {
		g.report(p, g.drop(p))
	}
}

// applyMovement converts held move actions into a direction and steps
// the player, diagonals normalized.
func (g *Game) applyMovement(p *Player, frame core.InputFrame, dt float64) {
	var dir core.Vec2
	if frame.Has(core.ActionMoveUp) {
		dir.Y--
	}
	if frame.Has(core.ActionMoveDown) {
		dir.Y++
	}
	if frame.Has(core.ActionMoveLeft) {
		dir.X--
	}
	if frame.Has(core.ActionMoveRight) {
		dir.X++
	}
	p.move(dir, dt, g.layout.solids)
}

// interact is the priority scan for the interact key: floor mop first,
// then dirt when holding the mop, then the cooler modal, then the rest
// of the stations in layout order.
func (g *Game) interact(p *Player) Result {
	if !p.HoldingMop && !g.mop.Held && core.Dist(p.Pos, g.mop.Pos) <= mopRadius {
		p.HoldingMop = true
		g.mop.Held = true
		return ok("Grabbed the mop")
	}

	if p.HoldingMop {
		for _, d := range g.dirt {
			if core.Dist(p.Pos, d.Pos) <= dirtRadius {
				p.startCleaning(d, g.cfg.Dirt.CleanTicks)
				return ok("Cleaning...")
			}
		}
	}

	for _, s := range g.layout.Stations {
		if s.Type() == StationCooler && s.CanInteract(p.Pos) {
			return s.Interact(p)
		}
	}
	for _, s := range g.layout.Stations {
		if s.Type() != StationCooler && s.CanInteract(p.Pos) {
			return s.Interact(p)
		}
	}
	return fail("Nothing here")
}

// serve delivers the player's first dish to a seated customer in range
// whose order matches; failing that it falls back to the hand-off
// counter. At most one order completes per call.
func (g *Game) serve(p *Player) Result {
	i, kind, okD := p.FirstDish()
	if !okD {
		return fail("No dish to serve!")
	}

	for _, c := range g.customers {
		if !c.CanReceive() || c.Order.Dish != kind {
			continue
		}
		if core.Dist(p.Pos, c.Pos) > deliveryRadius {
			continue
		}
		p.RemoveAt(i)
		reward := c.Order.Reward * g.round.RewardMultiplier
		g.orders.Fulfill(c.Order, reward)
		c.Receive()
		g.score += reward
		return ok("Order complete! +$" + strconv.Itoa(reward))
	}

	if g.layout.Serve.CanInteract(p.Pos) {
		return g.layout.Serve.Deposit(p)
	}
	return fail("No one wants that here!")
}

// drop discards the most recent item, or puts the mop down at the
// player's feet where anyone can pick it back up.
func (g *Game) drop(p *Player) Result {
	if p.HoldingMop {
		p.HoldingMop = false
		g.mop.Held = false
		g.mop.Pos = p.Pos
		return ok("Dropped the mop")
	}
	item, okP := p.PopItem()
	if !okP {
		return fail("Nothing to drop")
	}
	return ok("Tossed " + item.DisplayName())
}

// report surfaces an operation outcome on the HUD.
func (g *Game) report(p *Player, r Result) {
	if r.Message == "" {
		return
	}
	life := 2.0
	if !r.OK {
		life = 1.5
	}
	g.pushMessage(r.Message, life)
}
