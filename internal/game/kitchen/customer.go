package kitchen

import (
	"math"

	"github.com/vovakirdan/times-kitchen/internal/core"
)

// CustomerState is the customer lifecycle. Transitions only move
// forward, except Waiting -> Arriving when the queue shifts.
type CustomerState int

const (
	CustomerArriving CustomerState = iota
	CustomerWaiting
	CustomerGoingToTable
	CustomerSitting
	CustomerEating
	CustomerLeaving
	CustomerExiting
	CustomerGone
)

func (s CustomerState) String() string {
	switch s {
	case CustomerArriving:
		return "arriving"
	case CustomerWaiting:
		return "waiting"
	case CustomerGoingToTable:
		return "going_to_table"
	case CustomerSitting:
		return "sitting"
	case CustomerEating:
		return "eating"
	case CustomerLeaving:
		return "leaving"
	case CustomerExiting:
		return "exiting"
	case CustomerGone:
		return "gone"
	default:
		return "unknown"
	}
}

// Customer walks in from off-screen, queues, sits, eats, and leaves.
// A customer whose order spawned with no free table has Table == nil
// and waits in line until one frees up.
type Customer struct {
	Pos   core.Vec2
	State CustomerState

	Order *Order
	Table *DiningTable

	LinePos int
	targetX float64

	speed       float64
	eatDuration float64
	eatElapsed  float64

	bobTimer float64
}

func newCustomer(order *Order, linePos int, speed, eatDuration float64) *Customer {
	c := &Customer{
		Pos:         core.Vec2{X: customerSpawnX, Y: queueY},
		State:       CustomerArriving,
		Order:       order,
		LinePos:     linePos,
		targetX:     queueSlotX(linePos),
		speed:       speed,
		eatDuration: eatDuration,
	}
	order.Customer = c
	return c
}

func queueSlotX(linePos int) float64 {
	return queueBaseX + float64(linePos)*queueStepX
}

// Stranded reports whether the customer has no table assigned yet.
func (c *Customer) Stranded() bool { return c.Table == nil }

// Bob is the vertical idle-animation offset in cells.
func (c *Customer) Bob() float64 {
	amp := 0.0
	switch c.State {
	case CustomerWaiting, CustomerSitting:
		amp = 0.5
	case CustomerEating:
		amp = 1.0
	}
	return math.Abs(math.Sin(c.bobTimer*4)) * amp
}

// AssignTable seats the customer at t. Legal while arriving or waiting.
func (c *Customer) AssignTable(t *DiningTable) {
	c.Table = t
	t.Occupied = true
	c.Order.Table = t
	if c.State == CustomerWaiting {
		c.State = CustomerGoingToTable
	}
}

// SetLinePos moves the customer to a new queue slot; a waiting customer
// walks back into Arriving to reach it.
func (c *Customer) SetLinePos(pos int) {
	c.LinePos = pos
	c.targetX = queueSlotX(pos)
	if c.State == CustomerWaiting && c.Pos.X != c.targetX {
		c.State = CustomerArriving
	}
}

// CanReceive reports whether delivering dish of the order's kind to
// this customer right now would fulfill it.
func (c *Customer) CanReceive() bool {
	return c.State == CustomerSitting && c.Order != nil && !c.Order.Completed
}

// Receive starts the eating phase after a successful delivery.
func (c *Customer) Receive() {
	c.State = CustomerEating
	c.eatElapsed = 0
}

func (c *Customer) tick(dt float64) {
	c.bobTimer += dt
	step := c.speed * dt

	switch c.State {
	case CustomerArriving:
		if c.Pos.X-step <= c.targetX {
			c.Pos.X = c.targetX
			if c.Table != nil {
				c.State = CustomerGoingToTable
			} else {
				c.State = CustomerWaiting
			}
		} else {
			c.Pos.X -= step
		}

	case CustomerGoingToTable:
		seat := c.Table.SeatPos()
		if core.Dist(c.Pos, seat) <= step {
			c.Pos = seat
			c.State = CustomerSitting
		} else {
			dir := seat.Sub(c.Pos).Normalize()
			c.Pos = c.Pos.Add(dir.Scale(step))
		}

	case CustomerEating:
		c.eatElapsed += dt
		if c.eatElapsed >= c.eatDuration {
			c.State = CustomerLeaving
		}

	case CustomerLeaving:
		// Walk to the exit corner axis by axis, x first.
		if math.Abs(exitCornerX-c.Pos.X) > step {
			if exitCornerX > c.Pos.X {
				c.Pos.X += step
			} else {
				c.Pos.X -= step
			}
		} else if math.Abs(exitCornerY-c.Pos.Y) > step {
			c.Pos.X = exitCornerX
			if exitCornerY > c.Pos.Y {
				c.Pos.Y += step
			} else {
				c.Pos.Y -= step
			}
		} else {
			c.Pos = core.Vec2{X: exitCornerX, Y: exitCornerY}
			c.State = CustomerExiting
		}

	case CustomerExiting:
		c.Pos.X += step
		if c.Pos.X > exitThresholdX {
			if c.Table != nil {
				c.Table.Occupied = false
			}
			c.State = CustomerGone
		}
	}
}
