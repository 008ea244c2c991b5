package kitchen

import (
	"testing"

	"github.com/vovakirdan/times-kitchen/internal/catalog"
	"github.com/vovakirdan/times-kitchen/internal/core"
)

func testCustomerOrder() *Order {
	return &Order{ID: 1, Dish: catalog.KindBurger, Name: "Burger", Reward: 10}
}

func runTicks(c *Customer, n int) {
	for i := 0; i < n; i++ {
		c.tick(1.0 / 60)
	}
}

func TestCustomerWalksToQueueAndWaits(t *testing.T) {
	c := newCustomer(testCustomerOrder(), 0, 10, 4)

	if c.State != CustomerArriving {
		t.Fatalf("initial state = %v, want arriving", c.State)
	}
	if !c.Stranded() {
		t.Error("customer with no table should report stranded")
	}

	// Spawn is ~22 units from slot 0 at 10 units/sec.
	runTicks(c, 3*60)
	if c.State != CustomerWaiting {
		t.Fatalf("state = %v, want waiting", c.State)
	}
	if c.Pos.X != queueSlotX(0) {
		t.Errorf("snapped to %v, want slot x %v", c.Pos.X, queueSlotX(0))
	}
}

func TestCustomerSeatsAfterTableAssigned(t *testing.T) {
	table := newDiningTable(core.Vec2{X: 36, Y: 16})
	c := newCustomer(testCustomerOrder(), 0, 10, 4)
	runTicks(c, 3*60) // reach the queue

	c.AssignTable(table)
	if !table.Occupied {
		t.Fatal("AssignTable must mark the table occupied")
	}
	if c.State != CustomerGoingToTable {
		t.Fatalf("state = %v, want going_to_table", c.State)
	}

	// Queue slot to seat is well under 40 units.
	runTicks(c, 6*60)
	if c.State != CustomerSitting {
		t.Fatalf("state = %v, want sitting", c.State)
	}
	if c.Pos != table.SeatPos() {
		t.Errorf("seated at %v, want %v", c.Pos, table.SeatPos())
	}
}

func TestCustomerEatsThenLeavesAndFreesTable(t *testing.T) {
	table := newDiningTable(core.Vec2{X: 36, Y: 16})
	c := newCustomer(testCustomerOrder(), 0, 10, 4)
	c.AssignTable(table)
	c.State = CustomerSitting
	c.Pos = table.SeatPos()

	if !c.CanReceive() {
		t.Fatal("sitting customer with open order should accept delivery")
	}
	c.Order.Completed = true
	c.Receive()
	if c.State != CustomerEating {
		t.Fatalf("state = %v, want eating", c.State)
	}
	if c.CanReceive() {
		t.Error("eating customer must not accept another delivery")
	}

	runTicks(c, 4*60+2) // eat duration
	if c.State != CustomerLeaving {
		t.Fatalf("state = %v, want leaving", c.State)
	}

	// Walking to the corner and off-screen takes a while.
	runTicks(c, 20*60)
	if c.State != CustomerGone {
		t.Fatalf("state = %v, want gone", c.State)
	}
	if table.Occupied {
		t.Error("table not released after customer left")
	}
}

func TestQueueShiftWalksCustomerForward(t *testing.T) {
	c := newCustomer(testCustomerOrder(), 2, 10, 4)
	runTicks(c, 5*60)
	if c.State != CustomerWaiting {
		t.Fatalf("state = %v, want waiting at slot 2", c.State)
	}

	c.SetLinePos(0)
	if c.State != CustomerArriving {
		t.Fatalf("state = %v, want arriving toward the new slot", c.State)
	}
	runTicks(c, 2*60)
	if c.State != CustomerWaiting || c.Pos.X != queueSlotX(0) {
		t.Errorf("customer did not settle at slot 0: state=%v x=%v", c.State, c.Pos.X)
	}
}

func TestLateTableAssignmentWhileWaiting(t *testing.T) {
	table := newDiningTable(core.Vec2{X: 16, Y: 16})
	c := newCustomer(testCustomerOrder(), 0, 10, 4)
	runTicks(c, 3*60)
	if c.State != CustomerWaiting {
		t.Fatalf("setup: state = %v, want waiting", c.State)
	}

	c.AssignTable(table)
	if c.State != CustomerGoingToTable {
		t.Errorf("waiting customer should head to a freshly freed table")
	}
	if c.Stranded() {
		t.Error("customer with a table is not stranded")
	}
}
