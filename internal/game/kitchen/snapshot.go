package kitchen

// Snapshot is a structured copy of the observable simulation state,
// used by tests and debugging tools. Two games stepped identically from
// the same seed produce equal snapshots.
type Snapshot struct {
	Tick          uint64
	Score         int
	TimeRemaining float64
	GameHour      int
	Paused        bool
	RoundOver     bool

	Players   []PlayerSnapshot
	Stations  []StationSnapshot
	Customers []CustomerSnapshot
	Orders    []OrderSnapshot
	Completed []CompletedSnapshot
	Messages  []string

	DirtCount int
	MopHeld   bool
}

// PlayerSnapshot captures one chef.
type PlayerSnapshot struct {
	ID            string
	X, Y          float64
	Held          []string
	HoldingMop    bool
	Cleaning      bool
	CleanProgress float64
	ModalOpen     bool
}

// StationSnapshot captures one station; fields that do not apply to a
// station type are zero.
type StationSnapshot struct {
	Type     string
	X, Y     float64
	State    string   // cooking stations
	Item     string   // cooking: current item; serve: slot; assembly: parked dish
	Progress float64  // cooking stations
	Placed   []string // assembly tables
	Occupied bool     // dining tables
}

// CustomerSnapshot captures one customer.
type CustomerSnapshot struct {
	X, Y     float64
	State    string
	OrderID  int
	Stranded bool
}

// OrderSnapshot captures one active order.
type OrderSnapshot struct {
	ID       int
	Dish     string
	Name     string
	Reward   int
	WaitTime float64
}

// CompletedSnapshot captures one entry of the completed-order display.
type CompletedSnapshot struct {
	Name   string
	Reward int
}

// Snapshot captures the current state. Safe to call at any point
// between steps.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:          g.tick,
		Score:         g.score,
		TimeRemaining: g.timeRemaining,
		GameHour:      g.GameHour(),
		Paused:        g.paused,
		RoundOver:     g.roundOver,
		DirtCount:     len(g.dirt),
		MopHeld:       g.mop.Held,
	}

	for _, p := range g.chefs {
		ps := PlayerSnapshot{
			ID:            p.ID.String(),
			X:             p.Pos.X,
			Y:             p.Pos.Y,
			HoldingMop:    p.HoldingMop,
			Cleaning:      p.Cleaning,
			CleanProgress: p.CleanProgress(),
			ModalOpen:     p.pendingCooler != nil,
		}
		for _, item := range p.Held {
			ps.Held = append(ps.Held, item.Kind.String())
		}
		s.Players = append(s.Players, ps)
	}

	for _, st := range g.layout.Stations {
		s.Stations = append(s.Stations, snapshotStation(st))
	}
	for _, t := range g.layout.Tables {
		c := t.Center()
		s.Stations = append(s.Stations, StationSnapshot{
			Type:     t.Type().String(),
			X:        c.X,
			Y:        c.Y,
			Occupied: t.Occupied,
		})
	}

	for _, c := range g.customers {
		cs := CustomerSnapshot{
			X:        c.Pos.X,
			Y:        c.Pos.Y,
			State:    c.State.String(),
			Stranded: c.Stranded(),
		}
		if c.Order != nil {
			cs.OrderID = c.Order.ID
		}
		s.Customers = append(s.Customers, cs)
	}

	for _, o := range g.orders.Active() {
		s.Orders = append(s.Orders, OrderSnapshot{
			ID:       o.ID,
			Dish:     o.Dish.String(),
			Name:     o.Name,
			Reward:   o.Reward,
			WaitTime: o.WaitTime,
		})
	}
	for _, c := range g.orders.Completed() {
		s.Completed = append(s.Completed, CompletedSnapshot{Name: c.Name, Reward: c.Reward})
	}
	for _, m := range g.messages {
		s.Messages = append(s.Messages, m.Text)
	}
	return s
}

func snapshotStation(st Station) StationSnapshot {
	c := st.Center()
	ss := StationSnapshot{Type: st.Type().String(), X: c.X, Y: c.Y}

	switch v := st.(type) {
	case *CookingStation:
		ss.State = v.State().String()
		ss.Item = v.Current().String()
		ss.Progress = v.Progress()
	case *AssemblyTable:
		for _, item := range v.Items() {
			ss.Placed = append(ss.Placed, item.Kind.String())
		}
		if parked, okP := v.Parked(); okP {
			ss.Item = parked.Kind.String()
		}
	case *ServeCounter:
		if slot, okS := v.Slot(); okS {
			ss.Item = slot.Kind.String()
		}
	}
	return ss
}
