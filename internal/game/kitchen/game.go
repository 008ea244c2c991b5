package kitchen

import (
	"math/rand"
	"strconv"

	"github.com/vovakirdan/times-kitchen/internal/catalog"
	"github.com/vovakirdan/times-kitchen/internal/config"
	"github.com/vovakirdan/times-kitchen/internal/core"
	"github.com/vovakirdan/times-kitchen/internal/registry"
	"github.com/vovakirdan/times-kitchen/internal/session"
)

func init() {
	registry.Register("kitchen", func() registry.Game { return New(1) })
	registry.Register("kitchen_coop", func() registry.Game { return New(2) })
}

// configPath overrides the config search path; set by the CLI before
// any round starts.
var configPath string

// SetConfigPath sets a custom config file path used by all subsequently
// reset rounds.
func SetConfigPath(path string) {
	configPath = path
}

// message is a transient HUD notice with a fade-out.
type message struct {
	Text string
	Left float64
	Life float64
}

func (m message) alpha() float64 {
	const fade = 0.6
	if m.Left >= fade {
		return 1
	}
	if m.Left <= 0 {
		return 0
	}
	return m.Left / fade
}

// Game is one kitchen shift: players cook and deliver dishes against
// the round clock while customers queue, eat, and leave.
type Game struct {
	players int
	cfg     config.GameConfig
	cat     catalog.Catalog
	round   session.RoundConfig

	rng      *rand.Rand
	tick     uint64
	tickRate int

	screenW, screenH int
	tooSmall         bool

	layout *Layout
	chefs  []*Player

	customers []*Customer
	orders    *OrderManager

	mop     Mop
	dirt    []*DirtSpot
	dirtSeq int

	cashierText  string
	cashierTimer float64

	messages []message

	score         int
	dirtCleaned   int
	timeRemaining float64
	lastDirtHour  int
	paused        bool
	roundOver     bool
}

// New creates an unstarted game for the given local player count (1 or 2).
func New(players int) *Game {
	if players < 1 {
		players = 1
	}
	if players > 2 {
		players = 2
	}
	return &Game{players: players}
}

func (g *Game) ID() string {
	if g.players == 2 {
		return "kitchen_coop"
	}
	return "kitchen"
}

func (g *Game) Title() string {
	if g.players == 2 {
		return "Time's Kitchen (Co-op)"
	}
	return "Time's Kitchen"
}

func (g *Game) Players() int { return g.players }

// ConfigureRound applies session perk modifiers to all subsequent
// resets. Must be called before Reset to take effect that round.
func (g *Game) ConfigureRound(rc session.RoundConfig) {
	g.round = rc.Normalize()
}

func (g *Game) Reset(rc core.RuntimeConfig) {
	g.cfg, _ = config.Load(configPath)
	g.cat = catalog.New(g.cfg.CatalogParams())
	g.round = g.round.Normalize()

	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.tooSmall = rc.ScreenW < minScreenW || rc.ScreenH < minScreenH
	g.tickRate = rc.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0

	g.layout = buildLayout(&g.cat)

	speed := g.cfg.Player.Speed + g.round.SpeedBonus
	capacity := g.cfg.Player.CarryCapacity + g.round.CarryBonus
	g.chefs = g.chefs[:0]
	for i := 0; i < g.players; i++ {
		id := core.Player1
		if i == 1 {
			id = core.Player2
		}
		g.chefs = append(g.chefs, newPlayer(id, g.layout.PlayerSpawns[i], speed, capacity))
	}

	g.customers = nil
	g.orders = newOrderManager(
		&g.cat, g.rng,
		g.cfg.OrdersPerHour(g.players),
		g.cfg.Round.HourSeconds,
		g.cfg.Round.SpawnGraceSeconds,
		g.cfg.MaxActiveOrders(g.players),
		g.cfg.Orders.DisplaySeconds,
	)
	g.orders.OnSpawn = g.onOrderSpawn

	g.mop = Mop{Pos: g.layout.MopHome}
	g.dirt = nil
	g.dirtSeq = 0
	g.cashierText = ""
	g.cashierTimer = 0
	g.messages = nil

	g.score = 0
	g.dirtCleaned = 0
	g.timeRemaining = g.cfg.Round.DurationSeconds
	g.lastDirtHour = 0
	g.paused = false
	g.roundOver = false
}

func (g *Game) State() core.GameState {
	return core.GameState{
		Score:         g.score,
		TimeRemaining: g.timeRemaining,
		RoundOver:     g.roundOver,
		Paused:        g.paused,
	}
}

// RoundStats summarizes a finished round for history persistence.
type RoundStats struct {
	OrdersCompleted int
	OrdersSpawned   int
	DirtCleaned     int
	DurationSecs    int
}

// RoundStats reports the current round's running totals.
func (g *Game) RoundStats() RoundStats {
	return RoundStats{
		OrdersCompleted: g.orders.TotalCompleted,
		OrdersSpawned:   g.orders.TotalSpawned,
		DirtCleaned:     g.dirtCleaned,
		DurationSecs:    int(g.cfg.Round.DurationSeconds - g.timeRemaining),
	}
}

// Resize updates the screen dimensions. The playfield is fixed, so
// this only re-evaluates whether the terminal can fit it.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < minScreenW || h < minScreenH
}

// GameHour returns the in-fiction clock hour index, 0-based.
func (g *Game) GameHour() int {
	elapsed := g.cfg.Round.DurationSeconds - g.timeRemaining
	return int(elapsed / g.cfg.Round.HourSeconds)
}

func (g *Game) Step(in core.MultiInputFrame) core.StepResult {
	g.tick++

	for _, p := range g.chefs {
		frame := in.Player(p.ID)
		if frame.Has(core.ActionPause) {
			g.paused = !g.paused
		}
	}
	if g.paused || g.roundOver || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	dt := 1.0 / float64(g.tickRate)

	// Player actions resolve in fixed player order every tick, so two
	// players racing for the same order or item is deterministic.
	for _, p := range g.chefs {
		g.applyActions(p, in.Player(p.ID))
	}
	for _, p := range g.chefs {
		g.applyMovement(p, in.Player(p.ID), dt)
		g.advanceCleaning(p)
	}

	for _, s := range g.layout.Stations {
		s.Tick(dt)
	}

	g.orders.Tick(dt, g.timeRemaining)

	for _, c := range g.customers {
		c.tick(dt)
	}
	g.seatWaiting()
	g.pruneCustomers()
	g.recomputeLine()

	g.spawnDirt()
	g.tickMessages(dt)
	if g.cashierTimer > 0 {
		g.cashierTimer -= dt
		if g.cashierTimer <= 0 {
			g.cashierText = ""
		}
	}

	g.timeRemaining -= dt
	if g.timeRemaining <= 0 {
		g.timeRemaining = 0
		g.roundOver = true
	}

	return core.StepResult{State: g.State()}
}

// onOrderSpawn creates the customer for a new order, seats them if a
// table is free, and has the cashier call the order out.
func (g *Game) onOrderSpawn(o *Order) {
	c := newCustomer(o, len(g.waitingLine()), g.cfg.Customer.Speed, g.cfg.Customer.EatSeconds)
	if t := g.freeTable(); t != nil {
		c.AssignTable(t)
	}
	g.customers = append(g.customers, c)
	g.cashierText = "Order: " + o.Name + "!"
	g.cashierTimer = 3
	g.pushMessage("New order: "+o.Name, 2.5)
}

func (g *Game) freeTable() *DiningTable {
	for _, t := range g.layout.Tables {
		if !t.Occupied {
			return t
		}
	}
	return nil
}

// waitingLine returns customers still queueing, in arrival order.
func (g *Game) waitingLine() []*Customer {
	var line []*Customer
	for _, c := range g.customers {
		if c.Table == nil && (c.State == CustomerArriving || c.State == CustomerWaiting) {
			line = append(line, c)
		}
	}
	return line
}

// seatWaiting assigns freed tables to stranded customers in queue order.
func (g *Game) seatWaiting() {
	for _, c := range g.waitingLine() {
		t := g.freeTable()
		if t == nil {
			return
		}
		c.AssignTable(t)
	}
}

func (g *Game) pruneCustomers() {
	live := g.customers[:0]
	for _, c := range g.customers {
		if c.State != CustomerGone {
			live = append(live, c)
		}
	}
	g.customers = live
}

// recomputeLine reassigns queue slots after departures so the line
// shuffles forward.
func (g *Game) recomputeLine() {
	for i, c := range g.waitingLine() {
		if c.LinePos != i {
			c.SetLinePos(i)
		}
	}
}

// spawnDirt drops one dirt spot near a random cooking station at each
// game-hour boundary, up to the cap.
func (g *Game) spawnDirt() {
	hour := g.GameHour()
	if hour <= g.lastDirtHour {
		return
	}
	g.lastDirtHour = hour
	if len(g.dirt) >= g.cfg.Dirt.MaxSpots {
		return
	}

	var cookers []Station
	for _, s := range g.layout.Stations {
		if s.Type() == StationStove || s.Type() == StationBoiler {
			cookers = append(cookers, s)
		}
	}
	anchor := cookers[g.rng.Intn(len(cookers))].Center()
	g.dirtSeq++
	g.dirt = append(g.dirt, &DirtSpot{
		ID: g.dirtSeq,
		Pos: core.Vec2{
			X: core.ClampF(anchor.X+float64(g.rng.Intn(9)-4), playMinX, playMaxX),
			Y: core.ClampF(anchor.Y+3+float64(g.rng.Intn(3)), playMinY, playMaxY),
		},
	})
	g.pushMessage("The kitchen is getting dirty!", 2.5)
}

// advanceCleaning counts the locked cleaning animation down one tick
// and pays out when it finishes. If another player already cleaned the
// target spot, the animation ends with no reward.
func (g *Game) advanceCleaning(p *Player) {
	if !p.Cleaning {
		return
	}
	p.cleaningLeft--
	if p.cleaningLeft > 0 {
		return
	}
	spot := p.cleaningSpot
	p.Cleaning = false
	p.cleaningSpot = nil

	for i, d := range g.dirt {
		if d == spot {
			g.dirt = append(g.dirt[:i], g.dirt[i+1:]...)
			g.score += g.cfg.Rewards.Cleaning
			g.dirtCleaned++
			g.pushMessage("Cleaned up! +$"+strconv.Itoa(g.cfg.Rewards.Cleaning), 2)
			return
		}
	}
}

func (g *Game) pushMessage(text string, life float64) {
	g.messages = append(g.messages, message{Text: text, Left: life, Life: life})
	const maxMessages = 4
	if len(g.messages) > maxMessages {
		g.messages = g.messages[len(g.messages)-maxMessages:]
	}
}

func (g *Game) tickMessages(dt float64) {
	live := g.messages[:0]
	for i := range g.messages {
		g.messages[i].Left -= dt
		if g.messages[i].Left > 0 {
			live = append(live, g.messages[i])
		}
	}
	g.messages = live
}
