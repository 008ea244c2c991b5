package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/times-kitchen/internal/core"
	"github.com/vovakirdan/times-kitchen/internal/game/kitchen"
	"github.com/vovakirdan/times-kitchen/internal/registry"
	"github.com/vovakirdan/times-kitchen/internal/session"
	"github.com/vovakirdan/times-kitchen/internal/storage"
)

// phase tracks which screen the play model is showing.
type phase int

const (
	phasePlay  phase = iota
	phaseStore       // perk shop between rounds
)

// Model is the Bubble Tea model for running kitchen rounds. It owns the
// round loop: play a shift, bank the score, visit the perk store, start
// the next shift with the purchased perks applied.
type Model struct {
	game    registry.Game
	screen  *core.Screen
	store   *storage.Store
	sess    *session.Session
	config  core.RuntimeConfig
	keys    *KeyMapper
	frame   core.MultiInputFrame
	state   core.GameState
	phase   phase
	banked  bool // round outcome persisted for the current round-over
	isHigh  bool
	shopSel int
	notice  string

	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, sess *session.Session, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.Players = game.Players()

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		sess:   sess,
		config: cfg,
		keys:   NewKeyMapper(),
		frame:  core.NewMultiInputFrame(),
	}
}

// Init initializes the model and starts the round.
func (m Model) Init() tea.Cmd {
	m.applyPerks()
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.phase == phaseStore {
			return m.handleStoreKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input during play.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToMultiFrame(msg, &m.frame) {
		m.quitting = true
		return m, tea.Quit
	}

	// B backs out to the menu once play is paused or over; the session
	// wrapper (or the CLI menu loop) takes it from there.
	if msg.String() == "b" && (m.state.RoundOver || m.state.Paused) {
		m.backToMenu = true
		return m, tea.Quit
	}

	// After the shift ends, R moves on to the perk store.
	if m.state.RoundOver && msg.String() == "r" {
		m.frame.Clear()
		m.phase = phaseStore
		m.shopSel = 0
		m.notice = ""
	}

	return m, nil
}

// handleResize processes window resize events. The simulation runs on a
// fixed playfield, so resizing only re-centers the rendering.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	if kg, okG := m.game.(*kitchen.Game); okG {
		kg.Resize(msg.Width, msg.Height)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.phase == phaseStore {
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.frame)
	m.state = result.State

	if m.state.RoundOver && !m.banked {
		m.bankRound()
	}

	// Clear input for next frame
	m.frame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// bankRound persists the finished round and folds the score into the
// session wallet. Best-effort: a storage failure never blocks play.
func (m *Model) bankRound() {
	m.banked = true
	m.sess.EndRound(m.state.Score)

	if m.store == nil {
		return
	}
	isHigh, err := m.store.RecordScore(m.game.ID(), m.state.Score, m.game.Players())
	if err == nil {
		m.isHigh = isHigh
	}
	if kg, okG := m.game.(*kitchen.Game); okG {
		stats := kg.RoundStats()
		//nolint:errcheck // Best-effort save, play continues regardless
		m.store.SaveRound(storage.RoundRecord{
			GameID:          m.game.ID(),
			Score:           m.state.Score,
			Players:         m.game.Players(),
			OrdersCompleted: stats.OrdersCompleted,
			OrdersSpawned:   stats.OrdersSpawned,
			DirtCleaned:     stats.DirtCleaned,
			DurationSecs:    stats.DurationSecs,
		})
	}
}

// startNextRound leaves the store and begins a fresh shift with the
// session's current perks.
func (m *Model) startNextRound() tea.Cmd {
	m.applyPerks()
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.state = m.game.State()
	m.banked = false
	m.isHigh = false
	m.frame.Clear()
	m.phase = phasePlay
	return tickCmd(m.config.TickRate)
}

func (m *Model) applyPerks() {
	if kg, okG := m.game.(*kitchen.Game); okG {
		kg.ConfigureRound(m.sess.RoundConfig())
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".kitchen", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, play continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.phase == phaseStore {
		return m.storeView()
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	if m.state.RoundOver && m.isHigh {
		m.screen.DrawTextCentered(m.screen.Height()/2+2, "NEW HIGH SCORE!")
	}
	return RenderScreen(m.screen)
}

// BackToMenu returns true if the user backed out to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting returns true if the user quit outright.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program with the given model. Returns true
// when the user backed out to the menu rather than quitting outright.
func Run(game registry.Game, store *storage.Store, sess *session.Session, cfg core.RuntimeConfig) (bool, error) {
	model := NewModel(game, store, sess, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	if m, okM := finalModel.(Model); okM {
		return m.BackToMenu(), nil
	}
	return false, nil
}
