package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/times-kitchen/internal/core"
)

// KeyMapper translates Bubble Tea key messages to per-player game
// actions. This centralizes key bindings and makes them testable.
//
// Player 1: WASD to move, space to interact, E to serve, Q to drop.
// Player 2: arrows to move, enter to interact, . to serve, , to drop.
// Shared: 1/2 answer the cooler prompt, esc cancels it, P pauses.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKeyToMultiFrame updates a multi-input frame based on a key
// message. Returns true if the key was a quit request (ctrl+c).
func (km *KeyMapper) MapKeyToMultiFrame(msg tea.KeyMsg, frame *core.MultiInputFrame) bool {
	key := msg.String()

	if key == "ctrl+c" {
		return true
	}

	switch key {
	// Player 1
	case "w":
		frame.Set(core.Player1, core.ActionMoveUp)
	case "s":
		frame.Set(core.Player1, core.ActionMoveDown)
	case "a":
		frame.Set(core.Player1, core.ActionMoveLeft)
	case "d":
		frame.Set(core.Player1, core.ActionMoveRight)
	case " ":
		frame.Set(core.Player1, core.ActionInteract)
	case "e":
		frame.Set(core.Player1, core.ActionServe)
	case "q":
		frame.Set(core.Player1, core.ActionDrop)

	// Player 2
	case "up":
		frame.Set(core.Player2, core.ActionMoveUp)
	case "down":
		frame.Set(core.Player2, core.ActionMoveDown)
	case "left":
		frame.Set(core.Player2, core.ActionMoveLeft)
	case "right":
		frame.Set(core.Player2, core.ActionMoveRight)
	case "enter":
		frame.Set(core.Player2, core.ActionInteract)
	case ".":
		frame.Set(core.Player2, core.ActionServe)
	case ",":
		frame.Set(core.Player2, core.ActionDrop)

	// Shared: the cooler prompt belongs to whichever player opened
	// it, so digits and cancel go to both.
	case "1":
		frame.Set(core.Player1, core.ActionDigit1)
		frame.Set(core.Player2, core.ActionDigit1)
	case "2":
		frame.Set(core.Player1, core.ActionDigit2)
		frame.Set(core.Player2, core.ActionDigit2)
	case "esc":
		frame.Set(core.Player1, core.ActionCancel)
		frame.Set(core.Player2, core.ActionCancel)
	case "p":
		frame.Set(core.Player1, core.ActionPause)
	case "r":
		frame.Set(core.Player1, core.ActionRestart)
	}

	return false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
