package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/times-kitchen/internal/session"
)

// The perk store shows up between rounds: the banked salary buys
// permanent perks that apply to every following shift.

func (m Model) handleStoreKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	perks := m.sess.Perks()
	optionCount := len(perks) + 1 // perks plus "Start next shift"

	switch m.keys.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.shopSel > 0 {
			m.shopSel--
		}
	case MenuActionDown:
		if m.shopSel < optionCount-1 {
			m.shopSel++
		}
	case MenuActionSelect:
		if m.shopSel == len(perks) {
			return m, m.startNextRound()
		}
		_, notice := m.sess.Purchase(perks[m.shopSel].Kind)
		m.notice = notice
	case MenuActionBack:
		return m, m.startNextRound()
	}

	return m, nil
}

func (m Model) storeView() string {
	var b strings.Builder
	width := m.config.ScreenW

	b.WriteString("\n")
	b.WriteString(centerText("P E R K   S T O R E", width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("Wallet: $%d", m.sess.Currency()), width))
	b.WriteString("\n")
	b.WriteString(centerText("Owned: "+perkSummary(m.sess), width))
	b.WriteString("\n\n")

	perks := m.sess.Perks()
	for i, perk := range perks {
		cursor := "  "
		if i == m.shopSel {
			cursor = "> "
		}
		status := fmt.Sprintf("$%d", perk.Cost)
		if m.sess.Owns(perk.Kind) {
			status = "OWNED"
		}
		line := fmt.Sprintf("%s%-12s %-30s %s", cursor, perk.Name, perk.Description, status)
		b.WriteString(centerText(line, width))
		b.WriteString("\n")
	}

	cursor := "  "
	if m.shopSel == len(perks) {
		cursor = "> "
	}
	b.WriteString("\n")
	b.WriteString(centerText(cursor+"Start next shift", width))
	b.WriteString("\n\n")

	if m.notice != "" {
		b.WriteString(centerText(m.notice, width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Buy/Start  |  Esc: Start  |  Q: Quit", width))

	return b.String()
}

// perkSummary is a short inline list of owned perks for menus.
func perkSummary(sess *session.Session) string {
	var owned []string
	for _, p := range sess.Perks() {
		if sess.Owns(p.Kind) {
			owned = append(owned, p.Name)
		}
	}
	if len(owned) == 0 {
		return "none"
	}
	return strings.Join(owned, ", ")
}
