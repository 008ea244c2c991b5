package kitchen

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/times-kitchen/internal/core"
)

func stationColor(t StationType) core.Color {
	switch t {
	case StationCooler:
		return core.ColorCyan
	case StationIngredient:
		return core.ColorYellow
	case StationStove:
		return core.ColorRed
	case StationBoiler:
		return core.ColorBlue
	case StationAssembly:
		return core.ColorGreen
	case StationServe:
		return core.ColorMagenta
	case StationMopRack:
		return core.ColorGray
	case StationDining:
		return core.ColorBrown
	default:
		return core.ColorDefault
	}
}

// Render draws the HUD and playfield into dst. The fixed playfield is
// centered horizontally; simulation state never depends on dst size.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need at least %dx%d", minScreenW, minScreenH))
		return
	}

	ox := (dst.Width() - fieldW) / 2
	if ox < 0 {
		ox = 0
	}
	g.renderHUD(dst, ox)
	g.renderField(dst, ox, hudHeight)

	if g.paused {
		dst.DrawTextCentered(dst.Height()/2, "== PAUSED ==")
	}
	if g.roundOver {
		dst.DrawTextCentered(dst.Height()/2-1, "=== SHIFT OVER ===")
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Earned: $%d", g.score))
		dst.DrawTextCentered(dst.Height()/2+1, "Press R for the store")
	}
}

func (g *Game) renderHUD(dst *core.Screen, ox int) {
	mins := int(g.timeRemaining) / 60
	secs := int(g.timeRemaining) % 60
	hour := 9 + g.GameHour() // shift runs 9:00 to 15:00
	dst.DrawText(ox, 0, fmt.Sprintf("%02d:00  |  %d:%02d left  |  $%d", hour, mins, secs, g.score))

	// Active orders strip, oldest first.
	var b strings.Builder
	b.WriteString("Orders: ")
	if len(g.orders.Active()) == 0 {
		b.WriteString("none")
	}
	for i, o := range g.orders.Active() {
		if i > 0 {
			b.WriteString("  ")
		}
		fmt.Fprintf(&b, "#%d %s (%.0fs)", o.ID, o.Name, o.WaitTime)
	}
	dst.DrawTextColored(ox, 1, clip(b.String(), fieldW), core.ColorBrightYellow)

	for i, c := range g.orders.Completed() {
		if i >= 2 {
			break
		}
		dst.DrawTextColored(ox+i*30, 2, fmt.Sprintf("%s +$%d", c.Name, c.Reward), core.ColorBrightGreen)
	}
	if g.cashierText != "" {
		dst.DrawTextColored(ox+fieldW-len(g.cashierText), 2, g.cashierText, core.ColorBrightCyan)
	}
}

func (g *Game) renderField(dst *core.Screen, ox, oy int) {
	for _, s := range g.layout.Stations {
		g.renderStation(dst, ox, oy, s)
	}
	for _, t := range g.layout.Tables {
		b := t.Bounds()
		dst.DrawRectColored(core.Rect{X: ox + b.X, Y: oy + b.Y, W: b.W, H: b.H}, '#', stationColor(StationDining))
	}

	for _, d := range g.dirt {
		dst.SetColored(ox+int(d.Pos.X+0.5), oy+int(d.Pos.Y+0.5), '~', core.ColorBrown)
	}
	if !g.mop.Held {
		dst.SetColored(ox+int(g.mop.Pos.X+0.5), oy+int(g.mop.Pos.Y+0.5), 'Y', core.ColorGray)
	}

	for _, c := range g.customers {
		x := ox + int(c.Pos.X+0.5)
		y := oy + int(c.Pos.Y-c.Bob()+0.5)
		if x < 0 || x >= dst.Width() {
			continue
		}
		col := core.ColorBrightMagenta
		if c.Stranded() {
			col = core.ColorBrightRed
		}
		dst.SetColored(x, y, 'C', col)
	}

	for _, p := range g.chefs {
		r := '1'
		if p.ID == core.Player2 {
			r = '2'
		}
		dst.SetColored(ox+int(p.Pos.X+0.5), oy+int(p.Pos.Y+0.5), r, core.ColorBrightWhite)
		if p.Cleaning {
			dst.DrawText(ox+int(p.Pos.X+0.5)-2, oy+int(p.Pos.Y+0.5)-1, cleanBar(p.CleanProgress()))
		}
	}

	g.renderMessages(dst, oy)
	g.renderCarry(dst, ox)
	g.renderModal(dst)
}

func (g *Game) renderStation(dst *core.Screen, ox, oy int, s Station) {
	b := s.Bounds()
	col := stationColor(s.Type())
	dst.DrawRectColored(core.Rect{X: ox + b.X, Y: oy + b.Y, W: b.W, H: b.H}, '▒', col)

	label := s.Label()
	if cs, isCook := s.(*CookingStation); isCook {
		switch cs.State() {
		case Cooking:
			label = fmt.Sprintf("%d%%", int(cs.Progress()*100))
		case CookReady:
			label = "DONE"
		}
	}
	dst.DrawTextColored(ox+b.X, oy+b.Y+b.H, clip(label, 8), col)
}

// renderCarry shows each player's hands on the bottom line.
func (g *Game) renderCarry(dst *core.Screen, ox int) {
	y := dst.Height() - 1
	for i, p := range g.chefs {
		var names []string
		for _, item := range p.Held {
			names = append(names, item.DisplayName())
		}
		if p.HoldingMop {
			names = append(names, "Mop")
		}
		hand := "empty"
		if len(names) > 0 {
			hand = strings.Join(names, ", ")
		}
		text := fmt.Sprintf("P%d: %s", i+1, hand)
		dst.DrawText(ox+i*(fieldW/2), y, clip(text, fieldW/2-2))
	}
}

func (g *Game) renderMessages(dst *core.Screen, oy int) {
	y := oy + fieldH - len(g.messages) - 1
	for i, m := range g.messages {
		if m.alpha() < 0.3 {
			continue
		}
		dst.DrawTextCentered(y+i, m.Text)
	}
}

// renderModal draws the cooler selection prompt for whichever player
// has it open.
func (g *Game) renderModal(dst *core.Screen) {
	for _, p := range g.chefs {
		c := p.pendingCooler
		if c == nil {
			continue
		}
		lines := []string{"Pick an ingredient:"}
		for i, opt := range c.Options() {
			lines = append(lines, fmt.Sprintf("  %d) %s", i+1, opt.DisplayName()))
		}
		lines = append(lines, "  Esc) Cancel")

		w := 0
		for _, l := range lines {
			if len(l) > w {
				w = len(l)
			}
		}
		x := (dst.Width() - w - 4) / 2
		y := dst.Height()/2 - len(lines)/2
		box := core.Rect{X: x, Y: y - 1, W: w + 4, H: len(lines) + 2}
		dst.DrawRect(box, ' ')
		dst.DrawBox(box)
		for i, l := range lines {
			dst.DrawText(x+2, y+i, l)
		}
		return
	}
}

func cleanBar(progress float64) string {
	const width = 5
	filled := int(progress * width)
	return "[" + strings.Repeat("=", filled) + strings.Repeat(" ", width-filled) + "]"
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}
