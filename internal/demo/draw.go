package demo

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"lootvault/internal/component"
	"lootvault/internal/ecs"
	"lootvault/internal/system"
)

// draw renders the two container panels, the status rows and the log.
func (s *Session) draw() {
	s.screen.Clear()
	sw, _ := s.screen.Size()
	mid := sw / 2
	if mid < 30 {
		mid = 30
	}

	white := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	gray := tcell.StyleDefault.Foreground(tcell.ColorGray)
	yellow := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	green := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	highlight := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorAqua)

	s.putText(0, 0, "LOOTVAULT", yellow)
	for x := 0; x < sw; x++ {
		s.screen.SetContent(x, 1, '─', nil, gray)
	}

	s.putText(0, 2, "── "+s.holderTitle(s.chest)+" ──────────────", white)
	s.putText(mid, 2, "── "+s.holderTitle(s.playerInv)+" ──────────────", white)
	for y := 2; y <= 10; y++ {
		s.screen.SetContent(mid-1, y, '│', nil, gray)
	}

	s.drawPanel(0, 0, s.chest, white, highlight, gray)
	s.drawPanel(1, mid, s.playerInv, white, highlight, gray)

	// Defender status row.
	if hc := s.world.Get(s.player, component.CHealth); hc != nil {
		hp := hc.(component.Health)
		s.putText(0, 11, fmt.Sprintf("Player HP: %d/%d", hp.Current, hp.Max), green)
	} else if !s.world.Alive(s.player) {
		s.putText(0, 11, "Player HP: --", gray)
	}

	for x := 0; x < sw; x++ {
		s.screen.SetContent(x, 12, '─', nil, gray)
	}
	for i, line := range s.log {
		s.putText(0, 13+i, line, white)
	}

	s.screen.Show()
}

// drawPanel renders one container's item list starting at column x.
func (s *Session) drawPanel(panel, x int, container ecs.EntityID, base, highlight, dim tcell.Style) {
	items := system.ListItems(s.world, container)
	if len(items) == 0 {
		s.putText(x, 3, "  (empty)", dim)
		return
	}
	for i, item := range items {
		row := 3 + i
		if row > 10 {
			break
		}
		style := base
		pfx := "  "
		if s.panel == panel && s.cursor == i {
			style = highlight
			pfx = "► "
		}
		s.putText(x, row, pfx+s.describeItem(item), style)
	}
}

// describeItem formats one inventory row: name, stack size, durability and
// the equipped marker.
func (s *Session) describeItem(item ecs.EntityID) string {
	_, name := system.ResolveKind(s.world, item)
	if name == "" {
		name = "???"
	}
	line := name
	if c := s.world.Get(item, component.CAmount); c != nil {
		line += fmt.Sprintf(" ×%d", c.(component.Amount).Value)
	}
	if c := s.world.Get(item, component.CHealth); c != nil {
		hp := c.(component.Health)
		line += fmt.Sprintf(" (%d/%d)", hp.Current, hp.Max)
	}
	if s.world.Has(item, component.CTagActive) {
		line += " [worn]"
	}
	return line
}

// holderTitle returns the holder's display name, uppercased panel style.
func (s *Session) holderTitle(holder ecs.EntityID) string {
	if c := s.world.Get(holder, component.CName); c != nil {
		return c.(component.Name).Value
	}
	return "?"
}

// putText writes a string starting at (x, y), advancing by the printed
// width of each rune so wide glyphs stay aligned. Stops at the screen edge.
func (s *Session) putText(x, y int, text string, st tcell.Style) {
	sw, _ := s.screen.Size()
	for _, r := range text {
		if x >= sw {
			break
		}
		s.screen.SetContent(x, y, r, nil, st)
		x += runewidth.RuneWidth(r)
	}
}
