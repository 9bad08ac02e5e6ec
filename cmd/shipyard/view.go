package main

import (
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/shipyard/shipyard/internal/engine"
)

var (
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(engine.ColorBackground)).
			Background(lipgloss.Color(engine.ColorYellow)).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(engine.ColorCoral)).
			Padding(1, 2)
)

const helpText = `shipyard

  alt+click     place a ship
  click         select, drag to move
  ctrl+click    toggle selection
  drag on empty rubber-band select
  ctrl+c/x/v    copy, cut, paste
  g / u         group, ungroup
  arrows        pan    + / -  zoom    0  reset view
  s             sample fleet
  q / esc       quit

press any key`

func (m model) View() string {
	if m.width == 0 || m.height < 2 {
		return ""
	}

	status := fmt.Sprintf(" %s | %d ships | %d selected | ? help ",
		m.eng.State(), m.eng.Store().Len(), len(m.eng.SelectionIDs()))
	if len(status) > m.width {
		status = status[:m.width]
	}
	top := statusStyle.Width(m.width).Render(status)

	if m.help {
		box := helpStyle.Render(helpText)
		return top + "\n" + lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, box)
	}
	return top + "\n" + m.canvas()
}

// canvas rasterizes the scene at world resolution and samples the centre of every cell.
func (m model) canvas() string {
	cols, rows := m.width, m.height-1
	img := engine.Rasterize(m.eng.Commands(), int(float64(cols)*m.cellW), int(float64(rows)*m.cellH))

	var b strings.Builder
	for row := 0; row < rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		var run int
		var runColor string
		for col := 0; col < cols; col++ {
			x, y := m.screen(col, row+1)
			c := hexAt(img, int(x), int(y))
			if c != runColor && run > 0 {
				b.WriteString(cell(runColor, run))
				run = 0
			}
			runColor = c
			run++
		}
		if run > 0 {
			b.WriteString(cell(runColor, run))
		}
	}
	return b.String()
}

func cell(hex string, n int) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render(strings.Repeat(" ", n))
}

func hexAt(img *image.RGBA, x, y int) string {
	c := img.RGBAAt(x, y)
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
