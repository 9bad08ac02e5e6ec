package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shipyard/shipyard/internal/editor"
	"github.com/shipyard/shipyard/internal/engine"
)

const (
	panStep  = 8 // cells
	zoomStep = 1.25
)

type model struct {
	eng *engine.Engine

	// world units per terminal cell
	cellW, cellH float64

	width, height int
	pressed       bool
	help          bool
}

func newModel(eng *engine.Engine, cellW, cellH float64) model {
	return model{eng: eng, cellW: cellW, cellH: cellH}
}

func (m model) Init() tea.Cmd {
	return nil
}

// screen returns the canvas point at the centre of cell (col, row). Row 0 is the status bar.
func (m model) screen(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * m.cellW, (float64(row-1) + 0.5) * m.cellH
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.MouseMsg:
		return m.mouse(msg), nil

	case tea.KeyMsg:
		return m.key(msg)
	}
	return m, nil
}

func (m model) mouse(msg tea.MouseMsg) model {
	if msg.Y < 1 && !m.pressed {
		return m
	}
	x, y := m.screen(msg.X, msg.Y)

	switch msg.Type {
	case tea.MouseLeft:
		if m.pressed {
			m.eng.Drag(x, y)
			return m
		}
		var mods editor.Modifiers
		if msg.Ctrl {
			mods |= editor.ModToggle
		}
		if msg.Alt {
			mods |= editor.ModCreate
		}
		m.pressed = true
		m.eng.Press(x, y, mods)
	case tea.MouseMotion:
		if m.pressed {
			m.eng.Drag(x, y)
		}
	case tea.MouseRelease:
		if m.pressed {
			m.eng.Drag(x, y)
			m.eng.Release()
			m.pressed = false
		}
	}
	return m
}

func (m model) key(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.help {
		m.help = false
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyCtrlC:
		m.eng.Key(editor.CommandCopy)
	case tea.KeyCtrlX:
		m.eng.Key(editor.CommandCut)
	case tea.KeyCtrlV:
		m.eng.Key(editor.CommandPaste)
	case tea.KeyLeft:
		m.eng.Pan(panStep*m.cellW, 0)
	case tea.KeyRight:
		m.eng.Pan(-panStep*m.cellW, 0)
	case tea.KeyUp:
		m.eng.Pan(0, panStep*m.cellH)
	case tea.KeyDown:
		m.eng.Pan(0, -panStep*m.cellH)
	case tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return m, nil
		}
		r := msg.Runes[0]
		switch r {
		case 'q':
			return m, tea.Quit
		case '?':
			m.help = true
		case 's':
			m.eng.LoadSample()
		case '0':
			m.eng.SetView(engine.Identity())
		case '+', '=':
			cx, cy := m.centre()
			m.eng.Zoom(zoomStep, cx, cy)
		case '-':
			cx, cy := m.centre()
			m.eng.Zoom(1/zoomStep, cx, cy)
		default:
			m.eng.KeyPress(r, false)
		}
	}
	return m, nil
}

func (m model) centre() (float64, float64) {
	return float64(m.width) * m.cellW / 2, float64(m.height-1) * m.cellH / 2
}
