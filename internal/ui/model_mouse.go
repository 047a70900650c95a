package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hienpham123/tabletify/internal/grid"
)

type hitZone int

const (
	hitNone hitZone = iota
	hitHeader
	hitCell
)

func (m *Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scrollBy(-3)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.scrollBy(3)
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		// A press while a drag is still marked in-progress means the
		// release happened outside the program; finish the stale gesture
		// before starting the new one.
		if m.sel.Selecting() {
			m.sel.End()
		}
		zone, pos := m.hitTest(msg.X, msg.Y)
		switch zone {
		case hitHeader:
			m.sortOn(pos.Col)
		case hitCell:
			if msg.Ctrl {
				m.sel.ToggleCell(pos.Row, pos.Col)
				return m, nil
			}
			m.sel.Start(pos.Row, pos.Col, msg.Shift)
		}
	case tea.MouseActionMotion:
		if !m.sel.Selecting() {
			return m, nil
		}
		// Motion without the button held means the release was lost
		// (focus change, terminal quirk); finish the gesture instead of
		// letting it track the hover forever.
		if msg.Button != tea.MouseButtonLeft {
			m.sel.End()
			return m, nil
		}
		// Motion outside the body clamps to the nearest cell so a drag
		// past the edge keeps extending instead of stalling.
		pos := m.clampHit(msg.X, msg.Y)
		m.sel.Update(pos.Row, pos.Col)
	case tea.MouseActionRelease:
		m.sel.End()
	}
	return m, nil
}

// sortOn is the header-click path: same cycle as the keyboard, but the
// column comes from the click instead of the focus.
func (m *Model) sortOn(col string) {
	if col == "" {
		return
	}
	m.sel.SetFocus(0, col)
	m.cycleSort()
}

// hitTest resolves terminal coordinates to a grid zone. Body layout is one
// header line, one spacer line, the data lines, then chrome.
func (m *Model) hitTest(x, y int) (hitZone, grid.Pos) {
	col, ok := m.colAt(x)
	if !ok {
		return hitNone, grid.Pos{}
	}
	if y == 0 {
		return hitHeader, grid.Pos{Col: col}
	}
	row := m.scrollTop + y - bodyTop
	if y < bodyTop || row < 0 || row >= m.pageLen() {
		return hitNone, grid.Pos{}
	}
	return hitCell, grid.Pos{Row: grid.PageRow(row), Col: col}
}

// clampHit maps coordinates to the nearest in-bounds cell.
func (m *Model) clampHit(x, y int) grid.Pos {
	cols := m.visibleCols()
	col, ok := m.colAt(x)
	if !ok && len(cols) > 0 {
		if x < m.gutterWidth() {
			col = cols[0].Key
		} else {
			col = cols[len(cols)-1].Key
		}
	}
	row := m.scrollTop + y - bodyTop
	if row < 0 {
		row = 0
	}
	if row >= m.pageLen() {
		row = m.pageLen() - 1
	}
	return grid.Pos{Row: grid.PageRow(row), Col: col}
}

// colAt maps an x coordinate to the visible column under it. Columns are
// laid out gutter first, then each column's width plus one separator space.
func (m *Model) colAt(x int) (string, bool) {
	x -= m.gutterWidth()
	if x < 0 {
		return "", false
	}
	for _, c := range m.visibleCols() {
		w := colWidth(c)
		if x < w {
			return c.Key, true
		}
		x -= w + 1
	}
	return "", false
}
