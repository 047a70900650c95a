package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hienpham123/tabletify/internal/bindings"
	"github.com/hienpham123/tabletify/internal/pipeline"
	"github.com/hienpham123/tabletify/internal/selection"
	"github.com/hienpham123/tabletify/internal/ui/scroll"
)

// navDirections maps the navigation chords the grid handles directly.
// Everything else goes through the bindings table.
var navDirections = map[string]selection.Direction{
	"up":         selection.DirUp,
	"down":       selection.DirDown,
	"left":       selection.DirLeft,
	"right":      selection.DirRight,
	"home":       selection.DirRowStart,
	"end":        selection.DirRowEnd,
	"ctrl+up":    selection.DirTop,
	"ctrl+down":  selection.DirBottom,
	"ctrl+left":  selection.DirFarLeft,
	"ctrl+right": selection.DirFarRight,
}

func (m *Model) updateGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if dir, ok := navKey(key); ok {
		extend := shiftChord(key)
		if pos, moved := m.sel.MoveFocus(dir, extend); moved {
			m.followFocus(int(pos.Row))
		}
		return m, nil
	}

	switch key {
	case "tab":
		if pos, moved := m.sel.MoveFocus(selection.DirRight, false); moved {
			m.followFocus(int(pos.Row))
		}
		return m, nil
	case "shift+tab":
		if pos, moved := m.sel.MoveFocus(selection.DirLeft, false); moved {
			m.followFocus(int(pos.Row))
		}
		return m, nil
	case "enter":
		if pos, moved := m.sel.MoveFocus(selection.DirDown, false); moved {
			m.followFocus(int(pos.Row))
		}
		return m, nil
	case "shift+enter":
		if pos, moved := m.sel.MoveFocus(selection.DirUp, false); moved {
			m.followFocus(int(pos.Row))
		}
		return m, nil
	case "pgup":
		m.scrollBy(-m.gridHeight())
		return m, nil
	case "pgdown":
		m.scrollBy(m.gridHeight())
		return m, nil
	}

	action, ok := bindings.Lookup(key)
	if !ok {
		return m, nil
	}
	switch action {
	case bindings.ActionCopy:
		m.copySelection()
	case bindings.ActionCut:
		m.cutSelection()
	case bindings.ActionPaste:
		return m, m.pasteCmd()
	case bindings.ActionClearCells:
		m.deleteSelection()
	case bindings.ActionClearSelect:
		m.escapeGrid()
	case bindings.ActionSortCycle:
		m.cycleSort()
	case bindings.ActionGroupCycle:
		m.cycleGroup()
	case bindings.ActionFilterPrompt:
		m.openPrompt(promptFilter)
	case bindings.ActionExprPrompt:
		m.openPrompt(promptExpr)
	case bindings.ActionGotoRow:
		m.openPrompt(promptGoto)
	case bindings.ActionPageNext:
		m.changePage(1)
	case bindings.ActionPagePrev:
		m.changePage(-1)
	case bindings.ActionColumnManager:
		m.openColumnManager()
	case bindings.ActionEditCell:
		m.startEdit()
	case bindings.ActionReloadSource:
		m.reloadSource()
	case bindings.ActionToggleHelp:
		m.mode = modeHelp
	case bindings.ActionQuitApp:
		return m, tea.Quit
	}
	return m, nil
}

func navKey(key string) (selection.Direction, bool) {
	if dir, ok := navDirections[key]; ok {
		return dir, true
	}
	const prefix = "shift+"
	if len(key) > len(prefix) && key[:len(prefix)] == prefix {
		dir, ok := navDirections[key[len(prefix):]]
		return dir, ok
	}
	return 0, false
}

func shiftChord(key string) bool {
	return len(key) > 6 && key[:6] == "shift+"
}

// followFocus nudges the viewport so the focused row stays clear of its
// edges, then lets the window engine grow around the new position.
func (m *Model) followFocus(row int) {
	m.scrollTop = scroll.Align(row, m.scrollTop, m.gridHeight(), m.pageLen())
}

func (m *Model) scrollBy(delta int) {
	m.scrollTop += delta
	m.clampScroll()
}

// escapeGrid unwinds state one layer at a time: pending cut, then copied
// marker, then the selection itself. Focus always survives.
func (m *Model) escapeGrid() {
	switch {
	case m.clip.IsCut():
		m.clip.Clear()
		m.sel.ClearCopied()
		m.setStatus(statusInfo, "cut cancelled")
	case m.sel.Copied():
		m.sel.ClearCopied()
	default:
		m.sel.Clear()
	}
}

// cycleSort advances none -> asc -> desc -> none on the focused column;
// moving to a different column restarts at ascending.
func (m *Model) cycleSort() {
	focus, ok := m.sel.Focus()
	if !ok {
		return
	}
	if m.params.SortKey == focus.Col {
		m.params.SortDir = m.params.SortDir.Cycle()
		if m.params.SortDir == pipeline.SortNone {
			m.params.SortKey = ""
		}
	} else {
		m.params.SortKey = focus.Col
		m.params.SortDir = pipeline.SortAsc
	}
	m.rebuildView()
}

func (m *Model) cycleGroup() {
	focus, ok := m.sel.Focus()
	if !ok {
		return
	}
	if m.params.GroupKey == focus.Col {
		m.params.GroupKey = ""
		m.setStatus(statusInfo, "grouping cleared")
	} else {
		m.params.GroupKey = focus.Col
		m.setStatus(statusInfo, "grouped by %s", focus.Col)
	}
	m.rebuildView()
}

// changePage flips the active page. Selection does not survive a page flip;
// focus restarts at the top of the new page in the same column.
func (m *Model) changePage(delta int) {
	page := m.view.Page()
	next := page.Num + delta
	if next < 0 || next >= page.Count || next == page.Num {
		return
	}
	col := ""
	if focus, ok := m.sel.Focus(); ok {
		col = focus.Col
	}
	m.params.Page = next
	m.rebuildView()
	m.scrollTop = 0
	m.sel.Clear()
	if m.pageLen() > 0 {
		if col == "" && len(m.visibleCols()) > 0 {
			col = m.visibleCols()[0].Key
		}
		m.sel.SetFocus(0, col)
	}
	m.setStatus(statusInfo, "page %d/%d", m.view.Page().Num+1, m.view.Page().Count)
}
