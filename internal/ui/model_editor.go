package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hienpham123/tabletify/internal/selection"
)

// startEdit opens the inline editor over the focused cell, seeded with the
// current value.
func (m *Model) startEdit() {
	focus, ok := m.sel.Focus()
	if !ok {
		m.setStatus(statusWarn, "no cell focused")
		return
	}
	m.editing = focus
	value := m.view.CellString(m.pageToData(focus).Row, focus.Col)
	m.editor.SetValue(value)
	m.editor.CursorEnd()
	m.editor.Focus()
	m.mode = modeEditing
}

func (m *Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.commitEdit()
		m.closeEditor()
		if pos, moved := m.sel.MoveFocus(selection.DirDown, false); moved {
			m.followFocus(int(pos.Row))
		}
		return m, nil
	case "tab":
		m.commitEdit()
		m.closeEditor()
		if pos, moved := m.sel.MoveFocus(selection.DirRight, false); moved {
			m.followFocus(int(pos.Row))
		}
		return m, nil
	case "esc":
		m.closeEditor()
		return m, nil
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m *Model) commitEdit() {
	p := m.pageToData(m.editing)
	m.cellWriter()(p.Row, p.Col, m.editor.Value())
}

func (m *Model) closeEditor() {
	m.editor.Blur()
	m.editor.SetValue("")
	m.mode = modeGrid
}
