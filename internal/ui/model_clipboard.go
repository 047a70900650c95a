package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hienpham123/tabletify/internal/clipboard"
	"github.com/hienpham123/tabletify/internal/dataset"
	"github.com/hienpham123/tabletify/internal/grid"
)

// selectedDataCells converts the page-space selection into dataset space.
func (m *Model) selectedDataCells() []grid.DataPos {
	cells := m.sel.Cells()
	if len(cells) == 0 {
		return nil
	}
	out := make([]grid.DataPos, 0, len(cells))
	for _, p := range cells {
		out = append(out, m.pageToData(p))
	}
	return out
}

// cellWriter is the single mutation seam: every paste, delete and editor
// commit writes through the view so dataset rows are resolved from the
// derived order at write time.
func (m *Model) cellWriter() clipboard.WriteFunc {
	return m.view.Writer(func(rec *dataset.Record, col, value string, _ grid.DataRow) {
		if rec.Fields == nil {
			rec.Fields = make(map[string]string)
		}
		rec.Fields[col] = value
	})
}

func (m *Model) copySelection() {
	cells := m.selectedDataCells()
	if len(cells) == 0 {
		m.setStatus(statusWarn, "nothing selected")
		return
	}
	text, err := m.clip.Copy(cells, m.view, m.visibleCols())
	m.lastClipText = text
	m.sel.MarkCopied()
	if err != nil {
		m.setStatus(statusWarn, "copied %d cells (system clipboard unavailable)", len(cells))
		return
	}
	m.setStatus(statusSuccess, "copied %d cells", len(cells))
}

func (m *Model) cutSelection() {
	cells := m.selectedDataCells()
	if len(cells) == 0 {
		m.setStatus(statusWarn, "nothing selected")
		return
	}
	text, err := m.clip.Cut(cells, m.view, m.visibleCols())
	m.lastClipText = text
	m.sel.MarkCopied()
	if err != nil {
		m.setStatus(statusWarn, "cut %d cells (system clipboard unavailable)", len(cells))
		return
	}
	m.setStatus(statusSuccess, "cut %d cells, paste to move", len(cells))
}

// pasteCmd reads the host clipboard off the update loop. Without a port the
// internal buffer applies immediately.
func (m *Model) pasteCmd() tea.Cmd {
	port := m.cfg.Port
	if port == nil {
		m.applyPaste(pasteReadMsg{})
		return nil
	}
	return func() tea.Msg {
		text, err := port.ReadText()
		return pasteReadMsg{text: text, err: err}
	}
}

// applyPaste picks between the host text and the internal buffer. The
// internal buffer wins when the host read failed, came back empty, or still
// holds our own last write; that last case is what lets a cut complete as a
// move with source blanking.
func (m *Model) applyPaste(msg pasteReadMsg) {
	targets := m.selectedDataCells()
	if len(targets) == 0 {
		m.setStatus(statusWarn, "no paste target")
		return
	}

	internal := m.clip.CanPaste() &&
		(msg.err != nil || msg.text == "" || msg.text == m.lastClipText)

	var n int
	if internal {
		n = m.clip.PasteInternal(targets, m.view, m.visibleCols(), m.cellWriter())
	} else if msg.text != "" {
		n = m.clip.PasteText(msg.text, targets, m.visibleCols(), m.view.RowLen(), m.cellWriter())
	} else {
		m.setStatus(statusWarn, "clipboard is empty")
		return
	}

	m.sel.ClearCopied()
	if n == 0 {
		m.setStatus(statusWarn, "nothing pasted")
		return
	}
	m.setStatus(statusSuccess, "pasted %d cells", n)
}

// deleteSelection blanks every selected cell through the write seam.
func (m *Model) deleteSelection() {
	cells := m.selectedDataCells()
	if len(cells) == 0 {
		return
	}
	write := m.cellWriter()
	for _, p := range cells {
		write(p.Row, p.Col, "")
	}
	m.setStatus(statusInfo, "cleared %d cells", len(cells))
}
