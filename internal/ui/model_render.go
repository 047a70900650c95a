package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/hienpham123/tabletify/internal/bindings"
	"github.com/hienpham123/tabletify/internal/grid"
	"github.com/hienpham123/tabletify/internal/pipeline"
	"github.com/hienpham123/tabletify/internal/util"
)

// bodyTop is the y coordinate of the first data line: header, then the
// top window spacer.
const bodyTop = 2

func (m *Model) View() string {
	if m.width <= 0 {
		m.width = 80
	}
	if m.height <= 0 {
		m.height = 24
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteByte('\n')
	b.WriteString(m.renderBody())
	b.WriteByte('\n')
	b.WriteString(m.renderStatusLine())
	b.WriteByte('\n')
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderBody emits the spacer lines and the visible slice of the
// materialized window. Rows outside the window render blank, which only
// happens transiently while the window re-anchors after a jump.
func (m *Model) renderBody() string {
	switch m.mode {
	case modeHelp:
		return m.renderOverlay("Keys", m.helpBody())
	case modeColumns:
		return m.renderOverlay("", m.colList.View())
	}

	window := m.windowRange()
	gridH := m.gridHeight()
	lines := make([]string, 0, gridH+2)

	lines = append(lines, m.spacerLine(window.Start, "above"))
	boundaries := m.boundarySet()
	copiedPrefix, copiedSuffix := "", ""
	if m.sel.Copied() {
		copiedPrefix, copiedSuffix = styleSGR(m.th.CellCopied)
	}
	for y := 0; y < gridH; y++ {
		pageRow := m.scrollTop + y
		if pageRow >= m.pageLen() || !window.Contains(pageRow) {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, m.renderRow(pageRow, boundaries, copiedPrefix, copiedSuffix))
	}
	lines = append(lines, m.spacerLine(m.pageLen()-window.End, "below"))

	for i, line := range lines {
		lines[i] = ansi.Truncate(line, m.width, "")
	}
	return strings.Join(lines, "\n")
}

func (m *Model) spacerLine(n int, side string) string {
	if n <= 0 {
		return ""
	}
	return m.th.Spacer.Render(fmt.Sprintf("… %d rows %s", n, side))
}

func (m *Model) renderHeader() string {
	var b strings.Builder
	if g := m.gutterWidth(); g > 0 {
		b.WriteString(strings.Repeat(" ", g))
	}
	for i, c := range m.visibleCols() {
		if i > 0 {
			b.WriteByte(' ')
		}
		title := c.Title
		if c.Key == m.params.SortKey {
			switch m.params.SortDir {
			case pipeline.SortAsc:
				title += " ↑"
			case pipeline.SortDesc:
				title += " ↓"
			}
		}
		w := colWidth(c)
		cell := runewidth.FillRight(runewidth.Truncate(title, w, "…"), w)
		if c.Key == m.params.SortKey && m.params.SortDir != pipeline.SortNone {
			b.WriteString(m.th.HeaderSorted.Render(cell))
		} else {
			b.WriteString(m.th.Header.Render(cell))
		}
	}
	return ansi.Truncate(b.String(), m.width, "")
}

func (m *Model) renderRow(pageRow int, boundaries map[grid.DataRow]bool, copiedPrefix, copiedSuffix string) string {
	dataRow := grid.DataRow(pageRow + m.view.Page().Offset)
	focus, hasFocus := m.sel.Focus()

	var b strings.Builder
	if g := m.gutterWidth(); g > 0 {
		num := strconv.Itoa(int(dataRow) + 1)
		cell := fmt.Sprintf("%*s ", g-1, num)
		if boundaries[dataRow] {
			b.WriteString(m.th.GroupSeparator.Render(cell))
		} else {
			b.WriteString(m.th.RowNumber.Render(cell))
		}
	}

	for i, c := range m.visibleCols() {
		if i > 0 {
			b.WriteByte(' ')
		}
		w := colWidth(c)
		text := util.SanitizeCell(m.view.CellString(dataRow, c.Key))
		cell := runewidth.FillRight(runewidth.Truncate(text, w, "…"), w)

		selected := m.sel.IsSelected(grid.PageRow(pageRow), c.Key)
		focused := hasFocus && focus.Row == grid.PageRow(pageRow) && focus.Col == c.Key
		var rendered string
		switch {
		case focused:
			rendered = m.th.CellFocused.Render(cell)
		case selected:
			rendered = m.th.CellSelected.Render(cell)
		case m.cfg.Settings.Grid.Zebra && pageRow%2 == 1:
			rendered = m.th.CellZebra.Render(cell)
		default:
			rendered = m.th.Cell.Render(cell)
		}
		if selected && copiedPrefix != "" {
			rendered = applyOverlayToLine(rendered, copiedPrefix, copiedSuffix)
		}
		b.WriteString(rendered)
	}
	return b.String()
}

func (m *Model) renderStatusLine() string {
	switch m.mode {
	case modeEditing:
		label := m.th.PromptLabel.Render("edit " + m.editing.Col + ": ")
		return ansi.Truncate(label+m.editor.View(), m.width, "")
	case modePrompt:
		return ansi.Truncate(m.th.PromptLabel.Render(m.promptLabel())+m.prompt.View(), m.width, "")
	}

	left := ""
	if m.showStatus {
		style := m.th.StatusInfo
		switch m.status.level {
		case statusWarn:
			style = m.th.StatusWarn
		case statusError:
			style = m.th.StatusError
		case statusSuccess:
			style = m.th.StatusSuccess
		}
		left = style.Render(m.status.text)
	}
	right := m.th.StatusBar.Render(m.positionInfo())

	pad := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if pad < 1 {
		return ansi.Truncate(left+" "+right, m.width, "")
	}
	return left + strings.Repeat(" ", pad) + right
}

func (m *Model) promptLabel() string {
	switch m.promptKind {
	case promptFilter:
		return "filter "
	case promptExpr:
		return "where "
	case promptGoto:
		return "goto "
	}
	return ""
}

func (m *Model) positionInfo() string {
	parts := make([]string, 0, 4)
	if m.cfg.SourcePath != "" {
		name := m.cfg.SourcePath
		if m.cfg.SourceTable != "" {
			name += ":" + m.cfg.SourceTable
		}
		parts = append(parts, name)
	}
	if m.sourceDirty {
		parts = append(parts, "stale")
	}
	if m.view.Len() == m.ds.Len() {
		parts = append(parts, fmt.Sprintf("%d rows", m.ds.Len()))
	} else {
		parts = append(parts, fmt.Sprintf("%d/%d rows", m.view.Len(), m.ds.Len()))
	}
	if page := m.view.Page(); page.Count > 1 {
		parts = append(parts, fmt.Sprintf("page %d/%d", page.Num+1, page.Count))
	}
	if focus, ok := m.sel.Focus(); ok {
		parts = append(parts, fmt.Sprintf("r%d %s", int(m.pageToData(focus).Row)+1, focus.Col))
	}
	return strings.Join(parts, " · ")
}

func (m *Model) renderFooter() string {
	hints := []struct {
		action bindings.ActionID
		label  string
	}{
		{bindings.ActionCopy, "copy"},
		{bindings.ActionPaste, "paste"},
		{bindings.ActionFilterPrompt, "filter"},
		{bindings.ActionSortCycle, "sort"},
		{bindings.ActionColumnManager, "columns"},
		{bindings.ActionToggleHelp, "help"},
		{bindings.ActionQuitApp, "quit"},
	}
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, m.th.FooterKey.Render(bindings.PrimaryKey(h.action))+" "+h.label)
	}
	return ansi.Truncate(m.th.Footer.Render(strings.Join(parts, "  ")), m.width, "")
}

// renderOverlay centers a boxed panel in the body area.
func (m *Model) renderOverlay(title, content string) string {
	if title != "" {
		content = m.th.OverlayTitle.Render(title) + "\n" + content
	}
	box := m.th.Overlay.Render(content)
	return lipgloss.Place(m.width, m.gridHeight()+2, lipgloss.Center, lipgloss.Center, box)
}

// boundarySet indexes the group run starts for the render loop.
func (m *Model) boundarySet() map[grid.DataRow]bool {
	if m.params.GroupKey == "" {
		return nil
	}
	rows := m.view.Boundaries()
	set := make(map[grid.DataRow]bool, len(rows))
	for _, r := range rows {
		set[r] = true
	}
	return set
}

func (m *Model) gutterWidth() int {
	if !m.cfg.Settings.Grid.RowNumbers {
		return 0
	}
	digits := len(strconv.Itoa(m.view.Len()))
	if digits < 2 {
		digits = 2
	}
	return digits + 1
}

func colWidth(c grid.Column) int {
	if c.Width > 0 {
		return c.Width
	}
	w := runewidth.StringWidth(c.Title)
	if w < 4 {
		w = 4
	}
	return w
}
