package ui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hienpham123/tabletify/internal/bindings"
	"github.com/hienpham123/tabletify/internal/grid"
	"github.com/hienpham123/tabletify/internal/ui/scroll"
)

// --- prompts ---

func (m *Model) openPrompt(kind promptKind) {
	m.promptKind = kind
	switch kind {
	case promptFilter:
		m.prompt.Placeholder = "col=text col2=text (empty clears)"
		m.prompt.SetValue(filterInput(m.params.Filters))
	case promptExpr:
		m.prompt.Placeholder = `expression, e.g. salary > "50000" (empty clears)`
		m.prompt.SetValue(m.params.Expr)
	case promptGoto:
		m.prompt.Placeholder = "row number"
		m.prompt.SetValue("")
	}
	m.prompt.CursorEnd()
	m.prompt.Focus()
	m.mode = modePrompt
}

func (m *Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		input := strings.TrimSpace(m.prompt.Value())
		kind := m.promptKind
		m.closePrompt()
		m.submitPrompt(kind, input)
		return m, nil
	case "esc":
		m.closePrompt()
		return m, nil
	}
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m *Model) closePrompt() {
	m.prompt.Blur()
	m.promptKind = promptNone
	m.mode = modeGrid
}

func (m *Model) submitPrompt(kind promptKind, input string) {
	switch kind {
	case promptFilter:
		m.params.Filters = parseFilterInput(input)
		m.params.Page = 0
		m.rebuildView()
		if n := len(m.params.Filters); n == 0 {
			m.setStatus(statusInfo, "filters cleared, %d rows", m.view.Len())
		} else {
			m.setStatus(statusInfo, "%d filters, %d rows match", n, m.view.Len())
		}
	case promptExpr:
		prev := m.params.Expr
		m.params.Expr = input
		m.params.Page = 0
		if err := m.rebuildView(); err != nil {
			m.params.Expr = prev
			return
		}
		if input == "" {
			m.setStatus(statusInfo, "expression cleared, %d rows", m.view.Len())
		} else {
			m.setStatus(statusInfo, "%d rows match", m.view.Len())
		}
	case promptGoto:
		m.gotoRow(input)
	}
}

// gotoRow jumps to a 1-based row of the full filtered sequence, flipping
// pages when needed.
func (m *Model) gotoRow(input string) {
	n, err := strconv.Atoi(input)
	if err != nil || n < 1 {
		m.setStatus(statusWarn, "not a row number: %q", input)
		return
	}
	if n > m.view.Len() {
		n = m.view.Len()
	}
	if n == 0 {
		return
	}
	target := n - 1

	size := m.params.PageSize
	if size > 0 {
		page := target / size
		if page != m.view.Page().Num {
			m.params.Page = page
			m.rebuildView()
		}
	}
	pageRow := target - m.view.Page().Offset
	col := ""
	if focus, ok := m.sel.Focus(); ok {
		col = focus.Col
	} else if cols := m.visibleCols(); len(cols) > 0 {
		col = cols[0].Key
	}
	m.sel.Clear()
	m.sel.SetFocus(grid.PageRow(pageRow), col)
	m.scrollTop = scroll.Center(pageRow, m.gridHeight(), m.pageLen())
	m.setStatus(statusInfo, "row %d", n)
}

// parseFilterInput splits "col=text col2=text" into the per-column
// substring filter map. Values may be quoted to carry spaces.
func parseFilterInput(input string) map[string]string {
	fields := splitQuoted(input)
	if len(fields) == 0 {
		return nil
	}
	filters := make(map[string]string, len(fields))
	for _, f := range fields {
		key, value, ok := strings.Cut(f, "=")
		if !ok || key == "" {
			continue
		}
		filters[key] = strings.Trim(value, `"`)
	}
	if len(filters) == 0 {
		return nil
	}
	return filters
}

func splitQuoted(input string) []string {
	var out []string
	var cur strings.Builder
	inQuote := false
	for _, r := range input {
		switch {
		case r == '"':
			inQuote = !inQuote
			cur.WriteRune(r)
		case r == ' ' && !inQuote:
			if cur.Len() > 0 {
				out = append(out, cur.String())
				cur.Reset()
			}
		default:
			cur.WriteRune(r)
		}
	}
	if cur.Len() > 0 {
		out = append(out, cur.String())
	}
	return out
}

func filterInput(filters map[string]string) string {
	if len(filters) == 0 {
		return ""
	}
	keys := make([]string, 0, len(filters))
	for k := range filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		v := filters[k]
		if strings.Contains(v, " ") {
			v = `"` + v + `"`
		}
		parts = append(parts, k+"="+v)
	}
	return strings.Join(parts, " ")
}

// --- column manager ---

type columnItem struct {
	index  int
	title  string
	hidden bool
	width  int
}

func (i columnItem) Title() string {
	mark := "[x]"
	if i.hidden {
		mark = "[ ]"
	}
	return mark + " " + i.title
}

func (i columnItem) Description() string {
	return fmt.Sprintf("width %d", i.width)
}

func (i columnItem) FilterValue() string { return i.title }

func (m *Model) openColumnManager() {
	delegate := list.NewDefaultDelegate()
	m.colList = list.New(m.columnItems(), delegate, 0, 0)
	m.colList.Title = "Columns"
	m.colList.SetShowStatusBar(false)
	m.colList.SetFilteringEnabled(false)
	m.colList.SetShowHelp(false)
	m.sizeColumnList()
	m.mode = modeColumns
}

func (m *Model) columnItems() []list.Item {
	cols := m.ds.Columns()
	items := make([]list.Item, 0, len(cols))
	for i, c := range cols {
		items = append(items, columnItem{index: i, title: c.Title, hidden: c.Hidden, width: c.Width})
	}
	return items
}

func (m *Model) sizeColumnList() {
	w := m.width * 2 / 3
	if w < 30 {
		w = 30
	}
	h := m.height - 6
	if h < 5 {
		h = 5
	}
	m.colList.SetSize(w, h)
}

func (m *Model) updateColumns(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "c":
		m.mode = modeGrid
		m.sel.SetBounds(m.pageLen(), m.visibleCols())
		return m, nil
	case " ", "enter":
		if item, ok := m.colList.SelectedItem().(columnItem); ok {
			m.toggleColumn(item.index)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.colList, cmd = m.colList.Update(msg)
	return m, cmd
}

// toggleColumn flips one column's visibility in place. The last visible
// column refuses to hide so the grid never goes blank.
func (m *Model) toggleColumn(index int) {
	cols := m.ds.Columns()
	if index < 0 || index >= len(cols) {
		return
	}
	if !cols[index].Hidden && len(m.visibleCols()) <= 1 {
		m.setStatus(statusWarn, "cannot hide the last column")
		return
	}
	cols[index].Hidden = !cols[index].Hidden
	cursor := m.colList.Index()
	m.colList.SetItems(m.columnItems())
	m.colList.Select(cursor)
}

// --- help ---

var helpOrder = []struct {
	action bindings.ActionID
	label  string
}{
	{bindings.ActionCopy, "copy selection"},
	{bindings.ActionCut, "cut selection"},
	{bindings.ActionPaste, "paste"},
	{bindings.ActionClearCells, "clear cells"},
	{bindings.ActionClearSelect, "drop selection / cancel cut"},
	{bindings.ActionEditCell, "edit cell"},
	{bindings.ActionSortCycle, "cycle sort on column"},
	{bindings.ActionGroupCycle, "group by column"},
	{bindings.ActionFilterPrompt, "column filters"},
	{bindings.ActionExprPrompt, "filter expression"},
	{bindings.ActionGotoRow, "go to row"},
	{bindings.ActionPagePrev, "previous page"},
	{bindings.ActionPageNext, "next page"},
	{bindings.ActionColumnManager, "show/hide columns"},
	{bindings.ActionReloadSource, "reload source"},
	{bindings.ActionToggleHelp, "this help"},
	{bindings.ActionQuitApp, "quit"},
}

func (m *Model) helpBody() string {
	var b strings.Builder
	for _, h := range helpOrder {
		key := bindings.PrimaryKey(h.action)
		fmt.Fprintf(&b, "%-12s %s\n", key, h.label)
	}
	b.WriteString("\narrows move, shift extends, ctrl jumps to edges")
	return b.String()
}
