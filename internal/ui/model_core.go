package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hienpham123/tabletify/internal/clipboard"
	"github.com/hienpham123/tabletify/internal/config"
	"github.com/hienpham123/tabletify/internal/dataset"
	"github.com/hienpham123/tabletify/internal/grid"
	"github.com/hienpham123/tabletify/internal/pipeline"
	"github.com/hienpham123/tabletify/internal/selection"
	"github.com/hienpham123/tabletify/internal/theme"
	"github.com/hienpham123/tabletify/internal/vwindow"
	"github.com/hienpham123/tabletify/internal/watcher"
)

type mode int

const (
	modeGrid mode = iota
	modeEditing
	modePrompt
	modeColumns
	modeHelp
)

type promptKind int

const (
	promptNone promptKind = iota
	promptFilter
	promptExpr
	promptGoto
)

// Config wires the controller to its collaborators. Dataset is required;
// everything else has a usable zero value.
type Config struct {
	Dataset     *dataset.Dataset
	Theme       *theme.Theme
	Settings    config.Settings
	Port        clipboard.Port
	SourcePath  string
	SourceKind  string
	SourceTable string

	// Reload rebuilds the dataset from its source. Nil disables ctrl+r.
	Reload func() (*dataset.Dataset, error)
	// Watch polls the source file; the controller drives Scan on a tick
	// instead of letting the watcher run its own loop.
	Watch *watcher.Watcher
}

// Model is the interaction controller: one update loop owning the
// selection, clipboard and window engines plus the derived pipeline view.
// Engines never see each other; every conversion between page, dataset and
// view row spaces happens here.
type Model struct {
	cfg Config
	th  theme.Theme

	ds     *dataset.Dataset
	params pipeline.Params
	view   *pipeline.View

	sel  *selection.Engine
	clip *clipboard.Engine
	win  *vwindow.Engine

	mode       mode
	width      int
	height     int
	scrollTop  int
	status     statusMsg
	showStatus bool

	editor     textinput.Model
	editing    grid.Pos
	prompt     textinput.Model
	promptKind promptKind
	colList    list.Model

	// lastClipText is the interchange text of the latest copy or cut, used
	// to prefer the internal buffer when the host clipboard still holds our
	// own write.
	lastClipText string
	sourceDirty  bool
}

func New(cfg Config) *Model {
	th := theme.DefaultTheme()
	if cfg.Theme != nil {
		th = *cfg.Theme
	}

	editor := textinput.New()
	editor.Prompt = ""
	editor.CharLimit = 0

	prompt := textinput.New()
	prompt.Prompt = "> "

	m := &Model{
		cfg:    cfg,
		th:     th,
		ds:     cfg.Dataset,
		sel:    selection.New(),
		clip:   clipboard.NewEngine(cfg.Port),
		win:    vwindow.New(cfg.Settings.Grid.Overscan, cfg.Settings.Grid.MaxWindowRows),
		editor: editor,
		prompt: prompt,
	}
	m.params.PageSize = cfg.Settings.Grid.PageSize
	m.rebuildView()
	if m.pageLen() > 0 && len(m.visibleCols()) > 0 {
		m.sel.SetFocus(0, m.visibleCols()[0].Key)
	}
	return m
}

func (m *Model) Init() tea.Cmd {
	if m.cfg.Watch != nil {
		return m.watchTickCmd()
	}
	return nil
}

func (m *Model) visibleCols() []grid.Column {
	return m.ds.VisibleColumns()
}

func (m *Model) pageLen() int {
	return m.view.PageLen()
}

// gridHeight is the number of data lines in the body: total height minus
// header, the two window spacer lines, status bar and footer.
func (m *Model) gridHeight() int {
	h := m.height - 5
	if h < 1 {
		h = 1
	}
	return h
}

// windowRange recomputes the materialized window for the current scroll
// state. Compute is idempotent, so callers just ask instead of caching.
func (m *Model) windowRange() vwindow.Range {
	return m.win.Compute(m.scrollTop, m.gridHeight(), 1, m.pageLen())
}

// pageToData converts a page-space position into dataset space by adding
// the page offset. Clipboard and editor writes only ever see the result.
func (m *Model) pageToData(p grid.Pos) grid.DataPos {
	return grid.DataPos{Row: grid.DataRow(int(p.Row) + m.view.Page().Offset), Col: p.Col}
}

// rebuildView re-derives the pipeline view from the current params and
// re-bounds the selection. A bad filter expression keeps the previous view
// and is returned for callers that want to roll params back.
func (m *Model) rebuildView() error {
	view, err := pipeline.Apply(m.ds, m.params)
	if err != nil {
		m.setStatus(statusError, "%v", err)
		if m.view == nil {
			m.view, _ = pipeline.Apply(m.ds, pipeline.Params{PageSize: m.params.PageSize})
		}
		return err
	}
	m.view = view
	m.sel.SetBounds(m.pageLen(), m.visibleCols())
	// A re-derived order invalidates what a range meant; drop the
	// selection but let the focus carry over.
	m.sel.Clear()
	m.win.Reset()
	m.clampScroll()
	return nil
}

func (m *Model) clampScroll() {
	max := m.pageLen() - m.gridHeight()
	if max < 0 {
		max = 0
	}
	if m.scrollTop > max {
		m.scrollTop = max
	}
	if m.scrollTop < 0 {
		m.scrollTop = 0
	}
}

func (m *Model) setStatus(level statusLevel, format string, args ...any) {
	m.status = statusMsg{text: fmt.Sprintf(format, args...), level: level}
	m.showStatus = true
}
