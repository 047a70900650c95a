package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hienpham123/tabletify/internal/duration"
	"github.com/hienpham123/tabletify/internal/watcher"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampScroll()
		if m.mode == modeColumns {
			m.sizeColumnList()
		}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeEditing:
			return m.updateEditing(msg)
		case modePrompt:
			return m.updatePrompt(msg)
		case modeColumns:
			return m.updateColumns(msg)
		case modeHelp:
			m.mode = modeGrid
			return m, nil
		default:
			return m.updateGridKey(msg)
		}

	case tea.MouseMsg:
		if m.mode != modeGrid {
			return m, nil
		}
		return m.updateMouse(msg)

	case statusMsg:
		m.status = msg
		m.showStatus = true
		return m, nil

	case pasteReadMsg:
		m.applyPaste(msg)
		return m, nil

	case watchTickMsg:
		return m, tea.Batch(m.scanSourceCmd(), m.watchTickCmd())

	case sourceEventMsg:
		switch msg.event.Kind {
		case watcher.EventMissing:
			m.setStatus(statusError, "source file disappeared: %s", msg.event.Path)
		default:
			m.sourceDirty = true
			m.setStatus(statusWarn, "source changed on disk, press ctrl+r to reload")
		}
		return m, nil
	}
	return m, nil
}

// watchTickCmd schedules the next source poll.
func (m *Model) watchTickCmd() tea.Cmd {
	interval, ok := duration.Parse(m.cfg.Settings.UI.WatchInterval)
	if !ok || interval <= 0 {
		interval = 2 * time.Second
	}
	return tea.Tick(interval, func(time.Time) tea.Msg { return watchTickMsg{} })
}

// scanSourceCmd runs one poll off the update loop and surfaces at most one
// event per tick.
func (m *Model) scanSourceCmd() tea.Cmd {
	w := m.cfg.Watch
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		w.Scan()
		select {
		case evt := <-w.Events():
			return sourceEventMsg{event: evt}
		default:
			return nil
		}
	}
}

// reloadSource rebuilds the dataset from its origin, keeping the current
// pipeline params so sort and filters survive the reload.
func (m *Model) reloadSource() {
	if m.cfg.Reload == nil {
		m.setStatus(statusWarn, "no reloadable source")
		return
	}
	ds, err := m.cfg.Reload()
	if err != nil {
		m.setStatus(statusError, "reload failed: %v", err)
		return
	}
	m.ds = ds
	m.clip.Clear()
	m.sel.ClearCopied()
	m.rebuildView()
	m.sourceDirty = false
	m.setStatus(statusSuccess, "reloaded %d rows", ds.Len())
}
