package ui

import "github.com/hienpham123/tabletify/internal/watcher"

type statusLevel int

const (
	statusInfo statusLevel = iota
	statusWarn
	statusError
	statusSuccess
)

type statusMsg struct {
	text  string
	level statusLevel
}

// pasteReadMsg carries the host clipboard text back onto the update loop.
// An error or empty text falls back to the internal buffer.
type pasteReadMsg struct {
	text string
	err  error
}

// watchTickMsg drives the source file poll loop.
type watchTickMsg struct{}

// sourceEventMsg surfaces a watcher event for the loaded source file.
type sourceEventMsg struct {
	event watcher.Event
}
