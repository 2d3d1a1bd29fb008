package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"focado/internal/domain"
	"focado/internal/logging"
)

// EngineFeed bridges engine callbacks into the Bubble Tea loop. The
// engine pushes from its clock goroutine; the model drains via WaitCmd.
type EngineFeed struct {
	ch chan tea.Msg
}

// NewEngineFeed creates a feed with a small buffer so a slow render
// never blocks the engine's tick path
func NewEngineFeed() *EngineFeed {
	return &EngineFeed{ch: make(chan tea.Msg, 16)}
}

// StateChanged forwards an engine state snapshot. Safe to hand to
// Engine.OnStateChange directly or to call from a wrapping callback.
func (f *EngineFeed) StateChanged(state domain.EngineState) {
	f.send(EngineStateMsg{State: state})
}

// SessionCompleted forwards a session transition
func (f *EngineFeed) SessionCompleted(ended domain.SessionType, next domain.EngineState) {
	f.send(SessionCompletedMsg{Ended: ended, Next: next})
}

// WaitCmd blocks until the next engine event arrives. The model
// re-issues it after consuming each event.
func (f *EngineFeed) WaitCmd() tea.Cmd {
	return func() tea.Msg {
		return <-f.ch
	}
}

func (f *EngineFeed) send(msg tea.Msg) {
	select {
	case f.ch <- msg:
	default:
		// The UI is far behind; the next snapshot supersedes this one
		logging.Logger.Debug("Dropped engine event", "msg", msg)
	}
}
