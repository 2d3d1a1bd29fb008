package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"focado/internal/domain"
)

// EngineStateMsg carries a fresh engine snapshot into the UI. The
// calling layer forwards engine state-changed notifications as this
// message.
type EngineStateMsg struct {
	State domain.EngineState
}

// SessionCompletedMsg announces a finished session. History and task
// side effects have already run by the time the UI sees it.
type SessionCompletedMsg struct {
	Ended domain.SessionType
	Next  domain.EngineState
}

// TasksLoadedMsg delivers the task list from storage
type TasksLoadedMsg struct {
	Tasks []domain.Task
	Err   error
}

// TaskSavedMsg confirms a task mutation and triggers a reload
type TaskSavedMsg struct {
	Err error
}

// audioResultMsg reports the outcome of an audio command
type audioResultMsg struct {
	err error
}

// statusRefreshMsg periodically re-reads the audio status so Spotify
// now-playing updates show up while the timer is paused
type statusRefreshMsg struct{}

// errClearMsg clears the error line after the configured delay
type errClearMsg struct {
	at time.Time
}

func statusRefreshCmd() tea.Cmd {
	return tea.Tick(5*time.Second, func(time.Time) tea.Msg {
		return statusRefreshMsg{}
	})
}
