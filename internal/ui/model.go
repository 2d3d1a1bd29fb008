package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"focado/internal/audio"
	"focado/internal/domain"
	"focado/internal/engine"
	"focado/internal/logging"
	"focado/internal/services"
	"focado/internal/theme"
)

const errDisplayDuration = 4 * time.Second

type uiState int

const (
	stateTimer uiState = iota
	stateAddingTask
	stateHelp
)

// Model is the root Bubble Tea model for the timer screen
type Model struct {
	engine *engine.Engine
	audio  *audio.Controller
	tasks  *services.TaskService
	feed   *EngineFeed

	keys  KeyMap
	state uiState

	engineState domain.EngineState
	audioStatus string

	taskList []domain.Task
	cursor   int

	taskForm *huh.Form

	progress progress.Model

	err      error
	errSetAt time.Time

	width  int
	height int
}

// NewModel creates the timer model. The engine and audio controller
// are owned by the caller; the model never constructs or tears down
// either.
func NewModel(eng *engine.Engine, audioCtrl *audio.Controller, tasks *services.TaskService, feed *EngineFeed) Model {
	bar := progress.New(
		progress.WithSolidFill(string(theme.ColorProgress)),
		progress.WithoutPercentage(),
	)
	bar.Width = 30

	return Model{
		engine:      eng,
		audio:       audioCtrl,
		tasks:       tasks,
		feed:        feed,
		keys:        NewKeyMap(),
		engineState: eng.State(),
		audioStatus: audioCtrl.StatusText(),
		progress:    bar,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadTasksCmd(), m.feed.WaitCmd(), statusRefreshCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case EngineStateMsg:
		m.engineState = msg.State
		return m, m.feed.WaitCmd()

	case SessionCompletedMsg:
		m.engineState = msg.Next
		// A finished work session may have credited the active task
		return m, tea.Batch(m.loadTasksCmd(), m.feed.WaitCmd())

	case TasksLoadedMsg:
		if msg.Err != nil {
			return m.withError(msg.Err)
		}
		m.taskList = msg.Tasks
		if m.cursor >= len(m.taskList) {
			m.cursor = max(0, len(m.taskList)-1)
		}
		return m, nil

	case TaskSavedMsg:
		if msg.Err != nil {
			return m.withError(msg.Err)
		}
		return m, m.loadTasksCmd()

	case audioResultMsg:
		m.audioStatus = m.audio.StatusText()
		if msg.err != nil {
			return m.withError(msg.err)
		}
		return m, nil

	case statusRefreshMsg:
		m.audioStatus = m.audio.StatusText()
		return m, statusRefreshCmd()

	case errClearMsg:
		if msg.at.Equal(m.errSetAt) {
			m.err = nil
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	if m.state == stateAddingTask {
		return m.updateTaskForm(msg)
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.audio.Cleanup()
		return m, tea.Quit
	}

	switch m.state {
	case stateAddingTask:
		return m.updateTaskForm(msg)
	case stateHelp:
		// Any key leaves the help screen
		m.state = stateTimer
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.audio.Cleanup()
		return m, tea.Quit

	case key.Matches(msg, m.keys.StartPause):
		if m.engineState.IsRunning {
			m.engine.Pause()
		} else {
			m.engine.Start()
		}
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		m.engine.Reset()
		return m, nil

	case key.Matches(msg, m.keys.Skip):
		m.engine.Skip()
		return m, nil

	case key.Matches(msg, m.keys.ToggleMusic):
		return m, m.audioCmd(func() error {
			_, err := m.audio.Toggle()
			return err
		})

	case key.Matches(msg, m.keys.NextStation):
		return m, m.audioCmd(m.audio.NextStation)

	case key.Matches(msg, m.keys.PrevStation):
		return m, m.audioCmd(m.audio.PreviousStation)

	case key.Matches(msg, m.keys.AddTask):
		m.state = stateAddingTask
		m.taskForm = newTaskForm()
		return m, m.taskForm.Init()

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.taskList)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleDone):
		if task, ok := m.selectedTask(); ok {
			return m, m.taskCmd(func(ctx context.Context) error {
				return m.tasks.ToggleDone(ctx, task.ID)
			})
		}
		return m, nil

	case key.Matches(msg, m.keys.DeleteTask):
		if task, ok := m.selectedTask(); ok {
			return m, m.taskCmd(func(ctx context.Context) error {
				return m.tasks.Delete(ctx, task.ID)
			})
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.state = stateHelp
		return m, nil
	}

	return m, nil
}

func (m Model) updateTaskForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.taskForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.taskForm = f
	}

	switch m.taskForm.State {
	case huh.StateCompleted:
		title := m.taskForm.GetString("title")
		m.state = stateTimer
		m.taskForm = nil
		return m, m.taskCmd(func(ctx context.Context) error {
			_, err := m.tasks.Add(ctx, title)
			return err
		})
	case huh.StateAborted:
		m.state = stateTimer
		m.taskForm = nil
		return m, nil
	}

	return m, cmd
}

func newTaskForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("title").
				Title("New task").
				Placeholder("What are you working on?"),
		),
	).WithShowHelp(false)
}

func (m Model) selectedTask() (domain.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.taskList) {
		return domain.Task{}, false
	}
	return m.taskList[m.cursor], true
}

func (m Model) withError(err error) (tea.Model, tea.Cmd) {
	logging.Logger.Warn("UI error", "error", err)
	m.err = err
	m.errSetAt = time.Now()
	at := m.errSetAt
	return m, tea.Tick(errDisplayDuration, func(time.Time) tea.Msg {
		return errClearMsg{at: at}
	})
}

func (m Model) loadTasksCmd() tea.Cmd {
	return func() tea.Msg {
		tasks, err := m.tasks.List(context.Background())
		return TasksLoadedMsg{Tasks: tasks, Err: err}
	}
}

func (m Model) taskCmd(fn func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg {
		return TaskSavedMsg{Err: fn(context.Background())}
	}
}

func (m Model) audioCmd(fn func() error) tea.Cmd {
	return func() tea.Msg {
		return audioResultMsg{err: fn()}
	}
}
