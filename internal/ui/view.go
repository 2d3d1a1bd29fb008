package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"focado/internal/domain"
	"focado/internal/theme"
)

func (m Model) View() string {
	switch m.state {
	case stateHelp:
		return m.helpView()
	case stateAddingTask:
		return m.taskFormView()
	default:
		return m.timerView()
	}
}

func (m Model) timerView() string {
	var b strings.Builder

	b.WriteString(theme.TitleStyle.Render("focado"))
	b.WriteString("\n\n")

	b.WriteString(m.sessionLine())
	b.WriteString("\n\n")

	clock := domain.FormatTime(m.engineState.TimeRemaining)
	if m.engineState.IsRunning {
		b.WriteString(theme.ClockStyle.Render(clock))
	} else {
		b.WriteString(theme.ClockPausedStyle.Render(clock + " ⏸"))
	}
	b.WriteString("\n")
	b.WriteString(m.progress.ViewAs(m.sessionProgress()))
	b.WriteString("\n\n")

	// CompletedPomodoros counts this run only; history has the daily view
	b.WriteString(theme.CounterStyle.Render(
		fmt.Sprintf("pomodoros this run: %d", m.engineState.CompletedPomodoros)))
	b.WriteString("\n")

	if m.audioStatus != "" {
		b.WriteString(theme.MusicStyle.Render(m.audioStatus))
		b.WriteString("\n")
	}

	if len(m.taskList) > 0 {
		b.WriteString("\n")
		b.WriteString(m.taskListView())
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(theme.ErrorStyle.Render("! " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(theme.HelpStyle.Render(
		"space start/pause · s skip · r reset · m music · a add task · h help · q quit"))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (m Model) sessionLine() string {
	session := m.engineState.CurrentSession
	label := session.Symbol() + " " + session.Label()

	switch session {
	case domain.SessionWork:
		return theme.WorkStyle.Render(label)
	case domain.SessionShortBreak:
		return theme.ShortBreakStyle.Render(label)
	default:
		return theme.LongBreakStyle.Render(label)
	}
}

// sessionProgress reports elapsed fraction of the current session
func (m Model) sessionProgress() float64 {
	total := m.engine.Config().DurationSeconds(m.engineState.CurrentSession)
	if total <= 0 {
		return 0
	}
	elapsed := total - m.engineState.TimeRemaining
	if elapsed < 0 {
		elapsed = 0
	}
	return float64(elapsed) / float64(total)
}

func (m Model) taskListView() string {
	var b strings.Builder

	b.WriteString(theme.HelpLabelStyle.Render("tasks"))
	b.WriteString("\n")

	for i, task := range m.taskList {
		marker := " "
		if i == m.cursor {
			marker = ">"
		}

		box := "[ ]"
		if task.Done {
			box = "[x]"
		}

		line := fmt.Sprintf("%s %s %s", marker, box, task.Title)
		if task.Pomodoros > 0 {
			line += fmt.Sprintf(" (%d)", task.Pomodoros)
		}

		switch {
		case task.Done:
			line = theme.TaskDoneStyle.Render(line)
		case i == m.cursor:
			line = theme.TaskSelectedStyle.Render(line)
		default:
			line = theme.TaskStyle.Render(line)
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) taskFormView() string {
	if m.taskForm == nil {
		return ""
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(m.taskForm.View())
}

func (m Model) helpView() string {
	rows := [][2]string{
		{"space", "start or pause the timer"},
		{"s", "skip to the next session"},
		{"r", "reset the current session"},
		{"m", "play or pause music"},
		{"n / b", "next / previous station"},
		{"a", "add a task"},
		{"j / k", "move the task cursor"},
		{"d", "toggle task done"},
		{"x", "delete the selected task"},
		{"h / ?", "this screen"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString(theme.TitleStyle.Render("focado · keyboard shortcuts"))
	b.WriteString("\n\n")
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			theme.HelpShortcutStyle.Render(fmt.Sprintf("%-7s", row[0])),
			theme.HelpLabelStyle.Render(row[1])))
	}
	b.WriteString("\n")
	b.WriteString(theme.HelpStyle.Render("press any key to return"))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
