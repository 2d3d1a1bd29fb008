package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	HelpLabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpShortcutStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)
)

// Timer styles
var (
	ClockStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHighlight)

	ClockPausedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPaused)

	CounterStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	MusicStyle = lipgloss.NewStyle().
			Foreground(ColorMusic)
)

// Session type styles
var (
	WorkStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWork)

	ShortBreakStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorShortBreak)

	LongBreakStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorLongBreak)
)

// Task list styles
var (
	TaskStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	TaskDoneStyle = lipgloss.NewStyle().
			Foreground(ColorTaskDone).
			Strikethrough(true)

	TaskSelectedStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true)
)
