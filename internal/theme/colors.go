package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "203" // Tomato - app name, titles
	ColorSecondary Color = "86"  // Cyan - subtitles
)

// Session type colors
const (
	ColorWork       Color = "1" // Red - focused work
	ColorShortBreak Color = "2" // Green - short break
	ColorLongBreak  Color = "6" // Cyan - long break
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
)

// Accent colors
const (
	ColorMusic    Color = "141" // Purple - audio status line
	ColorPaused   Color = "3"   // Yellow - paused timer
	ColorProgress Color = "203" // Tomato - progress bar fill
	ColorTaskDone Color = "8"   // Gray - completed tasks
)
