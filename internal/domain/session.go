package domain

import (
	"fmt"
	"time"
)

// SessionType represents the kind of interval being timed
type SessionType string

const (
	SessionWork       SessionType = "work"
	SessionShortBreak SessionType = "short_break"
	SessionLongBreak  SessionType = "long_break"
)

// Session type symbols (Unicode)
const (
	SymbolWork       = "●" // Red - focused work
	SymbolShortBreak = "○" // Green - short break
	SymbolLongBreak  = "◎" // Cyan - long break
)

// Label returns a human-readable name for the session type
func (s SessionType) Label() string {
	switch s {
	case SessionWork:
		return "Work"
	case SessionShortBreak:
		return "Short Break"
	case SessionLongBreak:
		return "Long Break"
	default:
		return string(s)
	}
}

// Symbol returns the session type's Unicode marker
func (s SessionType) Symbol() string {
	switch s {
	case SessionShortBreak:
		return SymbolShortBreak
	case SessionLongBreak:
		return SymbolLongBreak
	default:
		return SymbolWork
	}
}

// IsBreak reports whether the session type is a break
func (s SessionType) IsBreak() bool {
	return s == SessionShortBreak || s == SessionLongBreak
}

// TimerConfig is the immutable per-run timer configuration.
// All durations are minutes; everything must be positive.
// Validation happens at the CLI boundary before an engine is built.
type TimerConfig struct {
	WorkMinutes              int
	ShortBreakMinutes        int
	LongBreakMinutes         int
	PomodorosBeforeLongBreak int
}

// Validate checks that every field is positive
func (c TimerConfig) Validate() error {
	if c.WorkMinutes <= 0 {
		return fmt.Errorf("work duration must be positive, got %d", c.WorkMinutes)
	}
	if c.ShortBreakMinutes <= 0 {
		return fmt.Errorf("short break duration must be positive, got %d", c.ShortBreakMinutes)
	}
	if c.LongBreakMinutes <= 0 {
		return fmt.Errorf("long break duration must be positive, got %d", c.LongBreakMinutes)
	}
	if c.PomodorosBeforeLongBreak <= 0 {
		return fmt.Errorf("pomodoros before long break must be positive, got %d", c.PomodorosBeforeLongBreak)
	}
	return nil
}

// DurationMinutes returns the configured minutes for a session type
func (c TimerConfig) DurationMinutes(session SessionType) int {
	switch session {
	case SessionShortBreak:
		return c.ShortBreakMinutes
	case SessionLongBreak:
		return c.LongBreakMinutes
	default:
		return c.WorkMinutes
	}
}

// DurationSeconds returns the configured seconds for a session type
func (c TimerConfig) DurationSeconds(session SessionType) int {
	return c.DurationMinutes(session) * 60
}

// EngineState is the engine's observable snapshot.
// Engines hand out copies of this struct; mutating one never
// touches engine internals.
type EngineState struct {
	CurrentSession     SessionType
	TimeRemaining      int // seconds
	IsRunning          bool
	CompletedPomodoros int
}

// HistoryEntry is one recorded session completion
type HistoryEntry struct {
	ID              string
	SessionType     SessionType
	DurationMinutes int
	CompletedAt     time.Time
	Date            string // YYYY-MM-DD
	PomodoroNumber  int    // 1-based ordinal among the day's work entries, 0 for breaks
}

// Task is a todo item pomodoros are logged against
type Task struct {
	ID        string
	Title     string
	Done      bool
	Pomodoros int
	Position  int
	CreatedAt time.Time
}

// DayStats aggregates one calendar day of history
type DayStats struct {
	Date         string
	Pomodoros    int
	Breaks       int
	TotalMinutes int
}

// FormatTime renders non-negative seconds as zero-padded MM:SS.
// Minutes may exceed 59; there is no hour rollover.
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
