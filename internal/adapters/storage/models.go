package storage

import "time"

// HistoryEntryModel is the GORM model for the history table
type HistoryEntryModel struct {
	ID              string    `gorm:"primaryKey"`
	CompletedAt     time.Time `gorm:"not null;index:idx_completed_at"`
	CreatedAt       time.Time
	Date            string `gorm:"not null;index:idx_date"`
	DurationMinutes int    `gorm:"not null;default:0"`
	PomodoroNumber  int    `gorm:"not null;default:0"`
	SessionType     string `gorm:"not null;check:session_type IN ('work','short_break','long_break')"`
	UpdatedAt       time.Time
}

// TableName specifies the table name for GORM
func (HistoryEntryModel) TableName() string { return "history_entries" }

// TaskModel is the GORM model for the tasks table
type TaskModel struct {
	ID        string `gorm:"primaryKey"`
	CreatedAt time.Time
	Done      bool   `gorm:"not null;default:false"`
	Pomodoros int    `gorm:"not null;default:0"`
	Position  int    `gorm:"not null;default:0;index:idx_task_position"`
	Title     string `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (TaskModel) TableName() string { return "tasks" }
