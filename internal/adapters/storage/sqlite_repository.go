package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"focado/internal/domain"
	"focado/internal/logging"
	"focado/internal/ports"
)

// SQLiteRepository implements ports.HistoryRepository and
// ports.TaskRepository using GORM over a single database file
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var (
	_ ports.HistoryRepository = (*SQLiteRepository)(nil)
	_ ports.TaskRepository    = (*SQLiteRepository)(nil)
)

// gormLogger wraps the focado logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error", "error", err, "duration", elapsed, "sql", sql, "rows", rows)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query", "duration", elapsed, "sql", sql, "rows", rows)
	} else {
		logging.Logger.Debug("gorm query", "duration", elapsed, "sql", sql, "rows", rows)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("FOCADO_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository creates a new SQLiteRepository
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	// Expand home directory if present
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL keeps the TUI responsive while the completion callback writes
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&HistoryEntryModel{}, &TaskModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the underlying database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Add appends one history entry
func (r *SQLiteRepository) Add(ctx context.Context, entry domain.HistoryEntry) error {
	model := entryToModel(entry)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return fmt.Errorf("failed to add history entry: %w", err)
	}
	return nil
}

// List returns all history entries, oldest first
func (r *SQLiteRepository) List(ctx context.Context) ([]domain.HistoryEntry, error) {
	var models []HistoryEntryModel
	if err := r.db.WithContext(ctx).Order("completed_at ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	entries := make([]domain.HistoryEntry, len(models))
	for i, m := range models {
		entries[i] = entryToDomain(m)
	}
	return entries, nil
}

// ListByDate returns one calendar day's entries, oldest first
func (r *SQLiteRepository) ListByDate(ctx context.Context, date string) ([]domain.HistoryEntry, error) {
	var models []HistoryEntryModel
	if err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Order("completed_at ASC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list history for %s: %w", date, err)
	}

	entries := make([]domain.HistoryEntry, len(models))
	for i, m := range models {
		entries[i] = entryToDomain(m)
	}
	return entries, nil
}

// CountWorkOnDate counts completed work sessions on a calendar day
func (r *SQLiteRepository) CountWorkOnDate(ctx context.Context, date string) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&HistoryEntryModel{}).
		Where("date = ? AND session_type = ?", date, string(domain.SessionWork)).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count work sessions: %w", err)
	}
	return int(count), nil
}

// TotalPomodoros counts all completed work sessions
func (r *SQLiteRepository) TotalPomodoros(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&HistoryEntryModel{}).
		Where("session_type = ?", string(domain.SessionWork)).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count pomodoros: %w", err)
	}
	return int(count), nil
}

// ListTasks returns all tasks in position order
func (r *SQLiteRepository) ListTasks(ctx context.Context) ([]domain.Task, error) {
	var models []TaskModel
	if err := r.db.WithContext(ctx).Order("position ASC, created_at ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	tasks := make([]domain.Task, len(models))
	for i, m := range models {
		tasks[i] = taskToDomain(m)
	}
	return tasks, nil
}

// AddTask creates a task
func (r *SQLiteRepository) AddTask(ctx context.Context, task domain.Task) error {
	model := taskToModel(task)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return fmt.Errorf("failed to add task: %w", err)
	}
	return nil
}

// SetTaskDone updates a task's done flag
func (r *SQLiteRepository) SetTaskDone(ctx context.Context, id string, done bool) error {
	result := r.db.WithContext(ctx).
		Model(&TaskModel{}).
		Where("id = ?", id).
		Update("done", done)
	if result.Error != nil {
		return fmt.Errorf("failed to update task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("task %s not found", id)
	}
	return nil
}

// DeleteTask removes a task
func (r *SQLiteRepository) DeleteTask(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&TaskModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("task %s not found", id)
	}
	return nil
}

// IncrementTaskPomodoros adds one completed pomodoro to a task
func (r *SQLiteRepository) IncrementTaskPomodoros(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Model(&TaskModel{}).
		Where("id = ?", id).
		Update("pomodoros", gorm.Expr("pomodoros + 1"))
	if result.Error != nil {
		return fmt.Errorf("failed to increment task pomodoros: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("task %s not found", id)
	}
	return nil
}
