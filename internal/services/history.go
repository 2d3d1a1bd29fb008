package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"focado/internal/domain"
	"focado/internal/logging"
	"focado/internal/ports"
)

// HistoryService records completed sessions and aggregates them for
// display and export
type HistoryService struct {
	repo ports.HistoryRepository
}

// NewHistoryService creates a new HistoryService
func NewHistoryService(repo ports.HistoryRepository) *HistoryService {
	return &HistoryService{repo: repo}
}

// Record persists one completed session. For work sessions the
// pomodoro number is its 1-based ordinal among the calendar day's work
// entries; breaks record 0.
func (s *HistoryService) Record(ctx context.Context, sessionType domain.SessionType, durationMinutes int, completedAt time.Time) (domain.HistoryEntry, error) {
	date := completedAt.Format("2006-01-02")

	pomodoroNumber := 0
	if sessionType == domain.SessionWork {
		count, err := s.repo.CountWorkOnDate(ctx, date)
		if err != nil {
			return domain.HistoryEntry{}, fmt.Errorf("failed to number pomodoro: %w", err)
		}
		pomodoroNumber = count + 1
	}

	entry := domain.HistoryEntry{
		ID:              uuid.New().String(),
		SessionType:     sessionType,
		DurationMinutes: durationMinutes,
		CompletedAt:     completedAt,
		Date:            date,
		PomodoroNumber:  pomodoroNumber,
	}

	if err := s.repo.Add(ctx, entry); err != nil {
		return domain.HistoryEntry{}, err
	}

	logging.Logger.Info("Session recorded",
		"type", sessionType,
		"duration_minutes", durationMinutes,
		"pomodoro_number", pomodoroNumber)

	return entry, nil
}

// List returns all recorded entries, oldest first
func (s *HistoryService) List(ctx context.Context) ([]domain.HistoryEntry, error) {
	return s.repo.List(ctx)
}

// Today returns the current day's entries
func (s *HistoryService) Today(ctx context.Context) ([]domain.HistoryEntry, error) {
	return s.repo.ListByDate(ctx, time.Now().Format("2006-01-02"))
}

// Stats aggregates history per calendar day, oldest day first.
// The second return value is the all-time pomodoro total.
func (s *HistoryService) Stats(ctx context.Context) ([]domain.DayStats, int, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, 0, err
	}

	byDate := make(map[string]*domain.DayStats)
	var order []string
	total := 0

	for _, entry := range entries {
		day, ok := byDate[entry.Date]
		if !ok {
			day = &domain.DayStats{Date: entry.Date}
			byDate[entry.Date] = day
			order = append(order, entry.Date)
		}

		day.TotalMinutes += entry.DurationMinutes
		if entry.SessionType == domain.SessionWork {
			day.Pomodoros++
			total++
		} else {
			day.Breaks++
		}
	}

	stats := make([]domain.DayStats, len(order))
	for i, date := range order {
		stats[i] = *byDate[date]
	}
	return stats, total, nil
}

// exportEntry is the JSON shape of one exported history entry
type exportEntry struct {
	ID             string `json:"id"`
	SessionType    string `json:"sessionType"`
	Duration       int    `json:"duration"`
	CompletedAt    string `json:"completedAt"`
	Date           string `json:"date"`
	PomodoroNumber int    `json:"pomodoroNumber"`
}

// exportDocument is the JSON history document layout
type exportDocument struct {
	Entries        []exportEntry `json:"entries"`
	TotalPomodoros int           `json:"totalPomodoros"`
	LastUpdated    string        `json:"lastUpdated"`
}

// Export writes the full history as a single JSON document
func (s *HistoryService) Export(ctx context.Context, w io.Writer) error {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return err
	}

	total, err := s.repo.TotalPomodoros(ctx)
	if err != nil {
		return err
	}

	doc := exportDocument{
		Entries:        make([]exportEntry, len(entries)),
		TotalPomodoros: total,
		LastUpdated:    time.Now().UTC().Format(time.RFC3339),
	}
	for i, entry := range entries {
		doc.Entries[i] = exportEntry{
			ID:             entry.ID,
			SessionType:    string(entry.SessionType),
			Duration:       entry.DurationMinutes,
			CompletedAt:    entry.CompletedAt.UTC().Format(time.RFC3339),
			Date:           entry.Date,
			PomodoroNumber: entry.PomodoroNumber,
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode history export: %w", err)
	}
	return nil
}
