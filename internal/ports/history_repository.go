package ports

import (
	"context"

	"focado/internal/domain"
)

// HistoryReader reads recorded session completions
type HistoryReader interface {
	List(ctx context.Context) ([]domain.HistoryEntry, error)
	ListByDate(ctx context.Context, date string) ([]domain.HistoryEntry, error)
	CountWorkOnDate(ctx context.Context, date string) (int, error)
	TotalPomodoros(ctx context.Context) (int, error)
}

// HistoryWriter appends session completions
type HistoryWriter interface {
	Add(ctx context.Context, entry domain.HistoryEntry) error
}

// HistoryRepository is the composite interface
type HistoryRepository interface {
	HistoryReader
	HistoryWriter
	Close() error
}
