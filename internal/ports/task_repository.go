package ports

import (
	"context"

	"focado/internal/domain"
)

// TaskReader reads tasks in list order
type TaskReader interface {
	ListTasks(ctx context.Context) ([]domain.Task, error)
}

// TaskWriter mutates tasks
type TaskWriter interface {
	AddTask(ctx context.Context, task domain.Task) error
	SetTaskDone(ctx context.Context, id string, done bool) error
	DeleteTask(ctx context.Context, id string) error
	IncrementTaskPomodoros(ctx context.Context, id string) error
}

// TaskRepository is the composite interface
type TaskRepository interface {
	TaskReader
	TaskWriter
}
