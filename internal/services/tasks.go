package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"focado/internal/domain"
	"focado/internal/logging"
	"focado/internal/ports"
)

// TaskService manages the todo list pomodoros are logged against
type TaskService struct {
	repo ports.TaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(repo ports.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

// Add appends a task at the end of the list
func (s *TaskService) Add(ctx context.Context, title string) (domain.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.Task{}, fmt.Errorf("task title cannot be empty")
	}

	existing, err := s.repo.ListTasks(ctx)
	if err != nil {
		return domain.Task{}, err
	}

	task := domain.Task{
		ID:       uuid.New().String(),
		Title:    title,
		Position: len(existing) + 1,
	}
	if err := s.repo.AddTask(ctx, task); err != nil {
		return domain.Task{}, err
	}

	logging.Logger.Info("Task added", "title", title)
	return task, nil
}

// List returns all tasks in list order
func (s *TaskService) List(ctx context.Context) ([]domain.Task, error) {
	return s.repo.ListTasks(ctx)
}

// ToggleDone flips a task's done flag
func (s *TaskService) ToggleDone(ctx context.Context, id string) error {
	tasks, err := s.repo.ListTasks(ctx)
	if err != nil {
		return err
	}
	for _, task := range tasks {
		if task.ID == id {
			return s.repo.SetTaskDone(ctx, id, !task.Done)
		}
	}
	return fmt.Errorf("task %s not found", id)
}

// Delete removes a task
func (s *TaskService) Delete(ctx context.Context, id string) error {
	return s.repo.DeleteTask(ctx, id)
}

// ActiveTask returns the first undone task, or nil when everything is
// done (or the list is empty)
func (s *TaskService) ActiveTask(ctx context.Context) (*domain.Task, error) {
	tasks, err := s.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	for _, task := range tasks {
		if !task.Done {
			t := task
			return &t, nil
		}
	}
	return nil, nil
}

// LogPomodoro credits one completed work session to the active task.
// A missing active task is not an error; the pomodoro just isn't
// attributed to anything.
func (s *TaskService) LogPomodoro(ctx context.Context) error {
	active, err := s.ActiveTask(ctx)
	if err != nil {
		return err
	}
	if active == nil {
		return nil
	}

	if err := s.repo.IncrementTaskPomodoros(ctx, active.ID); err != nil {
		return err
	}
	logging.Logger.Debug("Pomodoro credited to task", "task", active.Title)
	return nil
}
