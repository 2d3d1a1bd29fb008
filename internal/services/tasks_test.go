package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focado/internal/domain"
)

// fakeTaskRepo is an in-memory ports.TaskRepository
type fakeTaskRepo struct {
	tasks []domain.Task
}

func (r *fakeTaskRepo) ListTasks(_ context.Context) ([]domain.Task, error) {
	return r.tasks, nil
}

func (r *fakeTaskRepo) AddTask(_ context.Context, task domain.Task) error {
	r.tasks = append(r.tasks, task)
	return nil
}

func (r *fakeTaskRepo) SetTaskDone(_ context.Context, id string, done bool) error {
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			r.tasks[i].Done = done
			return nil
		}
	}
	return fmt.Errorf("task %s not found", id)
}

func (r *fakeTaskRepo) DeleteTask(_ context.Context, id string) error {
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("task %s not found", id)
}

func (r *fakeTaskRepo) IncrementTaskPomodoros(_ context.Context, id string) error {
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			r.tasks[i].Pomodoros++
			return nil
		}
	}
	return fmt.Errorf("task %s not found", id)
}

func TestTaskAdd_AssignsIDAndPosition(t *testing.T) {
	service := NewTaskService(&fakeTaskRepo{})
	ctx := context.Background()

	first, err := service.Add(ctx, "write report")
	require.NoError(t, err)
	second, err := service.Add(ctx, "  review PR  ")
	require.NoError(t, err)

	assert.NotEmpty(t, first.ID)
	assert.Equal(t, 1, first.Position)
	assert.Equal(t, 2, second.Position)
	assert.Equal(t, "review PR", second.Title, "titles are trimmed")
}

func TestTaskAdd_RejectsEmptyTitle(t *testing.T) {
	service := NewTaskService(&fakeTaskRepo{})

	_, err := service.Add(context.Background(), "   ")

	assert.Error(t, err)
}

func TestToggleDone_FlipsFlag(t *testing.T) {
	repo := &fakeTaskRepo{}
	service := NewTaskService(repo)
	ctx := context.Background()

	task, err := service.Add(ctx, "deep work")
	require.NoError(t, err)

	require.NoError(t, service.ToggleDone(ctx, task.ID))
	assert.True(t, repo.tasks[0].Done)

	require.NoError(t, service.ToggleDone(ctx, task.ID))
	assert.False(t, repo.tasks[0].Done)

	assert.Error(t, service.ToggleDone(ctx, "missing"))
}

func TestActiveTask_FirstUndone(t *testing.T) {
	repo := &fakeTaskRepo{}
	service := NewTaskService(repo)
	ctx := context.Background()

	done, err := service.Add(ctx, "already finished")
	require.NoError(t, err)
	require.NoError(t, service.ToggleDone(ctx, done.ID))
	next, err := service.Add(ctx, "up next")
	require.NoError(t, err)

	active, err := service.ActiveTask(ctx)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, next.ID, active.ID)
}

func TestActiveTask_NoneWhenAllDone(t *testing.T) {
	service := NewTaskService(&fakeTaskRepo{})

	active, err := service.ActiveTask(context.Background())

	require.NoError(t, err)
	assert.Nil(t, active)
}

func TestLogPomodoro_CreditsActiveTask(t *testing.T) {
	repo := &fakeTaskRepo{}
	service := NewTaskService(repo)
	ctx := context.Background()

	task, err := service.Add(ctx, "deep work")
	require.NoError(t, err)

	require.NoError(t, service.LogPomodoro(ctx))
	require.NoError(t, service.LogPomodoro(ctx))

	assert.Equal(t, 2, repo.tasks[0].Pomodoros)
	assert.Equal(t, task.ID, repo.tasks[0].ID)
}

func TestLogPomodoro_NoActiveTaskIsNoOp(t *testing.T) {
	service := NewTaskService(&fakeTaskRepo{})

	assert.NoError(t, service.LogPomodoro(context.Background()))
}
