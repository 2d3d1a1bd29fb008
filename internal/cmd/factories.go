package cmd

import (
	adaptersound "focado/internal/adapters/sound"
	adapterstorage "focado/internal/adapters/storage"
	"focado/internal/config"
	"focado/internal/ports"
	"focado/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	HistoryService *services.HistoryService
	TaskService    *services.TaskService
	SoundPlayer    ports.SoundPlayer

	// Internal - for cleanup only
	repo *adapterstorage.SQLiteRepository
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer() (*Container, error) {
	repo, err := adapterstorage.NewSQLiteRepository(config.GetDBPath())
	if err != nil {
		return nil, err
	}

	return &Container{
		HistoryService: services.NewHistoryService(repo),
		TaskService:    services.NewTaskService(repo),
		SoundPlayer:    adaptersound.NewPlayer(),
		repo:           repo,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.repo != nil {
		return c.repo.Close()
	}
	return nil
}
