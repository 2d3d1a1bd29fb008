package server

import (
	"context"
	"fmt"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"

	"focado/internal/adapters/storage"
	"focado/internal/audio"
	"focado/internal/config"
	"focado/internal/domain"
	"focado/internal/engine"
	"focado/internal/logging"
	"focado/internal/services"
	"focado/internal/ui"
)

// sessionModel wraps ui.Model to release per-session resources
type sessionModel struct {
	inner     tea.Model
	sessionID string
	startTime time.Time
	cleanup   func()
}

func (s *sessionModel) Init() tea.Cmd {
	return s.inner.Init()
}

func (s *sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.QuitMsg); ok {
		s.cleanup()
		logging.Logger.Info("SSH session ended",
			"session_id", s.sessionID,
			"duration", time.Since(s.startTime).String())
	}

	inner, cmd := s.inner.Update(msg)
	s.inner = inner
	return s, cmd
}

func (s *sessionModel) View() string {
	return s.inner.View()
}

// teaHandler builds a timer model for each SSH session. Sessions get
// private engines over the shared history database; audio stays off
// because any player process would play on the host, not the client.
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"user", sess.User(),
		"remote_addr", sess.RemoteAddr().String(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	repo, err := storage.NewSQLiteRepository(s.dbPath)
	if err != nil {
		logging.Logger.Error("Failed to open database for SSH session",
			"error", err,
			"session_id", sessionID)
		return errorModel{err}, nil
	}

	cfg := s.settings.TimerConfig()
	if err := cfg.Validate(); err != nil {
		logging.Logger.Warn("Invalid timer settings, using defaults", "error", err)
		cfg = (&config.Settings{}).TimerConfig()
	}

	eng := engine.New(cfg)
	audioCtrl := audio.NewController(audio.ModeOff, nil, "", 0)
	historyService := services.NewHistoryService(repo)
	taskService := services.NewTaskService(repo)
	feed := ui.NewEngineFeed()

	eng.OnStateChange(feed.StateChanged)
	eng.OnSessionComplete(func(ended domain.SessionType, next domain.EngineState) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if _, err := historyService.Record(ctx, ended, cfg.DurationMinutes(ended), time.Now()); err != nil {
			logging.Logger.Error("Failed to record session", "error", err, "session_id", sessionID)
		}
		if ended == domain.SessionWork {
			if err := taskService.LogPomodoro(ctx); err != nil {
				logging.Logger.Error("Failed to credit pomodoro", "error", err, "session_id", sessionID)
			}
		}
		feed.SessionCompleted(ended, next)
	})

	var once sync.Once
	cleanup := func() {
		once.Do(func() {
			eng.Pause()
			if err := repo.Close(); err != nil {
				logging.Logger.Error("Failed to close store for SSH session",
					"error", err,
					"session_id", sessionID)
			}
		})
	}

	// An abrupt disconnect never delivers tea.QuitMsg; release on the
	// session context too so the engine's ticker cannot leak.
	go func() {
		<-sess.Context().Done()
		cleanup()
	}()

	model := &sessionModel{
		inner:     ui.NewModel(eng, audioCtrl, taskService, feed),
		sessionID: sessionID,
		startTime: time.Now(),
		cleanup:   cleanup,
	}

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// errorModel displays an error and exits
type errorModel struct {
	err error
}

func (e errorModel) Init() tea.Cmd {
	return nil
}

func (e errorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return e, tea.Quit
}

func (e errorModel) View() string {
	return fmt.Sprintf("Error: %v\n", e.err)
}
