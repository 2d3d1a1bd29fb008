package server

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	wishlogging "github.com/charmbracelet/wish/logging"
	"golang.org/x/sync/errgroup"

	"focado/internal/config"
	"focado/internal/logging"
)

const shutdownTimeout = 30 * time.Second

// Server serves the timer UI over SSH. Each session gets its own
// engine; the history database is shared.
type Server struct {
	host       string
	port       string
	dbPath     string
	settings   *config.Settings
	wishServer *ssh.Server
}

// NewServer creates the SSH server. The host key lives under
// $FOCADO_HOME/ssh and is generated by wish on first start.
func NewServer(host, port, dbPath string, settings *config.Settings) (*Server, error) {
	s := &Server{
		host:     host,
		port:     port,
		dbPath:   dbPath,
		settings: settings,
	}

	sshDir := config.GetSSHDir()
	if err := os.MkdirAll(sshDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create SSH directory: %w", err)
	}

	// Middleware executes in reverse order (last to first)
	wishServer, err := wish.NewServer(
		wish.WithAddress(fmt.Sprintf("%s:%s", host, port)),
		wish.WithHostKeyPath(filepath.Join(sshDir, "id_ed25519")),
		wish.WithPublicKeyAuth(s.publicKeyAuth),
		wish.WithMiddleware(
			bubbletea.Middleware(s.teaHandler),
			activeterm.Middleware(), // Require PTY
			wishlogging.Middleware(),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH server: %w", err)
	}

	s.wishServer = wishServer
	return s, nil
}

// Start serves until the context is cancelled or a termination signal
// arrives, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	logging.Logger.Info("Starting SSH server", "address", addr)
	fmt.Printf("focado SSH server listening on %s\n", addr)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := s.wishServer.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("SSH server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		done := make(chan os.Signal, 1)
		signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(done)

		select {
		case sig := <-done:
			logging.Logger.Info("Shutting down SSH server", "signal", sig.String())
		case <-ctx.Done():
			logging.Logger.Info("Shutting down SSH server", "reason", ctx.Err())
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := s.wishServer.Shutdown(shutdownCtx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("failed to shutdown SSH server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logging.Logger.Info("SSH server stopped")
	return nil
}
