package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"focado/internal/config"
	"focado/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"100"`

	Run       RunCmd       `cmd:"" help:"Start the focado timer (default)" default:"1"`
	History   HistoryCmd   `cmd:"history" help:"Inspect recorded sessions (list, stats, export)"`
	Serve     ServeCmd     `cmd:"serve" help:"Serve the timer over SSH"`
	PlaySound PlaySoundCmd `cmd:"play-sound" help:"Play a notification sound (cross-platform)" hidden:""`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct before parsing
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings.
// Precedence: CLI flags > env vars > settings.json > defaults.
func (c *CLI) AfterApply() error {
	if c.settings != nil {
		if c.MaxLogFiles == 100 {
			if _, hasEnv := os.LookupEnv("FOCADO_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("FOCADO_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Export AFTER initialization so child processes inherit the debug
	// settings and append to the same log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("FOCADO_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("FOCADO_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != 100 {
		os.Setenv("FOCADO_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	container, err := NewContainer()
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Settings returns the settings loaded at startup, never nil
func (c *CLI) Settings() *config.Settings {
	if c.settings == nil {
		return &config.Settings{}
	}
	return c.settings
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
