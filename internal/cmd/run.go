package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	adaptersound "focado/internal/adapters/sound"
	"focado/internal/audio"
	"focado/internal/config"
	"focado/internal/domain"
	"focado/internal/engine"
	"focado/internal/logging"
	"focado/internal/ui"
)

// RunCmd starts the interactive timer. Duration flags are pointers so
// "given on the command line" is distinguishable from absent; an
// explicit flag always wins over settings.json, even when it repeats
// the default value.
type RunCmd struct {
	Work         *int   `help:"Work session length in minutes (default 25)"`
	ShortBreak   *int   `help:"Short break length in minutes (default 5)"`
	LongBreak    *int   `help:"Long break length in minutes (default 15)"`
	Cycle        *int   `help:"Work sessions before a long break (default 4)"`
	Music        string `help:"Music mode" default:"off" enum:"radio,spotify,off"`
	SpotifyToken string `help:"Spotify OAuth token for the now-playing display"`
}

// Run executes the timer TUI
func (r *RunCmd) Run(cli *CLI) error {
	settings := cli.Settings()

	cfg := r.timerConfig(settings)
	if err := cfg.Validate(); err != nil {
		return err
	}

	mode, err := audio.ParseMode(r.musicMode(settings))
	if err != nil {
		return err
	}

	pollInterval := audio.DefaultSpotifyPollInterval
	if settings.SpotifyPollSeconds != nil && *settings.SpotifyPollSeconds > 0 {
		pollInterval = time.Duration(*settings.SpotifyPollSeconds) * time.Second
	}

	logging.Logger.Info("Starting focado timer",
		"work", cfg.WorkMinutes,
		"short_break", cfg.ShortBreakMinutes,
		"long_break", cfg.LongBreakMinutes,
		"cycle", cfg.PomodorosBeforeLongBreak,
		"music", mode)

	audioCtrl := audio.NewController(mode, settings.StationCatalog(), r.spotifyToken(), pollInterval)
	defer audioCtrl.Cleanup()

	soundEnabled := true
	if settings.SoundEnabled != nil {
		soundEnabled = *settings.SoundEnabled
	}

	eng := engine.New(cfg)
	feed := ui.NewEngineFeed()

	eng.OnStateChange(feed.StateChanged)
	eng.OnSessionComplete(func(ended domain.SessionType, next domain.EngineState) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if _, err := cli.Container.HistoryService.Record(ctx, ended, cfg.DurationMinutes(ended), time.Now()); err != nil {
			logging.Logger.Error("Failed to record session", "error", err)
		}
		if ended == domain.SessionWork {
			if err := cli.Container.TaskService.LogPomodoro(ctx); err != nil {
				logging.Logger.Error("Failed to credit pomodoro", "error", err)
			}
		}

		if soundEnabled {
			event := adaptersound.EventBreakComplete
			if ended == domain.SessionWork {
				event = adaptersound.EventWorkComplete
			}
			if err := cli.Container.SoundPlayer.PlaySoundForEvent(event); err != nil {
				logging.Logger.Warn("Failed to play notification sound", "error", err)
			}
		}

		feed.SessionCompleted(ended, next)
	})

	model := ui.NewModel(eng, audioCtrl, cli.Container.TaskService, feed)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	// The engine's ticker must not outlive the UI
	eng.Pause()

	logging.Logger.Info("Timer exited normally")
	return nil
}

// timerConfig resolves durations with flag > settings.json > default
// precedence. Absent flags are nil, so settings never override an
// explicitly given value.
func (r *RunCmd) timerConfig(settings *config.Settings) domain.TimerConfig {
	cfg := settings.TimerConfig()
	if r.Work != nil {
		cfg.WorkMinutes = *r.Work
	}
	if r.ShortBreak != nil {
		cfg.ShortBreakMinutes = *r.ShortBreak
	}
	if r.LongBreak != nil {
		cfg.LongBreakMinutes = *r.LongBreak
	}
	if r.Cycle != nil {
		cfg.PomodorosBeforeLongBreak = *r.Cycle
	}
	return cfg
}

// musicMode resolves the mode with flag > env > settings > default
// precedence. Enum flags must carry a kong default, so an explicit
// "--music off" reads the same as an absent flag and yields to env and
// settings; any other explicit mode always wins.
func (r *RunCmd) musicMode(settings *config.Settings) string {
	if r.Music != config.DefaultMusicMode {
		return r.Music
	}
	if env, ok := os.LookupEnv("FOCADO_MUSIC_MODE"); ok && env != "" {
		return env
	}
	if settings.MusicMode != "" {
		return settings.MusicMode
	}
	return r.Music
}

func (r *RunCmd) spotifyToken() string {
	if r.SpotifyToken != "" {
		return r.SpotifyToken
	}
	return os.Getenv("FOCADO_SPOTIFY_TOKEN")
}
