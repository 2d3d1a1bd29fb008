package config

import (
	"encoding/json"
	"fmt"
	"os"

	"focado/internal/domain"
	"focado/internal/logging"
)

// Timer defaults
const (
	DefaultWorkMinutes              = 25
	DefaultShortBreakMinutes        = 5
	DefaultLongBreakMinutes         = 15
	DefaultPomodorosBeforeLongBreak = 4
)

// DefaultMusicMode is the music mode used when nothing is configured
const DefaultMusicMode = "off"

// StationSetting is one catalog entry in settings.json
type StationSetting struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Settings represents the structure of $FOCADO_HOME/settings.json.
// All fields are optional; pointers distinguish "absent" from zero.
type Settings struct {
	Debug                    *bool            `json:"debug,omitempty"`
	LongBreakMinutes         *int             `json:"long_break_minutes,omitempty"`
	MaxLogFiles              *int             `json:"max_log_files,omitempty"`
	MusicMode                string           `json:"music_mode,omitempty"`
	PomodorosBeforeLongBreak *int             `json:"pomodoros_before_long_break,omitempty"`
	ShortBreakMinutes        *int             `json:"short_break_minutes,omitempty"`
	SoundEnabled             *bool            `json:"sound_enabled,omitempty"`
	SpotifyPollSeconds       *int             `json:"spotify_poll_seconds,omitempty"`
	Stations                 []StationSetting `json:"stations,omitempty"`
	WorkMinutes              *int             `json:"work_minutes,omitempty"`
}

// LoadSettings loads settings from $FOCADO_HOME/settings.json.
// A missing file is not an error. A file that fails to decode is
// treated as absent (fail closed to defaults) rather than partially
// trusted; the decode error is logged.
func LoadSettings() *Settings {
	path := GetSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Logger.Warn("Failed to read settings file, using defaults", "path", path, "error", err)
		}
		return &Settings{}
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		logging.Logger.Warn("Invalid settings.json, using defaults", "path", path, "error", err)
		return &Settings{}
	}

	return &settings
}

// SaveSettings saves settings to $FOCADO_HOME/settings.json
func SaveSettings(settings *Settings) error {
	if err := os.MkdirAll(GetFocadoHome(), 0755); err != nil {
		return fmt.Errorf("failed to create focado home: %w", err)
	}

	path := GetSettingsPath()
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

// TimerConfig resolves the settings into a timer configuration,
// filling absent fields with the defaults
func (s *Settings) TimerConfig() domain.TimerConfig {
	cfg := domain.TimerConfig{
		WorkMinutes:              DefaultWorkMinutes,
		ShortBreakMinutes:        DefaultShortBreakMinutes,
		LongBreakMinutes:         DefaultLongBreakMinutes,
		PomodorosBeforeLongBreak: DefaultPomodorosBeforeLongBreak,
	}
	if s.WorkMinutes != nil {
		cfg.WorkMinutes = *s.WorkMinutes
	}
	if s.ShortBreakMinutes != nil {
		cfg.ShortBreakMinutes = *s.ShortBreakMinutes
	}
	if s.LongBreakMinutes != nil {
		cfg.LongBreakMinutes = *s.LongBreakMinutes
	}
	if s.PomodorosBeforeLongBreak != nil {
		cfg.PomodorosBeforeLongBreak = *s.PomodorosBeforeLongBreak
	}
	return cfg
}

// StationCatalog returns the configured stations, or the built-in
// catalog when settings carry none. Entries missing a URL are dropped.
func (s *Settings) StationCatalog() []domain.Station {
	if len(s.Stations) == 0 {
		return domain.DefaultStations
	}

	stations := make([]domain.Station, 0, len(s.Stations))
	for _, st := range s.Stations {
		if st.URL == "" {
			continue
		}
		name := st.Name
		if name == "" {
			name = st.URL
		}
		stations = append(stations, domain.Station{Name: name, URL: st.URL})
	}

	if len(stations) == 0 {
		return domain.DefaultStations
	}
	return stations
}
