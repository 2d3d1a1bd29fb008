package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"focado/internal/config"
)

func intPtr(v int) *int {
	return &v
}

func TestTimerConfig_ExplicitFlagBeatsSettings(t *testing.T) {
	// An explicit flag wins even when it repeats the default value
	r := &RunCmd{Work: intPtr(25), Cycle: intPtr(4)}
	settings := &config.Settings{
		WorkMinutes:              intPtr(50),
		PomodorosBeforeLongBreak: intPtr(2),
	}

	cfg := r.timerConfig(settings)

	assert.Equal(t, 25, cfg.WorkMinutes)
	assert.Equal(t, 4, cfg.PomodorosBeforeLongBreak)
}

func TestTimerConfig_SettingsFillAbsentFlags(t *testing.T) {
	r := &RunCmd{}
	settings := &config.Settings{
		WorkMinutes:       intPtr(50),
		ShortBreakMinutes: intPtr(10),
	}

	cfg := r.timerConfig(settings)

	assert.Equal(t, 50, cfg.WorkMinutes)
	assert.Equal(t, 10, cfg.ShortBreakMinutes)
	assert.Equal(t, config.DefaultLongBreakMinutes, cfg.LongBreakMinutes)
	assert.Equal(t, config.DefaultPomodorosBeforeLongBreak, cfg.PomodorosBeforeLongBreak)
}

func TestTimerConfig_DefaultsWhenNothingGiven(t *testing.T) {
	cfg := (&RunCmd{}).timerConfig(&config.Settings{})

	assert.Equal(t, config.DefaultWorkMinutes, cfg.WorkMinutes)
	assert.Equal(t, config.DefaultShortBreakMinutes, cfg.ShortBreakMinutes)
	assert.Equal(t, config.DefaultLongBreakMinutes, cfg.LongBreakMinutes)
	assert.Equal(t, config.DefaultPomodorosBeforeLongBreak, cfg.PomodorosBeforeLongBreak)
}

func TestMusicMode_Precedence(t *testing.T) {
	t.Run("explicit flag wins over settings", func(t *testing.T) {
		r := &RunCmd{Music: "radio"}
		assert.Equal(t, "radio", r.musicMode(&config.Settings{MusicMode: "spotify"}))
	})

	t.Run("env wins over settings", func(t *testing.T) {
		t.Setenv("FOCADO_MUSIC_MODE", "spotify")
		r := &RunCmd{Music: config.DefaultMusicMode}
		assert.Equal(t, "spotify", r.musicMode(&config.Settings{MusicMode: "radio"}))
	})

	t.Run("settings win over default", func(t *testing.T) {
		t.Setenv("FOCADO_MUSIC_MODE", "")
		r := &RunCmd{Music: config.DefaultMusicMode}
		assert.Equal(t, "radio", r.musicMode(&config.Settings{MusicMode: "radio"}))
	})

	t.Run("default when nothing configured", func(t *testing.T) {
		t.Setenv("FOCADO_MUSIC_MODE", "")
		r := &RunCmd{Music: config.DefaultMusicMode}
		assert.Equal(t, config.DefaultMusicMode, r.musicMode(&config.Settings{}))
	})
}

func TestSpotifyToken_FlagBeatsEnv(t *testing.T) {
	t.Setenv("FOCADO_SPOTIFY_TOKEN", "from-env")

	assert.Equal(t, "from-flag", (&RunCmd{SpotifyToken: "from-flag"}).spotifyToken())
	assert.Equal(t, "from-env", (&RunCmd{}).spotifyToken())
}
