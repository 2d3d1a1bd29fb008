package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		seconds  int
		expected string
	}{
		{0, "00:00"},
		{59, "00:59"},
		{60, "01:00"},
		{65, "01:05"},
		{900, "15:00"},
		{1500, "25:00"},
		{3661, "61:01"}, // minutes exceed 59, no hour rollover
		{-5, "00:00"},   // clamped
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatTime(tt.seconds))
		})
	}
}

func TestTimerConfig_Validate(t *testing.T) {
	valid := TimerConfig{
		WorkMinutes:              25,
		ShortBreakMinutes:        5,
		LongBreakMinutes:         15,
		PomodorosBeforeLongBreak: 4,
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*TimerConfig)
	}{
		{"zero work", func(c *TimerConfig) { c.WorkMinutes = 0 }},
		{"negative work", func(c *TimerConfig) { c.WorkMinutes = -1 }},
		{"zero short break", func(c *TimerConfig) { c.ShortBreakMinutes = 0 }},
		{"zero long break", func(c *TimerConfig) { c.LongBreakMinutes = 0 }},
		{"zero cycle", func(c *TimerConfig) { c.PomodorosBeforeLongBreak = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestTimerConfig_DurationSeconds(t *testing.T) {
	cfg := TimerConfig{
		WorkMinutes:              25,
		ShortBreakMinutes:        5,
		LongBreakMinutes:         15,
		PomodorosBeforeLongBreak: 4,
	}

	assert.Equal(t, 1500, cfg.DurationSeconds(SessionWork))
	assert.Equal(t, 300, cfg.DurationSeconds(SessionShortBreak))
	assert.Equal(t, 900, cfg.DurationSeconds(SessionLongBreak))
}

func TestSessionType_Label(t *testing.T) {
	assert.Equal(t, "Work", SessionWork.Label())
	assert.Equal(t, "Short Break", SessionShortBreak.Label())
	assert.Equal(t, "Long Break", SessionLongBreak.Label())
}

func TestSessionType_IsBreak(t *testing.T) {
	assert.False(t, SessionWork.IsBreak())
	assert.True(t, SessionShortBreak.IsBreak())
	assert.True(t, SessionLongBreak.IsBreak())
}
