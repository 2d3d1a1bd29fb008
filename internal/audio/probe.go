package audio

import (
	"os/exec"

	"focado/internal/logging"
)

// playerSpec describes one supported external player binary and the
// flags that make it stream a URL quietly without video or UI
type playerSpec struct {
	Binary string
	args   func(url string) []string
}

// playerPreference is the fixed probe order. The first binary found on
// PATH at construction time is used for the whole run.
var playerPreference = []playerSpec{
	{
		Binary: "mpv",
		args: func(url string) []string {
			return []string{"--no-video", "--really-quiet", url}
		},
	},
	{
		Binary: "mplayer",
		args: func(url string) []string {
			return []string{"-really-quiet", url}
		},
	},
	{
		Binary: "ffplay",
		args: func(url string) []string {
			return []string{"-nodisp", "-loglevel", "quiet", url}
		},
	},
	{
		Binary: "cvlc",
		args: func(url string) []string {
			return []string{"--intf", "dummy", "--quiet", url}
		},
	},
}

// lookPathFunc matches exec.LookPath, injectable for tests
type lookPathFunc func(file string) (string, error)

// probePlayer walks the preference list once and returns the first
// available player, or nil when none is installed
func probePlayer(lookPath lookPathFunc) *playerSpec {
	for _, spec := range playerPreference {
		if _, err := lookPath(spec.Binary); err == nil {
			logging.Logger.Info("Audio player selected", "player", spec.Binary)
			return &playerSpec{Binary: spec.Binary, args: spec.args}
		}
	}
	logging.Logger.Warn("No audio player found on PATH")
	return nil
}

// ProbePlayerName reports which player binary would be used, or ""
// when none is available. Exposed for display purposes only.
func ProbePlayerName() string {
	if spec := probePlayer(exec.LookPath); spec != nil {
		return spec.Binary
	}
	return ""
}
