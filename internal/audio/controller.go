package audio

import (
	"fmt"
	"os/exec"
	"sync"
	"time"

	"focado/internal/domain"
	"focado/internal/logging"
)

// Mode selects the controller's playback backend. It is fixed for the
// controller's lifetime.
type Mode string

const (
	ModeRadio   Mode = "radio"
	ModeSpotify Mode = "spotify"
	ModeOff     Mode = "off"
)

// ParseMode validates a mode string from flags or settings
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeRadio, ModeSpotify, ModeOff:
		return Mode(s), nil
	case "":
		return ModeOff, nil
	default:
		return "", fmt.Errorf("unknown music mode %q (radio, spotify, off)", s)
	}
}

// Status is a read-only snapshot of the controller
type Status struct {
	Mode            Mode
	Playing         bool
	StationName     string
	StationIndex    int
	TotalStations   int
	NowPlaying      string // Spotify cached track, display only
	PlayerAvailable bool
}

// Controller owns zero-or-one live external playback process. All
// failures surface as return values; nothing here may take down the
// host process.
type Controller struct {
	mu sync.Mutex

	mode     Mode
	stations []domain.Station
	index    int

	player *playerSpec
	runner ProcessRunner

	proc Process
	gen  int // invalidates the reaper of a replaced process

	nowPlaying string
	poller     *spotifyPoller
}

// NewController builds a controller for the given mode. The player
// probe runs exactly once, here; per-call re-probing is never done.
// The Spotify token is only used for the read-only now-playing poll.
func NewController(mode Mode, stations []domain.Station, spotifyToken string, pollInterval time.Duration) *Controller {
	c := newController(mode, stations, probePlayer(exec.LookPath), execRunner{})

	if mode == ModeSpotify && spotifyToken != "" {
		c.poller = newSpotifyPoller(spotifyToken, pollInterval, c.setNowPlaying)
		c.poller.Start()
	}

	return c
}

func newController(mode Mode, stations []domain.Station, player *playerSpec, runner ProcessRunner) *Controller {
	if len(stations) == 0 {
		stations = domain.DefaultStations
	}
	return &Controller{
		mode:     mode,
		stations: stations,
		player:   player,
		runner:   runner,
	}
}

// Play launches the selected station's stream. Idempotent when a
// process is already live. Returns domain.ErrNoPlayer when the probe
// found nothing, domain.ErrNotApplicable outside radio mode.
func (c *Controller) Play() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.playLocked()
}

func (c *Controller) playLocked() error {
	if c.mode != ModeRadio {
		return domain.ErrNotApplicable
	}
	if c.proc != nil {
		return nil
	}
	if c.player == nil {
		return domain.ErrNoPlayer
	}

	station := c.stations[c.index]
	proc, err := c.runner.Start(c.player.Binary, c.player.args(station.URL)...)
	if err != nil {
		logging.Logger.Warn("Failed to start player",
			"player", c.player.Binary,
			"station", station.Name,
			"error", err)
		return fmt.Errorf("failed to start %s: %w", c.player.Binary, err)
	}

	c.proc = proc
	c.gen++
	go c.reap(proc, c.gen)

	logging.Logger.Info("Playback started", "player", c.player.Binary, "station", station.Name)
	return nil
}

// reap waits on the spawned process so it never zombies, and clears
// the handle if the player exited on its own
func (c *Controller) reap(proc Process, gen int) {
	_ = proc.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen == gen && c.proc == proc {
		logging.Logger.Debug("Player process exited on its own")
		c.proc = nil
	}
}

// Stop terminates the live process, if any. The handle is cleared
// regardless of the kill outcome so no dangling handle survives.
// Idempotent when nothing is live.
func (c *Controller) Stop() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stopLocked()
}

func (c *Controller) stopLocked() error {
	if c.proc == nil {
		return nil
	}

	err := c.proc.Kill()
	c.proc = nil
	c.gen++

	if err != nil {
		logging.Logger.Warn("Failed to kill player process", "error", err)
		return fmt.Errorf("failed to stop player: %w", err)
	}
	logging.Logger.Info("Playback stopped")
	return nil
}

// Pause stops playback. Streams have no resume-in-place; resuming
// relaunches from the live edge.
func (c *Controller) Pause() error {
	return c.Stop()
}

// Resume is equivalent to Play
func (c *Controller) Resume() error {
	return c.Play()
}

// Toggle flips playback. Returns whether audio is playing afterwards.
func (c *Controller) Toggle() (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.proc != nil {
		return false, c.stopLocked()
	}
	if err := c.playLocked(); err != nil {
		return false, err
	}
	return true, nil
}

// NextStation advances the selection modulo the catalog length,
// restarting playback only if something was live
func (c *Controller) NextStation() error {
	return c.switchStation(1)
}

// PreviousStation retreats the selection modulo the catalog length
func (c *Controller) PreviousStation() error {
	return c.switchStation(-1)
}

func (c *Controller) switchStation(delta int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mode != ModeRadio {
		return domain.ErrNotApplicable
	}

	total := len(c.stations)
	c.index = (c.index + delta + total) % total

	wasLive := c.proc != nil
	logging.Logger.Debug("Station selected",
		"station", c.stations[c.index].Name,
		"index", c.index,
		"was_live", wasLive)

	if !wasLive {
		return nil
	}
	if err := c.stopLocked(); err != nil {
		return err
	}
	return c.playLocked()
}

// IsPlaying reports whether a playback process is live
func (c *Controller) IsPlaying() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.proc != nil
}

// Status returns a snapshot of the controller's current fields
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Status{
		Mode:            c.mode,
		Playing:         c.proc != nil,
		StationIndex:    c.index,
		TotalStations:   len(c.stations),
		NowPlaying:      c.nowPlaying,
		PlayerAvailable: c.player != nil,
	}
	if c.mode == ModeRadio {
		s.StationName = c.stations[c.index].Name
	}
	return s
}

// StatusText renders a one-line status for the UI
func (c *Controller) StatusText() string {
	s := c.Status()

	switch s.Mode {
	case ModeOff:
		return ""
	case ModeSpotify:
		if s.NowPlaying == "" {
			return "spotify: nothing playing"
		}
		return "spotify: " + s.NowPlaying
	default:
		if !s.PlayerAvailable {
			return "no player found"
		}
		if !s.Playing {
			return fmt.Sprintf("%s (%d/%d) paused", s.StationName, s.StationIndex+1, s.TotalStations)
		}
		return fmt.Sprintf("♪ %s (%d/%d)", s.StationName, s.StationIndex+1, s.TotalStations)
	}
}

// Cleanup terminates any live process and stops background polling.
// It must run on every exit path and is safe to call multiple times.
func (c *Controller) Cleanup() {
	c.mu.Lock()
	_ = c.stopLocked()
	poller := c.poller
	c.mu.Unlock()

	if poller != nil {
		poller.Stop()
	}
}

func (c *Controller) setNowPlaying(track string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nowPlaying = track
}
