package audio

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"focado/internal/logging"
)

const (
	spotifyNowPlayingURL = "https://api.spotify.com/v1/me/player/currently-playing"

	// DefaultSpotifyPollInterval is how often the now-playing status
	// is refreshed when settings don't override it
	DefaultSpotifyPollInterval = 10 * time.Second

	spotifyRequestTimeout = 5 * time.Second
)

// spotifyPoller periodically fetches the currently-playing track for
// display. It only ever writes a cached string through onUpdate and
// never touches engine or transport state. Poll failures leave the
// cached value unchanged.
type spotifyPoller struct {
	token    string
	interval time.Duration
	endpoint string
	client   *http.Client
	onUpdate func(track string)

	done     chan struct{}
	stopOnce sync.Once
}

func newSpotifyPoller(token string, interval time.Duration, onUpdate func(string)) *spotifyPoller {
	if interval <= 0 {
		interval = DefaultSpotifyPollInterval
	}
	return &spotifyPoller{
		token:    token,
		interval: interval,
		endpoint: spotifyNowPlayingURL,
		client:   &http.Client{Timeout: spotifyRequestTimeout},
		onUpdate: onUpdate,
		done:     make(chan struct{}),
	}
}

// Start launches the polling loop
func (p *spotifyPoller) Start() {
	go p.run()
}

// Stop cancels the polling loop; safe to call multiple times
func (p *spotifyPoller) Stop() {
	p.stopOnce.Do(func() { close(p.done) })
}

func (p *spotifyPoller) run() {
	p.poll()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.poll()
		case <-p.done:
			return
		}
	}
}

// nowPlayingResponse is the slice of the Spotify response we display
type nowPlayingResponse struct {
	IsPlaying bool `json:"is_playing"`
	Item      struct {
		Name    string `json:"name"`
		Artists []struct {
			Name string `json:"name"`
		} `json:"artists"`
	} `json:"item"`
}

func (p *spotifyPoller) poll() {
	req, err := http.NewRequest(http.MethodGet, p.endpoint, nil)
	if err != nil {
		logging.Logger.Warn("Failed to build Spotify request", "error", err)
		return
	}
	req.Header.Set("Authorization", "Bearer "+p.token)

	resp, err := p.client.Do(req)
	if err != nil {
		// Timeout or network failure: keep the cached value
		logging.Logger.Debug("Spotify poll failed", "error", err)
		return
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Parsed below
	case http.StatusNoContent:
		p.onUpdate("")
		return
	default:
		logging.Logger.Debug("Spotify poll rejected", "status", resp.StatusCode)
		return
	}

	var body nowPlayingResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		logging.Logger.Debug("Failed to decode Spotify response", "error", err)
		return
	}

	if !body.IsPlaying || body.Item.Name == "" {
		p.onUpdate("")
		return
	}

	artists := make([]string, 0, len(body.Item.Artists))
	for _, a := range body.Item.Artists {
		if a.Name != "" {
			artists = append(artists, a.Name)
		}
	}

	track := body.Item.Name
	if len(artists) > 0 {
		track = strings.Join(artists, ", ") + " - " + track
	}
	p.onUpdate(track)
}
