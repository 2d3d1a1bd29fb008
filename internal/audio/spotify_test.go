package audio

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type trackCache struct {
	mu    sync.Mutex
	track string
	set   bool
}

func (c *trackCache) update(track string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.track = track
	c.set = true
}

func (c *trackCache) get() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.track, c.set
}

func newTestPoller(endpoint string, cache *trackCache) *spotifyPoller {
	p := newSpotifyPoller("test-token", time.Minute, cache.update)
	p.endpoint = endpoint
	return p
}

func TestSpotifyPoll_CachesCurrentTrack(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"is_playing": true,
			"item": {"name": "Aruarian Dance", "artists": [{"name": "Nujabes"}]}
		}`))
	}))
	defer server.Close()

	cache := &trackCache{}
	newTestPoller(server.URL, cache).poll()

	track, set := cache.get()
	require.True(t, set)
	assert.Equal(t, "Nujabes - Aruarian Dance", track)
	assert.Equal(t, "Bearer test-token", gotAuth)
}

func TestSpotifyPoll_MultipleArtists(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"is_playing": true,
			"item": {"name": "Feather", "artists": [{"name": "Nujabes"}, {"name": "Cise Starr"}]}
		}`))
	}))
	defer server.Close()

	cache := &trackCache{}
	newTestPoller(server.URL, cache).poll()

	track, _ := cache.get()
	assert.Equal(t, "Nujabes, Cise Starr - Feather", track)
}

func TestSpotifyPoll_NoContentClearsCache(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	cache := &trackCache{}
	newTestPoller(server.URL, cache).poll()

	track, set := cache.get()
	assert.True(t, set)
	assert.Empty(t, track)
}

func TestSpotifyPoll_NotPlayingClearsCache(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"is_playing": false, "item": {"name": "Feather"}}`))
	}))
	defer server.Close()

	cache := &trackCache{}
	newTestPoller(server.URL, cache).poll()

	track, set := cache.get()
	assert.True(t, set)
	assert.Empty(t, track)
}

func TestSpotifyPoll_ErrorLeavesCacheUnchanged(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"unauthorized", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}},
		{"invalid json", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("{not json"))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			cache := &trackCache{}
			newTestPoller(server.URL, cache).poll()

			_, set := cache.get()
			assert.False(t, set, "failed poll must not touch the cache")
		})
	}
}

func TestSpotifyPoll_NetworkFailureLeavesCacheUnchanged(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	cache := &trackCache{}
	newTestPoller(server.URL, cache).poll()

	_, set := cache.get()
	assert.False(t, set)
}

func TestSpotifyPoller_StopIsIdempotent(t *testing.T) {
	cache := &trackCache{}
	p := newSpotifyPoller("token", time.Hour, cache.update)

	p.Stop()
	p.Stop()
}
