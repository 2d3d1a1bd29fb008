package engine

import (
	"sync"
	"time"
)

// Clock schedules a repeating callback. Schedule returns a cancel
// function that stops the callbacks; cancel is safe to call more
// than once.
type Clock interface {
	Schedule(interval time.Duration, fn func()) (cancel func())
}

// tickerClock is the wall-clock implementation backed by time.Ticker
type tickerClock struct{}

// NewTickerClock returns a Clock backed by time.Ticker
func NewTickerClock() Clock {
	return tickerClock{}
}

func (tickerClock) Schedule(interval time.Duration, fn func()) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				fn()
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() { close(done) })
	}
}
