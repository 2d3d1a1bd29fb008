package engine

import (
	"sync"
	"time"

	"focado/internal/domain"
	"focado/internal/logging"
)

// StateChangeFunc receives an engine state snapshot after every
// observable change
type StateChangeFunc func(state domain.EngineState)

// SessionCompleteFunc receives the session type that just ended and
// the snapshot of the session that follows it
type SessionCompleteFunc func(ended domain.SessionType, next domain.EngineState)

// Engine is the Pomodoro state machine. It owns its tick subscription
// exclusively: pause, reset, skip, and every transition cancel the
// subscription before a new one may be established, so at most one is
// live at any time.
//
// Remaining time is counted in whole seconds and decremented per tick,
// never recomputed from the wall clock, so pausing preserves the exact
// remaining value.
type Engine struct {
	mu    sync.Mutex
	cfg   domain.TimerConfig
	clock Clock

	session    domain.SessionType
	remaining  int
	running    bool
	completed  int
	cycleCount int // work sessions completed since the last long break

	cancelTick func()

	// Single-subscriber callbacks; last registration wins.
	onStateChange     StateChangeFunc
	onSessionComplete SessionCompleteFunc
}

// New creates an engine driven by the wall clock. The config must have
// been validated by the caller.
func New(cfg domain.TimerConfig) *Engine {
	return NewWithClock(cfg, NewTickerClock())
}

// NewWithClock creates an engine with an injected clock
func NewWithClock(cfg domain.TimerConfig, clock Clock) *Engine {
	return &Engine{
		cfg:       cfg,
		clock:     clock,
		session:   domain.SessionWork,
		remaining: cfg.DurationSeconds(domain.SessionWork),
	}
}

// OnStateChange registers the state-changed subscriber
func (e *Engine) OnStateChange(fn StateChangeFunc) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onStateChange = fn
}

// OnSessionComplete registers the session-completed subscriber
func (e *Engine) OnSessionComplete(fn SessionCompleteFunc) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onSessionComplete = fn
}

// State returns a copy of the observable engine state
func (e *Engine) State() domain.EngineState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stateLocked()
}

// Config returns the engine's timer configuration
func (e *Engine) Config() domain.TimerConfig {
	return e.cfg
}

// Start begins consuming ticks. No-op if already running.
func (e *Engine) Start() {
	e.mu.Lock()
	if e.running {
		e.mu.Unlock()
		return
	}
	e.running = true
	e.cancelTickLocked()
	e.cancelTick = e.clock.Schedule(time.Second, e.tick)
	snap, notify := e.stateLocked(), e.onStateChange
	e.mu.Unlock()

	logging.Logger.Debug("Engine started", "session", snap.CurrentSession, "remaining", snap.TimeRemaining)
	if notify != nil {
		notify(snap)
	}
}

// Pause stops consuming ticks, preserving the remaining time exactly.
// No-op if not running.
func (e *Engine) Pause() {
	e.mu.Lock()
	if !e.running {
		e.mu.Unlock()
		return
	}
	e.cancelTickLocked()
	e.running = false
	snap, notify := e.stateLocked(), e.onStateChange
	e.mu.Unlock()

	logging.Logger.Debug("Engine paused", "session", snap.CurrentSession, "remaining", snap.TimeRemaining)
	if notify != nil {
		notify(snap)
	}
}

// Reset stops ticking and restores the full duration of the current
// session type. Session type and completed count are untouched.
func (e *Engine) Reset() {
	e.mu.Lock()
	e.cancelTickLocked()
	e.running = false
	e.remaining = e.cfg.DurationSeconds(e.session)
	snap, notify := e.stateLocked(), e.onStateChange
	e.mu.Unlock()

	logging.Logger.Debug("Engine reset", "session", snap.CurrentSession)
	if notify != nil {
		notify(snap)
	}
}

// Skip forces immediate completion of the current session, performing
// the same transition as a natural zero-crossing.
func (e *Engine) Skip() {
	e.mu.Lock()
	ended, snap, complete, notify := e.transitionLocked()
	e.mu.Unlock()

	e.emitTransition(ended, snap, complete, notify)
}

// tick is invoked once per elapsed second while running
func (e *Engine) tick() {
	e.mu.Lock()
	if !e.running {
		// The clock fired between a cancel and the goroutine noticing;
		// counting this tick would lose or double a second.
		e.mu.Unlock()
		return
	}

	e.remaining--
	if e.remaining > 0 {
		snap, notify := e.stateLocked(), e.onStateChange
		e.mu.Unlock()
		if notify != nil {
			notify(snap)
		}
		return
	}

	ended, snap, complete, notify := e.transitionLocked()
	e.mu.Unlock()

	e.emitTransition(ended, snap, complete, notify)
}

// transitionLocked performs the session transition and returns what to
// emit. Callers must hold the lock and emit after releasing it, with
// the completion callback strictly before the state-changed one.
func (e *Engine) transitionLocked() (domain.SessionType, domain.EngineState, SessionCompleteFunc, StateChangeFunc) {
	e.cancelTickLocked()

	ended := e.session

	var next domain.SessionType
	if ended == domain.SessionWork {
		e.completed++
		e.cycleCount++
		if e.cycleCount >= e.cfg.PomodorosBeforeLongBreak {
			next = domain.SessionLongBreak
			e.cycleCount = 0
		} else {
			next = domain.SessionShortBreak
		}
	} else {
		next = domain.SessionWork
	}

	e.session = next
	e.remaining = e.cfg.DurationSeconds(next)
	// Sessions do not auto-chain; the user resumes explicitly.
	e.running = false

	return ended, e.stateLocked(), e.onSessionComplete, e.onStateChange
}

func (e *Engine) emitTransition(ended domain.SessionType, snap domain.EngineState, complete SessionCompleteFunc, notify StateChangeFunc) {
	logging.Logger.Info("Session completed",
		"ended", ended,
		"next", snap.CurrentSession,
		"completed_pomodoros", snap.CompletedPomodoros)

	if complete != nil {
		complete(ended, snap)
	}
	if notify != nil {
		notify(snap)
	}
}

func (e *Engine) cancelTickLocked() {
	if e.cancelTick != nil {
		e.cancelTick()
		e.cancelTick = nil
	}
}

func (e *Engine) stateLocked() domain.EngineState {
	return domain.EngineState{
		CurrentSession:     e.session,
		TimeRemaining:      e.remaining,
		IsRunning:          e.running,
		CompletedPomodoros: e.completed,
	}
}
