package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focado/internal/domain"
)

// manualClock drives the engine deterministically from tests
type manualClock struct {
	fn     func()
	active bool
}

func (c *manualClock) Schedule(_ time.Duration, fn func()) func() {
	c.fn = fn
	c.active = true
	return func() {
		c.active = false
	}
}

// Tick fires one scheduled tick, if a subscription is live
func (c *manualClock) Tick() {
	if c.active && c.fn != nil {
		c.fn()
	}
}

func (c *manualClock) TickN(n int) {
	for i := 0; i < n; i++ {
		c.Tick()
	}
}

func testConfig() domain.TimerConfig {
	return domain.TimerConfig{
		WorkMinutes:              25,
		ShortBreakMinutes:        5,
		LongBreakMinutes:         15,
		PomodorosBeforeLongBreak: 4,
	}
}

func newTestEngine(t *testing.T, cfg domain.TimerConfig) (*Engine, *manualClock) {
	t.Helper()
	require.NoError(t, cfg.Validate())
	clock := &manualClock{}
	return NewWithClock(cfg, clock), clock
}

func TestNew_InitialState(t *testing.T) {
	eng, _ := newTestEngine(t, testConfig())

	state := eng.State()

	assert.Equal(t, domain.SessionWork, state.CurrentSession)
	assert.Equal(t, 25*60, state.TimeRemaining)
	assert.False(t, state.IsRunning)
	assert.Equal(t, 0, state.CompletedPomodoros)
}

func TestStart_TicksDecrementRemaining(t *testing.T) {
	eng, clock := newTestEngine(t, testConfig())

	eng.Start()
	clock.TickN(10)

	state := eng.State()
	assert.Equal(t, 25*60-10, state.TimeRemaining)
	assert.Equal(t, domain.SessionWork, state.CurrentSession)
	assert.True(t, state.IsRunning)
}

func TestStart_AlreadyRunningIsNoOp(t *testing.T) {
	eng, clock := newTestEngine(t, testConfig())

	eng.Start()
	clock.TickN(5)
	eng.Start()

	assert.Equal(t, 25*60-5, eng.State().TimeRemaining)
}

func TestPause_PreservesRemainingExactly(t *testing.T) {
	eng, clock := newTestEngine(t, testConfig())

	eng.Start()
	clock.TickN(746) // pause at 12:34
	eng.Pause()

	paused := eng.State()
	assert.False(t, paused.IsRunning)
	assert.Equal(t, "12:34", domain.FormatTime(paused.TimeRemaining))

	// Ticks while paused are not counted
	clock.TickN(30)
	assert.Equal(t, paused.TimeRemaining, eng.State().TimeRemaining)

	// Resuming decrements from the exact paused value
	eng.Start()
	clock.Tick()
	assert.Equal(t, paused.TimeRemaining-1, eng.State().TimeRemaining)
}

func TestPause_NotRunningIsNoOp(t *testing.T) {
	eng, _ := newTestEngine(t, testConfig())

	eng.Pause()

	assert.False(t, eng.State().IsRunning)
	assert.Equal(t, 25*60, eng.State().TimeRemaining)
}

func TestReset_RestoresCurrentSessionDuration(t *testing.T) {
	eng, clock := newTestEngine(t, testConfig())

	eng.Start()
	clock.TickN(100)
	eng.Reset()

	state := eng.State()
	assert.False(t, state.IsRunning)
	assert.Equal(t, 25*60, state.TimeRemaining)
	assert.Equal(t, domain.SessionWork, state.CurrentSession)
	assert.Equal(t, 0, state.CompletedPomodoros)
}

func TestReset_DuringBreakRestoresBreakDuration(t *testing.T) {
	eng, clock := newTestEngine(t, testConfig())

	// Finish a work session to land in a short break
	eng.Skip()
	require.Equal(t, domain.SessionShortBreak, eng.State().CurrentSession)

	eng.Start()
	clock.TickN(42)
	eng.Reset()

	state := eng.State()
	assert.Equal(t, domain.SessionShortBreak, state.CurrentSession)
	assert.Equal(t, 5*60, state.TimeRemaining)
	assert.Equal(t, 1, state.CompletedPomodoros)
}

func TestTick_ZeroCrossingTransitionsToShortBreak(t *testing.T) {
	cfg := testConfig()
	cfg.WorkMinutes = 1
	eng, clock := newTestEngine(t, cfg)

	eng.Start()
	clock.TickN(60)

	state := eng.State()
	assert.Equal(t, domain.SessionShortBreak, state.CurrentSession)
	assert.Equal(t, 5*60, state.TimeRemaining)
	assert.False(t, state.IsRunning, "sessions must not auto-chain")
	assert.Equal(t, 1, state.CompletedPomodoros)
}

func TestTransition_CycleRollsIntoLongBreak(t *testing.T) {
	cfg := testConfig()
	cfg.PomodorosBeforeLongBreak = 4
	eng, _ := newTestEngine(t, cfg)

	var sequence []domain.SessionType
	for i := 0; i < 8; i++ {
		eng.Skip()
		sequence = append(sequence, eng.State().CurrentSession)
	}

	// Work 1-3 -> short break, 4th -> long break, breaks -> work
	expected := []domain.SessionType{
		domain.SessionShortBreak, domain.SessionWork,
		domain.SessionShortBreak, domain.SessionWork,
		domain.SessionShortBreak, domain.SessionWork,
		domain.SessionLongBreak, domain.SessionWork,
	}
	assert.Equal(t, expected, sequence)
	assert.Equal(t, 4, eng.State().CompletedPomodoros)
}

func TestTransition_CycleOfTwoTrace(t *testing.T) {
	cfg := testConfig()
	cfg.PomodorosBeforeLongBreak = 2
	eng, _ := newTestEngine(t, cfg)

	var sequence []domain.SessionType
	for i := 0; i < 6; i++ {
		eng.Skip()
		sequence = append(sequence, eng.State().CurrentSession)
	}

	expected := []domain.SessionType{
		domain.SessionShortBreak, domain.SessionWork,
		domain.SessionLongBreak, domain.SessionWork,
		domain.SessionShortBreak, domain.SessionWork,
	}
	assert.Equal(t, expected, sequence)
}

func TestSkip_DuringWorkTransitionsImmediately(t *testing.T) {
	cfg := testConfig()
	cfg.WorkMinutes = 15
	eng, clock := newTestEngine(t, cfg)

	eng.Start()
	require.Equal(t, 900, eng.State().TimeRemaining)
	eng.Skip()

	state := eng.State()
	assert.Equal(t, domain.SessionShortBreak, state.CurrentSession)
	assert.False(t, state.IsRunning)
	assert.Equal(t, 1, state.CompletedPomodoros)

	// The old subscription is cancelled; stray ticks change nothing
	clock.TickN(3)
	assert.Equal(t, 5*60, eng.State().TimeRemaining)
}

func TestSkip_BreakDoesNotCountPomodoro(t *testing.T) {
	eng, _ := newTestEngine(t, testConfig())

	eng.Skip() // work -> short break
	require.Equal(t, 1, eng.State().CompletedPomodoros)

	eng.Skip() // short break -> work

	state := eng.State()
	assert.Equal(t, domain.SessionWork, state.CurrentSession)
	assert.Equal(t, 1, state.CompletedPomodoros)
}

func TestCallbacks_CompletionBeforeStateChange(t *testing.T) {
	cfg := testConfig()
	cfg.WorkMinutes = 1
	eng, clock := newTestEngine(t, cfg)

	var order []string
	var endedType domain.SessionType
	eng.OnSessionComplete(func(ended domain.SessionType, next domain.EngineState) {
		order = append(order, "complete")
		endedType = ended
		assert.Equal(t, domain.SessionShortBreak, next.CurrentSession)
	})
	eng.OnStateChange(func(state domain.EngineState) {
		order = append(order, "state")
	})

	eng.Start()
	clock.TickN(60)

	// start + 59 intermediate ticks + completion pair
	require.NotEmpty(t, order)
	assert.Equal(t, domain.SessionWork, endedType)
	assert.Equal(t, []string{"complete", "state"}, order[len(order)-2:])
}

func TestCallbacks_LastRegistrationWins(t *testing.T) {
	eng, clock := newTestEngine(t, testConfig())

	var first, second int
	eng.OnStateChange(func(domain.EngineState) { first++ })
	eng.OnStateChange(func(domain.EngineState) { second++ })

	eng.Start()
	clock.TickN(3)

	assert.Zero(t, first)
	assert.Equal(t, 4, second) // start + 3 ticks
}

func TestStateChange_EmittedPerTick(t *testing.T) {
	eng, clock := newTestEngine(t, testConfig())

	var snapshots []domain.EngineState
	eng.OnStateChange(func(state domain.EngineState) {
		snapshots = append(snapshots, state)
	})

	eng.Start()
	clock.TickN(3)

	require.Len(t, snapshots, 4)
	assert.Equal(t, 25*60-1, snapshots[1].TimeRemaining)
	assert.Equal(t, 25*60-2, snapshots[2].TimeRemaining)
	assert.Equal(t, 25*60-3, snapshots[3].TimeRemaining)
}

func TestState_ReturnsCopy(t *testing.T) {
	eng, _ := newTestEngine(t, testConfig())

	state := eng.State()
	state.TimeRemaining = 1
	state.CompletedPomodoros = 99

	assert.Equal(t, 25*60, eng.State().TimeRemaining)
	assert.Equal(t, 0, eng.State().CompletedPomodoros)
}

func TestTickerClock_ScheduleAndCancel(t *testing.T) {
	clock := NewTickerClock()

	ticks := make(chan struct{}, 8)
	cancel := clock.Schedule(5*time.Millisecond, func() {
		select {
		case ticks <- struct{}{}:
		default:
		}
	})

	select {
	case <-ticks:
	case <-time.After(time.Second):
		t.Fatal("expected at least one tick")
	}

	cancel()
	cancel() // idempotent
}
