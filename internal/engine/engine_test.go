package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoSteps() []Step {
	return []Step{
		{Name: "warmup", Minutes: 1},
		{Name: "stretch", Minutes: 2},
	}
}

// tickN delivers n ticks under the engine's current handle
func tickN(e *Engine, n int) {
	for i := 0; i < n; i++ {
		e.Tick(e.Handle())
	}
}

func TestNewIsIdle(t *testing.T) {
	e := New(twoSteps())

	assert.Equal(t, StateIdle, e.State())
	assert.Equal(t, 0, e.Index())
	assert.Equal(t, 60, e.Remaining())
	assert.False(t, e.Running())
}

func TestStartIsNoOpWhenRunning(t *testing.T) {
	e := New(twoSteps())

	require.True(t, e.Start())
	h := e.Handle()

	assert.False(t, e.Start())
	assert.Equal(t, h, e.Handle(), "a second start must not acquire another handle")
}

func TestRemainingStaysInBounds(t *testing.T) {
	steps := twoSteps()
	e := New(steps)
	require.True(t, e.Start())

	for i := 0; i < 200; i++ {
		cur, ok := e.Current()
		require.True(t, ok)
		assert.GreaterOrEqual(t, e.Remaining(), 0)
		assert.LessOrEqual(t, e.Remaining(), cur.Seconds())
		e.Tick(e.Handle())
	}
	assert.True(t, e.Complete())
	assert.Equal(t, 0, e.Remaining())
}

func TestPauseResumePreservesRemaining(t *testing.T) {
	e := New(twoSteps())
	require.True(t, e.Start())
	tickN(e, 10)
	require.Equal(t, 50, e.Remaining())

	stale := e.Handle()
	e.Pause()
	assert.Equal(t, StatePaused, e.State())

	// ticks already in flight when the pause happened
	for i := 0; i < 5; i++ {
		assert.False(t, e.Tick(stale))
	}
	assert.Equal(t, 50, e.Remaining())

	require.True(t, e.Start())
	assert.Equal(t, 50, e.Remaining())
	tickN(e, 1)
	assert.Equal(t, 49, e.Remaining())
}

func TestLastSecondAdvancesInSameTick(t *testing.T) {
	var moves [][2]int
	e := New(twoSteps(), OnStep(func(from, to int) {
		moves = append(moves, [2]int{from, to})
	}))
	require.True(t, e.Start())
	tickN(e, 59)
	require.Equal(t, 1, e.Remaining())

	assert.True(t, e.Tick(e.Handle()))

	assert.Equal(t, 1, e.Index())
	assert.Equal(t, 120, e.Remaining())
	assert.True(t, e.Running(), "automatic expiry keeps counting on the next step")
	assert.Equal(t, [][2]int{{0, 1}}, moves)
}

func TestLastSecondOfLastStepCompletes(t *testing.T) {
	calls := 0
	e := New([]Step{{Minutes: 1}}, OnComplete(func() { calls++ }))
	require.True(t, e.Start())
	tickN(e, 59)

	assert.False(t, e.Tick(e.Handle()))

	assert.True(t, e.Complete())
	assert.Equal(t, StateComplete, e.State())
	assert.Equal(t, 0, e.Remaining())
	assert.Equal(t, 1, calls)
}

func TestCompletionFiresOnceDespiteRepeatedSkip(t *testing.T) {
	calls := 0
	e := New(twoSteps(), OnComplete(func() { calls++ }))

	e.Skip()
	assert.Equal(t, 1, e.Index())
	assert.False(t, e.Running())
	assert.Equal(t, 0, calls)

	for i := 0; i < 5; i++ {
		e.Skip()
	}
	assert.True(t, e.Complete())
	assert.Equal(t, 1, calls)

	assert.False(t, e.Start())
	tickN(e, 3)
	assert.Equal(t, 1, calls)
}

func TestSkipWhileRunningInvalidatesTicks(t *testing.T) {
	e := New(twoSteps())
	require.True(t, e.Start())
	stale := e.Handle()

	e.Skip()

	assert.False(t, e.Tick(stale))
	assert.Equal(t, 120, e.Remaining())
	assert.Equal(t, StateIdle, e.State())
}

func TestResetCurrentStep(t *testing.T) {
	e := New(twoSteps())
	e.Skip()
	require.True(t, e.Start())
	tickN(e, 30)

	e.Reset()

	assert.Equal(t, 1, e.Index())
	assert.Equal(t, 120, e.Remaining())
	assert.False(t, e.Running())
}

func TestResetToStep(t *testing.T) {
	e := New(twoSteps())
	e.Skip()

	e.Reset(0)
	assert.Equal(t, 0, e.Index())
	assert.Equal(t, 60, e.Remaining())

	e.Skip()
	e.Reset(7)
	assert.Equal(t, 0, e.Index(), "out of range falls back to the first step")
	assert.Equal(t, 60, e.Remaining())
}

func TestResetIgnoredOnceComplete(t *testing.T) {
	e := New([]Step{{Minutes: 1}})
	e.Skip()
	require.True(t, e.Complete())

	e.Reset(0)

	assert.True(t, e.Complete())
	assert.Equal(t, 0, e.Remaining())
}

func TestReleaseStopsDecrements(t *testing.T) {
	e := New(twoSteps())
	require.True(t, e.Start())
	tickN(e, 5)
	before := e.Remaining()
	stale := e.Handle()

	e.Release()
	for i := 0; i < 30; i++ {
		e.Tick(stale)
	}

	assert.Equal(t, before, e.Remaining())
	require.True(t, e.Start())
	assert.Equal(t, before, e.Remaining())
}

func TestZeroDurationExpiresImmediately(t *testing.T) {
	calls := 0
	e := New([]Step{{Minutes: 0}, {Minutes: 0}, {Minutes: 1}}, OnComplete(func() { calls++ }))
	assert.Equal(t, 0, e.Remaining())

	assert.True(t, e.Start())

	assert.Equal(t, 2, e.Index())
	assert.Equal(t, 60, e.Remaining())
	assert.Equal(t, 0, calls)
}

func TestZeroDurationLastStepCompletes(t *testing.T) {
	e := New([]Step{{Minutes: 0}})

	assert.False(t, e.Start())
	assert.True(t, e.Complete())
}

func TestNoStepsCompletesOnStart(t *testing.T) {
	calls := 0
	e := New(nil, OnComplete(func() { calls++ }))

	_, ok := e.Current()
	assert.False(t, ok)
	assert.False(t, e.Start())
	assert.True(t, e.Complete())
	assert.Equal(t, 1, calls)
}

func TestOnTickRunsBeforeExpiry(t *testing.T) {
	ticks := 0
	e := New([]Step{{Minutes: 1}}, OnTick(func() { ticks++ }))
	require.True(t, e.Start())

	tickN(e, 60)
	tickN(e, 10)

	assert.Equal(t, 60, ticks)
}

func TestTwoMinuteTestScenario(t *testing.T) {
	e := New([]Step{{Name: "hip", Minutes: 2}})
	require.Equal(t, 120, e.Remaining())
	require.True(t, e.Start())

	tickN(e, 120)

	assert.Equal(t, StateComplete, e.State())
	assert.Equal(t, 0, e.Remaining())
}

func TestUpcoming(t *testing.T) {
	e := New(twoSteps())

	next, ok := e.Upcoming()
	require.True(t, ok)
	assert.Equal(t, "stretch", next.Name)

	e.Skip()
	_, ok = e.Upcoming()
	assert.False(t, ok)
}

func TestClock(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0:00"},
		{59, "0:59"},
		{60, "1:00"},
		{905, "15:05"},
		{-3, "0:00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Clock(tt.seconds))
	}
}

func TestRunCompletes(t *testing.T) {
	e := New([]Step{{Minutes: 1}})
	ticks := make(chan time.Time, 60)
	for i := 0; i < 60; i++ {
		ticks <- time.Now()
	}

	err := Run(context.Background(), e, ticks)

	require.NoError(t, err)
	assert.True(t, e.Complete())
}

func TestRunCancelReleases(t *testing.T) {
	e := New([]Step{{Minutes: 1}})
	ticks := make(chan time.Time, 10)
	for i := 0; i < 10; i++ {
		ticks <- time.Now()
	}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- Run(ctx, e, ticks) }()

	// let the buffered ticks drain before cancelling
	require.Eventually(t, func() bool { return len(ticks) == 0 }, time.Second, time.Millisecond)
	cancel()

	err := <-done
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, e.Running())
}

func TestRunOnRunningEngine(t *testing.T) {
	e := New([]Step{{Minutes: 1}})
	require.True(t, e.Start())

	err := Run(context.Background(), e, make(chan time.Time))

	assert.ErrorIs(t, err, ErrRunning)
}
