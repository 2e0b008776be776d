package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStopwatchExpiredBeforeFirstStart(t *testing.T) {
	stopwatch := NewStopwatch(time.Hour)
	assert.True(t, stopwatch.Expired())
}

func TestStopwatchRunning(t *testing.T) {
	stopwatch := NewStopwatch(time.Hour)
	stopwatch.Start()
	assert.False(t, stopwatch.Expired())

	stopwatch.Stop()
	assert.True(t, stopwatch.Expired())
}

func TestStopwatchTimesOut(t *testing.T) {
	stopwatch := NewStopwatch(time.Millisecond)
	stopwatch.Start()
	time.Sleep(5 * time.Millisecond)
	assert.True(t, stopwatch.Expired())
}

func TestTimedExecutorRunsWhenExpired(t *testing.T) {
	runs := 0
	executor := NewTimedExecutor(time.Hour, func() { runs++ })

	// Never started, so the first check fires the task and arms the timer.
	executor.Execute()
	assert.Equal(t, 1, runs)

	executor.Execute()
	assert.Equal(t, 1, runs)
}

func TestTimedExecutorFiresAgainAfterTimeout(t *testing.T) {
	runs := 0
	executor := NewTimedExecutor(time.Millisecond, func() { runs++ })

	executor.Execute()
	time.Sleep(5 * time.Millisecond)
	executor.Execute()
	assert.Equal(t, 2, runs)
}
