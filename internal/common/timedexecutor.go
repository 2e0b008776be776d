package common

import "time"

// TimedExecutor runs a task at most once per timeout period. Call Execute
// opportunistically (e.g. on every incoming event); the task only runs when
// the period has elapsed since its last run.
type TimedExecutor struct {
	stopwatch Stopwatch
	task      func()
}

func NewTimedExecutor(timeout time.Duration, task func()) TimedExecutor {
	return TimedExecutor{NewStopwatch(timeout), task}
}

// Execute runs the task if its period has elapsed, else does nothing.
func (te *TimedExecutor) Execute() {
	if te.stopwatch.Expired() {
		te.stopwatch.Start()
		te.task()
	}
}
