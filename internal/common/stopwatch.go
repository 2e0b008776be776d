package common

import "time"

// Stopwatch tracks whether a timeout has elapsed since it was started.
type Stopwatch struct {
	Timeout   time.Duration
	startTime time.Time
	running   bool
}

func NewStopwatch(timeout time.Duration) Stopwatch {
	return Stopwatch{Timeout: timeout}
}

func (s *Stopwatch) Start() {
	s.running = true
	s.startTime = time.Now()
}

func (s *Stopwatch) Stop() {
	s.running = false
}

// Expired reports whether the timeout has been reached. A stopwatch that
// was never started counts as expired, so periodic tasks fire on the first
// check.
func (s *Stopwatch) Expired() bool {
	if !s.running {
		return true
	}
	return time.Since(s.startTime) >= s.Timeout
}
