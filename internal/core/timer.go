package core

import "time"

// Stopwatch measures how long a button has been held.
type Stopwatch struct {
	now   func() time.Time
	start time.Time
}

// NewStopwatch constructs a Stopwatch reading the provided clock. A nil clock
// falls back to time.Now.
func NewStopwatch(now func() time.Time) *Stopwatch {
	if now == nil {
		now = time.Now
	}
	return &Stopwatch{now: now}
}

// Start records the current instant as the beginning of a measurement.
func (s *Stopwatch) Start() {
	s.start = s.now()
}

// Running reports whether Start was called without a matching Stop.
func (s *Stopwatch) Running() bool { return !s.start.IsZero() }

// Stop ends the measurement and returns the elapsed time. Stopping a watch
// that was never started returns zero.
func (s *Stopwatch) Stop() time.Duration {
	if s.start.IsZero() {
		return 0
	}
	elapsed := s.now().Sub(s.start)
	s.start = time.Time{}
	if elapsed < 0 {
		return 0
	}
	return elapsed
}
