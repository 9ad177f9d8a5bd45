package domain

import "time"

// TimerSession records one contiguous interval of tracked work on a task.
// A session with EndedAt == nil is open; at most one session is open at any
// time. Closed sessions are immutable.
type TimerSession struct {
	ID          string
	TaskID      string
	StartedAt   time.Time
	EndedAt     *time.Time
	DurationSec int
	CreatedAt   time.Time
}

// Open reports whether the session has not been closed yet.
func (s *TimerSession) Open() bool {
	return s.EndedAt == nil
}
