package temporal

import "errors"

var (
	// ErrUnknownItem reports an operation referencing a task that is not in
	// the supplied collection.
	ErrUnknownItem = errors.New("unknown task")

	// ErrTimerNotRunning reports a stop on a task with no running timer.
	ErrTimerNotRunning = errors.New("timer not running")

	// ErrUnknownSession reports a session operation referencing a session
	// that is not in the supplied collection.
	ErrUnknownSession = errors.New("unknown timer session")

	// ErrInvalidDayStart reports a day-start hour outside 0..23.
	ErrInvalidDayStart = errors.New("day start hour out of range 0..23")
)
