package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidRule reports a recurrence rule that fails validation.
var ErrInvalidRule = errors.New("invalid recurrence rule")

// RecurrenceRule describes how a repeating task's due date advances.
// Weekdays is only meaningful for weekly rules; values are 0 (Sunday)
// through 6 (Saturday). An empty Weekdays set means "same weekday as the
// last due date".
type RecurrenceRule struct {
	Kind     RecurrenceKind
	Interval int
	Weekdays []int
}

// Validate checks kind, interval and weekday bounds.
func (r RecurrenceRule) Validate() error {
	if !ValidRecurrenceKinds[string(r.Kind)] {
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidRule, r.Kind)
	}
	if r.Interval < 1 {
		return fmt.Errorf("%w: interval %d must be >= 1", ErrInvalidRule, r.Interval)
	}
	for _, wd := range r.Weekdays {
		if wd < 0 || wd > 6 {
			return fmt.Errorf("%w: weekday %d out of range 0..6", ErrInvalidRule, wd)
		}
	}
	return nil
}
