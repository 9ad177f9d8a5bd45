package temporal

import "time"

// Logical dates are calendar dates normalized to midnight UTC. The day
// boundary is shifted by the user's day-start hour: an instant whose local
// hour-of-day is before the boundary belongs to the previous calendar day.
// Every function takes "now" explicitly so callers stay deterministic.

// DateOnly strips the time component, returning midnight UTC of the
// instant's calendar date in its own location.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// LogicalDate buckets an instant into a logical date. With dayStartHour 0
// this is simply the calendar date.
func LogicalDate(instant time.Time, dayStartHour int) time.Time {
	if instant.Hour() < dayStartHour {
		instant = instant.AddDate(0, 0, -1)
	}
	return DateOnly(instant)
}

// LogicalToday returns the logical date "now" falls into.
func LogicalToday(now time.Time, dayStartHour int) time.Time {
	return LogicalDate(now, dayStartHour)
}

// LogicalDateOffset returns the logical today shifted by n calendar days.
// n = 1 is logical tomorrow, n = -1 logical yesterday.
func LogicalDateOffset(now time.Time, n int, dayStartHour int) time.Time {
	return LogicalToday(now, dayStartHour).AddDate(0, 0, n)
}

// DayDifference returns the whole calendar days from a to b using
// midnight-normalized instants. The day-start offset never biases the
// difference; it only decides which bucket "now" falls into.
func DayDifference(a, b time.Time) int {
	return int(DateOnly(b).Sub(DateOnly(a)).Hours() / 24)
}

// ResetCountdown returns the time remaining until the next logical day
// boundary: today's boundary if now is still before it, else tomorrow's.
func ResetCountdown(now time.Time, dayStartHour int) time.Duration {
	y, m, d := now.Date()
	boundary := time.Date(y, m, d, dayStartHour, 0, 0, 0, now.Location())
	if !now.Before(boundary) {
		boundary = boundary.AddDate(0, 0, 1)
	}
	return boundary.Sub(now)
}

// ValidateDayStart checks that a day-start hour is within 0..23.
func ValidateDayStart(hour int) error {
	if hour < 0 || hour > 23 {
		return ErrInvalidDayStart
	}
	return nil
}
