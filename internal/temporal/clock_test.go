package temporal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogicalDate_ZeroOffsetIsCalendarDate(t *testing.T) {
	instant := time.Date(2024, 3, 15, 0, 30, 0, 0, time.UTC)
	got := LogicalDate(instant, 0)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestLogicalDate_BeforeBoundaryCountsAsPreviousDay(t *testing.T) {
	// 02:30 with a 4am day start still belongs to March 14.
	instant := time.Date(2024, 3, 15, 2, 30, 0, 0, time.UTC)
	got := LogicalDate(instant, 4)
	assert.Equal(t, time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC), got)
}

func TestLogicalDate_AtBoundaryCountsAsSameDay(t *testing.T) {
	instant := time.Date(2024, 3, 15, 4, 0, 0, 0, time.UTC)
	got := LogicalDate(instant, 4)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestLogicalDate_NonDecreasingAsInstantIncreases(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		prev := time.Time{}
		instant := time.Date(2024, 2, 27, 0, 0, 0, 0, time.UTC)
		for i := 0; i < 96; i++ {
			d := LogicalDate(instant, hour)
			if !prev.IsZero() {
				assert.False(t, d.Before(prev),
					"logical date went backward at %v with day start %d", instant, hour)
			}
			prev = d
			instant = instant.Add(30 * time.Minute)
		}
	}
}

func TestLogicalDateOffset_TomorrowAndYesterday(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC), LogicalDateOffset(now, 1, 0))
	assert.Equal(t, time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC), LogicalDateOffset(now, -1, 0))
}

func TestLogicalDateOffset_LateNightWithDayStart(t *testing.T) {
	// 1am with a 3am day start: logical today is the 14th, tomorrow the 15th.
	now := time.Date(2024, 3, 15, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), LogicalDateOffset(now, 1, 3))
}

func TestDayDifference_IgnoresTimeComponent(t *testing.T) {
	a := time.Date(2024, 3, 10, 23, 59, 0, 0, time.UTC)
	b := time.Date(2024, 3, 12, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 2, DayDifference(a, b))
	assert.Equal(t, -2, DayDifference(b, a))
}

func TestDayDifference_SameDayIsZero(t *testing.T) {
	a := time.Date(2024, 3, 10, 1, 0, 0, 0, time.UTC)
	b := time.Date(2024, 3, 10, 22, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, DayDifference(a, b))
}

func TestResetCountdown_BeforeBoundary(t *testing.T) {
	now := time.Date(2024, 3, 15, 2, 0, 0, 0, time.UTC)
	assert.Equal(t, 2*time.Hour, ResetCountdown(now, 4))
}

func TestResetCountdown_AfterBoundaryRollsToTomorrow(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, 18*time.Hour, ResetCountdown(now, 4))
}

func TestResetCountdown_ExactlyAtBoundary(t *testing.T) {
	now := time.Date(2024, 3, 15, 4, 0, 0, 0, time.UTC)
	assert.Equal(t, 24*time.Hour, ResetCountdown(now, 4))
}

func TestValidateDayStart(t *testing.T) {
	require.NoError(t, ValidateDayStart(0))
	require.NoError(t, ValidateDayStart(23))
	assert.ErrorIs(t, ValidateDayStart(-1), ErrInvalidDayStart)
	assert.ErrorIs(t, ValidateDayStart(24), ErrInvalidDayStart)
}
