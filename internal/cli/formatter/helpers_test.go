package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "00:59", FormatClock(59))
	assert.Equal(t, "02:30", FormatClock(150))
	assert.Equal(t, "1:00:00", FormatClock(3600))
	assert.Equal(t, "2:05:07", FormatClock(2*3600+5*60+7))
	assert.Equal(t, "00:00", FormatClock(-5), "negative input clamps to zero")
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "0m", FormatMinutes(0))
	assert.Equal(t, "45m", FormatMinutes(45))
	assert.Equal(t, "2h", FormatMinutes(120))
	assert.Equal(t, "1h 30m", FormatMinutes(90))
}

func TestFormatCountdown(t *testing.T) {
	assert.Equal(t, "9h 0m", FormatCountdown(9*time.Hour))
	assert.Equal(t, "45m", FormatCountdown(45*time.Minute))
	assert.Equal(t, "1h 30m", FormatCountdown(90*time.Minute))
	assert.Equal(t, "0m", FormatCountdown(-time.Minute))
}

func TestRelativeDateFrom(t *testing.T) {
	now := time.Date(2025, 3, 12, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "Today", RelativeDateFrom(now, now))
	assert.Equal(t, "Tomorrow", RelativeDateFrom(now.AddDate(0, 0, 1), now))
	assert.Equal(t, "Yesterday", RelativeDateFrom(now.AddDate(0, 0, -1), now))
	assert.Equal(t, "In 5d", RelativeDateFrom(now.AddDate(0, 0, 5), now))
	assert.Equal(t, "3d ago", RelativeDateFrom(now.AddDate(0, 0, -3), now))
	assert.Equal(t, "In 3w", RelativeDateFrom(now.AddDate(0, 0, 21), now))
}
