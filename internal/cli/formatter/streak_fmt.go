package formatter

import (
	"strings"
	"time"

	"github.com/alexanderramin/daybreak/internal/temporal"
)

// FormatStreak renders the full streak view: summary line plus a calendar
// strip of the last few weeks, newest day on the right.
func FormatStreak(streak temporal.StreakState, today time.Time) string {
	var b strings.Builder

	b.WriteString(FormatStreakLine(streak) + "\n\n")

	const days = 28
	active := make(map[time.Time]bool, len(streak.History))
	for _, d := range streak.History {
		active[d] = true
	}

	var cells, labels strings.Builder
	for i := days - 1; i >= 0; i-- {
		day := temporal.DateOnly(today).AddDate(0, 0, -i)
		if active[day] {
			cells.WriteString(StyleGreen.Render("■"))
		} else {
			cells.WriteString(StyleDim.Render("·"))
		}
		if day.Weekday() == time.Monday {
			labels.WriteString(StyleDim.Render("M"))
		} else {
			labels.WriteString(" ")
		}
	}
	b.WriteString(cells.String() + "\n")
	b.WriteString(labels.String() + "\n")

	return RenderBox("Streak", b.String())
}
