package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/daybreak/internal/domain"
	"github.com/alexanderramin/daybreak/internal/service"
	"github.com/alexanderramin/daybreak/internal/temporal"
)

// FormatStatus formats a StatusReport into a styled CLI dashboard string.
func FormatStatus(report *service.StatusReport) string {
	var b strings.Builder

	dayLine := Bold(report.Today.Format("Monday, Jan 2"))
	if report.DayStartHour > 0 {
		dayLine += Dim(fmt.Sprintf("  (day starts %02d:00)", report.DayStartHour))
	}
	b.WriteString(dayLine + "\n")
	b.WriteString(Dim(fmt.Sprintf("Day resets in %s", FormatCountdown(report.ResetIn))) + "\n\n")

	b.WriteString(FormatStreakLine(report.Streak) + "\n")

	if report.Running != nil {
		running := "timer running"
		if report.RunningTask != nil {
			running = report.RunningTask.Title
		}
		b.WriteString(StyleGreen.Render("● "+running) +
			Dim("  "+FormatClock(report.ElapsedSeconds)) + "\n")
	}
	b.WriteString("\n")

	if len(report.Overdue) > 0 {
		b.WriteString(Header("Overdue") + "\n")
		for _, t := range report.Overdue {
			b.WriteString(fmt.Sprintf("  %s %s %s\n",
				StyleRed.Render("!"), StyleFg.Render(t.Title), RelativeDateStyled(*t.DueDate)))
		}
		b.WriteString("\n")
	}

	b.WriteString(Header("Due Today") + "\n")
	if len(report.DueToday) == 0 {
		b.WriteString(Dim("  Nothing due. Enjoy the slack.") + "\n")
	}
	for _, t := range report.DueToday {
		b.WriteString("  " + taskLine(t) + "\n")
	}

	return RenderBox("Today", b.String())
}

// FormatStreakLine renders the streak as a single summary line.
func FormatStreakLine(streak temporal.StreakState) string {
	if streak.Count == 0 {
		return Dim("No streak yet. Do one thing today.")
	}
	flame := StyleYellow.Render("🔥")
	line := fmt.Sprintf("%s %s", flame, Bold(fmt.Sprintf("%d day streak", streak.Count)))
	if !streak.ActiveToday {
		line += StyleYellow.Render("  at risk, no activity today")
	}
	return line
}

func taskLine(t *domain.Task) string {
	line := fmt.Sprintf("%s %s", PriorityPill(t.Priority), StyleFg.Render(t.Title))
	if t.Recurrence != nil {
		line += " " + RecurrenceBadge(t.Recurrence)
	}
	return line
}
