package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/daybreak/internal/domain"
)

// FormatTimerStatus renders the running timer, or an idle message.
func FormatTimerStatus(task *domain.Task, elapsedSeconds int, finish *time.Time) string {
	if task == nil {
		return Dim("No timer running.")
	}

	var b strings.Builder
	b.WriteString(StyleGreen.Render("● "+task.Title) + "\n\n")
	b.WriteString(Bold(FormatClock(elapsedSeconds)) + Dim(" tracked") + "\n")

	if task.PlannedMin > 0 {
		pct := float64(elapsedSeconds) / float64(task.PlannedMin*60)
		b.WriteString(RenderProgress(pct, 20) + "\n")
		if finish != nil {
			b.WriteString(Dim("Estimated finish "+finish.Local().Format("15:04")) + "\n")
		}
	}

	return RenderBox("Timer", b.String())
}

// FormatSessionList renders timer sessions as a table inside a box.
// Titles maps task IDs to titles; unknown IDs fall back to the short ID.
func FormatSessionList(sessions []*domain.TimerSession, titles map[string]string) string {
	headers := []string{"ID", "TASK", "STARTED", "DURATION"}
	rows := make([][]string, 0, len(sessions))

	for _, s := range sessions {
		task := titles[s.TaskID]
		if task == "" {
			task = s.TaskID
			if len(task) > 8 {
				task = task[:8]
			}
		}

		duration := StyleGreen.Render("running")
		if !s.Open() {
			duration = StyleFg.Render(FormatMinutes(s.DurationSec / 60))
			if s.DurationSec > 0 && s.DurationSec < 60 {
				duration = StyleFg.Render(fmt.Sprintf("%ds", s.DurationSec))
			}
		}

		rows = append(rows, []string{
			TruncID(s.ID),
			StyleFg.Render(task),
			HumanTimestamp(s.StartedAt),
			duration,
		})
	}

	return RenderBox("Sessions", RenderTable(headers, rows))
}
