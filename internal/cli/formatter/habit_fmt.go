package formatter

import (
	"fmt"

	"github.com/alexanderramin/daybreak/internal/domain"
)

const habitBarWidth = 10

// FormatHabitList renders habits with today's progress against their goals.
// Logs maps habit ID to today's log, nil when the day has no entry yet.
func FormatHabitList(habits []*domain.Habit, logs map[string]*domain.HabitLog) string {
	headers := []string{"ID", "HABIT", "GOAL", "TODAY"}
	rows := make([][]string, 0, len(habits))

	for _, h := range habits {
		goal := fmt.Sprintf("%d+", h.Target)
		if h.GoalType == domain.GoalLimit {
			goal = fmt.Sprintf("<%d", h.Target)
		}

		today := Dim("--")
		if log := logs[h.ID]; log != nil {
			switch {
			case log.Skipped:
				today = Dim("⊘ skipped")
			case h.GoalType == domain.GoalLimit:
				style := StyleGreen
				if !h.Satisfied(log.Progress) {
					style = StyleRed
				}
				today = style.Render(fmt.Sprintf("%d/%d", log.Progress, h.Target))
			default:
				pct := float64(log.Progress) / float64(h.Target)
				today = RenderProgress(pct, habitBarWidth)
			}
		}

		rows = append(rows, []string{
			TruncID(h.ID),
			StyleFg.Render(h.Title),
			StylePurple.Render(goal),
			today,
		})
	}

	return RenderBox("Habits", RenderTable(headers, rows))
}

// FormatHabitHistory renders a habit's recent log rows, newest first.
func FormatHabitHistory(h *domain.Habit, logs []*domain.HabitLog) string {
	headers := []string{"DAY", "PROGRESS", "RESULT"}
	rows := make([][]string, 0, len(logs))

	for _, log := range logs {
		result := StyleRed.Render("✗")
		if log.Skipped {
			result = Dim("⊘ skipped")
		} else if h.Satisfied(log.Progress) {
			result = StyleGreen.Render("✔")
		}
		rows = append(rows, []string{
			StyleFg.Render(log.Day.Format("Mon, Jan 2")),
			StyleFg.Render(fmt.Sprintf("%d/%d", log.Progress, h.Target)),
			result,
		})
	}

	return RenderBox(h.Title, RenderTable(headers, rows))
}

// FormatJournalList renders journal entries, newest first.
func FormatJournalList(entries []*domain.JournalEntry) string {
	headers := []string{"ID", "WRITTEN", "ENTRY"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		preview := e.Content
		if len(preview) > 60 {
			preview = preview[:57] + "..."
		}
		rows = append(rows, []string{
			TruncID(e.ID),
			HumanTimestamp(e.CreatedAt),
			StyleFg.Render(preview),
		})
	}
	return RenderBox("Journal", RenderTable(headers, rows))
}

// FormatNoteList renders notes, most recently touched first.
func FormatNoteList(notes []*domain.Note) string {
	headers := []string{"ID", "TITLE", "UPDATED"}
	rows := make([][]string, 0, len(notes))
	for _, n := range notes {
		rows = append(rows, []string{
			TruncID(n.ID),
			StyleFg.Render(n.Title),
			HumanTimestamp(n.UpdatedAt),
		})
	}
	return RenderBox("Notes", RenderTable(headers, rows))
}
