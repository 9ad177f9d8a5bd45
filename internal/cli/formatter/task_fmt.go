package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/daybreak/internal/domain"
)

// FormatTaskList renders tasks as a table inside a box.
func FormatTaskList(tasks []*domain.Task) string {
	headers := []string{"ID", "TASK", "PRI", "DUE", "RECUR", "TIME"}
	rows := make([][]string, 0, len(tasks))

	for _, t := range tasks {
		title := t.Title
		if t.Completed {
			title = StyleDim.Render("✔ " + title)
		} else if t.TimerRunning() {
			title = StyleGreen.Render("● " + title)
		} else {
			title = StyleFg.Render(title)
		}
		if n := len(t.Subtasks); n > 0 {
			done := 0
			for _, st := range t.Subtasks {
				if st.Done {
					done++
				}
			}
			title += Dim(fmt.Sprintf(" [%d/%d]", done, n))
		}

		due := Dim("--")
		if t.DueDate != nil {
			due = RelativeDateStyled(*t.DueDate)
		}

		tracked := FormatMinutes(t.AccumulatedMin)
		if t.PlannedMin > 0 {
			tracked = fmt.Sprintf("%s/%s", tracked, FormatMinutes(t.PlannedMin))
		}

		rows = append(rows, []string{
			TruncID(t.ID),
			title,
			PriorityPill(t.Priority),
			due,
			RecurrenceBadge(t.Recurrence),
			StyleFg.Render(tracked),
		})
	}

	return RenderBox("Tasks", RenderTable(headers, rows))
}

// FormatTaskInspect renders a single task with its subtasks.
func FormatTaskInspect(t *domain.Task) string {
	var b strings.Builder

	b.WriteString(Bold(t.Title) + "\n")
	b.WriteString(Dim(t.ID) + "\n\n")

	b.WriteString(fmt.Sprintf("Priority   %s\n", PriorityPill(t.Priority)))
	if t.DueDate != nil {
		b.WriteString(fmt.Sprintf("Due        %s %s\n",
			StyleFg.Render(t.DueDate.Format("Mon, Jan 2 2006")), RelativeDateStyled(*t.DueDate)))
	}
	if t.Recurrence != nil {
		b.WriteString(fmt.Sprintf("Repeats    %s\n", RecurrenceBadge(t.Recurrence)))
	}
	if t.Tags != "" {
		b.WriteString(fmt.Sprintf("Tags       %s\n", StylePurple.Render(t.Tags)))
	}

	tracked := FormatMinutes(t.AccumulatedMin)
	if t.PlannedMin > 0 {
		pct := float64(t.AccumulatedMin) / float64(t.PlannedMin)
		tracked = fmt.Sprintf("%s of %s  %s", tracked, FormatMinutes(t.PlannedMin), RenderProgress(pct, 10))
	}
	b.WriteString(fmt.Sprintf("Tracked    %s\n", tracked))

	if t.Completed {
		when := ""
		if t.CompletedAt != nil {
			when = " " + Dim(HumanDate(*t.CompletedAt))
		}
		b.WriteString(StyleGreen.Render("✔ Completed") + when + "\n")
	}
	if t.TimerRunning() {
		b.WriteString(StyleGreen.Render("● Timer running") +
			Dim(" since "+t.ActiveTimerStartedAt.Local().Format("15:04")) + "\n")
	}

	if t.Notes != "" {
		b.WriteString("\n" + StyleFg.Render(t.Notes) + "\n")
	}

	if len(t.Subtasks) > 0 {
		b.WriteString("\n" + Header("Subtasks") + "\n")
		for _, st := range t.Subtasks {
			mark := StyleDim.Render("○")
			title := StyleFg.Render(st.Title)
			if st.Done {
				mark = StyleGreen.Render("✔")
				title = StyleDim.Render(st.Title)
			}
			b.WriteString(fmt.Sprintf("  %s %s\n", mark, title))
		}
	}

	return RenderBox("", b.String())
}

// RecurrenceBadge renders a compact recurrence description such as "every
// 2 weeks (Mon,Fri)".
func RecurrenceBadge(rule *domain.RecurrenceRule) string {
	if rule == nil {
		return Dim("--")
	}

	unit := map[domain.RecurrenceKind]string{
		domain.RecurDaily:   "day",
		domain.RecurWeekly:  "week",
		domain.RecurMonthly: "month",
		domain.RecurYearly:  "year",
	}[rule.Kind]

	text := "every " + unit
	if rule.Interval > 1 {
		text = fmt.Sprintf("every %d %ss", rule.Interval, unit)
	}

	if rule.Kind == domain.RecurWeekly && len(rule.Weekdays) > 0 {
		names := make([]string, 0, len(rule.Weekdays))
		for _, wd := range rule.Weekdays {
			if wd >= 0 && wd <= 6 {
				names = append(names, weekdayShort[wd])
			}
		}
		text += " (" + strings.Join(names, ",") + ")"
	}

	return StylePurple.Render("↻ " + text)
}

var weekdayShort = [...]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
