package formatter

import (
	"testing"

	"github.com/alexanderramin/daybreak/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRecurrenceBadge(t *testing.T) {
	assert.Contains(t, RecurrenceBadge(nil), "--")

	daily := &domain.RecurrenceRule{Kind: domain.RecurDaily, Interval: 1}
	assert.Contains(t, RecurrenceBadge(daily), "every day")

	biweekly := &domain.RecurrenceRule{Kind: domain.RecurWeekly, Interval: 2, Weekdays: []int{1, 5}}
	badge := RecurrenceBadge(biweekly)
	assert.Contains(t, badge, "every 2 weeks")
	assert.Contains(t, badge, "Mon,Fri")

	yearly := &domain.RecurrenceRule{Kind: domain.RecurYearly, Interval: 1}
	assert.Contains(t, RecurrenceBadge(yearly), "every year")
}

func TestFormatTaskList_MarksState(t *testing.T) {
	tasks := []*domain.Task{
		{ID: "aaaaaaaa-1111", Title: "Plain", Priority: domain.PriorityLow},
		{ID: "bbbbbbbb-2222", Title: "Done", Priority: domain.PriorityMedium, Completed: true},
	}

	out := FormatTaskList(tasks)
	assert.Contains(t, out, "Plain")
	assert.Contains(t, out, "✔ Done")
	assert.Contains(t, out, "aaaaaaaa")
}

func TestFormatTaskInspect_Subtasks(t *testing.T) {
	task := &domain.Task{
		ID:       "cccccccc-3333",
		Title:    "With subtasks",
		Priority: domain.PriorityHigh,
		Subtasks: []domain.Subtask{
			{Title: "first", Done: true},
			{Title: "second"},
		},
	}

	out := FormatTaskInspect(task)
	assert.Contains(t, out, "With subtasks")
	assert.Contains(t, out, "SUBTASKS")
	assert.Contains(t, out, "first")
	assert.Contains(t, out, "second")
}
