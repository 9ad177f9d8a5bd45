package domain

import "time"

// Task is a trackable item. DueDate, when set, is a logical date stored as
// a midnight-UTC instant. ActiveTimerStartedAt is set on at most one task
// at any time; the temporal package enforces that invariant.
type Task struct {
	ID       string
	Title    string
	Notes    string
	Priority Priority
	Tags     string

	DueDate     *time.Time
	Completed   bool
	CompletedAt *time.Time
	Recurrence  *RecurrenceRule

	// Timer state
	PlannedMin           int
	AccumulatedMin       int
	ActiveTimerStartedAt *time.Time

	Subtasks []Subtask

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Subtask is a checklist line under a task. Recurrence fan-out clones
// subtask titles with fresh identities and Done reset to false.
type Subtask struct {
	ID       string
	TaskID   string
	Title    string
	Done     bool
	Position int
}

// TimerRunning reports whether this task currently owns the active timer.
func (t *Task) TimerRunning() bool {
	return t.ActiveTimerStartedAt != nil
}
