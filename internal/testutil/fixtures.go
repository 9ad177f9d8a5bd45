package testutil

import (
	"time"

	"github.com/alexanderramin/daybreak/internal/domain"
	"github.com/google/uuid"
)

// Task options
type TaskOption func(*domain.Task)

func WithDueDate(d time.Time) TaskOption {
	return func(t *domain.Task) {
		t.DueDate = &d
	}
}

func WithRecurrence(rule domain.RecurrenceRule) TaskOption {
	return func(t *domain.Task) {
		t.Recurrence = &rule
	}
}

func WithPlannedMin(min int) TaskOption {
	return func(t *domain.Task) {
		t.PlannedMin = min
	}
}

func WithAccumulatedMin(min int) TaskOption {
	return func(t *domain.Task) {
		t.AccumulatedMin = min
	}
}

func WithPriority(p domain.Priority) TaskOption {
	return func(t *domain.Task) {
		t.Priority = p
	}
}

func WithSubtasks(titles ...string) TaskOption {
	return func(t *domain.Task) {
		for i, title := range titles {
			t.Subtasks = append(t.Subtasks, domain.Subtask{
				ID:       uuid.New().String(),
				TaskID:   t.ID,
				Title:    title,
				Position: i,
			})
		}
	}
}

func WithCreatedAt(at time.Time) TaskOption {
	return func(t *domain.Task) {
		t.CreatedAt = at
		t.UpdatedAt = at
	}
}

func NewTestTask(title string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC()
	t := &domain.Task{
		ID:        uuid.New().String(),
		Title:     title,
		Priority:  domain.PriorityMedium,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Habit options
type HabitOption func(*domain.Habit)

func WithGoal(goal domain.GoalType, target int) HabitOption {
	return func(h *domain.Habit) {
		h.GoalType = goal
		h.Target = target
	}
}

func NewTestHabit(title string, opts ...HabitOption) *domain.Habit {
	now := time.Now().UTC()
	h := &domain.Habit{
		ID:        uuid.New().String(),
		Title:     title,
		GoalType:  domain.GoalBuild,
		Target:    1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func NewTestJournalEntry(content string, at time.Time) *domain.JournalEntry {
	return &domain.JournalEntry{
		ID:        uuid.New().String(),
		Content:   content,
		CreatedAt: at,
		UpdatedAt: at,
	}
}

func NewTestNote(title string, at time.Time) *domain.Note {
	return &domain.Note{
		ID:        uuid.New().String(),
		Title:     title,
		CreatedAt: at,
		UpdatedAt: at,
	}
}
