package service

import (
	"context"
	"time"

	"github.com/alexanderramin/daybreak/internal/domain"
	"github.com/alexanderramin/daybreak/internal/temporal"
)

// CompletionResult reports the outcome of completing a task. Spawned is the
// next-occurrence sibling created for recurring tasks, nil otherwise.
type CompletionResult struct {
	Completed *domain.Task
	Spawned   *domain.Task
}

type TaskService interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context, includeCompleted bool) ([]*domain.Task, error)
	ListDueToday(ctx context.Context, now time.Time) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Complete(ctx context.Context, id string, now time.Time) (*CompletionResult, error)
	Delete(ctx context.Context, id string) error
}

type TimerService interface {
	// Start begins tracking the task, stopping any other running timer
	// first. Returns the opened session, or nil when the task was already
	// running (double-start no-op).
	Start(ctx context.Context, taskID string, now time.Time) (*domain.TimerSession, error)
	// Stop closes the task's running timer and reconciles its minutes.
	Stop(ctx context.Context, taskID string, now time.Time) (*domain.TimerSession, error)
	// Active returns the open session and its task, or nils when idle.
	Active(ctx context.Context) (*domain.TimerSession, *domain.Task, error)
	ListByTask(ctx context.Context, taskID string) ([]*domain.TimerSession, error)
	ListRecent(ctx context.Context, days int) ([]*domain.TimerSession, error)
	// DeleteSession removes a session with compensation: deleting the open
	// session detaches the running timer; deleting a closed one subtracts
	// its minutes from the task.
	DeleteSession(ctx context.Context, sessionID string) error
}

type HabitService interface {
	Create(ctx context.Context, h *domain.Habit) error
	GetByID(ctx context.Context, id string) (*domain.Habit, error)
	List(ctx context.Context) ([]*domain.Habit, error)
	Update(ctx context.Context, h *domain.Habit) error
	Delete(ctx context.Context, id string) error
	// LogProgress adjusts today's progress by delta (floored at zero),
	// bucketing "today" by the profile's day-start hour.
	LogProgress(ctx context.Context, habitID string, now time.Time, delta int) (*domain.HabitLog, error)
	// Skip marks or unmarks today as explicitly skipped.
	Skip(ctx context.Context, habitID string, now time.Time, skipped bool) (*domain.HabitLog, error)
	ListLogs(ctx context.Context, habitID string) ([]*domain.HabitLog, error)
}

type JournalService interface {
	Add(ctx context.Context, content string, now time.Time) (*domain.JournalEntry, error)
	List(ctx context.Context) ([]*domain.JournalEntry, error)
	Delete(ctx context.Context, id string) error
}

type NoteService interface {
	Add(ctx context.Context, title, body string, now time.Time) (*domain.Note, error)
	List(ctx context.Context) ([]*domain.Note, error)
	Update(ctx context.Context, n *domain.Note, now time.Time) error
	Delete(ctx context.Context, id string) error
}

type StreakService interface {
	Current(ctx context.Context, now time.Time) (temporal.StreakState, error)
}

// StatusReport is the "today" dashboard: logical date, due and overdue
// tasks, the running timer, the streak, and time left until rollover.
type StatusReport struct {
	Today        time.Time
	DayStartHour int
	ResetIn      time.Duration

	DueToday []*domain.Task
	Overdue  []*domain.Task

	Running        *domain.TimerSession
	RunningTask    *domain.Task
	ElapsedSeconds int

	Streak temporal.StreakState
}

type StatusService interface {
	GetStatus(ctx context.Context, now time.Time) (*StatusReport, error)
}

type ProfileService interface {
	Get(ctx context.Context) (*domain.UserProfile, error)
	SetDayStart(ctx context.Context, hour int) error
}
