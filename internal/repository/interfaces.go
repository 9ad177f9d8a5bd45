package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/daybreak/internal/domain"
)

// ErrNotFound reports a lookup that matched no row. Callers test with
// errors.Is; the wrapping message names the entity.
var ErrNotFound = errors.New("not found")

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context, includeCompleted bool) ([]*domain.Task, error)
	ListDueOn(ctx context.Context, day time.Time) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error
}

type TimerSessionRepo interface {
	Create(ctx context.Context, s *domain.TimerSession) error
	GetByID(ctx context.Context, id string) (*domain.TimerSession, error)
	// GetOpen returns the single open session, or ErrNotFound when the
	// ledger is idle.
	GetOpen(ctx context.Context) (*domain.TimerSession, error)
	ListByTask(ctx context.Context, taskID string) ([]*domain.TimerSession, error)
	ListRecent(ctx context.Context, days int) ([]*domain.TimerSession, error)
	Update(ctx context.Context, s *domain.TimerSession) error
	Delete(ctx context.Context, id string) error
}

type HabitRepo interface {
	Create(ctx context.Context, h *domain.Habit) error
	GetByID(ctx context.Context, id string) (*domain.Habit, error)
	List(ctx context.Context) ([]*domain.Habit, error)
	Update(ctx context.Context, h *domain.Habit) error
	Delete(ctx context.Context, id string) error

	GetLog(ctx context.Context, habitID string, day time.Time) (*domain.HabitLog, error)
	UpsertLog(ctx context.Context, log *domain.HabitLog) error
	ListLogs(ctx context.Context, habitID string) ([]*domain.HabitLog, error)
	ListAllLogs(ctx context.Context) ([]*domain.HabitLog, error)
}

type JournalRepo interface {
	Create(ctx context.Context, e *domain.JournalEntry) error
	GetByID(ctx context.Context, id string) (*domain.JournalEntry, error)
	List(ctx context.Context) ([]*domain.JournalEntry, error)
	Update(ctx context.Context, e *domain.JournalEntry) error
	Delete(ctx context.Context, id string) error
}

type NoteRepo interface {
	Create(ctx context.Context, n *domain.Note) error
	GetByID(ctx context.Context, id string) (*domain.Note, error)
	List(ctx context.Context) ([]*domain.Note, error)
	Update(ctx context.Context, n *domain.Note) error
	Delete(ctx context.Context, id string) error
}

type UserProfileRepo interface {
	Get(ctx context.Context) (*domain.UserProfile, error)
	Upsert(ctx context.Context, p *domain.UserProfile) error
}
