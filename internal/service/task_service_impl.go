package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/daybreak/internal/db"
	"github.com/alexanderramin/daybreak/internal/domain"
	"github.com/alexanderramin/daybreak/internal/repository"
	"github.com/alexanderramin/daybreak/internal/temporal"
	"github.com/google/uuid"
)

type taskService struct {
	tasks    repository.TaskRepo
	profiles repository.UserProfileRepo
	uow      db.UnitOfWork
}

func NewTaskService(tasks repository.TaskRepo, profiles repository.UserProfileRepo, uow db.UnitOfWork) TaskService {
	return &taskService{tasks: tasks, profiles: profiles, uow: uow}
}

func (s *taskService) Create(ctx context.Context, t *domain.Task) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Priority == "" {
		t.Priority = domain.PriorityMedium
	}
	if !domain.ValidPriorities[string(t.Priority)] {
		return fmt.Errorf("invalid priority %q", t.Priority)
	}
	if t.Recurrence != nil {
		if err := t.Recurrence.Validate(); err != nil {
			return err
		}
	}
	for i := range t.Subtasks {
		if t.Subtasks[i].ID == "" {
			t.Subtasks[i].ID = uuid.New().String()
		}
		t.Subtasks[i].TaskID = t.ID
	}

	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	return s.tasks.Create(ctx, t)
}

func (s *taskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *taskService) List(ctx context.Context, includeCompleted bool) ([]*domain.Task, error) {
	return s.tasks.List(ctx, includeCompleted)
}

func (s *taskService) ListDueToday(ctx context.Context, now time.Time) ([]*domain.Task, error) {
	profile, err := s.profiles.Get(ctx)
	if err != nil {
		return nil, err
	}
	today := temporal.LogicalToday(now, profile.DayStartHour)
	return s.tasks.ListDueOn(ctx, today)
}

func (s *taskService) Update(ctx context.Context, t *domain.Task) error {
	if t.Recurrence != nil {
		if err := t.Recurrence.Validate(); err != nil {
			return err
		}
	}
	t.UpdatedAt = time.Now().UTC()
	return s.tasks.Update(ctx, t)
}

// Complete marks the task done. For recurring tasks with a due date it also
// spawns the next occurrence as a fresh sibling in the same transaction:
// the completed record is kept for history, never rewritten with a new due
// date.
func (s *taskService) Complete(ctx context.Context, id string, now time.Time) (*CompletionResult, error) {
	var result CompletionResult

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)

		t, err := txTasks.GetByID(ctx, id)
		if err != nil {
			return err
		}
		result.Completed = t

		if t.Completed {
			// Completing twice is a no-op.
			return nil
		}

		completedAt := now.UTC()
		t.Completed = true
		t.CompletedAt = &completedAt
		t.UpdatedAt = completedAt
		if err := txTasks.Update(ctx, t); err != nil {
			return err
		}

		if t.Recurrence == nil || t.DueDate == nil {
			return nil
		}

		next, err := temporal.NextOccurrence(*t.DueDate, *t.Recurrence)
		if err != nil {
			return err
		}

		sibling := nextOccurrenceTask(t, next, completedAt)
		if err := txTasks.Create(ctx, sibling); err != nil {
			return err
		}
		result.Spawned = sibling
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *taskService) Delete(ctx context.Context, id string) error {
	return s.tasks.Delete(ctx, id)
}

// nextOccurrenceTask clones a completed recurring task into its next
// occurrence: fresh identities throughout, subtasks reset to incomplete,
// and no timer state carried over.
func nextOccurrenceTask(t *domain.Task, dueDate, now time.Time) *domain.Task {
	sibling := &domain.Task{
		ID:         uuid.New().String(),
		Title:      t.Title,
		Notes:      t.Notes,
		Priority:   t.Priority,
		Tags:       t.Tags,
		DueDate:    &dueDate,
		Recurrence: t.Recurrence,
		PlannedMin: t.PlannedMin,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for i, st := range t.Subtasks {
		sibling.Subtasks = append(sibling.Subtasks, domain.Subtask{
			ID:       uuid.New().String(),
			TaskID:   sibling.ID,
			Title:    st.Title,
			Position: i,
		})
	}
	return sibling
}
