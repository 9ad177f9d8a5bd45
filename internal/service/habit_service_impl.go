package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/daybreak/internal/db"
	"github.com/alexanderramin/daybreak/internal/domain"
	"github.com/alexanderramin/daybreak/internal/repository"
	"github.com/alexanderramin/daybreak/internal/temporal"
	"github.com/google/uuid"
)

type habitService struct {
	habits   repository.HabitRepo
	profiles repository.UserProfileRepo
	uow      db.UnitOfWork
}

func NewHabitService(habits repository.HabitRepo, profiles repository.UserProfileRepo, uow db.UnitOfWork) HabitService {
	return &habitService{habits: habits, profiles: profiles, uow: uow}
}

func (s *habitService) Create(ctx context.Context, h *domain.Habit) error {
	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	if h.GoalType == "" {
		h.GoalType = domain.GoalBuild
	}
	if !domain.ValidGoalTypes[string(h.GoalType)] {
		return fmt.Errorf("unknown goal type %q", h.GoalType)
	}
	if h.Target < 1 {
		return fmt.Errorf("habit target %d must be >= 1", h.Target)
	}

	now := time.Now().UTC()
	h.CreatedAt = now
	h.UpdatedAt = now
	return s.habits.Create(ctx, h)
}

func (s *habitService) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	return s.habits.GetByID(ctx, id)
}

func (s *habitService) List(ctx context.Context) ([]*domain.Habit, error) {
	return s.habits.List(ctx)
}

func (s *habitService) Update(ctx context.Context, h *domain.Habit) error {
	h.UpdatedAt = time.Now().UTC()
	return s.habits.Update(ctx, h)
}

func (s *habitService) Delete(ctx context.Context, id string) error {
	return s.habits.Delete(ctx, id)
}

func (s *habitService) LogProgress(ctx context.Context, habitID string, now time.Time, delta int) (*domain.HabitLog, error) {
	return s.mutateLog(ctx, habitID, now, func(log *domain.HabitLog) {
		log.Progress += delta
		if log.Progress < 0 {
			log.Progress = 0
		}
	})
}

func (s *habitService) Skip(ctx context.Context, habitID string, now time.Time, skipped bool) (*domain.HabitLog, error) {
	return s.mutateLog(ctx, habitID, now, func(log *domain.HabitLog) {
		log.Skipped = skipped
	})
}

func (s *habitService) ListLogs(ctx context.Context, habitID string) ([]*domain.HabitLog, error) {
	return s.habits.ListLogs(ctx, habitID)
}

// mutateLog applies fn to today's log row for the habit, creating the row
// when the day has no progress yet. "Today" is bucketed by the profile's
// day-start hour, read once per call.
func (s *habitService) mutateLog(ctx context.Context, habitID string, now time.Time, fn func(*domain.HabitLog)) (*domain.HabitLog, error) {
	profile, err := s.profiles.Get(ctx)
	if err != nil {
		return nil, err
	}
	day := temporal.LogicalToday(now, profile.DayStartHour)

	var log *domain.HabitLog
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txHabits := repository.NewSQLiteHabitRepo(tx)

		if _, err := txHabits.GetByID(ctx, habitID); err != nil {
			return err
		}

		log, err = txHabits.GetLog(ctx, habitID, day)
		if err != nil {
			if !errors.Is(err, repository.ErrNotFound) {
				return err
			}
			log = &domain.HabitLog{
				ID:      uuid.New().String(),
				HabitID: habitID,
				Day:     day,
			}
		}

		fn(log)
		return txHabits.UpsertLog(ctx, log)
	})
	if err != nil {
		return nil, err
	}
	return log, nil
}
