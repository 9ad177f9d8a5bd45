package service

import (
	"context"
	"time"

	"github.com/alexanderramin/daybreak/internal/repository"
	"github.com/alexanderramin/daybreak/internal/temporal"
)

type streakService struct {
	tasks    repository.TaskRepo
	habits   repository.HabitRepo
	journal  repository.JournalRepo
	notes    repository.NoteRepo
	profiles repository.UserProfileRepo
}

func NewStreakService(
	tasks repository.TaskRepo,
	habits repository.HabitRepo,
	journal repository.JournalRepo,
	notes repository.NoteRepo,
	profiles repository.UserProfileRepo,
) StreakService {
	return &streakService{
		tasks:    tasks,
		habits:   habits,
		journal:  journal,
		notes:    notes,
		profiles: profiles,
	}
}

// Current recomputes the streak from scratch on every call. Nothing is
// cached or persisted, so edits and deletions anywhere in the data are
// reflected immediately.
func (s *streakService) Current(ctx context.Context, now time.Time) (temporal.StreakState, error) {
	profile, err := s.profiles.Get(ctx)
	if err != nil {
		return temporal.StreakState{}, err
	}

	src, err := s.loadSources(ctx)
	if err != nil {
		return temporal.StreakState{}, err
	}

	dates := temporal.CollectActivityDates(src, profile.DayStartHour)
	today := temporal.LogicalToday(now, profile.DayStartHour)
	yesterday := temporal.LogicalDateOffset(now, -1, profile.DayStartHour)
	return temporal.ComputeStreak(dates, today, yesterday), nil
}

func (s *streakService) loadSources(ctx context.Context) (temporal.ActivitySources, error) {
	var src temporal.ActivitySources
	var err error

	if src.Tasks, err = s.tasks.List(ctx, true); err != nil {
		return src, err
	}
	if src.Habits, err = s.habits.List(ctx); err != nil {
		return src, err
	}
	if src.HabitLogs, err = s.habits.ListAllLogs(ctx); err != nil {
		return src, err
	}
	if src.Journal, err = s.journal.List(ctx); err != nil {
		return src, err
	}
	if src.Notes, err = s.notes.List(ctx); err != nil {
		return src, err
	}
	return src, nil
}
