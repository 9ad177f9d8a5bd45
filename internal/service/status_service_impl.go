package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/daybreak/internal/repository"
	"github.com/alexanderramin/daybreak/internal/temporal"
)

type statusService struct {
	tasks    repository.TaskRepo
	sessions repository.TimerSessionRepo
	profiles repository.UserProfileRepo
	streaks  StreakService
}

func NewStatusService(
	tasks repository.TaskRepo,
	sessions repository.TimerSessionRepo,
	profiles repository.UserProfileRepo,
	streaks StreakService,
) StatusService {
	return &statusService{
		tasks:    tasks,
		sessions: sessions,
		profiles: profiles,
		streaks:  streaks,
	}
}

func (s *statusService) GetStatus(ctx context.Context, now time.Time) (*StatusReport, error) {
	profile, err := s.profiles.Get(ctx)
	if err != nil {
		return nil, err
	}

	report := &StatusReport{
		Today:        temporal.LogicalToday(now, profile.DayStartHour),
		DayStartHour: profile.DayStartHour,
		ResetIn:      temporal.ResetCountdown(now, profile.DayStartHour),
	}

	if report.DueToday, err = s.tasks.ListDueOn(ctx, report.Today); err != nil {
		return nil, err
	}

	open, err := s.tasks.List(ctx, false)
	if err != nil {
		return nil, err
	}
	for _, t := range open {
		if t.DueDate != nil && t.DueDate.Before(report.Today) {
			report.Overdue = append(report.Overdue, t)
		}
	}

	session, err := s.sessions.GetOpen(ctx)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if session != nil {
		report.Running = session
		task, err := s.tasks.GetByID(ctx, session.TaskID)
		if err != nil {
			if !errors.Is(err, repository.ErrNotFound) {
				return nil, err
			}
		} else {
			report.RunningTask = task
			report.ElapsedSeconds = temporal.ElapsedSeconds(task, now)
		}
	}

	if report.Streak, err = s.streaks.Current(ctx, now); err != nil {
		return nil, err
	}
	return report, nil
}
