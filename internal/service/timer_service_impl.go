package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/daybreak/internal/db"
	"github.com/alexanderramin/daybreak/internal/domain"
	"github.com/alexanderramin/daybreak/internal/repository"
	"github.com/alexanderramin/daybreak/internal/temporal"
	"github.com/google/uuid"
)

type timerService struct {
	tasks    repository.TaskRepo
	sessions repository.TimerSessionRepo
	uow      db.UnitOfWork
}

func NewTimerService(tasks repository.TaskRepo, sessions repository.TimerSessionRepo, uow db.UnitOfWork) TimerService {
	return &timerService{tasks: tasks, sessions: sessions, uow: uow}
}

func (s *timerService) Start(ctx context.Context, taskID string, now time.Time) (*domain.TimerSession, error) {
	var opened *domain.TimerSession

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)
		txSessions := repository.NewSQLiteTimerSessionRepo(tx)

		tasks, sessions, err := loadLedger(ctx, txTasks, txSessions, taskID)
		if err != nil {
			return err
		}

		change, err := temporal.StartTimer(tasks, sessions, taskID, now)
		if err != nil {
			return err
		}

		if change.Closed != nil {
			if err := txSessions.Update(ctx, change.Closed); err != nil {
				return err
			}
		}
		for _, t := range change.Updated {
			t.UpdatedAt = now.UTC()
			if err := txTasks.Update(ctx, t); err != nil {
				return err
			}
		}
		if change.Opened != nil {
			change.Opened.ID = uuid.New().String()
			if err := txSessions.Create(ctx, change.Opened); err != nil {
				return err
			}
			opened = change.Opened
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return opened, nil
}

func (s *timerService) Stop(ctx context.Context, taskID string, now time.Time) (*domain.TimerSession, error) {
	var closed *domain.TimerSession
	var stopErr error

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)
		txSessions := repository.NewSQLiteTimerSessionRepo(tx)

		tasks, sessions, err := loadLedger(ctx, txTasks, txSessions, taskID)
		if err != nil {
			return err
		}

		change, err := temporal.StopTimer(tasks, sessions, taskID, now)
		if err != nil && !errors.Is(err, temporal.ErrTimerNotRunning) {
			return err
		}
		// A dangling-pointer detach still persists its task update so the
		// ledger lands in Idle; the error is reported after commit.
		stopErr = err

		if change.Closed != nil {
			if err := txSessions.Update(ctx, change.Closed); err != nil {
				return err
			}
			closed = change.Closed
		}
		for _, t := range change.Updated {
			t.UpdatedAt = now.UTC()
			if err := txTasks.Update(ctx, t); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if stopErr != nil {
		return nil, stopErr
	}
	return closed, nil
}

func (s *timerService) Active(ctx context.Context) (*domain.TimerSession, *domain.Task, error) {
	open, err := s.sessions.GetOpen(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, nil
		}
		return nil, nil, err
	}
	task, err := s.tasks.GetByID(ctx, open.TaskID)
	if err != nil {
		return nil, nil, err
	}
	return open, task, nil
}

func (s *timerService) ListByTask(ctx context.Context, taskID string) ([]*domain.TimerSession, error) {
	return s.sessions.ListByTask(ctx, taskID)
}

func (s *timerService) ListRecent(ctx context.Context, days int) ([]*domain.TimerSession, error) {
	return s.sessions.ListRecent(ctx, days)
}

func (s *timerService) DeleteSession(ctx context.Context, sessionID string) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)
		txSessions := repository.NewSQLiteTimerSessionRepo(tx)

		session, err := txSessions.GetByID(ctx, sessionID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return temporal.ErrUnknownSession
			}
			return err
		}

		var tasks []*domain.Task
		task, err := txTasks.GetByID(ctx, session.TaskID)
		if err == nil {
			tasks = append(tasks, task)
		} else if !errors.Is(err, repository.ErrNotFound) {
			return err
		}

		change, err := temporal.RemoveSession(tasks, []*domain.TimerSession{session}, sessionID)
		if err != nil {
			return err
		}
		for _, t := range change.Updated {
			t.UpdatedAt = time.Now().UTC()
			if err := txTasks.Update(ctx, t); err != nil {
				return err
			}
		}
		return txSessions.Delete(ctx, sessionID)
	})
}

// loadLedger gathers the tasks and sessions a ledger operation can touch:
// the target task plus whichever task currently holds the open session.
func loadLedger(ctx context.Context, tasks *repository.SQLiteTaskRepo, sessions *repository.SQLiteTimerSessionRepo, taskID string) ([]*domain.Task, []*domain.TimerSession, error) {
	var ledgerTasks []*domain.Task
	var ledgerSessions []*domain.TimerSession

	target, err := tasks.GetByID(ctx, taskID)
	if err == nil {
		ledgerTasks = append(ledgerTasks, target)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, nil, err
	}

	open, err := sessions.GetOpen(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ledgerTasks, ledgerSessions, nil
		}
		return nil, nil, err
	}
	ledgerSessions = append(ledgerSessions, open)

	if open.TaskID != taskID {
		other, err := tasks.GetByID(ctx, open.TaskID)
		if err == nil {
			ledgerTasks = append(ledgerTasks, other)
		} else if !errors.Is(err, repository.ErrNotFound) {
			return nil, nil, err
		}
	}
	return ledgerTasks, ledgerSessions, nil
}
