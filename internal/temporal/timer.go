package temporal

import (
	"fmt"
	"time"

	"github.com/alexanderramin/daybreak/internal/domain"
)

// The timer ledger is a per-user state machine: Idle (no task has an open
// timer) or Running (exactly one task has ActiveTimerStartedAt set, and
// exactly one session is open with a matching task ID). All operations work
// on caller-supplied collections and report which entities changed; the
// caller persists the delta. Any ambiguous transition resolves toward Idle
// so two tasks can never both be marked running.

// TimerChange describes the entities a ledger operation touched.
type TimerChange struct {
	// Opened is a new session created by StartTimer. Its ID is empty; the
	// caller assigns an identity before persisting.
	Opened *domain.TimerSession
	// Closed is the previously open session that was closed, if any.
	Closed *domain.TimerSession
	// Updated lists tasks whose timer fields changed.
	Updated []*domain.Task
}

// StartTimer starts tracking the given task. If another task is running its
// timer is stopped first (auto-switch). Starting an already-running task is
// a no-op. Returns ErrUnknownItem when the task is not in the collection.
func StartTimer(tasks []*domain.Task, sessions []*domain.TimerSession, taskID string, now time.Time) (TimerChange, error) {
	target := findTask(tasks, taskID)
	if target == nil {
		return TimerChange{}, fmt.Errorf("start timer: %w: %s", ErrUnknownItem, taskID)
	}

	var change TimerChange

	for _, t := range tasks {
		if !t.TimerRunning() || t.ID == taskID {
			continue
		}
		prev, err := StopTimer(tasks, sessions, t.ID, now)
		if err != nil {
			return TimerChange{}, fmt.Errorf("stopping previous timer: %w", err)
		}
		change.Closed = prev.Closed
		change.Updated = append(change.Updated, prev.Updated...)
	}

	if target.TimerRunning() {
		// Already running on this task; double-start is a no-op.
		return change, nil
	}

	startedAt := now
	target.ActiveTimerStartedAt = &startedAt
	change.Opened = &domain.TimerSession{
		TaskID:    target.ID,
		StartedAt: now,
		CreatedAt: now,
	}
	change.Updated = append(change.Updated, target)
	return change, nil
}

// StopTimer stops the running timer on the given task, reconciling the
// elapsed time into AccumulatedMin and closing the matching open session.
// Elapsed time is floored to whole seconds and clamped at zero against
// clock skew.
func StopTimer(tasks []*domain.Task, sessions []*domain.TimerSession, taskID string, now time.Time) (TimerChange, error) {
	target := findTask(tasks, taskID)
	if target == nil {
		return TimerChange{}, fmt.Errorf("stop timer: %w: %s", ErrUnknownItem, taskID)
	}
	if !target.TimerRunning() {
		return TimerChange{}, fmt.Errorf("stop timer %s: %w", taskID, ErrTimerNotRunning)
	}

	elapsed := int(now.Sub(*target.ActiveTimerStartedAt).Seconds())
	if elapsed < 0 {
		elapsed = 0
	}

	target.AccumulatedMin += elapsed / 60
	target.ActiveTimerStartedAt = nil

	open := findOpenSession(sessions, taskID)
	if open == nil {
		// The pointer was dangling with no backing session. The task is
		// already detached above, favoring Idle.
		return TimerChange{Updated: []*domain.Task{target}},
			fmt.Errorf("no open session for task %s: %w", taskID, ErrTimerNotRunning)
	}

	endedAt := now
	open.EndedAt = &endedAt
	open.DurationSec = elapsed

	return TimerChange{Closed: open, Updated: []*domain.Task{target}}, nil
}

// ElapsedSeconds returns the task's total tracked seconds including the
// live portion of a running timer. Pure read; safe to call every second.
func ElapsedSeconds(task *domain.Task, now time.Time) int {
	total := task.AccumulatedMin * 60
	if task.TimerRunning() {
		live := int(now.Sub(*task.ActiveTimerStartedAt).Seconds())
		if live > 0 {
			total += live
		}
	}
	return total
}

// EstimatedFinish projects when the task's planned minutes will be
// exhausted at the current pace. The second return is false when no
// planned duration is set.
func EstimatedFinish(task *domain.Task, now time.Time) (time.Time, bool) {
	if task.PlannedMin <= 0 {
		return time.Time{}, false
	}
	remaining := task.PlannedMin*60 - ElapsedSeconds(task, now)
	if remaining < 0 {
		remaining = 0
	}
	return now.Add(time.Duration(remaining) * time.Second), true
}

// RemoveSession deletes a session's contribution. Removing the open session
// detaches its task's running timer (the timer lost its backing record, so
// the ledger returns to Idle); no minutes are subtracted since an open
// session never added any. Removing a closed session subtracts its duration
// from the task's AccumulatedMin, floored at zero.
func RemoveSession(tasks []*domain.Task, sessions []*domain.TimerSession, sessionID string) (TimerChange, error) {
	var session *domain.TimerSession
	for _, s := range sessions {
		if s.ID == sessionID {
			session = s
			break
		}
	}
	if session == nil {
		return TimerChange{}, fmt.Errorf("remove session: %w: %s", ErrUnknownSession, sessionID)
	}

	task := findTask(tasks, session.TaskID)
	if task == nil {
		// Orphaned session; nothing to compensate.
		return TimerChange{}, nil
	}

	if session.Open() {
		if task.TimerRunning() {
			task.ActiveTimerStartedAt = nil
			return TimerChange{Updated: []*domain.Task{task}}, nil
		}
		return TimerChange{}, nil
	}

	task.AccumulatedMin -= session.DurationSec / 60
	if task.AccumulatedMin < 0 {
		task.AccumulatedMin = 0
	}
	return TimerChange{Updated: []*domain.Task{task}}, nil
}

func findTask(tasks []*domain.Task, id string) *domain.Task {
	for _, t := range tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

func findOpenSession(sessions []*domain.TimerSession, taskID string) *domain.TimerSession {
	for _, s := range sessions {
		if s.TaskID == taskID && s.Open() {
			return s
		}
	}
	return nil
}
