package temporal

import (
	"testing"
	"time"

	"github.com/alexanderramin/daybreak/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var timerNow = time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)

func makeTask(id string) *domain.Task {
	return &domain.Task{ID: id, Title: "Task " + id, CreatedAt: timerNow, UpdatedAt: timerNow}
}

// runningCount returns how many tasks currently hold the active timer and
// how many sessions are open.
func ledgerState(tasks []*domain.Task, sessions []*domain.TimerSession) (running, open int) {
	for _, t := range tasks {
		if t.TimerRunning() {
			running++
		}
	}
	for _, s := range sessions {
		if s.Open() {
			open++
		}
	}
	return running, open
}

func TestStartTimer_OpensSessionAndMarksTask(t *testing.T) {
	a := makeTask("a")
	tasks := []*domain.Task{a}

	change, err := StartTimer(tasks, nil, "a", timerNow)
	require.NoError(t, err)

	require.NotNil(t, change.Opened)
	assert.Equal(t, "a", change.Opened.TaskID)
	assert.Equal(t, timerNow, change.Opened.StartedAt)
	assert.True(t, change.Opened.Open())
	require.NotNil(t, a.ActiveTimerStartedAt)
	assert.Equal(t, timerNow, *a.ActiveTimerStartedAt)
}

func TestStartTimer_UnknownTask(t *testing.T) {
	_, err := StartTimer([]*domain.Task{makeTask("a")}, nil, "missing", timerNow)
	assert.ErrorIs(t, err, ErrUnknownItem)
}

func TestStartTimer_SameTaskIsNoOp(t *testing.T) {
	a := makeTask("a")
	tasks := []*domain.Task{a}

	first, err := StartTimer(tasks, nil, "a", timerNow)
	require.NoError(t, err)
	first.Opened.ID = "s1"
	sessions := []*domain.TimerSession{first.Opened}

	// Rapid double-start must not open a second session.
	again, err := StartTimer(tasks, sessions, "a", timerNow.Add(5*time.Second))
	require.NoError(t, err)
	assert.Nil(t, again.Opened)
	assert.Equal(t, timerNow, *a.ActiveTimerStartedAt, "original start time preserved")
}

func TestStartTimer_AutoSwitchStopsPrevious(t *testing.T) {
	a, b := makeTask("a"), makeTask("b")
	tasks := []*domain.Task{a, b}

	change, err := StartTimer(tasks, nil, "a", timerNow)
	require.NoError(t, err)
	change.Opened.ID = "s1"
	sessions := []*domain.TimerSession{change.Opened}

	// Starting B one minute later closes A's session with 60s.
	change, err = StartTimer(tasks, sessions, "b", timerNow.Add(60*time.Second))
	require.NoError(t, err)

	require.NotNil(t, change.Closed)
	assert.Equal(t, "a", change.Closed.TaskID)
	assert.Equal(t, 60, change.Closed.DurationSec)
	assert.False(t, change.Closed.Open())

	assert.Equal(t, 1, a.AccumulatedMin, "A gains one accumulated minute")
	assert.False(t, a.TimerRunning())
	assert.True(t, b.TimerRunning())

	require.NotNil(t, change.Opened)
	assert.Equal(t, "b", change.Opened.TaskID)
}

func TestStopTimer_ReconcilesMinutesAndClosesSession(t *testing.T) {
	a := makeTask("a")
	tasks := []*domain.Task{a}

	change, err := StartTimer(tasks, nil, "a", timerNow)
	require.NoError(t, err)
	change.Opened.ID = "s1"
	sessions := []*domain.TimerSession{change.Opened}

	stop, err := StopTimer(tasks, sessions, "a", timerNow.Add(150*time.Second))
	require.NoError(t, err)

	require.NotNil(t, stop.Closed)
	assert.Equal(t, 150, stop.Closed.DurationSec)
	assert.Equal(t, 2, a.AccumulatedMin, "150s floors to 2 minutes")
	assert.False(t, a.TimerRunning())
}

func TestStopTimer_IdleIsError(t *testing.T) {
	a := makeTask("a")
	_, err := StopTimer([]*domain.Task{a}, nil, "a", timerNow)
	assert.ErrorIs(t, err, ErrTimerNotRunning)
	assert.Equal(t, 0, a.AccumulatedMin)
}

func TestStopTimer_ClockSkewClampsToZero(t *testing.T) {
	a := makeTask("a")
	tasks := []*domain.Task{a}

	change, err := StartTimer(tasks, nil, "a", timerNow)
	require.NoError(t, err)
	change.Opened.ID = "s1"
	sessions := []*domain.TimerSession{change.Opened}

	// "now" earlier than the start: clamp, never negative.
	stop, err := StopTimer(tasks, sessions, "a", timerNow.Add(-30*time.Second))
	require.NoError(t, err)
	assert.Equal(t, 0, stop.Closed.DurationSec)
	assert.Equal(t, 0, a.AccumulatedMin)
}

func TestStopTimer_DanglingPointerFavorsIdle(t *testing.T) {
	a := makeTask("a")
	startedAt := timerNow
	a.ActiveTimerStartedAt = &startedAt

	// No open session backs the pointer.
	_, err := StopTimer([]*domain.Task{a}, nil, "a", timerNow.Add(time.Minute))
	assert.ErrorIs(t, err, ErrTimerNotRunning)
	assert.False(t, a.TimerRunning(), "dangling pointer must be detached")
}

func TestTimerInvariant_AtMostOneRunningAcrossAnySequence(t *testing.T) {
	a, b, c := makeTask("a"), makeTask("b"), makeTask("c")
	tasks := []*domain.Task{a, b, c}
	var sessions []*domain.TimerSession

	now := timerNow
	nextID := 0
	apply := func(op func() (TimerChange, error)) {
		change, _ := op()
		if change.Opened != nil {
			nextID++
			change.Opened.ID = string(rune('0' + nextID))
			sessions = append(sessions, change.Opened)
		}
	}

	steps := []string{"a", "b", "b", "c", "a"}
	for _, id := range steps {
		id := id
		apply(func() (TimerChange, error) { return StartTimer(tasks, sessions, id, now) })
		now = now.Add(45 * time.Second)

		running, open := ledgerState(tasks, sessions)
		require.LessOrEqual(t, running, 1, "more than one task running")
		require.Equal(t, running, open, "open sessions must match running tasks")
	}

	apply(func() (TimerChange, error) { return StopTimer(tasks, sessions, "a", now) })
	running, open := ledgerState(tasks, sessions)
	assert.Zero(t, running)
	assert.Zero(t, open)
}

func TestElapsedSeconds_IncludesLivePortion(t *testing.T) {
	a := makeTask("a")
	a.AccumulatedMin = 2
	assert.Equal(t, 120, ElapsedSeconds(a, timerNow))

	startedAt := timerNow
	a.ActiveTimerStartedAt = &startedAt
	assert.Equal(t, 120+45, ElapsedSeconds(a, timerNow.Add(45*time.Second)))
}

func TestElapsedSeconds_SkewedLivePortionIgnored(t *testing.T) {
	a := makeTask("a")
	a.AccumulatedMin = 1
	startedAt := timerNow
	a.ActiveTimerStartedAt = &startedAt
	assert.Equal(t, 60, ElapsedSeconds(a, timerNow.Add(-time.Minute)))
}

func TestEstimatedFinish_ProjectsRemainingPlannedTime(t *testing.T) {
	a := makeTask("a")
	a.PlannedMin = 30
	a.AccumulatedMin = 10

	finish, ok := EstimatedFinish(a, timerNow)
	require.True(t, ok)
	assert.Equal(t, timerNow.Add(20*time.Minute), finish)
}

func TestEstimatedFinish_OverrunClampsToNow(t *testing.T) {
	a := makeTask("a")
	a.PlannedMin = 10
	a.AccumulatedMin = 25

	finish, ok := EstimatedFinish(a, timerNow)
	require.True(t, ok)
	assert.Equal(t, timerNow, finish)
}

func TestEstimatedFinish_AbsentWithoutPlannedMinutes(t *testing.T) {
	_, ok := EstimatedFinish(makeTask("a"), timerNow)
	assert.False(t, ok)
}

func TestRemoveSession_ClosedSubtractsMinutes(t *testing.T) {
	a := makeTask("a")
	a.AccumulatedMin = 5
	ended := timerNow.Add(3 * time.Minute)
	s := &domain.TimerSession{ID: "s1", TaskID: "a", StartedAt: timerNow, EndedAt: &ended, DurationSec: 180}

	change, err := RemoveSession([]*domain.Task{a}, []*domain.TimerSession{s}, "s1")
	require.NoError(t, err)
	assert.Equal(t, 2, a.AccumulatedMin)
	assert.Len(t, change.Updated, 1)
}

func TestRemoveSession_NeverBelowZero(t *testing.T) {
	a := makeTask("a")
	a.AccumulatedMin = 1
	ended := timerNow.Add(10 * time.Minute)
	s := &domain.TimerSession{ID: "s1", TaskID: "a", StartedAt: timerNow, EndedAt: &ended, DurationSec: 600}

	_, err := RemoveSession([]*domain.Task{a}, []*domain.TimerSession{s}, "s1")
	require.NoError(t, err)
	assert.Equal(t, 0, a.AccumulatedMin)
}

func TestRemoveSession_OpenDetachesTimer(t *testing.T) {
	a := makeTask("a")
	startedAt := timerNow
	a.ActiveTimerStartedAt = &startedAt
	a.AccumulatedMin = 4
	s := &domain.TimerSession{ID: "s1", TaskID: "a", StartedAt: timerNow}

	_, err := RemoveSession([]*domain.Task{a}, []*domain.TimerSession{s}, "s1")
	require.NoError(t, err)
	assert.False(t, a.TimerRunning(), "ledger returns to Idle")
	assert.Equal(t, 4, a.AccumulatedMin, "open session never added minutes, so none are removed")
}

func TestRemoveSession_Unknown(t *testing.T) {
	_, err := RemoveSession(nil, nil, "missing")
	assert.ErrorIs(t, err, ErrUnknownSession)
}
