package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/daybreak/internal/temporal"
	"github.com/alexanderramin/daybreak/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusService_EmptyDatabase(t *testing.T) {
	env := newTestEnv(t)
	svc := env.statusService()

	now := time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC)
	report, err := svc.GetStatus(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), report.Today)
	assert.Equal(t, 0, report.DayStartHour)
	assert.Equal(t, 9*time.Hour, report.ResetIn, "next midnight is 9h away at 15:00")
	assert.Empty(t, report.DueToday)
	assert.Empty(t, report.Overdue)
	assert.Nil(t, report.Running)
	assert.Equal(t, 0, report.Streak.Count)
}

func TestStatusService_DueAndOverdueSplit(t *testing.T) {
	env := newTestEnv(t)
	svc := env.statusService()
	ctx := context.Background()

	now := time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC)
	today := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)

	require.NoError(t, env.tasks.Create(ctx,
		testutil.NewTestTask("Due today", testutil.WithDueDate(today))))
	require.NoError(t, env.tasks.Create(ctx,
		testutil.NewTestTask("Late", testutil.WithDueDate(today.AddDate(0, 0, -3)))))
	require.NoError(t, env.tasks.Create(ctx,
		testutil.NewTestTask("Future", testutil.WithDueDate(today.AddDate(0, 0, 2)))))

	// Completed overdue tasks never show up as overdue.
	done := testutil.NewTestTask("Finished late", testutil.WithDueDate(today.AddDate(0, 0, -1)))
	require.NoError(t, env.tasks.Create(ctx, done))
	_, err := env.taskService().Complete(ctx, done.ID, now)
	require.NoError(t, err)

	report, err := svc.GetStatus(ctx, now)
	require.NoError(t, err)

	require.Len(t, report.DueToday, 1)
	assert.Equal(t, "Due today", report.DueToday[0].Title)
	require.Len(t, report.Overdue, 1)
	assert.Equal(t, "Late", report.Overdue[0].Title)
}

func TestStatusService_RunningTimerIncluded(t *testing.T) {
	env := newTestEnv(t)
	svc := env.statusService()
	timers := env.timerService()
	ctx := context.Background()

	task := testutil.NewTestTask("Focus block", testutil.WithAccumulatedMin(10))
	require.NoError(t, env.tasks.Create(ctx, task))

	start := time.Date(2025, 3, 12, 14, 0, 0, 0, time.UTC)
	_, err := timers.Start(ctx, task.ID, start)
	require.NoError(t, err)

	now := start.Add(5 * time.Minute)
	report, err := svc.GetStatus(ctx, now)
	require.NoError(t, err)

	require.NotNil(t, report.Running)
	require.NotNil(t, report.RunningTask)
	assert.Equal(t, task.ID, report.RunningTask.ID)
	assert.Equal(t, 10*60+5*60, report.ElapsedSeconds, "accumulated plus live portion")
}

func TestStatusService_ResetInRespectsDayStart(t *testing.T) {
	env := newTestEnv(t)
	svc := env.statusService()
	ctx := context.Background()

	require.NoError(t, NewProfileService(env.profiles).SetDayStart(ctx, 4))

	// At 02:00 the 4am boundary is still ahead on the same calendar day.
	now := time.Date(2025, 3, 12, 2, 0, 0, 0, time.UTC)
	report, err := svc.GetStatus(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour, report.ResetIn)
	assert.Equal(t, time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), report.Today,
		"before the boundary the logical day is still yesterday")
}

func TestProfileService_SetDayStart(t *testing.T) {
	env := newTestEnv(t)
	svc := NewProfileService(env.profiles)
	ctx := context.Background()

	profile, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, profile.DayStartHour, "default profile starts the day at midnight")

	require.NoError(t, svc.SetDayStart(ctx, 4))
	profile, err = svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, profile.DayStartHour)

	assert.ErrorIs(t, svc.SetDayStart(ctx, 24), temporal.ErrInvalidDayStart)
	assert.ErrorIs(t, svc.SetDayStart(ctx, -1), temporal.ErrInvalidDayStart)

	profile, err = svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, profile.DayStartHour, "rejected values leave the profile untouched")
}
