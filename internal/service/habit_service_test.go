package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/daybreak/internal/domain"
	"github.com/alexanderramin/daybreak/internal/repository"
	"github.com/alexanderramin/daybreak/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHabitService_LogProgressCreatesAndAccumulates(t *testing.T) {
	env := newTestEnv(t)
	svc := env.habitService()
	ctx := context.Background()

	habit := testutil.NewTestHabit("Pushups", testutil.WithGoal(domain.GoalBuild, 50))
	require.NoError(t, svc.Create(ctx, habit))

	now := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	log, err := svc.LogProgress(ctx, habit.ID, now, 20)
	require.NoError(t, err)
	assert.Equal(t, 20, log.Progress)

	// Same logical day accumulates into the same row.
	log, err = svc.LogProgress(ctx, habit.ID, now.Add(2*time.Hour), 30)
	require.NoError(t, err)
	assert.Equal(t, 50, log.Progress)

	logs, err := svc.ListLogs(ctx, habit.ID)
	require.NoError(t, err)
	require.Len(t, logs, 1, "one row per logical day")
	assert.True(t, habit.Satisfied(logs[0].Progress))
}

func TestHabitService_LogProgressFloorsAtZero(t *testing.T) {
	env := newTestEnv(t)
	svc := env.habitService()
	ctx := context.Background()

	habit := testutil.NewTestHabit("Reading")
	require.NoError(t, svc.Create(ctx, habit))

	now := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	_, err := svc.LogProgress(ctx, habit.ID, now, 3)
	require.NoError(t, err)

	log, err := svc.LogProgress(ctx, habit.ID, now, -10)
	require.NoError(t, err)
	assert.Equal(t, 0, log.Progress)
}

func TestHabitService_LogBucketsByDayStart(t *testing.T) {
	env := newTestEnv(t)
	svc := env.habitService()
	ctx := context.Background()

	profiles := NewProfileService(env.profiles)
	require.NoError(t, profiles.SetDayStart(ctx, 4))

	habit := testutil.NewTestHabit("Meditate")
	require.NoError(t, svc.Create(ctx, habit))

	// 01:00 Tuesday belongs to logical Monday with a 4am day start.
	lateNight := time.Date(2025, 3, 11, 1, 0, 0, 0, time.UTC)
	log, err := svc.LogProgress(ctx, habit.ID, lateNight, 1)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), log.Day)

	// 09:00 Tuesday starts a fresh row.
	morning := time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC)
	log, err = svc.LogProgress(ctx, habit.ID, morning, 1)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), log.Day)

	logs, err := svc.ListLogs(ctx, habit.ID)
	require.NoError(t, err)
	assert.Len(t, logs, 2)
}

func TestHabitService_SkipMarksDay(t *testing.T) {
	env := newTestEnv(t)
	svc := env.habitService()
	ctx := context.Background()

	habit := testutil.NewTestHabit("Run")
	require.NoError(t, svc.Create(ctx, habit))

	now := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	log, err := svc.Skip(ctx, habit.ID, now, true)
	require.NoError(t, err)
	assert.True(t, log.Skipped)
	assert.Equal(t, 0, log.Progress)

	log, err = svc.Skip(ctx, habit.ID, now, false)
	require.NoError(t, err)
	assert.False(t, log.Skipped)
}

func TestHabitService_LogUnknownHabit(t *testing.T) {
	env := newTestEnv(t)
	svc := env.habitService()

	_, err := svc.LogProgress(context.Background(), "missing", time.Now().UTC(), 1)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestHabitService_CreateValidatesGoal(t *testing.T) {
	env := newTestEnv(t)
	svc := env.habitService()
	ctx := context.Background()

	bad := testutil.NewTestHabit("Bad", testutil.WithGoal(domain.GoalType("hoard"), 1))
	assert.Error(t, svc.Create(ctx, bad))

	zero := testutil.NewTestHabit("Zero", testutil.WithGoal(domain.GoalBuild, 0))
	assert.Error(t, svc.Create(ctx, zero))
}
