package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/daybreak/internal/domain"
	"github.com/alexanderramin/daybreak/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreakService_EmptyDatabase(t *testing.T) {
	env := newTestEnv(t)
	svc := env.streakService()

	state, err := svc.Current(context.Background(), time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, 0, state.Count)
	assert.False(t, state.ActiveToday)
	assert.Empty(t, state.History)
}

func TestStreakService_MixedSourcesAcrossDays(t *testing.T) {
	env := newTestEnv(t)
	svc := env.streakService()
	ctx := context.Background()

	now := time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC)
	day := func(offset int) time.Time { return now.AddDate(0, 0, offset) }

	// Three consecutive days of activity from three different sources.
	require.NoError(t, env.tasks.Create(ctx,
		testutil.NewTestTask("Old task", testutil.WithCreatedAt(day(-2)))))
	require.NoError(t, env.journal.Create(ctx,
		testutil.NewTestJournalEntry("Reflections", day(-1))))
	require.NoError(t, env.notes.Create(ctx,
		testutil.NewTestNote("Scratch", day(0))))

	state, err := svc.Current(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 3, state.Count)
	assert.True(t, state.ActiveToday)
	assert.Len(t, state.History, 3)
}

func TestStreakService_GraceDayKeepsStreakAlive(t *testing.T) {
	env := newTestEnv(t)
	svc := env.streakService()
	ctx := context.Background()

	now := time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC)
	require.NoError(t, env.journal.Create(ctx,
		testutil.NewTestJournalEntry("Yesterday only", now.AddDate(0, 0, -1))))

	state, err := svc.Current(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, state.Count, "yesterday's activity holds the streak through today")
	assert.False(t, state.ActiveToday)
}

func TestStreakService_SatisfiedHabitLogCounts(t *testing.T) {
	env := newTestEnv(t)
	habits := env.habitService()
	streaks := env.streakService()
	ctx := context.Background()

	habit := testutil.NewTestHabit("Stretch", testutil.WithGoal(domain.GoalBuild, 2))
	require.NoError(t, habits.Create(ctx, habit))

	now := time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC)

	// One rep is below target; the day does not count yet.
	_, err := habits.LogProgress(ctx, habit.ID, now, 1)
	require.NoError(t, err)

	state, err := streaks.Current(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 0, state.Count)

	_, err = habits.LogProgress(ctx, habit.ID, now, 1)
	require.NoError(t, err)

	state, err = streaks.Current(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, state.Count)
	assert.True(t, state.ActiveToday)
}

func TestStreakService_RecomputedAfterDeletion(t *testing.T) {
	env := newTestEnv(t)
	journal := NewJournalService(env.journal)
	streaks := env.streakService()
	ctx := context.Background()

	now := time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC)
	entry, err := journal.Add(ctx, "Only activity", now)
	require.NoError(t, err)

	state, err := streaks.Current(ctx, now)
	require.NoError(t, err)
	require.Equal(t, 1, state.Count)

	// Nothing is cached: deleting the only source drops the streak to zero.
	require.NoError(t, journal.Delete(ctx, entry.ID))

	state, err = streaks.Current(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 0, state.Count)
	assert.Empty(t, state.History)
}

func TestStreakService_DayStartShiftsBuckets(t *testing.T) {
	env := newTestEnv(t)
	streaks := env.streakService()
	ctx := context.Background()

	profiles := NewProfileService(env.profiles)
	require.NoError(t, profiles.SetDayStart(ctx, 4))

	// Activity at 01:00 belongs to the previous logical day, and so does
	// "now" at 02:00 the same night, so the streak sees it as today.
	activity := time.Date(2025, 3, 12, 1, 0, 0, 0, time.UTC)
	require.NoError(t, env.journal.Create(ctx,
		testutil.NewTestJournalEntry("Night owl", activity)))

	now := time.Date(2025, 3, 12, 2, 0, 0, 0, time.UTC)
	state, err := streaks.Current(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, state.Count)
	assert.True(t, state.ActiveToday)
}
