package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/daybreak/internal/domain"
	"github.com/alexanderramin/daybreak/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskRepo_RoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(database)
	ctx := context.Background()

	due := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	started := time.Date(2025, 3, 9, 14, 30, 0, 0, time.UTC)
	task := testutil.NewTestTask("Round trip",
		testutil.WithDueDate(due),
		testutil.WithRecurrence(domain.RecurrenceRule{
			Kind:     domain.RecurWeekly,
			Interval: 2,
			Weekdays: []int{1, 3, 5},
		}),
		testutil.WithPlannedMin(90),
		testutil.WithAccumulatedMin(45),
		testutil.WithPriority(domain.PriorityHigh),
		testutil.WithSubtasks("outline", "draft"),
	)
	task.Notes = "some notes"
	task.Tags = "writing,weekly"
	task.ActiveTimerStartedAt = &started
	require.NoError(t, repo.Create(ctx, task))

	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)

	assert.Equal(t, task.Title, got.Title)
	assert.Equal(t, task.Notes, got.Notes)
	assert.Equal(t, task.Tags, got.Tags)
	assert.Equal(t, domain.PriorityHigh, got.Priority)
	require.NotNil(t, got.DueDate)
	assert.Equal(t, due, *got.DueDate)
	assert.Equal(t, 90, got.PlannedMin)
	assert.Equal(t, 45, got.AccumulatedMin)
	require.NotNil(t, got.ActiveTimerStartedAt)
	assert.Equal(t, started, got.ActiveTimerStartedAt.UTC())

	require.NotNil(t, got.Recurrence)
	assert.Equal(t, domain.RecurWeekly, got.Recurrence.Kind)
	assert.Equal(t, 2, got.Recurrence.Interval)
	assert.Equal(t, []int{1, 3, 5}, got.Recurrence.Weekdays)

	require.Len(t, got.Subtasks, 2)
	assert.Equal(t, "outline", got.Subtasks[0].Title)
	assert.Equal(t, "draft", got.Subtasks[1].Title)
	assert.Equal(t, 0, got.Subtasks[0].Position)
	assert.Equal(t, 1, got.Subtasks[1].Position)
}

func TestTaskRepo_NullableFieldsStayNil(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(database)
	ctx := context.Background()

	task := testutil.NewTestTask("Bare")
	require.NoError(t, repo.Create(ctx, task))

	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Nil(t, got.DueDate)
	assert.Nil(t, got.CompletedAt)
	assert.Nil(t, got.ActiveTimerStartedAt)
	assert.Nil(t, got.Recurrence)
	assert.Empty(t, got.Subtasks)
}

func TestTaskRepo_GetByIDNotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(database)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskRepo_ListExcludesCompleted(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(database)
	ctx := context.Background()

	open := testutil.NewTestTask("Open")
	require.NoError(t, repo.Create(ctx, open))

	done := testutil.NewTestTask("Done")
	doneAt := time.Now().UTC()
	done.Completed = true
	done.CompletedAt = &doneAt
	require.NoError(t, repo.Create(ctx, done))

	active, err := repo.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Open", active[0].Title)

	all, err := repo.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestTaskRepo_ListDueOn(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(database)
	ctx := context.Background()

	monday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, testutil.NewTestTask("Monday", testutil.WithDueDate(monday))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestTask("Tuesday", testutil.WithDueDate(monday.AddDate(0, 0, 1)))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestTask("Unscheduled")))

	due, err := repo.ListDueOn(ctx, monday)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, "Monday", due[0].Title)
}

func TestTaskRepo_UpdateReplacesSubtasks(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(database)
	ctx := context.Background()

	task := testutil.NewTestTask("Evolving", testutil.WithSubtasks("a", "b", "c"))
	require.NoError(t, repo.Create(ctx, task))

	task.Subtasks = task.Subtasks[:1]
	task.Subtasks[0].Done = true
	require.NoError(t, repo.Update(ctx, task))

	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	require.Len(t, got.Subtasks, 1)
	assert.Equal(t, "a", got.Subtasks[0].Title)
	assert.True(t, got.Subtasks[0].Done)
}

func TestTaskRepo_DeleteCascadesSubtasks(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(database)
	ctx := context.Background()

	task := testutil.NewTestTask("Doomed", testutil.WithSubtasks("x"))
	require.NoError(t, repo.Create(ctx, task))
	require.NoError(t, repo.Delete(ctx, task.ID))

	_, err := repo.GetByID(ctx, task.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	var count int
	err = database.QueryRow(`SELECT COUNT(*) FROM subtasks WHERE task_id = ?`, task.ID).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
