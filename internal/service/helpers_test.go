package service

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/daybreak/internal/db"
	"github.com/alexanderramin/daybreak/internal/repository"
	"github.com/alexanderramin/daybreak/internal/testutil"
)

// testEnv bundles every repository and unit of work over a single test
// database so scenario tests can mix service calls with direct repo reads.
type testEnv struct {
	database *sql.DB
	tasks    repository.TaskRepo
	sessions repository.TimerSessionRepo
	habits   repository.HabitRepo
	journal  repository.JournalRepo
	notes    repository.NoteRepo
	profiles repository.UserProfileRepo
	uow      db.UnitOfWork
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	return &testEnv{
		database: database,
		tasks:    repository.NewSQLiteTaskRepo(database),
		sessions: repository.NewSQLiteTimerSessionRepo(database),
		habits:   repository.NewSQLiteHabitRepo(database),
		journal:  repository.NewSQLiteJournalRepo(database),
		notes:    repository.NewSQLiteNoteRepo(database),
		profiles: repository.NewSQLiteUserProfileRepo(database),
		uow:      testutil.NewTestUoW(database),
	}
}

func (e *testEnv) taskService() TaskService {
	return NewTaskService(e.tasks, e.profiles, e.uow)
}

func (e *testEnv) timerService() TimerService {
	return NewTimerService(e.tasks, e.sessions, e.uow)
}

func (e *testEnv) habitService() HabitService {
	return NewHabitService(e.habits, e.profiles, e.uow)
}

func (e *testEnv) streakService() StreakService {
	return NewStreakService(e.tasks, e.habits, e.journal, e.notes, e.profiles)
}

func (e *testEnv) statusService() StatusService {
	return NewStatusService(e.tasks, e.sessions, e.profiles, e.streakService())
}
