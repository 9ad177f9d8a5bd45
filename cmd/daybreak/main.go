package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/daybreak/internal/cli"
	"github.com/alexanderramin/daybreak/internal/db"
	"github.com/alexanderramin/daybreak/internal/repository"
	"github.com/alexanderramin/daybreak/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.daybreak/daybreak.db
	dbPath := os.Getenv("DAYBREAK_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".daybreak", "daybreak.db")
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	taskRepo := repository.NewSQLiteTaskRepo(database)
	sessionRepo := repository.NewSQLiteTimerSessionRepo(database)
	habitRepo := repository.NewSQLiteHabitRepo(database)
	journalRepo := repository.NewSQLiteJournalRepo(database)
	noteRepo := repository.NewSQLiteNoteRepo(database)
	profileRepo := repository.NewSQLiteUserProfileRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire services
	streakSvc := service.NewStreakService(taskRepo, habitRepo, journalRepo, noteRepo, profileRepo)

	app := &cli.App{
		Tasks:   service.NewTaskService(taskRepo, profileRepo, uow),
		Timers:  service.NewTimerService(taskRepo, sessionRepo, uow),
		Habits:  service.NewHabitService(habitRepo, profileRepo, uow),
		Journal: service.NewJournalService(journalRepo),
		Notes:   service.NewNoteService(noteRepo),
		Streaks: streakSvc,
		Status:  service.NewStatusService(taskRepo, sessionRepo, profileRepo, streakSvc),
		Profile: service.NewProfileService(profileRepo),
	}

	// Detect interactive terminal for forms and the live timer view.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
