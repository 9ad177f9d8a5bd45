package cli

import (
	"github.com/alexanderramin/daybreak/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Tasks   service.TaskService
	Timers  service.TimerService
	Habits  service.HabitService
	Journal service.JournalService
	Notes   service.NoteService
	Streaks service.StreakService
	Status  service.StatusService
	Profile service.ProfileService

	// IsInteractive reports whether stdin is a terminal; interactive forms
	// are only offered when it returns true.
	IsInteractive func() bool
}

func (app *App) interactive() bool {
	return app.IsInteractive != nil && app.IsInteractive()
}

// NewRootCmd creates the top-level "daybreak" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "daybreak",
		Short: "Tasks, habits and timers on your own clock",
	}

	root.AddCommand(
		newTaskCmd(app),
		newTimerCmd(app),
		newHabitCmd(app),
		newJournalCmd(app),
		newNoteCmd(app),
		newStreakCmd(app),
		newStatusCmd(app),
		newConfigCmd(app),
	)

	return root
}
