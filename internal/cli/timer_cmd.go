package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/daybreak/internal/cli/formatter"
	"github.com/alexanderramin/daybreak/internal/domain"
	"github.com/alexanderramin/daybreak/internal/temporal"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTimerCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timer",
		Short: "Track time on tasks",
	}

	cmd.AddCommand(
		newTimerStartCmd(app),
		newTimerStopCmd(app),
		newTimerStatusCmd(app),
		newTimerLogCmd(app),
		newTimerRemoveCmd(app),
		newTimerWatchCmd(app),
	)

	return cmd
}

func newTimerStartCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "start TASK",
		Short: "Start a timer, switching from any running one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			taskID, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}

			opened, err := app.Timers.Start(ctx, taskID, time.Now())
			if err != nil {
				return err
			}
			if opened == nil {
				fmt.Println("Timer already running on that task.")
				return nil
			}

			t, err := app.Tasks.GetByID(ctx, taskID)
			if err != nil {
				return err
			}
			fmt.Printf("Started timer on %s\n", t.Title)
			return nil
		},
	}
}

func newTimerStopCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the running timer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			_, task, err := app.Timers.Active(ctx)
			if err != nil {
				return err
			}
			if task == nil {
				return fmt.Errorf("no timer is running")
			}

			closed, err := app.Timers.Stop(ctx, task.ID, time.Now())
			if err != nil {
				if errors.Is(err, temporal.ErrTimerNotRunning) {
					fmt.Println("Timer state was inconsistent; reset to idle.")
					return nil
				}
				return err
			}

			fmt.Printf("Stopped timer on %s after %s\n",
				task.Title, formatter.FormatClock(closed.DurationSec))
			return nil
		},
	}
}

func newTimerStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the running timer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			_, task, err := app.Timers.Active(ctx)
			if err != nil {
				return err
			}
			if task == nil {
				fmt.Println(formatter.FormatTimerStatus(nil, 0, nil))
				return nil
			}

			now := time.Now()
			elapsed := temporal.ElapsedSeconds(task, now)
			var finishPtr *time.Time
			if finish, ok := temporal.EstimatedFinish(task, now); ok {
				finishPtr = &finish
			}

			fmt.Println(formatter.FormatTimerStatus(task, elapsed, finishPtr))
			return nil
		},
	}
}

func newTimerLogCmd(app *App) *cobra.Command {
	var taskFlag string
	var days int

	cmd := &cobra.Command{
		Use:   "log",
		Short: "List timer sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var list []*domain.TimerSession
			var err error
			if taskFlag != "" {
				taskID, resolveErr := resolveTaskID(ctx, app, taskFlag)
				if resolveErr != nil {
					return resolveErr
				}
				list, err = app.Timers.ListByTask(ctx, taskID)
			} else {
				list, err = app.Timers.ListRecent(ctx, days)
			}
			if err != nil {
				return err
			}

			if len(list) == 0 {
				fmt.Println("No sessions found.")
				return nil
			}

			tasks, err := app.Tasks.List(ctx, true)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatSessionList(list, taskTitles(tasks)))
			return nil
		},
	}

	cmd.Flags().StringVar(&taskFlag, "task", "", "Filter by task")
	cmd.Flags().IntVar(&days, "days", 7, "Number of recent days to show")

	return cmd
}

func newTimerRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm SESSION",
		Short: "Remove a session, giving its minutes back to the task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Timers.DeleteSession(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed session %s\n", args[0])
			return nil
		},
	}
}

func newTimerWatchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the running timer live",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("watch needs an interactive terminal")
			}

			_, task, err := app.Timers.Active(context.Background())
			if err != nil {
				return err
			}
			if task == nil {
				return fmt.Errorf("no timer is running")
			}

			p := tea.NewProgram(newWatchModel(app, task))
			_, err = p.Run()
			return err
		},
	}
}
