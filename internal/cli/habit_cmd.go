package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/alexanderramin/daybreak/internal/cli/formatter"
	"github.com/alexanderramin/daybreak/internal/domain"
	"github.com/alexanderramin/daybreak/internal/repository"
	"github.com/alexanderramin/daybreak/internal/temporal"
	"github.com/spf13/cobra"
)

func newHabitCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "habit",
		Short: "Manage habits",
	}

	cmd.AddCommand(
		newHabitAddCmd(app),
		newHabitListCmd(app),
		newHabitLogCmd(app),
		newHabitSkipCmd(app),
		newHabitHistoryCmd(app),
		newHabitRemoveCmd(app),
	)

	return cmd
}

func newHabitAddCmd(app *App) *cobra.Command {
	var goal string
	var target int

	cmd := &cobra.Command{
		Use:   "add TITLE",
		Short: "Create a new habit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h := &domain.Habit{
				Title:    args[0],
				GoalType: domain.GoalType(goal),
				Target:   target,
			}
			if err := app.Habits.Create(context.Background(), h); err != nil {
				return err
			}
			fmt.Printf("Created habit %s (%s)\n", h.Title, h.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&goal, "goal", string(domain.GoalBuild), "Goal type (build|limit)")
	cmd.Flags().IntVar(&target, "target", 1, "Daily target count")

	return cmd
}

func newHabitListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List habits with today's progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			habits, err := app.Habits.List(ctx)
			if err != nil {
				return err
			}
			if len(habits) == 0 {
				fmt.Println("No habits found.")
				return nil
			}

			profile, err := app.Profile.Get(ctx)
			if err != nil {
				return err
			}
			today := temporal.LogicalToday(time.Now(), profile.DayStartHour)

			// Today's log per habit; a day with no entry stays nil.
			logs := make(map[string]*domain.HabitLog, len(habits))
			for _, h := range habits {
				history, err := app.Habits.ListLogs(ctx, h.ID)
				if err != nil {
					return err
				}
				if len(history) > 0 && history[0].Day.Equal(today) {
					logs[h.ID] = history[0]
				}
			}

			fmt.Println(formatter.FormatHabitList(habits, logs))
			return nil
		},
	}
}

func newHabitLogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log HABIT [COUNT]",
		Short: "Log progress for today",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			habitID, err := resolveHabitID(ctx, app, args[0])
			if err != nil {
				return err
			}

			delta := 1
			if len(args) == 2 {
				delta, err = strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("invalid count %q", args[1])
				}
			}

			log, err := app.Habits.LogProgress(ctx, habitID, time.Now(), delta)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return fmt.Errorf("habit not found")
				}
				return err
			}

			h, err := app.Habits.GetByID(ctx, habitID)
			if err != nil {
				return err
			}

			status := ""
			if h.Satisfied(log.Progress) && h.GoalType == domain.GoalBuild {
				status = " ✔ goal met"
			}
			fmt.Printf("%s: %d/%d today%s\n", h.Title, log.Progress, h.Target, status)
			return nil
		},
	}
	return cmd
}

func newHabitSkipCmd(app *App) *cobra.Command {
	var undo bool

	cmd := &cobra.Command{
		Use:   "skip HABIT",
		Short: "Skip today without breaking the streak",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			habitID, err := resolveHabitID(ctx, app, args[0])
			if err != nil {
				return err
			}

			log, err := app.Habits.Skip(ctx, habitID, time.Now(), !undo)
			if err != nil {
				return err
			}

			if log.Skipped {
				fmt.Println("Skipped for today.")
			} else {
				fmt.Println("Skip removed.")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&undo, "undo", false, "Remove today's skip")

	return cmd
}

func newHabitHistoryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "history HABIT",
		Short: "Show a habit's daily log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			habitID, err := resolveHabitID(ctx, app, args[0])
			if err != nil {
				return err
			}
			h, err := app.Habits.GetByID(ctx, habitID)
			if err != nil {
				return err
			}
			logs, err := app.Habits.ListLogs(ctx, habitID)
			if err != nil {
				return err
			}
			if len(logs) == 0 {
				fmt.Println("No log entries yet.")
				return nil
			}
			fmt.Println(formatter.FormatHabitHistory(h, logs))
			return nil
		},
	}
}

func newHabitRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm HABIT",
		Short: "Remove a habit and its history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			habitID, err := resolveHabitID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Habits.Delete(ctx, habitID); err != nil {
				return err
			}
			fmt.Printf("Removed habit %s\n", habitID[:8])
			return nil
		},
	}
}
