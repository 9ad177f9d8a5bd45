package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/daybreak/internal/cli/formatter"
	"github.com/alexanderramin/daybreak/internal/temporal"
	"github.com/spf13/cobra"
)

func newStreakCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "streak",
		Short: "Show the activity streak",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			now := time.Now()

			state, err := app.Streaks.Current(ctx, now)
			if err != nil {
				return err
			}

			profile, err := app.Profile.Get(ctx)
			if err != nil {
				return err
			}
			today := temporal.LogicalToday(now, profile.DayStartHour)

			fmt.Println(formatter.FormatStreak(state, today))
			return nil
		},
	}
}
