package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "View and change settings",
	}

	cmd.AddCommand(newDayStartCmd(app))

	return cmd
}

func newDayStartCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "day-start [HOUR]",
		Short: "Show or set the hour the logical day begins (0-23)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if len(args) == 0 {
				profile, err := app.Profile.Get(ctx)
				if err != nil {
					return err
				}
				fmt.Printf("Day starts at %02d:00\n", profile.DayStartHour)
				return nil
			}

			hour, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid hour %q", args[0])
			}
			if err := app.Profile.SetDayStart(ctx, hour); err != nil {
				return err
			}
			fmt.Printf("Day now starts at %02d:00\n", hour)
			return nil
		},
	}
}
