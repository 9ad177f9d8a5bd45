package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/daybreak/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show today's dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.Status.GetStatus(context.Background(), time.Now())
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatStatus(report))
			return nil
		},
	}
}
