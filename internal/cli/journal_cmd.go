package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/daybreak/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newJournalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Keep a daily journal",
	}

	cmd.AddCommand(
		newJournalAddCmd(app),
		newJournalListCmd(app),
		newJournalRemoveCmd(app),
	)

	return cmd
}

func newJournalAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add TEXT...",
		Short: "Write a journal entry",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content := strings.Join(args, " ")
			entry, err := app.Journal.Add(context.Background(), content, time.Now())
			if err != nil {
				return err
			}
			fmt.Printf("Journaled (%s)\n", entry.ID[:8])
			return nil
		},
	}
}

func newJournalListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List journal entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Journal.List(context.Background())
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("No journal entries yet.")
				return nil
			}
			fmt.Println(formatter.FormatJournalList(entries))
			return nil
		},
	}
}

func newJournalRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm ID",
		Short: "Remove a journal entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Journal.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed entry %s\n", args[0])
			return nil
		},
	}
}
