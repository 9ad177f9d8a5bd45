package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/daybreak/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newNoteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Manage notes",
	}

	cmd.AddCommand(
		newNoteAddCmd(app),
		newNoteListCmd(app),
		newNoteEditCmd(app),
		newNoteRemoveCmd(app),
	)

	return cmd
}

func newNoteAddCmd(app *App) *cobra.Command {
	var body string

	cmd := &cobra.Command{
		Use:   "add TITLE",
		Short: "Create a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			note, err := app.Notes.Add(context.Background(), args[0], body, time.Now())
			if err != nil {
				return err
			}
			fmt.Printf("Created note %s (%s)\n", note.Title, note.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&body, "body", "", "Note body")

	return cmd
}

func newNoteListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List notes",
		RunE: func(cmd *cobra.Command, args []string) error {
			notes, err := app.Notes.List(context.Background())
			if err != nil {
				return err
			}
			if len(notes) == 0 {
				fmt.Println("No notes yet.")
				return nil
			}
			fmt.Println(formatter.FormatNoteList(notes))
			return nil
		},
	}
}

func newNoteEditCmd(app *App) *cobra.Command {
	var title, body string

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Edit a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			notes, err := app.Notes.List(ctx)
			if err != nil {
				return err
			}
			var match *int
			for i, n := range notes {
				if n.ID == args[0] || strings.HasPrefix(n.ID, args[0]) {
					if match != nil {
						return fmt.Errorf("note %q is ambiguous", args[0])
					}
					idx := i
					match = &idx
				}
			}
			if match == nil {
				return fmt.Errorf("note not found: %q", args[0])
			}
			note := notes[*match]

			if cmd.Flags().Changed("title") {
				note.Title = title
			}
			if cmd.Flags().Changed("body") {
				note.Body = body
			}

			if err := app.Notes.Update(ctx, note, time.Now()); err != nil {
				return err
			}
			fmt.Printf("Updated note %s\n", note.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Note title")
	cmd.Flags().StringVar(&body, "body", "", "Note body")

	return cmd
}

func newNoteRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm ID",
		Short: "Remove a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Notes.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed note %s\n", args[0])
			return nil
		},
	}
}
