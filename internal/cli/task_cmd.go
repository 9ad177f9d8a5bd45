package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/daybreak/internal/cli/formatter"
	"github.com/alexanderramin/daybreak/internal/domain"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskInspectCmd(app),
		newTaskUpdateCmd(app),
		newTaskDoneCmd(app),
		newTaskRemoveCmd(app),
		newSubtaskCmd(app),
	)

	return cmd
}

// addRecurrenceFlags registers the shared --every/--on flags on a flag set.
func addRecurrenceFlags(fs *pflag.FlagSet, every *string, on *string) {
	fs.StringVar(every, "every", "", "Recurrence, e.g. 'day', '2 weeks', 'month', 'year'")
	fs.StringVar(on, "on", "", "Weekdays for weekly recurrence, e.g. 'mon,wed,fri'")
}

// parseRecurrenceFlags converts --every/--on values into a rule, or nil when
// --every was not given.
func parseRecurrenceFlags(every, on string) (*domain.RecurrenceRule, error) {
	if every == "" {
		if on != "" {
			return nil, fmt.Errorf("--on requires --every")
		}
		return nil, nil
	}

	interval := 1
	unit := strings.ToLower(strings.TrimSpace(every))
	if fields := strings.Fields(unit); len(fields) == 2 {
		n, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("invalid recurrence %q", every)
		}
		interval = n
		unit = fields[1]
	}

	var kind domain.RecurrenceKind
	switch strings.TrimSuffix(unit, "s") {
	case "day":
		kind = domain.RecurDaily
	case "week":
		kind = domain.RecurWeekly
	case "month":
		kind = domain.RecurMonthly
	case "year":
		kind = domain.RecurYearly
	default:
		return nil, fmt.Errorf("invalid recurrence unit %q", unit)
	}

	rule := &domain.RecurrenceRule{Kind: kind, Interval: interval}
	if on != "" {
		if kind != domain.RecurWeekly {
			return nil, fmt.Errorf("--on only applies to weekly recurrence")
		}
		weekdays, err := parseWeekdays(on)
		if err != nil {
			return nil, err
		}
		rule.Weekdays = weekdays
	}
	if err := rule.Validate(); err != nil {
		return nil, err
	}
	return rule, nil
}

var weekdayNames = map[string]int{
	"sun": 0, "sunday": 0,
	"mon": 1, "monday": 1,
	"tue": 2, "tuesday": 2,
	"wed": 3, "wednesday": 3,
	"thu": 4, "thursday": 4,
	"fri": 5, "friday": 5,
	"sat": 6, "saturday": 6,
}

func parseWeekdays(csv string) ([]int, error) {
	var weekdays []int
	for _, part := range strings.Split(csv, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		wd, ok := weekdayNames[name]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", part)
		}
		weekdays = append(weekdays, wd)
	}
	return weekdays, nil
}

func newTaskAddCmd(app *App) *cobra.Command {
	var title, notes, priority, tags, due, every, on string
	var planned int
	var subtasks []string

	cmd := &cobra.Command{
		Use:   "add [TITLE]",
		Short: "Create a new task",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				title = args[0]
			}

			var plannedStr string
			// No title anywhere and a terminal attached: open the form.
			if title == "" && app.interactive() {
				form := taskAddForm(&title, &due, &plannedStr, &priority)
				if err := form.Run(); err != nil {
					return err
				}
				if plannedStr != "" {
					planned, _ = strconv.Atoi(plannedStr)
				}
			}
			if title == "" {
				return fmt.Errorf("a title is required")
			}

			t := &domain.Task{
				ID:         uuid.New().String(),
				Title:      title,
				Notes:      notes,
				Priority:   domain.Priority(priority),
				Tags:       tags,
				PlannedMin: planned,
			}

			if due != "" {
				dueDate, err := time.Parse("2006-01-02", due)
				if err != nil {
					return fmt.Errorf("invalid due date %q: %w", due, err)
				}
				t.DueDate = &dueDate
			}

			rule, err := parseRecurrenceFlags(every, on)
			if err != nil {
				return err
			}
			t.Recurrence = rule

			for i, st := range subtasks {
				t.Subtasks = append(t.Subtasks, domain.Subtask{
					ID:       uuid.New().String(),
					TaskID:   t.ID,
					Title:    st,
					Position: i,
				})
			}

			if err := app.Tasks.Create(context.Background(), t); err != nil {
				return err
			}

			fmt.Printf("Created task %s (%s)\n", t.Title, t.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	cmd.Flags().StringVar(&priority, "priority", string(domain.PriorityMedium), "Priority (low|medium|high)")
	cmd.Flags().StringVar(&tags, "tags", "", "Comma-separated tags")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&planned, "planned", 0, "Planned minutes")
	cmd.Flags().StringArrayVar(&subtasks, "subtask", nil, "Subtask title (repeatable)")
	addRecurrenceFlags(cmd.Flags(), &every, &on)

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var all, today bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var tasks []*domain.Task
			var err error
			if today {
				tasks, err = app.Tasks.ListDueToday(ctx, time.Now())
			} else {
				tasks, err = app.Tasks.List(ctx, all)
			}
			if err != nil {
				return err
			}

			if len(tasks) == 0 {
				fmt.Println("No tasks found.")
				return nil
			}

			fmt.Println(formatter.FormatTaskList(tasks))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include completed tasks")
	cmd.Flags().BoolVar(&today, "today", false, "Only tasks due today")

	return cmd
}

func newTaskInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ID",
		Short: "Show task details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			taskID, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			t, err := app.Tasks.GetByID(ctx, taskID)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatTaskInspect(t))
			return nil
		},
	}
}

func newTaskUpdateCmd(app *App) *cobra.Command {
	var title, notes, priority, tags, due, every, on string
	var planned int

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			taskID, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			t, err := app.Tasks.GetByID(ctx, taskID)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("title") {
				t.Title = title
			}
			if cmd.Flags().Changed("notes") {
				t.Notes = notes
			}
			if cmd.Flags().Changed("priority") {
				t.Priority = domain.Priority(priority)
			}
			if cmd.Flags().Changed("tags") {
				t.Tags = tags
			}
			if cmd.Flags().Changed("planned") {
				t.PlannedMin = planned
			}
			if cmd.Flags().Changed("due") {
				if due == "" {
					t.DueDate = nil
				} else {
					dueDate, err := time.Parse("2006-01-02", due)
					if err != nil {
						return fmt.Errorf("invalid due date %q: %w", due, err)
					}
					t.DueDate = &dueDate
				}
			}
			if cmd.Flags().Changed("every") {
				if every == "" {
					t.Recurrence = nil
				} else {
					rule, err := parseRecurrenceFlags(every, on)
					if err != nil {
						return err
					}
					t.Recurrence = rule
				}
			}

			if err := app.Tasks.Update(ctx, t); err != nil {
				return err
			}

			fmt.Printf("Updated task %s\n", t.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority (low|medium|high)")
	cmd.Flags().StringVar(&tags, "tags", "", "Comma-separated tags")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD, blank clears)")
	cmd.Flags().IntVar(&planned, "planned", 0, "Planned minutes")
	addRecurrenceFlags(cmd.Flags(), &every, &on)

	return cmd
}

func newTaskDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done ID",
		Short: "Complete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			taskID, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}

			result, err := app.Tasks.Complete(ctx, taskID, time.Now())
			if err != nil {
				return err
			}

			fmt.Printf("Completed %s\n", result.Completed.Title)
			if result.Spawned != nil && result.Spawned.DueDate != nil {
				fmt.Printf("Next occurrence due %s\n", result.Spawned.DueDate.Format("2006-01-02"))
			}
			return nil
		},
	}
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm ID",
		Short: "Remove a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			taskID, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Tasks.Delete(ctx, taskID); err != nil {
				return err
			}
			fmt.Printf("Removed task %s\n", taskID[:8])
			return nil
		},
	}
}

func newSubtaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subtask",
		Short: "Manage subtasks",
	}

	add := &cobra.Command{
		Use:   "add TASK TITLE",
		Short: "Add a subtask",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			taskID, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			t, err := app.Tasks.GetByID(ctx, taskID)
			if err != nil {
				return err
			}
			t.Subtasks = append(t.Subtasks, domain.Subtask{
				ID:       uuid.New().String(),
				TaskID:   t.ID,
				Title:    args[1],
				Position: len(t.Subtasks),
			})
			if err := app.Tasks.Update(ctx, t); err != nil {
				return err
			}
			fmt.Printf("Added subtask to %s\n", t.Title)
			return nil
		},
	}

	toggle := &cobra.Command{
		Use:   "toggle TASK N",
		Short: "Toggle the Nth subtask done (1-based)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			taskID, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			t, err := app.Tasks.GetByID(ctx, taskID)
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 1 || n > len(t.Subtasks) {
				return fmt.Errorf("subtask number out of range (task has %d)", len(t.Subtasks))
			}
			t.Subtasks[n-1].Done = !t.Subtasks[n-1].Done
			if err := app.Tasks.Update(ctx, t); err != nil {
				return err
			}

			state := "open"
			if t.Subtasks[n-1].Done {
				state = "done"
			}
			fmt.Printf("Subtask %q is now %s\n", t.Subtasks[n-1].Title, state)
			return nil
		},
	}

	cmd.AddCommand(add, toggle)
	return cmd
}
