package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/daybreak/internal/domain"
)

// resolveTaskID resolves user input to a task ID: exact match first, then
// unique ID prefix, then unique case-insensitive title prefix.
func resolveTaskID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("task ID is required")
	}

	tasks, err := app.Tasks.List(ctx, true)
	if err != nil {
		return "", err
	}

	for _, t := range tasks {
		if t.ID == input {
			return t.ID, nil
		}
	}

	var matches []string
	for _, t := range tasks {
		if strings.HasPrefix(t.ID, input) {
			matches = append(matches, t.ID)
		}
	}
	if len(matches) == 0 {
		lowered := strings.ToLower(input)
		for _, t := range tasks {
			if strings.HasPrefix(strings.ToLower(t.Title), lowered) {
				matches = append(matches, t.ID)
			}
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("task not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("task %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveHabitID resolves user input to a habit ID using the same matching
// rules as resolveTaskID.
func resolveHabitID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("habit ID is required")
	}

	habits, err := app.Habits.List(ctx)
	if err != nil {
		return "", err
	}

	for _, h := range habits {
		if h.ID == input {
			return h.ID, nil
		}
	}

	var matches []string
	for _, h := range habits {
		if strings.HasPrefix(h.ID, input) {
			matches = append(matches, h.ID)
		}
	}
	if len(matches) == 0 {
		lowered := strings.ToLower(input)
		for _, h := range habits {
			if strings.HasPrefix(strings.ToLower(h.Title), lowered) {
				matches = append(matches, h.ID)
			}
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("habit not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("habit %q is ambiguous (%d matches)", input, len(matches))
	}
}

// taskTitles builds an ID-to-title map for session listings.
func taskTitles(tasks []*domain.Task) map[string]string {
	titles := make(map[string]string, len(tasks))
	for _, t := range tasks {
		titles[t.ID] = t.Title
	}
	return titles
}
