package temporal

import (
	"sort"
	"time"

	"github.com/alexanderramin/daybreak/internal/domain"
)

// StreakState is the derived cross-domain activity streak. It is never
// persisted; it is always recomputed from the full activity set.
type StreakState struct {
	// Count is the number of consecutive logical days with activity,
	// walking backward from today (or yesterday, see ComputeStreak).
	Count int
	// ActiveToday reports whether today itself has activity.
	ActiveToday bool
	// History is the distinct set of active logical dates, descending.
	History []time.Time
}

// ActivitySources bundles every record type that can contribute a logical
// activity date. All slices are read-only inputs.
type ActivitySources struct {
	Tasks     []*domain.Task
	Habits    []*domain.Habit
	HabitLogs []*domain.HabitLog
	Journal   []*domain.JournalEntry
	Notes     []*domain.Note
}

// CollectActivityDates derives the distinct set of active logical dates
// across all sources, each source owning its own inclusion rule:
//   - a task's creation date always counts; its completion date counts when
//     completed (falling back to last-modified when no completion timestamp
//     was recorded)
//   - a habit log counts when the day's progress satisfies the habit's
//     goal, or unconditionally when the day was explicitly skipped
//   - a journal entry counts on its creation date, a note on its
//     last-modified date
//
// The result is sorted descending.
func CollectActivityDates(src ActivitySources, dayStartHour int) []time.Time {
	set := make(map[time.Time]bool)

	for _, t := range src.Tasks {
		set[LogicalDate(t.CreatedAt, dayStartHour)] = true
		if t.Completed {
			done := t.UpdatedAt
			if t.CompletedAt != nil {
				done = *t.CompletedAt
			}
			set[LogicalDate(done, dayStartHour)] = true
		}
	}

	habits := make(map[string]*domain.Habit, len(src.Habits))
	for _, h := range src.Habits {
		habits[h.ID] = h
	}
	for _, log := range src.HabitLogs {
		h := habits[log.HabitID]
		if h == nil {
			continue
		}
		if log.Skipped || h.Satisfied(log.Progress) {
			set[DateOnly(log.Day)] = true
		}
	}

	for _, e := range src.Journal {
		set[LogicalDate(e.CreatedAt, dayStartHour)] = true
	}
	for _, n := range src.Notes {
		set[LogicalDate(n.UpdatedAt, dayStartHour)] = true
	}

	dates := make([]time.Time, 0, len(set))
	for d := range set {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })
	return dates
}

// ComputeStreak walks backward from today (or yesterday, when today has no
// activity yet; the grace day keeps a streak alive until the day rolls
// over) counting consecutive active logical days. Pure and idempotent; an
// empty activity set yields a zero streak.
func ComputeStreak(dates []time.Time, today, yesterday time.Time) StreakState {
	set := make(map[time.Time]bool, len(dates))
	history := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		d = DateOnly(d)
		if !set[d] {
			set[d] = true
			history = append(history, d)
		}
	}
	sort.Slice(history, func(i, j int) bool { return history[i].After(history[j]) })

	state := StreakState{
		ActiveToday: set[DateOnly(today)],
		History:     history,
	}

	anchor := DateOnly(today)
	if !set[anchor] {
		anchor = DateOnly(yesterday)
		if !set[anchor] {
			return state
		}
	}

	for set[anchor] {
		state.Count++
		anchor = anchor.AddDate(0, 0, -1)
	}
	return state
}
