package domain

import "time"

// Habit is a recurring daily practice with a target. Build habits succeed
// when the day's progress reaches Target; limit habits succeed when it
// stays strictly below Target.
type Habit struct {
	ID       string
	Title    string
	GoalType GoalType
	Target   int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HabitLog is one day's progress for a habit. Day is a logical date stored
// as a midnight-UTC instant. Skipped overrides success/failure evaluation
// for that day.
type HabitLog struct {
	ID       string
	HabitID  string
	Day      time.Time
	Progress int
	Skipped  bool
}

// Satisfied reports whether the given progress meets the habit's goal.
func (h *Habit) Satisfied(progress int) bool {
	if h.GoalType == GoalLimit {
		return progress < h.Target
	}
	return progress >= h.Target
}
