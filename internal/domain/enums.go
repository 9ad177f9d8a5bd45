package domain

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ValidPriorities is the canonical set of accepted priority strings.
var ValidPriorities = map[string]bool{
	"low": true, "medium": true, "high": true,
}

type RecurrenceKind string

const (
	RecurDaily   RecurrenceKind = "daily"
	RecurWeekly  RecurrenceKind = "weekly"
	RecurMonthly RecurrenceKind = "monthly"
	RecurYearly  RecurrenceKind = "yearly"
)

// ValidRecurrenceKinds is the canonical set of accepted recurrence kind strings.
var ValidRecurrenceKinds = map[string]bool{
	"daily": true, "weekly": true, "monthly": true, "yearly": true,
}

type GoalType string

const (
	// GoalBuild habits succeed when progress reaches the target.
	GoalBuild GoalType = "build"
	// GoalLimit habits succeed when progress stays below the target.
	GoalLimit GoalType = "limit"
)

// ValidGoalTypes is the canonical set of accepted goal type strings.
var ValidGoalTypes = map[string]bool{
	"build": true, "limit": true,
}
