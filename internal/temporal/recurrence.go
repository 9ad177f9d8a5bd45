package temporal

import (
	"sort"
	"time"

	"github.com/alexanderramin/daybreak/internal/domain"
)

// NextOccurrence computes the due date following lastDue under the given
// rule. All arithmetic happens in midnight-UTC date space so local-timezone
// drift can never shift the result across a day boundary. The returned date
// is always strictly after lastDue.
func NextOccurrence(lastDue time.Time, rule domain.RecurrenceRule) (time.Time, error) {
	if err := rule.Validate(); err != nil {
		return time.Time{}, err
	}

	d := DateOnly(lastDue)

	switch rule.Kind {
	case domain.RecurDaily:
		return d.AddDate(0, 0, rule.Interval), nil

	case domain.RecurWeekly:
		return nextWeekly(d, rule.Interval, rule.Weekdays), nil

	case domain.RecurMonthly:
		// AddDate normalizes short months by rolling forward
		// (Jan 31 + 1 month = Mar 2/3). Pinned by test.
		return d.AddDate(0, rule.Interval, 0), nil

	case domain.RecurYearly:
		return d.AddDate(rule.Interval, 0, 0), nil
	}

	// Unreachable after Validate, but keep the compiler honest.
	return time.Time{}, domain.ErrInvalidRule
}

// nextWeekly advances to the nearest selected weekday strictly after d's
// weekday within the same week, or to the first selected weekday of the
// week interval weeks ahead.
func nextWeekly(d time.Time, interval int, weekdays []int) time.Time {
	w := int(d.Weekday())

	days := make([]int, 0, len(weekdays))
	seen := make(map[int]bool, len(weekdays))
	for _, wd := range weekdays {
		if !seen[wd] {
			seen[wd] = true
			days = append(days, wd)
		}
	}
	if len(days) == 0 {
		days = []int{w}
	}
	sort.Ints(days)

	for _, wd := range days {
		if wd > w {
			return d.AddDate(0, 0, wd-w)
		}
	}

	first := days[0]
	return d.AddDate(0, 0, (7-w)+(interval-1)*7+first)
}
