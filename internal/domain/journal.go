package domain

import "time"

// JournalEntry is a dated free-form entry. Its creation instant drives the
// streak aggregator's journal activity date.
type JournalEntry struct {
	ID      string
	Content string

	CreatedAt time.Time
	UpdatedAt time.Time
}
