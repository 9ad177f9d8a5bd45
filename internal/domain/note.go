package domain

import "time"

// Note is a titled free-form document. Its last-modified instant drives the
// streak aggregator's note activity date.
type Note struct {
	ID    string
	Title string
	Body  string

	CreatedAt time.Time
	UpdatedAt time.Time
}
